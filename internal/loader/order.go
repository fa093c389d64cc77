package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/simplemodel/internal/ctxlog"
	"github.com/vk/simplemodel/internal/dag"
	"github.com/vk/simplemodel/internal/model"
)

// Order selects how object kinds are sequenced during assembly.
type Order string

const (
	// OrderFixed assembles kinds in model.Keywords order.
	OrderFixed Order = "fixed"
	// OrderDependency assembles every kind after the kinds it refers to.
	OrderDependency Order = "dependency"
)

// ParseOrder validates an order name. The empty string is OrderFixed.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(s)) {
	case "", OrderFixed:
		return OrderFixed, nil
	case OrderDependency:
		return OrderDependency, nil
	}
	return "", fmt.Errorf("invalid order %q: must be one of 'fixed', 'dependency'", s)
}

// KindGraph returns the dependency graph between top-level kinds.
func KindGraph() (*dag.Graph, error) {
	g := dag.New()
	for _, k := range model.Keywords {
		g.AddNode(k)
	}
	refs := model.References()
	for _, k := range model.Keywords {
		for _, dep := range refs[k] {
			if err := g.AddEdge(dep, k); err != nil {
				return nil, fmt.Errorf("linking %s to %s: %w", k, dep, err)
			}
		}
	}
	return g, nil
}

// KindOrder returns the sequence in which kinds are assembled.
func KindOrder(ctx context.Context, o Order) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	g, err := KindGraph()
	if err != nil {
		return nil, err
	}

	for _, k := range g.Nodes() {
		if deps, _ := g.Dependencies(k); len(deps) > 0 {
			logger.Debug("KindOrder: kind dependencies.", "kind", k, "deps", deps)
		}
	}

	switch o {
	case OrderDependency:
		order, err := g.TopologicalOrder(model.Keywords)
		if err != nil {
			return nil, fmt.Errorf("error ordering object kinds: %w", err)
		}
		logger.Debug("KindOrder: dependency order computed.", "order", order)
		return order, nil

	case OrderFixed, "":
		if err := g.DetectCycles(); err != nil {
			logger.Warn("KindOrder: object kinds depend on each other.", "error", err)
		}
		order := append([]string(nil), model.Keywords...)
		for _, e := range g.ForwardEdges(order) {
			logger.Debug("KindOrder: forward dependency, resolvable only inline.", "edge", e)
		}
		return order, nil
	}
	return nil, fmt.Errorf("invalid order %q", o)
}
