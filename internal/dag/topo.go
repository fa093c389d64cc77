package dag

import "fmt"

// TopologicalOrder returns every node after all of its dependencies. Among
// the nodes that are ready at the same time, the one listed first in
// priority wins; nodes missing from priority come last, by ID. An error is
// returned when the graph has a cycle.
func (g *Graph) TopologicalOrder(priority []string) ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	rank := make(map[string]int, len(g.nodes))
	for _, id := range sortedIDs(g.nodes) {
		rank[id] = len(priority) + len(rank)
	}
	for i, id := range priority {
		if _, ok := g.nodes[id]; ok {
			rank[id] = i
		}
	}

	remaining := make(map[string]int, len(g.nodes))
	var ready []string
	for id, n := range g.nodes {
		remaining[id] = len(n.deps)
		if len(n.deps) == 0 {
			ready = append(ready, id)
		}
	}

	order := make([]string, 0, len(g.nodes))
	for len(ready) > 0 {
		best := 0
		for i := range ready {
			if rank[ready[i]] < rank[ready[best]] {
				best = i
			}
		}
		id := ready[best]
		ready = append(ready[:best], ready[best+1:]...)
		order = append(order, id)

		for depID := range g.nodes[id].dependents {
			remaining[depID]--
			if remaining[depID] == 0 {
				ready = append(ready, depID)
			}
		}
	}

	if len(order) != len(g.nodes) {
		for _, id := range sortedIDs(g.nodes) {
			if remaining[id] > 0 {
				return nil, fmt.Errorf("cycle detected involving node '%s'", id)
			}
		}
	}
	return order, nil
}

// ForwardEdges lists the edges "from -> to" where to depends on from but
// from comes after to in order.
func (g *Graph) ForwardEdges(order []string) []string {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	var out []string
	for _, id := range order {
		n, ok := g.nodes[id]
		if !ok {
			continue
		}
		for _, depID := range sortedIDs(n.deps) {
			if p, ok := pos[depID]; ok && p > pos[id] {
				out = append(out, fmt.Sprintf("%s -> %s", depID, id))
			}
		}
	}
	return out
}
