package loader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vk/simplemodel/internal/ctxlog"
	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/field"
	"github.com/vk/simplemodel/internal/model"
	"github.com/vk/simplemodel/internal/simstate"
)

// Options tune a load.
type Options struct {
	Order Order
	// StateDefaults overrides the initial value of the listed element kinds.
	StateDefaults map[simstate.Kind]float64
}

// Result is everything one load produced.
type Result struct {
	RunID       string
	Model       *model.Model
	State       *simstate.State
	Diagnostics *diag.List
	// Order is the sequence the kinds were assembled in.
	Order []string
}

// Load splits and assembles src. Problems in the source end up in
// Result.Diagnostics; the returned error is reserved for an unusable
// configuration.
func Load(ctx context.Context, src []byte, opts Options) (*Result, error) {
	runID := uuid.NewString()
	ctx = ctxlog.With(ctx, "run_id", runID)
	logger := ctxlog.FromContext(ctx)

	order, err := KindOrder(ctx, opts.Order)
	if err != nil {
		return nil, err
	}

	diags := &diag.List{}
	buckets := Split(src, diags)
	logger.Debug("Load: split complete.", "objects", buckets.Count(), "split_errors", diags.Len())

	res := Assemble(ctx, src, buckets, order, opts.StateDefaults, diags)
	res.RunID = runID
	diags.SortByLine()

	logger.Info("Load: model loaded.",
		"substances", len(res.Model.Substances),
		"materials", len(res.Model.Materials),
		"constructions", len(res.Model.Constructions),
		"surfaces", len(res.Model.Surfaces),
		"spaces", len(res.Model.Spaces),
		"fenestrations", len(res.Model.Fenestrations),
		"hvacs", len(res.Model.HVACs),
		"luminaires", len(res.Model.Luminaires),
		"buildings", len(res.Model.Buildings),
		"state_elements", res.State.Len(),
		"errors", len(diags.Errors()),
		"warnings", len(diags.Warnings()),
	)
	return res, nil
}

// Assemble resolves the spans of each kind in order, then allocates the
// state of every object built. Failures are added to diags.
func Assemble(ctx context.Context, src []byte, buckets Buckets, order []string, defaults map[simstate.Kind]float64, diags *diag.List) *Result {
	logger := ctxlog.FromContext(ctx)
	b := model.NewBuilder(model.New())
	r := field.NewResolver(b)

	for _, kind := range order {
		typ, ok := model.TypeOf(kind)
		if !ok {
			panic(fmt.Sprintf("loader: no field table for keyword %s", kind))
		}
		spans := buckets[kind]
		for _, sp := range spans {
			cp := b.Checkpoint()
			p, err := r.ParseSpan(typ, src, sp)
			if err == nil {
				_, err = b.Construct(p)
			}
			if err != nil {
				// Inline objects built before the failure go with their parent.
				b.Rollback(cp)
				logger.Debug("Assemble: object skipped.", "kind", kind, "line", sp.Line, "error", err)
				diags.Add(err)
			}
		}
		if len(spans) > 0 {
			logger.Debug("Assemble: kind processed.", "kind", kind, "spans", len(spans), "collection", b.Model().Count(kind))
		}
	}
	for _, w := range b.Warnings() {
		diags.Warn(w)
	}

	st := simstate.NewState(0)
	b.Allocate(st, defaults)
	logger.Debug("Assemble: state allocated.",
		"personal", st.NPersonal(), "operational", st.NOperational(), "physical", st.NPhysical())

	return &Result{Model: b.Model(), State: st, Diagnostics: diags, Order: order}
}
