package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/simplemodel/internal/ctxlog"
	"github.com/vk/simplemodel/internal/diag"
	"github.com/vk/simplemodel/internal/fsutil"
	"github.com/vk/simplemodel/internal/loader"
	"github.com/vk/simplemodel/internal/publish"
	"github.com/vk/simplemodel/internal/report"
)

// ErrInvalidModel is returned in strict mode when the model has errors.
var ErrInvalidModel = errors.New("model has errors")

// diagnosticWidth is the wrap width of rendered diagnostics.
const diagnosticWidth = 100

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandDocs:
		err = a.runDocs()
	case CommandCheck:
		err = a.runCheck(ctx)
	case CommandState:
		err = a.runState(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}

func (a *App) runDocs() error {
	if a.config.HTML {
		return report.DocsHTML(a.outW)
	}
	return report.Docs(a.outW)
}

// loaded is a model together with the source it came from.
type loaded struct {
	path string
	src  []byte
	res  *loader.Result
}

// load reads and assembles the configured model.
func (a *App) load(ctx context.Context) (*loaded, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := fsutil.ResolveModelPath(a.config.ModelPath)
	if err != nil {
		return nil, err
	}
	src, err := fsutil.ReadModel(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Model source read.", "path", path, "bytes", len(src))

	order, err := loader.ParseOrder(a.config.Order)
	if err != nil {
		return nil, err
	}
	defaults, err := stateDefaults(a.config.StateDefaults)
	if err != nil {
		return nil, err
	}

	res, err := loader.Load(ctx, src, loader.Options{Order: order, StateDefaults: defaults})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return &loaded{path: path, src: src, res: res}, nil
}

func (l *loaded) strictErr() error {
	n := len(l.res.Diagnostics.Errors())
	if n == 0 {
		return nil
	}
	return fmt.Errorf("%s: %d error(s): %w", l.path, n, ErrInvalidModel)
}

func (a *App) runCheck(ctx context.Context) error {
	l, err := a.load(ctx)
	if err != nil {
		return err
	}

	diags := l.res.Diagnostics
	if diags.Len() > 0 {
		if err := diag.Write(a.outW, l.path, l.src, diags, diagnosticWidth, false); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	}
	if err := report.Summary(a.outW, l.res.Model, l.res.State); err != nil {
		return err
	}
	if a.config.Dump {
		if err := report.Dump(a.outW, l.res.Model); err != nil {
			return err
		}
	}

	if a.config.Strict {
		return l.strictErr()
	}
	return nil
}

func (a *App) runState(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	l, err := a.load(ctx)
	if err != nil {
		return err
	}

	for _, e := range l.res.Diagnostics.Errors() {
		logger.Warn("Object skipped.", "line", e.Line, "code", e.Code.String(), "error", e.Detail())
	}
	if a.config.Strict {
		if err := l.strictErr(); err != nil {
			return err
		}
	}

	if err := report.WriteState(a.outW, l.res.State, a.config.StateFormat); err != nil {
		return err
	}

	if a.config.PublishURL != "" {
		target := publish.Target{URL: a.config.PublishURL, Event: a.config.PublishEvent}
		if err := publish.Publish(ctx, target, l.res.State.Snapshot()); err != nil {
			return fmt.Errorf("failed to publish state: %w", err)
		}
	}
	return nil
}
