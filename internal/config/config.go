package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/simplemodel/internal/ctxlog"
)

// DefaultFilename is looked up in the working directory when no run file is
// named explicitly.
const DefaultFilename = "simplemodel.hcl"

// RunFile is the decoded content of a run file. Pointer fields are nil when
// the attribute is absent.
type RunFile struct {
	Model         *string
	LogLevel      *string
	LogFormat     *string
	Order         *string
	Strict        *bool
	StateDefaults map[string]float64
	Publish       *Publish
}

// Publish is the destination of state snapshots.
type Publish struct {
	URL   string
	Event string
}

// fileRoot mirrors the top level of a run file.
type fileRoot struct {
	Model         *string        `hcl:"model,optional"`
	LogLevel      *string        `hcl:"log_level,optional"`
	LogFormat     *string        `hcl:"log_format,optional"`
	Order         *string        `hcl:"order,optional"`
	Strict        *bool          `hcl:"strict,optional"`
	StateDefaults hcl.Expression `hcl:"state_defaults,optional"`
	Publish       *publishBlock  `hcl:"publish,block"`
}

type publishBlock struct {
	URL   string  `hcl:"url"`
	Event *string `hcl:"event,optional"`
}

// DefaultEvent is the socket.io event name used when a publish block names
// none.
const DefaultEvent = "state"

// Load parses and decodes the run file at path.
func Load(ctx context.Context, path string) (*RunFile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run file loading started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root fileRoot
	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	rf := &RunFile{
		Model:     root.Model,
		LogLevel:  root.LogLevel,
		LogFormat: root.LogFormat,
		Order:     root.Order,
		Strict:    root.Strict,
	}

	defaults, err := decodeNumberMap(root.StateDefaults)
	if err != nil {
		return nil, fmt.Errorf("invalid state_defaults in %s: %w", path, err)
	}
	rf.StateDefaults = defaults

	if root.Publish != nil {
		rf.Publish = &Publish{URL: root.Publish.URL, Event: DefaultEvent}
		if root.Publish.Event != nil {
			rf.Publish.Event = *root.Publish.Event
		}
	}

	logger.Debug("Run file loaded.", "path", path, "state_defaults", len(rf.StateDefaults), "publish", rf.Publish != nil)
	return rf, nil
}

// decodeNumberMap evaluates expr, which must be an object or map whose
// values are all numbers. An absent attribute yields a nil map.
func decodeNumberMap(expr hcl.Expression) (map[string]float64, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}

	converted, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, err
	}
	var out map[string]float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, err
	}
	return out, nil
}
