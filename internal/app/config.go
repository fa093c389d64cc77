package app

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/simplemodel/internal/loader"
	"github.com/vk/simplemodel/internal/report"
	"github.com/vk/simplemodel/internal/simstate"
)

// Commands understood by App.Run.
const (
	CommandCheck = "check"
	CommandState = "state"
	CommandDocs  = "docs"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command    string
	ModelPath  string // .simple file, .md document or a directory holding one
	ConfigPath string // run file the values were merged from, if any

	LogFormat string
	LogLevel  string
	Order     string

	// check
	Strict bool
	Dump   bool

	// state
	StateFormat   string
	StateDefaults map[string]float64
	PublishURL    string
	PublishEvent  string

	// docs
	HTML bool
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandCheck, CommandState:
		if cfg.ModelPath == "" {
			return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
		}
	case CommandDocs:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if err := validFormat(cfg.LogFormat); err != nil {
		return nil, err
	}
	if _, err := loader.ParseOrder(cfg.Order); err != nil {
		return nil, err
	}
	if _, err := stateDefaults(cfg.StateDefaults); err != nil {
		return nil, err
	}

	switch cfg.StateFormat {
	case "", report.FormatText, report.FormatYAML:
	default:
		return nil, fmt.Errorf("invalid state format %q: must be 'text' or 'yaml'", cfg.StateFormat)
	}
	if cfg.PublishURL != "" && cfg.PublishEvent == "" {
		return nil, errors.New("PublishEvent cannot be empty when PublishURL is set")
	}

	return &cfg, nil
}

// stateDefaults maps element kind names to simstate kinds.
func stateDefaults(in map[string]float64) (map[simstate.Kind]float64, error) {
	if len(in) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[simstate.Kind]float64, len(in))
	for _, name := range names {
		k, ok := simstate.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown state element kind %q in state defaults", name)
		}
		out[k] = in[name]
	}
	return out, nil
}
