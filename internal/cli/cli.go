package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	ucli "github.com/urfave/cli/v2"

	"github.com/vk/simplemodel/internal/app"
	"github.com/vk/simplemodel/internal/config"
	"github.com/vk/simplemodel/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

var globalFlags = []ucli.Flag{
	&ucli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "HCL run file with default options (default: ./" + config.DefaultFilename + " when present)",
	},
	&ucli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.",
	},
	&ucli.StringFlag{
		Name:  "log-format",
		Value: "text",
		Usage: "Log output format. Options: 'text' or 'json'.",
	},
	&ucli.StringFlag{
		Name:  "order",
		Value: "fixed",
		Usage: "Object kind assembly order. Options: 'fixed' or 'dependency'.",
	},
}

var strictFlag = &ucli.BoolFlag{
	Name:  "strict",
	Usage: "Fail when the model has errors.",
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	capture := func(command string) ucli.ActionFunc {
		return func(cCtx *ucli.Context) error {
			cfg, err := buildConfig(cCtx, command)
			if err != nil {
				return err
			}
			parsed = cfg
			return nil
		}
	}

	cliApp := &ucli.App{
		Name:      "simplemodel",
		Usage:     "Load building models written in SIMPLE notation.",
		Writer:    output,
		ErrWriter: output,
		Flags:     globalFlags,
		Commands: []*ucli.Command{
			{
				Name:      app.CommandCheck,
				Usage:     "Load a model and report its problems and content",
				ArgsUsage: "MODEL",
				Flags: []ucli.Flag{
					strictFlag,
					&ucli.BoolFlag{Name: "dump", Usage: "Print the loaded objects in Go syntax."},
				},
				Action: capture(app.CommandCheck),
			},
			{
				Name:      app.CommandState,
				Usage:     "Load a model and print its simulation state",
				ArgsUsage: "MODEL",
				Flags: []ucli.Flag{
					strictFlag,
					&ucli.StringFlag{Name: "format", Value: "text", Usage: "Output format. Options: 'text' or 'yaml'."},
					&ucli.StringFlag{Name: "publish-url", Usage: "socket.io server to publish the state snapshot to."},
					&ucli.StringFlag{Name: "publish-event", Value: config.DefaultEvent, Usage: "Event name of the published snapshot."},
				},
				Action: capture(app.CommandState),
			},
			{
				Name:   app.CommandDocs,
				Usage:  "Print the input reference",
				Flags:  []ucli.Flag{&ucli.BoolFlag{Name: "html", Usage: "Render the reference as HTML."}},
				Action: capture(app.CommandDocs),
			},
		},
		ExitErrHandler: func(*ucli.Context, error) {},
	}

	if err := cliApp.Run(append([]string{cliApp.Name}, args...)); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if parsed == nil {
		slog.Debug("No command run, help was printed.")
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

// buildConfig merges the run file under the flags of cCtx and validates
// the result.
func buildConfig(cCtx *ucli.Context, command string) (*app.Config, error) {
	cfg := app.Config{
		Command:      command,
		ModelPath:    cCtx.Args().First(),
		LogLevel:     strings.ToLower(cCtx.String("log-level")),
		LogFormat:    strings.ToLower(cCtx.String("log-format")),
		Order:        strings.ToLower(cCtx.String("order")),
		Strict:       cCtx.Bool("strict"),
		Dump:         cCtx.Bool("dump"),
		StateFormat:  strings.ToLower(cCtx.String("format")),
		PublishURL:   cCtx.String("publish-url"),
		PublishEvent: cCtx.String("publish-event"),
		HTML:         cCtx.Bool("html"),
	}

	path, explicit := cCtx.String("config"), cCtx.IsSet("config")
	if !explicit {
		path = config.DefaultFilename
	}
	if _, err := os.Stat(path); err == nil || explicit {
		ctx := ctxlog.WithLogger(context.Background(), slog.Default())
		rf, err := config.Load(ctx, path)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.ConfigPath = path
		merge(cCtx, &cfg, rf)
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated, nil
}

// merge copies run file values into cfg wherever the matching flag was not
// given on the command line.
func merge(cCtx *ucli.Context, cfg *app.Config, rf *config.RunFile) {
	if rf.Model != nil && cfg.ModelPath == "" {
		cfg.ModelPath = *rf.Model
	}
	if rf.LogLevel != nil && !cCtx.IsSet("log-level") {
		cfg.LogLevel = strings.ToLower(*rf.LogLevel)
	}
	if rf.LogFormat != nil && !cCtx.IsSet("log-format") {
		cfg.LogFormat = strings.ToLower(*rf.LogFormat)
	}
	if rf.Order != nil && !cCtx.IsSet("order") {
		cfg.Order = strings.ToLower(*rf.Order)
	}
	if rf.Strict != nil && !cCtx.IsSet("strict") {
		cfg.Strict = *rf.Strict
	}
	cfg.StateDefaults = rf.StateDefaults
	if rf.Publish != nil {
		if !cCtx.IsSet("publish-url") {
			cfg.PublishURL = rf.Publish.URL
		}
		if !cCtx.IsSet("publish-event") {
			cfg.PublishEvent = rf.Publish.Event
		}
	}
}
