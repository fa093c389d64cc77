package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/simplemodel/internal/simstate"
	"github.com/vk/simplemodel/internal/testutil"
)

const validModel = `
Building { name: "home" }
Space { name: "kitchen", building: "home" }
Luminaire { name: "lamp", target_space: "kitchen" }
`

const brokenModel = `
Space { name: "kitchen" }
Space { nmae: "typo" }
`

// runApp runs cfg and returns the command output, the log and the error.
func runApp(t *testing.T, cfg Config) (string, string, error) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	config, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	err = NewApp(out, logs, config).Run(context.Background())
	return out.String(), logs.String(), err
}

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "check", cfg: Config{Command: CommandCheck, ModelPath: "m.simple"}},
		{name: "docs needs no model", cfg: Config{Command: CommandDocs}},
		{name: "missing model", cfg: Config{Command: CommandState}, wantErr: "ModelPath is a required"},
		{name: "unknown command", cfg: Config{Command: "run"}, wantErr: "unknown command"},
		{name: "bad log level", cfg: Config{Command: CommandDocs, LogLevel: "loud"}, wantErr: "invalid log-level"},
		{name: "bad log format", cfg: Config{Command: CommandDocs, LogFormat: "xml"}, wantErr: "invalid log-format"},
		{name: "bad order", cfg: Config{Command: CommandDocs, Order: "random"}, wantErr: "invalid order"},
		{name: "bad state format", cfg: Config{Command: CommandDocs, StateFormat: "xml"}, wantErr: "invalid state format"},
		{
			name:    "unknown state default",
			cfg:     Config{Command: CommandDocs, StateDefaults: map[string]float64{"Temperature": 1}},
			wantErr: "unknown state element kind",
		},
		{
			name:    "publish without event",
			cfg:     Config{Command: CommandState, ModelPath: "m.simple", PublishURL: "http://localhost"},
			wantErr: "PublishEvent cannot be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Command, cfg.Command)
		})
	}
}

func TestStateDefaults(t *testing.T) {
	got, err := stateDefaults(map[string]float64{"SpaceDryBulbTemperature": 20, "Clothing": 1})
	require.NoError(t, err)
	assert.Equal(t, map[simstate.Kind]float64{
		simstate.SpaceDryBulbTemperature: 20,
		simstate.Clothing:                1,
	}, got)
}

func TestRun_Check(t *testing.T) {
	t.Run("valid model prints a summary", func(t *testing.T) {
		path := testutil.WriteModel(t, "house.simple", validModel)
		out, logs, err := runApp(t, Config{Command: CommandCheck, ModelPath: path, Order: "dependency", Dump: true})
		require.NoError(t, err)
		assert.Contains(t, out, "Space (1)\n  kitchen  volume unknown\n")
		assert.Contains(t, out, "State: 8 elements (0 personal, 1 operational, 7 physical)")
		assert.Contains(t, out, "model.Model{")
		assert.Contains(t, logs, "Load: model loaded.")
	})

	t.Run("errors are rendered with the source line", func(t *testing.T) {
		path := testutil.WriteModel(t, "house.simple", brokenModel)
		out, _, err := runApp(t, Config{Command: CommandCheck, ModelPath: path})
		require.NoError(t, err)
		assert.Contains(t, out, "Error: unknown-field")
		assert.Contains(t, out, "line 3")
		assert.Contains(t, out, "did you mean 'name'?")
		assert.Contains(t, out, "Space (1)")
	})

	t.Run("strict mode fails on errors", func(t *testing.T) {
		path := testutil.WriteModel(t, "house.simple", brokenModel)
		_, _, err := runApp(t, Config{Command: CommandCheck, ModelPath: path, Strict: true})
		assert.ErrorIs(t, err, ErrInvalidModel)
	})

	t.Run("markdown model", func(t *testing.T) {
		path := testutil.WriteModel(t, "house.md", "# House\n\n```simple\n"+validModel+"```\n")
		out, _, err := runApp(t, Config{Command: CommandCheck, ModelPath: path, Order: "dependency", Strict: true})
		require.NoError(t, err)
		assert.Contains(t, out, "Luminaire (1)\n  lamp  kitchen\n")
	})

	t.Run("missing model file", func(t *testing.T) {
		_, _, err := runApp(t, Config{Command: CommandCheck, ModelPath: "does/not/exist.simple"})
		assert.ErrorContains(t, err, "error accessing path")
	})
}

func TestRun_State(t *testing.T) {
	path := testutil.WriteModel(t, "house.simple", validModel)

	t.Run("yaml", func(t *testing.T) {
		out, _, err := runApp(t, Config{
			Command:       CommandState,
			ModelPath:     path,
			Order:         "dependency",
			StateFormat:   "yaml",
			StateDefaults: map[string]float64{"SpaceDryBulbTemperature": 19},
		})
		require.NoError(t, err)

		snap, err := simstate.DecodeSnapshot(bytes.NewBufferString(out))
		require.NoError(t, err)
		require.Len(t, snap.Elements, 8)
		assert.Equal(t, "LuminairePowerConsumption(0)", snap.Elements[0].Name)
		assert.Equal(t, "SpaceDryBulbTemperature(0)", snap.Elements[1].Name)
		assert.Equal(t, 19.0, snap.Elements[1].Value)
	})

	t.Run("skipped objects are logged", func(t *testing.T) {
		broken := testutil.WriteModel(t, "broken.simple", brokenModel)
		out, logs, err := runApp(t, Config{Command: CommandState, ModelPath: broken})
		require.NoError(t, err)
		assert.Contains(t, out, "physical (7)")
		assert.Contains(t, logs, "Object skipped.")
		assert.Contains(t, logs, "code=unknown-field")
	})
}

func TestRun_Docs(t *testing.T) {
	out, _, err := runApp(t, Config{Command: CommandDocs})
	require.NoError(t, err)
	assert.Contains(t, out, "## Fenestration")

	out, _, err = runApp(t, Config{Command: CommandDocs, HTML: true})
	require.NoError(t, err)
	assert.Contains(t, out, "<h2>Fenestration</h2>")
}

func TestNewLogger(t *testing.T) {
	logs := &testutil.SafeBuffer{}
	logger := newLogger("warn", "json", logs)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")
	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), `"msg":"shown"`)
	assert.Contains(t, logs.String(), `"key":"value"`)
}
