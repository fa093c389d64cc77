package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/simplemodel/internal/app"
	"github.com/vk/simplemodel/internal/testutil"
)

func TestParse(t *testing.T) {
	t.Run("check with defaults", func(t *testing.T) {
		cfg, exit, err := Parse([]string{"check", "house.simple"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)

		assert.Equal(t, app.CommandCheck, cfg.Command)
		assert.Equal(t, "house.simple", cfg.ModelPath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "fixed", cfg.Order)
		assert.False(t, cfg.Strict)
		assert.Empty(t, cfg.ConfigPath)
	})

	t.Run("global and command flags", func(t *testing.T) {
		args := []string{
			"--log-level", "DEBUG", "--order", "dependency",
			"state", "--format", "yaml", "--publish-url", "http://localhost:3000", "--strict",
			"house.md",
		}
		cfg, _, err := Parse(args, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Equal(t, app.CommandState, cfg.Command)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "dependency", cfg.Order)
		assert.Equal(t, "yaml", cfg.StateFormat)
		assert.Equal(t, "http://localhost:3000", cfg.PublishURL)
		assert.Equal(t, "state", cfg.PublishEvent)
		assert.True(t, cfg.Strict)
		assert.Equal(t, "house.md", cfg.ModelPath)
	})

	t.Run("docs needs no model", func(t *testing.T) {
		cfg, _, err := Parse([]string{"docs", "--html"}, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, app.CommandDocs, cfg.Command)
		assert.True(t, cfg.HTML)
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		cfg, exit, err := Parse([]string{"--help"}, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Nil(t, cfg)
		assert.Contains(t, out.String(), "check")
	})

	t.Run("no command prints help", func(t *testing.T) {
		_, exit, err := Parse(nil, &bytes.Buffer{})
		require.NoError(t, err)
		assert.True(t, exit)
	})
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"missing model", []string{"check"}, "ModelPath is a required configuration field"},
		{"bad order", []string{"--order", "random", "check", "m.simple"}, "invalid order"},
		{"bad level", []string{"--log-level", "loud", "check", "m.simple"}, "loud"},
		{"bad format", []string{"state", "--format", "xml", "m.simple"}, "invalid state format"},
		{"unknown flag", []string{"--bogus"}, "flag provided but not defined: -bogus"},
		{"missing run file", []string{"--config", "/does/not/exist.hcl", "check", "m.simple"}, "exist.hcl"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_RunFile(t *testing.T) {
	path := testutil.WriteModel(t, "run.hcl", `
model      = "from-file.simple"
log_format = "json"
order      = "dependency"
strict     = true

state_defaults = {
  SpaceDryBulbTemperature = 21
}

publish {
  url   = "http://localhost:3000"
  event = "snapshot"
}
`)

	t.Run("file fills unset options", func(t *testing.T) {
		cfg, _, err := Parse([]string{"--config", path, "state"}, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Equal(t, path, cfg.ConfigPath)
		assert.Equal(t, "from-file.simple", cfg.ModelPath)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "dependency", cfg.Order)
		assert.True(t, cfg.Strict)
		assert.Equal(t, map[string]float64{"SpaceDryBulbTemperature": 21}, cfg.StateDefaults)
		assert.Equal(t, "http://localhost:3000", cfg.PublishURL)
		assert.Equal(t, "snapshot", cfg.PublishEvent)
	})

	t.Run("flags win over the file", func(t *testing.T) {
		args := []string{"--config", path, "--order", "fixed", "state", "--publish-event", "other", "cli.simple"}
		cfg, _, err := Parse(args, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Equal(t, "cli.simple", cfg.ModelPath)
		assert.Equal(t, "fixed", cfg.Order)
		assert.Equal(t, "other", cfg.PublishEvent)
		assert.Equal(t, "http://localhost:3000", cfg.PublishURL)
	})
}
