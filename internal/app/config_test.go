package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leg100/imbinder/internal/binder"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/logging"
	"github.com/leg100/imbinder/internal/testutils"
	"github.com/leg100/imbinder/internal/tui"
	"github.com/leg100/imbinder/internal/tui/top"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	// Unset environment variables set on host computer
	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		file string
		args []string
		envs []string
		want func(t *testing.T, got config)
	}{
		{
			"defaults",
			"",
			nil,
			nil,
			func(t *testing.T, got config) {
				want := config{
					BindingsFile: binder.DefaultBindingsFile,
					FPS:          top.DefaultFPS,
					HoldTimeout:  tui.DefaultHoldTimeout,
					loggingOptions: logging.Options{
						Level: "info",
					},
				}
				assert.Equal(t, want, got)
			},
		},
		{
			"config file override default",
			"bindings: custom.iib\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "custom.iib", got.BindingsFile)
			},
		},
		{
			"config file with fps override default",
			"fps: 30\n",
			nil,
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, 30, got.FPS)
			},
		},
		{
			"env var override default",
			"",
			nil,
			[]string{"IMBINDER_BINDINGS=env.iib"},
			func(t *testing.T, got config) {
				assert.Equal(t, "env.iib", got.BindingsFile)
			},
		},
		{
			"flag override default",
			"",
			[]string{"--bindings", "flag.iib"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, "flag.iib", got.BindingsFile)
			},
		},
		{
			"env var overrides config file",
			"bindings: file.iib\n",
			nil,
			[]string{"IMBINDER_BINDINGS=env.iib"},
			func(t *testing.T, got config) {
				assert.Equal(t, "env.iib", got.BindingsFile)
			},
		},
		{
			"flag overrides both env var and config",
			"bindings: file.iib\n",
			[]string{"-b", "flag.iib"},
			[]string{"IMBINDER_BINDINGS=env.iib"},
			func(t *testing.T, got config) {
				assert.Equal(t, "flag.iib", got.BindingsFile)
			},
		},
		{
			"set hold timeout",
			"",
			[]string{"--hold-timeout", "1s"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, time.Second, got.HoldTimeout)
			},
		},
		{
			"set multiple abort keys",
			"",
			[]string{"--abort-key", "escape", "--abort-key", "Q", "--abort-key", "MouseRight"},
			nil,
			func(t *testing.T, got config) {
				assert.Equal(t, []key.Key{key.Escape, key.Q, key.MouseRight}, got.AbortKeys)
			},
		},
		{
			"set log level via environment variable",
			"",
			nil,
			[]string{"IMBINDER_LOG_LEVEL=debug"},
			func(t *testing.T, got config) {
				assert.Equal(t, "debug", got.loggingOptions.Level)
			},
		},
		{
			"enable printing bindings",
			"",
			[]string{"-p"},
			nil,
			func(t *testing.T, got config) {
				assert.True(t, got.PrintBindings)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// change into a temp dir in case the host computer has a
			// bindings file
			testutils.ChTempDir(t, t.TempDir())

			// set env vars
			for _, ev := range tt.envs {
				name, val, _ := strings.Cut(ev, "=")
				t.Setenv(name, val)
			}

			// set config file
			if tt.file != "" {
				path := filepath.Join(os.Getenv("HOME"), ".imbinder.yaml")
				err := os.WriteFile(path, []byte(tt.file), 0o644)
				require.NoError(t, err)
			}

			// and pass in flags
			got, err := parse(io.Discard, tt.args)
			require.NoError(t, err)

			tt.want(t, got)
		})
	}
}

func TestConfig_Invalid(t *testing.T) {
	testutils.ResetEnv(t)
	t.Setenv("HOME", t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"unknown abort key", []string{"--abort-key", "NotAKey"}},
		{"unnamed abort key code", []string{"--abort-key", "9999"}},
		{"zero fps", []string{"--fps", "0"}},
		{"negative hold timeout", []string{"--hold-timeout", "-1s"}},
		{"invalid log level", []string{"--log-level", "verbose"}},
		{"unknown flag", []string{"--program", "terraform"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(io.Discard, tt.args)
			assert.Error(t, err)
		})
	}
}
