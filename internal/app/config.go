package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/leg100/imbinder/internal/binder"
	"github.com/leg100/imbinder/internal/key"
	"github.com/leg100/imbinder/internal/logging"
	"github.com/leg100/imbinder/internal/tui"
	"github.com/leg100/imbinder/internal/tui/top"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type config struct {
	BindingsFile  string
	FPS           int
	HoldTimeout   time.Duration
	AbortKeys     []key.Key
	Debug         bool
	PrintBindings bool
	Version       bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".imbinder.yaml")

	fs := ff.NewFlagSet("imbinder")
	fs.StringVar(&cfg.BindingsFile, 'b', "bindings", binder.DefaultBindingsFile, "Path to the bindings file.")
	fs.IntVar(&cfg.FPS, 0, "fps", top.DefaultFPS, "Frames rendered per second.")
	fs.DurationVar(&cfg.HoldTimeout, 0, "hold-timeout", tui.DefaultHoldTimeout, "Time after which a key without further presses or repeats is released.")
	var abortKeys []string
	fs.StringListVar(&abortKeys, 0, "abort-key", "Key that cancels rebinding. Can set more than once. Defaults to MouseLeft and Escape.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.PrintBindings, 'p', "print-bindings", "Print bindings as YAML and exit.")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("IMBINDER"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	if cfg.FPS <= 0 {
		return config{}, fmt.Errorf("fps must be positive: %d", cfg.FPS)
	}
	if cfg.HoldTimeout <= 0 {
		return config{}, fmt.Errorf("hold timeout must be positive: %s", cfg.HoldTimeout)
	}

	// Perform any conversions from the flag parsed primitive types to
	// imbinder defined types.
	for _, name := range abortKeys {
		k, ok := key.Parse(name)
		if !ok || k == key.None || !k.Named() {
			return config{}, fmt.Errorf("invalid abort key: %q", name)
		}
		cfg.AbortKeys = append(cfg.AbortKeys, k)
	}

	return cfg, nil
}
