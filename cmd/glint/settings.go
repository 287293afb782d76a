package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glint/internal/analysis"
	"glint/internal/check"
	"glint/internal/config"
	"glint/internal/logging"
	"glint/internal/observ"
)

// settings is everything a subcommand needs from flags and glint.toml.
type settings struct {
	cfg      config.Config
	analysis analysis.Options
	timings  bool
	colorArg string
	log      *zap.Logger

	// explicitConfig is set when --config named the file.
	explicitConfig bool
}

func loadSettings(cmd *cobra.Command, startDir string) (*settings, error) {
	flags := cmd.Root().PersistentFlags()
	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(startDir)
	}
	if err != nil {
		return nil, err
	}

	maxDiagnostics := cfg.Diagnostics.Max
	if flags.Changed("max-diagnostics") {
		maxDiagnostics, err = flags.GetInt("max-diagnostics")
		if err != nil {
			return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	colorArg, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.ToLower(colorArg) {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorArg)
	}

	log := logging.New(cfg.Log)
	if cfg.Path != "" {
		log.Debug("loaded configuration", zap.String("path", cfg.Path))
	}
	return &settings{
		cfg: cfg,
		analysis: analysis.Options{
			Lexer: cfg.LexerOptions(),
			Check: check.Options{Max: maxDiagnostics},
		},
		timings:        timings,
		colorArg:       strings.ToLower(colorArg),
		log:            log,
		explicitConfig: cfgPath != "",
	}, nil
}

// useColor resolves --color against the stream the output goes to.
func (s *settings) useColor(f *os.File) bool {
	switch s.colorArg {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(f)
	}
}

// newTimer returns nil unless --timings is set; a nil timer records nothing.
func (s *settings) newTimer() *observ.Timer {
	if !s.timings {
		return nil
	}
	return observ.NewTimer()
}

func (s *settings) close() {
	_ = s.log.Sync()
}

// startDirFor picks where config discovery begins: the first argument's
// directory when it is a file, the argument itself when it is a directory.
func startDirFor(args []string) string {
	if len(args) == 0 {
		return "."
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return "."
	}
	if info.IsDir() {
		return args[0]
	}
	return filepath.Dir(args[0])
}
