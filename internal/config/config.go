// Package config loads glint.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"glint/internal/lexer"
)

// FileName is the configuration file looked up by Find.
const FileName = "glint.toml"

var (
	// ErrUnknownKey is wrapped when glint.toml contains keys glint does not understand.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue is wrapped when a key has an unsupported value.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Config is the decoded glint.toml.
type Config struct {
	Lexer       LexerConfig       `toml:"lexer"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Server      ServerConfig      `toml:"server"`
	Log         LogConfig         `toml:"log"`
	Cache       CacheConfig       `toml:"cache"`

	// Path is the file the config came from; empty for defaults.
	Path string `toml:"-"`
}

// LexerConfig is the [lexer] section.
type LexerConfig struct {
	Comment   string `toml:"comment"`
	MaxTokens int    `toml:"max_tokens"`
}

// DiagnosticsConfig is the [diagnostics] section.
type DiagnosticsConfig struct {
	Max int `toml:"max"`
}

// ServerConfig is the [server] section.
type ServerConfig struct {
	EvictOnClose bool `toml:"evict_on_close"`
}

// LogConfig is the [log] section.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// CacheConfig is the [cache] section.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Lexer:       LexerConfig{Comment: "%"},
		Diagnostics: DiagnosticsConfig{Max: 100},
		Log:         LogConfig{Level: "info", Format: "console"},
		Cache:       CacheConfig{Enabled: true},
	}
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Validate checks value ranges and enums.
func (c *Config) Validate() error {
	if _, err := lexer.ParseCommentStyle(c.Lexer.Comment); err != nil {
		return fmt.Errorf("%w: lexer.comment: %w", ErrInvalidValue, err)
	}
	if c.Lexer.MaxTokens < 0 {
		return fmt.Errorf("%w: lexer.max_tokens must be >= 0", ErrInvalidValue)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("%w: diagnostics.max must be >= 0", ErrInvalidValue)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalidValue, c.Log.Format)
	}
	return nil
}

// LexerOptions converts the [lexer] section. Validate must have passed.
func (c *Config) LexerOptions() lexer.Options {
	style, err := lexer.ParseCommentStyle(c.Lexer.Comment)
	if err != nil {
		style = lexer.CommentPercent
	}
	return lexer.Options{Comment: style, MaxTokens: c.Lexer.MaxTokens}
}

// CacheDir returns the configured cache directory or the per-user default.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(base, "glint"), nil
}

// Find walks up from startDir to locate glint.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover loads the nearest glint.toml above startDir, or defaults when there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
