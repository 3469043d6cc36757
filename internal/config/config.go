package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/xi/internal/config/loader"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "XI_"

// LogLevels lists the accepted values of log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the resolved settings.
type Config struct {
	Log    LogConfig
	Theme  ThemeConfig
	Editor EditorConfig

	// Path is the config file the settings were read from. It is set
	// even when the file did not exist.
	Path string
}

// LogConfig controls the application log.
type LogConfig struct {
	Level string
	File  string
}

// ThemeConfig holds the color names used by the renderer.
type ThemeConfig struct {
	TextFg      string
	TextBg      string
	SelectionFg string
	SelectionBg string
}

// EditorConfig holds editor behavior settings.
type EditorConfig struct {
	WatchConfig bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Theme: ThemeConfig{
			TextFg:      "default",
			TextBg:      "default",
			SelectionFg: "black",
			SelectionBg: "white",
		},
	}
}

// defaultMap is the defaults layer in map form.
func defaultMap() map[string]any {
	d := Default()
	return map[string]any{
		"log": map[string]any{
			"level": d.Log.Level,
			"file":  d.Log.File,
		},
		"theme": map[string]any{
			"textFg":      d.Theme.TextFg,
			"textBg":      d.Theme.TextBg,
			"selectionFg": d.Theme.SelectionFg,
			"selectionBg": d.Theme.SelectionBg,
		},
		"editor": map[string]any{
			"watchConfig": d.Editor.WatchConfig,
		},
	}
}

// envMapping names the variables that do not follow the SECTION_KEY rule.
func envMapping() map[string]string {
	return map[string]string{
		"XI_LOG_LEVEL": "log.level",
		"XI_LOG_FILE":  "log.file",
		"XI_LOGFILE":   "log.file",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/xi/config.toml, or config.toml in
// the working directory when no user config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "xi", "config.toml")
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	fs  loader.FileSystem
	env loader.Loader
}

// WithFileSystem reads the config file from fsys.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnvLoader replaces the environment layer. A nil loader disables it.
func WithEnvLoader(l loader.Loader) Option {
	return func(o *loadOptions) {
		o.env = l
	}
}

// Load resolves the settings from defaults, the file at path and the
// environment. An empty path skips the file layer; a missing file is not
// an error.
func Load(path string, opts ...Option) (*Config, error) {
	o := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoaderWithMapping(EnvPrefix, envMapping()),
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := defaultMap()

	if path != "" {
		layer, err := loader.ForPath(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, layer)
	}

	if o.env != nil {
		layer, err := o.env.Load()
		if err != nil {
			return nil, fmt.Errorf("reading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, layer)
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode converts a merged settings map into a Config.
func decode(data map[string]any) (*Config, error) {
	cfg := &Config{}
	d := decoder{data: data}

	cfg.Log.Level = strings.ToLower(d.str("log.level"))
	cfg.Log.File = d.str("log.file")
	cfg.Theme.TextFg = d.str("theme.textFg")
	cfg.Theme.TextBg = d.str("theme.textBg")
	cfg.Theme.SelectionFg = d.str("theme.selectionFg")
	cfg.Theme.SelectionBg = d.str("theme.selectionBg")
	cfg.Editor.WatchConfig = d.boolean("editor.watchConfig")

	return cfg, errors.Join(d.errs...)
}

type decoder struct {
	data map[string]any
	errs []error
}

func (d *decoder) str(path string) string {
	val, _ := loader.Lookup(d.data, path)
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		d.errs = append(d.errs, &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", val)})
		return ""
	}
}

func (d *decoder) boolean(path string) bool {
	val, _ := loader.Lookup(d.data, path)
	switch v := val.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		switch strings.ToLower(v) {
		case "true", "yes", "on", "1":
			return true
		case "false", "no", "off", "0", "":
			return false
		}
	}
	d.errs = append(d.errs, &TypeError{Path: path, Expected: "bool", Actual: fmt.Sprintf("%T", val)})
	return false
}

// Validate checks settings that have a fixed set of values. Colors are
// checked when the theme is built.
func (c *Config) Validate() error {
	for _, level := range LogLevels {
		if c.Log.Level == level {
			return nil
		}
	}
	return &ValidationError{
		Path:    "log.level",
		Message: "must be one of " + strings.Join(LogLevels, ", "),
		Value:   c.Log.Level,
	}
}
