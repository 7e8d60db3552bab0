package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/todoodler/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the configuration file that was read, empty when none was.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the optional TOML file. Pointers distinguish unset keys.
type fileConfig struct {
	UI struct {
		Width  *int  `toml:"width"`
		Height *int  `toml:"height"`
		Footer *bool `toml:"footer"`
	} `toml:"ui"`
	Logging struct {
		File  *string `toml:"file"`
		Trace *bool   `toml:"trace"`
	} `toml:"logging"`
}

const (
	envConfig     = "TODOODLER_CONFIG"
	envWidth      = "TODOODLER_WIDTH"
	envHeight     = "TODOODLER_HEIGHT"
	envShowFooter = "TODOODLER_FOOTER"
	envTrace      = "TODOODLER_TRACE"
	envLogFile    = "TODOODLER_LOG_FILE"
)

// Load parses configuration from CLI arguments, environment variables and the
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fset := flag.NewFlagSet("todoodler", flag.ContinueOnError)
	fset.SetOutput(new(strings.Builder))

	configPath := fset.String("config", "", "path to the TOML config file")
	width := fset.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	height := fset.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	footer := fset.Bool("footer", false, "show the key hint footer row")
	trace := fset.Bool("trace", false, "enable JSON trace logging")
	logFile := fset.String("log-file", "", "path to the log file")

	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	set := map[string]bool{}
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	path := *configPath
	if !set["config"] {
		path = envOrDefault(env, envConfig, defaultConfigPath(env))
	}
	fc, loaded, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	r := &resolver{set: set, env: env}
	cfg := Config{
		App: app.Config{
			Width:      r.intValue("width", *width, envWidth, fc.UI.Width),
			Height:     r.intValue("height", *height, envHeight, fc.UI.Height),
			ShowFooter: r.boolValue("footer", *footer, envShowFooter, fc.UI.Footer),
		},
		Logging: Logging{
			FilePath: r.stringValue("log-file", *logFile, envLogFile, fc.Logging.File),
			Trace:    r.boolValue("trace", *trace, envTrace, fc.Logging.Trace),
		},
		Args: append([]string(nil), args...),
	}
	if len(r.errs) > 0 {
		return Config{}, errors.Join(r.errs...)
	}
	if loaded {
		cfg.File = path
	}
	cfg.Flags = map[string]string{
		"config":  cfg.File,
		"width":   strconv.Itoa(cfg.App.Width),
		"height":  strconv.Itoa(cfg.App.Height),
		"footer":  strconv.FormatBool(cfg.App.ShowFooter),
		"trace":   strconv.FormatBool(cfg.Logging.Trace),
		"logFile": cfg.Logging.FilePath,
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, "todoodler", "config.toml")
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", "todoodler", "config.toml")
	}
	return ""
}

// readFile decodes the config file at path. A missing file is not an error.
func readFile(path string) (fileConfig, bool, error) {
	var fc fileConfig
	if strings.TrimSpace(path) == "" {
		return fc, false, nil
	}
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, false, nil
		}
		return fileConfig{}, false, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fileConfig{}, false, fmt.Errorf("read config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return fc, true, nil
}

type resolver struct {
	set  map[string]bool
	env  map[string]string
	errs []error
}

func (r *resolver) intValue(name string, flagVal int, envKey string, fileVal *int) int {
	if r.set[name] {
		return flagVal
	}
	fallback := 0
	if fileVal != nil {
		fallback = *fileVal
	}
	v, err := envOrInt(r.env, envKey, fallback)
	if err != nil {
		r.errs = append(r.errs, err)
	}
	return v
}

func (r *resolver) boolValue(name string, flagVal bool, envKey string, fileVal *bool) bool {
	if r.set[name] {
		return flagVal
	}
	fallback := false
	if fileVal != nil {
		fallback = *fileVal
	}
	v, err := envOrBool(r.env, envKey, fallback)
	if err != nil {
		r.errs = append(r.errs, err)
	}
	return v
}

func (r *resolver) stringValue(name, flagVal, envKey string, fileVal *string) string {
	if r.set[name] {
		return flagVal
	}
	fallback := ""
	if fileVal != nil {
		fallback = *fileVal
	}
	return envOrDefault(r.env, envKey, fallback)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) (int, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return parsed, nil
}

func envOrBool(env map[string]string, key string, fallback bool) (bool, error) {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fallback, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return parsed, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate ensures the resolved configuration is usable.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if path := strings.TrimSpace(cfg.Logging.FilePath); path != "" {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return fmt.Errorf("log file %s is a directory", path)
		}
	}
	return nil
}
