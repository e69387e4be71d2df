package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the glint configuration.
type Config struct {
	Language  string       `mapstructure:"language" json:"language"`
	Format    string       `mapstructure:"format" json:"format"`
	FailOn    string       `mapstructure:"fail_on" json:"failOn"`
	Extended  bool         `mapstructure:"extended" json:"extended"`
	RulesFile string       `mapstructure:"rules_file" json:"rulesFile,omitempty"`
	Review    ReviewConfig `mapstructure:"review" json:"review"`
	Demo      DemoConfig   `mapstructure:"demo" json:"demo"`
	Notify    NotifyConfig `mapstructure:"notify" json:"notify"`
	Log       LogConfig    `mapstructure:"log" json:"log"`
}

// ReviewConfig controls the one-shot review command.
type ReviewConfig struct {
	DelayMs int `mapstructure:"delay_ms" json:"delayMs"`
}

// DemoConfig controls the interactive demo.
type DemoConfig struct {
	DelayMs int `mapstructure:"delay_ms" json:"delayMs"`
}

// NotifyConfig holds toast timings.
type NotifyConfig struct {
	SlideInMs  int `mapstructure:"slide_in_ms" json:"slideInMs"`
	DwellMs    int `mapstructure:"dwell_ms" json:"dwellMs"`
	SlideOutMs int `mapstructure:"slide_out_ms" json:"slideOutMs"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level"`
	File  string `mapstructure:"file" json:"file,omitempty"`
}

// Delay returns the review delay as a duration.
func (r ReviewConfig) Delay() time.Duration { return time.Duration(r.DelayMs) * time.Millisecond }

// Delay returns the demo's simulated latency as a duration.
func (d DemoConfig) Delay() time.Duration { return time.Duration(d.DelayMs) * time.Millisecond }

// Durations returns slide-in, dwell, and slide-out as durations.
func (n NotifyConfig) Durations() (slideIn, dwell, slideOut time.Duration) {
	return time.Duration(n.SlideInMs) * time.Millisecond,
		time.Duration(n.DwellMs) * time.Millisecond,
		time.Duration(n.SlideOutMs) * time.Millisecond
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Language: "javascript",
		Format:   "text",
		FailOn:   "none",
		Review:   ReviewConfig{DelayMs: 0},
		Demo:     DemoConfig{DelayMs: 2000},
		Notify: NotifyConfig{
			SlideInMs:  100,
			DwellMs:    3000,
			SlideOutMs: 300,
		},
		Log: LogConfig{Level: "info"},
	}
}

// keys lists every config key with its kind, in file order.
var keys = []struct {
	name string
	kind string
}{
	{"language", "string"},
	{"format", "string"},
	{"fail_on", "severity"},
	{"extended", "bool"},
	{"rules_file", "string"},
	{"review.delay_ms", "int"},
	{"demo.delay_ms", "int"},
	{"notify.slide_in_ms", "int"},
	{"notify.dwell_ms", "int"},
	{"notify.slide_out_ms", "int"},
	{"log.level", "string"},
	{"log.file", "string"},
}

// Keys returns the recognized config keys.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.name)
	}
	return out
}

// ConfigDir returns the platform-appropriate config directory for glint.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glint"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "glint"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "glint"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "glint"), nil
	default:
		return filepath.Join(home, ".config", "glint"), nil
	}
}

// ConfigPath returns the full path to the config file. GLINT_CONFIG wins.
func ConfigPath() (string, error) {
	if p := os.Getenv("GLINT_CONFIG"); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func newViper(cfg Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetDefault("language", cfg.Language)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("fail_on", cfg.FailOn)
	v.SetDefault("extended", cfg.Extended)
	v.SetDefault("rules_file", cfg.RulesFile)
	v.SetDefault("review.delay_ms", cfg.Review.DelayMs)
	v.SetDefault("demo.delay_ms", cfg.Demo.DelayMs)
	v.SetDefault("notify.slide_in_ms", cfg.Notify.SlideInMs)
	v.SetDefault("notify.dwell_ms", cfg.Notify.DwellMs)
	v.SetDefault("notify.slide_out_ms", cfg.Notify.SlideOutMs)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
	return v
}

// LoadFile loads only the config file over defaults. A missing file yields defaults.
func LoadFile() (Config, error) {
	v := newViper(Default())
	if err := readFile(v); err != nil {
		return Config{}, err
	}
	return decode(v)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags and is keyed by config key.
func Load(overrides map[string]string) (Config, error) {
	v := newViper(Default())
	if err := readFile(v); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix("GLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := checkValue(key, value); err != nil {
			return Config{}, err
		}
		v.Set(key, value)
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(v *viper.Viper) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file as TOML.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("language", cfg.Language)
	v.Set("format", cfg.Format)
	v.Set("fail_on", cfg.FailOn)
	v.Set("extended", cfg.Extended)
	v.Set("rules_file", cfg.RulesFile)
	v.Set("review.delay_ms", cfg.Review.DelayMs)
	v.Set("demo.delay_ms", cfg.Demo.DelayMs)
	v.Set("notify.slide_in_ms", cfg.Notify.SlideInMs)
	v.Set("notify.dwell_ms", cfg.Notify.DwellMs)
	v.Set("notify.slide_out_ms", cfg.Notify.SlideOutMs)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks values that the decoder cannot.
func Validate(cfg Config) error {
	if err := checkValue("fail_on", cfg.FailOn); err != nil {
		return err
	}
	for _, d := range []struct {
		key string
		ms  int
	}{
		{"review.delay_ms", cfg.Review.DelayMs},
		{"demo.delay_ms", cfg.Demo.DelayMs},
		{"notify.slide_in_ms", cfg.Notify.SlideInMs},
		{"notify.dwell_ms", cfg.Notify.DwellMs},
		{"notify.slide_out_ms", cfg.Notify.SlideOutMs},
	} {
		if d.ms < 0 {
			return fmt.Errorf("%s must not be negative", d.key)
		}
	}
	return nil
}

func checkValue(key, value string) error {
	for _, k := range keys {
		if k.name != key {
			continue
		}
		switch k.kind {
		case "int":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("%s must be an integer: %w", key, err)
			}
			if n < 0 {
				return fmt.Errorf("%s must not be negative", key)
			}
		case "bool":
			if _, err := strconv.ParseBool(value); err != nil {
				return fmt.Errorf("%s must be a boolean: %w", key, err)
			}
		case "severity":
			switch value {
			case "none", "low", "medium", "high", "critical":
			default:
				return fmt.Errorf("%s must be one of none, low, medium, high, critical", key)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown config key: %s", key)
}

// SetField sets a single config field by key name. Returns error if key is unknown
// or the value does not parse.
func SetField(cfg *Config, key, value string) error {
	if err := checkValue(key, value); err != nil {
		return err
	}
	atoi := func() int {
		n, _ := strconv.Atoi(value)
		return n
	}
	switch key {
	case "language":
		cfg.Language = value
	case "format":
		cfg.Format = value
	case "fail_on":
		cfg.FailOn = value
	case "extended":
		cfg.Extended, _ = strconv.ParseBool(value)
	case "rules_file":
		cfg.RulesFile = value
	case "review.delay_ms":
		cfg.Review.DelayMs = atoi()
	case "demo.delay_ms":
		cfg.Demo.DelayMs = atoi()
	case "notify.slide_in_ms":
		cfg.Notify.SlideInMs = atoi()
	case "notify.dwell_ms":
		cfg.Notify.DwellMs = atoi()
	case "notify.slide_out_ms":
		cfg.Notify.SlideOutMs = atoi()
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	}
	return nil
}
