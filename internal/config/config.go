package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all whatif configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Chat       ChatConfig       `toml:"chat"`
	Daemon     DaemonConfig     `toml:"daemon"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultReport string `toml:"default_report"`
	DefaultSpan   int    `toml:"default_span"`
	LedgerPath    string `toml:"ledger_path,omitempty"`
	PresetsPath   string `toml:"presets_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ChatConfig tunes the placeholder assistant.
type ChatConfig struct {
	DelayMS int    `toml:"delay_ms"`
	Reply   string `toml:"reply,omitempty"`
}

// Delay returns the reply delay as a duration.
func (c ChatConfig) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// DaemonConfig holds the HTTP daemon settings.
type DaemonConfig struct {
	Addr         string `toml:"addr"`
	EventsBuffer int    `toml:"events_buffer"`
	LogLevel     string `toml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultReport: "revexp",
			DefaultSpan:   12,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Chat: ChatConfig{
			DelayMS: 800,
		},
		Daemon: DaemonConfig{
			Addr:         "127.0.0.1:8787",
			EventsBuffer: 200,
			LogLevel:     "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "whatif")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "whatif")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			ApplyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	ApplyEnv(&cfg)
	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// LoadDotenv loads KEY=value pairs from a .env file in the working
// directory, if there is one. Variables already set win.
func LoadDotenv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides config fields from WHATIF_* environment variables.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("WHATIF_THEME"); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := os.Getenv("WHATIF_LEDGER"); v != "" {
		cfg.General.LedgerPath = v
	}
	if v := os.Getenv("WHATIF_ADDR"); v != "" {
		cfg.Daemon.Addr = v
	}
}
