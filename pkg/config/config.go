package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"emojictl/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	DefaultClipboardTimeoutSeconds = 2
	minClipboardTimeoutSeconds     = 1
	maxClipboardTimeoutSeconds     = 10
)

// Config holds the complete emojictl configuration. Every field is
// optional; a missing config file yields the defaults.
type Config struct {
	Catalog   CatalogConfig   `yaml:"catalog"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	Notify    NotifyConfig    `yaml:"notify"`
	Recent    RecentConfig    `yaml:"recent"`
}

type CatalogConfig struct {
	// Path points at an explicit catalog file; when set it takes
	// precedence over the executable-dir and working-dir lookups.
	Path string `yaml:"path,omitempty"`
	// UseBuiltin enables the embedded catalog as the last-resort
	// fallback when no file is found on disk.
	UseBuiltin bool `yaml:"use_builtin"`
}

type ClipboardConfig struct {
	// TimeoutSeconds caps each backend attempt. Clamped to 1..10.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type NotifyConfig struct {
	Enabled bool `yaml:"enabled"`
}

type RecentConfig struct {
	// Path overrides the recency file location; empty means the
	// per-user default under the config directory.
	Path string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		Catalog:   CatalogConfig{UseBuiltin: true},
		Clipboard: ClipboardConfig{TimeoutSeconds: DefaultClipboardTimeoutSeconds},
		Notify:    NotifyConfig{Enabled: true},
	}
}

// Load reads the config file if present and applies environment
// overrides. A missing file is not an error; a malformed one is,
// because silently ignoring a file the user wrote hides typos.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to resolve config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "emojictl", "config.yaml"), nil
}

// Save writes the configuration to the per-user config file, creating
// the directory if needed.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to resolve config path", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to write config file", err)
	}

	return nil
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := Default()

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	normalize(cfg)

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// No config file, defaults apply.
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

func applyEnvironmentOverrides(cfg *Config) {
	if v := os.Getenv("EMOJICTL_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("EMOJICTL_RECENT_FILE"); v != "" {
		cfg.Recent.Path = v
	}
	if v := os.Getenv("EMOJICTL_CLIPBOARD_TIMEOUT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Clipboard.TimeoutSeconds = parsed
		}
	}
	if v := os.Getenv("EMOJICTL_NOTIFY"); v != "" {
		cfg.Notify.Enabled = parseBool(v, cfg.Notify.Enabled)
	}
}

func normalize(cfg *Config) {
	if cfg.Clipboard.TimeoutSeconds < minClipboardTimeoutSeconds {
		cfg.Clipboard.TimeoutSeconds = minClipboardTimeoutSeconds
	}
	if cfg.Clipboard.TimeoutSeconds > maxClipboardTimeoutSeconds {
		cfg.Clipboard.TimeoutSeconds = maxClipboardTimeoutSeconds
	}
}

func parseBool(value string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}
