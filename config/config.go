// Package config loads timewarp settings from YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spiffcs/timewarp/internal/constants"
	"github.com/spiffcs/timewarp/internal/timestamp"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Format is the strftime format used when --format is not given.
	Format string `yaml:"format,omitempty" json:"format,omitempty"`

	// KeepGoing reports malformed samples and continues instead of
	// stopping at the first one. Nil means the fail-fast default.
	KeepGoing *bool `yaml:"keep_going,omitempty" json:"keep_going,omitempty"`
}

// DefaultConfigDir returns the default config directory
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "." + constants.AppName
	}
	return filepath.Join(configDir, constants.AppName)
}

// ConfigPath returns the path to the global config file
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), constants.ConfigFileName)
}

// LocalConfigPath returns the path to the local config file in the current directory
func LocalConfigPath() string {
	return constants.LocalConfigFileName
}

// Load loads the configuration from disk.
// It first loads the global config, then merges any local config on top
// (local values take precedence).
func Load() (*Config, error) {
	return LoadFrom(ConfigPath(), LocalConfigPath())
}

// LoadFrom is Load with explicit global and local paths. Missing files
// are skipped.
func LoadFrom(globalPath, localPath string) (*Config, error) {
	cfg := &Config{}

	global, err := readFile(globalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load global config file: %w", err)
	}
	if global != nil {
		cfg = global
	}

	local, err := readFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load local config file: %w", err)
	}
	if local != nil {
		cfg = mergeConfig(cfg, local)
	}

	return cfg, nil
}

func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfig merges local config on top of global config.
// Local values take precedence; unset local values preserve global values.
func mergeConfig(global, local *Config) *Config {
	result := *global
	if local.Format != "" {
		result.Format = local.Format
	}
	if local.KeepGoing != nil {
		result.KeepGoing = local.KeepGoing
	}
	return &result
}

// Save writes the configuration to the global config file
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return SaveTo(ConfigPath(), string(data))
}

// TimestampFormat returns the configured format or the built-in default.
func (c *Config) TimestampFormat() string {
	if c.Format != "" {
		return c.Format
	}
	return timestamp.DefaultFormat
}

// ShouldKeepGoing reports whether malformed samples should be skipped.
func (c *Config) ShouldKeepGoing() bool {
	return c.KeepGoing != nil && *c.KeepGoing
}

// DefaultConfig returns a fully populated config with all default values.
func DefaultConfig() *Config {
	keepGoing := false
	return &Config{
		Format:    timestamp.DefaultFormat,
		KeepGoing: &keepGoing,
	}
}

// ToYAML returns the config as a YAML string
func (c *Config) ToYAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// ConfigPathInfo contains information about config file paths
type ConfigPathInfo struct {
	GlobalPath   string
	GlobalExists bool
	LocalPath    string
	LocalExists  bool
}

// GetConfigPaths returns path info for both global and local configs
func GetConfigPaths() ConfigPathInfo {
	globalPath := ConfigPath()
	localPath := LocalConfigPath()

	absLocalPath, err := filepath.Abs(localPath)
	if err != nil {
		absLocalPath = localPath
	}

	_, globalErr := os.Stat(globalPath)
	_, localErr := os.Stat(localPath)

	return ConfigPathInfo{
		GlobalPath:   globalPath,
		GlobalExists: globalErr == nil,
		LocalPath:    absLocalPath,
		LocalExists:  localErr == nil,
	}
}

// MinimalConfig returns a minimal config template with comments
func MinimalConfig() string {
	return `# timewarp configuration file
# See: timewarp config defaults  (for all available options)

# strftime format for --ref-time and samples when --format is not given
# format: "%a %b %e %T %Y"

# Report malformed samples and continue instead of stopping at the first one
# keep_going: false
`
}

// SaveTo writes content to a specific path, creating directories as needed
func SaveTo(path string, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}
