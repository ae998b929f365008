/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/ssargent/charseq/pkg/codec"
	"gopkg.in/yaml.v3"
)

// Config represents the charseq configuration
type Config struct {
	DataDir  string   `yaml:"data_dir" toml:"data_dir"`
	Port     int      `yaml:"port" toml:"port"`
	Bind     string   `yaml:"bind" toml:"bind"`
	Security Security `yaml:"security" toml:"security"`
	Logging  Logging  `yaml:"logging" toml:"logging"`
	Builder  Builder  `yaml:"builder" toml:"builder"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key" toml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Builder contains text builder defaults
type Builder struct {
	InitialCapacity int `yaml:"initial_capacity" toml:"initial_capacity"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "./data",
		Port:    8080,
		Bind:    "127.0.0.1",
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
		Builder: Builder{
			InitialCapacity: 4,
		},
	}
}

// Validate checks that the configuration values are usable
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir is required")
	}
	if c.Port < 0 || c.Port > 65535 {
		return errors.Newf("port %d out of range", c.Port)
	}
	if c.Builder.InitialCapacity < 1 {
		return errors.Newf("builder.initial_capacity must be positive, got %d", c.Builder.InitialCapacity)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// LoadConfig loads configuration from the specified path. Files ending in
// .toml are parsed as TOML, everything else as YAML. Fields missing from the
// file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, errors.Newf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	config := DefaultConfig()
	if isTOML(configPath) {
		err = toml.Unmarshal(data, config)
	} else {
		err = yaml.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	var (
		data []byte
		err  error
	)
	if isTOML(configPath) {
		data, err = toml.Marshal(config)
	} else {
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key,
// rendered as an uppercase hex dump
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate secure key")
	}
	return codec.ToHexString(bytes, 0, length)
}

// BootstrapConfig creates a new configuration with a generated API key and saves it
func BootstrapConfig(configPath string, dataDir string) (*Config, error) {
	config := DefaultConfig()
	if dataDir != "" {
		config.DataDir = dataDir
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate API key")
	}
	config.Security.APIKey = apiKey

	if err := SaveConfig(config, configPath); err != nil {
		return nil, errors.Wrap(err, "failed to save bootstrap config")
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./charseq.yaml"
	}

	// For Linux/macOS, use ~/.config/charseq/config.yaml
	configDir := filepath.Join(homeDir, ".config", "charseq")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
