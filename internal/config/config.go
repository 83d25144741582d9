// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunable options shared by defaults and profiles. Field
// names mirror the command line flags.
type Settings struct {
	Format        string `yaml:"format"`
	Rules         string `yaml:"rules"`
	Partial       bool   `yaml:"partial"`
	RequireDashes bool   `yaml:"require_dashes"`
	DigitsOnly    bool   `yaml:"digits_only"`
	EnforceLength bool   `yaml:"enforce_length"`
	StrictLayout  bool   `yaml:"strict_layout"`
	MaskChar      string `yaml:"mask_char"`
	RevealLast4   bool   `yaml:"reveal_last4"`
	Mode          string `yaml:"mode"`
	NoColor       bool   `yaml:"no_color"`
	Quiet         bool   `yaml:"quiet"`
	ShowInput     bool   `yaml:"show_input"`
}

// Profile represents a named settings bundle for a specific workflow
type Profile struct {
	Settings    `yaml:",inline"`
	Description string `yaml:"description"`
}

// Config represents the application configuration
type Config struct {
	Defaults Settings           `yaml:"defaults"`
	Profiles map[string]Profile `yaml:"profiles"`
}

// defaultSettings returns the baseline settings applied before any config
// file or flags.
func defaultSettings() Settings {
	return Settings{
		Format:   "text",
		Rules:    "both",
		MaskChar: "*",
		Mode:     "public",
	}
}

// builtinProfiles returns the profiles shipped with the tool: "typing" for
// keystroke-by-keystroke form validation and "submit" for final submission
// checks against the canonical form.
func builtinProfiles() map[string]Profile {
	typing := defaultSettings()
	typing.Partial = true

	submit := defaultSettings()
	submit.Partial = false
	submit.EnforceLength = true

	return map[string]Profile{
		"typing": {
			Settings:    typing,
			Description: "Accept in-progress values while the user types",
		},
		"submit": {
			Settings:    submit,
			Description: "Require a complete, strictly valid value in canonical form",
		},
	}
}

// LoadConfig loads configuration from the specified file path. An empty path
// returns the built-in defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Defaults: defaultSettings(),
		Profiles: builtinProfiles(),
	}

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Absent keys keep their defaults: yaml.v3 leaves fields it does not see
	// untouched.
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	for name, profile := range config.Profiles {
		if profile.Format == "" {
			profile.Format = config.Defaults.Format
		}
		if profile.Rules == "" {
			profile.Rules = config.Defaults.Rules
		}
		if profile.MaskChar == "" {
			profile.MaskChar = config.Defaults.MaskChar
		}
		if profile.Mode == "" {
			profile.Mode = config.Defaults.Mode
		}
		config.Profiles[name] = profile
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations
func FindConfigFile() string {
	// Check current directory first
	if fileExists("ssnkit.yaml") {
		return "ssnkit.yaml"
	}
	if fileExists("ssnkit.yml") {
		return "ssnkit.yml"
	}
	if fileExists(".ssnkit.yaml") {
		return ".ssnkit.yaml"
	}
	if fileExists(".ssnkit.yml") {
		return ".ssnkit.yml"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	// Check XDG config directory
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	xdgConfigFile := filepath.Join(xdgConfig, "ssnkit", "config.yaml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}
	xdgConfigFile = filepath.Join(xdgConfig, "ssnkit", "config.yml")
	if fileExists(xdgConfigFile) {
		return xdgConfigFile
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it returns
// the default configuration — callers should not crash on a missing or bad
// config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ListProfiles returns a list of available profile names
func (c *Config) ListProfiles() []string {
	profiles := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		profiles = append(profiles, name)
	}
	return profiles
}

// GetProfile returns a profile by name, or nil if not found
func (c *Config) GetProfile(name string) *Profile {
	if profile, exists := c.Profiles[name]; exists {
		return &profile
	}
	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
