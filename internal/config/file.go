package config

// This file implements the optional YAML defaults file. It is loaded before
// flag parsing so command-line flags always win. $(VAR) placeholders in the
// file are expanded from the environment.

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// expandEnvVars replaces $(VAR) with os.Getenv(VAR).
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(envPattern.FindStringSubmatch(m)[1])
	})
}

// FileConfig mirrors the subset of Config that makes sense as persistent
// defaults. All fields are optional; empty values leave Config untouched.
// Framerate is a string so "23.976" survives without float formatting.
type FileConfig struct {
	Converter string   `yaml:"converter"`
	Encoder   string   `yaml:"encoder"`
	Viewer    string   `yaml:"viewer"`
	Framerate string   `yaml:"framerate"`
	Pad       string   `yaml:"pad"`
	Container string   `yaml:"container"`
	Color     string   `yaml:"color"`
	Include   []string `yaml:"include"`
	Exclude   []string `yaml:"exclude"`
}

// LoadFile reads and parses a YAML defaults file.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := expandEnvVars(string(data))

	var fc FileConfig
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	return &fc, nil
}

// Apply copies the non-empty file values onto cfg.
func (fc *FileConfig) Apply(cfg *Config) {
	if fc.Converter != "" {
		cfg.ConverterBin = fc.Converter
	}
	if fc.Encoder != "" {
		cfg.EncoderBin = fc.Encoder
	}
	if fc.Viewer != "" {
		cfg.ViewerBin = fc.Viewer
	}
	if fc.Framerate != "" {
		cfg.Framerate = fc.Framerate
	}
	if fc.Pad != "" {
		cfg.Pad = fc.Pad
	}
	if fc.Container != "" {
		cfg.Container = Container(fc.Container)
	}
	if fc.Color != "" {
		cfg.ColorMode = ColorMode(fc.Color)
	}
	if len(fc.Include) > 0 {
		cfg.Include = append([]string(nil), fc.Include...)
	}
	if len(fc.Exclude) > 0 {
		cfg.Exclude = append([]string(nil), fc.Exclude...)
	}
}

// DefaultConfigPath returns the conventional defaults-file location
// (~/.config/frameseq/config.yaml), or "" when it does not exist.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "frameseq", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
