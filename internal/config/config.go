/*
File    : minipar/internal/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads Minipar's optional runtime configuration file.
// This never changes language semantics (spec.md §6 still requires no
// environment variables); it only lets an operator override the
// implementation's own defaults without touching Minipar source. Of
// the loaded fields, only Verbose is consulted by the CLI; LogLevel,
// DialTimeout and DefaultHost are parsed but not applied anywhere in
// the interpreter. Grounded on
// perbu-vcltest's pkg/config/loader.go (yaml.Unmarshal into a
// defaulted struct).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds implementation-level defaults. Fields are optional in
// the YAML file; fields absent from the file keep the defaults below.
type Config struct {
	Verbose       bool          `yaml:"verbose"`
	LogLevel      string        `yaml:"log_level"`
	DialTimeout   time.Duration `yaml:"dial_timeout"`
	DefaultHost   string        `yaml:"default_host"`
}

// Default returns the built-in configuration used when no -config
// file is given.
func Default() *Config {
	return &Config{
		Verbose:     false,
		LogLevel:    "info",
		DialTimeout: 5 * time.Second,
		DefaultHost: "127.0.0.1",
	}
}

// Load reads and parses a YAML configuration file, applying Default()
// for any field the file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}
