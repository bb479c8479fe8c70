// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by [Load].
const (
	EnvConfigFile = "CERTLITE_CONFIG_FILE"
	EnvLogLevel   = "CERTLITE_LOG_LEVEL"
	EnvAlgorithm  = "CERTLITE_ALGORITHM"
)

var (
	// ErrRead indicates the configuration file could not be read.
	ErrRead = errors.New("config: failed to read config file")

	// ErrParse indicates the configuration file is not well-formed JSON or YAML.
	ErrParse = errors.New("config: failed to parse config file")

	// ErrInvalid indicates the configuration violates the schema.
	ErrInvalid = errors.New("config: invalid configuration")
)

var (
	//go:embed schema.json
	schema []byte

	//go:embed template.yaml
	template []byte

	schemaLoader = gojsonschema.NewBytesLoader(schema)
)

// Schema returns the JSON schema configuration documents are validated against.
func Schema() []byte { return append([]byte(nil), schema...) }

// Template returns an annotated YAML configuration holding the defaults.
func Template() []byte { return append([]byte(nil), template...) }

// configFormat represents supported configuration file formats.
type configFormat int

const (
	configFormatJSON configFormat = iota
	configFormatYAML
)

// Config holds CertLite settings.
type Config struct {
	// Defaults are used when the caller does not supply a value.
	Defaults struct {
		Domain    string `json:"domain,omitempty" yaml:"domain,omitempty"`
		OutputDir string `json:"outputDir,omitempty" yaml:"outputDir,omitempty"`
		Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	} `json:"defaults" yaml:"defaults"`

	// Log configures diagnostics on stderr.
	Log struct {
		Level  string `json:"level,omitempty" yaml:"level,omitempty"`
		Format string `json:"format,omitempty" yaml:"format,omitempty"`
	} `json:"log" yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Defaults.Domain = "localhost"
	c.Defaults.OutputDir = "."
	c.Defaults.Algorithm = "SHA256"
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// detectConfigFormat determines the configuration file format from its extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// Load builds the effective configuration.
//
// Parameters:
//   - configPath: Path to a .json, .yaml or .yml file. When empty,
//     CERTLITE_CONFIG_FILE is consulted; when both are empty only defaults
//     and environment overrides apply.
//
// Returns:
//   - *Config: Defaults, overlaid by the file, overlaid by the environment.
//   - error: [ErrRead], [ErrParse] or [ErrInvalid].
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
		if err := cfg.merge(data, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		cfg.Defaults.Algorithm = v
	}

	if err := validate(gojsonschema.NewGoLoader(cfg)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// merge validates data and decodes it over c.
func (c *Config) merge(data []byte, format configFormat) error {
	var doc gojsonschema.JSONLoader
	switch format {
	case configFormatYAML:
		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("%w: YAML: %w", ErrParse, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
		doc = gojsonschema.NewGoLoader(raw)
	default:
		if !json.Valid(data) {
			return fmt.Errorf("%w: JSON: malformed document", ErrParse)
		}
		doc = gojsonschema.NewBytesLoader(data)
	}

	if err := validate(doc); err != nil {
		return err
	}

	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: YAML: %w", ErrParse, err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("%w: JSON: %w", ErrParse, err)
		}
	}
	return nil
}

// validate checks doc against the embedded schema and joins every violation.
func validate(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}
