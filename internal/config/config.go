package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "SOLIDVIEW_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SOLIDVIEW_*). Nested keys use a double
// underscore: SOLIDVIEW_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps SOLIDVIEW_RENDER__HIGHLIGHT_STYLE to render.highlight_style.
// Segments below mermaid.theme_variables keep their case, since mermaid
// variable names are camelCase.
func envKey(s string) string {
	parts := strings.Split(strings.TrimPrefix(s, EnvPrefix), "__")
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
		if i == 1 && parts[0] == "mermaid" && parts[1] == "theme_variables" {
			break
		}
	}
	return strings.Join(parts, ".")
}

// Save writes the configuration to the given YAML file path. Durations are
// written in their string form (10s) so the file stays hand-editable.
func (c *Config) Save(path string) error {
	var doc yamlv3.Node
	if err := doc.Encode(c); err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "fetch_timeout" {
			doc.Content[i+1].SetString(c.FetchTimeout.String())
		}
	}
	data, err := yamlv3.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[LogFormat]bool{
	LogFormatText: true,
	LogFormatJSON: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SourceDir == "" && c.SourceURL == "" {
		return fmt.Errorf("one of source_dir or source_url is required")
	}

	if c.SourceURL != "" {
		u, err := url.Parse(c.SourceURL)
		if err != nil {
			return fmt.Errorf("invalid source_url %q: %w", c.SourceURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid source_url %q: scheme must be http or https", c.SourceURL)
		}
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 1 and 65535", c.Server.Port)
	}

	if c.Render.HighlightStyle == "" {
		return fmt.Errorf("render.highlight_style is required")
	}

	if c.Render.OutputDir == "" {
		return fmt.Errorf("render.output_dir is required")
	}

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of debug, info, warn, error", c.Log.Level)
	}

	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be text or json", c.Log.Format)
	}

	return nil
}
