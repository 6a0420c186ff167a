package config

import "time"

// LogFormat selects the stderr log encoding.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config is the top-level solidview configuration, corresponding to .solidview.yml.
type Config struct {
	SourceDir    string        `yaml:"source_dir" koanf:"source_dir"`
	SourceURL    string        `yaml:"source_url" koanf:"source_url"` // Takes precedence over SourceDir when set.
	FetchTimeout time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Server       ServerConfig  `yaml:"server" koanf:"server"`
	Render       RenderConfig  `yaml:"render" koanf:"render"`
	Mermaid      MermaidConfig `yaml:"mermaid" koanf:"mermaid"`
	Log          LogConfig     `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// RenderConfig holds markdown rendering and static export settings.
type RenderConfig struct {
	HighlightStyle string `yaml:"highlight_style" koanf:"highlight_style"`
	OutputDir      string `yaml:"output_dir" koanf:"output_dir"`
}

// MermaidConfig is passed to the browser-side diagram library as-is.
type MermaidConfig struct {
	Theme          string            `yaml:"theme" koanf:"theme" json:"theme"`
	SecurityLevel  string            `yaml:"security_level" koanf:"security_level" json:"securityLevel"`
	ThemeVariables map[string]string `yaml:"theme_variables" koanf:"theme_variables" json:"themeVariables,omitempty"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level   string    `yaml:"level" koanf:"level"`
	Format  LogFormat `yaml:"format" koanf:"format"`
	File    string    `yaml:"file" koanf:"file"`       // Optional JSON log file, in addition to stderr.
	Journal bool      `yaml:"journal" koanf:"journal"` // Also send records to the systemd journal.
}
