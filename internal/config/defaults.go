package config

import (
	"maps"
	"time"

	"github.com/ziadkadry99/solidview/internal/render"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// defaultThemeVariables is the dark red/navy palette the viewer ships with.
var defaultThemeVariables = map[string]string{
	"primaryColor":         "#661A25",
	"primaryTextColor":     "#fff",
	"primaryBorderColor":   "#872341",
	"lineColor":            "#E17564",
	"secondaryColor":       "#4D1425",
	"tertiaryColor":        "#09122C",
	"textColor":            "#E17564",
	"mainBkg":              "#09122C",
	"nodeBorder":           "#872341",
	"clusterBkg":           "rgba(135, 35, 65, 0.15)",
	"titleColor":           "#fff",
	"edgeLabelBackground":  "#09122C",
	"nodeTextColor":        "#fff",
	"labelBackgroundColor": "#09122C",
	"classText":            "#fff",
	"noteBackgroundColor":  "#BE3144",
	"noteBorderColor":      "#872341",
	"errorBkgColor":        "#661A25",
	"errorTextColor":       "#fff",
	"warningBkgColor":      "#8B4513",
	"warningTextColor":     "#fff",
	"successBkgColor":      "#1B4D3E",
	"successTextColor":     "#fff",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SourceDir:    ".",
		FetchTimeout: 10 * time.Second,
		Server: ServerConfig{
			Port: DefaultPort,
		},
		Render: RenderConfig{
			HighlightStyle: render.DefaultStyle,
			OutputDir:      "site",
		},
		Mermaid: MermaidConfig{
			Theme:          "dark",
			SecurityLevel:  "loose",
			ThemeVariables: maps.Clone(defaultThemeVariables),
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatText,
		},
	}
}
