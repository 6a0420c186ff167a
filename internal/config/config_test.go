package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ziadkadry99/solidview/internal/principles"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SourceDir != "." {
		t.Errorf("expected default source_dir %q, got %q", ".", cfg.SourceDir)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port %d, got %d", DefaultPort, cfg.Server.Port)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("expected default fetch_timeout 10s, got %s", cfg.FetchTimeout)
	}
	if cfg.Mermaid.Theme != "dark" {
		t.Errorf("expected default mermaid theme dark, got %q", cfg.Mermaid.Theme)
	}
	if cfg.Mermaid.ThemeVariables["primaryColor"] != "#661A25" {
		t.Errorf("unexpected primaryColor %q", cfg.Mermaid.ThemeVariables["primaryColor"])
	}
}

func TestDefaultConfigThemeVariablesNotShared(t *testing.T) {
	a := DefaultConfig()
	a.Mermaid.ThemeVariables["primaryColor"] = "#000"
	b := DefaultConfig()
	if b.Mermaid.ThemeVariables["primaryColor"] != "#661A25" {
		t.Error("DefaultConfig shares the theme variable map between calls")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.solidview.yml")

	original := DefaultConfig()
	original.SourceDir = "docs"
	original.FetchTimeout = 3 * time.Second
	original.Server.Port = 9090
	original.Server.AllowAllOrigins = true
	original.Render.HighlightStyle = "dracula"
	original.Log.Format = LogFormatJSON

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.SourceDir != original.SourceDir {
		t.Errorf("source_dir: got %q, want %q", loaded.SourceDir, original.SourceDir)
	}
	if loaded.FetchTimeout != original.FetchTimeout {
		t.Errorf("fetch_timeout: got %s, want %s", loaded.FetchTimeout, original.FetchTimeout)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if !loaded.Server.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if loaded.Render.HighlightStyle != "dracula" {
		t.Errorf("highlight_style: got %q, want dracula", loaded.Render.HighlightStyle)
	}
	if loaded.Log.Format != LogFormatJSON {
		t.Errorf("log.format: got %q, want json", loaded.Log.Format)
	}
	if len(loaded.Mermaid.ThemeVariables) != len(original.Mermaid.ThemeVariables) {
		t.Errorf("theme_variables: got %d entries, want %d", len(loaded.Mermaid.ThemeVariables), len(original.Mermaid.ThemeVariables))
	}
}

func TestSaveWritesDurationString(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".solidview.yml")
	if err := DefaultConfig().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "fetch_timeout: 10s\n") {
		t.Errorf("fetch_timeout not written as a duration:\n%s", data)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("fetch_timeout: got %s, want 10s", cfg.FetchTimeout)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("fetch_timeout: 2s\nserver:\n  port: 3000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.Server.Port)
	}
	if cfg.FetchTimeout != 2*time.Second {
		t.Errorf("fetch_timeout: got %s, want 2s", cfg.FetchTimeout)
	}
	if cfg.Render.HighlightStyle != "monokai" {
		t.Errorf("highlight_style default lost: got %q", cfg.Render.HighlightStyle)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SOLIDVIEW_SOURCE_URL", "https://example.com/solid")
	t.Setenv("SOLIDVIEW_SERVER__PORT", "9191")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SourceURL != "https://example.com/solid" {
		t.Errorf("env override failed: got %q", loaded.SourceURL)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("nested env override failed: got %d, want 9191", loaded.Server.Port)
	}
}

func TestLoadEnvThemeVariableKeepsCase(t *testing.T) {
	t.Setenv("SOLIDVIEW_MERMAID__THEME_VARIABLES__primaryColor", "#112233")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := cfg.Mermaid.ThemeVariables["primaryColor"]; got != "#112233" {
		t.Errorf("primaryColor = %q, want #112233", got)
	}
	if _, ok := cfg.Mermaid.ThemeVariables["primarycolor"]; ok {
		t.Error("theme variable key was lowercased")
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"SOLIDVIEW_SOURCE_DIR":                "source_dir",
		"SOLIDVIEW_RENDER__HIGHLIGHT_STYLE":   "render.highlight_style",
		"SOLIDVIEW_LOG__LEVEL":                "log.level",
		"SOLIDVIEW_SERVER__ALLOW_ALL_ORIGINS": "server.allow_all_origins",
		"SOLIDVIEW_MERMAID__THEME":            "mermaid.theme",

		"SOLIDVIEW_MERMAID__THEME_VARIABLES__primaryColor": "mermaid.theme_variables.primaryColor",
		"SOLIDVIEW_MERMAID__THEME_VARIABLES__lineColor":    "mermaid.theme_variables.lineColor",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no source", func(c *Config) { c.SourceDir = ""; c.SourceURL = "" }},
		{"bad url scheme", func(c *Config) { c.SourceURL = "file:///tmp/docs" }},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"empty style", func(c *Config) { c.Render.HighlightStyle = "" }},
		{"empty output dir", func(c *Config) { c.Render.OutputDir = "" }},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateURLOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceDir = ""
	cfg.SourceURL = "https://raw.example.com/solid/main"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected URL-only config to be valid, got: %v", err)
	}
}

func TestDetectSourceDir(t *testing.T) {
	dir := t.TempDir()
	if got := detectSourceDir(dir); got != "" {
		t.Errorf("empty dir detected as source: %q", got)
	}

	writeCatalog := func(root string, skip principles.ID) {
		for _, p := range principles.Catalog() {
			if p.ID == skip {
				continue
			}
			full := filepath.Join(root, filepath.FromSlash(p.Path))
			if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(full, []byte("# "+p.Title), 0644); err != nil {
				t.Fatal(err)
			}
		}
	}

	// An incomplete set is not a source.
	writeCatalog(filepath.Join(dir, "draft"), principles.DIP)
	if got := detectSourceDir(dir); got != "" {
		t.Errorf("incomplete docs detected as source: %q", got)
	}

	nested := filepath.Join(dir, "content", "solid")
	writeCatalog(nested, "")
	if got := detectSourceDir(dir); got != nested {
		t.Errorf("detectSourceDir = %q, want %q", got, nested)
	}

	writeCatalog(dir, "")
	if got := detectSourceDir(dir); got != dir {
		t.Errorf("detectSourceDir = %q, want root %q", got, dir)
	}
}
