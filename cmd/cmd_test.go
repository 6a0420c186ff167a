package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ziadkadry99/solidview/internal/config"
	"github.com/ziadkadry99/solidview/internal/principles"
)

func writeDocs(t *testing.T, dir string) {
	t.Helper()
	for _, p := range principles.Catalog() {
		full := filepath.Join(dir, filepath.FromSlash(p.Path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("# "+p.Title+"\n\nAbout "+p.Label+".\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("CI", "true")
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeDocs(t, docs)

	cfg := config.DefaultConfig()
	cfg.SourceDir = docs
	cfg.Render.OutputDir = filepath.Join(dir, "site")
	cfgPath := filepath.Join(dir, ".solidview.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", "--config", cfgPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if !strings.Contains(out, "(6 pages)") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "site", "dip.html")); err != nil {
		t.Errorf("dip.html not written: %v", err)
	}
}

func TestRenderCommandMissingDocument(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeDocs(t, docs)
	if err := os.Remove(filepath.Join(docs, "OCP", "README.md")); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.SourceDir = docs
	cfg.Render.OutputDir = filepath.Join(dir, "site")
	cfgPath := filepath.Join(dir, ".solidview.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "render", "--config", cfgPath); err == nil {
		t.Fatal("expected error when a document is missing")
	}
	if _, err := os.Stat(filepath.Join(dir, "site")); !os.IsNotExist(err) {
		t.Error("no output expected after a failed load")
	}
}

func TestVerboseFlagLowersLogLevel(t *testing.T) {
	t.Setenv("CI", "true")
	t.Cleanup(func() { verbose = false })
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")
	writeDocs(t, docs)

	cfg := config.DefaultConfig()
	cfg.SourceDir = docs
	cfg.Render.OutputDir = filepath.Join(dir, "site")
	cfg.Log.Level = "warn"
	cfgPath := filepath.Join(dir, ".solidview.yml")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "render", "--config", cfgPath)
	if err != nil {
		t.Fatalf("render: %v\n%s", err, out)
	}
	if strings.Contains(out, "loading documents") {
		t.Errorf("debug record written at warn level: %q", out)
	}

	out, err = execute(t, "render", "--config", cfgPath, "--verbose")
	if err != nil {
		t.Fatalf("render --verbose: %v\n%s", err, out)
	}
	if !strings.Contains(out, "loading documents") {
		t.Errorf("--verbose did not enable debug records: %q", out)
	}
}

func TestInitCommand(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), ".solidview.yml")

	if _, err := execute(t, "init", "--config", cfgPath); err != nil {
		t.Fatalf("init: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != config.DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Server.Port, config.DefaultPort)
	}

	if _, err := execute(t, "init", "--config", cfgPath); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if out != "solidview dev\n" {
		t.Errorf("output = %q", out)
	}
}
