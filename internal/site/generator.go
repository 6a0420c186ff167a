package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/progress"
	"github.com/ziadkadry99/solidview/internal/render"
	"github.com/ziadkadry99/solidview/internal/viewer"
)

// SiteGenerator writes a static rendition of the viewer: one HTML page per
// principle plus the shared assets.
type SiteGenerator struct {
	OutputDir string
	SiteName  string
	Mermaid   any
	Style     string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(outputDir string) *SiteGenerator {
	return &SiteGenerator{
		OutputDir: outputDir,
		SiteName:  DefaultSiteName,
		Style:     render.DefaultStyle,
	}
}

// Generate builds the full static site from c. Returns the number of pages generated.
// Nothing is written if any document fails to render.
func (g *SiteGenerator) Generate(c *principles.Collection) (int, error) {
	r, err := render.New(render.Options{
		HighlightStyle: g.Style,
		Href:           principles.FileHref,
	})
	if err != nil {
		return 0, err
	}
	v, err := viewer.New(c, r, principles.FileHref)
	if err != nil {
		return 0, err
	}
	shell, err := NewShell(ShellOptions{
		SiteName: g.SiteName,
		Href:     principles.FileHref,
		Mermaid:  g.Mermaid,
	})
	if err != nil {
		return 0, err
	}

	// Render everything in memory first so a failure leaves no partial output.
	pages := make(map[string][]byte)
	for _, id := range c.IDs() {
		view, err := v.Page(id)
		if err != nil {
			return 0, err
		}
		var buf bytes.Buffer
		if err := shell.Write(&buf, view); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", id, err)
		}
		pages[principles.FileHref(id)] = buf.Bytes()
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(pages))

	for _, id := range c.IDs() {
		name := principles.FileHref(id)
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), pages[name], 0o644); err != nil {
			return 0, err
		}
		reporter.Written(name, len(pages[name]))
	}

	// Write static assets.
	assets := map[string]string{
		StyleAsset:     Stylesheet(),
		ScriptAsset:    Script(),
		HighlightAsset: r.Stylesheet(),
	}
	for name, body := range assets {
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), []byte(body), 0o644); err != nil {
			return 0, err
		}
	}

	if err := WriteSearchIndex(BuildSearchIndex(c, principles.FileHref), filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	reporter.Finish(g.OutputDir)
	return len(pages), nil
}
