package site

import (
	"fmt"
	"html/template"
	"io"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/viewer"
)

// DefaultSiteName is shown in the header and page titles.
const DefaultSiteName = "SOLID Principles"

// Static asset names, served from the asset base.
const (
	StyleAsset     = "style.css"
	ScriptAsset    = "app.js"
	HighlightAsset = "highlight.css"
)

// ShellOptions configures how pages reference assets and each other.
type ShellOptions struct {
	SiteName     string
	AssetBase    string // Prefix for static assets, e.g. "/static/" or "".
	AssetVersion string // Appended as ?v= for cache busting. Optional.
	API          string // Prefix of the JSON fragment endpoint. Empty disables in-place swaps.
	Href         principles.HrefFunc
	Mermaid      any // Marshalled to JSON for the diagram library.
}

// Shell renders viewer.Views into full HTML pages.
type Shell struct {
	opts ShellOptions
	tmpl *template.Template
}

// pageData holds the data passed to the HTML template.
type pageData struct {
	Title      string
	SiteName   string
	HomeHref   string
	AssetBase  string
	AssetQuery string
	API        string
	Mermaid    any
	Failed     bool
	Nav        []viewer.NavItem
	Content    template.HTML
}

// NewShell parses the page template.
func NewShell(opts ShellOptions) (*Shell, error) {
	if opts.SiteName == "" {
		opts.SiteName = DefaultSiteName
	}
	if opts.Href == nil {
		opts.Href = principles.RouteHref
	}
	if opts.Mermaid == nil {
		opts.Mermaid = map[string]string{}
	}
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &Shell{opts: opts, tmpl: tmpl}, nil
}

// Write renders v as a complete HTML document.
func (s *Shell) Write(w io.Writer, v viewer.View) error {
	query := ""
	if s.opts.AssetVersion != "" {
		query = "?v=" + s.opts.AssetVersion
	}
	data := pageData{
		Title:      v.Title,
		SiteName:   s.opts.SiteName,
		HomeHref:   s.opts.Href(principles.Home),
		AssetBase:  s.opts.AssetBase,
		AssetQuery: query,
		API:        s.opts.API,
		Mermaid:    s.opts.Mermaid,
		Failed:     v.Failed,
		Nav:        v.Nav,
		Content:    v.Content,
	}
	return s.tmpl.Execute(w, data)
}

// Stylesheet returns the shell stylesheet.
func Stylesheet() string { return cssContent }

// Script returns the browser-side display controller.
func Script() string { return jsContent }
