package render

import (
	"bytes"
	"fmt"
	"html/template"
	"slices"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/solidview/internal/principles"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "monokai"

// Options configures a Renderer.
type Options struct {
	// HighlightStyle is a chroma style name.
	HighlightStyle string
	// Href maps cross-document links to viewer URLs. Nil leaves links untouched.
	Href principles.HrefFunc
}

// Renderer converts markdown documents to HTML fragments.
type Renderer struct {
	md  goldmark.Markdown
	css string
}

// New builds a Renderer. It fails if the highlight style is unknown.
func New(opts Options) (*Renderer, error) {
	styleName := opts.HighlightStyle
	if styleName == "" {
		styleName = DefaultStyle
	}
	if !slices.Contains(styles.Names(), styleName) {
		return nil, fmt.Errorf("unknown highlight style %q", styleName)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			&documentExtension{href: opts.Href},
			highlighting.NewHighlighting(
				highlighting.WithStyle(styleName),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				highlighting.WithWrapperRenderer(codeBlockWrapper),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var css strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&css, styles.Get(styleName)); err != nil {
		return nil, fmt.Errorf("writing highlight stylesheet: %w", err)
	}

	return &Renderer{md: md, css: css.String()}, nil
}

// Render converts src to HTML. docPath is the document's path relative to the
// documentation root and is used to resolve relative links.
func (r *Renderer) Render(docPath string, src []byte) (template.HTML, error) {
	pc := parser.NewContext()
	pc.Set(docPathKey, docPath)

	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf, parser.WithContext(pc)); err != nil {
		return "", fmt.Errorf("converting %s: %w", docPath, err)
	}
	return template.HTML(buf.String()), nil
}

// Stylesheet returns the CSS for highlighted code blocks.
func (r *Renderer) Stylesheet() string { return r.css }

// codeBlockWrapper surrounds every code block with a container holding a copy
// control. Blocks in languages the highlighter does not know are written as
// plain <pre><code>.
func codeBlockWrapper(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="code-block">`)
		_, _ = w.WriteString(`<button type="button" class="copy-btn" aria-label="Copy code">Copy</button>`)
		if !c.Highlighted() {
			_, _ = w.WriteString("<pre><code")
			if lang, ok := c.Language(); ok {
				_, _ = w.WriteString(` class="language-`)
				_, _ = w.Write(util.EscapeHTML(lang))
				_ = w.WriteByte('"')
			}
			_ = w.WriteByte('>')
		}
		return
	}
	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}
