package render

import (
	"bytes"
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/solidview/internal/principles"
)

// DiagramLanguage is the fenced code block language rendered as a diagram placeholder.
const DiagramLanguage = "mermaid"

// KindDiagram is the node kind of Diagram.
var KindDiagram = ast.NewNodeKind("Diagram")

// Diagram is a block holding diagram source. It replaces a fenced code block
// tagged with DiagramLanguage and renders as a placeholder element that the
// browser-side diagram library turns into a picture.
type Diagram struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *Diagram) Kind() ast.NodeKind { return KindDiagram }

// IsRaw implements ast.Node.
func (n *Diagram) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *Diagram) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// docPathKey carries the path of the document being rendered so relative
// links can be resolved against it.
var docPathKey = parser.NewContextKey()

// documentTransformer swaps diagram code blocks for Diagram nodes and points
// links at other catalog documents to their viewer URLs.
type documentTransformer struct {
	href principles.HrefFunc
}

func (t *documentTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	docPath, _ := pc.Get(docPathKey).(string)

	var diagrams []*ast.FencedCodeBlock
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.FencedCodeBlock:
			if strings.EqualFold(string(node.Language(source)), DiagramLanguage) {
				diagrams = append(diagrams, node)
			}
			return ast.WalkSkipChildren, nil
		case *ast.Link:
			if t.href != nil {
				if dest, ok := rewriteLink(docPath, string(node.Destination), t.href); ok {
					node.Destination = []byte(dest)
				}
			}
		}
		return ast.WalkContinue, nil
	})

	for _, block := range diagrams {
		d := &Diagram{}
		d.SetLines(block.Lines())
		parent := block.Parent()
		if parent != nil {
			parent.ReplaceChild(parent, block, d)
		}
	}
}

// rewriteLink resolves dest relative to docPath. If it names a catalog
// document, the viewer URL for that document is returned, keeping any fragment.
func rewriteLink(docPath, dest string, href principles.HrefFunc) (string, bool) {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "//") {
		return "", false
	}
	u, err := url.Parse(dest)
	if err != nil || u.Scheme != "" || u.Host != "" || u.Path == "" {
		return "", false
	}

	target := u.Path
	if !strings.HasPrefix(target, "/") {
		target = path.Join(path.Dir(docPath), target)
	}
	// A link to a directory means its README.
	if strings.HasSuffix(u.Path, "/") || path.Ext(target) == "" {
		target = path.Join(target, "README.md")
	}

	p, ok := principles.ByPath(target)
	if !ok {
		return "", false
	}
	out := href(p.ID)
	if u.Fragment != "" {
		out += "#" + u.Fragment
	}
	return out, true
}

// diagramRenderer writes Diagram nodes as placeholder elements.
type diagramRenderer struct{}

func (r *diagramRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindDiagram, r.renderDiagram)
}

func (r *diagramRenderer) renderDiagram(w util.BufWriter, source []byte, n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	_, _ = w.WriteString(`<div class="mermaid">`)
	_, _ = w.Write(util.EscapeHTML(buf.Bytes()))
	_, _ = w.WriteString("</div>\n")
	return ast.WalkSkipChildren, nil
}

// documentExtension wires the transformer and renderer into goldmark.
type documentExtension struct {
	href principles.HrefFunc
}

func (e *documentExtension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&documentTransformer{href: e.href}, 100),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&diagramRenderer{}, 100),
	))
}

// Diagrams returns the source of every diagram block in src, in document order.
func Diagrams(src []byte) []string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var out []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		block, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if strings.EqualFold(string(block.Language(src)), DiagramLanguage) {
			var buf bytes.Buffer
			lines := block.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			out = append(out, buf.String())
		}
		return ast.WalkSkipChildren, nil
	})
	return out
}
