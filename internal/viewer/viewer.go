package viewer

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/render"
)

// ErrNotFound is returned for identifiers the viewer has no document for.
var ErrNotFound = errors.New("principle not found")

// NavItem is one navigation control.
type NavItem struct {
	ID     principles.ID
	Label  string
	Title  string
	Href   string
	Active bool
}

// View is everything needed to display one document.
type View struct {
	Active  principles.ID // Empty for the failure view.
	Title   string
	Content template.HTML
	Nav     []NavItem
	Failed  bool
}

// Viewer maps principle identifiers to rendered documents.
// All documents are rendered up front, so Page never re-parses markdown and
// repeated selections return identical output.
type Viewer struct {
	pages map[principles.ID]page
	href  principles.HrefFunc
}

type page struct {
	title   string
	content template.HTML
}

// New renders every document in c with r.
func New(c *principles.Collection, r *render.Renderer, href principles.HrefFunc) (*Viewer, error) {
	if href == nil {
		href = principles.RouteHref
	}
	v := &Viewer{
		pages: make(map[principles.ID]page, c.Len()),
		href:  href,
	}
	for _, p := range principles.Catalog() {
		src, ok := c.Get(p.ID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", principles.ErrIncomplete, p.ID)
		}
		content, err := r.Render(p.Path, src)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", p.ID, err)
		}
		v.pages[p.ID] = page{
			title:   extractTitle(string(src), p.Title),
			content: content,
		}
	}
	return v, nil
}

// Page returns the view for id with exactly one navigation item active.
func (v *Viewer) Page(id principles.ID) (View, error) {
	pg, ok := v.pages[id]
	if !ok {
		return View{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return View{
		Active:  id,
		Title:   pg.title,
		Content: pg.content,
		Nav:     nav(id, v.href),
	}, nil
}

// failureContent is shown when the documents could not be loaded at startup.
const failureContent = `<h1>Error Loading Content</h1>
<p>Unable to load the documentation. Please try:</p>
<ul>
  <li>Checking that the configured source directory or URL is reachable</li>
  <li>Checking if all README.md files are present in their respective folders</li>
  <li>Restarting the viewer once the documents are in place</li>
</ul>
`

// Failed returns the view shown when startup loading failed. No navigation
// item is active. The cause is logged by the caller, not displayed.
func Failed(href principles.HrefFunc) View {
	if href == nil {
		href = principles.RouteHref
	}
	return View{
		Title:   "Error Loading Content",
		Content: template.HTML(failureContent),
		Nav:     nav("", href),
		Failed:  true,
	}
}

func nav(active principles.ID, href principles.HrefFunc) []NavItem {
	catalog := principles.Catalog()
	items := make([]NavItem, 0, len(catalog))
	for _, p := range catalog {
		items = append(items, NavItem{
			ID:     p.ID,
			Label:  p.Label,
			Title:  p.Title,
			Href:   href(p.ID),
			Active: p.ID == active,
		})
	}
	return items
}

// extractTitle pulls the first # heading from markdown content, or falls back.
func extractTitle(content, fallback string) string {
	inFence := false
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			continue
		}
		if !inFence && strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}
