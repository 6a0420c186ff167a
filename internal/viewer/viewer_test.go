package viewer

import (
	"errors"
	"strings"
	"testing"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/render"
)

func testViewer(t *testing.T) *Viewer {
	t.Helper()
	docs := make(map[principles.ID][]byte)
	for _, p := range principles.Catalog() {
		docs[p.ID] = []byte("# " + p.Title + "\n\nBody of " + string(p.ID) + ".\n")
	}
	docs[principles.OCP] = []byte("# Open/Closed\n\n```mermaid\ngraph TD\nA-->B\n```\n")
	c, err := principles.NewCollection(docs)
	if err != nil {
		t.Fatalf("NewCollection: %v", err)
	}
	r, err := render.New(render.Options{Href: principles.RouteHref})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	v, err := New(c, r, principles.RouteHref)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return v
}

func activeCount(items []NavItem) int {
	n := 0
	for _, it := range items {
		if it.Active {
			n++
		}
	}
	return n
}

func TestPageShowsExactlyThatDocument(t *testing.T) {
	v := testViewer(t)
	for _, p := range principles.Catalog() {
		t.Run(string(p.ID), func(t *testing.T) {
			view, err := v.Page(p.ID)
			if err != nil {
				t.Fatalf("Page: %v", err)
			}
			if view.Active != p.ID {
				t.Errorf("Active = %q, want %q", view.Active, p.ID)
			}
			if n := activeCount(view.Nav); n != 1 {
				t.Fatalf("active nav items = %d, want 1", n)
			}
			for _, it := range view.Nav {
				if it.Active && it.ID != p.ID {
					t.Errorf("nav item %q active, want %q", it.ID, p.ID)
				}
			}
			if p.ID != principles.OCP && !strings.Contains(string(view.Content), "Body of "+string(p.ID)) {
				t.Errorf("content does not belong to %s: %s", p.ID, view.Content)
			}
			for _, other := range principles.Catalog() {
				if other.ID != p.ID && strings.Contains(string(view.Content), "Body of "+string(other.ID)+".") {
					t.Errorf("content of %s leaked into %s", other.ID, p.ID)
				}
			}
		})
	}
}

func TestPageIdempotent(t *testing.T) {
	v := testViewer(t)
	a, err := v.Page(principles.OCP)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	b, err := v.Page(principles.OCP)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if a.Content != b.Content || a.Title != b.Title {
		t.Error("selecting the same principle twice produced different output")
	}
	if !strings.Contains(string(a.Content), `<div class="mermaid">`) {
		t.Errorf("expected diagram placeholder, got %s", a.Content)
	}
}

func TestPageUnknown(t *testing.T) {
	v := testViewer(t)
	if _, err := v.Page("kiss"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPageTitleFromHeading(t *testing.T) {
	v := testViewer(t)
	view, _ := v.Page(principles.OCP)
	if view.Title != "Open/Closed" {
		t.Errorf("Title = %q, want %q", view.Title, "Open/Closed")
	}
}

func TestNavHrefs(t *testing.T) {
	v := testViewer(t)
	view, _ := v.Page(principles.Home)
	if view.Nav[0].Href != "/" || view.Nav[1].Href != "/p/srp" {
		t.Errorf("unexpected hrefs: %q, %q", view.Nav[0].Href, view.Nav[1].Href)
	}
}

func TestFailedView(t *testing.T) {
	view := Failed(nil)
	if !view.Failed {
		t.Error("Failed flag not set")
	}
	if view.Active != "" {
		t.Errorf("Active = %q, want empty", view.Active)
	}
	if n := activeCount(view.Nav); n != 0 {
		t.Errorf("active nav items = %d, want 0", n)
	}
	if !strings.Contains(string(view.Content), "Error Loading Content") {
		t.Errorf("missing error heading: %s", view.Content)
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		content, want string
	}{
		{"# Hello\ntext", "Hello"},
		{"intro\n## Sub\n# Main  ", "Main"},
		{"```\n# not a title\n```\n# Real", "Real"},
		{"no heading", "fallback"},
	}
	for _, tt := range tests {
		if got := extractTitle(tt.content, "fallback"); got != tt.want {
			t.Errorf("extractTitle(%q) = %q, want %q", tt.content, got, tt.want)
		}
	}
}
