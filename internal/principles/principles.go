package principles

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ID identifies one of the documents the viewer can display.
type ID string

const (
	Home ID = "home"
	SRP  ID = "srp"
	OCP  ID = "ocp"
	LSP  ID = "lsp"
	ISP  ID = "isp"
	DIP  ID = "dip"
)

var (
	// ErrUnknown is returned when an identifier is not part of the catalog.
	ErrUnknown = errors.New("unknown principle")
	// ErrIncomplete is returned when a collection is missing one or more documents.
	ErrIncomplete = errors.New("incomplete document collection")
)

// Principle describes a single document in the catalog.
type Principle struct {
	ID    ID
	Label string // Short text shown on the navigation button.
	Title string // Full name, used for page titles.
	Path  string // Document path relative to the documentation root.
}

// catalog is the fixed, ordered set of documents. Order is navigation order.
var catalog = []Principle{
	{ID: Home, Label: "Home", Title: "SOLID Principles", Path: "README.md"},
	{ID: SRP, Label: "SRP", Title: "Single Responsibility Principle", Path: "SRP/README.md"},
	{ID: OCP, Label: "OCP", Title: "Open/Closed Principle", Path: "OCP/README.md"},
	{ID: LSP, Label: "LSP", Title: "Liskov Substitution Principle", Path: "LSP/README.md"},
	{ID: ISP, Label: "ISP", Title: "Interface Segregation Principle", Path: "ISP/README.md"},
	{ID: DIP, Label: "DIP", Title: "Dependency Inversion Principle", Path: "DIP/README.md"},
}

// Catalog returns the principles in navigation order. The returned slice is a copy.
func Catalog() []Principle {
	out := make([]Principle, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id ID) (Principle, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Principle{}, false
}

// ByPath returns the catalog entry whose document lives at p.
// Leading "./" and "/" are ignored.
func ByPath(p string) (Principle, bool) {
	p = path.Clean("/" + p)
	p = strings.TrimPrefix(p, "/")
	for _, c := range catalog {
		if strings.EqualFold(c.Path, p) {
			return c, true
		}
	}
	return Principle{}, false
}

// Parse converts s into an ID. Matching is case-insensitive.
func Parse(s string) (ID, error) {
	id := ID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := Lookup(id); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return id, nil
}

// HrefFunc maps a principle to the URL it is displayed at.
type HrefFunc func(ID) string

// RouteHref is the HrefFunc for the HTTP server: home lives at "/" and every
// other principle at "/p/{id}".
func RouteHref(id ID) string {
	if id == Home {
		return "/"
	}
	return "/p/" + string(id)
}

// FileHref is the HrefFunc for a flat static export: "index.html" for home
// and "{id}.html" for the rest.
func FileHref(id ID) string {
	if id == Home {
		return "index.html"
	}
	return string(id) + ".html"
}
