package principles

import (
	"fmt"
	"strings"
)

// Collection holds the raw markdown of every catalog document.
// It is built once and never modified afterwards, so it is safe for
// concurrent readers.
type Collection struct {
	docs map[ID][]byte
}

// NewCollection builds a Collection from docs. Every catalog entry must be
// present; extra keys are rejected.
func NewCollection(docs map[ID][]byte) (*Collection, error) {
	var missing []string
	for _, p := range catalog {
		if _, ok := docs[p.ID]; !ok {
			missing = append(missing, string(p.ID))
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	for id := range docs {
		if _, ok := Lookup(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknown, id)
		}
	}

	c := &Collection{docs: make(map[ID][]byte, len(docs))}
	for id, content := range docs {
		c.docs[id] = append([]byte(nil), content...)
	}
	return c, nil
}

// Get returns a copy of the document for id.
func (c *Collection) Get(id ID) ([]byte, bool) {
	content, ok := c.docs[id]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), content...), true
}

// IDs returns the identifiers in navigation order.
func (c *Collection) IDs() []ID {
	ids := make([]ID, 0, len(catalog))
	for _, p := range catalog {
		ids = append(ids, p.ID)
	}
	return ids
}

// Len returns the number of documents.
func (c *Collection) Len() int { return len(c.docs) }
