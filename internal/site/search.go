package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/ziadkadry99/solidview/internal/principles"
)

// SearchEntry represents a single searchable document.
type SearchEntry struct {
	ID      principles.ID `json:"id"`
	Href    string        `json:"href"`
	Title   string        `json:"title"`
	Summary string        `json:"summary"`
	Content string        `json:"content"`
}

// BuildSearchIndex builds one entry per document in catalog order.
func BuildSearchIndex(c *principles.Collection, href principles.HrefFunc) []SearchEntry {
	var entries []SearchEntry
	for _, id := range c.IDs() {
		src, _ := c.Get(id)
		p, _ := principles.Lookup(id)
		entries = append(entries, parseMarkdownForSearch(src, p, href))
	}
	return entries
}

// parseMarkdownForSearch extracts title, summary, and content from a markdown document.
func parseMarkdownForSearch(src []byte, p principles.Principle, href principles.HrefFunc) SearchEntry {
	entry := SearchEntry{
		ID:    p.ID,
		Href:  href(p.ID),
		Title: p.Title,
	}

	var lines []string
	foundTitle := false
	foundSummary := false
	inFence := false

	for _, line := range strings.Split(string(src), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)

		if !foundTitle && strings.HasPrefix(trimmed, "# ") {
			entry.Title = strings.TrimPrefix(trimmed, "# ")
			foundTitle = true
			continue
		}

		if !foundSummary && !strings.HasPrefix(trimmed, "#") {
			entry.Summary = trimmed
			foundSummary = true
		}
	}

	entry.Content = strings.Join(lines, " ")
	return entry
}

// SearchResult is an entry with its match score.
type SearchResult struct {
	SearchEntry
	Score int `json:"score"`
}

// Search ranks entries by how often the query terms occur. Title matches
// weigh more than body matches. Entries without any match are dropped.
func Search(entries []SearchEntry, query string) []SearchResult {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var results []SearchResult
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		body := strings.ToLower(e.Content)
		score := 0
		for _, term := range terms {
			score += 10 * strings.Count(title, term)
			score += strings.Count(body, term)
		}
		if score > 0 {
			results = append(results, SearchResult{SearchEntry: e, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
