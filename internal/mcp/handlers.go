package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/render"
	"github.com/ziadkadry99/solidview/internal/site"
)

// handleListPrinciples lists the catalog in navigation order.
func (s *Server) handleListPrinciples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, p := range principles.Catalog() {
		fmt.Fprintf(&sb, "- %s (%s): %s [%s]\n", p.ID, p.Label, p.Title, p.Path)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetPrinciple returns the raw Markdown of one document.
func (s *Server) handleGetPrinciple(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.principleArg(request)
	if errResult != nil {
		return errResult, nil
	}
	src, _ := s.docs.Get(p.ID)
	return mcp.NewToolResultText(string(src)), nil
}

// handleSearchPrinciples ranks documents against a keyword query.
func (s *Server) handleSearchPrinciples(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 6)
	if limit <= 0 {
		limit = 6
	}

	results := site.Search(s.search, query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No documents mention %q.", query)), nil
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return mcp.NewToolResultText(formatSearchResults(results)), nil
}

// handleGetDiagrams returns the diagram sources of one document.
func (s *Server) handleGetDiagrams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errResult := s.principleArg(request)
	if errResult != nil {
		return errResult, nil
	}
	src, _ := s.docs.Get(p.ID)
	diagrams := render.Diagrams(src)
	if len(diagrams) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("%s has no diagrams.", p.Label)), nil
	}

	var sb strings.Builder
	for i, d := range diagrams {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("```mermaid\n")
		sb.WriteString(d)
		sb.WriteString("```\n")
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// principleArg resolves the id argument, or returns the tool error to send.
func (s *Server) principleArg(request mcp.CallToolRequest) (principles.Principle, *mcp.CallToolResult) {
	raw, err := request.RequireString("id")
	if err != nil {
		return principles.Principle{}, mcp.NewToolResultError("missing required parameter: id")
	}
	id, err := principles.Parse(raw)
	if err != nil {
		return principles.Principle{}, mcp.NewToolResultError(fmt.Sprintf("unknown principle %q: use one of home, srp, ocp, lsp, isp, dip", raw))
	}
	p, _ := principles.Lookup(id)
	return p, nil
}

// formatSearchResults converts search results into a text format suited to
// AI agent consumption.
func formatSearchResults(results []site.SearchResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d document(s):\n", len(results))
	for i, r := range results {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "ID: %s\nTitle: %s\nScore: %d\n", r.ID, r.Title, r.Score)
		if r.Summary != "" {
			fmt.Fprintf(&sb, "\n%s\n", r.Summary)
		}
	}
	return sb.String()
}
