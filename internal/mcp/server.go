package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/site"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the principle documents.
type Server struct {
	docs   *principles.Collection
	search []site.SearchEntry
	mcp    *server.MCPServer
}

// NewServer creates a new MCP server over a loaded collection.
func NewServer(docs *principles.Collection) *Server {
	s := &Server{
		docs:   docs,
		search: site.BuildSearchIndex(docs, principles.RouteHref),
	}

	s.mcp = server.NewMCPServer(
		"solidview",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listPrinciplesTool, s.handleListPrinciples)
	s.mcp.AddTool(getPrincipleTool, s.handleGetPrinciple)
	s.mcp.AddTool(searchPrinciplesTool, s.handleSearchPrinciples)
	s.mcp.AddTool(getDiagramsTool, s.handleGetDiagrams)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
