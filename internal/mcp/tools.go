package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPrinciplesTool defines the list_principles MCP tool.
var listPrinciplesTool = mcp.NewTool("list_principles",
	mcp.WithDescription("List the SOLID documents: the overview and the five principles, with their identifiers."),
)

// getPrincipleTool defines the get_principle MCP tool.
var getPrincipleTool = mcp.NewTool("get_principle",
	mcp.WithDescription("Get the full Markdown document for one principle."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Document identifier"),
		mcp.Enum("home", "srp", "ocp", "lsp", "isp", "dip"),
	),
)

// searchPrinciplesTool defines the search_principles MCP tool.
var searchPrinciplesTool = mcp.NewTool("search_principles",
	mcp.WithDescription("Search the principle documents by keyword. Title matches rank first."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Words to look for"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default 6)"),
	),
)

// getDiagramsTool defines the get_diagrams MCP tool.
var getDiagramsTool = mcp.NewTool("get_diagrams",
	mcp.WithDescription("Get the Mermaid diagram sources embedded in one principle document."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Document identifier"),
		mcp.Enum("home", "srp", "ocp", "lsp", "isp", "dip"),
	),
)
