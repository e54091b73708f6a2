package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jvaldes/textprep/internal/db"
)

type ToolAdapter interface {
	ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

type Server struct {
	MCP     *server.MCPServer
	HTTP    *server.StreamableHTTPServer
	Handler http.Handler
	DB      *db.Database
}

func New(cfg Config) *Server {
	mcpServer := server.NewMCPServer(
		"textprep-server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	// Register tools with their proper schemas using the mcp-go builder pattern.
	toolDefinitions := map[string]mcp.Tool{
		"split_text": mcp.NewTool("split_text",
			mcp.WithDescription("Split document text into bounded chunks for embedding or prompting. Returns the ordered chunk sequence with offsets and token statistics."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("The document text to split"),
			),
			mcp.WithString("kind",
				mcp.Description("Splitter kind (default: recursive)"),
				mcp.Enum("recursive", "character", "sentence", "paragraph", "markdown", "latex", "json", "html", "regex"),
			),
			mcp.WithNumber("chunk_size",
				mcp.Description("Maximum chunk length in characters (default: 800)"),
			),
			mcp.WithNumber("overlap",
				mcp.Description("Characters repeated between adjacent chunks (default: 0)"),
			),
			mcp.WithNumber("level",
				mcp.Description("Header or section level for markdown/latex kinds"),
			),
			mcp.WithString("tag",
				mcp.Description("Element name for the html kind"),
			),
			mcp.WithString("attribute",
				mcp.Description("Attribute name for the html kind; emits attribute values instead of element text"),
			),
			mcp.WithString("pattern",
				mcp.Description("Delimiter expression for the regex kind"),
			),
		),
		"search_chunks": mcp.NewTool("search_chunks",
			mcp.WithDescription("Semantic search across ingested chunks using embeddings. Returns the nearest chunks with similarity scores."),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Natural language search query"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results to return (default: 10)"),
			),
		),
	}

	for name, adapter := range cfg.ToolAdapters {
		tool := toolDefinitions[name]
		mcpServer.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return adapter.ToolAdapter(ctx, req)
		})
	}

	httpServer := server.NewStreamableHTTPServer(mcpServer, cfg.Options...)

	return &Server{
		MCP:     mcpServer,
		HTTP:    httpServer,
		Handler: httpServer,
		DB:      cfg.Database,
	}
}
