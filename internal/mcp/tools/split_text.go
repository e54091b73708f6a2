package tools

import (
	"context"
	"errors"
	"strings"

	"github.com/go-logr/logr"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jvaldes/textprep/internal/splitter"
)

// SplitTextHandler exposes the chunking engine as an MCP tool.
type SplitTextHandler struct {
	Logger logr.Logger
}

func (h *SplitTextHandler) ToolAdapter(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	text, _ := args["text"].(string)
	if text == "" {
		return mcp.NewToolResultError("text parameter is required"), nil
	}

	kind := splitter.KindRecursive
	if v, ok := args["kind"].(string); ok && v != "" {
		kind = splitter.Kind(v)
	}
	cfg := splitter.Config{
		ChunkSize: 800,
		Logger:    h.Logger,
	}
	if v, ok := args["chunk_size"].(float64); ok {
		cfg.ChunkSize = int(v)
	}
	if v, ok := args["overlap"].(float64); ok {
		cfg.Overlap = int(v)
	}
	if v, ok := args["level"].(float64); ok {
		cfg.Level = int(v)
	}
	if v, ok := args["tag"].(string); ok {
		cfg.Tag = v
	}
	if v, ok := args["attribute"].(string); ok {
		cfg.Attribute = v
	}
	if v, ok := args["pattern"].(string); ok {
		cfg.Pattern = v
	}

	split, err := splitter.New(kind, cfg)
	if err != nil {
		return toolError(err)
	}
	chunks, err := split.Split(text)
	if err != nil {
		return toolError(err)
	}

	response := struct {
		Kind   string                 `json:"kind"`
		Chunks []splitter.Chunk       `json:"chunks"`
		Total  int                    `json:"total"`
		Stats  splitter.SequenceStats `json:"stats"`
	}{Kind: string(kind), Chunks: chunks, Total: len(chunks), Stats: splitter.Stats(chunks)}

	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}

// toolError reports misuse (bad configuration, wrong input shape) as a tool
// result instead of a transport failure.
func toolError(err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, splitter.ErrConfig) || errors.Is(err, splitter.ErrInput) {
		return mcp.NewToolResultError(strings.TrimSpace(err.Error())), nil
	}
	return nil, err
}
