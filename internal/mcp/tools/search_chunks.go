package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jvaldes/textprep/internal/db"
)

type EmbeddingClient interface {
	EmbedTexts(ctx context.Context, inputs []string) ([][]float32, error)
}

type ChunkSearcher interface {
	SearchChunks(ctx context.Context, embedding []float32, limit int) ([]db.ChunkSearchRow, error)
}

type SearchChunksHandler struct {
	Repo   ChunkSearcher
	Client EmbeddingClient
}

type chunkResult struct {
	Source       string  `json:"source"`
	SplitterKind string  `json:"splitter_kind"`
	ChunkIndex   int     `json:"chunk_index"`
	Content      string  `json:"content"`
	Distance     float64 `json:"distance"`
}

func (h *SearchChunksHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	query, _ := args["query"].(string)
	if strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query parameter is required"), nil
	}
	limit := 10
	if raw, ok := args["limit"].(float64); ok {
		if int(raw) > 0 {
			limit = int(raw)
		}
	}

	vectors, err := h.Client.EmbedTexts(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	rows, err := h.Repo.SearchChunks(ctx, vectors[0], limit)
	if err != nil {
		return nil, err
	}

	results := make([]chunkResult, 0, len(rows))
	for _, row := range rows {
		results = append(results, chunkResult{
			Source:       row.Source,
			SplitterKind: row.SplitterKind,
			ChunkIndex:   row.ChunkIndex,
			Content:      row.Content,
			Distance:     row.Distance,
		})
	}

	response := struct {
		Query   string        `json:"query"`
		Results []chunkResult `json:"results"`
		Total   int           `json:"total_found"`
	}{Query: query, Results: results, Total: len(results)}

	return mcp.NewToolResultText(string(mustMarshal(response))), nil
}
