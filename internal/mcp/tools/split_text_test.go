package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jvaldes/textprep/internal/splitter"
)

func callSplitText(t *testing.T, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	h := &SplitTextHandler{}
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	result, err := h.ToolAdapter(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestSplitTextTool(t *testing.T) {
	result := callSplitText(t, map[string]any{
		"text":       "abcdefgh",
		"kind":       "character",
		"chunk_size": float64(3),
		"overlap":    float64(1),
	})
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var response struct {
		Kind   string                 `json:"kind"`
		Chunks []splitter.Chunk       `json:"chunks"`
		Total  int                    `json:"total"`
		Stats  splitter.SequenceStats `json:"stats"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if response.Kind != "character" || response.Total != 4 {
		t.Fatalf("unexpected response: %+v", response)
	}
	want := []string{"abc", "cde", "efg", "gh"}
	for i, c := range response.Chunks {
		if c.Content != want[i] {
			t.Fatalf("chunk %d: expected %q, got %q", i, want[i], c.Content)
		}
	}
	if response.Stats.Chunks != 4 || response.Stats.MaxTokens < 1 {
		t.Fatalf("unexpected stats: %+v", response.Stats)
	}
}

func TestSplitTextToolRequiresText(t *testing.T) {
	result := callSplitText(t, map[string]any{"kind": "character"})
	if !result.IsError {
		t.Fatal("expected a tool error for missing text")
	}
}

func TestSplitTextToolReportsBadConfiguration(t *testing.T) {
	result := callSplitText(t, map[string]any{
		"text":       "hello",
		"chunk_size": float64(0),
	})
	if !result.IsError {
		t.Fatal("expected a tool error for an invalid chunk size")
	}

	result = callSplitText(t, map[string]any{"text": "hello", "kind": "telepathic"})
	if !result.IsError {
		t.Fatal("expected a tool error for an unknown kind")
	}
}

func TestSplitTextToolReportsBadInput(t *testing.T) {
	result := callSplitText(t, map[string]any{"text": "not json", "kind": "json"})
	if !result.IsError {
		t.Fatal("expected a tool error for invalid JSON input")
	}
}
