package splitter

import (
	"strings"
	"testing"
)

// reconstruct strips the declared overlap from every chunk after the first
// and concatenates the rest. For lossless splitters the result must equal the
// original input.
func reconstruct(chunks []Chunk, overlap int) string {
	var b strings.Builder
	for i, c := range chunks {
		content := c.Content
		if i > 0 && overlap > 0 {
			n := overlap
			if prev := chunks[i-1].Content; len(prev) < n {
				n = len(prev)
			}
			content = content[n:]
		}
		b.WriteString(content)
	}
	return b.String()
}

func assertContents(t *testing.T, chunks []Chunk, want []string) {
	t.Helper()
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %q", len(want), len(chunks), contents(chunks))
	}
	for i, c := range chunks {
		if c.Content != want[i] {
			t.Fatalf("chunk %d: expected %q, got %q", i, want[i], c.Content)
		}
		if c.Index != i {
			t.Fatalf("chunk %d: expected index %d, got %d", i, i, c.Index)
		}
	}
}

func assertSizeBound(t *testing.T, chunks []Chunk, size int) {
	t.Helper()
	for _, c := range chunks {
		if len(c.Content) > size {
			t.Fatalf("chunk %d exceeds size %d: %q", c.Index, size, c.Content)
		}
	}
}

func assertOverlapBound(t *testing.T, chunks []Chunk, overlap int) {
	t.Helper()
	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1].Content
		n := overlap
		if len(prev) < n {
			n = len(prev)
		}
		if chunks[i].Content[:n] != prev[len(prev)-n:] {
			t.Fatalf("chunks %d/%d do not share %d overlap characters: %q vs %q", i-1, i, n, prev, chunks[i].Content)
		}
	}
}

func contents(chunks []Chunk) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, c.Content)
	}
	return out
}
