package splitter

// Chunk is one bounded output unit of a split operation. Start and End are
// character offsets into the source text and cover the full content,
// including any overlap prefix copied from the previous chunk. Splitters that
// do not produce contiguous slices of their input (JSON key, HTML) set both
// offsets to -1.
type Chunk struct {
	Content string `json:"content"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Index   int    `json:"index"`
}

// injectOverlap turns final content spans into chunks, prefixing every chunk
// after the first with the trailing Overlap characters of its predecessor's
// content. The prefix is capped at the predecessor's length. This runs once,
// over the final flattened sequence, so overlap never compounds across
// recursion levels.
func injectOverlap(src string, parts []span, overlap int) []Chunk {
	if len(parts) == 0 {
		return nil
	}
	chunks := make([]Chunk, 0, len(parts))
	for i, p := range parts {
		content := src[p.start:p.end]
		start := p.start
		if i > 0 && overlap > 0 {
			prev := chunks[i-1].Content
			n := overlap
			if n > len(prev) {
				n = len(prev)
			}
			content = prev[len(prev)-n:] + content
			start -= n
		}
		chunks = append(chunks, Chunk{Content: content, Start: start, End: p.end, Index: i})
	}
	return chunks
}
