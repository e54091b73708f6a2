package splitter

import (
	"sort"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const approxCharsPerToken = 4

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken

	estimateTokensFunc = defaultEstimateTokens
)

// EstimateTokens approximates the model-token count of text. Chunk sizing
// stays character-based; token counts are reporting only.
func EstimateTokens(text string) int {
	return estimateTokensFunc(text)
}

func defaultEstimateTokens(text string) int {
	enc := getTokenEncoder()
	if enc != nil {
		tokens := enc.Encode(text, nil, nil)
		if len(tokens) > 0 {
			return len(tokens)
		}
	}
	return maxInt(1, len(text)/approxCharsPerToken)
}

func getTokenEncoder() *tiktoken.Tiktoken {
	tokenEncoderOnce.Do(func() {
		enc, err := tiktoken.EncodingForModel("gpt-4o-mini")
		if err != nil {
			enc, err = tiktoken.GetEncoding("cl100k_base")
		}
		tokenEncoder = enc
	})
	return tokenEncoder
}

// SequenceStats summarizes the token footprint of one chunk sequence.
type SequenceStats struct {
	Chunks       int
	MaxTokens    int
	MedianTokens int
}

func Stats(chunks []Chunk) SequenceStats {
	stats := SequenceStats{Chunks: len(chunks)}
	if len(chunks) == 0 {
		return stats
	}
	counts := make([]int, 0, len(chunks))
	for _, c := range chunks {
		counts = append(counts, EstimateTokens(c.Content))
	}
	sort.Ints(counts)
	stats.MaxTokens = counts[len(counts)-1]
	stats.MedianTokens = counts[len(counts)/2]
	return stats
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
