package splitter

// Character is pure fixed-width windowing: chunks of exactly ChunkSize
// characters advancing by ChunkSize-Overlap, with the overlap built into each
// window rather than injected afterwards. No merging is needed.
type Character struct {
	cfg Config
}

func NewCharacter(cfg Config) (*Character, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Character{cfg: cfg}, nil
}

func (s *Character) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	step := s.cfg.ChunkSize - s.cfg.Overlap
	chunks := make([]Chunk, 0, len(text)/step+1)
	for start := 0; start < len(text); start += step {
		end := start + s.cfg.ChunkSize
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, Chunk{Content: text[start:end], Start: start, End: end, Index: len(chunks)})
	}
	return chunks, nil
}
