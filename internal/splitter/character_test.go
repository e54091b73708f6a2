package splitter

import "testing"

func TestCharacterWindowsWithOverlap(t *testing.T) {
	s, err := NewCharacter(Config{ChunkSize: 3, Overlap: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split("abcdefgh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"abc", "cde", "efg", "gh"})
	assertOverlapBound(t, chunks, 1)
	wantStarts := []int{0, 2, 4, 6}
	for i, c := range chunks {
		if c.Start != wantStarts[i] {
			t.Fatalf("chunk %d: expected start %d, got %d", i, wantStarts[i], c.Start)
		}
	}
}

func TestCharacterWindowsWithoutOverlap(t *testing.T) {
	s, err := NewCharacter(Config{ChunkSize: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split("abcdef")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"ab", "cd", "ef"})
}

func TestCharacterEmptyInput(t *testing.T) {
	s, err := NewCharacter(Config{ChunkSize: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 0 {
		t.Fatalf("expected no chunks, got %d", len(chunks))
	}
}
