package splitter

import (
	"errors"
	"testing"
)

func TestSentenceMergesUpToChunkSize(t *testing.T) {
	s, err := NewSentence(Config{ChunkSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "One. Two. Three."
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"One. Two. ", "Three."})
	if got := reconstruct(chunks, 0); got != text {
		t.Fatalf("expected lossless reconstruction, got %q", got)
	}
}

func TestSentenceKeepsWholeTextWhenItFits(t *testing.T) {
	s, err := NewSentence(Config{ChunkSize: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "This is a sentence. This is another! Is it?"
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{text})
}

func TestSentenceWindowsOversizedPiece(t *testing.T) {
	s, err := NewSentence(Config{ChunkSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "abcdefghij. Ok."
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"abcde", "fghij", ". ", "Ok."})
	if got := reconstruct(chunks, 0); got != text {
		t.Fatalf("expected lossless reconstruction, got %q", got)
	}
}

func TestParagraphSplitsAtBlankLines(t *testing.T) {
	s, err := NewParagraph(Config{ChunkSize: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "A\n\nB\n\nC"
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"A\n\n", "B\n\nC"})
	if got := reconstruct(chunks, 0); got != text {
		t.Fatalf("expected lossless reconstruction, got %q", got)
	}
}

func TestRegexSplitsAtPattern(t *testing.T) {
	s, err := NewRegex(Config{ChunkSize: 7, Pattern: ";"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split("apple;banana;cherry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"apple;", "banana;", "cherry"})
}

func TestRegexRequiresPattern(t *testing.T) {
	if _, err := NewRegex(Config{ChunkSize: 10}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRegexRejectsInvalidPattern(t *testing.T) {
	if _, err := NewRegex(Config{ChunkSize: 10, Pattern: "("}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestDelimitedEmptyInput(t *testing.T) {
	for _, build := range []func(Config) (*Delimited, error){NewSentence, NewParagraph} {
		s, err := build(Config{ChunkSize: 10})
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
}
