package splitter

import (
	"errors"
	"testing"
)

const markdownDoc = "intro\n# A\ntext\n## A1\nmore\n# B\nend"

func TestMarkdownSplitsAtTopLevelHeaders(t *testing.T) {
	s, err := NewMarkdown(Config{ChunkSize: 100, Level: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split(markdownDoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"intro\n", "# A\ntext\n## A1\nmore\n", "# B\nend"})
	if got := reconstruct(chunks, 0); got != markdownDoc {
		t.Fatalf("expected lossless reconstruction, got %q", got)
	}
}

func TestMarkdownLevelTwoIgnoresOtherLevels(t *testing.T) {
	s, err := NewMarkdown(Config{ChunkSize: 100, Level: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split(markdownDoc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"intro\n# A\ntext\n", "## A1\nmore\n# B\nend"})
}

func TestMarkdownWithoutHeadersIsOneSection(t *testing.T) {
	s, err := NewMarkdown(Config{ChunkSize: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split("no headers here\njust text\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("expected one section, got %d", len(chunks))
	}
}

func TestMarkdownLevelOutOfRange(t *testing.T) {
	if _, err := NewMarkdown(Config{ChunkSize: 100, Level: 7}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLatexSplitsAtSections(t *testing.T) {
	text := `\section{Introduction} Text here. \section{Conclusion} More text here.`
	s, err := NewLaTeX(Config{ChunkSize: 100, Level: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{
		`\section{Introduction} Text here. `,
		`\section{Conclusion} More text here.`,
	})
}

func TestLatexSubsectionLevel(t *testing.T) {
	text := `\section{A} one \subsection{A1} two \section{B} three`
	s, err := NewLaTeX(Config{ChunkSize: 100, Level: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{
		`\section{A} one `,
		`\subsection{A1} two \section{B} three`,
	})
}

func TestLatexLevelOutOfRange(t *testing.T) {
	if _, err := NewLaTeX(Config{ChunkSize: 100, Level: 4}); !errors.Is(err, ErrConfig) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestSectionedWindowsOversizedSection(t *testing.T) {
	s, err := NewMarkdown(Config{ChunkSize: 8, Level: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := "# A\nabcdefghij"
	chunks, err := s.Split(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContents(t, chunks, []string{"# A\nabcd", "efghij"})
	if got := reconstruct(chunks, 0); got != text {
		t.Fatalf("expected lossless reconstruction, got %q", got)
	}
}
