package splitter

import (
	"fmt"

	"github.com/go-logr/logr"
)

const (
	maxMarkdownLevel = 6
	maxLatexLevel    = 3
)

// Config carries the settings shared by all splitter kinds. Fields that only
// apply to some kinds (Delimiters, Level, Tag, Attribute, Pattern) are
// ignored by the others.
type Config struct {
	// ChunkSize is the maximum chunk length in characters. Required, > 0.
	ChunkSize int
	// Overlap is the number of characters repeated between adjacent chunks.
	// Must satisfy 0 <= Overlap < ChunkSize.
	Overlap int
	// Delimiters is the ordered cascade for the recursive splitter. Nil means
	// DefaultDelimiters(). The empty string is the terminal entry and splits
	// into fixed-width character windows.
	Delimiters []string
	// Level selects the markdown header level (1-6) or the LaTeX section
	// depth (1 = \section, 2 = \subsection, 3 = \subsubsection). Zero means 1.
	Level int
	// Tag is the element name matched by the HTML splitter.
	Tag string
	// Attribute, when set, makes the HTML splitter emit attribute values
	// instead of element text.
	Attribute string
	// Pattern is the delimiter expression for the regex splitter.
	Pattern string
	// Logger receives oversized-unit warnings. Optional.
	Logger logr.Logger
}

// DefaultDelimiters returns the standard cascade: paragraph break, line
// break, sentence-ending punctuation, comma, space and the terminal
// per-character fallback. A fresh slice is returned on every call so callers
// cannot interfere with each other through a shared default.
func DefaultDelimiters() []string {
	return []string{"\n\n", "\n", "[.!?]", ",", " ", ""}
}

func (c Config) validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be greater than zero, got %d", ErrConfig, c.ChunkSize)
	}
	if c.Overlap < 0 {
		return fmt.Errorf("%w: overlap cannot be negative, got %d", ErrConfig, c.Overlap)
	}
	if c.Overlap >= c.ChunkSize {
		return fmt.Errorf("%w: overlap %d must be smaller than chunk size %d", ErrConfig, c.Overlap, c.ChunkSize)
	}
	return nil
}

// budget is the merge limit for chunk content before overlap injection. It is
// ChunkSize minus Overlap so that prefixing the overlap never pushes a chunk
// past ChunkSize.
func (c Config) budget() int {
	return c.ChunkSize - c.Overlap
}

func (c Config) level(max int) (int, error) {
	level := c.Level
	if level == 0 {
		level = 1
	}
	if level < 1 || level > max {
		return 0, fmt.Errorf("%w: level %d out of range 1-%d", ErrConfig, c.Level, max)
	}
	return level, nil
}
