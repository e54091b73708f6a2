package splitter

import (
	"fmt"
	"regexp"

	"github.com/jvaldes/textprep/internal/logging"
)

// latexCommands maps section depth to the LaTeX command split on.
var latexCommands = [...]string{1: "section", 2: "subsection", 3: "subsubsection"}

// Sectioned splits at structural boundaries so each section starts at its
// header line and runs until the next header of the same level. Sections are
// not merged with each other; a section wider than the budget is cut once
// into fixed-width windows.
type Sectioned struct {
	cfg Config
	re  *regexp.Regexp
	log logging.Logger
}

// NewMarkdown splits before lines starting with exactly Level '#' characters.
func NewMarkdown(cfg Config) (*Sectioned, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	level, err := cfg.level(maxMarkdownLevel)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(fmt.Sprintf(`(?m)^#{%d}\s`, level))
	return &Sectioned{cfg: cfg, re: re, log: logging.New(cfg.Logger)}, nil
}

// NewLaTeX splits before \section, \subsection or \subsubsection commands
// depending on Level.
func NewLaTeX(cfg Config) (*Sectioned, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	level, err := cfg.level(maxLatexLevel)
	if err != nil {
		return nil, err
	}
	re := regexp.MustCompile(`\\` + latexCommands[level] + `\{`)
	return &Sectioned{cfg: cfg, re: re, log: logging.New(cfg.Logger)}, nil
}

func (s *Sectioned) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	parts := resolveOversized(splitBefore(text, s.re), s.cfg.budget(), s.log)
	return injectOverlap(text, parts, s.cfg.Overlap), nil
}
