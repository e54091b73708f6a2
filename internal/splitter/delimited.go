package splitter

import (
	"fmt"
	"regexp"

	"github.com/jvaldes/textprep/internal/logging"
)

var (
	// Sentence-terminal punctuation followed by whitespace. No abbreviation
	// disambiguation is attempted.
	sentencePattern = regexp.MustCompile(`[.!?]+\s+`)
	// One or more consecutive blank lines, blank meaning empty or
	// whitespace-only.
	paragraphPattern = regexp.MustCompile(`\n(?:[ \t]*\n)+`)
)

// Delimited splits at a single fixed pattern: pieces retain the matched
// delimiter at their end, are greedily merged up to the budget, and any piece
// that alone exceeds the budget is cut once into fixed-width windows. There
// is no cascade.
type Delimited struct {
	cfg Config
	re  *regexp.Regexp
	log logging.Logger
}

// NewSentence splits at sentence-ending punctuation.
func NewSentence(cfg Config) (*Delimited, error) {
	return newDelimited(cfg, sentencePattern)
}

// NewParagraph splits at runs of blank lines.
func NewParagraph(cfg Config) (*Delimited, error) {
	return newDelimited(cfg, paragraphPattern)
}

// NewRegex splits at matches of cfg.Pattern.
func NewRegex(cfg Config) (*Delimited, error) {
	if cfg.Pattern == "" {
		return nil, fmt.Errorf("%w: regex splitter requires a pattern", ErrConfig)
	}
	re, err := regexp.Compile(cfg.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", ErrConfig, cfg.Pattern, err)
	}
	return newDelimited(cfg, re)
}

func newDelimited(cfg Config, re *regexp.Regexp) (*Delimited, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Delimited{cfg: cfg, re: re, log: logging.New(cfg.Logger)}, nil
}

func (s *Delimited) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	parts := resolveOversized(mergeSpans(splitAfter(text, s.re), s.cfg.budget()), s.cfg.budget(), s.log)
	return injectOverlap(text, parts, s.cfg.Overlap), nil
}

// resolveOversized windows every span wider than budget. The content is never
// dropped; the fallback is flagged so oversized source units stay visible.
func resolveOversized(spans []span, budget int, log logging.Logger) []span {
	out := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.width() > budget {
			log.Info("unit exceeds chunk budget, splitting into fixed windows", "unit_len", s.width(), "budget", budget)
			out = append(out, windowSpans(s, budget)...)
			continue
		}
		out = append(out, s)
	}
	return out
}
