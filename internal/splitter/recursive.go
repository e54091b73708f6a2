package splitter

import (
	"fmt"
	"regexp"

	"github.com/jvaldes/textprep/internal/logging"
)

// Recursive applies the delimiter cascade: split by the first delimiter,
// greedily merge the pieces, and re-split any piece that still exceeds the
// budget with the next delimiter. Recursion depth is bounded by the cascade
// length and the terminal fallback always reduces pieces to the budget, so
// the algorithm is total.
type Recursive struct {
	cfg     Config
	cascade []*regexp.Regexp
	log     logging.Logger
}

func NewRecursive(cfg Config) (*Recursive, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	delims := cfg.Delimiters
	if delims == nil {
		delims = DefaultDelimiters()
	}
	cascade := make([]*regexp.Regexp, 0, len(delims))
	for _, d := range delims {
		if d == "" {
			// Terminal entry: everything after it is unreachable.
			break
		}
		re, err := compilePattern(d)
		if err != nil {
			return nil, fmt.Errorf("%w: delimiter %q: %v", ErrConfig, d, err)
		}
		cascade = append(cascade, re)
	}
	return &Recursive{cfg: cfg, cascade: cascade, log: logging.New(cfg.Logger)}, nil
}

func (s *Recursive) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	parts := s.splitLevel(text, span{0, len(text)}, 0)
	return injectOverlap(text, parts, s.cfg.Overlap), nil
}

// splitLevel resolves one cascade level for a single unit. Oversized merged
// pieces are replaced in place by the sub-spans of the next level, preserving
// document order. Past the last configured delimiter the unit is cut into
// fixed-width windows.
func (s *Recursive) splitLevel(src string, unit span, depth int) []span {
	budget := s.cfg.budget()
	if depth >= len(s.cascade) {
		s.log.Debug("cascade exhausted, falling back to fixed windows", "unit_len", unit.width(), "budget", budget)
		return windowSpans(unit, budget)
	}
	pieces := splitAfter(src[unit.start:unit.end], s.cascade[depth])
	merged := mergeSpans(shift(pieces, unit.start), budget)
	out := make([]span, 0, len(merged))
	for _, m := range merged {
		if m.width() > budget {
			out = append(out, s.splitLevel(src, m, depth+1)...)
			continue
		}
		out = append(out, m)
	}
	return out
}

func shift(spans []span, by int) []span {
	for i := range spans {
		spans[i].start += by
		spans[i].end += by
	}
	return spans
}
