package splitter

import (
	"regexp"
	"strings"
)

// span is a half-open [start, end) range into the source text. The splitting
// primitives below all work on spans so that chunk offsets survive merging,
// recursion and windowing without re-scanning the source.
type span struct {
	start, end int
}

func (s span) width() int { return s.end - s.start }

// splitAfter cuts unit after every match of re. The matched delimiter text
// stays at the end of the piece it terminates, so concatenating the pieces
// reproduces the unit exactly.
func splitAfter(unit string, re *regexp.Regexp) []span {
	if unit == "" {
		return nil
	}
	locs := re.FindAllStringIndex(unit, -1)
	spans := make([]span, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[1] <= prev {
			continue
		}
		spans = append(spans, span{prev, loc[1]})
		prev = loc[1]
	}
	if prev < len(unit) {
		spans = append(spans, span{prev, len(unit)})
	}
	return spans
}

// splitBefore cuts unit immediately before every match of re, so every span
// except a possible preamble starts at a match. Text without any match comes
// back as a single span.
func splitBefore(unit string, re *regexp.Regexp) []span {
	if unit == "" {
		return nil
	}
	locs := re.FindAllStringIndex(unit, -1)
	spans := make([]span, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] <= prev {
			continue
		}
		spans = append(spans, span{prev, loc[0]})
		prev = loc[0]
	}
	spans = append(spans, span{prev, len(unit)})
	return spans
}

// mergeSpans greedily coalesces adjacent spans without exceeding budget. A
// span that alone exceeds budget is emitted on its own; the caller decides
// whether to re-split it. Emitting an under-capacity span when the next piece
// does not fit is correct, not a defect.
func mergeSpans(spans []span, budget int) []span {
	if len(spans) == 0 {
		return nil
	}
	out := make([]span, 0, len(spans))
	cur := spans[0]
	for _, s := range spans[1:] {
		if s.end-cur.start <= budget {
			cur.end = s.end
			continue
		}
		out = append(out, cur)
		cur = s
	}
	return append(out, cur)
}

// windowSpans slices s into fixed-width windows. This is the terminal
// empty-delimiter fallback: it always succeeds and adds no separator.
func windowSpans(s span, width int) []span {
	out := make([]span, 0, s.width()/width+1)
	for start := s.start; start < s.end; start += width {
		end := start + width
		if end > s.end {
			end = s.end
		}
		out = append(out, span{start, end})
	}
	return out
}

// compilePattern builds the matcher for one cascade entry. Entries are
// literal separators except character classes like "[.!?]", which are
// compiled as regular expressions so one entry can cover all
// sentence-ending punctuation.
func compilePattern(p string) (*regexp.Regexp, error) {
	if isCharClass(p) {
		return regexp.Compile(p)
	}
	return regexp.Compile(regexp.QuoteMeta(p))
}

func isCharClass(p string) bool {
	return len(p) > 2 && strings.HasPrefix(p, "[") && strings.HasSuffix(p, "]")
}
