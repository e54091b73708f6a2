package splitter

import (
	"fmt"
	"sort"
)

// Splitter divides one document text into an ordered chunk sequence. The JSON
// key splitter implements the same interface and interprets its input as a
// raw JSON document, which is the key-ordered representation of a mapping.
type Splitter interface {
	Split(text string) ([]Chunk, error)
}

// Kind names a splitting strategy. The set is closed: every kind has an entry
// in the constructor table and nothing dispatches outside it.
type Kind string

const (
	KindRecursive Kind = "recursive"
	KindCharacter Kind = "character"
	KindSentence  Kind = "sentence"
	KindParagraph Kind = "paragraph"
	KindMarkdown  Kind = "markdown"
	KindLaTeX     Kind = "latex"
	KindJSON      Kind = "json"
	KindHTML      Kind = "html"
	KindRegex     Kind = "regex"
)

var builders = map[Kind]func(Config) (Splitter, error){
	KindRecursive: func(cfg Config) (Splitter, error) { return NewRecursive(cfg) },
	KindCharacter: func(cfg Config) (Splitter, error) { return NewCharacter(cfg) },
	KindSentence:  func(cfg Config) (Splitter, error) { return NewSentence(cfg) },
	KindParagraph: func(cfg Config) (Splitter, error) { return NewParagraph(cfg) },
	KindMarkdown:  func(cfg Config) (Splitter, error) { return NewMarkdown(cfg) },
	KindLaTeX:     func(cfg Config) (Splitter, error) { return NewLaTeX(cfg) },
	KindJSON:      func(cfg Config) (Splitter, error) { return NewJSON(cfg) },
	KindHTML:      func(cfg Config) (Splitter, error) { return NewHTML(cfg) },
	KindRegex:     func(cfg Config) (Splitter, error) { return NewRegex(cfg) },
}

// New builds the splitter for kind from cfg. Unknown kinds and invalid
// configurations fail before any splitting occurs.
func New(kind Kind, cfg Config) (Splitter, error) {
	build, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: unknown splitter kind %q", ErrConfig, kind)
	}
	return build(cfg)
}

// Kinds lists every registered splitter kind in stable order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
