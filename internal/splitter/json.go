package splitter

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/jvaldes/textprep/internal/logging"
)

// JSON emits one chunk per top-level key of a JSON object, in document key
// order. String values are emitted as their text, everything else as its raw
// serialization. Values longer than the budget are cut into fixed-width
// windows. Chunks do not map to contiguous spans of the input, so offsets are
// -1.
type JSON struct {
	cfg Config
	log logging.Logger
}

func NewJSON(cfg Config) (*JSON, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &JSON{cfg: cfg, log: logging.New(cfg.Logger)}, nil
}

// Split interprets text as a raw JSON document. Non-JSON input and documents
// whose top level is not an object are input errors.
func (s *JSON) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInput)
	}
	root := gjson.Parse(text)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: JSON key splitter requires a top-level object, got %s", ErrInput, root.Type)
	}
	var chunks []Chunk
	root.ForEach(func(_, value gjson.Result) bool {
		serialized := value.Raw
		if value.Type == gjson.String {
			serialized = value.String()
		}
		chunks = appendExtracted(chunks, serialized, s.cfg, s.log)
		return true
	})
	return chunks, nil
}

// ExtractKey collects every value stored under key anywhere in the document,
// walking nested objects and arrays in document order.
func ExtractKey(text, key string) ([]string, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInput)
	}
	return collectKey(gjson.Parse(text), key), nil
}

func collectKey(node gjson.Result, key string) []string {
	var values []string
	node.ForEach(func(k, v gjson.Result) bool {
		if node.IsObject() && k.String() == key {
			if v.Type == gjson.String {
				values = append(values, v.String())
			} else {
				values = append(values, v.Raw)
			}
			return true
		}
		if v.IsObject() || v.IsArray() {
			values = append(values, collectKey(v, key)...)
		}
		return true
	})
	return values
}

// appendExtracted adds one extracted element to the sequence, windowing it
// when it exceeds the budget and injecting overlap between the windows.
func appendExtracted(chunks []Chunk, content string, cfg Config, log logging.Logger) []Chunk {
	if content == "" {
		return chunks
	}
	if len(content) <= cfg.budget() {
		return append(chunks, Chunk{Content: content, Start: -1, End: -1, Index: len(chunks)})
	}
	log.Info("element exceeds chunk budget, splitting into fixed windows", "element_len", len(content), "budget", cfg.budget())
	for _, c := range injectOverlap(content, windowSpans(span{0, len(content)}, cfg.budget()), cfg.Overlap) {
		chunks = append(chunks, Chunk{Content: c.Content, Start: -1, End: -1, Index: len(chunks)})
	}
	return chunks
}
