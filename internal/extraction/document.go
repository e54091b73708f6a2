// Package extraction defines the contract with the upstream extraction
// collaborator. Extractors hand over decoded plain text plus optional
// structured segments (bounding boxes, page regions). The chunking engine
// never interprets segments; they ride along unchanged.
package extraction

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Segment is one categorized content region reported by the extractor.
type Segment struct {
	Type    string    `json:"type"`
	Content string    `json:"content"`
	BBox    []float64 `json:"bbox,omitempty"`
	Page    int       `json:"page_number,omitempty"`
}

// Document is the unit handed to the chunking engine.
type Document struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments,omitempty"`
}

// Load reads path as an extraction payload. A JSON object carrying a "text"
// field is decoded as a Document, anything else is taken verbatim as plain
// text.
func Load(path string) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return Decode(raw), nil
}

// Decode interprets raw extractor output without touching the filesystem.
func Decode(raw []byte) Document {
	if gjson.ValidBytes(raw) && gjson.GetBytes(raw, "text").Exists() {
		var doc Document
		if err := json.Unmarshal(raw, &doc); err == nil {
			return doc
		}
	}
	return Document{Text: string(raw)}
}
