package splitter

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/jvaldes/textprep/internal/logging"
)

// HTML emits one chunk per occurrence of the configured tag, in document
// order. With an attribute configured it emits that attribute's value for
// each matching element instead of the element text. Offsets are -1 because
// extracted text is not a contiguous slice of the markup.
type HTML struct {
	cfg Config
	log logging.Logger
}

func NewHTML(cfg Config) (*HTML, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Tag) == "" {
		return nil, fmt.Errorf("%w: html splitter requires a tag", ErrConfig)
	}
	return &HTML{cfg: cfg, log: logging.New(cfg.Logger)}, nil
}

func (s *HTML) Split(text string) ([]Chunk, error) {
	if text == "" {
		return nil, nil
	}
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("%w: parse html: %v", ErrInput, err)
	}
	var chunks []Chunk
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == s.cfg.Tag {
			if content, ok := s.extract(n); ok {
				chunks = appendExtracted(chunks, content, s.cfg, s.log)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return chunks, nil
}

func (s *HTML) extract(n *html.Node) (string, bool) {
	if s.cfg.Attribute != "" {
		for _, attr := range n.Attr {
			if attr.Key == s.cfg.Attribute {
				return attr.Val, attr.Val != ""
			}
		}
		return "", false
	}
	var b strings.Builder
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String(), b.Len() > 0
}
