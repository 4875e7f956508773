package tokenize

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// Segmenter splits text into word tokens.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// ProseSegmenter segments English text with prose's rule-based tokenizer.
// Tagging, entity extraction and sentence segmentation are disabled; only
// word tokens are needed.
type ProseSegmenter struct {
	opts []prose.DocOpt
}

func NewProseSegmenter() *ProseSegmenter {
	return &ProseSegmenter{opts: []prose.DocOpt{
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	}}
}

func (p *ProseSegmenter) Segment(text string) ([]string, error) {
	doc, err := prose.NewDocument(text, p.opts...)
	if err != nil {
		return nil, fmt.Errorf("prose document: %w", err)
	}
	toks := doc.Tokens()
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		out = append(out, tok.Text)
	}
	return out, nil
}
