package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"paraprep/internal/util"
)

// Tokenizer turns a raw paragraph into lowercase, whitespace-free tokens.
type Tokenizer struct {
	seg        Segmenter
	paragraphs Table
	tokens     Table
}

func New(seg Segmenter) *Tokenizer {
	return &Tokenizer{seg: seg, paragraphs: ParagraphFixes, tokens: TokenFixes}
}

// Normalize applies NFC composition and the paragraph fixes.
func (t *Tokenizer) Normalize(paragraph string) string {
	return t.paragraphs.Apply(norm.NFC.String(paragraph))
}

func (t *Tokenizer) Tokenize(paragraph string) ([]string, error) {
	text := util.SanitizeText(t.Normalize(paragraph))
	if text == "" {
		return []string{}, nil
	}
	raw, err := t.seg.Segment(text)
	if err != nil {
		return nil, fmt.Errorf("segment paragraph: %w", err)
	}
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if strings.IndexFunc(tok, unicode.IsSpace) >= 0 {
			continue
		}
		mapped := t.tokens.Apply(strings.ToLower(tok))
		// mapping can introduce spaces (" degree") or empty the token
		out = append(out, strings.Fields(mapped)...)
	}
	return out, nil
}
