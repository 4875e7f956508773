package reference

import (
	"encoding/json"
	"fmt"
)

// InputImage is the subset of an image record the exporter reads. Ids are
// pointers so absent keys can be told apart from zero.
type InputImage struct {
	Split     *string         `json:"split"`
	CocoID    *int64          `json:"cocoid"`
	ImgID     *int64          `json:"imgid"`
	Sentences []InputSentence `json:"sentences"`
}

type InputSentence struct {
	Empty     bool
	HasTokens bool
	Tokens    []string
}

func (s *InputSentence) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("sentence: %w", err)
	}
	*s = InputSentence{Empty: len(fields) == 0}
	raw, ok := fields["tokens"]
	if !ok {
		return nil
	}
	s.HasTokens = true
	if err := json.Unmarshal(raw, &s.Tokens); err != nil {
		return fmt.Errorf("sentence tokens: %w", err)
	}
	return nil
}

type inputDataset struct {
	Images []InputImage `json:"images"`
}
