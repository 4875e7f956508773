package tokenize

import "strings"

// Replacement is one step of an ordered substring rewrite.
type Replacement struct {
	Old string
	New string
}

// Table is applied in order; later entries see the output of earlier ones.
type Table []Replacement

func (t Table) Apply(s string) string {
	for _, r := range t {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}

// ParagraphFixes repairs missing spaces after sentence stops and collapses
// ellipses before segmentation.
var ParagraphFixes = Table{
	{".T", ". T"},
	{".th", ". th"},
	{".A", ". A"},
	{".a", ". a"},
	{"t.v.", "tv"},
	{"...", ". "},
	{"..", ". "},
}

// TokenFixes folds accented letters and symbols in lowercased tokens.
var TokenFixes = Table{
	{"½", "half"},
	{"—", "-"},
	{"™", ""},
	{"¢", "cent"},
	{"ç", "c"},
	{"û", "u"},
	{"é", "e"},
	{"°", " degree"},
	{"è", "e"},
	{"…", ""},
}
