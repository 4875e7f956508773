package models

// ParagraphRecord is one entry of paragraphs_v1.json.
type ParagraphRecord struct {
	URL       string `json:"url"`
	ImageID   int64  `json:"image_id"`
	Paragraph string `json:"paragraph"`
}

// Sentence holds a whole paragraph as a single caption. Image records keep
// sentences as a list so multi-caption datasets share the same shape.
type Sentence struct {
	Tokens []string `json:"tokens"`
	Raw    string   `json:"raw"`
	ImgID  int64    `json:"imgid"`
	SentID int      `json:"sentid"`
	ID     int64    `json:"id"`
}

type ImageRecord struct {
	URL       string     `json:"url"`
	Filepath  string     `json:"filepath"`
	SentIDs   []int      `json:"sentids"`
	Filename  string     `json:"filename"`
	ImgID     int64      `json:"imgid"`
	Split     string     `json:"split"`
	CocoID    int64      `json:"cocoid"`
	ID        int64      `json:"id"`
	Sentences []Sentence `json:"sentences"`
}

type Dataset struct {
	Images  []ImageRecord `json:"images"`
	Dataset string        `json:"dataset"`
}

type RefInfo struct {
	Description string `json:"description"`
}

type RefImage struct {
	ID int64 `json:"id"`
}

type RefAnnotation struct {
	ImageID int64  `json:"image_id"`
	Caption string `json:"caption"`
	ID      int    `json:"id"`
}

// Reference is the caption-evaluation ground truth format.
type Reference struct {
	Info        RefInfo         `json:"info"`
	Licenses    string          `json:"licenses"`
	Type        string          `json:"type"`
	Images      []RefImage      `json:"images"`
	Annotations []RefAnnotation `json:"annotations"`
}

const (
	SplitTrain = "train"
	SplitVal   = "val"
	SplitTest  = "test"
)

// Splits lists split names in lookup precedence order.
var Splits = []string{SplitTrain, SplitVal, SplitTest}

func ValidSplit(s string) bool {
	for _, x := range Splits {
		if x == s {
			return true
		}
	}
	return false
}
