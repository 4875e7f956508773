package prepro

import (
	"fmt"
	"io"
	"log"
	"strings"

	"paraprep/internal/models"
	"paraprep/internal/util"
)

type ParagraphTokenizer interface {
	Tokenize(paragraph string) ([]string, error)
}

type Stats struct {
	Paragraphs int
	Images     int
	Duplicates int
}

// Builder converts paragraph records into the image-record dataset.
type Builder struct {
	Tokenizer     ParagraphTokenizer
	Splits        *SplitIndex
	Logger        *log.Logger
	ProgressEvery int
}

func (b *Builder) Build(paragraphs []models.ParagraphRecord) (models.Dataset, Stats, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	every := b.ProgressEvery
	if every <= 0 {
		every = 1000
	}

	images := make([]models.ImageRecord, 0, len(paragraphs))
	seen := make(map[int64]struct{}, len(paragraphs))
	for pid, anno := range paragraphs {
		if pid%every == 0 {
			logger.Printf("%d/%d", pid, len(paragraphs))
		}

		filename := urlFilename(anno.URL)
		if want := fmt.Sprintf("%d.jpg", anno.ImageID); filename != want {
			return models.Dataset{}, Stats{}, fmt.Errorf("paragraph %d: %q != %q: %w", pid, filename, want, util.ErrFilenameMismatch)
		}
		if _, dup := seen[anno.ImageID]; dup {
			continue
		}
		seen[anno.ImageID] = struct{}{}

		split, err := b.Splits.Lookup(anno.ImageID)
		if err != nil {
			return models.Dataset{}, Stats{}, fmt.Errorf("paragraph %d: %w", pid, err)
		}
		tokens, err := b.Tokenizer.Tokenize(anno.Paragraph)
		if err != nil {
			return models.Dataset{}, Stats{}, fmt.Errorf("paragraph %d: %w", pid, err)
		}

		images = append(images, models.ImageRecord{
			URL:      anno.URL,
			Filepath: "",
			SentIDs:  []int{pid},
			Filename: filename,
			ImgID:    anno.ImageID,
			Split:    split,
			CocoID:   anno.ImageID,
			ID:       anno.ImageID,
			Sentences: []models.Sentence{{
				Tokens: tokens,
				Raw:    anno.Paragraph,
				ImgID:  anno.ImageID,
				SentID: pid,
				ID:     anno.ImageID,
			}},
		})
	}

	stats := Stats{
		Paragraphs: len(paragraphs),
		Images:     len(images),
		Duplicates: len(paragraphs) - len(seen),
	}
	return models.Dataset{Images: images, Dataset: "para"}, stats, nil
}

func urlFilename(url string) string {
	return url[strings.LastIndex(url, "/")+1:]
}
