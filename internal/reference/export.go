package reference

import (
	"fmt"
	"strings"

	"paraprep/internal/models"
	"paraprep/internal/util"
)

const (
	licenses = "http://creativecommons.org/licenses/by/4.0/"
	capType  = "captions"
)

// Export keeps images of the given split and flattens each non-empty
// sentence into one caption. Annotation ids count up from 0 across the
// whole export.
func Export(images []InputImage, split string) (models.Reference, error) {
	out := models.Reference{
		Info:        models.RefInfo{Description: fmt.Sprintf("Stanford Paragraph Dataset (%s split)", split)},
		Licenses:    licenses,
		Type:        capType,
		Images:      []models.RefImage{},
		Annotations: []models.RefAnnotation{},
	}

	cnt := 0
	for i, img := range images {
		if img.Split == nil {
			return models.Reference{}, fmt.Errorf("image %d: split: %w", i, util.ErrMissingField)
		}
		if *img.Split != split {
			continue
		}
		id, err := imageID(img)
		if err != nil {
			return models.Reference{}, fmt.Errorf("image %d: %w", i, err)
		}
		out.Images = append(out.Images, models.RefImage{ID: id})
		for j, s := range img.Sentences {
			if s.Empty {
				continue
			}
			if !s.HasTokens {
				return models.Reference{}, fmt.Errorf("image %d sentence %d: tokens: %w", i, j, util.ErrMissingField)
			}
			out.Annotations = append(out.Annotations, models.RefAnnotation{
				ImageID: id,
				Caption: strings.Join(s.Tokens, " "),
				ID:      cnt,
			})
			cnt++
		}
	}
	return out, nil
}

func imageID(img InputImage) (int64, error) {
	if img.CocoID != nil {
		return *img.CocoID, nil
	}
	if img.ImgID != nil {
		return *img.ImgID, nil
	}
	return 0, fmt.Errorf("cocoid/imgid: %w", util.ErrMissingField)
}
