package prepro

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"paraprep/internal/models"
)

// spaceTokenizer lowercases and splits on whitespace.
type spaceTokenizer struct{}

func (spaceTokenizer) Tokenize(p string) ([]string, error) {
	return strings.Fields(strings.ToLower(p)), nil
}

func para(id int64, text string) models.ParagraphRecord {
	return models.ParagraphRecord{
		URL:       "https://cs.stanford.edu/people/rak248/VG_100K/" + itoa(id) + ".jpg",
		ImageID:   id,
		Paragraph: text,
	}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, b, 0o644))
}
