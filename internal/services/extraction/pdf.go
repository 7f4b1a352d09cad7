package extraction

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// extractPDF joins per-page text in page order with newline separators.
// A page that yields no text contributes an empty line so page positions
// stay recoverable from the output.
func extractPDF(path string, content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperrors.CorruptInput(path, err)
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return strings.Join(pages, "\n"), nil
}
