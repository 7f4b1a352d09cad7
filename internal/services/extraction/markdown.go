package extraction

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// extractMarkdown renders markdown to HTML and strips the markup, which
// preserves prose order while discarding link targets, code fences and
// formatting syntax.
func extractMarkdown(path string, content []byte) (string, error) {
	var rendered bytes.Buffer
	if err := goldmark.Convert(content, &rendered); err != nil {
		return "", apperrors.CorruptInput(path, err)
	}

	doc, err := goquery.NewDocumentFromReader(&rendered)
	if err != nil {
		return "", apperrors.CorruptInput(path, err)
	}

	var out strings.Builder
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		out.WriteString(text)
	})

	// No block elements (e.g. bare text input): fall back to the whole body
	if out.Len() == 0 {
		return strings.TrimSpace(doc.Text()), nil
	}
	return out.String(), nil
}
