package extraction

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// documentXML mirrors the subset of word/document.xml we read
type documentXML struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []docxText `xml:"t"`
}

type docxText struct {
	Content string `xml:",chardata"`
}

// extractDOCX opens the file as a ZIP archive and pulls paragraph text out
// of word/document.xml in document order, one line per paragraph.
func extractDOCX(path string, content []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", apperrors.CorruptInput(path, err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", apperrors.CorruptInput(path, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", apperrors.CorruptInput(path, err)
		}

		var doc documentXML
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return "", apperrors.CorruptInput(path, err)
		}

		var out strings.Builder
		for i, para := range doc.Body.Paragraphs {
			if i > 0 {
				out.WriteString("\n")
			}
			for _, run := range para.Runs {
				for _, text := range run.Text {
					out.WriteString(text.Content)
				}
			}
		}
		return strings.TrimSpace(out.String()), nil
	}

	// A DOCX without its main document part is not a DOCX
	return "", apperrors.CorruptInput(path, nil)
}
