package extraction

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestExtractPlainText(t *testing.T) {
	svc := New()
	path := writeTemp(t, "notes.txt", []byte("hello world\nsecond line"))

	text, err := svc.Extract(context.Background(), path, "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "hello world\nsecond line", text)
}

func TestExtractPlainTextWithCharsetParam(t *testing.T) {
	svc := New()
	path := writeTemp(t, "notes.txt", []byte("hello"))

	text, err := svc.Extract(context.Background(), path, "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestExtractPlainTextRejectsInvalidUTF8(t *testing.T) {
	svc := New()
	path := writeTemp(t, "bad.txt", []byte{0xff, 0xfe, 0xfd})

	_, err := svc.Extract(context.Background(), path, "text/plain")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCorruptInput))
}

func TestExtractMarkdownStripsFormatting(t *testing.T) {
	svc := New()
	md := "# Quarterly Report\n\nRevenue grew by **12%** in [Q3](https://example.com).\n\n- apples\n- oranges\n"
	path := writeTemp(t, "report.md", []byte(md))

	text, err := svc.Extract(context.Background(), path, "text/markdown")
	require.NoError(t, err)

	assert.Contains(t, text, "Quarterly Report")
	assert.Contains(t, text, "Revenue grew by 12% in Q3.")
	assert.Contains(t, text, "apples")
	assert.NotContains(t, text, "**")
	assert.NotContains(t, text, "https://example.com")
	assert.NotContains(t, text, "#")
}

func TestExtractUnsupportedFormat(t *testing.T) {
	svc := New()
	path := writeTemp(t, "image.png", []byte("not really a png"))

	_, err := svc.Extract(context.Background(), path, "image/png")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnsupportedFormat))
}

func TestExtractMissingFile(t *testing.T) {
	svc := New()

	_, err := svc.Extract(context.Background(), filepath.Join(t.TempDir(), "nope.txt"), "text/plain")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeIOFailure))
}

func TestExtractCorruptPDF(t *testing.T) {
	svc := New()
	path := writeTemp(t, "broken.pdf", []byte("this is not a pdf"))

	_, err := svc.Extract(context.Background(), path, "application/pdf")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCorruptInput))
}

func writeDOCX(t *testing.T, documentXML string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.docx")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestExtractDOCX(t *testing.T) {
	svc := New()
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeDOCX(t, doc)

	text, err := svc.Extract(context.Background(), path, MIMETypeDOCX)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph.\nSecond paragraph.", text)
}

func TestExtractDOCXNotAZip(t *testing.T) {
	svc := New()
	path := writeTemp(t, "fake.docx", []byte("plain bytes"))

	_, err := svc.Extract(context.Background(), path, MIMETypeDOCX)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeCorruptInput))
}

func TestSupports(t *testing.T) {
	svc := New()
	assert.True(t, svc.Supports("text/plain"))
	assert.True(t, svc.Supports("TEXT/MARKDOWN"))
	assert.True(t, svc.Supports("application/pdf; q=1"))
	assert.False(t, svc.Supports("application/octet-stream"))
}
