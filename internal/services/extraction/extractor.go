// Package extraction turns uploaded files into plain text for indexing.
// One decoder per supported MIME type; everything else is rejected up front.
package extraction

import (
	"context"
	"os"
	"strings"
	"unicode/utf8"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

const (
	MIMETypePlainText = "text/plain"
	MIMETypeMarkdown  = "text/markdown"
	MIMETypePDF       = "application/pdf"
	MIMETypeDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Service extracts text from stored upload files
type Service struct{}

// New creates a new extraction service
func New() *Service {
	return &Service{}
}

// SupportedMIMETypes returns the formats Extract accepts
func (s *Service) SupportedMIMETypes() []string {
	return []string{MIMETypePlainText, MIMETypeMarkdown, MIMETypePDF, MIMETypeDOCX}
}

// Supports reports whether the given MIME type has a registered decoder
func (s *Service) Supports(mimeType string) bool {
	switch normalizeMIMEType(mimeType) {
	case MIMETypePlainText, MIMETypeMarkdown, MIMETypePDF, MIMETypeDOCX:
		return true
	}
	return false
}

// Extract reads the file at path and decodes it according to mimeType.
// Unknown types fail with UNSUPPORTED_FORMAT before the file is touched;
// unreadable files with IO_FAILURE; decoder rejections with CORRUPT_INPUT.
func (s *Service) Extract(ctx context.Context, path, mimeType string) (string, error) {
	normalized := normalizeMIMEType(mimeType)
	if !s.Supports(normalized) {
		return "", apperrors.UnsupportedFormat(mimeType)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.IOFailure(path, err)
	}

	switch normalized {
	case MIMETypePlainText:
		return extractPlainText(path, content)
	case MIMETypeMarkdown:
		return extractMarkdown(path, content)
	case MIMETypePDF:
		return extractPDF(path, content)
	case MIMETypeDOCX:
		return extractDOCX(path, content)
	}
	return "", apperrors.UnsupportedFormat(mimeType)
}

// normalizeMIMEType drops parameters such as "; charset=utf-8"
func normalizeMIMEType(mimeType string) string {
	if idx := strings.IndexByte(mimeType, ';'); idx >= 0 {
		mimeType = mimeType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// extractPlainText passes UTF-8 text through unchanged
func extractPlainText(path string, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", apperrors.CorruptInput(path, nil)
	}
	return string(content), nil
}
