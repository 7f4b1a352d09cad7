// Package chunker splits extracted document text into overlapping word
// windows sized for embedding.
package chunker

import (
	"strings"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// Split breaks text into windows of size words with the given overlap
// between consecutive windows. The stride is size-overlap, so every word
// appears in at least one window and the final shorter window is emitted
// exactly once. Whitespace runs of any kind count as one separator.
func Split(text string, size, overlap int) ([]string, error) {
	if size <= 0 || overlap < 0 || overlap >= size {
		return nil, apperrors.InvalidChunkConfig(size, overlap)
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	stride := size - overlap
	chunks := make([]string, 0, (len(words)+stride-1)/stride)
	for start := 0; start < len(words); start += stride {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}
	return chunks, nil
}
