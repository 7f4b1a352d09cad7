package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestSplitWindowing(t *testing.T) {
	// 2500 words at size 1000 / overlap 200 -> windows starting at 0, 800, 1600
	chunks, err := Split(words(2500), 1000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Len(t, strings.Fields(chunks[0]), 1000)
	assert.Len(t, strings.Fields(chunks[1]), 1000)
	assert.Len(t, strings.Fields(chunks[2]), 900)

	// Consecutive windows share exactly the overlap
	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	assert.Equal(t, first[800:], second[:200])
}

func TestSplitShortText(t *testing.T) {
	chunks, err := Split("just a few words here", 1000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "just a few words here", chunks[0])
}

func TestSplitEmptyText(t *testing.T) {
	chunks, err := Split("   \n\t  ", 1000, 200)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplitExactMultiple(t *testing.T) {
	// Text ending exactly on a window boundary must not emit a duplicate tail
	chunks, err := Split(words(1000), 1000, 200)
	require.NoError(t, err)
	require.Len(t, chunks, 1)
}

func TestSplitNoOverlap(t *testing.T) {
	chunks, err := Split(words(25), 10, 0)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assert.Len(t, strings.Fields(chunks[2]), 5)
}

func TestSplitInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative size", -5, 0},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
		{"negative overlap", 100, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Split(words(10), tt.size, tt.overlap)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidChunkConfig))
		})
	}
}

func TestSplitEveryWordCovered(t *testing.T) {
	text := words(3217)
	chunks, err := Split(text, 500, 100)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range chunks {
		for _, w := range strings.Fields(c) {
			seen[w] = true
		}
	}
	for _, w := range strings.Fields(text) {
		require.True(t, seen[w], "word %s missing from all chunks", w)
	}
}

func TestSplitNormalizesWhitespace(t *testing.T) {
	chunks, err := Split("alpha\t\tbeta\n\ngamma  delta", 3, 1)
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "alpha beta gamma", chunks[0])
	assert.Equal(t, "gamma delta", chunks[1])
}
