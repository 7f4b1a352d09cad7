package wav

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTone(t *testing.T) {
	samples := Tone(440, 2*time.Second, 44100)
	assert.Len(t, samples, 88200)

	// A sine tone is not silence
	var nonZero int
	for _, s := range samples {
		if s != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, len(samples)/2)
}

func TestSilence(t *testing.T) {
	samples := Silence(500*time.Millisecond, 44100)
	assert.Len(t, samples, 22050)
	for _, s := range samples {
		require.Zero(t, s)
	}
}

func TestWriteFileAndDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")

	samples := Tone(440, 3*time.Second, 44100)
	require.NoError(t, WriteFile(path, samples, 44100))

	duration, err := Duration(path)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, duration, 0.01)
}

func TestDurationRejectsNonWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	require.NoError(t, WriteFile(path, Silence(time.Second, 8000), 8000))

	_, err := Duration(path)
	require.NoError(t, err)

	bogus := filepath.Join(t.TempDir(), "bogus.bin")
	require.NoError(t, os.WriteFile(bogus, []byte("definitely not a riff header at all"), 0644))
	_, err = Duration(bogus)
	assert.Error(t, err)
}
