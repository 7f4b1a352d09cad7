// Package wav provides minimal PCM16 WAV encoding and duration measurement.
// It backs the placeholder-tone path of the audio synthesizer so that offline
// mode never has to shell out to ffmpeg.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

const headerSize = 44

// Tone generates mono PCM16 samples for a sine wave at the given frequency.
func Tone(freq float64, d time.Duration, sampleRate int) []int16 {
	n := int(float64(sampleRate) * d.Seconds())
	samples := make([]int16, n)
	for i := range samples {
		v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
		// Keep headroom below full scale to avoid clipping on playback chains
		samples[i] = int16(v * 0.5 * math.MaxInt16)
	}
	return samples
}

// Silence generates mono PCM16 samples of silence.
func Silence(d time.Duration, sampleRate int) []int16 {
	n := int(float64(sampleRate) * d.Seconds())
	return make([]int16, n)
}

// Encode writes a mono PCM16 WAV stream (RIFF header plus samples).
func Encode(w io.Writer, samples []int16, sampleRate int) error {
	dataLen := uint32(len(samples) * 2)
	byteRate := uint32(sampleRate * 2)

	var header [headerSize]byte
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataLen)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], 1)  // mono
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], 2)  // block align
	binary.LittleEndian.PutUint16(header[34:36], 16) // bits per sample
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataLen)

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, samples)
}

// WriteFile encodes samples to a WAV file at path.
func WriteFile(path string, samples []int16, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(f, samples, sampleRate)
}

// Duration reads a WAV file's header chunks and returns its length in seconds.
func Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var riff [12]byte
	if _, err := io.ReadFull(f, riff[:]); err != nil {
		return 0, fmt.Errorf("reading RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return 0, fmt.Errorf("not a WAV file: %s", path)
	}

	var byteRate uint32
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(f, chunk[:]); err != nil {
			return 0, fmt.Errorf("reading chunk header: %w", err)
		}
		id := string(chunk[0:4])
		size := binary.LittleEndian.Uint32(chunk[4:8])

		switch id {
		case "fmt ":
			var fmtChunk [16]byte
			if _, err := io.ReadFull(f, fmtChunk[:]); err != nil {
				return 0, fmt.Errorf("reading fmt chunk: %w", err)
			}
			byteRate = binary.LittleEndian.Uint32(fmtChunk[8:12])
			if size > 16 {
				if _, err := f.Seek(int64(size-16), io.SeekCurrent); err != nil {
					return 0, err
				}
			}
		case "data":
			if byteRate == 0 {
				return 0, fmt.Errorf("data chunk before fmt chunk in %s", path)
			}
			return float64(size) / float64(byteRate), nil
		default:
			if _, err := f.Seek(int64(size), io.SeekCurrent); err != nil {
				return 0, err
			}
		}
	}
}
