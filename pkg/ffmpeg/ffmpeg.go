package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// FFmpeg wraps ffmpeg and ffprobe functionality for podcast assembly.
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}
	return nil
}

// GenerateSilence writes a silence clip of the given length to outPath.
// The clip is encoded to match the concat pipeline (44.1kHz mono mp3).
func (f *FFmpeg) GenerateSilence(ctx context.Context, d time.Duration, outPath string) error {
	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	args := []string{
		"-f", "lavfi",
		"-i", "anullsrc=r=44100:cl=mono",
		"-t", fmt.Sprintf("%.3f", d.Seconds()),
		"-q:a", "9",
		"-y",
		outPath,
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return NewProcessingError("silence_generation", outPath, err, stderr.String())
	}
	return nil
}

// Concat joins the given audio segments in order into a single artifact at
// outPath, re-encoding so that segments of mixed provenance line up. The
// segment list is written next to the output so relative paths stay valid.
func (f *FFmpeg) Concat(ctx context.Context, segments []string, outPath string) error {
	if len(segments) == 0 {
		return fmt.Errorf("concat: no segments provided")
	}

	ctx, cancel := f.withTimeout(ctx)
	defer cancel()

	listFile, err := f.writeConcatList(segments, filepath.Dir(outPath))
	if err != nil {
		return err
	}
	defer os.Remove(listFile)

	args := []string{
		"-f", "concat",
		"-safe", "0",
		"-i", listFile,
		"-ar", "44100",
		"-ac", "1",
		"-y",
		outPath,
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return NewProcessingError("concat", outPath, err, stderr.String())
	}
	return nil
}

// writeConcatList writes a concat demuxer list file and returns its path.
func (f *FFmpeg) writeConcatList(segments []string, dir string) (string, error) {
	listFile, err := os.CreateTemp(dir, "concat_*.txt")
	if err != nil {
		return "", NewProcessingError("concat_list", dir, err, "")
	}
	defer listFile.Close()

	for _, segment := range segments {
		abs, err := filepath.Abs(segment)
		if err != nil {
			os.Remove(listFile.Name())
			return "", err
		}
		// Single quotes in paths need escaping for the concat demuxer
		escaped := strings.ReplaceAll(abs, "'", `'\''`)
		if _, err := fmt.Fprintf(listFile, "file '%s'\n", escaped); err != nil {
			os.Remove(listFile.Name())
			return "", err
		}
	}
	return listFile.Name(), nil
}

func (f *FFmpeg) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if f.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, f.timeout)
}
