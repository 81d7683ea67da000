package audio

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner abstracts external command execution for testing.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// Extractor pulls audio segments out of a media container.
type Extractor struct {
	binary string
	runner CommandRunner
}

// NewExtractor creates an extractor using the given ffmpeg binary name.
func NewExtractor(ffmpegBinary string) *Extractor {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	return &Extractor{binary: ffmpegBinary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (e *Extractor) WithCommandRunner(runner CommandRunner) *Extractor {
	e.runner = runner
	return e
}

// ExtractSegment writes the [startSec, startSec+durationSec) range of the
// given audio stream to dest as mono 16kHz WAV.
func (e *Extractor) ExtractSegment(ctx context.Context, source string, audioIndex int, startSec, durationSec float64, dest string) error {
	if audioIndex < 0 {
		return fmt.Errorf("extract segment: invalid audio track index %d", audioIndex)
	}
	if durationSec <= 0 {
		return fmt.Errorf("extract segment: invalid duration %.3f", durationSec)
	}
	if startSec < 0 {
		startSec = 0
	}
	args := buildSegmentArgs(source, audioIndex, startSec, durationSec, dest)
	return e.run(ctx, args)
}

func buildSegmentArgs(source string, audioIndex int, startSec, durationSec float64, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", fmt.Sprintf("%.3f", startSec),
		"-t", fmt.Sprintf("%.3f", durationSec),
		"-i", source,
		"-map", fmt.Sprintf("0:%d", audioIndex),
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}

func (e *Extractor) run(ctx context.Context, args []string) error {
	if e.runner != nil {
		return e.runner(ctx, e.binary, args...)
	}
	cmd := exec.CommandContext(ctx, e.binary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg extract: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
