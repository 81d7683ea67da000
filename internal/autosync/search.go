package autosync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"srtsync/internal/logging"
	"srtsync/internal/match"
	"srtsync/internal/media/audio"
	"srtsync/internal/srt"
	"srtsync/internal/textutil"
	"srtsync/internal/transcribe"
)

// ErrExhausted marks a search that ran out of media or attempts without an
// accepted match.
var ErrExhausted = errors.New("search exhausted")

// State is the search state machine's position.
type State int

const (
	StateScanning State = iota
	StateAccepted
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateAccepted:
		return "accepted"
	case StateExhausted:
		return "exhausted"
	default:
		return "scanning"
	}
}

// Attempt describes one probe window for observers.
type Attempt struct {
	Number         int
	WindowStartSec float64
	Confidence     float64
	Text           string
	Matched        bool
}

// Outcome is the terminal result of one search run.
type Outcome struct {
	State State
	// Attempts is the number of probe windows consumed.
	Attempts int
	// VideoTimeSec is the accepted window's start on the media timeline.
	VideoTimeSec float64
	// SubtitleMs is the interpolated subtitle-side anchor time.
	SubtitleMs int64
	// Confidence is the accepted transcription's confidence.
	Confidence float64
	// CueIndex is the matched cue's position in the document.
	CueIndex int
}

// Search slides a probe window across the media timeline looking for one
// unambiguous, confident match between transcribed speech and a cue.
type Search struct {
	// MediaPath is the video file to sample.
	MediaPath string
	// AudioIndex is the container stream index to extract.
	AudioIndex int
	// MediaDurationSec bounds the window's travel.
	MediaDurationSec float64
	// StartFraction positions the first window (0-1 of media duration).
	StartFraction float64
	// Doc is the subtitle document to match against. Read-only.
	Doc *srt.Document
	// Probe transcribes extracted segments.
	Probe transcribe.Probe
	// Extractor pulls audio segments from the media file.
	Extractor *audio.Extractor
	// ScratchDir receives transient WAV segments and engine output. Each
	// concurrent search must use its own directory.
	ScratchDir string
	// Config holds acceptance thresholds and window geometry.
	Config Config
	// Logger is optional.
	Logger *slog.Logger
	// OnAttempt, when set, observes every probe window.
	OnAttempt func(Attempt)
}

// Run executes the search until acceptance, exhaustion, or context
// cancellation. Cancellation is cooperative: it is honored at attempt
// boundaries and an in-flight transcription call is not interrupted.
func (s *Search) Run(ctx context.Context) (Outcome, error) {
	outcome := Outcome{State: StateScanning}
	matchCfg := match.Config{
		MinWordCount:        s.Config.MinWordCount,
		AllowFuzzySubstring: s.Config.AllowFuzzySubstring,
	}
	window := s.Config.WindowDurationSec

	// Round the entry point the way timestamps are displayed, so repeat
	// runs over the same file probe identical windows.
	t := math.Round(s.MediaDurationSec*s.StartFraction*100) / 100

	for attempt := 1; attempt <= s.Config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		if t+window > s.MediaDurationSec {
			outcome.State = StateExhausted
			return outcome, fmt.Errorf("%w: window reached media end at %.2fs after %d attempts", ErrExhausted, t, outcome.Attempts)
		}
		outcome.Attempts = attempt

		result := s.probeWindow(ctx, attempt, t, window)
		candidate := textutil.Normalize(result.Text)

		matched := false
		if strings.TrimSpace(candidate) != "" {
			if found, ok := match.Find(candidate, s.Doc, matchCfg); ok {
				matched = true
				if result.Confidence*100 >= float64(s.Config.ConfidenceThreshold) {
					outcome.State = StateAccepted
					outcome.VideoTimeSec = t
					outcome.SubtitleMs = found.InterpolatedCueMs()
					outcome.Confidence = result.Confidence
					outcome.CueIndex = found.CueIndex
					s.notify(Attempt{Number: attempt, WindowStartSec: t, Confidence: result.Confidence, Text: candidate, Matched: true})
					if s.Logger != nil {
						s.Logger.Info("anchor accepted",
							logging.Int("attempt", attempt),
							logging.Float64("video_time_sec", t),
							logging.Int64("subtitle_ms", outcome.SubtitleMs),
							logging.Float64("confidence", result.Confidence),
							logging.Int("cue_index", found.CueIndex),
						)
					}
					return outcome, nil
				}
			}
		}

		s.notify(Attempt{Number: attempt, WindowStartSec: t, Confidence: result.Confidence, Text: candidate, Matched: matched})
		if s.Logger != nil {
			s.Logger.Debug("probe window rejected",
				logging.Int("attempt", attempt),
				logging.Float64("video_time_sec", t),
				logging.Float64("confidence", result.Confidence),
				logging.Bool("matched", matched),
			)
		}
		t += window
	}

	outcome.State = StateExhausted
	return outcome, fmt.Errorf("%w: no accepted match within %d attempts", ErrExhausted, s.Config.MaxAttempts)
}

// probeWindow extracts and transcribes one window. Failures are downgraded
// to a zero-confidence empty result so the search advances past silence,
// decode problems, and transient engine errors.
func (s *Search) probeWindow(ctx context.Context, attempt int, startSec, durationSec float64) transcribe.Result {
	wavPath := filepath.Join(s.ScratchDir, fmt.Sprintf("probe_%03d.wav", attempt))
	if err := s.Extractor.ExtractSegment(ctx, s.MediaPath, s.AudioIndex, startSec, durationSec, wavPath); err != nil {
		if s.Logger != nil {
			s.Logger.Warn("segment extraction failed", logging.Int("attempt", attempt), logging.Error(err))
		}
		return transcribe.Result{}
	}
	result, err := s.Probe.Transcribe(ctx, wavPath, s.Config.Language)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("transcription failed", logging.Int("attempt", attempt), logging.Error(err))
		}
		return transcribe.Result{}
	}
	return result
}

func (s *Search) notify(attempt Attempt) {
	if s.OnAttempt != nil {
		s.OnAttempt(attempt)
	}
}
