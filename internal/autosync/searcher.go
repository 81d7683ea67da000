package autosync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"srtsync/internal/logging"
	"srtsync/internal/media/audio"
	"srtsync/internal/media/ffprobe"
	"srtsync/internal/srt"
	"srtsync/internal/timecorrect"
	"srtsync/internal/transcribe"
)

// Default window positions for the two independent searches: one in the
// first half of the media, one in the second, so the derived correction
// spans most of the timeline.
const (
	EarlyStartFraction = 0.25
	LateStartFraction  = 0.75
)

// AnchorPair is the product of a successful two-run search.
type AnchorPair struct {
	First  timecorrect.Anchor
	Second timecorrect.Anchor
	// Confidence is the lower of the two accepted transcription confidences.
	Confidence float64
}

// Searcher coordinates the two independent anchor searches for one media
// and subtitle file pair.
type Searcher struct {
	Probe          transcribe.Probe
	Extractor      *audio.Extractor
	FFprobeBinary  string
	Config         Config
	WorkDir        string
	Logger         *slog.Logger
	StartFractions [2]float64
	// OnAttempt observes attempts from both runs; run is 0 for the early
	// search and 1 for the late one.
	OnAttempt func(run int, attempt Attempt)
	// InspectFunc overrides media inspection (for testing).
	InspectFunc func(ctx context.Context, path string) (ffprobe.Result, error)
}

// FindAnchors runs both searches concurrently and returns the two anchor
// pairs. If either run exhausts, the whole operation fails and no anchors
// are returned.
func (s *Searcher) FindAnchors(ctx context.Context, mediaPath string, doc *srt.Document) (AnchorPair, error) {
	var pair AnchorPair

	probe, err := s.inspect(ctx, mediaPath)
	if err != nil {
		return pair, err
	}
	duration := probe.DurationSeconds()
	if duration <= 0 {
		return pair, fmt.Errorf("media %s reports no duration", filepath.Base(mediaPath))
	}
	audioIndex := probe.FirstAudioStreamIndex()
	if audioIndex < 0 {
		return pair, fmt.Errorf("media %s has no audio stream", filepath.Base(mediaPath))
	}

	fractions := s.StartFractions
	if fractions == [2]float64{} {
		fractions = [2]float64{EarlyStartFraction, LateStartFraction}
	}

	// Each search gets its own scratch directory; the two runs must never
	// share transient decoded segments. Both directories exist before any
	// goroutine starts so a failed MkdirAll cannot tear down an in-flight
	// run's scratch space.
	var scratchDirs [2]string
	for run := range scratchDirs {
		dir := filepath.Join(s.workDir(), "search-"+uuid.NewString())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return pair, fmt.Errorf("create scratch directory: %w", err)
		}
		defer os.RemoveAll(dir)
		scratchDirs[run] = dir
	}

	outcomes := make([]Outcome, 2)
	errs := make([]error, 2)
	done := make(chan int, 2)
	for run := 0; run < 2; run++ {
		go func(run int, scratch string) {
			search := &Search{
				MediaPath:        mediaPath,
				AudioIndex:       audioIndex,
				MediaDurationSec: duration,
				StartFraction:    fractions[run],
				Doc:              doc,
				Probe:            s.Probe,
				Extractor:        s.Extractor,
				ScratchDir:       scratch,
				Config:           s.Config,
				Logger:           s.runLogger(run),
				OnAttempt:        s.attemptObserver(run),
			}
			outcomes[run], errs[run] = search.Run(ctx)
			done <- run
		}(run, scratchDirs[run])
	}
	for i := 0; i < 2; i++ {
		<-done
	}

	if err := errors.Join(errs[0], errs[1]); err != nil {
		return pair, err
	}

	pair.First = anchorFromOutcome(outcomes[0])
	pair.Second = anchorFromOutcome(outcomes[1])
	pair.Confidence = math.Min(outcomes[0].Confidence, outcomes[1].Confidence)
	if s.Logger != nil {
		s.Logger.Info("anchor pairs discovered",
			logging.Int64("first_source_ms", pair.First.SourceMs),
			logging.Int64("first_target_ms", pair.First.TargetMs),
			logging.Int64("second_source_ms", pair.Second.SourceMs),
			logging.Int64("second_target_ms", pair.Second.TargetMs),
		)
	}
	return pair, nil
}

func anchorFromOutcome(outcome Outcome) timecorrect.Anchor {
	return timecorrect.Anchor{
		SourceMs: outcome.SubtitleMs,
		TargetMs: int64(math.Round(outcome.VideoTimeSec * 1000)),
	}
}

func (s *Searcher) inspect(ctx context.Context, path string) (ffprobe.Result, error) {
	if s.InspectFunc != nil {
		return s.InspectFunc(ctx, path)
	}
	return ffprobe.Inspect(ctx, s.FFprobeBinary, path)
}

func (s *Searcher) workDir() string {
	if s.WorkDir != "" {
		return s.WorkDir
	}
	return os.TempDir()
}

func (s *Searcher) runLogger(run int) *slog.Logger {
	if s.Logger == nil {
		return nil
	}
	return s.Logger.With(logging.Int("search_run", run))
}

func (s *Searcher) attemptObserver(run int) func(Attempt) {
	if s.OnAttempt == nil {
		return nil
	}
	return func(attempt Attempt) {
		s.OnAttempt(run, attempt)
	}
}
