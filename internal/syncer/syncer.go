package syncer

import (
	"context"
	"log/slog"

	"srtsync/internal/autosync"
	"srtsync/internal/config"
	"srtsync/internal/logging"
	"srtsync/internal/media/audio"
	"srtsync/internal/media/ffprobe"
	"srtsync/internal/srt"
	"srtsync/internal/timecorrect"
	"srtsync/internal/timestore"
	"srtsync/internal/transcribe"
)

// Output suffixes by sync mode. The original file is never overwritten.
const (
	SuffixManual = "_c.srt"
	SuffixAuto   = "_autosync.srt"
	SuffixBatch  = "_batch_autosync.srt"
)

// Result summarizes one completed sync.
type Result struct {
	OutputPath   string
	Coefficients timecorrect.Coefficients
	CueCount     int
	// Confidence is only set by automatic syncs.
	Confidence float64
}

// Syncer runs manual and automatic sync operations. Store is optional;
// when present, completed syncs are recorded and manual anchors saved.
type Syncer struct {
	Config    *config.Config
	Store     *timestore.Store
	Probe     transcribe.Probe
	Extractor *audio.Extractor
	Logger    *slog.Logger
	// OnAttempt observes automatic search attempts (see autosync.Searcher).
	OnAttempt func(run int, attempt autosync.Attempt)
	// InspectFunc overrides media inspection (for testing).
	InspectFunc func(ctx context.Context, path string) (ffprobe.Result, error)
}

// ManualSync applies a correction derived from two user-supplied anchor
// pairs and writes the corrected file with the _c suffix.
func (s *Syncer) ManualSync(ctx context.Context, subtitlePath string, first, second timecorrect.Anchor) (*Result, error) {
	doc, err := srt.Load(subtitlePath, s.Config.Sync.Encoding)
	if err != nil {
		return nil, err
	}

	coeffs, err := timecorrect.Calc(first, second)
	if err != nil {
		return nil, err
	}

	result, err := s.writeCorrected(doc, subtitlePath, SuffixManual, coeffs)
	if err != nil {
		return nil, err
	}

	if s.Store != nil {
		if err := s.Store.SaveAnchors(ctx, timestore.AnchorTimes{
			From1Ms: first.SourceMs,
			To1Ms:   first.TargetMs,
			From2Ms: second.SourceMs,
			To2Ms:   second.TargetMs,
		}); err != nil {
			return nil, err
		}
		if _, err := s.Store.RecordSync(ctx, timestore.SyncRecord{
			SubtitlePath: subtitlePath,
			Mode:         timestore.ModeManual,
			Scale:        coeffs.Scale,
			OffsetMs:     coeffs.Offset,
			OutputPath:   result.OutputPath,
		}); err != nil {
			return nil, err
		}
	}

	s.log().Info("manual sync complete",
		logging.String("subtitle", subtitlePath),
		logging.String("output", result.OutputPath),
		logging.Float64("scale", coeffs.Scale),
		logging.Float64("offset_ms", coeffs.Offset),
	)
	return result, nil
}

// AutoSync discovers anchors by transcribing audio samples from the media
// file, then applies the derived correction. The suffix selects the output
// naming (SuffixAuto or SuffixBatch).
func (s *Syncer) AutoSync(ctx context.Context, mediaPath, subtitlePath, suffix string) (*Result, error) {
	doc, err := srt.Load(subtitlePath, s.Config.Sync.Encoding)
	if err != nil {
		return nil, err
	}

	searcher := &autosync.Searcher{
		Probe:         s.Probe,
		Extractor:     s.Extractor,
		FFprobeBinary: s.Config.FFprobeBinary(),
		Config:        s.searchConfig(),
		WorkDir:       s.Config.Paths.WorkDir,
		Logger:        s.Logger,
		OnAttempt:     s.OnAttempt,
		InspectFunc:   s.InspectFunc,
	}

	pair, err := searcher.FindAnchors(ctx, mediaPath, doc)
	if err != nil {
		return nil, err
	}

	coeffs, err := timecorrect.Calc(pair.First, pair.Second)
	if err != nil {
		return nil, err
	}

	result, err := s.writeCorrected(doc, subtitlePath, suffix, coeffs)
	if err != nil {
		return nil, err
	}
	result.Confidence = pair.Confidence

	if s.Store != nil {
		mode := timestore.ModeAuto
		if suffix == SuffixBatch {
			mode = timestore.ModeBatch
		}
		if _, err := s.Store.RecordSync(ctx, timestore.SyncRecord{
			SubtitlePath: subtitlePath,
			MediaPath:    mediaPath,
			Mode:         mode,
			Scale:        coeffs.Scale,
			OffsetMs:     coeffs.Offset,
			Confidence:   pair.Confidence,
			OutputPath:   result.OutputPath,
		}); err != nil {
			return nil, err
		}
	}

	s.log().Info("auto sync complete",
		logging.String("media", mediaPath),
		logging.String("subtitle", subtitlePath),
		logging.String("output", result.OutputPath),
		logging.Float64("scale", coeffs.Scale),
		logging.Float64("offset_ms", coeffs.Offset),
		logging.Float64("confidence", pair.Confidence),
	)
	return result, nil
}

func (s *Syncer) writeCorrected(doc *srt.Document, subtitlePath, suffix string, coeffs timecorrect.Coefficients) (*Result, error) {
	timecorrect.Apply(doc.Cues, coeffs)

	outputPath := srt.DeriveOutputPath(subtitlePath, suffix)
	if err := srt.WriteFile(outputPath, srt.Compose(doc), s.Config.Sync.Encoding); err != nil {
		return nil, err
	}
	return &Result{
		OutputPath:   outputPath,
		Coefficients: coeffs,
		CueCount:     len(doc.Cues),
	}, nil
}

func (s *Syncer) searchConfig() autosync.Config {
	return autosync.Config{
		ConfidenceThreshold: s.Config.Sync.ConfidenceThreshold,
		MinWordCount:        s.Config.Sync.MinWordCount,
		AllowFuzzySubstring: s.Config.Sync.AllowFuzzySubstring,
		WindowDurationSec:   s.Config.Sync.WindowDurationSec,
		MaxAttempts:         s.Config.Sync.MaxAttempts,
		Language:            s.Config.Sync.Language,
	}
}

func (s *Syncer) log() *slog.Logger {
	return logging.NewComponentLogger(s.Logger, "syncer")
}
