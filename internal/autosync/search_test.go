package autosync

import (
	"context"
	"errors"
	"testing"

	"srtsync/internal/media/audio"
	"srtsync/internal/srt"
	"srtsync/internal/transcribe"
)

const testSubtitles = `1
00:00:10,000 --> 00:00:12,000
The quick brown fox jumps over the lazy dog

2
00:00:20,000 --> 00:00:22,000
Completely different words here tonight
`

func testDocument(t *testing.T) *srt.Document {
	t.Helper()
	doc, err := srt.Parse(testSubtitles)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func noopExtractor() *audio.Extractor {
	return audio.NewExtractor("ffmpeg").WithCommandRunner(
		func(ctx context.Context, name string, args ...string) error { return nil },
	)
}

func newTestSearch(t *testing.T, probe transcribe.Probe) *Search {
	t.Helper()
	return &Search{
		MediaPath:        "/media/movie.mkv",
		AudioIndex:       1,
		MediaDurationSec: 200,
		StartFraction:    0.25,
		Doc:              testDocument(t),
		Probe:            probe,
		Extractor:        noopExtractor(),
		ScratchDir:       t.TempDir(),
		Config:           DefaultConfig(),
	}
}

func TestSearchAcceptsConfidentMatch(t *testing.T) {
	calls := 0
	probe := transcribe.ProbeFunc(func(ctx context.Context, wavPath, language string) (transcribe.Result, error) {
		calls++
		if calls < 2 {
			return transcribe.Result{}, nil
		}
		return transcribe.Result{Confidence: 0.92, Text: "The quick brown fox"}, nil
	})

	search := newTestSearch(t, probe)
	var attempts []Attempt
	search.OnAttempt = func(a Attempt) { attempts = append(attempts, a) }

	outcome, err := search.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome.State != StateAccepted {
		t.Fatalf("state = %v, want accepted", outcome.State)
	}
	if outcome.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", outcome.Attempts)
	}
	// First window starts at 25% of 200s; the second advances by one window.
	if outcome.VideoTimeSec != 52.5 {
		t.Fatalf("video time = %v, want 52.5", outcome.VideoTimeSec)
	}
	// Exact match at the start of the first cue anchors to its start time.
	if outcome.SubtitleMs != 10000 {
		t.Fatalf("subtitle ms = %d, want 10000", outcome.SubtitleMs)
	}
	if outcome.CueIndex != 0 {
		t.Fatalf("cue index = %d, want 0", outcome.CueIndex)
	}
	if outcome.Confidence != 0.92 {
		t.Fatalf("confidence = %v, want 0.92", outcome.Confidence)
	}
	if len(attempts) != 2 {
		t.Fatalf("observed %d attempts, want 2", len(attempts))
	}
	if attempts[0].Matched || !attempts[1].Matched {
		t.Fatalf("unexpected matched flags: %+v", attempts)
	}
}

func TestSearchRejectsLowConfidenceMatch(t *testing.T) {
	probe := transcribe.ProbeFunc(func(ctx context.Context, wavPath, language string) (transcribe.Result, error) {
		return transcribe.Result{Confidence: 0.5, Text: "The quick brown fox"}, nil
	})

	search := newTestSearch(t, probe)
	search.Config.MaxAttempts = 3

	outcome, err := search.Run(context.Background())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if outcome.State != StateExhausted {
		t.Fatalf("state = %v, want exhausted", outcome.State)
	}
	if outcome.Attempts != 3 {
		t.Fatalf("attempts = %d, want 3", outcome.Attempts)
	}
}

func TestSearchExhaustsAtMediaEnd(t *testing.T) {
	probe := transcribe.ProbeFunc(func(ctx context.Context, wavPath, language string) (transcribe.Result, error) {
		return transcribe.Result{}, nil
	})

	search := newTestSearch(t, probe)
	search.MediaDurationSec = 10
	search.StartFraction = 0.75

	// The window at 7.5s ends exactly at the media end and is still probed;
	// the next one would run past it.
	outcome, err := search.Run(context.Background())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if outcome.Attempts != 1 {
		t.Fatalf("attempts = %d, want 1", outcome.Attempts)
	}
}

func TestSearchSurvivesProbeFailures(t *testing.T) {
	probe := transcribe.ProbeFunc(func(ctx context.Context, wavPath, language string) (transcribe.Result, error) {
		return transcribe.Result{}, errors.New("engine crashed")
	})

	search := newTestSearch(t, probe)
	search.Config.MaxAttempts = 2

	outcome, err := search.Run(context.Background())
	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("err = %v, want ErrExhausted", err)
	}
	if outcome.Attempts != 2 {
		t.Fatalf("attempts = %d, want 2", outcome.Attempts)
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	probe := transcribe.ProbeFunc(func(ctx context.Context, wavPath, language string) (transcribe.Result, error) {
		return transcribe.Result{}, nil
	})

	search := newTestSearch(t, probe)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := search.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateScanning:  "scanning",
		StateAccepted:  "accepted",
		StateExhausted: "exhausted",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
