package whisperx

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureJSON = `{
  "segments": [
    {
      "text": " Hello world.",
      "start": 0.1,
      "end": 1.4,
      "words": [
        {"word": "Hello", "start": 0.1, "end": 0.6, "score": 0.9},
        {"word": "world.", "start": 0.7, "end": 1.4, "score": 0.7}
      ]
    },
    {
      "text": " Again.",
      "start": 1.6,
      "end": 2.2,
      "words": [
        {"word": "Again.", "start": 1.6, "end": 2.2, "score": 0.8}
      ]
    }
  ]
}`

func TestTranscribeParsesOutput(t *testing.T) {
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "probe.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}

	var gotArgs []string
	service := NewService(Config{Model: "small"}).WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		gotArgs = args
		// Simulate WhisperX writing its JSON output next to the input.
		return os.WriteFile(filepath.Join(dir, "probe.json"), []byte(fixtureJSON), 0o644)
	})

	result, err := service.Transcribe(context.Background(), wavPath, "en-US")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if result.Text != "Hello world. Again." {
		t.Fatalf("unexpected text: %q", result.Text)
	}
	want := (0.9 + 0.7 + 0.8) / 3
	if diff := result.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("confidence = %v, want %v", result.Confidence, want)
	}

	joined := strings.Join(gotArgs, " ")
	for _, fragment := range []string{"whisperx", "--model small", "--language en", "--output_format json"} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("args missing %q: %s", fragment, joined)
		}
	}
}

func TestTranscribeEngineFailure(t *testing.T) {
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "probe.wav")
	if err := os.WriteFile(wavPath, []byte("RIFF"), 0o644); err != nil {
		t.Fatal(err)
	}
	service := NewService(Config{}).WithCommandRunner(func(ctx context.Context, name string, args ...string) error {
		return context.DeadlineExceeded
	})
	if _, err := service.Transcribe(context.Background(), wavPath, "en-US"); err == nil {
		t.Fatal("expected error from failing engine")
	}
}

func TestCollectSegmentsWithoutScores(t *testing.T) {
	text, confidence := collectSegments([]Segment{{Text: " unscored text "}})
	if text != "unscored text" {
		t.Fatalf("unexpected text: %q", text)
	}
	if confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", confidence)
	}
}
