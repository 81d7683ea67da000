package ffprobe

import "testing"

func TestResultHelpers(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{Index: 0, CodecType: "video"},
			{Index: 1, CodecType: "audio"},
			{Index: 2, CodecType: "audio"},
		},
		Format: Format{Duration: "123.45"},
	}
	if result.AudioStreamCount() != 2 {
		t.Fatalf("expected 2 audio streams, got %d", result.AudioStreamCount())
	}
	if result.FirstAudioStreamIndex() != 1 {
		t.Fatalf("expected first audio stream at index 1, got %d", result.FirstAudioStreamIndex())
	}
	if result.DurationSeconds() != 123.45 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestDurationFallsBackToStreams(t *testing.T) {
	result := Result{
		Streams: []Stream{
			{Index: 0, CodecType: "audio", Duration: "88.5"},
			{Index: 1, CodecType: "video", Duration: "90.25"},
		},
	}
	if result.DurationSeconds() != 90.25 {
		t.Fatalf("unexpected duration: %v", result.DurationSeconds())
	}
}

func TestNoAudioStream(t *testing.T) {
	result := Result{Streams: []Stream{{Index: 0, CodecType: "video"}}}
	if result.FirstAudioStreamIndex() != -1 {
		t.Fatalf("expected -1, got %d", result.FirstAudioStreamIndex())
	}
}
