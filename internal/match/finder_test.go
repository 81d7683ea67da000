package match

import (
	"testing"

	"srtsync/internal/srt"
)

func mustParse(t *testing.T, content string) *srt.Document {
	t.Helper()
	doc, err := srt.Parse(content)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

const fixtureSRT = `1
00:00:05,000 --> 00:00:07,000
Hello world

2
00:00:10,000 --> 00:00:14,000
The quick brown fox jumps over the lazy dog

3
00:00:20,000 --> 00:00:22,000
Hello world
`

func TestFindExactMatchAtCueStart(t *testing.T) {
	doc := mustParse(t, `1
00:00:05,000 --> 00:00:07,000
hello world
`)
	result, ok := Find("hello", doc, Config{MinWordCount: 1})
	if !ok {
		t.Fatal("expected a match")
	}
	if result.CueIndex != 0 {
		t.Fatalf("matched cue %d, want 0", result.CueIndex)
	}
	if result.OffsetFractionInCue != 0 || result.OffsetFractionInText != 0 {
		t.Fatalf("unexpected offsets: %#v", result)
	}
	if got := result.InterpolatedCueMs(); got != 5000 {
		t.Fatalf("interpolated time = %d, want 5000", got)
	}
}

func TestFindRejectsAmbiguousCandidate(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	// "hello world" appears in cue 1 and cue 3.
	for _, fuzzy := range []bool{false, true} {
		if _, ok := Find("hello world", doc, Config{MinWordCount: 1, AllowFuzzySubstring: fuzzy}); ok {
			t.Fatalf("ambiguous candidate accepted (fuzzy=%v)", fuzzy)
		}
	}
}

func TestFindRejectsEmptyCandidate(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	for _, candidate := range []string{"", "   "} {
		if _, ok := Find(candidate, doc, Config{MinWordCount: 1}); ok {
			t.Fatalf("empty candidate %q accepted", candidate)
		}
	}
}

func TestFindRejectsBelowMinWordCount(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	if _, ok := Find("quick brown fox", doc, Config{MinWordCount: 4}); ok {
		t.Fatal("candidate below min word count accepted")
	}
	if _, ok := Find("quick brown fox", doc, Config{MinWordCount: 3}); !ok {
		t.Fatal("candidate meeting min word count rejected")
	}
}

func TestFindExactModeRejectsUnknownText(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	if _, ok := Find("completely different words", doc, Config{MinWordCount: 1}); ok {
		t.Fatal("unknown candidate accepted in exact mode")
	}
}

func TestFindExactOffsetWithinCue(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	result, ok := Find("brown fox", doc, Config{MinWordCount: 2})
	if !ok {
		t.Fatal("expected a match")
	}
	if result.CueIndex != 1 {
		t.Fatalf("matched cue %d, want 1", result.CueIndex)
	}
	// "the quick brown fox jumps over the lazy dog": "brown fox" starts at
	// byte 10 of 43.
	want := 10.0 / 43.0
	if result.OffsetFractionInCue != want {
		t.Fatalf("offset fraction = %v, want %v", result.OffsetFractionInCue, want)
	}
	if result.OffsetFractionInText != 0 {
		t.Fatalf("exact mode should report zero text offset, got %v", result.OffsetFractionInText)
	}
}

func TestFindFuzzyMatch(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	// Transcription heard extra words around a phrase that only exists in
	// cue 2. Exact mode cannot match; fuzzy mode finds the common substring.
	candidate := "and the quick brown fox jumped"
	if _, ok := Find(candidate, doc, Config{MinWordCount: 3}); ok {
		t.Fatal("exact mode should not match a non-substring candidate")
	}
	result, ok := Find(candidate, doc, Config{MinWordCount: 3, AllowFuzzySubstring: true})
	if !ok {
		t.Fatal("expected a fuzzy match")
	}
	if result.CueIndex != 1 {
		t.Fatalf("matched cue %d, want 1", result.CueIndex)
	}
	if result.OffsetFractionInText == 0 {
		t.Fatal("expected a nonzero offset into the candidate")
	}
}

func TestFindFuzzyRejectsShortCommonSubstring(t *testing.T) {
	doc := mustParse(t, fixtureSRT)
	// Shares only the word "jumps" with cue 2; below the word threshold.
	candidate := "jumps somewhere unrelated entirely"
	if _, ok := Find(candidate, doc, Config{MinWordCount: 3, AllowFuzzySubstring: true}); ok {
		t.Fatal("fuzzy match with too-short common substring accepted")
	}
}

func TestFindFirstCueWins(t *testing.T) {
	doc := mustParse(t, `1
00:00:01,000 --> 00:00:02,000
something unique here

2
00:00:05,000 --> 00:00:06,000
another unique phrase
`)
	result, ok := Find("unique", doc, Config{MinWordCount: 1})
	if ok {
		t.Fatalf("expected ambiguity rejection, got match on cue %d", result.CueIndex)
	}
	result, ok = Find("something unique", doc, Config{MinWordCount: 1})
	if !ok || result.CueIndex != 0 {
		t.Fatalf("expected first cue match, got %#v ok=%v", result, ok)
	}
}

func TestInterpolatedCueMsMidCue(t *testing.T) {
	result := Result{
		Cue:                 srt.Cue{StartMs: 10000, EndMs: 14000},
		OffsetFractionInCue: 0.5,
	}
	if got := result.InterpolatedCueMs(); got != 12000 {
		t.Fatalf("interpolated time = %d, want 12000", got)
	}
	result.OffsetFractionInText = 0.25
	if got := result.InterpolatedCueMs(); got != 11000 {
		t.Fatalf("interpolated time = %d, want 11000", got)
	}
}
