package srt

import "srtsync/internal/textutil"

// Cue is a single subtitle entry: an index, a display time range in
// milliseconds, and the displayed text (possibly multi-line).
type Cue struct {
	Index   int
	StartMs int64
	EndMs   int64
	Text    string
}

// DurationMs returns the cue's display span in milliseconds.
func (c Cue) DurationMs() int64 {
	return c.EndMs - c.StartMs
}

// Document is an ordered cue sequence loaded from one subtitle file.
// The normalized per-cue text and the search corpus are derived once at
// parse time and are read-only afterwards.
type Document struct {
	Cues []Cue

	normalized []string
	corpus     string
}

// NormalizedCue returns the normalized text of the cue at position i.
func (d *Document) NormalizedCue(i int) string {
	return d.normalized[i]
}

// Corpus returns the normalized concatenation of all cue text with spaces
// removed. It is the haystack for substring and ambiguity checks.
func (d *Document) Corpus() string {
	return d.corpus
}

func (d *Document) buildIndex() {
	d.normalized = make([]string, len(d.Cues))
	var corpus []byte
	for i, cue := range d.Cues {
		norm := textutil.Normalize(cue.Text)
		d.normalized[i] = norm
		corpus = append(corpus, textutil.StripSpaces(norm)...)
	}
	d.corpus = string(corpus)
}
