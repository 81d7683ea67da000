package match

import (
	"math"
	"strings"

	"srtsync/internal/srt"
	"srtsync/internal/textutil"
)

// Config controls candidate acceptance.
type Config struct {
	// MinWordCount is the minimum number of words a candidate (or, in
	// fuzzy mode, the common substring) must contain.
	MinWordCount int
	// AllowFuzzySubstring enables longest-common-substring matching when
	// the candidate is not a literal corpus substring.
	AllowFuzzySubstring bool
}

// Result identifies the matched cue and where inside it the candidate's
// words begin.
type Result struct {
	// CueIndex is the position of the matched cue in the document.
	CueIndex int
	Cue      srt.Cue
	// OffsetFractionInCue is the fractional position of the matched text
	// within the cue's normalized text, in [0, 1].
	OffsetFractionInCue float64
	// OffsetFractionInText is the fractional position of the matched text
	// within the candidate, in [0, 1]. Always 0 in exact mode.
	OffsetFractionInText float64
}

// InterpolatedCueMs returns the subtitle-side anchor time: the cue start
// shifted forward to where the matched words appear in the cue and backward
// by how far into the spoken window they were heard.
func (r Result) InterpolatedCueMs() int64 {
	span := float64(r.Cue.DurationMs())
	return r.Cue.StartMs + int64(math.Round(span*(r.OffsetFractionInCue-r.OffsetFractionInText)))
}

// Find locates at most one unambiguous match for a normalized candidate
// string. Cues are scanned in file order and the first acceptable cue wins.
// Returns false when the candidate is empty, ambiguous, too short, or not
// found.
func Find(candidate string, doc *srt.Document, cfg Config) (Result, bool) {
	if strings.TrimSpace(candidate) == "" {
		return Result{}, false
	}

	corpus := doc.Corpus()
	occurrences := strings.Count(corpus, textutil.StripSpaces(candidate))
	// Ambiguity always wins over acceptance: a phrase heard in two places
	// cannot anchor a timestamp.
	if occurrences > 1 {
		return Result{}, false
	}
	if !cfg.AllowFuzzySubstring && occurrences == 0 {
		return Result{}, false
	}
	if textutil.WordCount(candidate) < cfg.MinWordCount {
		return Result{}, false
	}

	for i := range doc.Cues {
		cueText := doc.NormalizedCue(i)
		if cueText == "" {
			continue
		}
		if !cfg.AllowFuzzySubstring {
			if idx := strings.Index(cueText, candidate); idx >= 0 {
				return Result{
					CueIndex:            i,
					Cue:                 doc.Cues[i],
					OffsetFractionInCue: float64(idx) / float64(len(cueText)),
				}, true
			}
			continue
		}

		common := textutil.LongestCommonSubstring(candidate, cueText)
		if common == "" {
			continue
		}
		if strings.Count(corpus, textutil.StripSpaces(common)) > 1 {
			continue
		}
		if textutil.WordCount(common) < cfg.MinWordCount {
			continue
		}
		return Result{
			CueIndex:             i,
			Cue:                  doc.Cues[i],
			OffsetFractionInCue:  float64(strings.Index(cueText, common)) / float64(len(cueText)),
			OffsetFractionInText: float64(strings.Index(candidate, common)) / float64(len(candidate)),
		}, true
	}
	return Result{}, false
}
