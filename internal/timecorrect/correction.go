package timecorrect

import (
	"errors"
	"fmt"
	"math"

	"srtsync/internal/srt"
)

// ErrDegenerateAnchors marks an anchor pair whose source timestamps
// coincide; no line can be fit through them.
var ErrDegenerateAnchors = errors.New("degenerate anchor pair")

// Anchor is one (source, target) timestamp pair in milliseconds. Source is
// a timestamp as currently written in the subtitle file; Target is where
// that moment actually occurs in the video.
type Anchor struct {
	SourceMs int64
	TargetMs int64
}

// Coefficients hold a derived correction. Immutable once computed.
type Coefficients struct {
	Scale  float64
	Offset float64
}

// Calc derives correction coefficients from two anchor pairs. The anchors
// must have distinct source timestamps.
func Calc(p1, p2 Anchor) (Coefficients, error) {
	if p1.SourceMs == p2.SourceMs {
		return Coefficients{}, fmt.Errorf("%w: both anchors at source %s",
			ErrDegenerateAnchors, srt.FormatTimestamp(p1.SourceMs))
	}
	scale := float64(p2.TargetMs-p1.TargetMs) / float64(p2.SourceMs-p1.SourceMs)
	offset := float64(p2.TargetMs) - scale*float64(p2.SourceMs)
	return Coefficients{Scale: scale, Offset: offset}, nil
}

// CorrectMs maps a single timestamp through the correction, rounding to the
// nearest millisecond.
func (c Coefficients) CorrectMs(ms int64) int64 {
	return int64(math.Round(float64(ms)*c.Scale + c.Offset))
}

// Apply remaps every cue's start and end in place. It performs no ordering
// re-validation: a pathological correction can produce start > end, and the
// caller decides whether that is acceptable.
func Apply(cues []srt.Cue, c Coefficients) {
	for i := range cues {
		cues[i].StartMs = c.CorrectMs(cues[i].StartMs)
		cues[i].EndMs = c.CorrectMs(cues[i].EndMs)
	}
}
