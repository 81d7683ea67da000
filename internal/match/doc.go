// Package match locates a transcribed speech candidate inside a subtitle
// document.
//
// A candidate is accepted only when it is unambiguous: if its space-free
// form occurs more than once in the whole corpus the candidate is rejected
// outright, regardless of mode. Exact mode requires the candidate to be a
// literal substring of a single cue's normalized text; fuzzy mode falls
// back to the longest common contiguous substring between candidate and
// cue, re-checking that substring's corpus uniqueness.
//
// The result carries two offset fractions so the caller can interpolate a
// time inside the matched cue instead of snapping to its boundary: where
// the matched words sit within the cue's text, and where they sit within
// the spoken candidate.
package match
