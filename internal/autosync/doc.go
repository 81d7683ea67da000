// Package autosync discovers anchor pairs by sampling a video's audio and
// matching transcribed speech against the subtitle corpus.
//
// A Search slides a fixed-duration probe window across the media timeline:
// each attempt extracts the window's audio, transcribes it, and asks the
// match finder for an unambiguous cue match. The search is a bounded state
// machine - SCANNING until a confident match is ACCEPTED, or EXHAUSTED
// when the window runs off the end of the media or the attempt ceiling is
// hit. Transcription failures never abort a search; they advance it.
//
// A Searcher runs two independent searches (one in the first half of the
// media, one in the second) to produce the well-separated anchor pair the
// time-correction engine needs. The two searches share only read-only
// state and run concurrently, each with its own scratch directory.
package autosync
