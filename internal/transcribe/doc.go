// Package transcribe defines the contract between the auto-sync search and
// the speech-to-text engines that back it.
//
// A Probe turns a short WAV segment into (confidence, text). Engines that
// cannot produce a confident result return an error or a zero Result; the
// search loop downgrades errors to zero-confidence empty results so that a
// flaky network or unintelligible audio advances the search instead of
// aborting it.
package transcribe
