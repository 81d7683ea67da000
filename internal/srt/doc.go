// Package srt parses, composes, and indexes SubRip subtitle files.
//
// A parsed Document keeps cues in file order and caches the normalized
// search corpus (all cue text lowercased, reduced to ASCII alphanumerics,
// spaces removed) that the match finder runs substring and ambiguity
// checks against.
//
// Parsing is strict: a malformed cue block fails the whole load with
// ErrParse rather than being skipped, so a corrupted file cannot silently
// produce a partial corpus.
package srt
