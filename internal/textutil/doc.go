// Package textutil provides the text normalization and substring helpers
// used to match transcribed speech against subtitle text.
//
// All matching happens in a reduced alphabet: lowercase ASCII letters,
// digits, and spaces. Normalize maps arbitrary text into that alphabet and
// the remaining helpers operate on already-normalized strings.
package textutil
