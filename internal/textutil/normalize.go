package textutil

import "strings"

// Normalize lowercases text and removes every character outside ASCII
// letters, digits, and space. The result is the canonical form used for
// transcript/subtitle comparison.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// StripSpaces removes all spaces from a normalized string. Corpus
// occurrence counting runs on space-free text so that cue boundaries and
// transcription spacing differences cannot split a phrase.
func StripSpaces(text string) string {
	return strings.ReplaceAll(text, " ", "")
}

// WordCount reports the number of whitespace-separated words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
