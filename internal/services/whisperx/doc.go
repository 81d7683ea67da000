// Package whisperx runs WhisperX through uvx to transcribe audio segments
// locally. Confidence is derived from the word-level alignment scores in
// the WhisperX JSON output.
package whisperx
