// Package audio extracts audio segments from media files with ffmpeg.
// Segments are written as mono 16kHz PCM WAV, the input format the
// transcription engines expect.
package audio
