// Package language maps the BCP-47 style tags used by sync configuration
// (for example "en-US") onto the code forms the transcription engines
// expect: Whisper-based engines take bare ISO 639-1 codes, while
// API-backed recognizers accept the full tag.
package language
