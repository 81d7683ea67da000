// Command srtsync synchronizes SRT subtitle files with video timing,
// either from two user-supplied timestamp pairs or automatically by
// transcribing audio samples and matching them against the subtitles.
package main
