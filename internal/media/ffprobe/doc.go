// Package ffprobe inspects media containers with the ffprobe binary.
// The auto-sync search uses it to learn the media duration (the search
// window's upper bound) and to pick the audio stream to sample.
package ffprobe
