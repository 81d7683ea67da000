// Package services defines the shared error taxonomy for components that
// talk to external tools and APIs (ffmpeg, ffprobe, transcription
// engines). Sentinel markers let callers distinguish misconfiguration
// from tool failure without parsing messages.
package services
