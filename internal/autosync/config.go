package autosync

// Config controls one auto-sync search.
type Config struct {
	// ConfidenceThreshold is the minimum transcription confidence for
	// acceptance, in percent (0-100).
	ConfidenceThreshold int
	// MinWordCount is the minimum word count for a candidate match.
	MinWordCount int
	// AllowFuzzySubstring enables longest-common-substring matching.
	AllowFuzzySubstring bool
	// WindowDurationSec is the probe window length in seconds. The window
	// also advances by this amount after every attempt.
	WindowDurationSec float64
	// MaxAttempts bounds the number of probe windows per search.
	MaxAttempts int
	// Language is the BCP-47 style tag passed to the transcription engine.
	Language string
}

// DefaultConfig returns the standard search settings.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 70,
		MinWordCount:        3,
		AllowFuzzySubstring: false,
		WindowDurationSec:   2.5,
		MaxAttempts:         50,
		Language:            "en-US",
	}
}
