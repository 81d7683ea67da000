package transcribe

import "context"

// Result is one transcription outcome. Confidence is the engine's
// self-reported correctness estimate in [0, 1]; zero when the engine does
// not report one. Text is empty when nothing intelligible was heard.
type Result struct {
	Confidence float64
	Text       string
}

// Probe transcribes a single audio segment. Implementations may block for
// several seconds per call and must honor context cancellation.
// The language parameter is a BCP-47 style tag such as "en-US".
type Probe interface {
	Transcribe(ctx context.Context, wavPath, language string) (Result, error)
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(ctx context.Context, wavPath, language string) (Result, error)

func (f ProbeFunc) Transcribe(ctx context.Context, wavPath, language string) (Result, error) {
	return f(ctx, wavPath, language)
}
