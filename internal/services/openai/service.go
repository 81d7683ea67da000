package openai

import (
	"context"
	"math"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/tidwall/gjson"

	"srtsync/internal/language"
	"srtsync/internal/services"
	"srtsync/internal/transcribe"
)

// Service transcribes audio segments via the OpenAI audio API. It
// implements transcribe.Probe.
type Service struct {
	client openai.Client
	model  string
}

// New creates a service. baseURL may point at any OpenAI-compatible
// gateway; model defaults to whisper-1.
func New(apiKey, baseURL, model string) *Service {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if strings.TrimSpace(baseURL) != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(baseURL))
	}
	if strings.TrimSpace(model) == "" {
		model = string(openai.AudioModelWhisper1)
	}
	return &Service{
		client: openai.NewClient(clientOpts...),
		model:  model,
	}
}

// Model returns the configured model name for logging.
func (s *Service) Model() string {
	return s.model
}

// Transcribe uploads a WAV segment and returns the transcript with a
// confidence derived from segment log probabilities.
func (s *Service) Transcribe(ctx context.Context, wavPath, lang string) (transcribe.Result, error) {
	var result transcribe.Result

	file, err := os.Open(wavPath)
	if err != nil {
		return result, services.Wrap(services.ErrValidation, "openai", "open segment", "audio segment unreadable", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:           file,
		Model:          openai.AudioModel(s.model),
		ResponseFormat: openai.AudioResponseFormatVerboseJSON,
	}
	if iso2 := language.ToISO2(lang); iso2 != "" {
		params.Language = openai.String(iso2)
	}

	transcription, err := s.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return result, services.Wrap(services.ErrExternalTool, "openai", "transcribe", "audio API request failed", err)
	}

	result.Text = strings.TrimSpace(transcription.Text)
	result.Confidence = confidenceFromVerboseJSON(transcription.RawJSON())
	return result, nil
}

// confidenceFromVerboseJSON estimates confidence from a verbose_json
// transcription payload. Whisper reports per-segment avg_logprob and
// no_speech_prob; confidence is exp(mean avg_logprob) discounted by the
// mean no-speech probability, clamped to [0, 1].
func confidenceFromVerboseJSON(raw string) float64 {
	segments := gjson.Get(raw, "segments")
	if !segments.Exists() || !segments.IsArray() {
		return 0
	}
	var logprobSum, noSpeechSum float64
	var count int
	segments.ForEach(func(_, segment gjson.Result) bool {
		logprobSum += segment.Get("avg_logprob").Float()
		noSpeechSum += segment.Get("no_speech_prob").Float()
		count++
		return true
	})
	if count == 0 {
		return 0
	}
	confidence := math.Exp(logprobSum/float64(count)) * (1 - noSpeechSum/float64(count))
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
