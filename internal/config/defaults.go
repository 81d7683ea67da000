package config

const (
	// EngineWhisperX runs transcription locally through uvx.
	EngineWhisperX = "whisperx"
	// EngineOpenAI sends audio to an OpenAI-compatible endpoint.
	EngineOpenAI = "openai"

	defaultConfidenceThreshold = 70
	defaultMinWordCount        = 3
	defaultWindowDurationSec   = 2.5
	defaultMaxAttempts         = 50
	defaultLanguage            = "en-US"
	defaultEncoding            = "utf-8"
	defaultWhisperXModel       = "small"
	defaultOpenAIModel         = "whisper-1"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:  "~/.cache/srtsync/work",
			StateDir: "~/.local/share/srtsync",
			LogDir:   "~/.local/share/srtsync/logs",
		},
		Sync: Sync{
			ConfidenceThreshold: defaultConfidenceThreshold,
			MinWordCount:        defaultMinWordCount,
			AllowFuzzySubstring: false,
			WindowDurationSec:   defaultWindowDurationSec,
			MaxAttempts:         defaultMaxAttempts,
			Language:            defaultLanguage,
			Encoding:            defaultEncoding,
		},
		Transcriber: Transcriber{
			Engine:        EngineWhisperX,
			WhisperXModel: defaultWhisperXModel,
			OpenAIModel:   defaultOpenAIModel,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
