package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSync(); err != nil {
		return err
	}
	if err := c.validateTranscriber(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.ConfidenceThreshold < 0 || c.Sync.ConfidenceThreshold > 100 {
		return errors.New("sync.confidence_threshold must be between 0 and 100")
	}
	if c.Sync.MinWordCount < 1 {
		return errors.New("sync.min_word_count must be at least 1")
	}
	if c.Sync.WindowDurationSec <= 0 {
		return errors.New("sync.window_duration_sec must be positive")
	}
	if c.Sync.MaxAttempts < 1 {
		return errors.New("sync.max_attempts must be at least 1")
	}
	switch c.Sync.Encoding {
	case "utf-8", "latin-1":
	default:
		return fmt.Errorf("sync.encoding must be utf-8 or latin-1, got %q", c.Sync.Encoding)
	}
	return nil
}

func (c *Config) validateTranscriber() error {
	switch c.Transcriber.Engine {
	case EngineWhisperX:
		return nil
	case EngineOpenAI:
		if c.Transcriber.OpenAIAPIKey == "" {
			defaultPath, err := DefaultConfigPath()
			if err != nil {
				defaultPath = "~/.config/srtsync/config.toml"
			}
			return fmt.Errorf("transcriber.openai_api_key is required when transcriber.engine is openai. Set OPENAI_API_KEY env var or edit %s (create with 'srtsync config init')", defaultPath)
		}
		return nil
	default:
		return fmt.Errorf("transcriber.engine must be %s or %s, got %q", EngineWhisperX, EngineOpenAI, c.Transcriber.Engine)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
