package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeSync()
	c.normalizeTranscriber()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeSync() {
	c.Sync.Language = strings.TrimSpace(c.Sync.Language)
	if c.Sync.Language == "" {
		c.Sync.Language = defaultLanguage
	}
	c.Sync.Encoding = canonicalEncoding(c.Sync.Encoding)
}

func (c *Config) normalizeTranscriber() {
	c.Transcriber.Engine = strings.ToLower(strings.TrimSpace(c.Transcriber.Engine))
	if c.Transcriber.Engine == "" {
		c.Transcriber.Engine = EngineWhisperX
	}
	c.Transcriber.WhisperXModel = strings.TrimSpace(c.Transcriber.WhisperXModel)
	if c.Transcriber.WhisperXModel == "" {
		c.Transcriber.WhisperXModel = defaultWhisperXModel
	}
	if c.Transcriber.OpenAIAPIKey == "" {
		if value, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
			c.Transcriber.OpenAIAPIKey = value
		}
	}
	c.Transcriber.OpenAIBaseURL = strings.TrimSpace(c.Transcriber.OpenAIBaseURL)
	c.Transcriber.OpenAIModel = strings.TrimSpace(c.Transcriber.OpenAIModel)
	if c.Transcriber.OpenAIModel == "" {
		c.Transcriber.OpenAIModel = defaultOpenAIModel
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// canonicalEncoding maps the accepted encoding aliases onto the two
// canonical names. Unknown values pass through for Validate to reject.
func canonicalEncoding(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "utf-8", "utf8":
		return "utf-8"
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return "latin-1"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
