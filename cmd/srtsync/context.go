package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"srtsync/internal/config"
	"srtsync/internal/logging"
	"srtsync/internal/media/audio"
	openaiprobe "srtsync/internal/services/openai"
	"srtsync/internal/services/whisperx"
	"srtsync/internal/syncer"
	"srtsync/internal/timestore"
	"srtsync/internal/transcribe"
)

type commandContext struct {
	configFlag   *string
	encodingFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, encodingFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		encodingFlag: encodingFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.encodingFlag != nil && strings.TrimSpace(*c.encodingFlag) != "" {
			cfg.Sync.Encoding = strings.TrimSpace(*c.encodingFlag)
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		outputs := []string{"stderr"}
		if cfg.Paths.LogDir != "" {
			outputs = append(outputs, filepath.Join(cfg.Paths.LogDir, "srtsync.log"))
		}
		c.logger, c.loggerErr = logging.New(logging.Options{
			Level:            cfg.Logging.Level,
			Format:           cfg.Logging.Format,
			OutputPaths:      outputs,
			ErrorOutputPaths: outputs,
		})
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) openStore() (*timestore.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return timestore.Open(cfg)
}

// buildProbe selects the transcription engine from configuration.
func buildProbe(cfg *config.Config) (transcribe.Probe, error) {
	switch cfg.Transcriber.Engine {
	case config.EngineWhisperX:
		return whisperx.NewService(whisperx.Config{
			Model:       cfg.Transcriber.WhisperXModel,
			CUDAEnabled: cfg.Transcriber.WhisperXCUDAEnabled,
		}), nil
	case config.EngineOpenAI:
		return openaiprobe.New(
			cfg.Transcriber.OpenAIAPIKey,
			cfg.Transcriber.OpenAIBaseURL,
			cfg.Transcriber.OpenAIModel,
		), nil
	default:
		return nil, fmt.Errorf("unknown transcriber engine %q", cfg.Transcriber.Engine)
	}
}

// newSyncer assembles the full pipeline behind the sync commands.
func (c *commandContext) newSyncer(store *timestore.Store) (*syncer.Syncer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	probe, err := buildProbe(cfg)
	if err != nil {
		return nil, err
	}
	return &syncer.Syncer{
		Config:    cfg,
		Store:     store,
		Probe:     probe,
		Extractor: audio.NewExtractor(cfg.FFmpegBinary()),
		Logger:    logger,
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
