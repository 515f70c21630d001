package logging_test

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/crosscheck/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig writes to a file", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "test-log-*.txt")
		assert.NoError(t, err)
		defer os.Remove(tmpfile.Name())
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:  "debug",
			Format: "json",
			Output: tmpfile.Name(),
		}

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Info().Msg("test message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		assert.Contains(t, string(content), "test message")
		assert.Contains(t, string(content), "info")
	})

	t.Run("level filtering", func(t *testing.T) {
		tmpfile, err := os.CreateTemp("", "test-log-*.txt")
		assert.NoError(t, err)
		defer os.Remove(tmpfile.Name())
		defer tmpfile.Close()

		cfg := &logging.Config{
			Level:  "warn",
			Format: "json",
			Output: tmpfile.Name(),
		}

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Debug().Msg("debug message")
		logger.Info().Msg("info message")
		logger.Warn().Msg("warn message")
		logger.Error().Msg("error message")

		content, err := os.ReadFile(tmpfile.Name())
		assert.NoError(t, err)
		output := string(content)
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warn message")
		assert.Contains(t, output, "error message")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		logger := logging.NewLoggerFromConfig(nil)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("discard output", func(t *testing.T) {
		cfg := &logging.Config{Level: "info", Format: "json", Output: "discard"}
		logger := logging.NewLoggerFromConfig(cfg)
		// Must not panic.
		logger.Info().Msg("discarded")
	})
}
