package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/crosscheck/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	// Save and restore the original logger
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Default().Info().Str("source", "plan.json").Msg("info message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "plan.json") {
		t.Errorf("Expected source field in output, got: %s", output)
	}
}

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewJSON(buf)

	logger.Info().Int("records", 142).Msg("Loaded records")

	output := buf.String()
	if !strings.Contains(output, `"records":142`) {
		t.Errorf("Expected structured field in output, got: %s", output)
	}
}

func TestTestLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	testLogger.Info().Str("market", "KSA").Msg("validating market")

	if !testLogger.Contains("validating market") {
		t.Errorf("Expected message in captured output, got: %s", testLogger.Output())
	}
	if len(testLogger.Lines()) != 1 {
		t.Errorf("Expected one log line, got %d", len(testLogger.Lines()))
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	// Must not panic and must produce nothing.
	logger.Error().Msg("discarded")
}
