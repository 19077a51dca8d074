package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logrusLogger := logrus.New()
	logrusLogger.SetOutput(&buf)
	logrusLogger.SetLevel(level)
	logrusLogger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(logrusLogger), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
	}{
		{name: "debug level with text format", level: "debug", format: "text", expectLevel: logrus.DebugLevel},
		{name: "info level with json format", level: "info", format: "json", expectLevel: logrus.InfoLevel},
		{name: "upper case level", level: "WARN", format: "text", expectLevel: logrus.WarnLevel},
		{name: "invalid level defaults to info", level: "loud", format: "text", expectLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			require.NotNil(t, logger)

			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok, "logger should be a LogrusAdapter")
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			if tt.format == "json" {
				_, ok := adapter.logger.Formatter.(*logrus.JSONFormatter)
				assert.True(t, ok, "formatter should be JSONFormatter")
			} else {
				_, ok := adapter.logger.Formatter.(*logrus.TextFormatter)
				assert.True(t, ok, "formatter should be TextFormatter")
			}
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.DebugLevel)

	logger.Debug("debug message", F(FieldCategory, "food"))
	logger.Info("info message", F(FieldStreak, 3))
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "category=food")
	assert.Contains(t, output, "streak=3")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogrusAdapter_LevelFiltering(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogrusAdapter_ChainedCalls(t *testing.T) {
	logger, buf := newBufferedLogger(logrus.InfoLevel)

	logger.
		WithField(FieldUser, "asha").
		WithFields(F(FieldOperation, "add")).
		WithError(errors.New("disk full")).
		Error("operation failed")

	output := buf.String()
	assert.Contains(t, output, "operation failed")
	assert.Contains(t, output, "user=asha")
	assert.Contains(t, output, "operation=add")
	assert.Contains(t, output, "disk full")
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	assert.NotPanics(t, func() {
		logger.WithField("k", "v").Error("nothing to see")
	})
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{F("key1", "value1"), F("key2", 42)})
	assert.Len(t, fields, 2)
	assert.Equal(t, "value1", fields["key1"])
	assert.Equal(t, 42, fields["key2"])

	assert.Len(t, convertFields(nil), 0)
}
