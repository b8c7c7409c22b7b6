package helpers

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerTo(t *testing.T) {
	t.Run("development", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerTo(&buf, "dir", "development")

		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
		assert.Contains(t, buf.String(), "logger initialized")
	})

	t.Run("production", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLoggerTo(&buf, "dir", "production")

		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
		assert.Contains(t, buf.String(), `"app":"dir"`)
		assert.Contains(t, buf.String(), `"env":"production"`)

		buf.Reset()
		logger.Debug("hidden")
		assert.Empty(t, buf.String())
	})
}
