package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("debug hidden by default", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, false)

		logger.Debug("spawning")
		logger.Warn("careful")

		assert.NotContains(t, buf.String(), "spawning")
		assert.Contains(t, buf.String(), "careful")
	})

	t.Run("debug shown when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, true)

		logger.WithField("test", "a.sh").Debug("spawning")

		assert.Contains(t, buf.String(), "spawning")
		assert.Contains(t, buf.String(), "test=a.sh")
	})
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() { logger.Error("dropped") })
}
