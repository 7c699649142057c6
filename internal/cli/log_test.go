package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

// TestLoggerContext verifies the logger round-trips through the context
// and that a bare context falls back to the default logger.
func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), l)
	assert.Same(t, l, loggerFromContext(ctx))

	assert.NotNil(t, loggerFromContext(context.Background()))
}

// TestNewLogger_Level verifies level filtering.
func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}
