package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogniflow/cogniflow/internal/logger"
)

func newBufferLogger(level logger.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(level),
		logger.WithColors(false),
	)
	return l, &buf
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferLogger(logger.WARN)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestPrefixAndFields(t *testing.T) {
	l, buf := newBufferLogger(logger.DEBUG)

	l.WithPrefix("repo").WithField("user_id", "u1").Info("stored record")

	out := buf.String()
	assert.Contains(t, out, "[repo]")
	assert.Contains(t, out, "user_id=u1")
	assert.Contains(t, out, "stored record")
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(logger.DEBUG)

	child := l.WithField("child_only", 1)
	l.Info("from parent")
	child.Info("from child")

	out := buf.String()
	assert.Contains(t, out, "from parent")
	lines := bytes.Split(buf.Bytes(), []byte("\n"))
	assert.NotContains(t, string(lines[0]), "child_only")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logger.DEBUG, logger.ParseLevel("debug"))
	assert.Equal(t, logger.WARN, logger.ParseLevel("WARNING"))
	assert.Equal(t, logger.INFO, logger.ParseLevel("garbage"))
}

func TestFromContextFallback(t *testing.T) {
	assert.NotNil(t, logger.FromContext(context.Background()))

	l, _ := newBufferLogger(logger.DEBUG)
	ctx := logger.NewContext(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))
}
