package bitarray

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ba, err := New(65, WithLogger(logger))
	require.NoError(t, err)

	logOutput := buf.String()
	require.Contains(t, logOutput, "bit array allocated")
	require.Contains(t, logOutput, `"length":65`)
	require.Contains(t, logOutput, `"words":3`)
	require.Contains(t, logOutput, `"word_width":32`)

	buf.Reset()
	require.Error(t, ba.SetTrue(65))

	logOutput = buf.String()
	require.Contains(t, logOutput, "operation rejected")
	require.Contains(t, logOutput, `"op":"set true"`)
	require.Contains(t, logOutput, "index 65 out of range")

	// Successful operations stay silent.
	buf.Reset()
	require.NoError(t, ba.SetRangeTrue(0, 65))
	require.Empty(t, buf.String())
}

func TestStructuredLogging_NegativeLength(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := New(-3, WithLogger(logger))
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, buf.String(), "invalid length: -3")
}

func TestWithLogger_Nil(t *testing.T) {
	ba, err := New(10, WithLogger(nil))
	require.NoError(t, err)
	require.Error(t, ba.SetTrue(10))
}
