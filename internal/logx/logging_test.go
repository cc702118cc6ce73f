package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug"}, &buf).With(String("comp", "bench"))

	log.Info("measure.row", Int("size", 1024), Err(errors.New("boom")))

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	assert.Equal(t, "info", m["level"])
	assert.Equal(t, "measure.row", m["message"])
	assert.Equal(t, "bench", m["comp"])
	assert.EqualValues(t, 1024, m["size"])
	assert.Equal(t, "boom", m["err"])
	assert.Contains(t, m["caller"], "logging_test.go:")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn"}, &buf)

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())
	assert.False(t, log.Enabled(LevelInfo))
	assert.True(t, log.Enabled(LevelError))

	log.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestZeroLoggerIsNop(t *testing.T) {
	var log Logger
	assert.NotPanics(t, func() { log.Error("dropped", Int("n", 1)) })
	assert.NotPanics(t, func() { Nop().Info("dropped") })
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, ParseLevel(" trace ", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("WARNING", zerolog.InfoLevel))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus", zerolog.InfoLevel))
}
