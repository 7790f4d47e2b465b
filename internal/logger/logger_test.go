package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetBeforeInitDiscards(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	l := Get()
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestInitOnce(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var first, second bytes.Buffer
	Init(Options{Level: "debug", Output: &first})
	Init(Options{Level: "error", Output: &second})

	l := Get()
	l.Debug().Msg("hello")
	assert.Contains(t, first.String(), `"message":"hello"`)
	assert.Contains(t, first.String(), `"time":`)
	assert.Empty(t, second.String())
}

func TestInitLevelFilters(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	l := Init(Options{Level: "warn", Output: &buf})
	l.Info().Msg("quiet")
	l.Warn().Msg("loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}
