package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
	}
	for raw, want := range cases {
		got, ok := parseLevel(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got, raw)
	}

	_, ok := parseLevel("")
	require.False(t, ok)
	_, ok = parseLevel("loud")
	require.False(t, ok)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "1")

	cfg := defaultConfig(ProfileRuntime)
	applyEnvOverrides(&cfg)

	require.Equal(t, zerolog.WarnLevel, cfg.Level)
	require.False(t, cfg.Timestamp)
	require.True(t, cfg.NoColor)
}

func TestEnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv(EnvLogLevel, "chatty")
	t.Setenv(EnvLogTimestamp, "maybe")

	cfg := defaultConfig(ProfileTest)
	applyEnvOverrides(&cfg)

	require.Equal(t, zerolog.DebugLevel, cfg.Level)
	require.False(t, cfg.Timestamp)
}

func TestNonFileOutputIsNotColored(t *testing.T) {
	require.False(t, isTerminal(&bytes.Buffer{}))
}

func TestApplyWritesPlainConsoleLines(t *testing.T) {
	prevLevel, prevLogger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(prevLevel)
		log.Logger = prevLogger
	})

	var buf bytes.Buffer
	apply(Config{Level: zerolog.InfoLevel, NoColor: true, Out: &buf})

	lg := Component("stdf.writer")
	lg.Info().Str("kind", "FAR").Msg("stdf.Writer.Write")
	lg.Debug().Msg("hidden")

	out := buf.String()
	require.True(t, strings.Contains(out, "stdf.Writer.Write"), out)
	require.Contains(t, out, "kind=FAR")
	require.Contains(t, out, "component=stdf.writer")
	require.NotContains(t, out, "hidden")

	require.True(t, SetLevel("debug"))
	require.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	require.False(t, SetLevel("nope"))
}
