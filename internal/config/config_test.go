package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/script"
	"github.com/danmuck/stdfkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadWriterConfigAppliesDefaults(t *testing.T) {
	testlog.Start(t)

	cfg, err := LoadWriterConfig(writeFile(t, "metrics_file = \"out.prom\"\n"))
	require.NoError(t, err)
	require.Equal(t, wire.CPUIntel, cfg.CPUType)
	require.Equal(t, uint8(4), cfg.STDFVersion)
	require.True(t, cfg.Strict())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "out.prom", cfg.MetricsFile)
}

func TestLoadWriterConfigKeepsExplicitValues(t *testing.T) {
	cfg, err := LoadWriterConfig(writeFile(t, "cpu_type = 1\nstrict_ascii = false\nlog_level = \"debug\"\n"))
	require.NoError(t, err)
	require.Equal(t, wire.CPUSun, cfg.CPUType)
	require.False(t, cfg.Strict())
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadWriterConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"cpu":     "cpu_type = 3\n",
		"version": "stdf_ver = 3\n",
		"level":   "log_level = \"loud\"\n",
		"syntax":  "cpu_type = \n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadWriterConfig(writeFile(t, body))
			require.Error(t, err)
		})
	}

	_, err := LoadWriterConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "config load failed")
}

func TestDefaultWriterConfigValidates(t *testing.T) {
	require.NoError(t, ValidateWriterConfig(DefaultWriterConfig()))
	require.True(t, WriterConfig{}.Strict())
}

func TestTemplatesLoad(t *testing.T) {
	testlog.Start(t)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, WriteTemplate(cfgPath, "config", false))
	require.ErrorContains(t, WriteTemplate(cfgPath, "config", false), "already exists")
	require.NoError(t, WriteTemplate(cfgPath, "config", true))

	cfg, err := LoadWriterConfig(cfgPath)
	require.NoError(t, err)
	require.Equal(t, DefaultWriterConfig().CPUType, cfg.CPUType)

	src, err := Template("script")
	require.NoError(t, err)
	recs, err := script.Parse(src)
	require.NoError(t, err)
	require.Len(t, recs, 7)

	_, err = Template("ghost")
	require.ErrorContains(t, err, "unknown template kind")
}
