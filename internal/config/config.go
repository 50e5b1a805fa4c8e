package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/stdfkit/internal/logging"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/pelletier/go-toml/v2"
)

// WriterConfig drives stdfgen runs.
type WriterConfig struct {
	CPUType     uint8  `toml:"cpu_type"`
	STDFVersion uint8  `toml:"stdf_ver"`
	StrictASCII *bool  `toml:"strict_ascii"`
	LogLevel    string `toml:"log_level"`
	// MetricsFile receives writer counters in Prometheus text format after a
	// run. Empty disables the dump.
	MetricsFile string `toml:"metrics_file"`
}

// Strict reports whether Cn fields must stay 7-bit ASCII.
func (c WriterConfig) Strict() bool {
	return c.StrictASCII == nil || *c.StrictASCII
}

func DefaultWriterConfig() WriterConfig {
	strict := true
	return WriterConfig{
		CPUType:     wire.CPUIntel,
		STDFVersion: 4,
		StrictASCII: &strict,
		LogLevel:    "info",
	}
}

func LoadWriterConfig(path string) (WriterConfig, error) {
	var cfg WriterConfig
	if err := loadToml(path, &cfg); err != nil {
		return WriterConfig{}, err
	}
	def := DefaultWriterConfig()
	if cfg.CPUType == 0 {
		cfg.CPUType = def.CPUType
	}
	if cfg.STDFVersion == 0 {
		cfg.STDFVersion = def.STDFVersion
	}
	if cfg.StrictASCII == nil {
		cfg.StrictASCII = def.StrictASCII
	}
	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = def.LogLevel
	}
	if err := ValidateWriterConfig(cfg); err != nil {
		return WriterConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return nil
}

func ValidateWriterConfig(cfg WriterConfig) error {
	switch cfg.CPUType {
	case wire.CPUSun, wire.CPUIntel:
	default:
		return fmt.Errorf("writer config cpu_type %d unsupported (want %d or %d)",
			cfg.CPUType, wire.CPUSun, wire.CPUIntel)
	}
	if cfg.STDFVersion != 4 {
		return fmt.Errorf("writer config stdf_ver %d unsupported (want 4)", cfg.STDFVersion)
	}
	if strings.TrimSpace(cfg.LogLevel) != "" && !logging.ValidLevel(cfg.LogLevel) {
		return fmt.Errorf("writer config log_level %q unknown", cfg.LogLevel)
	}
	return nil
}
