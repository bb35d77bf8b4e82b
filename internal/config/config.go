package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	EnvDebug    = "CHECKICONS_DEBUG"
	EnvStdioLog = "CHECKICONS_STDIO_LOG"
	EnvDebugLog = "CHECKICONS_DEBUG_LOG_PATH"
)

// Config holds the environment defaults for the generator's diagnostic flags.
// Icon sizes and colours are fixed and not configurable.
type Config struct {
	Debug    bool   `env:"CHECKICONS_DEBUG" envDefault:"false"`
	StdioLog string `env:"CHECKICONS_STDIO_LOG"`
	// DebugLogPath is where -debug writes its log.
	DebugLogPath string `env:"CHECKICONS_DEBUG_LOG_PATH" envDefault:"./checkicons-debug.log"`
}

// FromEnv loads Config from the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// FromMap loads Config from an explicit variable set instead of the process
// environment.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
