package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/elex/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"ELEX_RUNTIME_PATH" envDefault:".elex"`

	// Default request shaping, overridable per invocation by flags
	TestResults  bool `env:"ELEX_TEST" envDefault:"false"`
	NationalOnly bool `env:"ELEX_NATIONAL_ONLY" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	c.RuntimePath = resolveRuntimePath(c.RuntimePath)
	return c
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}
