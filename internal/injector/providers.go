package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geomath/internal/config"
	"github.com/zeusync/geomath/internal/core/observability/log"
	"github.com/zeusync/geomath/internal/scenario"
)

var ProviderSet = wire.NewSet(
	ProvideLogConfig,
	log.NewWithConfig,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideRunnerOptions,
	scenario.NewRunner,
)

func ProvideLogConfig(cfg *config.Config) log.Config {
	return cfg.Log
}

func ProvideRunnerOptions(cfg *config.Config) scenario.Options {
	return scenario.Options{
		Workers:   cfg.Runner.Workers,
		Tolerance: cfg.Runner.Tolerance,
		FailFast:  cfg.Runner.FailFast,
	}
}
