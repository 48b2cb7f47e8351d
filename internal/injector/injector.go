//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geomath/internal/config"
	"github.com/zeusync/geomath/internal/scenario"
)

func InitializeRunner(cfg *config.Config) (*scenario.Runner, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
