package api

import (
	"github.com/JaimeStill/juice/internal/infrastructure"
	"github.com/JaimeStill/juice/internal/render"
)

// Runtime extends Infrastructure with API-scoped collaborators.
type Runtime struct {
	*infrastructure.Infrastructure
	Renderer *render.Renderer
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			Auth:      infra.Auth,
		},
		Renderer: render.New(logger),
	}
}
