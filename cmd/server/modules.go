package main

import (
	"net/http"

	"github.com/JaimeStill/juice/internal/api"
	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/internal/infrastructure"
	"github.com/JaimeStill/juice/pkg/handlers"
	"github.com/JaimeStill/juice/pkg/middleware"
	"github.com/JaimeStill/juice/pkg/module"
)

type Modules struct {
	API *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	return &Modules{API: apiModule}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
}

// Health reports liveness with a fixed payload and checks no dependencies.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	native := middleware.New()
	native.Use(middleware.Logger(infra.Logger))
	native.Use(middleware.CORS(&cfg.API.CORS))

	health := native.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, Health{
			Status:  "ok",
			Message: "Creative Juice API is running",
		})
	}))

	ready := native.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]any{
				"status":   "not ready",
				"database": infra.Database.Ready(),
			})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]any{
			"status":   "ready",
			"database": infra.Database.Ready(),
		})
	}))

	router.HandleNative("GET /health", health.ServeHTTP)
	router.HandleNative("GET /readyz", ready.ServeHTTP)

	return router
}
