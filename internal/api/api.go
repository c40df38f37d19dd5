// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/internal/infrastructure"
	"github.com/JaimeStill/juice/pkg/middleware"
	"github.com/JaimeStill/juice/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// It fails when the prompt corpus cannot be loaded.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(infra)

	domain, err := NewDomain(cfg, runtime)
	if err != nil {
		return nil, err
	}

	doc, err := documentBytes(cfg)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	registerRoutes(mux, cfg, domain, runtime, doc)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.MaxBytes(cfg.API.MaxBodySizeBytes()))

	return m, nil
}
