package main

import (
	"time"

	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/internal/infrastructure"
	"github.com/JaimeStill/juice/pkg/formatting"
)

// Server wires infrastructure, the API module, and the HTTP listener.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	infra.Logger.Info(
		"creative juice initialized",
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
		"version", cfg.Version,
		"base_path", cfg.API.BasePath,
		"max_body_size", formatting.FormatBytes(cfg.API.MaxBodySizeBytes(), 0),
		"completion_model", cfg.Completion.Model,
		"completion_key", cfg.Completion.APIKey != "",
		"storage", cfg.Storage.Enabled(),
		"auth", cfg.Auth.Enabled(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
