package api

import (
	"fmt"

	"github.com/JaimeStill/juice/internal/completions"
	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/internal/favorites"
	"github.com/JaimeStill/juice/internal/prompts"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Prompts     prompts.System
	Completions completions.System
	Favorites   favorites.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(cfg *config.Config, runtime *Runtime) (*Domain, error) {
	corpus, err := prompts.Load(
		runtime.Lifecycle.Context(),
		&cfg.Corpus,
		runtime.Storage,
		runtime.Logger,
	)
	if err != nil {
		return nil, fmt.Errorf("prompt corpus: %w", err)
	}

	return &Domain{
		Prompts: prompts.New(corpus, runtime.Logger),
		Completions: completions.New(
			&cfg.Completion,
			runtime.Renderer,
			runtime.Logger,
		),
		Favorites: favorites.New(
			runtime.Database.Connection(),
			runtime.Database.QueryTimeout(),
			runtime.Logger,
		),
	}, nil
}
