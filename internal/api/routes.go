package api

import (
	"net/http"

	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/pkg/openapi"
	"github.com/JaimeStill/juice/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	cfg *config.Config,
	domain *Domain,
	runtime *Runtime,
	doc []byte,
) {
	favoriteRoutes := domain.Favorites.Handler().Routes()
	if runtime.Auth != nil {
		favoriteRoutes.Middleware = append(favoriteRoutes.Middleware, runtime.Auth.Middleware())
	}

	routes.Register(
		mux,
		domain.Prompts.Handler().Routes(),
		domain.Completions.Handler().Routes(),
		favoriteRoutes,
		runtime.Renderer.Handler().Routes(),
		routes.Group{
			Prefix: cfg.API.OpenAPI.Path,
			Routes: []routes.Route{
				{Method: "GET", Pattern: "", Handler: openapi.Handler(doc)},
			},
		},
	)
}
