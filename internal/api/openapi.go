package api

import (
	"fmt"

	"github.com/JaimeStill/juice/internal/config"
	"github.com/JaimeStill/juice/pkg/openapi"
)

var schemas = map[string]*openapi.Schema{
	"RandomPrompt": openapi.Object(map[string]*openapi.Schema{
		"prompt": {Type: "string"},
		"index":  {Type: "integer", Description: "Position of the prompt in the corpus"},
		"total":  {Type: "integer", Description: "Number of prompts in the corpus"},
	}, "prompt", "index", "total"),
	"GenerateCommand": openapi.Object(map[string]*openapi.Schema{
		"idea": {Type: "string", Example: "A plant care assistant that diagnoses leaf problems from a photo"},
	}, "idea"),
	"Idea": openapi.Object(map[string]*openapi.Schema{
		"idea":     {Type: "string"},
		"prd":      {Type: "string", Description: "Markdown document"},
		"prd_html": {Type: "string", Description: "Rendered document, present with format=html"},
	}, "idea", "prd"),
	"AddCommand": openapi.Object(map[string]*openapi.Schema{
		"userId": {Type: "string"},
		"prompt": {Type: "string"},
	}, "userId", "prompt"),
	"Favorite": openapi.Object(map[string]*openapi.Schema{
		"id":         {Type: "integer", Format: "int64"},
		"user_id":    {Type: "string"},
		"prompt":     {Type: "string"},
		"created_at": {Type: "string", Format: "date-time"},
	}, "id", "user_id", "prompt", "created_at"),
	"FavoriteList": openapi.ArrayOf("Favorite"),
	"Success": openapi.Object(map[string]*openapi.Schema{
		"success": {Type: "boolean"},
	}, "success"),
	"RenderCommand": openapi.Object(map[string]*openapi.Schema{
		"markdown": {Type: "string"},
	}, "markdown"),
	"Rendered": openapi.Object(map[string]*openapi.Schema{
		"html": {Type: "string"},
	}, "html"),
}

func buildDocument(cfg *config.Config) *openapi.Document {
	doc := openapi.New(&cfg.API.OpenAPI, cfg.Version, cfg.API.BasePath)
	doc.Components.AddSchemas(schemas)

	favoriteErrors := []string{openapi.BadRequest, openapi.InternalError}
	if cfg.Auth.Enabled() {
		favoriteErrors = append(favoriteErrors, openapi.Unauthorized, openapi.Forbidden)
	}

	doc.Path("/random-prompt").Get = &openapi.Operation{
		Summary:   "Random prompt",
		Tags:      []string{"Prompts"},
		Responses: openapi.Responses(openapi.JSONResponse("A random prompt", "RandomPrompt"), openapi.InternalError),
	}

	doc.Path("/generate-prd").Post = &openapi.Operation{
		Summary:     "Generate a product requirements document",
		Tags:        []string{"Completions"},
		Parameters:  []*openapi.Parameter{openapi.QueryParam("format", "Set to html to include rendered output")},
		RequestBody: openapi.JSONBody("GenerateCommand"),
		Responses:   openapi.Responses(openapi.JSONResponse("Generated PRD", "Idea"), openapi.BadRequest, openapi.InternalError),
	}

	doc.Path("/favorites").Post = &openapi.Operation{
		Summary:     "Save a favorite",
		Tags:        []string{"Favorites"},
		RequestBody: openapi.JSONBody("AddCommand"),
		Responses:   openapi.Responses(openapi.JSONResponse("Saved favorite", "Favorite"), favoriteErrors...),
	}

	// The segment is a user ID for GET and a favorite ID for DELETE.
	keyed := doc.Path("/favorites/{key}")
	keyed.Get = &openapi.Operation{
		Summary:    "List a user's favorites",
		Tags:       []string{"Favorites"},
		Parameters: []*openapi.Parameter{openapi.PathParam("key", "string", "", "User identifier")},
		Responses:  openapi.Responses(openapi.JSONResponse("Favorites", "FavoriteList"), favoriteErrors...),
	}
	keyed.Delete = &openapi.Operation{
		Summary:    "Remove a favorite",
		Tags:       []string{"Favorites"},
		Parameters: []*openapi.Parameter{openapi.PathParam("key", "integer", "int64", "Favorite identifier")},
		Responses:  openapi.Responses(openapi.JSONResponse("Removed", "Success"), favoriteErrors...),
	}

	doc.Path("/render").Post = &openapi.Operation{
		Summary:     "Render markdown to HTML",
		Tags:        []string{"Render"},
		RequestBody: openapi.JSONBody("RenderCommand"),
		Responses:   openapi.Responses(openapi.JSONResponse("Rendered HTML", "Rendered"), openapi.BadRequest, openapi.InternalError),
	}

	return doc
}

func documentBytes(cfg *config.Config) ([]byte, error) {
	data, err := buildDocument(cfg).Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal openapi document: %w", err)
	}
	return data, nil
}
