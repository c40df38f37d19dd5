package openapi

import "maps"

// Shared error responses, all carrying the Error schema.
const (
	BadRequest    = "BadRequest"
	Unauthorized  = "Unauthorized"
	Forbidden     = "Forbidden"
	InternalError = "InternalError"
)

var errorStatus = map[string]int{
	BadRequest:    400,
	Unauthorized:  401,
	Forbidden:     403,
	InternalError: 500,
}

// Components holds reusable schemas and responses.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

// NewComponents returns Components holding the Error schema and one response
// per shared error name.
func NewComponents() *Components {
	c := &Components{
		Schemas: map[string]*Schema{
			"Error": Object(map[string]*Schema{
				"error":   {Type: "string", Description: "Error summary"},
				"message": {Type: "string", Description: "Underlying cause, when available"},
			}, "error"),
		},
		Responses: make(map[string]*Response, len(errorStatus)),
	}

	descriptions := map[string]string{
		BadRequest:    "Invalid request",
		Unauthorized:  "Missing or invalid bearer token",
		Forbidden:     "Token subject does not own the requested resource",
		InternalError: "Server or upstream failure",
	}
	for name := range errorStatus {
		c.Responses[name] = &Response{Description: descriptions[name], Content: jsonContent("Error")}
	}
	return c
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}
