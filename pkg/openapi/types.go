package openapi

// Info is the document's info object.
type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

// Server is a base URL the paths are relative to.
type Server struct {
	URL string `json:"url"`
}

// PathItem holds the operations the service exposes on one path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

// Operation is a single method on a path. Responses are keyed by status code.
type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Required bool                  `json:"required,omitempty"`
	Content  map[string]*MediaType `json:"content"`
}

// Response is either inline or a $ref to a component response.
type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema,omitempty"`
}

// Schema is the subset of JSON Schema the service's payloads need.
type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Example     any                `json:"example,omitempty"`
}

// Object builds an object schema. Every property named in required must exist.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: "object", Properties: properties, Required: required}
}

// ArrayOf builds an array schema of the named component schema.
func ArrayOf(name string) *Schema {
	return &Schema{Type: "array", Items: SchemaRef(name)}
}

// SchemaRef references a component schema.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// ResponseRef references a component response.
func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

func jsonContent(schemaName string) map[string]*MediaType {
	return map[string]*MediaType{"application/json": {Schema: SchemaRef(schemaName)}}
}

// JSONBody is a required JSON request body of the named schema.
func JSONBody(schemaName string) *RequestBody {
	return &RequestBody{Required: true, Content: jsonContent(schemaName)}
}

// JSONResponse is a JSON response of the named schema.
func JSONResponse(description, schemaName string) *Response {
	return &Response{Description: description, Content: jsonContent(schemaName)}
}

// Responses pairs a 200 response with shared error responses, each keyed by
// the status registered for it in NewComponents.
func Responses(ok *Response, errs ...string) map[int]*Response {
	out := map[int]*Response{200: ok}
	for _, name := range errs {
		out[errorStatus[name]] = ResponseRef(name)
	}
	return out
}

// PathParam is a required path segment of type typ (and optional format).
func PathParam(name, typ, format, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: typ, Format: format},
	}
}

// QueryParam is an optional string query parameter.
func QueryParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}
