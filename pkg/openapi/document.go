package openapi

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Version is the OpenAPI release every Document declares.
const Version = "3.1.0"

// Document is an OpenAPI document for one mounted API module.
type Document struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// New creates a Document titled from cfg, stamped with the service version.
// A non-empty basePath is recorded as the single server URL so paths can be
// declared relative to the module.
func New(cfg *Config, version, basePath string) *Document {
	doc := &Document{
		OpenAPI: Version,
		Info: &Info{
			Title:       cfg.Title,
			Description: cfg.Description,
			Version:     version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
	if basePath != "" {
		doc.Servers = []*Server{{URL: basePath}}
	}
	return doc
}

// Path returns the item for pattern, adding an empty one when absent.
func (d *Document) Path(pattern string) *PathItem {
	item, ok := d.Paths[pattern]
	if !ok {
		item = &PathItem{}
		d.Paths[pattern] = item
	}
	return item
}

// Bytes serializes the document as indented JSON.
func (d *Document) Bytes() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Handler serves pre-serialized document bytes.
func Handler(data []byte) http.HandlerFunc {
	length := strconv.Itoa(len(data))
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Content-Length", length)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}
