// Package render converts markdown documents to HTML.
package render

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts GitHub-flavored markdown to HTML. Raw HTML embedded in
// the source is omitted from the output. Safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// New creates a Renderer.
func New(logger *slog.Logger) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	return &Renderer{
		md:     md,
		logger: logger.With("system", "render"),
	}
}

// Render returns the HTML form of markdown.
func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Handler returns the HTTP handler for render operations.
func (r *Renderer) Handler() *Handler {
	return NewHandler(r, r.logger)
}
