package prompts

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/JaimeStill/juice/pkg/storage"
)

//go:embed data/prompts.json
var defaultCorpus []byte

type document struct {
	Prompts []string `json:"prompts"`
}

// Parse decodes a {"prompts": [...]} document. Blank entries are dropped.
func Parse(r io.Reader) (*Corpus, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCorpus, err)
	}

	prompts := make([]string, 0, len(doc.Prompts))
	for _, p := range doc.Prompts {
		if p = strings.TrimSpace(p); p != "" {
			prompts = append(prompts, p)
		}
	}

	return NewCorpus(prompts), nil
}

// Load reads the corpus from the first configured source: the blob at
// cfg.BlobKey, the file at cfg.Path, or the embedded default. A configured
// source that cannot be read is an error, as is a blob key with a nil store.
func Load(ctx context.Context, cfg *Config, store storage.System, logger *slog.Logger) (*Corpus, error) {
	var (
		source string
		r      io.Reader
	)

	switch {
	case cfg.BlobKey != "" && store == nil:
		return nil, fmt.Errorf("%w: %s", ErrNoStorage, cfg.BlobKey)

	case cfg.BlobKey != "":
		rc, err := store.Download(ctx, cfg.BlobKey)
		if err != nil {
			return nil, fmt.Errorf("download corpus %s: %w", cfg.BlobKey, err)
		}
		defer rc.Close()
		source, r = "blob:"+cfg.BlobKey, rc

	case cfg.Path != "":
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open corpus: %w", err)
		}
		defer f.Close()
		source, r = "file:"+cfg.Path, f

	default:
		source, r = "embedded", bytes.NewReader(defaultCorpus)
	}

	corpus, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("load corpus from %s: %w", source, err)
	}

	logger.Info("prompt corpus loaded", "source", source, "total", corpus.Len())
	return corpus, nil
}
