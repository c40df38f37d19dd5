package prompts

import "log/slog"

// System defines the public contract for prompt domain operations.
type System interface {
	Handler() *Handler

	// Random returns a uniformly selected prompt from the corpus.
	Random() (Pick, error)
}

type store struct {
	corpus *Corpus
	logger *slog.Logger
}

// New creates a prompt System serving from corpus.
func New(corpus *Corpus, logger *slog.Logger) System {
	return &store{
		corpus: corpus,
		logger: logger.With("system", "prompts"),
	}
}

func (s *store) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *store) Random() (Pick, error) {
	return s.corpus.PickRandom()
}
