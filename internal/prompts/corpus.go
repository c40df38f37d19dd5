// Package prompts serves random creative prompts from an immutable corpus.
package prompts

import (
	"math/rand/v2"
	"slices"
)

// Corpus is an ordered, read-only list of prompts. A prompt is identified
// by its index. Safe for concurrent use.
type Corpus struct {
	prompts []string
}

// Pick is a single randomly selected prompt.
type Pick struct {
	Prompt string `json:"prompt"`
	Index  int    `json:"index"`
	Total  int    `json:"total"`
}

// NewCorpus creates a Corpus holding a copy of prompts.
func NewCorpus(prompts []string) *Corpus {
	return &Corpus{prompts: slices.Clone(prompts)}
}

// Len returns the number of prompts.
func (c *Corpus) Len() int {
	return len(c.prompts)
}

// At returns the prompt at index i and whether i is in range.
func (c *Corpus) At(i int) (string, bool) {
	if i < 0 || i >= len(c.prompts) {
		return "", false
	}
	return c.prompts[i], true
}

// PickRandom selects a prompt uniformly at random.
func (c *Corpus) PickRandom() (Pick, error) {
	n := len(c.prompts)
	if n == 0 {
		return Pick{}, ErrEmptyCorpus
	}

	i := rand.IntN(n)
	return Pick{Prompt: c.prompts[i], Index: i, Total: n}, nil
}
