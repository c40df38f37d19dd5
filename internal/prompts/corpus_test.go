package prompts_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/juice/internal/prompts"
)

func TestPickRandom(t *testing.T) {
	src := []string{"alpha", "beta", "gamma"}
	c := prompts.NewCorpus(src)

	seen := make(map[int]bool)
	for range 300 {
		pick, err := c.PickRandom()
		if err != nil {
			t.Fatalf("PickRandom() error = %v", err)
		}
		if pick.Total != 3 {
			t.Fatalf("total: got %d, want 3", pick.Total)
		}
		if pick.Index < 0 || pick.Index >= pick.Total {
			t.Fatalf("index out of range: %d", pick.Index)
		}
		if pick.Prompt != src[pick.Index] {
			t.Fatalf("prompt %q does not match index %d", pick.Prompt, pick.Index)
		}
		seen[pick.Index] = true
	}

	if len(seen) != 3 {
		t.Errorf("expected every index to be picked, saw %v", seen)
	}
}

func TestPickRandomEmpty(t *testing.T) {
	_, err := prompts.NewCorpus(nil).PickRandom()
	if !errors.Is(err, prompts.ErrEmptyCorpus) {
		t.Errorf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestCorpusCopiesInput(t *testing.T) {
	src := []string{"alpha"}
	c := prompts.NewCorpus(src)
	src[0] = "mutated"

	if got, _ := c.At(0); got != "alpha" {
		t.Errorf("corpus shares caller slice: got %q", got)
	}
}

func TestAt(t *testing.T) {
	c := prompts.NewCorpus([]string{"alpha", "beta"})

	tests := []struct {
		i      int
		want   string
		wantOK bool
	}{
		{0, "alpha", true},
		{1, "beta", true},
		{2, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		got, ok := c.At(tt.i)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("At(%d) = (%q, %v), want (%q, %v)", tt.i, got, ok, tt.want, tt.wantOK)
		}
	}
}
