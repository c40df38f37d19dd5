package completions_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/juice/internal/completions"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const completionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o-mini",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "# Plant Care PRD"}, "finish_reason": "stop"}],
	"usage": {"prompt_tokens": 40, "completion_tokens": 10, "total_tokens": 50}
}`

func fakeUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func newConfig(t *testing.T, baseURL, key string) *completions.Config {
	t.Helper()
	cfg := &completions.Config{APIKey: key, BaseURL: baseURL}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func TestGenerate(t *testing.T) {
	var got chatRequest
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path: got %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer sk-test" {
			t.Errorf("authorization: got %q", auth)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionBody)
	})

	sys := completions.New(newConfig(t, srv.URL, "sk-test"), nil, discard())

	prd, err := sys.Generate(context.Background(), "A plant care assistant")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if prd != "# Plant Care PRD" {
		t.Errorf("prd: got %q", prd)
	}

	if got.Model != "gpt-4o-mini" {
		t.Errorf("model: got %s", got.Model)
	}
	if got.MaxTokens != 2500 {
		t.Errorf("max_tokens: got %d", got.MaxTokens)
	}
	if got.Temperature < 0.69 || got.Temperature > 0.71 {
		t.Errorf("temperature: got %v", got.Temperature)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages: got %d, want 2", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || !strings.Contains(got.Messages[0].Content, "professional product manager") {
		t.Errorf("system message: %+v", got.Messages[0])
	}
	want := `Create a full professional grade PRD for "A plant care assistant", including language requirements, app flow, front end/ backend, and tech stack in one document`
	if got.Messages[1].Content != want {
		t.Errorf("user message: got %q", got.Messages[1].Content)
	}
}

func TestGenerateValidation(t *testing.T) {
	var calls atomic.Int32
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		io.WriteString(w, completionBody)
	})

	t.Run("blank idea", func(t *testing.T) {
		sys := completions.New(newConfig(t, srv.URL, "sk-test"), nil, discard())
		if _, err := sys.Generate(context.Background(), "   "); !errors.Is(err, completions.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		sys := completions.New(newConfig(t, srv.URL, ""), nil, discard())
		if _, err := sys.Generate(context.Background(), "idea"); !errors.Is(err, completions.ErrUpstreamUnavailable) {
			t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
		}
	})

	if n := calls.Load(); n != 0 {
		t.Errorf("upstream contacted %d times", n)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error": {"message": "Rate limit reached", "type": "requests", "code": "rate_limit_exceeded"}}`)
	})

	sys := completions.New(newConfig(t, srv.URL, "sk-test"), nil, discard())

	_, err := sys.Generate(context.Background(), "idea")
	if !errors.Is(err, completions.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}

	var upErr *completions.UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %T", err)
	}
	if upErr.Status != http.StatusTooManyRequests {
		t.Errorf("status: got %d, want 429", upErr.Status)
	}
	if !strings.Contains(upErr.Message, "Rate limit") {
		t.Errorf("message: got %q", upErr.Message)
	}
}

func TestGenerateNoChoices(t *testing.T) {
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id": "x", "object": "chat.completion", "choices": []}`)
	})

	sys := completions.New(newConfig(t, srv.URL, "sk-test"), nil, discard())

	if _, err := sys.Generate(context.Background(), "idea"); !errors.Is(err, completions.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	cfg := newConfig(t, srv.URL, "sk-test")
	cfg.Timeout = "50ms"
	sys := completions.New(cfg, nil, discard())

	start := time.Now()
	_, err := sys.Generate(context.Background(), "idea")
	if !errors.Is(err, completions.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("timeout not applied")
	}
}

func TestGenerateConcurrencyBound(t *testing.T) {
	var inflight, peak atomic.Int32
	srv := fakeUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		n := inflight.Add(1)
		defer inflight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completionBody)
	})

	cfg := newConfig(t, srv.URL, "sk-test")
	cfg.MaxConcurrent = 2
	sys := completions.New(cfg, nil, discard())

	errs := make(chan error, 6)
	for range 6 {
		go func() {
			_, err := sys.Generate(context.Background(), "idea")
			errs <- err
		}()
	}
	for range 6 {
		if err := <-errs; err != nil {
			t.Errorf("Generate() error = %v", err)
		}
	}

	if p := peak.Load(); p > 2 {
		t.Errorf("peak concurrency: got %d, want <= 2", p)
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_COMPLETION_MODEL", "gpt-4o")
	t.Setenv("TEST_COMPLETION_MAX_TOKENS", "1000")

	cfg := &completions.Config{}
	err := cfg.Finalize(&completions.Env{
		Model:     "TEST_COMPLETION_MODEL",
		MaxTokens: "TEST_COMPLETION_MAX_TOKENS",
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Model != "gpt-4o" {
		t.Errorf("model: got %s", cfg.Model)
	}
	if cfg.MaxTokens != 1000 {
		t.Errorf("max_tokens: got %d", cfg.MaxTokens)
	}
	if cfg.TimeoutDuration() != 60*time.Second {
		t.Errorf("timeout: got %s", cfg.TimeoutDuration())
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("max_concurrent: got %d", cfg.MaxConcurrent)
	}

	bad := &completions.Config{Timeout: "soon"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected error for invalid timeout")
	}
}
