package completions_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/juice/internal/completions"
	"github.com/JaimeStill/juice/pkg/routes"
)

type mockSystem struct {
	generate func(ctx context.Context, idea string) (string, error)
}

func (m *mockSystem) Handler() *completions.Handler { return nil }

func (m *mockSystem) Generate(ctx context.Context, idea string) (string, error) {
	return m.generate(ctx, idea)
}

type upperRenderer struct{}

func (upperRenderer) Render(markdown string) (string, error) {
	return "<p>" + strings.ToUpper(markdown) + "</p>", nil
}

func serve(sys completions.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, completions.NewHandler(sys, upperRenderer{}, discard()).Routes())
	return mux
}

func post(mux *http.ServeMux, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return body
}

func TestGenerateHandler(t *testing.T) {
	sys := &mockSystem{generate: func(ctx context.Context, idea string) (string, error) {
		return "prd for " + idea, nil
	}}
	mux := serve(sys)

	t.Run("markdown", func(t *testing.T) {
		rec := post(mux, "/generate-prd", `{"idea": "a todo app"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		body := decodeBody(t, rec)
		if body["idea"] != "a todo app" || body["prd"] != "prd for a todo app" {
			t.Errorf("unexpected body: %v", body)
		}
		if _, ok := body["prd_html"]; ok {
			t.Error("prd_html should be omitted")
		}
	})

	t.Run("html", func(t *testing.T) {
		rec := post(mux, "/generate-prd?format=html", `{"idea": "a todo app"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d", rec.Code)
		}
		if got := decodeBody(t, rec)["prd_html"]; got != "<p>PRD FOR A TODO APP</p>" {
			t.Errorf("prd_html: got %v", got)
		}
	})
}

func TestGenerateHandlerErrors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantError   string
		wantMessage bool
	}{
		{"missing idea", `{}`, nil, http.StatusBadRequest, "No idea provided", false},
		{"blank idea", `{"idea": "  "}`, nil, http.StatusBadRequest, "No idea provided", false},
		{"malformed body", `{"idea":`, nil, http.StatusBadRequest, "No idea provided", false},
		{"missing key", `{"idea": "x"}`, completions.ErrUpstreamUnavailable, http.StatusInternalServerError, "OpenAI API key not configured", false},
		{"upstream", `{"idea": "x"}`, &completions.UpstreamError{Status: 500, Message: "boom"}, http.StatusInternalServerError, "Failed to generate PRD", true},
		{"bare failure", `{"idea": "x"}`, errors.New(""), http.StatusInternalServerError, "Failed to generate PRD", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := &mockSystem{generate: func(ctx context.Context, idea string) (string, error) {
				if tt.err == nil {
					t.Fatal("upstream must not be called")
				}
				return "", tt.err
			}}

			rec := post(serve(sys), "/generate-prd", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}

			body := decodeBody(t, rec)
			if body["error"] != tt.wantError {
				t.Errorf("error: got %v, want %s", body["error"], tt.wantError)
			}
			if _, ok := body["message"]; ok != tt.wantMessage {
				t.Errorf("message present = %v, want %v (%v)", ok, tt.wantMessage, body["message"])
			}
		})
	}

	t.Run("empty failure text falls back", func(t *testing.T) {
		sys := &mockSystem{generate: func(ctx context.Context, idea string) (string, error) {
			return "", errors.New("")
		}}
		body := decodeBody(t, post(serve(sys), "/generate-prd", `{"idea": "x"}`))
		if body["message"] != "Unknown error" {
			t.Errorf("message: got %v", body["message"])
		}
	})
}
