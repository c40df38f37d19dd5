// Package auth verifies OIDC bearer tokens and exposes the token subject to handlers.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/JaimeStill/juice/pkg/handlers"
)

var (
	// ErrMissingToken indicates the request carried no bearer token.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken indicates the bearer token failed verification.
	ErrInvalidToken = errors.New("invalid bearer token")
)

type subjectKey struct{}

// Authenticator verifies bearer tokens against an issuer's signing keys.
type Authenticator struct {
	verifier *oidc.IDTokenVerifier
	logger   *slog.Logger
}

// New creates an Authenticator for cfg.Issuer. When cfg.JWKSURL is set the
// signing keys are fetched from it directly; otherwise the issuer's discovery
// document is read once here to locate them. Keys are cached and refreshed on
// unknown key IDs.
func New(ctx context.Context, cfg *Config, logger *slog.Logger) (*Authenticator, error) {
	if cfg.JWKSURL != "" {
		return NewWithKeySet(cfg, oidc.NewRemoteKeySet(ctx, cfg.JWKSURL), logger), nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery for %s: %w", cfg.Issuer, err)
	}

	return newAuthenticator(provider.Verifier(verifierConfig(cfg)), logger), nil
}

// NewWithKeySet creates an Authenticator over an explicit key set.
func NewWithKeySet(cfg *Config, keys oidc.KeySet, logger *slog.Logger) *Authenticator {
	return newAuthenticator(oidc.NewVerifier(cfg.Issuer, keys, verifierConfig(cfg)), logger)
}

func newAuthenticator(verifier *oidc.IDTokenVerifier, logger *slog.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		logger:   logger.With("system", "auth"),
	}
}

func verifierConfig(cfg *Config) *oidc.Config {
	return &oidc.Config{
		ClientID:          cfg.Audience,
		SkipClientIDCheck: cfg.Audience == "",
	}
}

// Verify validates a raw token and returns its subject.
func (a *Authenticator) Verify(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", ErrMissingToken
	}

	token, err := a.verifier.Verify(ctx, raw)
	if err != nil {
		return "", errors.Join(ErrInvalidToken, err)
	}
	if token.Subject == "" {
		return "", ErrInvalidToken
	}

	return token.Subject, nil
}

// Middleware rejects requests without a valid bearer token with 401 and
// stores the verified subject in the request context.
func (a *Authenticator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := a.Verify(r.Context(), bearerToken(r))
			if err != nil {
				a.logger.Warn("token rejected", "error", err, "uri", r.URL.RequestURI())
				handlers.RespondError(w, r, a.logger, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
		})
	}
}

// WithSubject returns a copy of ctx carrying subject.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the verified token subject, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok && s != ""
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
