package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	id "pbmledger/pkg/domain"
	"pbmledger/pkg/requestcontext"
)

type stubValidator struct {
	claims *TokenClaims
	err    error
}

func (s stubValidator) ValidateToken(string) (*TokenClaims, error) {
	return s.claims, s.err
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newHandler := func(validator TokenValidator) (http.Handler, *TokenClaims) {
		seen := &TokenClaims{}
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen.Caller = requestcontext.Caller(r.Context())
			seen.Owner = requestcontext.IsOwner(r.Context())
			w.WriteHeader(http.StatusOK)
		})
		return RequireAuth(validator, logger)(next), seen
	}

	t.Run("injects caller and owner flag", func(t *testing.T) {
		handler, seen := newHandler(stubValidator{
			claims: &TokenClaims{Caller: "pbm-owner", Owner: true},
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, id.Identity("pbm-owner"), seen.Caller)
		assert.True(t, seen.Owner)
	})

	t.Run("missing header", func(t *testing.T) {
		handler, _ := newHandler(stubValidator{})

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer scheme", func(t *testing.T) {
		handler, _ := newHandler(stubValidator{})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		handler, _ := newHandler(stubValidator{err: errors.New("expired")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
