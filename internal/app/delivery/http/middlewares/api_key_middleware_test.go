package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"formgen-service/internal/app/config"
	"formgen-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares(apiKey string) *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{APIKey: apiKey},
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("passes through when no key is configured", func(t *testing.T) {
		m := newTestMiddlewares("")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/surveys/convert", nil)

		m.APIKeyAuth(okHandler()).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("accepts the configured key", func(t *testing.T) {
		m := newTestMiddlewares("secret-key")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/surveys/convert", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "secret-key")

		m.APIKeyAuth(okHandler()).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		m := newTestMiddlewares("secret-key")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/surveys/convert", nil)
		request.Header.Set(constvars.HeaderXAPIKey, "wrong-key")

		m.APIKeyAuth(okHandler()).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejects a missing key", func(t *testing.T) {
		m := newTestMiddlewares("secret-key")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/surveys/convert", nil)

		m.APIKeyAuth(okHandler()).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when none is supplied", func(t *testing.T) {
		m := newTestMiddlewares("")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/surveys/abc", nil)

		var seenRequestID interface{}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID = r.Context().Value(constvars.ContextRequestIDKey)
			w.WriteHeader(http.StatusOK)
		})
		m.RequestIDMiddleware(handler).ServeHTTP(recorder, request)

		assert.NotEmpty(t, seenRequestID)
		assert.NotEmpty(t, recorder.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the id the client supplied", func(t *testing.T) {
		m := newTestMiddlewares("")
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/surveys/abc", nil)
		request.Header.Set(constvars.HeaderXRequestID, "client-id-1")

		var seenRequestID interface{}
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID = r.Context().Value(constvars.ContextRequestIDKey)
			w.WriteHeader(http.StatusOK)
		})
		m.RequestIDMiddleware(handler).ServeHTTP(recorder, request)

		assert.Equal(t, "client-id-1", seenRequestID)
		assert.Equal(t, "client-id-1", recorder.Header().Get(constvars.HeaderXRequestID))
	})
}
