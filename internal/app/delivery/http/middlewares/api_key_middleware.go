package middlewares

import (
	"context"
	"net/http"

	"formgen-service/internal/pkg/constvars"
	"formgen-service/internal/pkg/exceptions"
	"formgen-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// APIKeyAuth guards mutating endpoints. Requests without the configured key
// are rejected; when no key is configured the guard is a no-op so local
// development does not need one.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.InternalConfig.App.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if apiKey != m.InternalConfig.App.APIKey {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextAPIKeyAuthKey, true)

		m.Log.Info("API key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
