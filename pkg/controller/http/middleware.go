package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nexboard/nexboard/pkg/domain/model/auth"
	"github.com/nexboard/nexboard/pkg/usecase"
	"github.com/nexboard/nexboard/pkg/utils/logging"
)

// authMiddleware resolves the authenticated principal for protected routes
// and embeds it in the request context
func authMiddleware(authUC usecase.AuthUseCaseInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Without a configured authenticator every request runs as the
			// anonymous user (development only)
			if authUC == nil {
				ctx := auth.ContextWithToken(r.Context(), auth.NewAnonymousUser(""))
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token, err := authUC.Authenticate(r.Context(), bearerToken(r))
			if err != nil {
				respondError(r.Context(), w, err)
				return
			}

			ctx := auth.ContextWithToken(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the credential from the Authorization header; empty
// when absent or malformed
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// accessLogger logs one line per request with status and latency
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		logging.From(r.Context()).Info("access",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
