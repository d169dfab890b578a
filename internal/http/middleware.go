package httpapp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/weatherrecap/weatherrecap/internal/logger"
)

// RequestLogger puts a request-scoped logger into the context and logs
// each request once it completes.
func RequestLogger(base *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			log := base.With(
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
			)
			ctx := logger.IntoContext(r.Context(), log)

			defer func() {
				log.Info("Request handled",
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(ctx))
		})
	}
}
