package graceful_shutdown

import (
	"net/http"
	"sync/atomic"

	"freight/internal/handlers/rest/response"
	"freight/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware после начала остановки новые запросы получают 503, начатые дорабатывают.
func Middleware(log errorLogger, isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Connection", "close")
				response.WriteMessage(w, log, http.StatusServiceUnavailable, "service is shutting down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
