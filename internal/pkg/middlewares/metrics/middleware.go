package metrics

import (
	"net/http"
	"strconv"
	"time"

	"freight/internal/pkg/middlewares/route"
	"freight/pkg/logger"
)

// Middleware метки берутся из шаблона маршрута, чтобы идентификаторы не раздували кардинальность.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			status := strconv.Itoa(rw.statusCode)
			handlerPath := route.Template(r)

			HTTPRequestDuration.WithLabelValues(r.Method, handlerPath, status).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, handlerPath, status).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", handlerPath),
				logger.NewField("status", status),
				logger.NewField("duration", duration.String()),
			).Info("HTTP request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
