package rate_limiter

import (
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"freight/internal/handlers/rest/response"
	"freight/internal/pkg/middlewares/route"
	"freight/pkg/logger"
)

// New общий на весь API лимитер, qps <= 0 снимает ограничение.
func New(qps, burst int) *rate.Limiter {
	if qps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst < 1 {
		burst = qps
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func Middleware(log handlerLogger, qps int, limiter Limiter) func(http.Handler) http.Handler {
	limitHeader := strconv.Itoa(qps)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := route.Template(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, handlerPath).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("X-RateLimit-Limit", limitHeader)
			w.Header().Set("Retry-After", "1")
			response.WriteMessage(w, log, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		})
	}
}
