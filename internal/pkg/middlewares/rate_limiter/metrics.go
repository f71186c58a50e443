package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "freight_rate_limit_exceeded_total",
		Help: "Requests rejected by the API rate limiter",
	},
	[]string{"method", "route"},
)
