package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PropertyOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homehaven", Name: "property_operations_total", Help: "Number of property operations by op and outcome."},
		[]string{"op", "outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homehaven", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "homehaven", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(PropertyOps)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
