package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	pageRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_requests_total",
			Help: "Total page requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)
	registerSubmits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "register_submissions_total",
			Help: "Registration submissions by outcome",
		},
		[]string{"outcome"},
	)
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(pageRequests)
	prometheus.MustRegister(registerSubmits)
	prometheus.MustRegister(RLRequests)
	prometheus.MustRegister(RLBlocked)
}

// Metrics counts every handled request by route pattern and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		pageRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// CountRegisterSubmit records a registration outcome: "ok", "invalid" or
// "rejected".
func CountRegisterSubmit(outcome string) {
	registerSubmits.WithLabelValues(outcome).Inc()
}
