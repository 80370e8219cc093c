// file: metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 业务计数器，挂在默认 Registry 上，由 /metrics 暴露。
var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_sponsorship_submissions_total",
		Help: "Total number of sponsorship submission attempts.",
	}, []string{"result"})

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_status_transitions_total",
		Help: "Total number of status transition attempts.",
	}, []string{"outcome"})
)
