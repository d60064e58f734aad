// Package metrics exposes the catalog's Prometheus collectors. The
// consistency-gap counter is the important one: every multi-step
// back-reference write that partially completes increments it, so orphaned
// references are at least visible even though they are not repaired.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConsistencyGaps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_consistency_gaps_total",
		Help: "Back-reference maintenance sequences that partially completed, by entity and operation.",
	}, []string{"entity", "op"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_http_requests_total",
		Help: "HTTP requests served, by method, path and status.",
	}, []string{"method", "path", "status"})
)
