// Package metrics defines the Prometheus collectors for the API server and
// the outbound Shopify client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests by method, path
	// pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "code"},
	)

	// HTTPRequestDuration observes request latency by method and path
	// pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// ShopifyRequestsTotal counts outbound Admin GraphQL calls by outcome:
	// ok, transport_error, graphql_error or network_error.
	ShopifyRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopify_requests_total",
			Help: "Total number of Shopify Admin GraphQL requests.",
		},
		[]string{"outcome"},
	)
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
