// Package metrics holds prometheus collectors for list and login events.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "superlists"

var (
	ListsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lists_created_total",
		Help:      "Lists created, by owner kind (anonymous or user).",
	}, []string{"owner"})

	ItemsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_added_total",
		Help:      "Items stored, including first items of new lists.",
	})

	ValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Rejected submissions by validation kind.",
	}, []string{"kind"})

	Shares = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_shares_total",
		Help:      "Share requests by outcome (created or existing).",
	}, []string{"result"})

	LoginEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_emails_total",
		Help:      "Login email requests by outcome.",
	}, []string{"result"})

	Logins = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Token redemptions by outcome.",
	}, []string{"result"})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})
)

// OwnerLabel returns the lists_created_total label for an owner.
func OwnerLabel(owned bool) string {
	if owned {
		return "user"
	}
	return "anonymous"
}
