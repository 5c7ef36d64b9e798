package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mint outcomes
const (
	MintOutcomeCompleted  = "completed"
	MintOutcomeReconciled = "reconciled"
	MintOutcomeRetried    = "retried"
	MintOutcomeFailed     = "failed"
	MintOutcomeSkipped    = "skipped"
)

// Alert ingest results
const (
	AlertResultNew       = "new"
	AlertResultDuplicate = "duplicate"
	AlertResultInvalid   = "invalid"
)

var (
	// MintRequests counts processed mint requests by outcome
	MintRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vf_pipeline",
		Subsystem: "minting",
		Name:      "requests_total",
		Help:      "Processed mint requests by outcome",
	}, []string{"outcome"})

	// MintConfirmSeconds observes the submit-to-confirmation latency
	MintConfirmSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "vf_pipeline",
		Subsystem: "minting",
		Name:      "confirm_seconds",
		Help:      "Mint transaction submit-to-confirmation latency",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	// AlertsIngested counts processed similarity alerts by result
	AlertsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "vf_pipeline",
		Subsystem: "alerting",
		Name:      "alerts_total",
		Help:      "Processed similarity alerts by result",
	}, []string{"result"})

	// DigestsSent counts dispatched digest emails
	DigestsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vf_pipeline",
		Subsystem: "notifier",
		Name:      "digests_sent_total",
		Help:      "Dispatched digest emails",
	})

	// DigestFailures counts digests that failed after retries
	DigestFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "vf_pipeline",
		Subsystem: "notifier",
		Name:      "digest_failures_total",
		Help:      "Digest emails that failed after retries",
	})
)
