package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	SnapshotsBuilt        prometheus.Counter
	SnapshotDuration      prometheus.Histogram
	CasesReconciled       prometheus.Gauge
	DuplicateCaseKeys     prometheus.Counter
	VerificationsApproved prometheus.Counter
	DocumentRequestsSent  prometheus.Counter
	ParseFailures         prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		SnapshotsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instructhub_snapshots_built_total",
			Help: "Total number of case snapshots rebuilt from source data",
		}),
		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "instructhub_snapshot_duration_seconds",
			Help:    "Time spent rebuilding a case snapshot",
			Buckets: prometheus.DefBuckets,
		}),
		CasesReconciled: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "instructhub_cases_reconciled",
			Help: "Number of cases produced by the most recent reconciliation",
		}),
		DuplicateCaseKeys: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instructhub_duplicate_case_keys_total",
			Help: "Total number of case-key collisions resolved first-seen-wins",
		}),
		VerificationsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instructhub_verifications_approved_total",
			Help: "Total number of identity verifications approved by a reviewer",
		}),
		DocumentRequestsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instructhub_document_requests_sent_total",
			Help: "Total number of additional-document requests sent to clients",
		}),
		ParseFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "instructhub_verification_parse_failures_total",
			Help: "Total number of verification payloads that failed to decode",
		}),
	}
}
