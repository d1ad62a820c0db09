package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the attendance services.
type Metrics struct {
	RecordOutcomes *prometheus.CounterVec
	Passes         *prometheus.CounterVec
	PassDuration   prometheus.Histogram
	ReportEmails   prometheus.Counter
	JobFailures    *prometheus.CounterVec
}

// New creates and registers all attendance metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		RecordOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attendsync_staged_records_total",
			Help: "Staged punch records reconciled, by outcome",
		}, []string{"outcome"}),
		Passes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attendsync_reconcile_passes_total",
			Help: "Reconciliation passes, by result",
		}, []string{"result"}),
		PassDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "attendsync_reconcile_pass_duration_seconds",
			Help:    "Wall time of one reconciliation pass",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
		ReportEmails: promauto.NewCounter(prometheus.CounterOpts{
			Name: "attendsync_report_emails_sent_total",
			Help: "Exceptional report emails dispatched",
		}),
		JobFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "attendsync_job_failures_total",
			Help: "Background job executions that returned an error, by job",
		}, []string{"job"}),
	}
}
