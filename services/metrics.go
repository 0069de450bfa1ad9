package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Lead submission metrics
	LeadSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chimney_lead_submissions_total",
		Help: "Lead submissions sent to the booking service, by outcome",
	}, []string{"outcome"})

	LeadSubmissionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chimney_lead_submission_duration_seconds",
		Help:    "Round trip time of lead submissions",
		Buckets: prometheus.DefBuckets,
	})

	LeadSubmissionsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chimney_lead_submissions_rejected_total",
		Help: "Submissions refused before reaching the booking service",
	}, []string{"reason"})
)

// ObserveSubmission records a settled submission
func ObserveSubmission(sub Submission) {
	LeadSubmissions.WithLabelValues(string(sub.Outcome.Kind)).Inc()
	LeadSubmissionDuration.Observe(sub.Duration.Seconds())
}
