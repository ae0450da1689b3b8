package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CourseAttachmentDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atcprep_course_attachment_degraded_total",
			Help: "Course attachments truncated, dropped or discarded as corrupted",
		},
		[]string{"reason"},
	)

	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atcprep_submissions_total",
			Help: "Persisted submissions by kind and trigger",
		},
		[]string{"kind", "trigger"},
	)

	SubmissionScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "atcprep_submission_score_percent",
			Help:    "Score of persisted submissions as a percentage",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
		[]string{"kind"},
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "atcprep_active_sessions",
			Help: "Test and exercise sessions currently in progress",
		},
	)

	UploadsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "atcprep_uploads_rejected_total",
			Help: "Uploads rejected before storage",
		},
		[]string{"reason"},
	)
)
