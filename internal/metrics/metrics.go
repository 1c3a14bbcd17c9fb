// Package metrics declares the bot's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reportbot"

var (
	UpdatesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "updates_handled_total",
		Help:      "Telegram updates processed, by kind and outcome.",
	}, []string{"kind", "status"})

	ReportsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_submitted_total",
		Help:      "Daily reports stored, by whether the user had tasks.",
	}, []string{"has_tasks"})

	NotificationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Scheduled messages sent to users and admins, by job and outcome.",
	}, []string{"job", "status"})

	JobRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Scheduled job executions, by job and outcome.",
	}, []string{"job", "status"})

	JobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of scheduled job executions.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 12),
	}, []string{"job"})

	WeeklySummaries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "weekly_summaries_total",
		Help:      "Weekly summaries generated, by source (ai or fallback).",
	}, []string{"source"})

	SendRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "send_retries_total",
		Help:      "Outbound Telegram requests retried after a transient error.",
	})
)

// Status labels.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusSkipped = "skipped"
)
