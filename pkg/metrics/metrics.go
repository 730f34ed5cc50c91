package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Registry *prometheus.Registry

	InquiriesClassified *prometheus.CounterVec
	ForwardsDispatched  *prometheus.CounterVec
	ForwardsSuppressed  prometheus.Counter
	NotifierDuration    *prometheus.HistogramVec
	NotifierFailures    *prometheus.CounterVec
	ContactSubmissions  *prometheus.CounterVec
	EmailSendDuration   prometheus.Histogram
	RateLimitRejections prometheus.Counter
	ActiveChatSessions  prometheus.Gauge
}

// NewMetrics registers all series on a fresh registry so tests can
// construct independent instances.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		Registry: registry,
		InquiriesClassified: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "inquiries_classified_total",
			Help: "Total chat messages classified, by rule category",
		}, []string{"category"}),
		ForwardsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "forwards_dispatched_total",
			Help: "Total inquiries forwarded to the owner, by urgency",
		}, []string{"urgency"}),
		ForwardsSuppressed: factory.NewCounter(prometheus.CounterOpts{
			Name: "forwards_suppressed_total",
			Help: "Total forward-eligible inquiries suppressed by the cooldown gate",
		}),
		NotifierDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "notifier_dispatch_duration_seconds",
			Help:    "Time taken to dispatch owner notifications",
			Buckets: prometheus.DefBuckets,
		}, []string{"channel"}),
		NotifierFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "notifier_failures_total",
			Help: "Total failed owner notification attempts, by channel",
		}, []string{"channel"}),
		ContactSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Total quote-request submissions, by outcome",
		}, []string{"outcome"}),
		EmailSendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "email_send_duration_seconds",
			Help:    "Time taken to send quote emails",
			Buckets: prometheus.DefBuckets,
		}),
		RateLimitRejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Total contact submissions rejected by the rate limiter",
		}),
		ActiveChatSessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "active_chat_sessions",
			Help: "Current number of open chat sessions",
		}),
	}
}

// Contact submission outcomes.
const (
	OutcomeAccepted    = "accepted"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
	OutcomeSpam        = "spam"
	OutcomeWarning     = "warning"
	OutcomeError       = "error"
)
