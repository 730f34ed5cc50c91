// Package forwarder relays customer inquiries from the chat widget to
// the business owner over SMS and email channels.
package forwarder

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/models"
)

// Notifier delivers one inquiry over a single channel.
type Notifier interface {
	Notify(ctx context.Context, inquiry models.Inquiry) error
}

type Forwarder struct {
	info    business.Info
	sms     Notifier
	email   Notifier
	logger  *logrus.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

func New(info business.Info, sms, email Notifier, logger *logrus.Logger, m *metrics.Metrics, timeout time.Duration) *Forwarder {
	return &Forwarder{
		info:    info,
		sms:     sms,
		email:   email,
		logger:  logger,
		metrics: m,
		timeout: timeout,
	}
}

// AnalyzeInquiry derives urgency and a likely service from the raw
// customer message.
func AnalyzeInquiry(message string) (models.Urgency, string) {
	lowered := strings.ToLower(message)

	urgency := models.UrgencyLow
	if containsAny(lowered, "emergency", "urgent", "asap") {
		urgency = models.UrgencyHigh
	} else if containsAny(lowered, "soon", "quickly", "need help") {
		urgency = models.UrgencyMedium
	}

	var service string
	switch {
	case containsAny(lowered, "driveway", "gravel"):
		service = business.ServiceNameGravelDriveway
	case containsAny(lowered, "excavat", "foundation", "dig"):
		service = business.ServiceNameExcavating
	case containsAny(lowered, "brush", "clearing", "land"):
		service = business.ServiceNameBrushHogging
	case containsAny(lowered, "rototill", "garden", "soil"):
		service = business.ServiceNameRototilling
	}

	return urgency, service
}

// ForwardInquiry dispatches the inquiry to both channels concurrently
// and waits for both to settle. Each channel is best-effort: a failure
// on one never cancels the other, and failures are logged, not
// returned — the user-visible contract is that the message was
// received.
func (f *Forwarder) ForwardInquiry(ctx context.Context, customerMessage string, chatHistory []string) models.ForwardResult {
	urgency, service := AnalyzeInquiry(customerMessage)

	inquiry := models.Inquiry{
		CustomerMessage:  customerMessage,
		Timestamp:        time.Now(),
		ChatHistory:      chatHistory,
		Urgency:          urgency,
		EstimatedService: service,
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var result models.ForwardResult
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		result.SMS = f.dispatch(ctx, "sms", f.sms, inquiry)
	}()
	go func() {
		defer wg.Done()
		result.Email = f.dispatch(ctx, "email", f.email, inquiry)
	}()

	wg.Wait()

	f.logger.WithFields(logrus.Fields{
		"urgency": inquiry.Urgency,
		"service": inquiry.EstimatedService,
		"sms":     result.SMS,
		"email":   result.Email,
	}).Info("Forwarded customer inquiry")

	if f.metrics != nil {
		f.metrics.ForwardsDispatched.WithLabelValues(string(urgency)).Inc()
	}

	return result
}

func (f *Forwarder) dispatch(ctx context.Context, channel string, n Notifier, inquiry models.Inquiry) bool {
	start := time.Now()
	err := n.Notify(ctx, inquiry)
	if f.metrics != nil {
		f.metrics.NotifierDuration.WithLabelValues(channel).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if f.metrics != nil {
			f.metrics.NotifierFailures.WithLabelValues(channel).Inc()
		}
		f.logger.WithError(err).WithField("channel", channel).Warn("Owner notification failed")
		return false
	}
	return true
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
