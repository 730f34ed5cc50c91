package forwarder

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/models"
)

type fakeNotifier struct {
	calls int32
	err   error
}

func (f *fakeNotifier) Notify(ctx context.Context, inquiry models.Inquiry) error {
	atomic.AddInt32(&f.calls, 1)
	return f.err
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newTestForwarder(sms, email Notifier) *Forwarder {
	return New(business.DefaultInfo(), sms, email, testLogger(), metrics.NewMetrics(), 5*time.Second)
}

func TestAnalyzeInquiry_Urgency(t *testing.T) {
	tests := []struct {
		message string
		urgency models.Urgency
	}{
		{"this is an emergency", models.UrgencyHigh},
		{"need this done asap", models.UrgencyHigh},
		{"hoping to get this done soon", models.UrgencyMedium},
		{"I need help with my field", models.UrgencyMedium},
		{"just wondering about driveways", models.UrgencyLow},
	}

	for _, tt := range tests {
		urgency, _ := AnalyzeInquiry(tt.message)
		assert.Equal(t, tt.urgency, urgency, "message: %s", tt.message)
	}
}

func TestAnalyzeInquiry_ServiceDetection(t *testing.T) {
	tests := []struct {
		message string
		service string
	}{
		{"my gravel driveway needs work", business.ServiceNameGravelDriveway},
		{"need a foundation dug", business.ServiceNameExcavating},
		{"lots of brush on the land", business.ServiceNameBrushHogging},
		{"garden needs tilled", business.ServiceNameRototilling},
		{"hello", ""},
	}

	for _, tt := range tests {
		_, service := AnalyzeInquiry(tt.message)
		assert.Equal(t, tt.service, service, "message: %s", tt.message)
	}
}

func TestForwardInquiry_DispatchesBothChannels(t *testing.T) {
	sms := &fakeNotifier{}
	email := &fakeNotifier{}
	f := newTestForwarder(sms, email)

	result := f.ForwardInquiry(context.Background(), "my driveway needs regraded", nil)

	assert.True(t, result.SMS)
	assert.True(t, result.Email)
	assert.Equal(t, int32(1), atomic.LoadInt32(&sms.calls))
	assert.Equal(t, int32(1), atomic.LoadInt32(&email.calls))
}

func TestForwardInquiry_ChannelFailuresAreIndependent(t *testing.T) {
	sms := &fakeNotifier{err: errors.New("provider down")}
	email := &fakeNotifier{}
	f := newTestForwarder(sms, email)

	result := f.ForwardInquiry(context.Background(), "2 acres of weeds", nil)

	assert.False(t, result.SMS)
	assert.True(t, result.Email, "email must still go out when SMS fails")
}

func TestFormatSMS_TagsUrgency(t *testing.T) {
	inquiry := models.Inquiry{
		CustomerMessage:  "driveway washed out, urgent",
		Timestamp:        time.Now(),
		Urgency:          models.UrgencyHigh,
		EstimatedService: business.ServiceNameGravelDriveway,
	}

	text := FormatSMS(inquiry, business.DefaultInfo())

	assert.Contains(t, text, "[URGENT]")
	assert.Contains(t, text, business.ServiceNameGravelDriveway)
	assert.Contains(t, text, "driveway washed out")
}

func TestFormatEmail_IncludesHistoryAndResponseTime(t *testing.T) {
	inquiry := models.Inquiry{
		CustomerMessage: "need brush hogging",
		Timestamp:       time.Now(),
		ChatHistory:     []string{"Customer: need brush hogging", "AI Assistant: sure"},
		Urgency:         models.UrgencyMedium,
	}

	subject, body := FormatEmail(inquiry, business.DefaultInfo())

	assert.Contains(t, subject, "[PRIORITY]")
	assert.Contains(t, body, "Full Conversation (2 messages)")
	assert.Contains(t, body, "Within 2 hours")
}
