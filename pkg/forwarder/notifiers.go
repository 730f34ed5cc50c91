package forwarder

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/models"
)

// LogSMSNotifier stands in for a real SMS provider (Twilio, SNS). It
// formats the message exactly as the provider integration would and
// logs it instead of sending.
type LogSMSNotifier struct {
	Info   business.Info
	Logger *logrus.Logger
}

func (n *LogSMSNotifier) Notify(ctx context.Context, inquiry models.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.Logger.WithFields(logrus.Fields{
		"to":      n.Info.Phone,
		"urgency": inquiry.Urgency,
		"message": FormatSMS(inquiry, n.Info),
	}).Info("SMS notification (stub)")
	return nil
}

// LogEmailNotifier stands in for a transactional-email integration on
// the chat forwarding path.
type LogEmailNotifier struct {
	Info   business.Info
	Logger *logrus.Logger
}

func (n *LogEmailNotifier) Notify(ctx context.Context, inquiry models.Inquiry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	subject, _ := FormatEmail(inquiry, n.Info)
	n.Logger.WithFields(logrus.Fields{
		"to":      n.Info.Email,
		"subject": subject,
		"urgency": inquiry.Urgency,
		"service": inquiry.EstimatedService,
	}).Info("Email notification (stub)")
	return nil
}

// FormatSMS renders the short-message form of an inquiry.
func FormatSMS(inquiry models.Inquiry, info business.Info) string {
	prefix := map[models.Urgency]string{
		models.UrgencyHigh:   "[URGENT] ",
		models.UrgencyMedium: "[PRIORITY] ",
	}[inquiry.Urgency]

	service := ""
	if inquiry.EstimatedService != "" {
		service = fmt.Sprintf(" (%s)", inquiry.EstimatedService)
	}

	return fmt.Sprintf("%s%s Website Inquiry%s:\n\n%q\n\nTime: %s\n\nReply quickly to maintain excellent customer service!",
		prefix, info.Name, service, inquiry.CustomerMessage,
		inquiry.Timestamp.Format("Jan 2, 2006 3:04 PM"))
}

// FormatEmail renders the subject and HTML body of an inquiry
// notification email.
func FormatEmail(inquiry models.Inquiry, info business.Info) (subject, body string) {
	prefix := map[models.Urgency]string{
		models.UrgencyHigh:   "[URGENT] ",
		models.UrgencyMedium: "[PRIORITY] ",
	}[inquiry.Urgency]

	service := ""
	if inquiry.EstimatedService != "" {
		service = " - " + inquiry.EstimatedService
	}
	subject = fmt.Sprintf("%s%s Website Inquiry%s", prefix, info.Name, service)

	responseTime := map[models.Urgency]string{
		models.UrgencyHigh:   "Within 30 minutes",
		models.UrgencyMedium: "Within 2 hours",
		models.UrgencyLow:    "Within 4 hours",
	}[inquiry.Urgency]

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s - New Customer Inquiry</h2>\n", info.Name)
	fmt.Fprintf(&b, "<p><strong>Urgency:</strong> %s</p>\n", strings.ToUpper(string(inquiry.Urgency)))
	if inquiry.EstimatedService != "" {
		fmt.Fprintf(&b, "<p><strong>Estimated Service:</strong> %s</p>\n", inquiry.EstimatedService)
	}
	fmt.Fprintf(&b, "<blockquote>%s</blockquote>\n", inquiry.CustomerMessage)
	fmt.Fprintf(&b, "<p><strong>Time Received:</strong> %s</p>\n", inquiry.Timestamp.Format("Jan 2, 2006 3:04 PM"))
	if len(inquiry.ChatHistory) > 1 {
		fmt.Fprintf(&b, "<h4>Full Conversation (%d messages)</h4>\n", len(inquiry.ChatHistory))
		for _, line := range inquiry.ChatHistory {
			fmt.Fprintf(&b, "<p>%s</p>\n", line)
		}
	}
	fmt.Fprintf(&b, "<p><strong>Recommended Response Time:</strong> %s</p>\n", responseTime)

	return subject, b.String()
}
