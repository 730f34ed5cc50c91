// Package email delivers quote-request notifications through the
// Resend transactional email API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// Sender delivers one quote request to the business owner.
type Sender interface {
	SendQuoteEmail(ctx context.Context, data models.QuoteRequest) models.EmailResult
}

type ResendConfig struct {
	APIKey  string
	From    string
	To      string
	ReplyTo string
}

type ResendSender struct {
	config ResendConfig
	client *http.Client
	logger *logrus.Logger
}

func NewResendSender(config ResendConfig, logger *logrus.Logger) *ResendSender {
	return &ResendSender{
		config: config,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type resendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

type resendResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// SendQuoteEmail posts the formatted quote request to Resend. Failures
// are reported in the result, never panicked or raised to the caller's
// user: the contact endpoint downgrades them to a warning.
func (s *ResendSender) SendQuoteEmail(ctx context.Context, data models.QuoteRequest) models.EmailResult {
	if s.config.APIKey == "" {
		s.logger.Warn("Email send skipped: Resend API key not configured")
		return models.EmailResult{Success: false, Error: "email service not configured"}
	}

	replyTo := s.config.ReplyTo
	if data.Email != "" {
		replyTo = data.Email
	}

	payload := resendRequest{
		From:    s.config.From,
		To:      s.config.To,
		ReplyTo: replyTo,
		Subject: Subject(data),
		HTML:    FormatHTML(data),
		Text:    FormatText(data),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.EmailResult{Success: false, Error: fmt.Sprintf("encode email: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return models.EmailResult{Success: false, Error: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithError(err).Error("Email send failed")
		return models.EmailResult{Success: false, Error: "email service error"}
	}
	defer resp.Body.Close()

	var result resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.WithError(err).Error("Email response decode failed")
		return models.EmailResult{Success: false, Error: "email service error"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"error":  result.Message,
		}).Error("Email provider rejected send")
		return models.EmailResult{Success: false, Error: result.Message}
	}

	messageID := result.ID
	if messageID == "" {
		messageID = uuid.New().String()
	}

	s.logger.WithField("message_id", messageID).Info("Quote email sent")
	return models.EmailResult{Success: true, MessageID: messageID}
}
