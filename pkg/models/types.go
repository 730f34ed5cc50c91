package models

import "time"

// Message is one entry in a chat transcript. Immutable once created.
type Message struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// ConversationState is the per-session chat state. Messages are
// append-only in display order. CustomerName is set at most once per
// session (first extraction wins). LastForwardedAt only moves forward.
type ConversationState struct {
	Messages        []Message  `json:"messages"`
	CustomerName    string     `json:"customer_name,omitempty"`
	HasForwarded    bool       `json:"has_forwarded"`
	LastForwardedAt *time.Time `json:"last_forwarded_at,omitempty"`
}

// Urgency is the analyzed priority of a forwarded inquiry.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Inquiry is the payload handed to the owner notifiers. Built fresh per
// forward attempt; never persisted.
type Inquiry struct {
	CustomerMessage  string    `json:"customer_message"`
	Timestamp        time.Time `json:"timestamp"`
	ChatHistory      []string  `json:"chat_history"`
	Urgency          Urgency   `json:"urgency"`
	EstimatedService string    `json:"estimated_service,omitempty"`
}

// ForwardResult reports which notifier channels accepted the inquiry.
type ForwardResult struct {
	SMS   bool `json:"sms"`
	Email bool `json:"email"`
}

// QuoteRequest is the contact-form submission body.
type QuoteRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email,omitempty"`
	Phone          string  `json:"phone"`
	Service        string  `json:"service"`
	PropertySize   string  `json:"propertySize,omitempty"`
	DrivewayLength string  `json:"drivewayLength,omitempty"`
	Description    string  `json:"description"`
	PreferredDate  string  `json:"preferredDate,omitempty"`
	Urgency        string  `json:"urgency,omitempty"`
	EstimatedPrice float64 `json:"estimatedPrice,omitempty"`
}

// EmailResult is the outcome of a quote email delivery attempt.
type EmailResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
