// Package chat owns the per-session conversation state and drives the
// classifier and forwarding gate for each incoming customer message.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/classifier"
	"harker-site-backend/pkg/forwarder"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/models"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrBlankMessage    = errors.New("message must not be blank")
)

// InquiryForwarder relays a customer message to the owner notifiers.
type InquiryForwarder interface {
	ForwardInquiry(ctx context.Context, customerMessage string, chatHistory []string) models.ForwardResult
}

type session struct {
	state  models.ConversationState
	nextID int64
}

// Engine holds all live chat sessions. One logical thread of control
// per session: the engine mutex serializes state mutation, while
// notifier dispatch runs on its own goroutine so the user can keep
// typing while a forward is in flight.
type Engine struct {
	mu         sync.Mutex
	sessions   map[string]*session
	classifier *classifier.Classifier
	gate       *forwarder.Gate
	fwd        InquiryForwarder
	info       business.Info
	logger     *logrus.Logger
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewEngine(c *classifier.Classifier, gate *forwarder.Gate, fwd InquiryForwarder, info business.Info, logger *logrus.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		sessions:   make(map[string]*session),
		classifier: c,
		gate:       gate,
		fwd:        fwd,
		info:       info,
		logger:     logger,
		metrics:    m,
		now:        time.Now,
	}
}

// OpenSession creates a session and returns its id plus the welcome
// message.
func (e *Engine) OpenSession() (string, models.Message) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.New().String()
	s := &session{nextID: 1}
	welcome := s.append(fmt.Sprintf(
		"Hi! I'm the %s AI assistant. I'm here to help you with questions about our gravel driveway restoration, excavating, brush hogging, and rototilling services. How can I assist you today?",
		e.info.Name), true, e.now())
	e.sessions[id] = s

	e.metrics.ActiveChatSessions.Inc()
	e.logger.WithField("session_id", id).Debug("Opened chat session")
	return id, welcome
}

// HandleMessage appends one customer message, classifies it, and
// returns the bot reply. The forwarded flag reports whether the
// message passed the gate and a notifier dispatch was started.
func (e *Engine) HandleMessage(sessionID, text string) (models.Message, bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Message{}, false, ErrBlankMessage
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return models.Message{}, false, ErrSessionNotFound
	}

	now := e.now()
	s.append(text, false, now)

	result := e.classifier.Classify(text, classifier.Context{
		CustomerName: s.state.CustomerName,
		Now:          now,
	})
	if s.state.CustomerName == "" && result.ExtractedName != "" {
		s.state.CustomerName = result.ExtractedName
	}

	reply := s.append(result.Response, true, now)
	e.metrics.InquiriesClassified.WithLabelValues(string(result.Category)).Inc()

	forwarded := false
	if result.ShouldForward {
		if e.gate.ShouldForward(result.Category.AlwaysForward(), &s.state, now) {
			e.gate.Mark(&s.state, now)
			forwarded = true
			history := s.renderHistory()
			go e.dispatchForward(sessionID, text, history)
		} else {
			e.metrics.ForwardsSuppressed.Inc()
			e.logger.WithFields(logrus.Fields{
				"session_id": sessionID,
				"category":   result.Category,
			}).Debug("Forward suppressed by cooldown")
		}
	}

	return reply, forwarded, nil
}

// dispatchForward runs off the request path. On any channel success it
// appends a confirmation follow-up to the transcript; a session closed
// mid-flight just drops the result.
func (e *Engine) dispatchForward(sessionID, text string, history []string) {
	result := e.fwd.ForwardInquiry(context.Background(), text, history)
	if !result.SMS && !result.Email {
		return
	}

	when := "very soon"
	now := e.now()
	if !business.IsBusinessHours(now) {
		when = "first thing tomorrow"
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[sessionID]
	if !ok {
		return
	}
	s.append(fmt.Sprintf("✅ I've successfully forwarded your message to %s. He'll get back to you %s!",
		e.info.OwnerName, when), true, now)
}

// Transcript returns a snapshot copy of the session's messages.
func (e *Engine) Transcript(sessionID string) ([]models.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make([]models.Message, len(s.state.Messages))
	copy(out, s.state.Messages)
	return out, nil
}

// CloseSession tears a session down. In-flight forwards for it are
// discarded when they complete.
func (e *Engine) CloseSession(sessionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[sessionID]; !ok {
		return ErrSessionNotFound
	}
	delete(e.sessions, sessionID)
	e.metrics.ActiveChatSessions.Dec()
	return nil
}

func (s *session) append(text string, isBot bool, now time.Time) models.Message {
	msg := models.Message{
		ID:        s.nextID,
		Text:      text,
		IsBot:     isBot,
		Timestamp: now,
	}
	s.nextID++
	s.state.Messages = append(s.state.Messages, msg)
	return msg
}

func (s *session) renderHistory() []string {
	speakerFor := func(m models.Message) string {
		if m.IsBot {
			return "AI Assistant"
		}
		if s.state.CustomerName != "" {
			return s.state.CustomerName
		}
		return "Customer"
	}

	history := make([]string, 0, len(s.state.Messages))
	for _, m := range s.state.Messages {
		history = append(history, fmt.Sprintf("%s: %s", speakerFor(m), m.Text))
	}
	return history
}
