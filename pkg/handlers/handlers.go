package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"harker-site-backend/pkg/chat"
	"harker-site-backend/pkg/config"
	"harker-site-backend/pkg/email"
	"harker-site-backend/pkg/metrics"
	"harker-site-backend/pkg/models"
	"harker-site-backend/pkg/ratelimit"
)

var requiredFields = []string{"name", "phone", "service", "description"}

type Handler struct {
	engine  *chat.Engine
	sender  email.Sender
	limiter ratelimit.Store
	config  *config.Config
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

func NewHandler(engine *chat.Engine, sender email.Sender, limiter ratelimit.Store, cfg *config.Config, logger *logrus.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		engine:  engine,
		sender:  sender,
		limiter: limiter,
		config:  cfg,
		logger:  logger,
		metrics: m,
	}
}

// Contact accepts a quote-request submission. Failures on the email
// collaborator are downgraded to a warning: the business-level
// guarantee is that every inquiry is acknowledged.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	clientIP := ratelimit.ClientIP(r)

	limit, err := h.limiter.Check(r.Context(), "contact_"+clientIP, h.config.RateLimitRequests, h.config.RateLimitWindow())
	if err != nil {
		// Fail open: a broken limiter backend must not take the
		// contact form down with it.
		h.logger.WithError(err).Error("Rate limit check failed")
	} else if !limit.Allowed {
		h.metrics.RateLimitRejections.Inc()
		h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRateLimited).Inc()
		respondJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"success":    false,
			"error":      "Too many requests. Please try again later.",
			"retryAfter": limit.RetryAfterSeconds(time.Now()),
		})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	var raw map[string]interface{}
	var request models.QuoteRequest
	if err := json.Unmarshal(body, &raw); err != nil || json.Unmarshal(body, &request) != nil {
		h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	if missing := missingFields(raw); len(missing) > 0 {
		h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid).Inc()
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	// Honeypot: a populated hidden field means a bot filled the form.
	// Answer success so it moves on, and send nothing.
	if hp, ok := raw[h.config.HoneypotField].(string); ok && hp != "" {
		h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeSpam).Inc()
		h.logger.WithField("client_ip", clientIP).Info("Honeypot triggered, dropping submission")
		respondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
		return
	}

	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.TrimSpace(request.Email)
	request.Phone = strings.TrimSpace(request.Phone)
	request.Description = strings.TrimSpace(request.Description)
	if request.Urgency == "" {
		request.Urgency = "normal"
	}

	start := time.Now()
	result := h.sender.SendQuoteEmail(r.Context(), request)
	h.metrics.EmailSendDuration.Observe(time.Since(start).Seconds())

	if result.Success {
		h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success":   true,
			"message":   "Quote request submitted successfully",
			"messageId": result.MessageID,
		})
		return
	}

	h.metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeWarning).Inc()
	h.logger.WithField("error", result.Error).Error("Quote email send failed")
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Quote request received. We will contact you shortly.",
		"warning": "Email notification may be delayed",
	})
}

func (h *Handler) OpenChatSession(w http.ResponseWriter, r *http.Request) {
	id, welcome := h.engine.OpenSession()
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"session_id": id,
		"message":    welcome,
	})
}

func (h *Handler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var request struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	reply, forwarded, err := h.engine.HandleMessage(sessionID, request.Message)
	switch {
	case err == chat.ErrSessionNotFound:
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Unknown chat session",
		})
		return
	case err == chat.ErrBlankMessage:
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Message must not be blank",
		})
		return
	case err != nil:
		h.logger.WithError(err).Error("Chat message handling failed")
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "An error occurred processing your request. Please try again or call us directly.",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message":   reply,
		"forwarded": forwarded,
	})
}

func (h *Handler) ChatTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	transcript, err := h.engine.Transcript(sessionID)
	if err != nil {
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Unknown chat session",
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   transcript,
	})
}

func (h *Handler) CloseChatSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	if err := h.engine.CloseSession(sessionID); err != nil {
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"error":   "Unknown chat session",
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
	})
}

func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"instance_id": h.config.InstanceID,
		"timestamp":   time.Now(),
	})
}

func missingFields(raw map[string]interface{}) []string {
	var missing []string
	for _, field := range requiredFields {
		v, ok := raw[field].(string)
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
