package forwarder

import (
	"time"

	"harker-site-backend/pkg/models"
)

// DefaultCooldown is the minimum gap between two notifier dispatches
// for non-priority categories within one session.
const DefaultCooldown = 2 * time.Minute

// Gate decides whether a forward-eligible message actually reaches the
// notifiers. Always-forward categories (explicit phone number, urgent
// language) bypass it unconditionally; everything else is held to a
// per-session cooldown so a chatty visitor doesn't spam the owner.
type Gate struct {
	cooldown time.Duration
}

func NewGate(cooldown time.Duration) *Gate {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Gate{cooldown: cooldown}
}

// ShouldForward applies the cooldown policy against the session state.
func (g *Gate) ShouldForward(alwaysForward bool, state *models.ConversationState, now time.Time) bool {
	if alwaysForward {
		return true
	}
	if !state.HasForwarded || state.LastForwardedAt == nil {
		return true
	}
	return now.Sub(*state.LastForwardedAt) >= g.cooldown
}

// Mark records a forward attempt before dispatch, so back-to-back
// low-priority messages inside the window are suppressed
// deterministically. Delivery failures never roll this back: we count
// the attempt, not the delivery. LastForwardedAt never moves backwards.
func (g *Gate) Mark(state *models.ConversationState, now time.Time) {
	state.HasForwarded = true
	if state.LastForwardedAt == nil || now.After(*state.LastForwardedAt) {
		t := now
		state.LastForwardedAt = &t
	}
}
