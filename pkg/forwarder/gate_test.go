package forwarder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harker-site-backend/pkg/models"
)

func TestGate_FirstForwardAllowed(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	state := &models.ConversationState{}

	assert.True(t, gate.ShouldForward(false, state, time.Now()))
}

func TestGate_SuppressesWithinCooldown(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	now := time.Now()
	last := now.Add(-60 * time.Second)
	state := &models.ConversationState{HasForwarded: true, LastForwardedAt: &last}

	assert.False(t, gate.ShouldForward(false, state, now))
}

func TestGate_AllowsAfterCooldown(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	now := time.Now()
	last := now.Add(-121 * time.Second)
	state := &models.ConversationState{HasForwarded: true, LastForwardedAt: &last}

	assert.True(t, gate.ShouldForward(false, state, now))
}

func TestGate_CooldownBoundaryIsInclusive(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	now := time.Now()
	last := now.Add(-2 * time.Minute)
	state := &models.ConversationState{HasForwarded: true, LastForwardedAt: &last}

	assert.True(t, gate.ShouldForward(false, state, now))
}

func TestGate_AlwaysForwardBypassesCooldown(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	now := time.Now()
	last := now.Add(-time.Second)
	state := &models.ConversationState{HasForwarded: true, LastForwardedAt: &last}

	assert.True(t, gate.ShouldForward(true, state, now))
}

func TestGate_MarkUpdatesState(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	state := &models.ConversationState{}
	now := time.Now()

	gate.Mark(state, now)

	assert.True(t, state.HasForwarded)
	require.NotNil(t, state.LastForwardedAt)
	assert.Equal(t, now, *state.LastForwardedAt)
}

func TestGate_LastForwardedAtNeverMovesBackwards(t *testing.T) {
	gate := NewGate(2 * time.Minute)
	state := &models.ConversationState{}
	now := time.Now()

	gate.Mark(state, now)
	gate.Mark(state, now.Add(-time.Minute))

	require.NotNil(t, state.LastForwardedAt)
	assert.Equal(t, now, *state.LastForwardedAt)
}

func TestGate_ZeroCooldownFallsBackToDefault(t *testing.T) {
	gate := NewGate(0)
	now := time.Now()
	last := now.Add(-time.Minute)
	state := &models.ConversationState{HasForwarded: true, LastForwardedAt: &last}

	assert.False(t, gate.ShouldForward(false, state, now))
}
