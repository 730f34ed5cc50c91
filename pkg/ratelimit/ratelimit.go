// Package ratelimit implements a fixed-window request counter keyed by
// client identifier.
package ratelimit

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// Result is the outcome of one admission check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// RetryAfterSeconds returns the whole seconds until the window resets,
// at least 1 while the window is still open.
func (r Result) RetryAfterSeconds(now time.Time) int {
	secs := int(r.ResetAt.Sub(now).Seconds()) + 1
	if secs < 1 {
		secs = 1
	}
	return secs
}

// Store admits or rejects one request against a fixed window. A new or
// expired key starts a fresh window with count 1; an unexpired key
// increments up to max and rejects beyond it.
type Store interface {
	Check(ctx context.Context, key string, max int, window time.Duration) (Result, error)
}

// ClientIP extracts the originating client address from proxy headers,
// falling back to "unknown" so anonymous clients still share a bucket.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if cfIP := r.Header.Get("CF-Connecting-IP"); cfIP != "" {
		return cfIP
	}
	return "unknown"
}
