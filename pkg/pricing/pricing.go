// Package pricing is the single source of truth for price estimates.
// Both the quote form handler and the chat classifier compute from here.
package pricing

import (
	"errors"
	"math"
)

// Gravel driveway restoration rates.
const (
	GravelBasePrice      = 280.0
	GravelBaseFeet       = 200.0
	GravelPerExtraFoot   = 0.80
	BrushHogPricePerAcre = 100.0
)

var ErrNoEstimate = errors.New("no estimate available")

// GravelDriveway returns the restoration estimate for a driveway of the
// given length in feet. The first 200 feet are a flat $280, each foot
// beyond that adds $0.80.
func GravelDriveway(lengthFeet float64) (float64, error) {
	if !isUsable(lengthFeet) {
		return 0, ErrNoEstimate
	}
	if lengthFeet <= GravelBaseFeet {
		return GravelBasePrice, nil
	}
	return GravelBasePrice + (lengthFeet-GravelBaseFeet)*GravelPerExtraFoot, nil
}

// BrushHog returns the starting estimate for brush hogging the given
// acreage, at $100 per acre.
func BrushHog(acres float64) (float64, error) {
	if !isUsable(acres) {
		return 0, ErrNoEstimate
	}
	return acres * BrushHogPricePerAcre, nil
}

func isUsable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
