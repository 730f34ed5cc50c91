package classifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harker-site-backend/pkg/business"
)

var (
	duringHours = time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)
	afterHours  = time.Date(2025, 6, 2, 20, 0, 0, 0, time.Local)
)

func newTestClassifier() *Classifier {
	return New(business.DefaultInfo())
}

func classify(t *testing.T, message string) Result {
	t.Helper()
	return newTestClassifier().Classify(message, Context{Now: duringHours})
}

func TestClassify_PhoneNumberAlwaysForwards(t *testing.T) {
	c := newTestClassifier()

	for _, now := range []time.Time{duringHours, afterHours} {
		res := c.Classify("My number is 330-555-1234", Context{Now: now})
		assert.True(t, res.ShouldForward)
		assert.Equal(t, CategoryPhoneContact, res.Category)
		assert.True(t, res.Category.AlwaysForward())
	}
}

func TestClassify_PhoneNumberFormats(t *testing.T) {
	for _, msg := range []string{
		"call me back at 330.555.1234",
		"reach me on 3305551234",
		"330 555 1234 is my cell",
		"please call me when you get a chance",
		"my number is on file",
	} {
		res := classify(t, msg)
		assert.Equal(t, CategoryPhoneContact, res.Category, "message: %s", msg)
		assert.True(t, res.ShouldForward)
	}
}

func TestClassify_EmergencyForwardsWithDirectPhone(t *testing.T) {
	res := classify(t, "This is an emergency, my driveway washed out")

	assert.True(t, res.ShouldForward)
	assert.Equal(t, CategoryUrgent, res.Category)
	assert.True(t, res.Category.AlwaysForward())
	assert.Contains(t, res.Response, business.DefaultPhone)
}

func TestClassify_SchedulingNeedsTemporalTerm(t *testing.T) {
	res := classify(t, "Can we schedule something for tomorrow morning?")
	assert.Equal(t, CategoryScheduling, res.Category)
	assert.True(t, res.ShouldForward)

	// A scheduling term without a time reference is not a concrete request.
	res = classify(t, "How do I book you?")
	assert.NotEqual(t, CategoryScheduling, res.Category)
	assert.False(t, res.ShouldForward)
}

func TestClassify_DrivewayEstimateFromMeasurement(t *testing.T) {
	res := classify(t, "How much for a 300 foot driveway restoration")

	assert.True(t, res.ShouldForward)
	assert.Equal(t, CategoryDrivewayEstimate, res.Category)
	assert.Contains(t, res.Response, "$360.00")
	assert.Equal(t, business.ServiceNameGravelDriveway, res.EstimatedService)
	require.NotNil(t, res.EstimatedPrice)
	assert.Equal(t, 360.0, *res.EstimatedPrice)
}

func TestClassify_DrivewayEstimateFlatRate(t *testing.T) {
	res := classify(t, "My gravel driveway is about 150 feet long")

	assert.Equal(t, CategoryDrivewayEstimate, res.Category)
	assert.Contains(t, res.Response, "$280.00")
}

func TestClassify_DrivewayEstimateWithThousandsSeparator(t *testing.T) {
	res := classify(t, "The driveway runs 1,000 ft back to the barn")

	assert.Equal(t, CategoryDrivewayEstimate, res.Category)
	assert.Contains(t, res.Response, "$920.00")
}

func TestClassify_BrushHogEstimateFromAcres(t *testing.T) {
	res := classify(t, "I have 2.5 acres of overgrown field that needs cleared")

	assert.True(t, res.ShouldForward)
	assert.Equal(t, CategoryBrushEstimate, res.Category)
	assert.Contains(t, res.Response, "$250.00")
	assert.Equal(t, business.ServiceNameBrushHogging, res.EstimatedService)
}

func TestClassify_GenericMeasurementForwards(t *testing.T) {
	for _, msg := range []string{
		"the pad is roughly 5,000 sq ft",
		"an area about 20x30 behind the house",
		"maybe 50 yards of trenching",
	} {
		res := classify(t, msg)
		assert.True(t, res.ShouldForward, "message: %s", msg)
		assert.Equal(t, CategoryProjectDetails, res.Category, "message: %s", msg)
	}
}

func TestClassify_MeasurementBeatsGenericPricing(t *testing.T) {
	// A customer who supplies a measurement gets a number, not a price
	// table, even though the message also contains pricing terms.
	res := classify(t, "what's the cost for 250 feet of driveway?")

	assert.Equal(t, CategoryDrivewayEstimate, res.Category)
	assert.Contains(t, res.Response, "$320.00")
}

func TestClassify_SpeakWithOwner(t *testing.T) {
	res := classify(t, "Can I speak with the owner please")

	assert.True(t, res.ShouldForward)
	assert.Equal(t, CategoryOwnerRequest, res.Category)
}

func TestClassify_PricingBranchesByService(t *testing.T) {
	tests := []struct {
		message  string
		contains string
	}{
		{"what does driveway restoration cost?", "$280 for the first 200 feet"},
		{"brush hogging price?", "$100 per acre"},
		{"cost to dig a trench?", "free estimates"},
		{"rototilling cost?", "Contact for pricing"},
		{"what are your prices?", "standard pricing guidelines"},
	}

	for _, tt := range tests {
		res := classify(t, tt.message)
		assert.Equal(t, CategoryPricing, res.Category, "message: %s", tt.message)
		assert.False(t, res.ShouldForward, "message: %s", tt.message)
		assert.Contains(t, res.Response, tt.contains, "message: %s", tt.message)
	}
}

func TestClassify_InformationalNeverForwards(t *testing.T) {
	tests := []struct {
		message  string
		category Category
	}{
		{"what services do you offer?", CategoryServices},
		{"how do I contact you?", CategoryContactInfo},
		{"where are you located?", CategoryLocation},
		{"what are your hours?", CategoryHours},
		{"tell me about your driveway work", CategoryServiceInfo},
		{"do you do gardens?", CategoryServiceInfo},
		{"hello there", CategoryGeneral},
	}

	for _, tt := range tests {
		res := classify(t, tt.message)
		assert.Equal(t, tt.category, res.Category, "message: %s", tt.message)
		assert.False(t, res.ShouldForward, "message: %s", tt.message)
		assert.False(t, res.Category.AlwaysForward())
	}
}

func TestClassify_HoursReflectCurrentStatus(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("what are your hours?", Context{Now: duringHours})
	assert.Contains(t, res.Response, "currently available")

	res = c.Classify("what are your hours?", Context{Now: afterHours})
	assert.Contains(t, res.Response, "currently closed")
}

func TestClassify_ResponseTimePhrasingFollowsBusinessHours(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("call me at 330-555-1234", Context{Now: duringHours})
	assert.Contains(t, res.Response, "very soon")

	res = c.Classify("call me at 330-555-1234", Context{Now: afterHours})
	assert.Contains(t, res.Response, "first thing tomorrow")
}

func TestClassify_NameExtraction(t *testing.T) {
	res := classify(t, "Hi, my name is Sarah Miller and I need some info")
	assert.Equal(t, "Sarah Miller and I need some info", res.ExtractedName)

	// Known name is never re-extracted.
	res = newTestClassifier().Classify("my name is Bob", Context{CustomerName: "Sarah", Now: duringHours})
	assert.Empty(t, res.ExtractedName)
}

func TestClassify_NameExtractionDoesNotShortCircuit(t *testing.T) {
	res := classify(t, "I'm Dave, what are your prices?")

	assert.Equal(t, "Dave", res.ExtractedName)
	assert.Equal(t, CategoryPricing, res.Category)
}

func TestClassify_Idempotent(t *testing.T) {
	c := newTestClassifier()
	ctx := Context{Now: duringHours}

	first := c.Classify("How much for a 300 foot driveway restoration", ctx)
	second := c.Classify("How much for a 300 foot driveway restoration", ctx)

	assert.Equal(t, first.Response, second.Response)
	assert.Equal(t, first.ShouldForward, second.ShouldForward)
	assert.Equal(t, first.Category, second.Category)
}

func TestClassify_DefaultResponseListsServices(t *testing.T) {
	res := classify(t, "hmm")

	assert.Equal(t, CategoryGeneral, res.Category)
	assert.Contains(t, res.Response, "Driveway restoration")
	assert.Contains(t, res.Response, "Brush hogging")
	assert.Contains(t, res.Response, "excavating")
	assert.Contains(t, res.Response, "Rototilling")
}
