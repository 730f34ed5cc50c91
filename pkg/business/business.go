package business

import "time"

// Business hours window on the local clock (9 AM to 6 PM).
// The caller's clock is authoritative; no timezone normalization.
const (
	HoursStart = 9
	HoursEnd   = 18
)

// Default business identity. Individual fields can be overridden via
// environment configuration.
const (
	DefaultName      = "Harker Enterprises"
	DefaultTagline   = "Professional Gravel Driveway Restoration & Excavating"
	DefaultOwnerName = "Ron"
	DefaultPhone     = "(330) 301-2769"
	DefaultPhoneRaw  = "+13303012769"
	DefaultEmail     = "ronaldharker@yahoo.com"
)

const (
	Street      = "9900 New Rd"
	City        = "North Jackson"
	State       = "OH"
	Zip         = "44451"
	ServiceArea = "North Jackson, OH and surrounding areas in Mahoning County"

	Latitude  = 41.094
	Longitude = -80.862

	FacebookURL = "https://www.facebook.com/harkerenterprises"
)

// Info carries the business identity used in generated responses and
// outgoing notifications.
type Info struct {
	Name      string
	OwnerName string
	Phone     string
	Email     string
}

func DefaultInfo() Info {
	return Info{
		Name:      DefaultName,
		OwnerName: DefaultOwnerName,
		Phone:     DefaultPhone,
		Email:     DefaultEmail,
	}
}

// IsBusinessHours reports whether t falls inside the 9 AM - 6 PM window.
func IsBusinessHours(t time.Time) bool {
	hour := t.Hour()
	return hour >= HoursStart && hour < HoursEnd
}

// Service describes one entry in the service catalog.
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	ShortTitle  string   `json:"short_title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Pricing     string   `json:"pricing"`
}

// Service catalog identifiers.
const (
	ServiceGravelDriveway = "gravel-driveway"
	ServiceExcavating     = "excavating"
	ServiceBrushHogging   = "brush-hogging"
	ServiceRototilling    = "rototilling"
)

// Display names used in classification results and notifications.
const (
	ServiceNameGravelDriveway = "Gravel Driveway Restoration"
	ServiceNameExcavating     = "Small Excavating"
	ServiceNameBrushHogging   = "Brush Hogging"
	ServiceNameRototilling    = "Rototilling"
)

// Services returns the full catalog.
func Services() []Service {
	return []Service{
		{
			ID:          ServiceGravelDriveway,
			Title:       ServiceNameGravelDriveway,
			ShortTitle:  "Gravel Driveway",
			Description: "An alternative to buying new gravel. We expertly grade and restore your stone drive without adding additional gravel. A great way to save money.",
			Features:    []string{"Expert grading", "No additional gravel needed", "Cost-effective solution", "Professional restoration"},
			Pricing:     "$280 for the first 200 feet, then $0.80 per additional foot",
		},
		{
			ID:          ServiceExcavating,
			Title:       "Small Excavating Work",
			ShortTitle:  ServiceNameExcavating,
			Description: "Ditch cleanout, small culvert replacement, small ponds, and other small excavating jobs by request.",
			Features:    []string{"Ditch cleanout", "Culvert replacement", "Small pond construction", "Custom excavating jobs"},
			Pricing:     "Free estimates based on project scope",
		},
		{
			ID:          ServiceBrushHogging,
			Title:       "Brush Hogging and Rototilling",
			ShortTitle:  ServiceNameBrushHogging,
			Description: "We can brush hog with small trees up to one inch in diameter. Rototilling estimates upon request and season.",
			Features:    []string{"Small tree removal (up to 1\")", "Seasonal rototilling", "Land clearing", "Custom estimates available"},
			Pricing:     "Starting at $100 per acre",
		},
	}
}
