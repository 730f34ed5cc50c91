package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"harker-site-backend/pkg/models"
)

// Subject builds the urgency-tagged subject line.
func Subject(data models.QuoteRequest) string {
	prefix := ""
	switch data.Urgency {
	case "emergency":
		prefix = "EMERGENCY "
	case "urgent":
		prefix = "URGENT "
	}
	return fmt.Sprintf("%sNew Quote Request - %s", prefix, data.Service)
}

func urgencyLabel(urgency string) string {
	switch urgency {
	case "emergency":
		return "EMERGENCY"
	case "urgent":
		return "URGENT"
	case "soon":
		return "PRIORITY"
	default:
		return "NORMAL"
	}
}

func responseTimeHint(urgency string) string {
	switch urgency {
	case "emergency":
		return "Respond immediately"
	case "urgent":
		return "Within 1 hour"
	case "soon":
		return "Within 4 hours"
	default:
		return "Within 24 hours"
	}
}

// FormatHTML renders the owner-facing quote notification.
func FormatHTML(data models.QuoteRequest) string {
	var b strings.Builder

	b.WriteString("<h1>New Quote Request</h1>\n")
	fmt.Fprintf(&b, "<p><strong>Urgency:</strong> %s</p>\n", urgencyLabel(data.Urgency))

	if data.EstimatedPrice > 0 {
		fmt.Fprintf(&b, "<p><strong>Estimated Price:</strong> $%.2f<br><em>Based on provided measurements, subject to site inspection</em></p>\n", data.EstimatedPrice)
	}

	field := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "<p><strong>%s:</strong> %s</p>\n", label, html.EscapeString(value))
		}
	}

	field("Customer Name", data.Name)
	field("Phone Number", data.Phone)
	field("Email Address", data.Email)
	field("Service Requested", data.Service)
	field("Property Size", data.PropertySize)
	if data.DrivewayLength != "" {
		field("Driveway Length", data.DrivewayLength+" feet")
	}
	field("Preferred Start Date", data.PreferredDate)

	fmt.Fprintf(&b, "<h4>Project Description</h4>\n<p>%s</p>\n",
		strings.ReplaceAll(html.EscapeString(data.Description), "\n", "<br>"))
	fmt.Fprintf(&b, "<p><strong>Response Time Recommendation:</strong> %s</p>\n", responseTimeHint(data.Urgency))
	fmt.Fprintf(&b, "<p><em>Sent from the website contact form at %s</em></p>\n",
		time.Now().Format("Jan 2, 2006 3:04 PM"))

	return b.String()
}

// FormatText is the plain-text alternative for clients without HTML.
func FormatText(data models.QuoteRequest) string {
	var b strings.Builder

	b.WriteString("NEW QUOTE REQUEST\n\n")
	fmt.Fprintf(&b, "Urgency: %s\n", urgencyLabel(data.Urgency))
	if data.EstimatedPrice > 0 {
		fmt.Fprintf(&b, "Estimated Price: $%.2f\n", data.EstimatedPrice)
	}

	b.WriteString("\nCustomer Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", data.Name)
	fmt.Fprintf(&b, "- Phone: %s\n", data.Phone)
	if data.Email != "" {
		fmt.Fprintf(&b, "- Email: %s\n", data.Email)
	}

	b.WriteString("\nService Details:\n")
	fmt.Fprintf(&b, "- Service: %s\n", data.Service)
	if data.PropertySize != "" {
		fmt.Fprintf(&b, "- Property Size: %s\n", data.PropertySize)
	}
	if data.DrivewayLength != "" {
		fmt.Fprintf(&b, "- Driveway Length: %s feet\n", data.DrivewayLength)
	}
	if data.PreferredDate != "" {
		fmt.Fprintf(&b, "- Preferred Start Date: %s\n", data.PreferredDate)
	}

	fmt.Fprintf(&b, "\nProject Description:\n%s\n", data.Description)
	fmt.Fprintf(&b, "\nRecommended response: %s\n", responseTimeHint(data.Urgency))

	return b.String()
}
