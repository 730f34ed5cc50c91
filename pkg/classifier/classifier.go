// Package classifier turns a free-text customer message into a canned
// response and a forwarding decision. Rules form an ordered decision
// list evaluated top to bottom; the first matching rule wins. Ordering
// encodes priority: explicit contact info and urgency beat generic
// keyword matches, and quantified requests are checked before generic
// pricing questions so a customer who supplies a measurement gets a
// number instead of a price table.
package classifier

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"harker-site-backend/pkg/business"
)

// Category identifies which rule produced a classification.
type Category string

const (
	CategoryPhoneContact     Category = "phone_contact"
	CategoryUrgent           Category = "urgent"
	CategoryScheduling       Category = "scheduling"
	CategoryDrivewayEstimate Category = "driveway_estimate"
	CategoryBrushEstimate    Category = "brush_estimate"
	CategoryProjectDetails   Category = "project_details"
	CategoryOwnerRequest     Category = "owner_request"
	CategoryPricing          Category = "pricing"
	CategoryServices         Category = "services"
	CategoryContactInfo      Category = "contact_info"
	CategoryLocation         Category = "location"
	CategoryHours            Category = "hours"
	CategoryServiceInfo      Category = "service_info"
	CategoryGeneral          Category = "general"
)

// AlwaysForward reports whether this category bypasses the forwarding
// cooldown. Explicit contact info and emergencies are never suppressed.
func (c Category) AlwaysForward() bool {
	return c == CategoryPhoneContact || c == CategoryUrgent
}

// Context carries the session state the classifier reads.
type Context struct {
	CustomerName string
	Now          time.Time
}

// Result is the pure classification output. ExtractedName is returned
// rather than applied; the session owner applies it first-wins.
type Result struct {
	Response         string
	ShouldForward    bool
	Category         Category
	ExtractedName    string
	EstimatedService string
	EstimatedPrice   *float64
}

type input struct {
	text    string // original casing, for name extraction
	lowered string
	ctx     Context
}

// rule pairs a predicate with a response handler. The handler may still
// decline (return nil) to fall through, e.g. on a failed numeric parse.
type rule struct {
	category Category
	match    func(in *input) bool
	respond  func(in *input) *Result
}

type Classifier struct {
	info       business.Info
	rules      []rule
	ownerTerms []string
}

// Keyword sets, including the common misspellings and synonyms the site
// accumulated from real customer messages. Matching is substring-based
// and case-insensitive; overlaps resolve by rule order.
var (
	pricingTerms    = []string{"price", "pricing", "cost", "quote", "estimate", "how much"}
	drivewayTerms   = []string{"driveway", "gravel", "stone", "regrade", "re-grade", "regrading", "restoration"}
	excavatingTerms = []string{"excavat", "excavating", "dig", "dug", "trench", "culvert", "drain", "drainage", "ditch", "footer", "footers", "foundation", "pipe", "conduit"}
	brushTerms      = []string{"brush", "brushhog", "brush hog", "bush hog", "field mow", "mowing", "land clearing", "overgrowth", "overgrown", "weeds"}
	rototillTerms   = []string{"rototill", "till", "tilling", "garden", "soil prep", "bed prep"}
	contactTerms    = []string{"contact", "reach", "call", "phone", "text", "email"}
	scheduleTerms   = []string{"schedule", "appointment", "book", "quote visit", "onsite", "on-site"}
	temporalTerms   = []string{"when", "time", "today", "tomorrow", "week", "morning", "afternoon", "evening"}
	servicesTerms   = []string{"service", "services", "what do you do", "what services"}
	locationTerms   = []string{"location", "area", "where", "service area", "do you travel"}
	hoursTerms      = []string{"hours", "open", "when are you open", "time", "availability"}
)

var (
	phoneRe   = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
	feetRe    = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)\s*(?:feet|ft|foot)\b`)
	acresRe   = regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)\s*acres?\b`)
	measureRe = regexp.MustCompile(`(?i)\b\d{2,}[\s,-]?(?:(?:feet|ft|foot|yards?|yds?|acres?|sq\s*ft|square\s*feet)\b|["'])`)
	dimPairRe = regexp.MustCompile(`(?i)\b\d{1,3}\s*x\s*\d{1,3}\b`)
	nameRe    = regexp.MustCompile(`(?i)(?:my name is|i'm|this is)\s+([a-zA-Z][a-zA-Z\s]*)`)
)

func New(info business.Info) *Classifier {
	c := &Classifier{
		info: info,
		ownerTerms: []string{
			"talk to", "speak with", "connect me",
			"have him call", "have owner call",
			"have " + strings.ToLower(info.OwnerName) + " call",
		},
	}
	c.rules = c.buildRules()
	return c
}

// Classify evaluates the decision list against one message. It is a
// pure function of the message and context: identical inputs always
// produce identical results. Callers must not pass blank messages.
func (c *Classifier) Classify(message string, ctx Context) Result {
	in := &input{
		text:    message,
		lowered: strings.ToLower(message),
		ctx:     ctx,
	}

	extracted := ""
	if ctx.CustomerName == "" {
		extracted = extractName(in)
	}

	for _, r := range c.rules {
		if !r.match(in) {
			continue
		}
		res := r.respond(in)
		if res == nil {
			continue // handler declined, e.g. unparseable number
		}
		res.Category = r.category
		res.ExtractedName = extracted
		return *res
	}

	res := c.generalResponse()
	res.Category = CategoryGeneral
	res.ExtractedName = extracted
	return res
}

func extractName(in *input) string {
	if !strings.Contains(in.lowered, "my name is") &&
		!strings.Contains(in.lowered, "i'm ") &&
		!strings.Contains(in.lowered, "this is ") {
		return ""
	}
	// Match against the original text so the customer's casing survives.
	m := nameRe.FindStringSubmatch(in.text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func hasAny(lowered string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(lowered, t) {
			return true
		}
	}
	return false
}

// parseNumber tolerates thousands separators ("5,000") and decimals.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func findMeasurement(re *regexp.Regexp, lowered string) (float64, bool) {
	m := re.FindStringSubmatch(lowered)
	if m == nil {
		return 0, false
	}
	return parseNumber(m[1])
}
