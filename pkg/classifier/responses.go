package classifier

import (
	"fmt"

	"harker-site-backend/pkg/business"
	"harker-site-backend/pkg/pricing"
)

func (c *Classifier) buildRules() []rule {
	return []rule{
		{
			category: CategoryPhoneContact,
			match: func(in *input) bool {
				return phoneRe.MatchString(in.lowered) ||
					hasAny(in.lowered, []string{"call me", "my number"})
			},
			respond: c.phoneContactResponse,
		},
		{
			category: CategoryUrgent,
			match: func(in *input) bool {
				return hasAny(in.lowered, []string{"emergency", "urgent", "asap"})
			},
			respond: c.urgentResponse,
		},
		{
			category: CategoryScheduling,
			match: func(in *input) bool {
				return hasAny(in.lowered, scheduleTerms) && hasAny(in.lowered, temporalTerms)
			},
			respond: c.schedulingResponse,
		},
		{
			category: CategoryDrivewayEstimate,
			match: func(in *input) bool {
				return feetRe.MatchString(in.lowered) && hasAny(in.lowered, drivewayTerms)
			},
			respond: c.drivewayEstimateResponse,
		},
		{
			category: CategoryBrushEstimate,
			match: func(in *input) bool {
				return acresRe.MatchString(in.lowered) && hasAny(in.lowered, brushTerms)
			},
			respond: c.brushEstimateResponse,
		},
		{
			category: CategoryProjectDetails,
			match: func(in *input) bool {
				return measureRe.MatchString(in.lowered) || dimPairRe.MatchString(in.lowered)
			},
			respond: c.projectDetailsResponse,
		},
		{
			category: CategoryOwnerRequest,
			match: func(in *input) bool {
				return hasAny(in.lowered, c.ownerTerms)
			},
			respond: c.ownerRequestResponse,
		},
		{
			category: CategoryPricing,
			match: func(in *input) bool {
				return hasAny(in.lowered, pricingTerms)
			},
			respond: c.pricingResponse,
		},
		{
			category: CategoryServices,
			match: func(in *input) bool {
				return hasAny(in.lowered, servicesTerms)
			},
			respond: c.servicesResponse,
		},
		{
			category: CategoryContactInfo,
			match: func(in *input) bool {
				return hasAny(in.lowered, contactTerms)
			},
			respond: c.contactInfoResponse,
		},
		{
			category: CategoryLocation,
			match: func(in *input) bool {
				return hasAny(in.lowered, locationTerms)
			},
			respond: c.locationResponse,
		},
		{
			category: CategoryHours,
			match: func(in *input) bool {
				return hasAny(in.lowered, hoursTerms)
			},
			respond: c.hoursResponse,
		},
		{
			category: CategoryServiceInfo,
			match: func(in *input) bool {
				return hasAny(in.lowered, drivewayTerms) ||
					hasAny(in.lowered, excavatingTerms) ||
					hasAny(in.lowered, append(brushTerms, "clearing", "land")) ||
					hasAny(in.lowered, append(rototillTerms, "soil"))
			},
			respond: c.serviceInfoResponse,
		},
	}
}

func (c *Classifier) phoneContactResponse(in *input) *Result {
	when := "very soon"
	if !business.IsBusinessHours(in.ctx.Now) {
		when = "first thing tomorrow morning"
	}
	return &Result{
		Response: fmt.Sprintf("Perfect! I've got your contact information and I'm forwarding your message to %s right now. He'll reach out to you %s. Thank you for choosing %s!",
			c.info.OwnerName, when, c.info.Name),
		ShouldForward: true,
	}
}

func (c *Classifier) urgentResponse(in *input) *Result {
	return &Result{
		Response: fmt.Sprintf("I understand this is urgent! I'm immediately forwarding your message to %s at %s. For emergency situations, please also call him directly. He's very responsive to urgent customer needs and will do his best to accommodate your situation.",
			c.info.OwnerName, c.info.Phone),
		ShouldForward: true,
	}
}

func (c *Classifier) schedulingResponse(in *input) *Result {
	availability := "available now"
	if !business.IsBusinessHours(in.ctx.Now) {
		availability = "will respond first thing tomorrow"
	}
	return &Result{
		Response: fmt.Sprintf("Great! %s is %s. I'm forwarding your scheduling request to him right now. You can also reach him directly at %s or email %s. He'll coordinate the best time that works for both of you.",
			c.info.OwnerName, availability, c.info.Phone, c.info.Email),
		ShouldForward: true,
	}
}

func (c *Classifier) drivewayEstimateResponse(in *input) *Result {
	length, ok := findMeasurement(feetRe, in.lowered)
	if !ok {
		return nil
	}
	cost, err := pricing.GravelDriveway(length)
	if err != nil {
		return nil
	}
	return &Result{
		Response: fmt.Sprintf("Perfect! For a %g-foot driveway restoration:\n\n💰 **Estimated Cost: $%.2f**\n\nThis includes:\n• Complete grading and leveling\n• Proper drainage solutions\n• Fresh gravel application\n• Professional finishing\n\nI'm forwarding this to %s so he can confirm and schedule your project. Would you like to provide any additional details about your driveway condition?",
			length, cost, c.info.OwnerName),
		ShouldForward:    true,
		EstimatedService: business.ServiceNameGravelDriveway,
		EstimatedPrice:   &cost,
	}
}

func (c *Classifier) brushEstimateResponse(in *input) *Result {
	acres, ok := findMeasurement(acresRe, in.lowered)
	if !ok {
		return nil
	}
	cost, err := pricing.BrushHog(acres)
	if err != nil {
		return nil
	}
	plural := "s"
	if acres == 1 {
		plural = ""
	}
	return &Result{
		Response: fmt.Sprintf("Great! For approximately %g acre%s of brush hogging:\n\n💰 **Starting Estimate: $%.2f**\n\nFinal price depends on:\n• Vegetation density\n• Terrain and slope\n• Accessibility\n\nI'm forwarding this to %s for a more precise quote based on your specific conditions. Can you describe the vegetation and terrain?",
			acres, plural, cost, c.info.OwnerName),
		ShouldForward:    true,
		EstimatedService: business.ServiceNameBrushHogging,
		EstimatedPrice:   &cost,
	}
}

func (c *Classifier) projectDetailsResponse(in *input) *Result {
	return &Result{
		Response: fmt.Sprintf("Thank you for providing those details! That helps %s give you the most accurate estimate and service. I'm forwarding your specific requirements to him now so he can provide personalized assistance.",
			c.info.OwnerName),
		ShouldForward: true,
	}
}

func (c *Classifier) ownerRequestResponse(in *input) *Result {
	when := "very soon"
	if !business.IsBusinessHours(in.ctx.Now) {
		when = "first thing tomorrow"
	}
	return &Result{
		Response: fmt.Sprintf("Absolutely! I'm connecting you with %s right now. He'll reach out to you %s. You can also call him directly at %s if you'd prefer immediate contact.",
			c.info.OwnerName, when, c.info.Phone),
		ShouldForward: true,
	}
}

func (c *Classifier) pricingResponse(in *input) *Result {
	switch {
	case hasAny(in.lowered, drivewayTerms):
		return &Result{
			Response:         "Gravel Driveway Restoration pricing:\n• $280 for the first 200 feet\n• $0.80 per foot after 200 feet\n\nThis includes proper grading and a professional finish. If you share your driveway length, I can calculate an estimate for you now.",
			EstimatedService: business.ServiceNameGravelDriveway,
		}
	case hasAny(in.lowered, brushTerms):
		return &Result{
			Response:         "Brush Hogging pricing:\n• Starting at $100 per acre\n\nFinal price depends on vegetation density, terrain/slope, and accessibility. If you tell me approximately how many acres and the conditions, I can narrow it down.",
			EstimatedService: business.ServiceNameBrushHogging,
		}
	case hasAny(in.lowered, excavatingTerms):
		return &Result{
			Response: fmt.Sprintf("Small Excavating pricing:\n• Custom per project (free estimates)\n\nPricing depends on scope (depth/length), material, and site access. Share a few details and I can have %s provide a quick estimate.",
				c.info.OwnerName),
			EstimatedService: business.ServiceNameExcavating,
		}
	case hasAny(in.lowered, rototillTerms):
		return &Result{
			Response:         "Rototilling pricing:\n• Contact for pricing (usually based on area size and soil conditions)\n\nIf you share approximate dimensions, I can estimate the range.",
			EstimatedService: business.ServiceNameRototilling,
		}
	}
	return &Result{
		Response: "Here are our standard pricing guidelines:\n\n• Gravel Driveway Restoration: $280 for the first 200 ft, then $0.80/ft after\n• Brush Hogging: starting at $100 per acre (varies by vegetation, slope, access)\n• Small Excavating: custom per job with free estimates\n• Rototilling: contact for pricing (based on area and soil)\n\nTell me which service you need and any sizes/measurements you know, and I can get you a more accurate estimate.",
	}
}

func (c *Classifier) servicesResponse(in *input) *Result {
	return &Result{
		Response: "We specialize in four main services:\n\n🚜 **Gravel Driveway Restoration** - Complete restoration with proper grading\n🏗️ **Small Excavating** - Foundations, drainage, site preparation\n🌾 **Brush Hogging** - Land clearing and maintenance\n🌱 **Rototilling** - Soil preparation for gardens and landscaping\n\nWhich service interests you most?",
	}
}

func (c *Classifier) contactInfoResponse(in *input) *Result {
	availability := "available now"
	if !business.IsBusinessHours(in.ctx.Now) {
		availability = "will respond first thing tomorrow"
	}
	return &Result{
		Response: fmt.Sprintf("%s is %s. You can reach him directly at %s or email %s. If you'd like him to contact you instead, just provide your phone number and I'll make sure he gets your message!",
			c.info.OwnerName, availability, c.info.Phone, c.info.Email),
	}
}

func (c *Classifier) locationResponse(in *input) *Result {
	return &Result{
		Response: fmt.Sprintf("We're located in %s, %s and serve the surrounding areas. %s travels throughout the region for projects. We'd be happy to discuss your location and provide service. Where is your project located?",
			business.City, business.State, c.info.OwnerName),
	}
}

func (c *Classifier) hoursResponse(in *input) *Result {
	status := "We're currently available!"
	if !business.IsBusinessHours(in.ctx.Now) {
		status = "We're currently closed but will respond first thing tomorrow."
	}
	return &Result{
		Response: fmt.Sprintf("Our business hours are 9 AM to 6 PM, Monday through Saturday. %s %s is always happy to discuss your project needs.",
			status, c.info.OwnerName),
	}
}

func (c *Classifier) serviceInfoResponse(in *input) *Result {
	switch {
	case hasAny(in.lowered, drivewayTerms):
		return &Result{
			Response: fmt.Sprintf("Our driveway restoration service includes:\n• Complete grading and leveling\n• Proper drainage solutions\n• Fresh gravel application\n• Professional finishing\n\nWe've been restoring driveways in the %s, %s area with excellent results. Would you like to schedule a free consultation?",
				business.City, business.State),
			EstimatedService: business.ServiceNameGravelDriveway,
		}
	case hasAny(in.lowered, append(excavatingTerms, "foundation")):
		return &Result{
			Response:         "Our small excavating services include:\n• Basement foundations\n• Drainage systems\n• Site preparation\n• Access road creation\n\nWe use professional equipment for precise, clean work. What type of excavation project do you have in mind?",
			EstimatedService: business.ServiceNameExcavating,
		}
	case hasAny(in.lowered, append(brushTerms, "clearing", "land")):
		return &Result{
			Response:         "Our brush hogging service is perfect for:\n• Overgrown property clearing\n• Land maintenance\n• Fire prevention\n• Property beautification\n\nWe can handle properties of various sizes efficiently. How many acres are you looking to clear?",
			EstimatedService: business.ServiceNameBrushHogging,
		}
	case hasAny(in.lowered, append(rototillTerms, "soil")):
		return &Result{
			Response:         "Our rototilling service prepares your soil for:\n• Vegetable gardens\n• Flower beds\n• New lawn installation\n• Landscaping projects\n\nWe ensure proper soil preparation for successful growing. What size area needs rototilling?",
			EstimatedService: business.ServiceNameRototilling,
		}
	}
	return nil
}

func (c *Classifier) generalResponse() Result {
	return Result{
		Response: "I want to make sure I help with the right info. Are you asking about one of these?\n\n• Driveway restoration pricing or details\n• Brush hogging (price starts at $100/acre)\n• Small excavating (drainage, digging, trenches)\n• Rototilling (garden/soil prep)\n\nYou can reply with the service name (e.g., \"driveway pricing\" or \"brush hogging\"). If you share sizes (like feet or acres), I can estimate right away.",
	}
}
