package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Field keys used in validation error maps. They mirror the API's payload
// field names so error messages can be attached to the matching form rows.
const (
	FieldProjectName             = "projectName"
	FieldProjectDescription      = "projectDescription"
	FieldRequirements            = "requirements"
	FieldQuotedPrice             = "quotedPrice"
	FieldCompletionTime          = "completionTime"
	FieldCommunicationPreference = "communicationPreference"
	FieldPhoneNumber             = "phoneNumber"
	FieldEmailAddress            = "emailAddress"
	FieldMeetingLink             = "meetingLink"
)

// ProjectRequest is the form state for a new or edited service request.
// QuotedPrice and CompletionTime hold the raw typed text; they are parsed
// during validation so partial input never breaks the form.
type ProjectRequest struct {
	ProjectName             string
	ServiceCategory         string
	ProjectDescription      string
	Requirements            string
	QuotedPrice             string
	CompletionTime          string
	Urgency                 Urgency
	CommunicationPreference CommunicationMethod
	PhoneNumber             string
	EmailAddress            string
	MeetingLink             string
	AdditionalNotes         string
	AssignedTo              uuid.UUID
}

// NewProjectRequest returns a fresh request for the given service category,
// with defaults applied.
func NewProjectRequest(service string) ProjectRequest {
	return ProjectRequest{
		ServiceCategory: ServiceFor(service).Slug,
		Urgency:         UrgencyNormal,
	}
}

// Service returns the active category config, falling back for unknown slugs.
func (r ProjectRequest) Service() ServiceConfig {
	return ServiceFor(r.ServiceCategory)
}

// Validate runs the full submit-time check and returns a field → message map.
// Every check runs unconditionally so all violated fields report at once;
// submission must be blocked while the map is non-empty.
func (r ProjectRequest) Validate() map[string]string {
	errs := make(map[string]string)
	cfg := r.Service()

	if strings.TrimSpace(r.ProjectName) == "" {
		errs[FieldProjectName] = "Project name is required"
	}
	if strings.TrimSpace(r.ProjectDescription) == "" {
		errs[FieldProjectDescription] = "Project description is required"
	}
	if strings.TrimSpace(r.Requirements) == "" {
		errs[FieldRequirements] = "Requirements are required"
	}

	if price := strings.TrimSpace(r.QuotedPrice); price == "" {
		errs[FieldQuotedPrice] = "Quoted price is required"
	} else if v, err := strconv.ParseFloat(price, 64); err != nil || math.IsNaN(v) {
		// ParseFloat accepts "NaN", which compares false against both bounds.
		errs[FieldQuotedPrice] = "Quoted price must be a number"
	} else if v < float64(cfg.MinPrice) || v > float64(cfg.MaxPrice) {
		errs[FieldQuotedPrice] = fmt.Sprintf("Price for %s must be between ₹%d and ₹%d", cfg.Title, cfg.MinPrice, cfg.MaxPrice)
	}

	if days := strings.TrimSpace(r.CompletionTime); days == "" {
		errs[FieldCompletionTime] = "Completion time is required"
	} else if v, err := strconv.Atoi(days); err != nil {
		errs[FieldCompletionTime] = "Completion time must be a whole number of days"
	} else if v < cfg.MinDays || v > cfg.MaxDays {
		errs[FieldCompletionTime] = fmt.Sprintf("Completion time for %s must be between %d and %d days", cfg.Title, cfg.MinDays, cfg.MaxDays)
	}

	if r.CommunicationPreference == CommUnset {
		errs[FieldCommunicationPreference] = "Choose a communication method"
	}
	for _, rule := range contactRules[r.CommunicationPreference] {
		if msg := rule.validate(r); msg != "" {
			errs[rule.field] = msg
		}
	}

	return errs
}

// BoundsWarning returns a live out-of-range warning for the quotedPrice or
// completionTime field while the user is typing. Unparseable or in-range
// input yields no warning; warnings never block further editing.
func (r ProjectRequest) BoundsWarning(field string) string {
	cfg := r.Service()
	switch field {
	case FieldQuotedPrice:
		v, err := strconv.ParseFloat(strings.TrimSpace(r.QuotedPrice), 64)
		if err != nil || math.IsNaN(v) {
			return ""
		}
		if v < float64(cfg.MinPrice) || v > float64(cfg.MaxPrice) {
			return fmt.Sprintf("%s projects range ₹%d–₹%d", cfg.Title, cfg.MinPrice, cfg.MaxPrice)
		}
	case FieldCompletionTime:
		v, err := strconv.Atoi(strings.TrimSpace(r.CompletionTime))
		if err != nil {
			return ""
		}
		if v < cfg.MinDays || v > cfg.MaxDays {
			return fmt.Sprintf("%s projects take %d–%d days", cfg.Title, cfg.MinDays, cfg.MaxDays)
		}
	}
	return ""
}

// Estimate returns the advisory estimated price for the current urgency, or
// false when the quoted price is not yet parseable.
func (r ProjectRequest) Estimate() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(r.QuotedPrice), 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return EstimatedPrice(v, r.Urgency, r.Service()), true
}
