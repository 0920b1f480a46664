package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRequest returns a request that passes full validation for the given
// service; tests break one field at a time from here.
func validRequest(service string) ProjectRequest {
	cfg := ServiceFor(service)
	return ProjectRequest{
		ProjectName:             "Portfolio site",
		ServiceCategory:         cfg.Slug,
		ProjectDescription:      "A three-page portfolio with a contact form",
		Requirements:            "Responsive layout, dark mode",
		QuotedPrice:             fmt.Sprintf("%d", cfg.MinPrice),
		CompletionTime:          fmt.Sprintf("%d", cfg.MinDays),
		Urgency:                 UrgencyNormal,
		CommunicationPreference: CommEmail,
		EmailAddress:            "client@example.com",
	}
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	for _, slug := range ServiceSlugs {
		errs := validRequest(slug).Validate()
		assert.Empty(t, errs, "service %s: %v", slug, errs)
	}
}

func TestValidatePriceBoundsInclusive(t *testing.T) {
	for _, slug := range ServiceSlugs {
		cfg := ServiceFor(slug)
		tests := []struct {
			price string
			ok    bool
		}{
			{fmt.Sprintf("%d", cfg.MinPrice), true},
			{fmt.Sprintf("%d", cfg.MaxPrice), true},
			{fmt.Sprintf("%d", cfg.MinPrice-1), false},
			{fmt.Sprintf("%d", cfg.MaxPrice+1), false},
		}
		for _, tt := range tests {
			req := validRequest(slug)
			req.QuotedPrice = tt.price
			_, bad := req.Validate()[FieldQuotedPrice]
			assert.Equal(t, !tt.ok, bad, "service %s price %s", slug, tt.price)
		}
	}
}

func TestValidateCompletionTimeBoundsInclusive(t *testing.T) {
	// Boundary days valid, one day beyond range invalid (resume-services:
	// 1 and 7 valid; 0 and 8 invalid).
	for _, slug := range ServiceSlugs {
		cfg := ServiceFor(slug)
		tests := []struct {
			days string
			ok   bool
		}{
			{fmt.Sprintf("%d", cfg.MinDays), true},
			{fmt.Sprintf("%d", cfg.MaxDays), true},
			{fmt.Sprintf("%d", cfg.MinDays-1), false},
			{fmt.Sprintf("%d", cfg.MaxDays+1), false},
		}
		for _, tt := range tests {
			req := validRequest(slug)
			req.CompletionTime = tt.days
			_, bad := req.Validate()[FieldCompletionTime]
			assert.Equal(t, !tt.ok, bad, "service %s days %s", slug, tt.days)
		}
	}
}

func TestValidateRejectsNonNumericAmounts(t *testing.T) {
	req := validRequest("web-development")
	req.QuotedPrice = "ten thousand"
	req.CompletionTime = "2.5"

	errs := req.Validate()
	assert.Equal(t, "Quoted price must be a number", errs[FieldQuotedPrice])
	assert.Equal(t, "Completion time must be a whole number of days", errs[FieldCompletionTime])
}

func TestValidateRejectsNaNPrice(t *testing.T) {
	// ParseFloat accepts NaN spellings and every range comparison against
	// NaN is false, so without an explicit check the request would sail
	// through validation and only fail at JSON encoding.
	for _, price := range []string{"NaN", "nan", "-NaN"} {
		req := validRequest("web-development")
		req.QuotedPrice = price
		errs := req.Validate()
		assert.Equal(t, "Quoted price must be a number", errs[FieldQuotedPrice], "price %q", price)
	}

	// Infinities are out of every range and report as such.
	req := validRequest("web-development")
	req.QuotedPrice = "+Inf"
	assert.Contains(t, req.Validate()[FieldQuotedPrice], "must be between")
}

func TestValidatePhoneNumber(t *testing.T) {
	tests := []struct {
		name   string
		method CommunicationMethod
		phone  string
		ok     bool
	}{
		{"phone too short", CommPhone, "123", false},
		{"phone valid with country code", CommPhone, "+91 9876543210", true},
		{"whatsapp empty", CommWhatsApp, "", false},
		{"whatsapp valid", CommWhatsApp, "9876543210", true},
		{"mixed requires phone", CommMixed, "", false},
		{"mixed valid", CommMixed, "(987) 654-3210", true},
		{"phone with letters", CommPhone, "98765abcde", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("web-development")
			req.CommunicationPreference = tt.method
			req.EmailAddress = ""
			req.PhoneNumber = tt.phone
			_, bad := req.Validate()[FieldPhoneNumber]
			assert.Equal(t, !tt.ok, bad)
		})
	}
}

func TestValidateEmailAddress(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"bad", false},
		{"a@b.co", true},
		{"", false},
		{"no spaces@x.com", false},
		{"user@host", false},
	}
	for _, tt := range tests {
		req := validRequest("web-development")
		req.CommunicationPreference = CommEmail
		req.EmailAddress = tt.email
		_, bad := req.Validate()[FieldEmailAddress]
		assert.Equal(t, !tt.ok, bad, "email %q", tt.email)
	}
}

func TestValidateMeetingLink(t *testing.T) {
	tests := []struct {
		link string
		ok   bool
	}{
		{"ftp://x", false},
		{"https://meet.google.com/abc", true},
		{"http://zoom.us/j/1", true},
		{"", false},
		{"meet.google.com/abc", false},
	}
	for _, tt := range tests {
		req := validRequest("web-development")
		req.CommunicationPreference = CommOnlineMeeting
		req.EmailAddress = ""
		req.MeetingLink = tt.link
		_, bad := req.Validate()[FieldMeetingLink]
		assert.Equal(t, !tt.ok, bad, "link %q", tt.link)
	}
}

func TestValidateMixedMeetingLinkIsOptionalAndUnchecked(t *testing.T) {
	req := validRequest("web-development")
	req.CommunicationPreference = CommMixed
	req.EmailAddress = ""
	req.PhoneNumber = "+91 9876543210"

	// Absent link: fine.
	req.MeetingLink = ""
	assert.Empty(t, req.Validate())

	// Present but malformed link: still fine — mixed mode applies no format
	// check, unlike online-meeting.
	req.MeetingLink = "not-a-url"
	assert.Empty(t, req.Validate())
}

func TestValidateEmptyFormReportsAllFieldsAtOnce(t *testing.T) {
	errs := ProjectRequest{ServiceCategory: "web-development"}.Validate()

	want := []string{
		FieldProjectName,
		FieldProjectDescription,
		FieldRequirements,
		FieldQuotedPrice,
		FieldCompletionTime,
		FieldCommunicationPreference,
	}
	require.Len(t, errs, len(want))
	for _, field := range want {
		assert.Contains(t, errs, field)
	}
}

func TestValidateUnknownServiceFallsBack(t *testing.T) {
	// Unknown category validates against web-development bounds, no panic.
	req := validRequest("web-development")
	req.ServiceCategory = "quantum-flux-calibration"
	req.QuotedPrice = "5000"
	req.CompletionTime = "3"
	assert.Empty(t, req.Validate())

	req.QuotedPrice = "4999"
	assert.Contains(t, req.Validate(), FieldQuotedPrice)
}

func TestBoundsWarning(t *testing.T) {
	req := NewProjectRequest("web-development")

	req.QuotedPrice = "100"
	assert.NotEmpty(t, req.BoundsWarning(FieldQuotedPrice))

	req.QuotedPrice = "10000"
	assert.Empty(t, req.BoundsWarning(FieldQuotedPrice))

	// Partial input never warns.
	req.QuotedPrice = "1e"
	assert.Empty(t, req.BoundsWarning(FieldQuotedPrice))

	// NaN is not a range violation, it is a non-number; no warning.
	req.QuotedPrice = "NaN"
	assert.Empty(t, req.BoundsWarning(FieldQuotedPrice))

	req.CompletionTime = "500"
	assert.NotEmpty(t, req.BoundsWarning(FieldCompletionTime))
	req.CompletionTime = "30"
	assert.Empty(t, req.BoundsWarning(FieldCompletionTime))
}

func TestEstimate(t *testing.T) {
	req := NewProjectRequest("web-development")
	req.QuotedPrice = "10000"

	est, ok := req.Estimate()
	require.True(t, ok)
	assert.InDelta(t, 10000, est, 0.001)

	req.Urgency = UrgencyUrgent
	est, _ = req.Estimate()
	assert.InDelta(t, 15000, est, 0.001)

	req.QuotedPrice = "soon"
	_, ok = req.Estimate()
	assert.False(t, ok)

	req.QuotedPrice = "NaN"
	_, ok = req.Estimate()
	assert.False(t, ok)
}

func TestRequiredContactFields(t *testing.T) {
	assert.Equal(t, []string{FieldPhoneNumber}, RequiredContactFields(CommWhatsApp))
	assert.Equal(t, []string{FieldPhoneNumber}, RequiredContactFields(CommMixed))
	assert.Equal(t, []string{FieldEmailAddress}, RequiredContactFields(CommEmail))
	assert.Equal(t, []string{FieldMeetingLink}, RequiredContactFields(CommOnlineMeeting))
	assert.Empty(t, RequiredContactFields(CommUnset))
}
