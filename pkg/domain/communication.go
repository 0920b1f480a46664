package domain

import (
	"regexp"
	"strings"
)

// CommunicationMethod is how the client wants the assigned student to reach
// them. The zero value means "not chosen yet".
type CommunicationMethod string

const (
	CommUnset         CommunicationMethod = ""
	CommWhatsApp      CommunicationMethod = "whatsapp"
	CommPhone         CommunicationMethod = "phone"
	CommEmail         CommunicationMethod = "email"
	CommOnlineMeeting CommunicationMethod = "online-meeting"
	CommMixed         CommunicationMethod = "mixed"
)

// CommunicationMethods is the cycle order in the request form, starting from
// unset.
var CommunicationMethods = []CommunicationMethod{
	CommUnset,
	CommWhatsApp,
	CommPhone,
	CommEmail,
	CommOnlineMeeting,
	CommMixed,
}

// ValidCommunicationMethod returns true for the five selectable methods.
func ValidCommunicationMethod(m CommunicationMethod) bool {
	switch m {
	case CommWhatsApp, CommPhone, CommEmail, CommOnlineMeeting, CommMixed:
		return true
	}
	return false
}

var (
	phoneRe       = regexp.MustCompile(`^[0-9+\-\s()]{10,15}$`)
	emailRe       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	meetingLinkRe = regexp.MustCompile(`^https?://.+`)
)

// contactRule ties a conditionally-required field to its validator. Each
// communication method carries its own rule set, so adding a method means
// adding an entry here rather than another branch in Validate.
type contactRule struct {
	field    string
	validate func(r ProjectRequest) string
}

func phoneRule(r ProjectRequest) string {
	phone := strings.TrimSpace(r.PhoneNumber)
	if phone == "" {
		return "Phone number is required for this communication method"
	}
	if !phoneRe.MatchString(phone) {
		return "Enter a valid phone number (10-15 digits)"
	}
	return ""
}

func emailRule(r ProjectRequest) string {
	email := strings.TrimSpace(r.EmailAddress)
	if email == "" {
		return "Email address is required for this communication method"
	}
	if !emailRe.MatchString(email) {
		return "Enter a valid email address"
	}
	return ""
}

func meetingLinkRule(r ProjectRequest) string {
	link := strings.TrimSpace(r.MeetingLink)
	if link == "" {
		return "Meeting link is required for online meetings"
	}
	if !meetingLinkRe.MatchString(link) {
		return "Meeting link must start with http:// or https://"
	}
	return ""
}

// contactRules maps each method to its required contact fields. Mixed keeps
// the meeting link optional and applies no format check when one is typed —
// matching the live platform behavior, asymmetric with online-meeting.
var contactRules = map[CommunicationMethod][]contactRule{
	CommWhatsApp:      {{FieldPhoneNumber, phoneRule}},
	CommPhone:         {{FieldPhoneNumber, phoneRule}},
	CommMixed:         {{FieldPhoneNumber, phoneRule}},
	CommEmail:         {{FieldEmailAddress, emailRule}},
	CommOnlineMeeting: {{FieldMeetingLink, meetingLinkRule}},
}

// RequiredContactFields returns which contact fields a method makes
// mandatory, in rule order.
func RequiredContactFields(m CommunicationMethod) []string {
	rules := contactRules[m]
	fields := make([]string, 0, len(rules))
	for _, rule := range rules {
		fields = append(fields, rule.field)
	}
	return fields
}
