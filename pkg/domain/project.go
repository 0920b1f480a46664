package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the server-owned lifecycle state of a project.
type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusAccepted   Status = "accepted"
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusDisputed   Status = "disputed"
)

// StatusCycle is the filter cycle order in the works list; the empty string
// means "all".
var StatusCycle = []Status{
	"",
	StatusSubmitted,
	StatusAccepted,
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusDisputed,
}

// Sort fields accepted by the projects endpoint.
const (
	SortByCreatedAt      = "createdAt"
	SortByCompletionDate = "expectedCompletionDate"
	SortByQuotedPrice    = "quotedPrice"
	SortByProjectName    = "projectName"
)

// SortFields is the cycle order for the works list sort key.
var SortFields = []string{SortByCreatedAt, SortByCompletionDate, SortByQuotedPrice, SortByProjectName}

// Progress is the student-reported completion state.
type Progress struct {
	Percentage  int       `json:"percentage"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// ObjectionDetails flags a project whose assigned student disputes its terms.
// An unresolved objection blocks normal status progression until the client
// resubmits edited terms.
type ObjectionDetails struct {
	HasObjection        bool   `json:"hasObjection"`
	IsObjectionResolved bool   `json:"isObjectionResolved"`
	ObjectionReason     string `json:"objectionReason,omitempty"`
	ObjectionMessage    string `json:"objectionMessage,omitempty"`
}

// StudentSummary is the assigned-student slice of a project as returned by
// the projects endpoint.
type StudentSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
}

// Project is a server-owned service request; the client holds read-only
// copies refreshed on fetch.
type Project struct {
	ID                      uuid.UUID           `json:"id"`
	ProjectName             string              `json:"projectName"`
	ServiceCategory         string              `json:"serviceCategory"`
	ProjectDescription      string              `json:"projectDescription"`
	Requirements            string              `json:"requirements"`
	QuotedPrice             float64             `json:"quotedPrice"`
	CompletionTime          int                 `json:"completionTime"`
	Urgency                 Urgency             `json:"urgency"`
	CommunicationPreference CommunicationMethod `json:"communicationPreference"`
	PhoneNumber             string              `json:"phoneNumber,omitempty"`
	EmailAddress            string              `json:"emailAddress,omitempty"`
	MeetingLink             string              `json:"meetingLink,omitempty"`
	AdditionalNotes         string              `json:"additionalNotes,omitempty"`
	Status                  Status              `json:"status"`
	Progress                Progress            `json:"progress"`
	ObjectionDetails        ObjectionDetails    `json:"objectionDetails"`
	AssignedTo              *StudentSummary     `json:"assignedTo,omitempty"`
	ExpectedCompletionDate  time.Time           `json:"expectedCompletionDate"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
}

// NeedsResolution reports whether the project carries an unresolved
// objection.
func (p Project) NeedsResolution() bool {
	return p.ObjectionDetails.HasObjection && !p.ObjectionDetails.IsObjectionResolved
}

// MatchesSearch reports whether the project matches a client-side search
// query: case-insensitive substring over project name, assigned student's
// username, and service category. An empty query matches everything.
func (p Project) MatchesSearch(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.ProjectName), q) {
		return true
	}
	if p.AssignedTo != nil && strings.Contains(strings.ToLower(p.AssignedTo.Username), q) {
		return true
	}
	return strings.Contains(strings.ToLower(p.ServiceCategory), q)
}

// ToRequest pre-fills a request form from the project's current fields, for
// the objection-resolution edit flow.
func (p Project) ToRequest() ProjectRequest {
	req := ProjectRequest{
		ProjectName:             p.ProjectName,
		ServiceCategory:         p.ServiceCategory,
		ProjectDescription:      p.ProjectDescription,
		Requirements:            p.Requirements,
		QuotedPrice:             strconv.FormatFloat(p.QuotedPrice, 'f', -1, 64),
		CompletionTime:          strconv.Itoa(p.CompletionTime),
		Urgency:                 p.Urgency,
		CommunicationPreference: p.CommunicationPreference,
		PhoneNumber:             p.PhoneNumber,
		EmailAddress:            p.EmailAddress,
		MeetingLink:             p.MeetingLink,
		AdditionalNotes:         p.AdditionalNotes,
	}
	if p.Urgency == "" {
		req.Urgency = UrgencyNormal
	}
	if p.AssignedTo != nil {
		req.AssignedTo = p.AssignedTo.ID
	}
	return req
}

// Pagination is the server-reported page state for the projects endpoint.
// TotalProjects reflects the server-side filter only; client-side search
// never alters it.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProjects int  `json:"totalProjects"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
}

// PageWindow returns up to `size` page numbers for the pagination bar,
// starting two pages before the current one and clipped to [1, totalPages].
func PageWindow(current, totalPages, size int) []int {
	if totalPages < 1 || size < 1 {
		return nil
	}
	start := current - 2
	if start < 1 {
		start = 1
	}
	end := start + size - 1
	if end > totalPages {
		end = totalPages
	}
	pages := make([]int, 0, size)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages
}
