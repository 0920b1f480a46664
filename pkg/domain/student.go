package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Availability is a student's self-reported capacity for new work.
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

// PerformanceMetrics are server-computed quality signals for a student.
type PerformanceMetrics struct {
	OnTimeDelivery   float64 `json:"onTimeDelivery"`
	AvgResponseHours float64 `json:"avgResponseHours"`
	RepeatClients    int     `json:"repeatClients"`
}

// Student is a service provider as returned by the students endpoint. The
// client holds read-only copies; optional fields (college, location, picture)
// may be empty and degrade to fallback rendering.
type Student struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Username          string             `json:"username"`
	Rating            float64            `json:"rating"`
	Skills            []string           `json:"skills,omitempty"`
	College           string             `json:"college,omitempty"`
	Location          string             `json:"location,omitempty"`
	CompletionRate    float64            `json:"completionRate"`
	CompletedProjects int                `json:"completedProjects"`
	TotalPoints       int                `json:"totalPoints"`
	Availability      Availability       `json:"availability"`
	Metrics           PerformanceMetrics `json:"performanceMetrics"`
	ProfilePicture    string             `json:"profilePicture,omitempty"`
	JoinedAt          time.Time          `json:"joinedAt"`
}

// Initials returns up to two uppercase initials for avatar fallback when no
// profile picture is available.
func (s Student) Initials() string {
	fields := strings.Fields(s.Name)
	switch len(fields) {
	case 0:
		return "?"
	case 1:
		return strings.ToUpper(firstRune(fields[0]))
	default:
		return strings.ToUpper(firstRune(fields[0]) + firstRune(fields[1]))
	}
}

// firstRune slices the leading rune, not the leading byte, so multibyte
// names keep valid UTF-8.
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

// StudentFilter is the client-side second filter pass applied to the whole
// accumulated student list. It layers atop server pagination and is never
// sent to the server, so results over a partially-loaded list are incomplete
// until every page has been fetched — documented platform behavior.
type StudentFilter struct {
	Search   string
	Skills   SkillSet
	Location string
	College  string
}

// Matches reports whether a student passes every active filter. Skill tags
// match when the selected set intersects the student's skills.
func (f StudentFilter) Matches(s Student) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		hit := strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.College), q) ||
			strings.Contains(strings.ToLower(s.Location), q)
		if !hit {
			for _, skill := range s.Skills {
				if strings.Contains(strings.ToLower(skill), q) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}

	if f.Skills.Len() > 0 && !f.Skills.Intersects(s.Skills) {
		return false
	}

	if loc := strings.ToLower(strings.TrimSpace(f.Location)); loc != "" {
		if !strings.Contains(strings.ToLower(s.Location), loc) {
			return false
		}
	}
	if col := strings.ToLower(strings.TrimSpace(f.College)); col != "" {
		if !strings.Contains(strings.ToLower(s.College), col) {
			return false
		}
	}
	return true
}

// Apply returns the students passing the filter, preserving order.
func (f StudentFilter) Apply(students []Student) []Student {
	out := make([]Student, 0, len(students))
	for _, s := range students {
		if f.Matches(s) {
			out = append(out, s)
		}
	}
	return out
}

// SkillSet is a deduplicated, ordered set of skill tags. Dedup is
// case-insensitive; the first-added casing is kept for display.
type SkillSet struct {
	tags []string
}

// Add inserts a tag if not already present, reporting whether it was added.
func (s *SkillSet) Add(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || s.Contains(tag) {
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

// AddFromList adds the first tag from the predefined list that is not
// already selected, returning it.
func (s *SkillSet) AddFromList(list []string) (string, bool) {
	for _, tag := range list {
		if s.Add(tag) {
			return tag, true
		}
	}
	return "", false
}

// Remove deletes a tag (case-insensitive), reporting whether it was present.
func (s *SkillSet) Remove(tag string) bool {
	for i, t := range s.tags {
		if strings.EqualFold(t, tag) {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLast pops the most recently added tag.
func (s *SkillSet) RemoveLast() (string, bool) {
	if len(s.tags) == 0 {
		return "", false
	}
	last := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1]
	return last, true
}

// Contains reports case-insensitive membership.
func (s SkillSet) Contains(tag string) bool {
	for _, t := range s.tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Intersects reports whether any of the given skills is selected.
func (s SkillSet) Intersects(skills []string) bool {
	for _, skill := range skills {
		if s.Contains(skill) {
			return true
		}
	}
	return false
}

// Tags returns the tags in insertion order.
func (s SkillSet) Tags() []string {
	return s.tags
}

// Len returns the number of selected tags.
func (s SkillSet) Len() int {
	return len(s.tags)
}

// StudentPagination is the server-reported page state for the students
// endpoint.
type StudentPagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalStudents int  `json:"totalStudents"`
	HasPrevPage   bool `json:"hasPrevPage"`
	HasNextPage   bool `json:"hasNextPage"`
}
