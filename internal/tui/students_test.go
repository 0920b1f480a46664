package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

func newTestStudentsModel() studentsModel {
	m := newStudentsModel(nil)
	m.width = 100
	m.height = 30
	m.loading = false
	m.loaded = true
	return m
}

func makeTestStudent(name string, skills ...string) domain.Student {
	return domain.Student{
		ID:           uuid.New(),
		Name:         name,
		Username:     strings.ToLower(strings.ReplaceAll(name, " ", "")),
		Rating:       4.5,
		Skills:       skills,
		College:      "IIT Madras",
		Location:     "Chennai",
		Availability: domain.AvailabilityAvailable,
	}
}

func studentPage(students []domain.Student, pg domain.StudentPagination) *client.StudentPage {
	p := &client.StudentPage{Success: true}
	p.Data.Students = students
	p.Data.Pagination = pg
	return p
}

func TestStudentsLoadMoreAccumulates(t *testing.T) {
	m := newTestStudentsModel()
	first := studentPage(
		[]domain.Student{makeTestStudent("Asha Rao", "React")},
		domain.StudentPagination{CurrentPage: 1, TotalPages: 2, TotalStudents: 2, HasNextPage: true},
	)
	m, _ = m.Update(studentsLoadedMsg{page: first, pageNum: 1, gen: m.gen})

	m, cmd := m.Update(keyRunes("m"))
	if !m.loading || cmd == nil {
		t.Fatal("m should start a load-more fetch")
	}

	second := studentPage(
		[]domain.Student{makeTestStudent("Vikram Shah", "Node.js")},
		domain.StudentPagination{CurrentPage: 2, TotalPages: 2, TotalStudents: 2, HasNextPage: false},
	)
	m, _ = m.Update(studentsLoadedMsg{page: second, pageNum: 2, gen: m.gen})

	if len(m.students) != 2 {
		t.Fatalf("accumulated students = %d, want 2", len(m.students))
	}
	view := m.View()
	if !strings.Contains(view, "Asha Rao") || !strings.Contains(view, "Vikram Shah") {
		t.Errorf("both pages should render:\n%s", view)
	}
}

func TestStudentsLoadMoreDisabled(t *testing.T) {
	// While loading.
	m := newTestStudentsModel()
	m.loading = true
	m.pagination = domain.StudentPagination{HasNextPage: true}
	m, cmd := m.Update(keyRunes("m"))
	if cmd != nil {
		t.Error("m should be a no-op while a fetch is in flight")
	}

	// On the last page.
	m2 := newTestStudentsModel()
	m2.pagination = domain.StudentPagination{HasNextPage: false}
	m2, cmd = m2.Update(keyRunes("m"))
	if cmd != nil {
		t.Error("m should be a no-op when HasNextPage is false")
	}
}

func TestStudentsStaleGenerationDiscarded(t *testing.T) {
	m := newTestStudentsModel()
	m, _ = m.Update(studentsLoadedMsg{
		page: studentPage([]domain.Student{makeTestStudent("Current One")},
			domain.StudentPagination{CurrentPage: 1, TotalStudents: 1}),
		pageNum: 1, gen: m.gen,
	})

	m.gen++ // a reload happened; the old fetch resolves late
	m, _ = m.Update(studentsLoadedMsg{
		page: studentPage([]domain.Student{makeTestStudent("Stale One")},
			domain.StudentPagination{CurrentPage: 1, TotalStudents: 1}),
		pageNum: 1, gen: m.gen - 1,
	})

	if len(m.students) != 1 || m.students[0].Name != "Current One" {
		t.Errorf("stale students applied: %+v", m.students)
	}
}

func TestStudentsLocalFilterOverAccumulatedList(t *testing.T) {
	m := newTestStudentsModel()
	m.students = []domain.Student{
		makeTestStudent("Asha Rao", "React", "CSS"),
		makeTestStudent("Vikram Shah", "Python"),
	}

	m.filter.Skills.Add("React")
	list := m.filtered()
	if len(list) != 1 || list[0].Name != "Asha Rao" {
		t.Errorf("skill filter: got %+v", list)
	}

	// Tag changes re-filter locally and never hit the server.
	m, cmd := m.Update(keyRunes("x"))
	if cmd != nil {
		t.Error("removing a tag should not trigger a fetch")
	}
	if len(m.filtered()) != 2 {
		t.Errorf("removing the tag should restore the list, got %d", len(m.filtered()))
	}
}

func TestStudentsCycleAddPredefinedTag(t *testing.T) {
	m := newTestStudentsModel() // service starts at web-development
	m, _ = m.Update(keyRunes("t"))
	if !m.filter.Skills.Contains("React") {
		t.Errorf("t should add the first predefined skill, got %v", m.filter.Skills.Tags())
	}
	m, _ = m.Update(keyRunes("t"))
	if !m.filter.Skills.Contains("Node.js") {
		t.Errorf("second t should add the next predefined skill, got %v", m.filter.Skills.Tags())
	}
}

func TestStudentsServiceCycleReloads(t *testing.T) {
	m := newTestStudentsModel()
	m.students = []domain.Student{makeTestStudent("Old List")}
	prevGen := m.gen

	m, cmd := m.Update(keyRunes("s"))
	if m.service().Slug != "app-development" {
		t.Errorf("service after cycle = %q", m.service().Slug)
	}
	if cmd == nil || !m.loading {
		t.Error("service change should refetch from page 1")
	}
	if m.gen == prevGen {
		t.Error("reload should bump the fetch generation")
	}
	if len(m.students) != 0 {
		t.Error("reload should drop the accumulated list")
	}
}

func TestStudentsDetailRequestAssignsStudent(t *testing.T) {
	m := newTestStudentsModel()
	s := makeTestStudent("Asha Rao", "React")
	m.students = []domain.Student{s}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.detail {
		t.Fatal("enter should open the detail overlay")
	}

	m, cmd := m.Update(keyRunes("n"))
	if cmd == nil {
		t.Fatal("n in detail should emit showRequestMsg")
	}
	msg, ok := cmd().(showRequestMsg)
	if !ok || msg.assignedTo == nil || msg.assignedTo.ID != s.ID {
		t.Errorf("expected create request assigned to student, got %#v", msg)
	}
	if !msg.fromStudents {
		t.Error("request from the student browser must set fromStudents")
	}
}

func TestStudentsSearchInputFiltersLive(t *testing.T) {
	m := newTestStudentsModel()
	m.students = []domain.Student{
		makeTestStudent("Asha Rao", "React"),
		makeTestStudent("Vikram Shah", "Python"),
	}

	m, _ = m.Update(keyRunes("/"))
	if m.inputMode != inputSearch {
		t.Fatal("/ should open the search input")
	}
	m, _ = m.Update(keyRunes("v"))
	if m.filter.Search != "v" {
		t.Errorf("search should apply live, got %q", m.filter.Search)
	}
	if got := len(m.filtered()); got != 1 {
		t.Errorf("filtered = %d, want 1", got)
	}

	// esc clears the search filter.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.filter.Search != "" || m.inputMode != inputNone {
		t.Errorf("esc should clear search, got %q mode=%d", m.filter.Search, m.inputMode)
	}
}

func TestStudentsInitialsFallbackRendering(t *testing.T) {
	m := newTestStudentsModel()
	m.students = []domain.Student{makeTestStudent("Asha Rao")}
	view := m.View()
	if !strings.Contains(view, "(AR)") {
		t.Errorf("expected initials avatar in view:\n%s", view)
	}
}
