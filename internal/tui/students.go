package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

// studentsLoadedMsg carries one fetched page of students. pageNum 1 replaces
// the accumulated list; later pages append. gen guards against stale
// responses.
type studentsLoadedMsg struct {
	page    *client.StudentPage
	pageNum int
	err     error
	gen     int
}

type studentInput int

const (
	inputNone studentInput = iota
	inputSearch
	inputTag
	inputLocation
	inputCollege
)

// studentsModel is the student browser: incremental server loading by
// service category plus a client-side filter pass over the accumulated
// list. The local filters run over whatever has been loaded so far, so
// results are partial until every page is fetched.
type studentsModel struct {
	client     *client.Client
	serviceIdx int // index into domain.ServiceSlugs
	students   []domain.Student
	pagination domain.StudentPagination
	filter     domain.StudentFilter
	input      textinput.Model
	inputMode  studentInput
	cursor     int
	detail     bool
	loading    bool
	loaded     bool
	gen        int
	spin       spinner.Model
	err        error
	width      int
	height     int
}

func newStudentsModel(c *client.Client) studentsModel {
	ti := textinput.New()
	ti.CharLimit = 60
	ti.Width = 40
	ti.PromptStyle = searchStyle
	ti.PlaceholderStyle = inputPlaceholderStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return studentsModel{
		client:  c,
		input:   ti,
		spin:    sp,
		loading: true,
	}
}

func (m studentsModel) service() domain.ServiceConfig {
	return domain.ServiceFor(domain.ServiceSlugs[m.serviceIdx])
}

// fetchPage loads one server page for the current service. The predefined
// skill list for the category is the server-side filter; local skill tags
// never reach the server.
func (m studentsModel) fetchPage(page int) tea.Cmd {
	c := m.client
	gen := m.gen
	cfg := m.service()
	q := client.StudentQuery{
		Service: cfg.Slug,
		Skills:  cfg.Skills,
		Page:    page,
		Limit:   pageSize,
	}
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := c.ListAvailableStudents(context.Background(), q)
		return studentsLoadedMsg{page: result, pageNum: page, err: err, gen: gen}
	})
}

// reload drops the accumulated list and starts over from page 1.
func (m studentsModel) reload() (studentsModel, tea.Cmd) {
	m.gen++
	m.loading = true
	m.students = nil
	m.pagination = domain.StudentPagination{}
	m.cursor = 0
	m.detail = false
	return m, m.fetchPage(1)
}

func (m studentsModel) Init() tea.Cmd {
	return m.fetchPage(1)
}

func (m studentsModel) filtered() []domain.Student {
	return m.filter.Apply(m.students)
}

func (m studentsModel) Update(msg tea.Msg) (studentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case studentsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil // stale fetch
		}
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			return m, errorToastCmd("failed to load students: " + msg.err.Error())
		}
		m.err = nil
		if msg.pageNum == 1 {
			m.students = msg.page.Data.Students
		} else {
			m.students = append(m.students, msg.page.Data.Students...)
		}
		m.pagination = msg.page.Data.Pagination
		if m.cursor >= len(m.filtered()) {
			m.cursor = 0
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.updateInput(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m studentsModel) startInput(mode studentInput) (studentsModel, tea.Cmd) {
	m.inputMode = mode
	switch mode {
	case inputSearch:
		m.input.Prompt = "/ "
		m.input.Placeholder = "search students..."
		m.input.SetValue(m.filter.Search)
	case inputTag:
		m.input.Prompt = "+ "
		m.input.Placeholder = "skill tag..."
		m.input.SetValue("")
	case inputLocation:
		m.input.Prompt = "@ "
		m.input.Placeholder = "location..."
		m.input.SetValue(m.filter.Location)
	case inputCollege:
		m.input.Prompt = "# "
		m.input.Placeholder = "college..."
		m.input.SetValue(m.filter.College)
	}
	m.input.Focus()
	return m, textinput.Blink
}

func (m studentsModel) updateInput(msg tea.KeyMsg) (studentsModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.inputMode == inputTag {
			m.filter.Skills.Add(m.input.Value())
		}
		m.inputMode = inputNone
		m.input.Blur()
		m.cursor = 0
		return m, nil
	case "esc":
		switch m.inputMode {
		case inputSearch:
			m.filter.Search = ""
		case inputLocation:
			m.filter.Location = ""
		case inputCollege:
			m.filter.College = ""
		}
		m.inputMode = inputNone
		m.input.Blur()
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Search, location, and college filter live; tags commit on enter.
	switch m.inputMode {
	case inputSearch:
		m.filter.Search = m.input.Value()
	case inputLocation:
		m.filter.Location = m.input.Value()
	case inputCollege:
		m.filter.College = m.input.Value()
	}
	m.cursor = 0
	return m, cmd
}

func (m studentsModel) updateList(msg tea.KeyMsg) (studentsModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.filtered())-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if len(m.filtered()) > 0 {
			m.detail = true
		}
	case "/":
		return m.startInput(inputSearch)
	case "a":
		return m.startInput(inputTag)
	case "@":
		return m.startInput(inputLocation)
	case "#":
		return m.startInput(inputCollege)
	case "t":
		// Cycle-add the next predefined skill for this service. Local only.
		m.filter.Skills.AddFromList(m.service().Skills)
		m.cursor = 0
	case "x":
		m.filter.Skills.RemoveLast()
		m.cursor = 0
	case "s":
		m.serviceIdx = (m.serviceIdx + 1) % len(domain.ServiceSlugs)
		return m.reload()
	case "m":
		// Load more: disabled while a fetch is in flight or on the last page.
		if !m.loading && m.pagination.HasNextPage {
			m.gen++
			m.loading = true
			return m, m.fetchPage(m.pagination.CurrentPage + 1)
		}
	case "r":
		return m.reload()
	}
	return m, nil
}

func (m studentsModel) updateDetail(msg tea.KeyMsg) (studentsModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
	case "n":
		if s := m.selected(); s != nil {
			student := *s
			return m, func() tea.Msg {
				return showRequestMsg{assignedTo: &student, fromStudents: true}
			}
		}
	}
	return m, nil
}

func (m studentsModel) selected() *domain.Student {
	list := m.filtered()
	if m.cursor >= len(list) {
		return nil
	}
	return &list[m.cursor]
}

func (m studentsModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder

	cfg := m.service()
	b.WriteString(" " + sectionHeaderStyle.Render("FIND STUDENTS") +
		"  " + helpKeyStyle.Render("s") + " " + ServiceStyle(cfg.Slug).Render(cfg.Title) + "\n")

	// Active filter line
	if m.inputMode != inputNone {
		b.WriteString(" " + m.input.View() + "\n")
	} else {
		var parts []string
		if m.filter.Search != "" {
			parts = append(parts, searchStyle.Render("/ "+m.filter.Search))
		}
		if m.filter.Location != "" {
			parts = append(parts, accentStyle.Render("@ "+m.filter.Location))
		}
		if m.filter.College != "" {
			parts = append(parts, accentStyle.Render("# "+m.filter.College))
		}
		if len(parts) == 0 {
			b.WriteString(" " + dimStyle.Render("/ search  a tag  @ location  # college") + "\n")
		} else {
			b.WriteString(" " + strings.Join(parts, "  ") + "\n")
		}
	}

	// Skill tag bar
	if tags := m.filter.Skills.Tags(); len(tags) > 0 {
		var rendered []string
		for _, tag := range tags {
			rendered = append(rendered, ServiceStyle(cfg.Slug).Render("["+tag+"]"))
		}
		b.WriteString(" " + strings.Join(rendered, " ") + "  " + helpEntry("x", "remove") + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("no skill tags (t to add from "+cfg.Title+")") + "\n")
	}

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading && !m.loaded {
		b.WriteString(" " + m.spin.View() + dimStyle.Render(" loading students..."))
		return b.String()
	}

	list := m.filtered()
	if len(list) == 0 {
		if m.err != nil {
			b.WriteString(" " + dimStyle.Render(fmt.Sprintf("error: %v", m.err)))
		} else if len(m.students) > 0 {
			b.WriteString(" " + dimStyle.Render("no loaded students match your filters"))
		} else {
			b.WriteString(" " + dimStyle.Render("no students available for this service"))
		}
		return b.String()
	}

	maxVisible := m.height - 8
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(list) && i < start+maxVisible; i++ {
		s := list[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		nameWidth := m.width - 46
		if nameWidth < 14 {
			nameWidth = 14
		}
		avatar := metaStyle.Render("(" + s.Initials() + ")")
		line := cursor + avatar + " " +
			nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, truncStr(s.Name, nameWidth))) + " " +
			ratingStyle.Render(fmt.Sprintf("★%.1f", s.Rating)) + " " +
			AvailabilityStyle(s.Availability).Render(fmt.Sprintf("%-11s", s.Availability)) + " " +
			metaStyle.Render(fmt.Sprintf("%d done", s.CompletedProjects))
		b.WriteString(line + "\n")
	}

	// Load-more footer with loaded/total counts.
	b.WriteString("\n ")
	loadedLine := fmt.Sprintf("%d of %d loaded", len(m.students), m.pagination.TotalStudents)
	if m.filter.Search != "" || m.filter.Skills.Len() > 0 || m.filter.Location != "" || m.filter.College != "" {
		loadedLine = fmt.Sprintf("%d match · %s", len(list), loadedLine)
	}
	b.WriteString(metaStyle.Render(loadedLine))
	if m.loading {
		b.WriteString("  " + m.spin.View())
	} else if m.pagination.HasNextPage {
		b.WriteString("  " + helpEntry("m", "load more"))
	}
	b.WriteString("\n")

	return truncateToHeight(b.String(), m.height)
}

func (m studentsModel) viewDetail() string {
	s := m.selected()
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")

	name := s.Name
	if name == "" {
		name = s.Username
	}
	b.WriteString(" " + selectedStyle.Render("("+s.Initials()+") "+name) +
		"  " + AvailabilityStyle(s.Availability).Render(string(s.Availability)) + "\n")

	meta := " " + ratingStyle.Render(fmt.Sprintf("★%.1f", s.Rating)) +
		metaStyle.Render(fmt.Sprintf(" · %d projects · %.0f%% completion · %d pts",
			s.CompletedProjects, s.CompletionRate, s.TotalPoints))
	b.WriteString(meta + "\n\n")

	if s.College != "" {
		b.WriteString(" " + metaStyle.Render("college: ") + normalStyle.Render(s.College) + "\n")
	}
	if s.Location != "" {
		b.WriteString(" " + metaStyle.Render("location: ") + normalStyle.Render(s.Location) + "\n")
	}
	if len(s.Skills) > 0 {
		b.WriteString(" " + metaStyle.Render("skills: ") + normalStyle.Render(strings.Join(s.Skills, ", ")) + "\n")
	}

	b.WriteString("\n " + sectionHeaderStyle.Render("PERFORMANCE") + "\n")
	b.WriteString(" " + metaStyle.Render("on-time delivery: ") + normalStyle.Render(fmt.Sprintf("%.0f%%", s.Metrics.OnTimeDelivery)) + "\n")
	b.WriteString(" " + metaStyle.Render("avg response: ") + normalStyle.Render(fmt.Sprintf("%.1fh", s.Metrics.AvgResponseHours)) + "\n")
	b.WriteString(" " + metaStyle.Render("repeat clients: ") + normalStyle.Render(fmt.Sprintf("%d", s.Metrics.RepeatClients)) + "\n")

	b.WriteString("\n " + helpEntry("n", "request this student") + "\n")

	return truncateToHeight(b.String(), m.height)
}
