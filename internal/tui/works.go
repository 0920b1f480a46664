package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kharthicsj/Axioa-sub005/internal/browser"
	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

// projectsLoadedMsg carries one fetched page. gen tags the fetch generation
// so stale responses are discarded instead of overwriting newer state.
type projectsLoadedMsg struct {
	page *client.ProjectPage
	err  error
	gen  int
}

type copyResultMsg struct{ err error }
type openLinkResultMsg struct{ err error }

// worksModel is the assigned-works dashboard: server-paginated project list
// with status filter, sorting, client-side search, and a detail view.
type worksModel struct {
	client     *client.Client
	projects   []domain.Project
	pagination domain.Pagination
	page       int
	statusIdx  int // index into domain.StatusCycle
	sortIdx    int // index into domain.SortFields
	sortDesc   bool
	search     textinput.Model
	searching  bool
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

func newWorksModel(c *client.Client) worksModel {
	ti := textinput.New()
	ti.Placeholder = "search name, student, category..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = searchStyle
	ti.PlaceholderStyle = inputPlaceholderStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return worksModel{
		client:   c,
		page:     1,
		sortDesc: true,
		search:   ti,
		spin:     sp,
		loading:  true,
	}
}

func (m worksModel) status() domain.Status {
	return domain.StatusCycle[m.statusIdx]
}

func (m worksModel) sortBy() string {
	return domain.SortFields[m.sortIdx]
}

// fetch loads the current page with the current server-side filters. The
// generation is captured at dispatch time.
func (m worksModel) fetch() tea.Cmd {
	c := m.client
	gen := m.gen
	order := "asc"
	if m.sortDesc {
		order = "desc"
	}
	q := client.ProjectQuery{
		Status:    m.status(),
		Page:      m.page,
		Limit:     pageSize,
		SortBy:    m.sortBy(),
		SortOrder: order,
	}
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		page, err := c.GetUserProjects(context.Background(), q)
		return projectsLoadedMsg{page: page, err: err, gen: gen}
	})
}

// refetch bumps the generation and reloads; in-flight responses from before
// the bump are dropped on arrival.
func (m worksModel) refetch() (worksModel, tea.Cmd) {
	m.gen++
	m.loading = true
	return m, m.fetch()
}

func (m worksModel) Init() tea.Cmd {
	return m.fetch()
}

// filtered applies the client-side search to the loaded page. Server totals
// are untouched.
func (m worksModel) filtered() []domain.Project {
	query := m.search.Value()
	if strings.TrimSpace(query) == "" {
		return m.projects
	}
	out := make([]domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if p.MatchesSearch(query) {
			out = append(out, p)
		}
	}
	return out
}

func (m worksModel) Update(msg tea.Msg) (worksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if msg.gen != m.gen {
			return m, nil // stale fetch, a newer one is in flight
		}
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			// Prior list stays intact.
			m.err = msg.err
			return m, errorToastCmd("failed to load projects: " + msg.err.Error())
		}
		m.err = nil
		m.projects = msg.page.Projects
		m.pagination = msg.page.Pagination
		if m.cursor >= len(m.projects) {
			m.cursor = 0
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			return m, errorToastCmd("copy failed")
		}
		return m, successToastCmd("copied to clipboard")

	case openLinkResultMsg:
		if msg.err != nil {
			return m, errorToastCmd("could not open meeting link")
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
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.detail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m worksModel) updateSearch(msg tea.KeyMsg) (worksModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m worksModel) updateList(msg tea.KeyMsg) (worksModel, tea.Cmd) {
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
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case "f":
		m.statusIdx = (m.statusIdx + 1) % len(domain.StatusCycle)
		m.page = 1
		m.cursor = 0
		return m.refetch()
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(domain.SortFields)
		m.page = 1
		m.cursor = 0
		return m.refetch()
	case "o":
		m.sortDesc = !m.sortDesc
		m.page = 1
		m.cursor = 0
		return m.refetch()
	case "h", "left":
		if m.pagination.HasPrevPage {
			m.page--
			m.cursor = 0
			return m.refetch()
		}
	case "l", "right":
		if m.pagination.HasNextPage {
			m.page++
			m.cursor = 0
			return m.refetch()
		}
	case "e":
		if p := m.selected(); p != nil && p.NeedsResolution() {
			project := *p
			return m, func() tea.Msg {
				return showRequestMsg{edit: true, project: &project}
			}
		}
	case "r":
		return m.refetch()
	}
	return m, nil
}

func (m worksModel) updateDetail(msg tea.KeyMsg) (worksModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.detail = false
	case "o":
		if p := m.selected(); p != nil && p.MeetingLink != "" {
			link := p.MeetingLink
			return m, func() tea.Msg {
				return openLinkResultMsg{err: browser.OpenMeetingLink(link)}
			}
		}
	case "c":
		if p := m.selected(); p != nil {
			summary := projectSummary(*p)
			return m, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(summary)}
			}
		}
	case "e":
		if p := m.selected(); p != nil && p.NeedsResolution() {
			project := *p
			return m, func() tea.Msg {
				return showRequestMsg{edit: true, project: &project}
			}
		}
	}
	return m, nil
}

func (m worksModel) selected() *domain.Project {
	list := m.filtered()
	if m.cursor >= len(list) {
		return nil
	}
	return &list[m.cursor]
}

// projectSummary builds the plain-text block copied to the clipboard.
func projectSummary(p domain.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", p.ProjectName, p.ServiceCategory)
	fmt.Fprintf(&b, "status: %s\n", p.Status)
	fmt.Fprintf(&b, "price: %s for %s\n", formatPrice(p.QuotedPrice), formatDays(p.CompletionTime))
	if p.AssignedTo != nil {
		fmt.Fprintf(&b, "assigned: %s\n", p.AssignedTo.Username)
	}
	if !p.ExpectedCompletionDate.IsZero() {
		fmt.Fprintf(&b, "due: %s\n", formatDate(p.ExpectedCompletionDate))
	}
	return b.String()
}

func (m worksModel) View() string {
	if m.detail {
		return m.viewDetail()
	}

	var b strings.Builder

	// Filter / sort header
	statusLabel := "all"
	if s := m.status(); s != "" {
		statusLabel = string(s)
	}
	order := "↓"
	if !m.sortDesc {
		order = "↑"
	}
	b.WriteString(" " + sectionHeaderStyle.Render("ASSIGNED WORKS") +
		"  " + helpKeyStyle.Render("f") + " " + StatusStyle(m.status()).Render(statusLabel) +
		"  " + helpKeyStyle.Render("s") + " " + searchStyle.Render(m.sortBy()+order) + "\n")

	// Search line
	if m.searching || m.search.Value() != "" {
		b.WriteString(" " + m.search.View() + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("/ search...") + "\n")
	}

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.loading && !m.loaded {
		b.WriteString(" " + m.spin.View() + dimStyle.Render(" loading projects..."))
		return b.String()
	}

	list := m.filtered()
	if len(list) == 0 {
		if m.err != nil {
			b.WriteString(" " + dimStyle.Render(fmt.Sprintf("error: %v", m.err)))
		} else if m.search.Value() != "" {
			b.WriteString(" " + dimStyle.Render("no projects match your search"))
		} else {
			b.WriteString(" " + dimStyle.Render("no projects yet (n to request one)"))
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
		p := list[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		nameWidth := m.width - 52
		if nameWidth < 16 {
			nameWidth = 16
		}
		name := truncStr(p.ProjectName, nameWidth)
		marker := " "
		if p.NeedsResolution() {
			marker = warnStyle.Render("!")
		}

		line := cursor + marker + " " +
			nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, name)) + " " +
			StatusStyle(p.Status).Render(fmt.Sprintf("%-11s", p.Status)) + " " +
			priceStyle.Render(fmt.Sprintf("%10s", formatPrice(p.QuotedPrice))) + " " +
			metaStyle.Render(formatTime(p.CreatedAt))
		b.WriteString(line + "\n")
	}

	// Pagination bar: sliding window of page numbers plus server totals.
	b.WriteString("\n " + m.paginationBar() + "\n")

	return truncateToHeight(b.String(), m.height)
}

// paginationBar renders "< 1 2 [3] 4 5 >  37 projects" using the server
// page state.
func (m worksModel) paginationBar() string {
	pg := m.pagination
	if pg.TotalPages == 0 {
		return ""
	}

	var parts []string
	if pg.HasPrevPage {
		parts = append(parts, helpKeyStyle.Render("‹ h"))
	} else {
		parts = append(parts, metaStyle.Render("‹  "))
	}
	for _, p := range domain.PageWindow(pg.CurrentPage, pg.TotalPages, 5) {
		label := fmt.Sprintf("%d", p)
		if p == pg.CurrentPage {
			parts = append(parts, searchStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, dimStyle.Render(label))
		}
	}
	if pg.HasNextPage {
		parts = append(parts, helpKeyStyle.Render("l ›"))
	} else {
		parts = append(parts, metaStyle.Render("  ›"))
	}
	bar := strings.Join(parts, " ")
	bar += "  " + metaStyle.Render(fmt.Sprintf("%d projects", pg.TotalProjects))
	if m.loading {
		bar += " " + m.spin.View()
	}
	return bar
}

func (m worksModel) viewDetail() string {
	p := m.selected()
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(" " + dimStyle.Render("<- back (esc)") + "\n")
	b.WriteString(" " + selectedStyle.Render(p.ProjectName) + "  " + ServiceBadge(p.ServiceCategory) + "\n")

	meta := " " + StatusStyle(p.Status).Render(string(p.Status)) +
		metaStyle.Render(" · ") + priceStyle.Render(formatPrice(p.QuotedPrice)) +
		metaStyle.Render(" · "+formatDays(p.CompletionTime))
	if p.Urgency == domain.UrgencyUrgent {
		meta += metaStyle.Render(" · ") + warnStyle.Render("urgent")
	}
	b.WriteString(meta + "\n\n")

	wrap := m.width - 4
	if wrap < 40 {
		wrap = 40
	}
	b.WriteString(" " + sectionHeaderStyle.Render("DESCRIPTION") + "\n")
	for _, line := range wrapLines(p.ProjectDescription, wrap) {
		b.WriteString(" " + normalStyle.Render(line) + "\n")
	}
	b.WriteString("\n " + sectionHeaderStyle.Render("REQUIREMENTS") + "\n")
	for _, line := range wrapLines(p.Requirements, wrap) {
		b.WriteString(" " + normalStyle.Render(line) + "\n")
	}

	b.WriteString("\n")
	if p.AssignedTo != nil {
		name := p.AssignedTo.Username
		if p.AssignedTo.Name != "" {
			name = p.AssignedTo.Name
		}
		b.WriteString(" " + metaStyle.Render("assigned to: ") + normalStyle.Render(name) + "\n")
	} else {
		b.WriteString(" " + dimStyle.Render("not yet assigned") + "\n")
	}
	if p.Progress.Percentage > 0 {
		b.WriteString(" " + metaStyle.Render("progress: ") + normalStyle.Render(fmt.Sprintf("%d%%", p.Progress.Percentage)) +
			metaStyle.Render("  updated "+formatTime(p.Progress.LastUpdated)) + "\n")
	}
	if !p.ExpectedCompletionDate.IsZero() {
		b.WriteString(" " + metaStyle.Render("due: ") + normalStyle.Render(formatDate(p.ExpectedCompletionDate)) + "\n")
	}

	// Contact info
	if p.PhoneNumber != "" {
		b.WriteString(" " + metaStyle.Render("phone: ") + normalStyle.Render(p.PhoneNumber) + "\n")
	}
	if p.EmailAddress != "" {
		b.WriteString(" " + metaStyle.Render("email: ") + normalStyle.Render(p.EmailAddress) + "\n")
	}
	if p.MeetingLink != "" {
		b.WriteString(" " + metaStyle.Render("meeting: ") + normalStyle.Render(p.MeetingLink) +
			"  " + helpEntry("o", "open") + "\n")
	}
	if p.AdditionalNotes != "" {
		b.WriteString(" " + metaStyle.Render("notes: ") + dimStyle.Render(truncStr(p.AdditionalNotes, 80)) + "\n")
	}

	// Objection block
	if p.ObjectionDetails.HasObjection {
		b.WriteString("\n")
		if p.NeedsResolution() {
			b.WriteString(" " + warnStyle.Render("! objection raised") + "\n")
			if p.ObjectionDetails.ObjectionReason != "" {
				b.WriteString("   " + warnStyle.Render(p.ObjectionDetails.ObjectionReason) + "\n")
			}
			for _, line := range wrapLines(p.ObjectionDetails.ObjectionMessage, wrap-2) {
				b.WriteString("   " + normalStyle.Render(line) + "\n")
			}
			b.WriteString("   " + helpEntry("e", "edit terms to resolve") + "\n")
		} else {
			b.WriteString(" " + successStyle.Render("objection resolved") + "\n")
		}
	}

	return truncateToHeight(b.String(), m.height)
}

// wrapLines is a simple word wrapper for detail bodies.
func wrapLines(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
			} else {
				line += " " + w
			}
		}
		lines = append(lines, line)
	}
	return lines
}
