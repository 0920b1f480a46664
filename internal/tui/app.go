package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kharthicsj/Axioa-sub005/internal/browser"
	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
)

type view int

const (
	viewWorks view = iota
	viewStudents
)

// profileLoadedMsg carries the result of GetProfile.
type profileLoadedMsg struct {
	profile *client.Profile
	err     error
}

// App is the root Bubbletea model.
type App struct {
	client      *client.Client
	view        view
	works       worksModel
	students    studentsModel
	request     requestModel
	requestOpen bool
	toast       toastModel
	helpOpen    bool
	helpCursor  int
	profile     *client.Profile
	width       int
	height      int
	frame       int // logo shimmer animation frame
}

// NewApp creates a new TUI application.
func NewApp(c *client.Client) App {
	return App{
		client:   c,
		works:    newWorksModel(c),
		students: newStudentsModel(c),
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.works.Init(), shimmerTickCmd(), a.loadProfile())
}

func (a App) loadProfile() tea.Cmd {
	c := a.client
	return func() tea.Msg {
		p, err := c.GetProfile(context.Background())
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + toast(1) + help(1) = 5 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 5}
		a.works, _ = a.works.Update(bodyMsg)
		a.students, _ = a.students.Update(bodyMsg)
		a.request, _ = a.request.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case profileLoadedMsg:
		if msg.err == nil {
			a.profile = msg.profile
		}
		return a, nil

	case toastMsg:
		var cmd tea.Cmd
		a.toast, cmd = a.toast.show(msg.kind, msg.text)
		return a, cmd

	case toastExpireMsg:
		a.toast = a.toast.expire(msg)
		return a, nil

	case showRequestMsg:
		a.requestOpen = true
		a.request = newRequestModel(a.client, msg)
		if a.request.width == 0 {
			a.request.width = a.width
			a.request.height = a.height - 5
		}
		return a, nil

	case projectSavedMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.request, cmd = a.request.Update(msg)
		cmds = append(cmds, cmd)

		if msg.err != nil {
			cmds = append(cmds, errorToastCmd(msg.err.Error()))
			return a, tea.Batch(cmds...)
		}
		if msg.edit {
			cmds = append(cmds, successToastCmd("objection resolved, terms resubmitted"))
		} else {
			cmds = append(cmds, successToastCmd("request submitted"))
		}
		// Refresh whichever list the form came from. A create launched from
		// the student browser reloads it from page 1.
		if msg.fromStudents {
			a.students, cmd = a.students.reload()
		} else {
			a.works, cmd = a.works.refetch()
		}
		cmds = append(cmds, cmd)
		return a, tea.Batch(cmds...)

	case requestClosedMsg:
		a.request, _ = a.request.Update(msg)
		a.requestOpen = false
		return a, nil

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "?", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.OpenMeetingLink(item.url) //nolint:errcheck // best-effort open
				}
			}
			return a, nil
		}

		// Request form captures all keys when open
		if a.requestOpen {
			var cmd tea.Cmd
			a.request, cmd = a.request.Update(msg)
			if a.request.closed {
				a.requestOpen = false
			}
			return a, cmd
		}

		// Global keys (only when no inline input has focus)
		if !a.isEditing() {
			switch msg.String() {
			case "ctrl+c", "q":
				return a, tea.Quit
			case "?":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "1":
				if a.view != viewWorks {
					a.view = viewWorks
					return a, a.works.fetch()
				}
				return a, nil
			case "2":
				if a.view != viewStudents {
					a.view = viewStudents
					if !a.students.loaded {
						return a, a.students.fetchPage(1)
					}
				}
				return a, nil
			case "n":
				// Inside a student detail the request pre-assigns that
				// student; the model emits its own showRequestMsg.
				if a.view == viewStudents && a.students.detail {
					break
				}
				return a, func() tea.Msg {
					return showRequestMsg{fromStudents: a.view == viewStudents}
				}
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewWorks:
		a.works, cmd = a.works.Update(msg)
	case viewStudents:
		a.students, cmd = a.students.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	if a.requestOpen {
		return true
	}
	switch a.view {
	case viewWorks:
		return a.works.searching
	case viewStudents:
		return a.students.inputMode != inputNone
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Identity line below the logo
	identity := ""
	if a.profile != nil {
		identity = metaStyle.Render(a.profile.Name + " · @" + a.profile.Username)
	}
	if identity != "" {
		idPad := (a.width - lipgloss.Width(identity)) / 2
		if idPad < 0 {
			idPad = 0
		}
		header += "\n" + strings.Repeat(" ", idPad) + identity
	} else {
		header += "\n"
	}

	// Tab bar: 2 equal-width columns spread across the terminal
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Works", viewWorks},
		{"2", "Students", viewStudents},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view && !a.requestOpen {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		if t.v == viewWorks && a.works.pagination.TotalProjects > 0 {
			label += " " + dimStyle.Render(fmt.Sprintf("%d", a.works.pagination.TotalProjects))
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}
	centeredTabs := tabBar.String()

	// Body + per-view help bar
	var body string
	var help string
	switch {
	case a.helpOpen:
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("esc", "close")
	case a.requestOpen:
		body = a.request.View()
		help = " " + helpEntry("tab", "next") + "  " + helpEntry("h/l", "cycle") + "  " + helpEntry("ctrl+s", "submit") + "  " + helpEntry("esc", "cancel")
	case a.view == viewWorks:
		body = a.works.View()
		if a.works.detail {
			help = " " + helpEntry("o", "open link") + "  " + helpEntry("c", "copy") + "  " + helpEntry("e", "resolve") + "  " + helpEntry("esc", "back")
		} else if a.works.searching {
			help = " " + helpEntry("enter", "done") + "  " + helpEntry("esc", "clear")
		} else {
			help = " " + helpEntry("1-2", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("h/l", "page") + "  " + helpEntry("f", "status") + "  " + helpEntry("s", "sort") + "  " + helpEntry("o", "order") + "  " + helpEntry("n", "new") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	default:
		body = a.students.View()
		if a.students.detail {
			help = " " + helpEntry("n", "request") + "  " + helpEntry("esc", "back")
		} else if a.students.inputMode != inputNone {
			help = " " + helpEntry("enter", "apply") + "  " + helpEntry("esc", "clear")
		} else {
			help = " " + helpEntry("1-2", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("t", "tag") + "  " + helpEntry("s", "service") + "  " + helpEntry("m", "more") + "  " + helpEntry("n", "new") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	}

	toastLine := " " + a.toast.View()

	// Chrome budget: header(2) + tabs(1) + toast(1) + help(1) = 5 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-5), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s", header, centeredTabs, body, toastLine, help)
}
