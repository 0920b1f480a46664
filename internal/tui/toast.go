package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toastKind int

const (
	toastSuccess toastKind = iota
	toastError
)

const (
	successToastDuration = 4 * time.Second
	errorToastDuration   = 5 * time.Second
)

// toastMsg asks the root model to show a banner. Sub-models emit these
// instead of touching the toast line themselves.
type toastMsg struct {
	kind toastKind
	text string
}

// toastExpireMsg clears a banner. The id guards against an old timer
// expiring a newer toast.
type toastExpireMsg struct {
	id int
}

func successToastCmd(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: toastSuccess, text: text} }
}

func errorToastCmd(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{kind: toastError, text: text} }
}

// toastModel owns the single banner line. A new toast replaces the current
// one and restarts its expiry timer.
type toastModel struct {
	kind   toastKind
	text   string
	id     int
	active bool
}

// show replaces the current banner and schedules its expiry.
func (m toastModel) show(kind toastKind, text string) (toastModel, tea.Cmd) {
	m.id++
	m.kind = kind
	m.text = text
	m.active = true

	id := m.id
	dur := successToastDuration
	if kind == toastError {
		dur = errorToastDuration
	}
	return m, tea.Tick(dur, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

// expire clears the banner if the timer belongs to it.
func (m toastModel) expire(msg toastExpireMsg) toastModel {
	if msg.id == m.id {
		m.active = false
	}
	return m
}

// View renders the banner line, or an empty string when no toast is active.
func (m toastModel) View() string {
	if !m.active {
		return ""
	}
	if m.kind == toastError {
		return toastErrorStyle.Render(" " + m.text + " ")
	}
	return toastSuccessStyle.Render(" " + m.text + " ")
}
