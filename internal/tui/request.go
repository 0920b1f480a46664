package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Kharthicsj/Axioa-sub005/pkg/client"
	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

type reqField int

const (
	rfProjectName reqField = iota
	rfService
	rfDescription
	rfRequirements
	rfQuotedPrice
	rfCompletionTime
	rfUrgency
	rfCommMethod
	rfPhoneNumber
	rfEmailAddress
	rfMeetingLink
	rfNotes
	numReqFields
)

// closeDelay is how long the success toast stays before the form closes.
const closeDelay = 1500 * time.Millisecond

// resolutionMessage is the fixed note sent alongside edited terms when
// resolving a student objection.
const resolutionMessage = "Updated project details to address your concerns"

// showRequestMsg opens the request form. Edit mode carries the disputed
// project; create mode may carry a pre-assigned student.
type showRequestMsg struct {
	edit         bool
	project      *domain.Project
	assignedTo   *domain.Student
	fromStudents bool
}

// projectSavedMsg is the result of a create or resolve-objection call.
type projectSavedMsg struct {
	err          error
	edit         bool
	fromStudents bool
}

// requestClosedMsg fires after the success close delay.
type requestClosedMsg struct{}

// requestModel is the modal project-request form. A fresh model is built
// per open; state never leaks between uses.
type requestModel struct {
	client       *client.Client
	edit         bool
	project      *domain.Project
	fromStudents bool
	req          domain.ProjectRequest
	focus        reqField
	errs         map[string]string
	warnings     map[string]string
	submitting   bool
	done         bool
	closed       bool
	width        int
	height       int
}

func newRequestModel(c *client.Client, msg showRequestMsg) requestModel {
	m := requestModel{
		client:       c,
		edit:         msg.edit,
		project:      msg.project,
		fromStudents: msg.fromStudents,
		warnings:     make(map[string]string),
	}
	if msg.edit && msg.project != nil {
		m.req = msg.project.ToRequest()
	} else {
		m.req = domain.NewProjectRequest(domain.DefaultService)
		if msg.assignedTo != nil {
			m.req.AssignedTo = msg.assignedTo.ID
		}
	}
	return m
}

func (m requestModel) Init() tea.Cmd {
	return nil
}

// visibleFields returns the form rows in order, skipping contact fields the
// current communication method does not use.
func (m requestModel) visibleFields() []reqField {
	fields := []reqField{
		rfProjectName, rfService, rfDescription, rfRequirements,
		rfQuotedPrice, rfCompletionTime, rfUrgency, rfCommMethod,
	}
	switch m.req.CommunicationPreference {
	case domain.CommWhatsApp, domain.CommPhone:
		fields = append(fields, rfPhoneNumber)
	case domain.CommEmail:
		fields = append(fields, rfEmailAddress)
	case domain.CommOnlineMeeting:
		fields = append(fields, rfMeetingLink)
	case domain.CommMixed:
		fields = append(fields, rfPhoneNumber, rfMeetingLink)
	}
	return append(fields, rfNotes)
}

// fieldKey maps a form row to its validation-map key, or "" for rows that
// never carry errors.
func fieldKey(f reqField) string {
	switch f {
	case rfProjectName:
		return domain.FieldProjectName
	case rfDescription:
		return domain.FieldProjectDescription
	case rfRequirements:
		return domain.FieldRequirements
	case rfQuotedPrice:
		return domain.FieldQuotedPrice
	case rfCompletionTime:
		return domain.FieldCompletionTime
	case rfCommMethod:
		return domain.FieldCommunicationPreference
	case rfPhoneNumber:
		return domain.FieldPhoneNumber
	case rfEmailAddress:
		return domain.FieldEmailAddress
	case rfMeetingLink:
		return domain.FieldMeetingLink
	}
	return ""
}

func (m *requestModel) fieldPtr(f reqField) *string {
	switch f {
	case rfProjectName:
		return &m.req.ProjectName
	case rfDescription:
		return &m.req.ProjectDescription
	case rfRequirements:
		return &m.req.Requirements
	case rfQuotedPrice:
		return &m.req.QuotedPrice
	case rfCompletionTime:
		return &m.req.CompletionTime
	case rfPhoneNumber:
		return &m.req.PhoneNumber
	case rfEmailAddress:
		return &m.req.EmailAddress
	case rfMeetingLink:
		return &m.req.MeetingLink
	case rfNotes:
		return &m.req.AdditionalNotes
	}
	return nil
}

func (m requestModel) Update(msg tea.Msg) (requestModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case projectSavedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, nil
		}
		m.done = true
		return m, tea.Tick(closeDelay, func(time.Time) tea.Msg {
			return requestClosedMsg{}
		})

	case requestClosedMsg:
		m.closed = true
		return m, nil

	case tea.KeyMsg:
		if m.submitting || m.done {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m requestModel) updateKeys(msg tea.KeyMsg) (requestModel, tea.Cmd) {
	fields := m.visibleFields()
	pos := 0
	for i, f := range fields {
		if f == m.focus {
			pos = i
			break
		}
	}

	switch msg.String() {
	case "esc":
		m.closed = true
		return m, nil

	case "ctrl+s":
		return m.submit()

	case "tab", "down":
		m.focus = fields[(pos+1)%len(fields)]

	case "shift+tab", "up":
		m.focus = fields[(pos-1+len(fields))%len(fields)]

	case "enter":
		// Multi-line fields take the newline; everything else advances.
		if m.focus == rfDescription || m.focus == rfRequirements {
			m.typeInto(m.focus, "\n")
		} else {
			m.focus = fields[(pos+1)%len(fields)]
		}

	case "backspace":
		if p := m.fieldPtr(m.focus); p != nil {
			*p = editRune(*p, "backspace")
			m.fieldEdited(m.focus)
		}

	case "h", "left", "l", "right":
		forward := msg.String() == "l" || msg.String() == "right"
		switch m.focus {
		case rfService:
			m.cycleService(forward)
			return m, nil
		case rfUrgency:
			m.toggleUrgency()
			return m, nil
		case rfCommMethod:
			m.cycleCommMethod(forward)
			return m, nil
		}
		// Plain text fields treat h/l as characters.
		if msg.String() == "h" || msg.String() == "l" {
			m.typeInto(m.focus, msg.String())
		}

	default:
		key := msg.String()
		if len([]rune(key)) == 1 {
			m.typeInto(m.focus, key)
		}
	}
	return m, nil
}

// typeInto appends text to a field and refreshes its error and warning
// state.
func (m *requestModel) typeInto(f reqField, key string) {
	p := m.fieldPtr(f)
	if p == nil {
		return
	}
	if key == "\n" {
		*p += "\n"
	} else {
		*p = editRune(*p, key)
	}
	m.fieldEdited(f)
}

// fieldEdited clears the field's error and recomputes its live bounds
// warning. Warnings never block typing.
func (m *requestModel) fieldEdited(f reqField) {
	if key := fieldKey(f); key != "" {
		delete(m.errs, key)
	}
	switch f {
	case rfQuotedPrice:
		m.refreshWarning(domain.FieldQuotedPrice)
	case rfCompletionTime:
		m.refreshWarning(domain.FieldCompletionTime)
	}
}

func (m *requestModel) refreshWarning(key string) {
	if w := m.req.BoundsWarning(key); w != "" {
		m.warnings[key] = w
	} else {
		delete(m.warnings, key)
	}
}

func (m *requestModel) cycleService(forward bool) {
	slugs := domain.ServiceSlugs
	idx := 0
	for i, s := range slugs {
		if s == m.req.ServiceCategory {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(slugs)
	} else {
		idx = (idx - 1 + len(slugs)) % len(slugs)
	}
	m.req.ServiceCategory = slugs[idx]
	// Bounds depend on the category; re-check both numeric fields.
	m.refreshWarning(domain.FieldQuotedPrice)
	m.refreshWarning(domain.FieldCompletionTime)
	delete(m.errs, domain.FieldQuotedPrice)
	delete(m.errs, domain.FieldCompletionTime)
}

func (m *requestModel) toggleUrgency() {
	if m.req.Urgency == domain.UrgencyUrgent {
		m.req.Urgency = domain.UrgencyNormal
	} else {
		m.req.Urgency = domain.UrgencyUrgent
	}
}

func (m *requestModel) cycleCommMethod(forward bool) {
	methods := domain.CommunicationMethods
	idx := 0
	for i, c := range methods {
		if c == m.req.CommunicationPreference {
			idx = i
			break
		}
	}
	if forward {
		idx = (idx + 1) % len(methods)
	} else {
		idx = (idx - 1 + len(methods)) % len(methods)
	}
	m.req.CommunicationPreference = methods[idx]
	delete(m.errs, domain.FieldCommunicationPreference)
}

// submit runs full validation; a non-empty error map blocks the network
// call.
func (m requestModel) submit() (requestModel, tea.Cmd) {
	m.errs = m.req.Validate()
	if len(m.errs) > 0 {
		return m, nil
	}

	m.submitting = true
	payload := client.NewCreateProjectRequest(m.req)
	c := m.client
	edit := m.edit
	fromStudents := m.fromStudents

	if edit {
		projectID := m.project.ID
		return m, func() tea.Msg {
			err := c.ResolveObjection(context.Background(), projectID, client.ResolveObjectionRequest{
				ResolutionMessage:  resolutionMessage,
				UpdatedProjectData: payload,
			})
			return projectSavedMsg{err: err, edit: true}
		}
	}
	return m, func() tea.Msg {
		_, err := c.CreateProject(context.Background(), payload)
		return projectSavedMsg{err: err, fromStudents: fromStudents}
	}
}

func (m requestModel) fieldLabel(f reqField) string {
	switch f {
	case rfProjectName:
		return "project name"
	case rfService:
		return "service"
	case rfDescription:
		return "description"
	case rfRequirements:
		return "requirements"
	case rfQuotedPrice:
		return "quoted price"
	case rfCompletionTime:
		return "completion days"
	case rfUrgency:
		return "urgency"
	case rfCommMethod:
		return "contact via"
	case rfPhoneNumber:
		return "phone number"
	case rfEmailAddress:
		return "email address"
	case rfMeetingLink:
		return "meeting link"
	case rfNotes:
		return "notes"
	}
	return ""
}

func (m requestModel) View() string {
	var b strings.Builder

	title := "NEW REQUEST"
	if m.edit {
		title = "RESOLVE OBJECTION"
	}
	b.WriteString(" " + sectionHeaderStyle.Render(title) + "  " + ServiceBadge(m.req.ServiceCategory) + "\n")

	if m.edit && m.project != nil && m.project.ObjectionDetails.ObjectionMessage != "" {
		b.WriteString(" " + warnStyle.Render("objection: "+truncStr(m.project.ObjectionDetails.ObjectionMessage, 70)) + "\n")
	}
	b.WriteString("\n")

	for _, f := range m.visibleFields() {
		cursor := " "
		labelStyle := metaStyle
		if f == m.focus {
			cursor = inputPromptStyle.Render(">")
			labelStyle = selectedStyle
		}
		label := labelStyle.Render(fmt.Sprintf("%-16s", m.fieldLabel(f)))

		switch f {
		case rfService:
			cfg := m.req.Service()
			fmt.Fprintf(&b, "%s %s %s  %s\n", cursor, label,
				ServiceStyle(cfg.Slug).Render(cfg.Title),
				metaStyle.Render("(h/l to cycle)"))

		case rfUrgency:
			fmt.Fprintf(&b, "%s %s %s  %s\n", cursor, label,
				normalStyle.Render(string(m.req.Urgency)),
				metaStyle.Render("(h/l to toggle)"))
			if m.req.Urgency == domain.UrgencyUrgent {
				if est, ok := m.req.Estimate(); ok {
					b.WriteString("    " + priceStyle.Render("estimated price: "+formatPrice(est)) + dimStyle.Render(" (advisory)") + "\n")
				}
			}

		case rfCommMethod:
			value := string(m.req.CommunicationPreference)
			if value == "" {
				value = inputPlaceholderStyle.Render("choose...")
			} else {
				value = normalStyle.Render(value)
			}
			fmt.Fprintf(&b, "%s %s %s  %s\n", cursor, label, value,
				metaStyle.Render("(h/l to cycle)"))

		default:
			value := ""
			if p := (&m).fieldPtr(f); p != nil {
				value = strings.ReplaceAll(*p, "\n", " ")
			}
			if f == m.focus {
				value += "█"
			}
			fmt.Fprintf(&b, "%s %s %s\n", cursor, label, value)
		}

		key := fieldKey(f)
		if key != "" {
			if msg, ok := m.errs[key]; ok {
				b.WriteString("    " + errorStyle.Render(msg) + "\n")
			} else if w, ok := m.warnings[key]; ok {
				b.WriteString("    " + warnStyle.Render(w) + "\n")
			}
		}
	}

	b.WriteString("\n")
	switch {
	case m.done:
		if m.edit {
			b.WriteString(" " + successStyle.Render("terms resubmitted"))
		} else {
			b.WriteString(" " + successStyle.Render("request submitted"))
		}
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("submitting..."))
	case len(m.errs) > 0:
		b.WriteString(" " + errorStyle.Render(fmt.Sprintf("fix %d field(s) above", len(m.errs))))
	}

	return truncateToHeight(b.String(), m.height)
}
