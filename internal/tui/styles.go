package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Kharthicsj/Axioa-sub005/pkg/domain"
)

// Shimmer animation for the AXIOA logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "A X I O A" as a flowing wave of indigo light.
// Deep indigo (#1e1b4a) -> bright periwinkle (#818cf8). No hue drift.
// Letters are spaced apart and rendered without a background box.
func renderShimmerLogo(frame int) string {
	const text = "AXIOA"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// Flowing phase — one smooth wave advancing through the text
		phase := t*0.1 - x*3.0

		// Gentle speed modulation
		phase += math.Sin(t*0.023) * 2.0

		// Primary brightness wave
		b := math.Sin(phase)*0.5 + 0.5

		// Soft shaping
		b = math.Pow(b, 1.3)

		// Slow breathing tide
		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Continuous RGB interpolation: deep indigo -> bright periwinkle
		// Deep:   (30, 27, 74)   #1e1b4a
		// Bright: (129, 140, 248) #818cf8
		r := clampByte(30 + b*(129-30))
		g := clampByte(27 + b*(140-27))
		bl := clampByte(74 + b*(248-74))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		// Letter spacing — two spaces between each letter
		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles — axioa neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Search / accent
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818cf8")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6d7cf6"))

	// Form feedback
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	// Money / ratings
	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	ratingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fbbf24"))

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6d7cf6")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878"))

	// Toast banners
	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#052e16")).
				Background(lipgloss.Color("#4ade80")).
				Bold(true)

	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#450a0a")).
			Background(lipgloss.Color("#f87171")).
			Bold(true)

	// Service category colors
	serviceColors = map[string]lipgloss.Color{
		"web-development": lipgloss.Color("#60a0e0"),
		"app-development": lipgloss.Color("#c084e0"),
		"resume-services": lipgloss.Color("#d4a844"),
		"cad-modeling":    lipgloss.Color("#f0944a"),
		"ui-ux-design":    lipgloss.Color("#e06060"),
		"data-analysis":   lipgloss.Color("#3ecce4"),
		"content-writing": lipgloss.Color("#43e88c"),
	}

	// Project status colors
	statusColors = map[domain.Status]lipgloss.Color{
		domain.StatusSubmitted:  lipgloss.Color("#8890a0"),
		domain.StatusAccepted:   lipgloss.Color("#60a0e0"),
		domain.StatusPending:    lipgloss.Color("#fbbf24"),
		domain.StatusInProgress: lipgloss.Color("#22d3ee"),
		domain.StatusCompleted:  lipgloss.Color("#4ade80"),
		domain.StatusCancelled:  lipgloss.Color("#606878"),
		domain.StatusDisputed:   lipgloss.Color("#f87171"),
	}

	availabilityColors = map[domain.Availability]lipgloss.Color{
		domain.AvailabilityAvailable:   lipgloss.Color("#4ade80"),
		domain.AvailabilityBusy:        lipgloss.Color("#fbbf24"),
		domain.AvailabilityUnavailable: lipgloss.Color("#606878"),
	}
)

// ServiceStyle returns a bold style colored for the given service slug.
func ServiceStyle(slug string) lipgloss.Style {
	if c, ok := serviceColors[slug]; ok {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#606878")).Bold(true)
}

// ServiceBadge returns a short colored badge for a service, e.g. "[web-development]".
func ServiceBadge(slug string) string {
	if slug == "" {
		return ""
	}
	return ServiceStyle(slug).Render("[" + slug + "]")
}

// StatusStyle returns a style colored for the given project status.
func StatusStyle(s domain.Status) lipgloss.Style {
	if c, ok := statusColors[s]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// AvailabilityStyle returns a style colored for a student's availability.
func AvailabilityStyle(a domain.Availability) lipgloss.Style {
	if c, ok := availabilityColors[a]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#8890a0"))
}

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a selectable link in the help overlay.
type helpItem struct {
	label string
	desc  string
	url   string
}

var helpItems = []helpItem{
	{"Terms of Service", "axioa.in/terms", "https://axioa.in/terms"},
	{"Privacy Policy", "axioa.in/privacy", "https://axioa.in/privacy"},
	{"Help Center", "axioa.in/help", "https://axioa.in/help"},
	{"Website", "axioa.in", "https://axioa.in"},
}

// helpView renders the interactive help overlay with a cursor.
func helpView(cursor int) string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#818cf8")).
		Bold(true).
		Render("A X I O A")

	tagline := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		Render("Student talent, on demand.")

	cmdStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	cursorStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#818cf8"))
	linkDescStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	commands := []struct{ cmd, desc string }{
		{"axioa", "Open the marketplace (interactive TUI)"},
		{"axioa login", "Store your API token"},
		{"axioa logout", "Clear your session"},
		{"axioa version", "Show version"},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n  %s\n\n", title, tagline)

	// Commands section
	fmt.Fprintf(&b, "  %s\n", sectionStyle.Render("Commands"))
	for _, c := range commands {
		fmt.Fprintf(&b, "    %s  %s\n", cmdStyle.Render(fmt.Sprintf("%-20s", c.cmd)), descStyle.Render(c.desc))
	}

	// Links section (selectable)
	fmt.Fprintf(&b, "\n  %s\n", sectionStyle.Render("Links (enter to open)"))
	for i, item := range helpItems {
		label := cmdStyle.Render(fmt.Sprintf("%-20s", item.label))
		prefix := "    "
		if i == cursor {
			label = cursorStyle.Render(fmt.Sprintf("%-20s", item.label))
			prefix = "  > "
		}
		fmt.Fprintf(&b, "%s%s  %s\n", prefix, label, linkDescStyle.Render(item.desc))
	}
	return b.String()
}
