package result

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/router"
	"github.com/abhisek/certquiz/internal/screen"
	"github.com/abhisek/certquiz/internal/screens/review"
	"github.com/abhisek/certquiz/internal/ui/components"
	"github.com/abhisek/certquiz/internal/ui/layout"
	"github.com/abhisek/certquiz/internal/ui/theme"
)

type keyMap struct {
	Review  key.Binding
	Restart key.Binding
}

var keys = keyMap{
	Review:  key.NewBinding(key.WithKeys("v", "enter"), key.WithHelp("V", "Review answers")),
	Restart: key.NewBinding(key.WithKeys("r", "esc"), key.WithHelp("R", "Restart")),
}

// ResultScreen displays the final score of a finished run.
type ResultScreen struct {
	engine  *qz.Engine
	report  qz.Report
	history []qz.HistoryEntry
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)
var _ screen.BackHandler = (*ResultScreen)(nil)

// New creates a ResultScreen from a finished engine.
func New(engine *qz.Engine) *ResultScreen {
	return &ResultScreen{
		engine:  engine,
		report:  engine.Report(),
		history: engine.History(),
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Results"
}

func (s *ResultScreen) Status() string {
	return s.report.String()
}

// HandlesBack makes Esc restart the quiz.
func (s *ResultScreen) HandlesBack() bool { return true }

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFromBindings(keys.Review, keys.Restart)
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Review):
		next := review.New(s.history)
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	case key.Matches(kmsg, keys.Restart):
		s.engine.Restart()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.report.String()))
	b.WriteString("\n\n")

	barWidth := min(width-8, 50)
	bar := components.NewProgressBar("Accuracy", s.report.Accuracy(), true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Per-domain results.
	domains := qz.ByDomain(s.history)
	if len(domains) > 1 || (len(domains) == 1 && domains[0].Domain != "") {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 50)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Domains")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")

		for _, d := range domains {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(DomainLine(d))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Hint.Render("Press v to review your answers or r to restart.")))

	return b.String()
}

// DomainLine renders one row of the per-domain table.
func DomainLine(d qz.DomainResult) string {
	name := d.Domain
	if name == "" {
		name = "—"
	}
	return fmt.Sprintf("%-28s %d/%d correct", name, d.Correct, d.Attempted)
}
