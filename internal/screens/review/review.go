package review

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/screen"
	"github.com/abhisek/certquiz/internal/ui/layout"
	"github.com/abhisek/certquiz/internal/ui/theme"
)

// ReviewScreen lists every submitted question with the user's answer and
// the correct one. It scrolls when the history is taller than the screen.
type ReviewScreen struct {
	history  []qz.HistoryEntry
	viewport viewport.Model
	width    int
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)
var _ screen.StatusProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen for the given history, oldest first.
func New(history []qz.HistoryEntry) *ReviewScreen {
	return &ReviewScreen{
		history:  history,
		viewport: viewport.New(),
	}
}

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	return "Review"
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "PgUp/PgDn", Description: "Page"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReviewScreen) Status() string {
	if len(s.history) == 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(s.viewport.ScrollPercent()*100))
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) View(width, height int) string {
	if len(s.history) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No answers recorded.")
	}

	s.resize(width, height)
	return s.viewport.View()
}

// resize fits the viewport to the content area, re-rendering the entries
// when the width changes.
func (s *ReviewScreen) resize(width, height int) {
	s.viewport.SetHeight(height)
	if width == s.width {
		return
	}
	s.width = width
	s.viewport.SetWidth(width)
	s.viewport.SetContent(s.render(width))
}

func (s *ReviewScreen) render(width int) string {
	inner := max(width-6, 20)
	block := lipgloss.NewStyle().Width(inner).PaddingLeft(2)

	correct := 0
	for _, h := range s.history {
		if h.IsCorrect {
			correct++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(block.Render(theme.Hint.Render(
		fmt.Sprintf("%d answered • %d correct", len(s.history), correct))))
	b.WriteString("\n\n")

	for _, h := range s.history {
		b.WriteString(block.Render(theme.Pill.Render(HeadLine(h))))
		b.WriteString("\n")
		b.WriteString(block.Render(lipgloss.NewStyle().Foreground(theme.Text).Render(h.Prompt)))
		b.WriteString("\n")

		style := theme.Incorrect
		if h.IsCorrect {
			style = theme.Correct
		}
		b.WriteString(block.Render(style.Render(AnswerLine(h))))
		b.WriteString("\n\n")
	}
	return b.String()
}

// HeadLine is the entry heading: "Q<id>", plus the domain when set.
func HeadLine(h qz.HistoryEntry) string {
	if h.Domain == "" {
		return "Q" + h.QuestionID.String()
	}
	return fmt.Sprintf("Q%s • %s", h.QuestionID, h.Domain)
}

// AnswerLine compares the user's answer with the key.
func AnswerLine(h qz.HistoryEntry) string {
	mark := "❌"
	if h.IsCorrect {
		mark = "✅"
	}
	return fmt.Sprintf("Your answer: %s • Correct: %s • %s",
		qz.JoinLetters(h.Selected), qz.JoinLetters(h.Correct), mark)
}
