package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/ui/components"
	"github.com/abhisek/certquiz/internal/ui/layout"
	"github.com/abhisek/certquiz/internal/ui/theme"
)

// QuestionLine is the position line, e.g. "Question 2 of 10".
func QuestionLine(st qz.State) string {
	return fmt.Sprintf("Question %d of %d", st.Index+1, st.Total)
}

// DomainLine labels the question's domain, with a dash when absent.
func DomainLine(domain string) string {
	if strings.TrimSpace(domain) == "" {
		return "Domain: —"
	}
	return "Domain: " + domain
}

// ChooseHint tells the user how many options to pick.
func ChooseHint(required int) string {
	if required > 1 {
		return fmt.Sprintf("Choose %d.", required)
	}
	return "Choose one."
}

func (s *QuizScreen) View(width, height int) string {
	st := s.state
	q := st.Question
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No active question.")
	}

	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	// Position and domain line.
	left := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("  " + QuestionLine(st))
	right := theme.Pill.Render(DomainLine(q.Domain))
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 2; pad > 0 && !layout.IsCompactWidth(width) {
		b.WriteString(left + strings.Repeat(" ", pad) + right)
	} else {
		// Narrow terminals get the domain on its own line.
		b.WriteString(left + "\n  " + right)
	}
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(st.Index)/float64(max(st.Total, 1)), false, inner)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(inner).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Question))
	b.WriteString("\n")
	b.WriteString("  " + theme.Hint.Render(ChooseHint(st.Required)))
	b.WriteString("\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString("\n")
	}

	// Options.
	for _, l := range strings.Split(strings.TrimRight(s.options.View(), "\n"), "\n") {
		b.WriteString("  " + l + "\n")
	}
	b.WriteString("\n")

	// Feedback or validation message.
	if s.notice != "" {
		b.WriteString("  " + s.noticeStyle().Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) noticeStyle() lipgloss.Style {
	st := s.state
	if st.Answered && st.InstantFeedback && st.LastOutcome != nil {
		if st.LastOutcome.Correct {
			return theme.Correct
		}
		return theme.Incorrect
	}
	return theme.Neutral
}
