package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certquiz/internal/ui/theme"
)

// Option is one answer choice shown by an OptionList.
type Option struct {
	Key  string
	Text string
}

// OptionList renders the answer choices of a question with radio or
// checkbox markers and a movable cursor. It holds no answer logic; the
// caller sets Chosen, Answered and Reveal from the quiz state.
type OptionList struct {
	Items    []Option
	Cursor   int
	Multi    bool
	Chosen   map[string]bool
	Answered bool

	// Reveal marks the correct keys once answered. Nil hides the verdict.
	Reveal map[string]bool

	// Flagged is a key whose pick was just refused.
	Flagged string
}

// NewOptionList creates an option list. multi selects checkbox markers.
func NewOptionList(items []Option, multi bool) OptionList {
	return OptionList{
		Items:  items,
		Multi:  multi,
		Chosen: make(map[string]bool),
	}
}

// Init returns nil.
func (m OptionList) Init() tea.Cmd {
	return nil
}

// Update moves the cursor.
func (m OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Items)-1 {
			m.Cursor++
		}
	}
	return m, nil
}

// CursorKey returns the option key under the cursor.
func (m OptionList) CursorKey() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return ""
	}
	return m.Items[m.Cursor].Key
}

// IndexOf returns the position of key, or -1.
func (m OptionList) IndexOf(key string) int {
	for i, it := range m.Items {
		if it.Key == key {
			return i
		}
	}
	return -1
}

// Marker returns the selection marker for an option.
func Marker(multi, chosen bool) string {
	switch {
	case multi && chosen:
		return "[x]"
	case multi:
		return "[ ]"
	case chosen:
		return "(•)"
	default:
		return "( )"
	}
}

// View renders the options, one per line.
func (m OptionList) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		prefix := "  "
		if i == m.Cursor && !m.Answered {
			prefix = "▸ "
		}
		chosen := m.Chosen[it.Key]
		line := fmt.Sprintf("%s%s %s) %s", prefix, Marker(m.Multi, chosen), it.Key, it.Text)

		style := theme.Unselected
		switch {
		case m.Answered && m.Reveal != nil && m.Reveal[it.Key]:
			style = theme.Correct
		case m.Answered && m.Reveal != nil && chosen:
			style = theme.Incorrect
		case m.Answered:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case it.Key == m.Flagged:
			style = theme.Neutral
			line += "  (limit reached)"
		case i == m.Cursor:
			style = theme.Selected
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
