package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certquiz/internal/screen"
	"github.com/abhisek/certquiz/internal/ui/layout"
	"github.com/abhisek/certquiz/internal/ui/theme"
)

// NoticeScreen shows a fatal message, such as a bank that failed to load.
// The only way out is quitting.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen with the given heading and detail message.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter", "esc":
			return n, tea.Quit
		}
	}
	return n, nil
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

// Message returns the detail text.
func (n *NoticeScreen) Message() string {
	return n.message
}

func (n *NoticeScreen) View(width, height int) string {
	heading := theme.Incorrect.Render(n.title)
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 70)).
		Align(lipgloss.Center).
		Render(n.message)
	hint := theme.Hint.Render("Press q to quit.")

	content := lipgloss.JoinVertical(lipgloss.Center, heading, "", body, "", hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (n *NoticeScreen) Title() string {
	return n.title
}
