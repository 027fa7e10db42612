package start

import (
	"context"
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/certquiz/internal/bank"
	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/router"
	"github.com/abhisek/certquiz/internal/screen"
	"github.com/abhisek/certquiz/internal/screens/notice"
	quizscreen "github.com/abhisek/certquiz/internal/screens/quiz"
	"github.com/abhisek/certquiz/internal/ui/components"
	"github.com/abhisek/certquiz/internal/ui/layout"
	"github.com/abhisek/certquiz/internal/ui/theme"
)

// loadTimeout bounds the one-time bank fetch.
const loadTimeout = 30 * time.Second

const (
	menuStart = iota
	menuFeedback
	menuExit
)

// Options configures the start screen.
type Options struct {
	// Source is the bank path or URL.
	Source string

	// Loader fetches the bank. Nil uses a default loader.
	Loader *bank.Loader

	// InstantFeedback is the initial state of the feedback toggle.
	InstantFeedback bool

	// Observer receives engine events. May be nil.
	Observer qz.Observer

	// Version is shown on the build line.
	Version string
}

type keyMap struct {
	Navigate key.Binding
	Select   key.Binding
	Feedback key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Navigate: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑↓", "Navigate")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Select")),
	Feedback: key.NewBinding(key.WithKeys("f"), key.WithHelp("F", "Toggle feedback")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("Q", "Quit")),
}

// StartScreen loads the bank, shows its size and lets the user start a
// quiz with or without instant feedback.
type StartScreen struct {
	opts     Options
	engine   *qz.Engine
	feedback bool
	menu     components.Menu
	loaded   bool
}

var _ screen.Screen = (*StartScreen)(nil)
var _ screen.KeyHintProvider = (*StartScreen)(nil)

// New creates a StartScreen. The bank is fetched by Init.
func New(opts Options) *StartScreen {
	s := &StartScreen{
		opts:     opts,
		feedback: opts.InstantFeedback,
	}
	s.menu = s.buildMenu()
	return s
}

func (s *StartScreen) buildMenu() components.Menu {
	m := components.NewMenu([]components.MenuItem{
		{
			Label:    "Start quiz",
			Action:   func() tea.Cmd { return func() tea.Msg { return startQuizMsg{} } },
			Disabled: !s.loaded,
		},
		{
			Label:  feedbackLabel(s.feedback),
			Action: func() tea.Cmd { return func() tea.Msg { return toggleFeedbackMsg{} } },
		},
		{
			Label:  "Exit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	})
	return m
}

func feedbackLabel(on bool) string {
	if on {
		return "Instant feedback: [x] on"
	}
	return "Instant feedback: [ ] off"
}

func (s *StartScreen) Init() tea.Cmd {
	return s.loadBank()
}

// loadBank fetches the bank once, off the update loop.
func (s *StartScreen) loadBank() tea.Cmd {
	loader := s.opts.Loader
	if loader == nil {
		loader = &bank.Loader{}
	}
	source := s.opts.Source
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		qs, err := loader.Load(ctx, source)
		return bankLoadedMsg{Questions: qs, Err: err}
	}
}

func (s *StartScreen) Title() string {
	return "Start"
}

func (s *StartScreen) KeyHints() []layout.KeyHint {
	return append(layout.HintsFromBindings(keys.Navigate, keys.Select, keys.Feedback),
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// InstantFeedback reports the current toggle state.
func (s *StartScreen) InstantFeedback() bool { return s.feedback }

// Engine returns the quiz engine, nil until the bank has loaded.
func (s *StartScreen) Engine() *qz.Engine { return s.engine }

func (s *StartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case bankLoadedMsg:
		return s.handleLoaded(msg)

	case toggleFeedbackMsg:
		s.feedback = !s.feedback
		s.menu = s.menu.WithLabel(menuFeedback, feedbackLabel(s.feedback))
		return s, nil

	case startQuizMsg:
		return s.startQuiz()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Feedback):
			return s, func() tea.Msg { return toggleFeedbackMsg{} }
		case key.Matches(msg, keys.Quit):
			return s, tea.Quit
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *StartScreen) handleLoaded(msg bankLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		n := notice.New("Cannot start quiz", msg.Err.Error())
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: n} }
	}

	var opts []qz.Option
	if s.opts.Observer != nil {
		opts = append(opts, qz.WithObserver(s.opts.Observer))
	}
	s.engine = qz.New(msg.Questions, opts...)
	s.loaded = true
	s.menu = s.buildMenu()
	s.menu.Selected = menuStart
	return s, nil
}

func (s *StartScreen) startQuiz() (screen.Screen, tea.Cmd) {
	if s.engine == nil {
		return s, nil
	}
	// Leaving the quiz screen with Esc can leave a run open.
	if s.engine.Snapshot().Phase == qz.PhaseInProgress {
		s.engine.Restart()
	}
	if err := s.engine.Start(s.feedback); err != nil {
		n := notice.New("Cannot start quiz", err.Error())
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: n} }
	}

	next := quizscreen.New(s.engine)
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// MetaLine is the bank summary shown under the banner.
func (s *StartScreen) MetaLine() string {
	if !s.loaded || s.engine == nil {
		return "Loading…"
	}
	return fmt.Sprintf("%d questions • Single bank", s.engine.Report().Total)
}

func (s *StartScreen) buildLine() string {
	v := s.opts.Version
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("Build: %s • One-bank quiz", v)
}

func (s *StartScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(s.MetaLine()))
	sections = append(sections, theme.Hint.Render(s.buildLine()))
	if !layout.IsCompactHeight(height) {
		sections = append(sections, "")
		sections = append(sections, theme.Subtitle.Render(
			"Answer each question, submit, then move on.\nMulti-answer questions say how many options to pick."))
	}
	sections = append(sections, "")
	sections = append(sections, theme.Card.Render(strings.TrimRight(s.menu.View(), "\n")))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
