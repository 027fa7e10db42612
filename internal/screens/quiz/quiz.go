package quiz

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/router"
	"github.com/abhisek/certquiz/internal/screen"
	"github.com/abhisek/certquiz/internal/screens/result"
	"github.com/abhisek/certquiz/internal/ui/components"
	"github.com/abhisek/certquiz/internal/ui/layout"
)

// QuizScreen drives one quiz run: it forwards key presses to the engine as
// select, submit and advance operations and renders from its snapshot.
type QuizScreen struct {
	engine  *qz.Engine
	state   qz.State
	options components.OptionList
	index   int
	notice  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.BackHandler = (*QuizScreen)(nil)

// New creates a QuizScreen for a started engine.
func New(engine *qz.Engine) *QuizScreen {
	s := &QuizScreen{engine: engine, index: -1}
	s.sync()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

// HandlesBack makes Esc restart the quiz instead of a bare pop.
func (s *QuizScreen) HandlesBack() bool { return true }

func (s *QuizScreen) Status() string {
	if s.state.Phase != qz.PhaseInProgress {
		return ""
	}
	return fmt.Sprintf("%d/%d", s.state.Index+1, s.state.Total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state.Answered {
		return layout.HintsFromBindings(keys.Next, keys.Restart)
	}
	hints := layout.HintsFromBindings(keys.Up, keys.Toggle)
	if r := s.letterRange(); r != "" {
		hints = append(hints, layout.KeyHint{Key: r, Description: "Pick"})
	}
	return append(hints, layout.HintsFromBindings(keys.Submit, keys.Restart)...)
}

// letterRange describes the option keys that can be typed, e.g. "A-D".
func (s *QuizScreen) letterRange() string {
	if s.state.Question == nil {
		return ""
	}
	letters := s.state.Question.Letters()
	switch len(letters) {
	case 0:
		return ""
	case 1:
		return letters[0]
	default:
		return letters[0] + "-" + letters[len(letters)-1]
	}
}

// State returns the engine snapshot the screen last rendered from.
func (s *QuizScreen) State() qz.State { return s.state }

// Notice returns the current validation or feedback line.
func (s *QuizScreen) Notice() string { return s.notice }

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Restart):
		s.engine.Restart()
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case key.Matches(kmsg, keys.Up, keys.Down):
		s.options, _ = s.options.Update(kmsg)
		return s, nil

	case key.Matches(kmsg, keys.Toggle):
		s.selectOption(s.options.CursorKey())
		return s, nil

	case key.Matches(kmsg, keys.Submit):
		if s.state.Answered {
			return s.advance()
		}
		s.submit()
		return s, nil
	}

	if letter, ok := s.optionLetter(kmsg.String()); ok {
		if i := s.options.IndexOf(letter); i >= 0 {
			s.options.Cursor = i
		}
		s.selectOption(letter)
	}
	return s, nil
}

// optionLetter resolves a single typed character to an option key of the
// current question.
func (s *QuizScreen) optionLetter(k string) (string, bool) {
	if s.state.Question == nil || utf8.RuneCountInString(k) != 1 {
		return "", false
	}
	return s.state.Question.OptionKey(k)
}

func (s *QuizScreen) selectOption(letter string) {
	if letter == "" || s.state.Answered {
		return
	}

	err := s.engine.SelectOption(letter)
	s.options.Flagged = ""
	s.notice = ""

	var ve *qz.ValidationError
	switch {
	case errors.As(err, &ve):
		if k, ok := s.state.Question.OptionKey(letter); ok {
			s.options.Flagged = k
		}
		s.notice = ve.Message
	case err != nil:
		s.notice = err.Error()
	}
	s.sync()
}

func (s *QuizScreen) submit() {
	out, err := s.engine.Submit()
	s.options.Flagged = ""

	var ve *qz.ValidationError
	switch {
	case errors.As(err, &ve):
		s.notice = ve.Message
	case err != nil:
		s.notice = err.Error()
	case s.state.InstantFeedback:
		s.notice = out.FeedbackText()
	default:
		s.notice = "Answer recorded."
	}
	s.sync()
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if err := s.engine.Advance(); err != nil {
		s.notice = err.Error()
		return s, nil
	}
	s.notice = ""
	s.sync()

	if s.state.Phase == qz.PhaseFinished {
		next := result.New(s.engine)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

// sync refreshes the snapshot and the option list. The list is rebuilt
// when the question changes.
func (s *QuizScreen) sync() {
	s.state = s.engine.Snapshot()
	q := s.state.Question
	if q == nil {
		return
	}

	if s.state.Index != s.index {
		items := make([]components.Option, 0, len(q.Options))
		for _, k := range q.Letters() {
			items = append(items, components.Option{Key: k, Text: q.Options[k]})
		}
		s.options = components.NewOptionList(items, s.state.Policy == qz.PolicyBounded)
		s.index = s.state.Index
	}

	chosen := make(map[string]bool, len(s.state.Selection))
	for _, l := range s.state.Selection {
		chosen[l] = true
	}
	s.options.Chosen = chosen
	s.options.Answered = s.state.Answered
	s.options.Reveal = nil

	if s.state.Answered && s.state.InstantFeedback && s.state.LastOutcome != nil {
		expected := make(map[string]bool, len(s.state.LastOutcome.Expected))
		for _, l := range s.state.LastOutcome.Expected {
			expected[l] = true
		}
		reveal := make(map[string]bool)
		for _, it := range s.options.Items {
			if expected[strings.ToUpper(strings.TrimSpace(it.Key))] {
				reveal[it.Key] = true
			}
		}
		s.options.Reveal = reveal
	}
}
