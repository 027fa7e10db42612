package quiz

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/certquiz/internal/bank"
)

// Phase is the coarse state of a quiz run.
type Phase int

const (
	PhaseNotStarted Phase = iota // Bank loaded, waiting for Start
	PhaseInProgress              // Serving questions
	PhaseFinished                // Advanced past the last question
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not started"
	case PhaseInProgress:
		return "in progress"
	case PhaseFinished:
		return "finished"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Option configures an Engine.
type Option func(*Engine)

// WithObserver sends every engine event to o.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithClock overrides the time source used for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// Engine owns the progress of a single quiz run over a fixed question
// bank. It is driven from one goroutine and carries no locks.
type Engine struct {
	questions []bank.Question

	phase           Phase
	index           int
	score           int
	answered        bool
	sel             selection
	instantFeedback bool
	history         []HistoryEntry
	last            *Outcome
	runID           string

	observer Observer
	now      func() time.Time
}

// New creates an engine over questions. The bank order is kept as given.
func New(questions []bank.Question, opts ...Option) *Engine {
	e := &Engine{
		questions: append([]bank.Question(nil), questions...),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start begins a run. It is valid from NotStarted or Finished.
func (e *Engine) Start(preferInstantFeedback bool) error {
	if e.phase == PhaseInProgress {
		return e.illegal("start", "a quiz is already in progress")
	}
	if len(e.questions) == 0 {
		return ErrEmptyBank
	}

	e.reset()
	e.instantFeedback = preferInstantFeedback
	e.runID = uuid.NewString()
	e.phase = PhaseInProgress

	fb := preferInstantFeedback
	e.emit(Event{Kind: EventStart, Feedback: &fb})
	return nil
}

// SelectOption records a pick for the current question. The letter is
// matched against the option keys ignoring case and whitespace.
func (e *Engine) SelectOption(letter string) error {
	if err := e.requireUnanswered("select"); err != nil {
		return err
	}

	q := e.questions[e.index]
	key, ok := q.OptionKey(letter)
	if !ok {
		return &ValidationError{
			Op:       "select",
			Message:  fmt.Sprintf("Unknown option %q.", letter),
			Required: q.Required(),
			Selected: e.sel.len(),
		}
	}

	required := q.Required()
	if _, ok := e.sel.apply(PolicyFor(required), key, required); !ok {
		e.emit(Event{Kind: EventReject, Letter: key, Reason: "selection limit reached"})
		return &ValidationError{
			Op:       "select",
			Message:  fmt.Sprintf("Selection limit reached: choose %d.", required),
			Required: required,
			Selected: e.sel.len(),
		}
	}

	e.emit(Event{Kind: EventSelect, Letter: key})
	return nil
}

// Submit grades the current selection. A selection whose size differs
// from the required count is rejected with a ValidationError and changes
// nothing.
func (e *Engine) Submit() (Outcome, error) {
	if err := e.requireUnanswered("submit"); err != nil {
		return Outcome{}, err
	}

	q := e.questions[e.index]
	required := q.Required()
	if e.sel.len() != required {
		return Outcome{}, &ValidationError{
			Op:       "submit",
			Message:  selectionCountMessage(required),
			Required: required,
			Selected: e.sel.len(),
		}
	}

	selected := Normalize(e.sel.letters)
	expected := Normalize(q.Answer)
	correct := SameAnswer(selected, expected)

	e.answered = true
	if correct {
		e.score++
	}
	entry := HistoryEntry{
		QuestionID: q.ID,
		Domain:     q.Domain,
		Prompt:     q.Question,
		Selected:   selected,
		Correct:    expected,
		IsCorrect:  correct,
	}
	e.history = append(e.history, entry)

	out := Outcome{Correct: correct, Selected: selected, Expected: expected, Entry: entry}
	e.last = &out

	e.emit(Event{Kind: EventSubmit, Correct: &correct})
	return cloneOutcome(out), nil
}

// Advance moves past an answered question. Past the last question the
// run is Finished.
func (e *Engine) Advance() error {
	if e.phase != PhaseInProgress {
		return e.illegal("advance", "no question is active")
	}
	if !e.answered {
		return e.illegal("advance", "the current question has not been submitted")
	}

	e.index++
	e.answered = false
	e.sel.clear()
	e.last = nil

	if e.index >= len(e.questions) {
		e.phase = PhaseFinished
		e.emit(Event{Kind: EventFinish})
		return nil
	}
	e.emit(Event{Kind: EventAdvance})
	return nil
}

// Restart discards all progress. The question bank is kept.
func (e *Engine) Restart() {
	prev := e.runID
	e.reset()
	e.phase = PhaseNotStarted
	e.emit(Event{Kind: EventRestart, RunID: prev})
}

// State is a read-only view of the engine. It shares no memory with it.
type State struct {
	Phase           Phase
	Index           int
	Total           int
	Score           int
	Answered        bool
	Selection       []string // option keys in pick order
	InstantFeedback bool
	Question        *bank.Question // nil unless InProgress
	Required        int
	Policy          Policy
	LastOutcome     *Outcome // set between Submit and Advance
	RunID           string
}

// IsSelected reports whether key is part of the current selection.
func (s State) IsSelected(key string) bool {
	for _, l := range s.Selection {
		if l == key {
			return true
		}
	}
	return false
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() State {
	s := State{
		Phase:           e.phase,
		Index:           e.index,
		Total:           len(e.questions),
		Score:           e.score,
		Answered:        e.answered,
		Selection:       e.sel.snapshot(),
		InstantFeedback: e.instantFeedback,
		RunID:           e.runID,
	}
	if e.phase == PhaseInProgress {
		q := cloneQuestion(e.questions[e.index])
		s.Question = &q
		s.Required = q.Required()
		s.Policy = PolicyFor(s.Required)
	}
	if e.last != nil {
		out := cloneOutcome(*e.last)
		s.LastOutcome = &out
	}
	return s
}

// History returns the submitted entries, oldest first.
func (e *Engine) History() []HistoryEntry {
	out := make([]HistoryEntry, len(e.history))
	for i, h := range e.history {
		out[i] = h.clone()
	}
	return out
}

// Report returns the running score against the bank size.
func (e *Engine) Report() Report {
	return Report{Score: e.score, Total: len(e.questions)}
}

// RunID identifies the current run; empty before Start.
func (e *Engine) RunID() string { return e.runID }

// Questions returns the bank the engine was built with.
func (e *Engine) Questions() []bank.Question {
	out := make([]bank.Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func (e *Engine) reset() {
	e.index = 0
	e.score = 0
	e.answered = false
	e.sel.clear()
	e.history = nil
	e.last = nil
	e.runID = ""
}

func (e *Engine) requireUnanswered(op string) error {
	if e.phase != PhaseInProgress {
		return e.illegal(op, "no question is active")
	}
	if e.answered {
		return e.illegal(op, "the current question is already answered")
	}
	return nil
}

func (e *Engine) illegal(op, reason string) error {
	return &IllegalStateError{Op: op, Phase: e.phase, Reason: reason}
}

func (e *Engine) emit(ev Event) {
	if e.observer == nil {
		return
	}
	ev.Time = e.now()
	if ev.RunID == "" {
		ev.RunID = e.runID
	}
	ev.Index = e.index
	ev.Score = e.score
	ev.Total = len(e.questions)
	if e.phase == PhaseInProgress && e.index < len(e.questions) {
		ev.QuestionID = e.questions[e.index].ID.String()
	}
	if ev.Kind == EventSelect || ev.Kind == EventReject || ev.Kind == EventSubmit {
		ev.Selection = e.sel.snapshot()
	}
	e.observer.Observe(ev)
}

func cloneQuestion(q bank.Question) bank.Question {
	q.Options = maps.Clone(q.Options)
	q.Answer = append([]string(nil), q.Answer...)
	return q
}

func cloneOutcome(o Outcome) Outcome {
	o.Selected = append([]string(nil), o.Selected...)
	o.Expected = append([]string(nil), o.Expected...)
	o.Entry = o.Entry.clone()
	return o
}
