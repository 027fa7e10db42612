package quiz

import "time"

// EventKind names an engine transition.
type EventKind string

const (
	EventStart   EventKind = "start"
	EventSelect  EventKind = "select"
	EventReject  EventKind = "reject"
	EventSubmit  EventKind = "submit"
	EventAdvance EventKind = "advance"
	EventFinish  EventKind = "finish"
	EventRestart EventKind = "restart"
)

// Event describes one state change or refused operation. Fields that do
// not apply to a kind are left zero.
type Event struct {
	Kind       EventKind `json:"kind"`
	RunID      string    `json:"run_id,omitempty"`
	Time       time.Time `json:"time"`
	Index      int       `json:"index"`
	QuestionID string    `json:"question_id,omitempty"`
	Letter     string    `json:"letter,omitempty"`
	Selection  []string  `json:"selection,omitempty"`
	Correct    *bool     `json:"correct,omitempty"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Feedback   *bool     `json:"instant_feedback,omitempty"`
	Reason     string    `json:"reason,omitempty"`
}

// Observer receives engine events synchronously, in order. It must not
// call back into the engine.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }
