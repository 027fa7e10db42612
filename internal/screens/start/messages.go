package start

import "github.com/abhisek/certquiz/internal/bank"

// bankLoadedMsg is sent when the one-time bank fetch completes.
type bankLoadedMsg struct {
	Questions []bank.Question
	Err       error
}

// toggleFeedbackMsg flips the instant feedback preference.
type toggleFeedbackMsg struct{}

// startQuizMsg begins a run with the current preference.
type startQuizMsg struct{}
