package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certquiz/internal/bank"
	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/router"
)

// finishedEngine plays a two-question bank, answering the first correctly
// and the second wrongly.
func finishedEngine(t *testing.T) *qz.Engine {
	t.Helper()
	e := qz.New([]bank.Question{
		{ID: "1", Question: "one", Options: map[string]string{"A": "a", "B": "b"}, Answer: []string{"A"}, Domain: "Storage"},
		{ID: "2", Question: "two", Options: map[string]string{"A": "a", "B": "b"}, Answer: []string{"B"}, Domain: "Networking"},
	})
	if err := e.Start(false); err != nil {
		t.Fatal(err)
	}
	for _, pick := range []string{"A", "A"} {
		if err := e.SelectOption(pick); err != nil {
			t.Fatal(err)
		}
		if _, err := e.Submit(); err != nil {
			t.Fatal(err)
		}
		if err := e.Advance(); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func TestResultScreen_View(t *testing.T) {
	s := New(finishedEngine(t))
	view := s.View(80, 30)

	for _, want := range []string{"Quiz complete!", "Score: 1 / 2", "Storage", "Networking"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if s.Status() != "Score: 1 / 2" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestResultScreen_ReviewPushes(t *testing.T) {
	s := New(finishedEngine(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'v', Text: "v"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Review" {
		t.Errorf("pushed %q, want Review", msg.Screen.Title())
	}
}

func TestResultScreen_RestartPops(t *testing.T) {
	e := finishedEngine(t)
	s := New(e)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if e.Snapshot().Phase != qz.PhaseNotStarted {
		t.Errorf("phase = %s, want not started", e.Snapshot().Phase)
	}
}

func TestDomainLine(t *testing.T) {
	got := DomainLine(qz.DomainResult{Attempted: 3, Correct: 2})
	if !strings.HasPrefix(got, "—") || !strings.HasSuffix(got, "2/3 correct") {
		t.Errorf("DomainLine = %q", got)
	}
}
