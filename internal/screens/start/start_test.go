package start

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/certquiz/internal/bank"
	qz "github.com/abhisek/certquiz/internal/quiz"
	"github.com/abhisek/certquiz/internal/router"
)

const bankJSON = `[
  {"id": 1, "question": "one", "options": {"A": "a", "B": "b"}, "answer": ["A"]},
  {"id": 2, "question": "two", "options": {"A": "a", "B": "b"}, "answer": ["B"]}
]`

func writeBank(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(path, []byte(bankJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func loaded(t *testing.T, feedback bool) *StartScreen {
	t.Helper()
	s := New(Options{Source: writeBank(t), InstantFeedback: feedback})
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to load the bank")
	}
	msg := cmd()
	if lm, ok := msg.(bankLoadedMsg); !ok || lm.Err != nil {
		t.Fatalf("unexpected load result %#v", msg)
	}
	s.Update(msg)
	return s
}

func TestStartScreen_LoadsBank(t *testing.T) {
	s := New(Options{})
	if s.MetaLine() != "Loading…" {
		t.Errorf("MetaLine before load = %q", s.MetaLine())
	}

	s = loaded(t, true)
	if s.MetaLine() != "2 questions • Single bank" {
		t.Errorf("MetaLine = %q", s.MetaLine())
	}
	if s.Engine() == nil {
		t.Fatal("expected an engine after load")
	}
	if s.Engine().Snapshot().Phase != qz.PhaseNotStarted {
		t.Error("engine should wait for Start")
	}
}

func TestStartScreen_LoadErrorShowsNotice(t *testing.T) {
	s := New(Options{})
	_, cmd := s.Update(bankLoadedMsg{Err: &bank.LoadError{Source: "questions.json", Err: os.ErrNotExist}})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "Cannot start quiz" {
		t.Errorf("Title = %q", msg.Screen.Title())
	}
	if s.Engine() != nil {
		t.Error("no engine expected after a failed load")
	}
}

func TestStartScreen_ToggleFeedback(t *testing.T) {
	s := loaded(t, true)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'f', Text: "f"})
	if cmd == nil {
		t.Fatal("expected a toggle command")
	}
	s.Update(cmd())
	if s.InstantFeedback() {
		t.Error("expected feedback off after toggle")
	}
	if !strings.Contains(s.View(80, 40), "[ ] off") {
		t.Error("expected the menu to show feedback off")
	}
}

func TestStartScreen_StartPushesQuiz(t *testing.T) {
	s := loaded(t, false)

	_, cmd := s.Update(startQuizMsg{})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if msg.Screen.Title() != "Quiz" {
		t.Errorf("pushed %q, want Quiz", msg.Screen.Title())
	}

	st := s.Engine().Snapshot()
	if st.Phase != qz.PhaseInProgress || st.InstantFeedback {
		t.Errorf("phase %s feedback %v, want in progress without feedback", st.Phase, st.InstantFeedback)
	}
}

func TestStartScreen_StartRestartsOpenRun(t *testing.T) {
	s := loaded(t, true)
	s.Update(startQuizMsg{})
	first := s.Engine().RunID()

	s.Update(startQuizMsg{})
	if s.Engine().RunID() == first {
		t.Error("expected a fresh run")
	}
}

func TestStartScreen_StartIgnoredBeforeLoad(t *testing.T) {
	s := New(Options{})
	if _, cmd := s.Update(startQuizMsg{}); cmd != nil {
		t.Error("expected no command before the bank loads")
	}
}

func TestStartScreen_LoadErrorMessage(t *testing.T) {
	s := New(Options{Source: filepath.Join(t.TempDir(), "missing.json")})
	msg := s.Init()().(bankLoadedMsg)
	if !errors.Is(msg.Err, os.ErrNotExist) {
		t.Errorf("err = %v, want not exist", msg.Err)
	}
}
