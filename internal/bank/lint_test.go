package bank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion(id ID) Question {
	return Question{
		ID:       id,
		Question: "Pick two.",
		Options:  map[string]string{"A": "a", "B": "b", "C": "c"},
		Choose:   2,
		Answer:   []string{"A", "C"},
	}
}

func TestLint_CleanBank(t *testing.T) {
	qs := []Question{validQuestion("1"), validQuestion("2")}
	issues := Lint(qs)
	assert.Empty(t, issues)
	assert.False(t, HasErrors(issues))
}

func TestLint(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(q *Question)
		severity Severity
		contains string
	}{
		{
			name:     "empty prompt",
			mutate:   func(q *Question) { q.Question = "  " },
			severity: SeverityWarning,
			contains: "empty prompt",
		},
		{
			name:     "no options",
			mutate:   func(q *Question) { q.Options = nil; q.Answer = nil },
			severity: SeverityError,
			contains: "no options",
		},
		{
			name:     "answer not an option",
			mutate:   func(q *Question) { q.Answer = []string{"A", "Z"} },
			severity: SeverityError,
			contains: `answer "Z" is not an option`,
		},
		{
			name:     "choose exceeds options",
			mutate:   func(q *Question) { q.Choose = 4 },
			severity: SeverityError,
			contains: "exceeds the 3 available options",
		},
		{
			name:     "negative choose",
			mutate:   func(q *Question) { q.Choose = -1 },
			severity: SeverityError,
			contains: "choose must be positive",
		},
		{
			name:     "answer size differs from choose",
			mutate:   func(q *Question) { q.Choose = 1 },
			severity: SeverityError,
			contains: "can never be answered correctly",
		},
		{
			name:     "duplicate answer letter",
			mutate:   func(q *Question) { q.Answer = []string{"A", "a", "C"} },
			severity: SeverityWarning,
			contains: "listed more than once",
		},
		{
			name:     "long option key",
			mutate:   func(q *Question) { q.Options["AB"] = "ab" },
			severity: SeverityWarning,
			contains: "not a single letter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion("1")
			tt.mutate(&q)
			issues := Lint([]Question{q})

			found := false
			for _, is := range issues {
				if is.Severity == tt.severity && strings.Contains(is.Message, tt.contains) {
					found = true
				}
			}
			assert.True(t, found, "expected %s containing %q, got %v", tt.severity, tt.contains, issues)
		})
	}
}

func TestLint_DuplicateID(t *testing.T) {
	qs := []Question{validQuestion("7"), validQuestion("8"), validQuestion("7")}
	issues := Lint(qs)

	if assert.Len(t, issues, 1) {
		assert.Equal(t, 2, issues[0].Index)
		assert.Equal(t, ID("7"), issues[0].ID)
		assert.Equal(t, SeverityError, issues[0].Severity)
		assert.Contains(t, issues[0].Message, "question 1")
	}
	assert.True(t, HasErrors(issues))
}

func TestIssue_String(t *testing.T) {
	is := Issue{Index: 0, ID: "q1", Severity: SeverityError, Message: "no options"}
	assert.Equal(t, `error: question 1 (id "q1"): no options`, is.String())
}
