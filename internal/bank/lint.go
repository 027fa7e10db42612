package bank

import (
	"fmt"
	"strings"
)

// Severity ranks a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a problem found in a question bank. The quiz engine never
// re-checks these; Lint exists for authors of bank files.
type Issue struct {
	Index    int // position in the bank, 0-based
	ID       ID
	Severity Severity
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: question %d (id %q): %s", i.Severity, i.Index+1, i.ID, i.Message)
}

// Lint performs structural checks on the given bank and returns every
// problem found, in bank order.
func Lint(qs []Question) []Issue {
	var issues []Issue
	add := func(i int, sev Severity, format string, args ...any) {
		issues = append(issues, Issue{
			Index:    i,
			ID:       qs[i].ID,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	seen := make(map[ID]int, len(qs))
	for i, q := range qs {
		if first, dup := seen[q.ID]; dup {
			add(i, SeverityError, "duplicate id (first used by question %d)", first+1)
		} else {
			seen[q.ID] = i
		}

		if strings.TrimSpace(q.Question) == "" {
			add(i, SeverityWarning, "empty prompt")
		}

		if len(q.Options) == 0 {
			add(i, SeverityError, "no options")
		}
		for _, k := range q.Letters() {
			if len(strings.TrimSpace(k)) != 1 {
				add(i, SeverityWarning, "option key %q is not a single letter", k)
			}
		}

		required := q.Required()
		if required < 1 {
			add(i, SeverityError, "choose must be positive, got %d", required)
		} else if required > len(q.Options) {
			add(i, SeverityError, "choose %d exceeds the %d available options", required, len(q.Options))
		}

		letters := make(map[string]bool, len(q.Answer))
		for _, a := range q.Answer {
			key, ok := q.OptionKey(a)
			if !ok {
				add(i, SeverityError, "answer %q is not an option", a)
				continue
			}
			k := strings.ToUpper(strings.TrimSpace(key))
			if letters[k] {
				add(i, SeverityWarning, "answer %q listed more than once", a)
			}
			letters[k] = true
		}
		if len(letters) != required && required >= 1 {
			add(i, SeverityError, "answer has %d distinct letters but choose is %d; the question can never be answered correctly", len(letters), required)
		}
	}
	return issues
}

// HasErrors reports whether any issue is error-level.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
