package quiz

import (
	"fmt"
	"strings"

	"github.com/abhisek/certquiz/internal/bank"
)

// HistoryEntry records one submitted question. Entries are appended by
// Submit only and never change afterwards.
type HistoryEntry struct {
	QuestionID bank.ID  `json:"question_id"`
	Domain     string   `json:"domain,omitempty"`
	Prompt     string   `json:"prompt"`
	Selected   []string `json:"selected"` // normalized
	Correct    []string `json:"correct"`  // normalized answer key
	IsCorrect  bool     `json:"is_correct"`
}

func (h HistoryEntry) clone() HistoryEntry {
	h.Selected = append([]string(nil), h.Selected...)
	h.Correct = append([]string(nil), h.Correct...)
	return h
}

// Outcome is the result of a successful Submit.
type Outcome struct {
	Correct  bool
	Selected []string // normalized selection
	Expected []string // canonical correct set
	Entry    HistoryEntry
}

// FeedbackText is the line shown after Submit when instant feedback is on.
func (o Outcome) FeedbackText() string {
	if o.Correct {
		return "Correct ✅"
	}
	return "Incorrect ❌  Correct answer: " + JoinLetters(o.Expected)
}

// JoinLetters renders a letter list for display, "—" when empty.
func JoinLetters(letters []string) string {
	if len(letters) == 0 {
		return "—"
	}
	return strings.Join(letters, ", ")
}

// Report is the final score of a run.
type Report struct {
	Score int
	Total int
}

// String returns the result line.
func (r Report) String() string {
	return fmt.Sprintf("Score: %d / %d", r.Score, r.Total)
}

// Accuracy returns Score/Total in [0, 1], or 0 for an empty bank.
func (r Report) Accuracy() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.Total)
}

// DomainResult tallies the submitted questions of one domain label.
type DomainResult struct {
	Domain    string
	Attempted int
	Correct   int
}

// ByDomain groups history entries by domain, in order of first
// appearance. Entries without a domain share the "" group.
func ByDomain(history []HistoryEntry) []DomainResult {
	var out []DomainResult
	pos := make(map[string]int)
	for _, h := range history {
		i, ok := pos[h.Domain]
		if !ok {
			i = len(out)
			pos[h.Domain] = i
			out = append(out, DomainResult{Domain: h.Domain})
		}
		out[i].Attempted++
		if h.IsCorrect {
			out[i].Correct++
		}
	}
	return out
}
