package quiz

import (
	"sort"
	"strings"
)

// Normalize returns the canonical form of an answer-letter collection:
// each token trimmed and uppercased, empty tokens dropped, sorted.
// Duplicates are kept.
func Normalize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToUpper(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SameAnswer reports whether a and b name the same set of letters once
// normalized. Repeated letters count once.
func SameAnswer(a, b []string) bool {
	sa := letterSet(Normalize(a))
	sb := letterSet(Normalize(b))
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if !sb[k] {
			return false
		}
	}
	return true
}

func letterSet(letters []string) map[string]bool {
	set := make(map[string]bool, len(letters))
	for _, l := range letters {
		set[l] = true
	}
	return set
}
