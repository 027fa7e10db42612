package quiz

// Policy is how SelectOption treats a pick for the current question.
type Policy int

const (
	// PolicyExactlyOne replaces the selection with the picked letter.
	PolicyExactlyOne Policy = iota
	// PolicyBounded toggles the picked letter, refusing to grow the
	// selection past the required count.
	PolicyBounded
)

func (p Policy) String() string {
	switch p {
	case PolicyExactlyOne:
		return "exactly-one"
	case PolicyBounded:
		return "bounded"
	default:
		return "unknown"
	}
}

// PolicyFor picks the selection policy for a required count.
func PolicyFor(required int) Policy {
	if required == 1 {
		return PolicyExactlyOne
	}
	return PolicyBounded
}

// selection holds the picked letters for the current question in pick
// order.
type selection struct {
	letters []string
}

func (s *selection) has(letter string) bool {
	return s.index(letter) >= 0
}

func (s *selection) index(letter string) int {
	for i, l := range s.letters {
		if l == letter {
			return i
		}
	}
	return -1
}

func (s *selection) len() int { return len(s.letters) }

func (s *selection) clear() { s.letters = nil }

func (s *selection) snapshot() []string {
	if len(s.letters) == 0 {
		return nil
	}
	out := make([]string, len(s.letters))
	copy(out, s.letters)
	return out
}

// apply records a pick under policy p. It returns false, leaving the
// selection untouched, when a bounded selection is already full.
func (s *selection) apply(p Policy, letter string, required int) (added, ok bool) {
	switch p {
	case PolicyExactlyOne:
		s.letters = []string{letter}
		return true, true
	default:
		if i := s.index(letter); i >= 0 {
			s.letters = append(s.letters[:i:i], s.letters[i+1:]...)
			return false, true
		}
		if len(s.letters) >= required {
			return false, false
		}
		s.letters = append(s.letters, letter)
		return true, true
	}
}
