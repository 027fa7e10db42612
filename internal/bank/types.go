package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// ID identifies a question. Banks may use numbers or strings; both decode
// to the same textual form so "7" and 7 compare equal.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}

	switch v := v.(type) {
	case string:
		*id = ID(v)
	case json.Number:
		*id = ID(v.String())
	default:
		return fmt.Errorf("id must be a string or number, got %T", v)
	}
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Question is a single entry of the question bank. It is never mutated
// after loading.
type Question struct {
	// ID is the stable identifier shown in the review as "Q<id>".
	ID ID `json:"id"`

	// Question is the prompt text.
	Question string `json:"question"`

	// Options maps an option letter to its text.
	Options map[string]string `json:"options"`

	// Choose is the number of options that must be selected.
	// Zero means the field was absent; see Required.
	Choose int `json:"choose,omitempty"`

	// Answer holds the letters of the correct option set.
	Answer []string `json:"answer"`

	// Domain is an optional classification label.
	Domain string `json:"domain,omitempty"`
}

// Required returns the number of selections the question demands.
// An absent (or zero) choose defaults to 1.
func (q Question) Required() int {
	if q.Choose == 0 {
		return 1
	}
	return q.Choose
}

// Letters returns the option letters in lexicographic order.
func (q Question) Letters() []string {
	letters := make([]string, 0, len(q.Options))
	for k := range q.Options {
		letters = append(letters, k)
	}
	sort.Strings(letters)
	return letters
}

// OptionKey resolves letter against the option keys, ignoring case and
// surrounding whitespace. It returns the key as spelled in the bank.
func (q Question) OptionKey(letter string) (string, bool) {
	letter = strings.TrimSpace(letter)
	if letter == "" {
		return "", false
	}
	if _, ok := q.Options[letter]; ok {
		return letter, true
	}
	for _, k := range q.Letters() {
		if strings.EqualFold(strings.TrimSpace(k), letter) {
			return k, true
		}
	}
	return "", false
}
