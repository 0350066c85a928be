package domain

import "strings"

// Item is a single prompt/answer pair with its running drill statistics.
type Item struct {
	Prompt    string
	Answer    string
	Attempts  int
	Successes int
}

// NewItem creates an untried item.
func NewItem(prompt, answer string) *Item {
	return &Item{Prompt: prompt, Answer: answer}
}

// Check records an attempt and reports whether the given answer matches.
// Matching is case-sensitive and ignores surrounding whitespace.
func (it *Item) Check(given string) bool {
	it.Attempts++
	if strings.TrimSpace(given) != it.Answer {
		return false
	}
	it.Successes++
	return true
}

// Ratio returns successes/attempts. ok is false for an untried item.
func (it *Item) Ratio() (ratio float64, ok bool) {
	if it.Attempts == 0 {
		return 0, false
	}
	return float64(it.Successes) / float64(it.Attempts), true
}
