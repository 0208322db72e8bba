package quiz

import "strings"

// AnswerSet maps a question position (in the quiz's current order) to the
// submitted answer text. Unanswered positions are absent.
type AnswerSet map[int]string

// Set records an answer. Blank text clears the position instead.
func (a AnswerSet) Set(i int, text string) {
	if strings.TrimSpace(text) == "" {
		delete(a, i)
		return
	}
	a[i] = text
}

// Clear removes the answer at position i.
func (a AnswerSet) Clear(i int) {
	delete(a, i)
}

// Get returns the answer at position i and whether one was given.
func (a AnswerSet) Get(i int) (string, bool) {
	s, ok := a[i]
	return s, ok
}

// Answered returns the number of answered positions.
func (a AnswerSet) Answered() int {
	return len(a)
}
