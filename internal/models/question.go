package models

import (
	"time"
)

// Letter identifies one of the four answer options
type Letter string

const (
	LetterA Letter = "A"
	LetterB Letter = "B"
	LetterC Letter = "C"
	LetterD Letter = "D"
)

// Letters lists the valid option letters in display order
var Letters = []Letter{LetterA, LetterB, LetterC, LetterD}

// Valid reports whether the letter is one of A, B, C, D
func (l Letter) Valid() bool {
	switch l {
	case LetterA, LetterB, LetterC, LetterD:
		return true
	}
	return false
}

// Question represents a single quiz question from the question bank.
// Questions are immutable once loaded.
type Question struct {
	// ID is the unique identifier for the question
	ID string

	// Category the question belongs to
	Category string

	// Text is the question prompt
	Text string

	// OptionA through OptionD are the four answer option texts
	OptionA string
	OptionB string
	OptionC string
	OptionD string

	// CorrectAnswer is the letter of the correct option
	CorrectAnswer Letter

	// Explanation is optional context shown with the round results
	Explanation string

	// ImageURL is an optional image shown with the question
	ImageURL string

	// CreatedAt is when the question was imported
	CreatedAt time.Time
}

// OptionText returns the option text for the given letter
func (q *Question) OptionText(l Letter) string {
	switch l {
	case LetterA:
		return q.OptionA
	case LetterB:
		return q.OptionB
	case LetterC:
		return q.OptionC
	case LetterD:
		return q.OptionD
	}
	return ""
}
