package models

import (
	"time"
)

// Participant represents a user's accumulating score within one session.
// A user becomes a participant by joining explicitly or by submitting
// their first answer.
type Participant struct {
	// SessionID is the session the participant belongs to
	SessionID string

	// UserID is the Discord user ID
	UserID string

	// Username is a display-name snapshot taken at enrollment
	Username string

	// TotalScore is the cumulative points across all rounds
	TotalScore int

	// CorrectAnswers is the cumulative count of correct answers
	CorrectAnswers int

	// JoinedAt is when the participant was enrolled
	JoinedAt time.Time
}
