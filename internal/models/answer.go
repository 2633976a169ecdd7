package models

import (
	"time"
)

// AnswerRecord represents one user's answer to one question in a session.
// At most one record exists per (session, question, user); records are
// immutable after creation.
type AnswerRecord struct {
	// SessionID is the session the answer belongs to
	SessionID string

	// QuestionID is the question that was answered
	QuestionID string

	// QuestionNumber is the 1-based round number within the session
	QuestionNumber int

	// UserID is the Discord user ID of the responder
	UserID string

	// Answer is the submitted option letter
	Answer Letter

	// Correct indicates whether the answer matched the correct option
	Correct bool

	// TimeTaken is the elapsed seconds between question publish and the
	// submission, clamped to [0, time limit]
	TimeTaken float64

	// PointsEarned is the score awarded for this answer
	PointsEarned int

	// AnsweredAt is when the answer was recorded
	AnsweredAt time.Time
}
