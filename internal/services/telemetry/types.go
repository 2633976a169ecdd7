package telemetry

import (
	"time"

	"quizbot/internal/models"
)

// SessionCreatedEvent describes a newly created session
type SessionCreatedEvent struct {
	SessionID       string
	GuildID         string
	CreatorID       string
	CreatorName     string
	Category        string
	QuestionCount   int
	TimePerQuestion int
	ChannelID       string
}

// SessionStartedEvent describes a session entering the running state
type SessionStartedEvent struct {
	SessionID string
	StartedAt time.Time
}

// AnswerSubmittedEvent describes one accepted answer submission
type AnswerSubmittedEvent struct {
	SessionID      string
	QuestionNumber int
	UserID         string
	Answer         models.Letter
	TimeTaken      float64
}

// ScoreAwardedEvent describes the points given for one submission
type ScoreAwardedEvent struct {
	SessionID      string
	QuestionNumber int
	UserID         string
	Points         int
	Correct        bool
}

// RewardedParticipant is one top-3 entry in a completion event
type RewardedParticipant struct {
	UserID   string
	Username string
	Score    int
}

// SessionCompletedEvent describes a session reaching a terminal state
type SessionCompletedEvent struct {
	SessionID         string
	Status            models.SessionStatus
	CompletedAt       time.Time
	TotalParticipants int
	AvgCorrectRate    float64
	AvgTimeTaken      float64
	TopThree          []RewardedParticipant
}
