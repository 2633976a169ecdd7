package participant

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis participant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// EnsureParticipantInput contains parameters for the idempotent enrollment
type EnsureParticipantInput struct {
	SessionID string
	UserID    string
	Username  string
	JoinedAt  time.Time
}

// EnsureParticipantOutput contains the result of an enrollment attempt
type EnsureParticipantOutput struct {
	// Created indicates whether a new participant row was created
	Created bool
}

// IncrementScoreInput contains parameters for the atomic score update
type IncrementScoreInput struct {
	SessionID string
	UserID    string

	// Points to add to the total score
	Points int

	// CorrectDelta is 1 for a correct answer, 0 otherwise
	CorrectDelta int
}

// GetParticipantInput contains parameters for retrieving one participant
type GetParticipantInput struct {
	SessionID string
	UserID    string
}

// ListParticipantsInput contains parameters for listing a session's participants
type ListParticipantsInput struct {
	SessionID string
}
