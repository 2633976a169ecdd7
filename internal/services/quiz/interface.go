package quiz

import (
	"context"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go quizbot/internal/services/quiz Service

// Service defines the interface for running quiz sessions
type Service interface {
	// CreateSession validates the request and stores a new session in the
	// created state. It fails if the guild already has an active session.
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// StartSession moves a created session into its countdown and launches
	// the round loop. Only the creator or a moderator may start a session.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// StopSession stops the guild's active session. Answers already
	// collected in the current window are still scored, but no final
	// leaderboard is posted.
	StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error)

	// JoinSession enrolls a user in the guild's active session with a zero
	// score. Users are also enrolled automatically on their first answer.
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// GetActiveSession retrieves the guild's counting-down or running session
	GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error)

	// GetLeaderboard computes the current standings of a session
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
