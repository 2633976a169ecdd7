package session

import (
	"context"

	"quizbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go quizbot/internal/repositories/session Repository

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session and maintains the guild's
	// active-session index based on the session status
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// GetActiveSessionByGuild retrieves the session currently counting as
	// active (starting or running) for a guild
	GetActiveSessionByGuild(ctx context.Context, input *GetActiveSessionByGuildInput) (*models.Session, error)
}
