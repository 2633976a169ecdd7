package participant

import (
	"context"

	"quizbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go quizbot/internal/repositories/participant Repository

// Repository defines the interface for participant persistence
type Repository interface {
	// EnsureParticipant creates a participant with zero scores if one does
	// not already exist. Calling it again for the same user is a no-op.
	EnsureParticipant(ctx context.Context, input *EnsureParticipantInput) (*EnsureParticipantOutput, error)

	// IncrementScore atomically adds points and correct-answer count to a
	// participant. Increments are never lost to concurrent writers.
	IncrementScore(ctx context.Context, input *IncrementScoreInput) error

	// GetParticipant retrieves one participant of a session
	GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error)

	// ListParticipants retrieves all participants of a session
	ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error)
}
