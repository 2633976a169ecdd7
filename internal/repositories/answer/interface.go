package answer

import (
	"context"

	"quizbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go quizbot/internal/repositories/answer Repository

// Repository defines the interface for answer-record persistence
type Repository interface {
	// SaveAnswer stores an answer record exactly once per
	// (session, question, user). A second write for the same triple fails
	// with ErrAnswerExists.
	SaveAnswer(ctx context.Context, input *SaveAnswerInput) error

	// ListSessionAnswers retrieves every answer record of a session in
	// insertion order
	ListSessionAnswers(ctx context.Context, input *ListSessionAnswersInput) ([]*models.AnswerRecord, error)
}
