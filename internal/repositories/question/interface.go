package question

import (
	"context"

	"quizbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go quizbot/internal/repositories/question Repository

// Repository defines the interface for the question bank
type Repository interface {
	// SaveQuestion stores a new question with a generated ID. Duplicate
	// questions (same category and text) are rejected.
	SaveQuestion(ctx context.Context, input *SaveQuestionInput) (*SaveQuestionOutput, error)

	// GetQuestion retrieves a question by ID
	GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	// GetRandomQuestion picks a random question from a category, skipping
	// the excluded IDs
	GetRandomQuestion(ctx context.Context, input *GetRandomQuestionInput) (*models.Question, error)

	// CountQuestions returns how many questions a category holds
	CountQuestions(ctx context.Context, input *CountQuestionsInput) (int, error)

	// MarkQuestionUsed records that a session has used a question so it is
	// never selected again for that session
	MarkQuestionUsed(ctx context.Context, input *MarkQuestionUsedInput) error

	// GetUsedQuestionIDs lists the question IDs a session has already used
	GetUsedQuestionIDs(ctx context.Context, input *GetUsedQuestionIDsInput) ([]string, error)
}
