package question

import (
	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

// Config holds configuration for the Redis question repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Optional seed for deterministic selection in tests
	Seed int64
}

// SaveQuestionInput contains parameters for storing a question
type SaveQuestionInput struct {
	Question *models.Question
}

// SaveQuestionOutput contains the result of storing a question
type SaveQuestionOutput struct {
	// QuestionID is the generated identifier
	QuestionID string
}

// GetQuestionInput contains parameters for retrieving a question by ID
type GetQuestionInput struct {
	QuestionID string
}

// GetRandomQuestionInput contains parameters for random selection
type GetRandomQuestionInput struct {
	Category string

	// ExcludeIDs are question IDs that must not be selected
	ExcludeIDs []string
}

// CountQuestionsInput contains parameters for counting a category
type CountQuestionsInput struct {
	Category string
}

// MarkQuestionUsedInput contains parameters for recording question usage
type MarkQuestionUsedInput struct {
	SessionID  string
	QuestionID string
}

// GetUsedQuestionIDsInput contains parameters for listing used questions
type GetUsedQuestionIDsInput struct {
	SessionID string
}
