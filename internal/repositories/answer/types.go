package answer

import (
	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

// Config holds configuration for the Redis answer repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// SaveAnswerInput contains parameters for storing an answer record
type SaveAnswerInput struct {
	Record *models.AnswerRecord
}

// ListSessionAnswersInput contains parameters for listing a session's answers
type ListSessionAnswersInput struct {
	SessionID string
}
