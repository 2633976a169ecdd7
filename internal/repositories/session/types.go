package session

import (
	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// SaveSessionInput contains parameters for saving a session
type SaveSessionInput struct {
	Session *models.Session
}

// GetSessionInput contains parameters for retrieving a session by ID
type GetSessionInput struct {
	SessionID string
}

// GetActiveSessionByGuildInput contains parameters for the active-session lookup
type GetActiveSessionByGuildInput struct {
	GuildID string
}
