package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix = "quiz_session:"
	activeKeyPrefix  = "active_session:" // guild ID -> active session ID
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// ErrNoActiveSession is returned when a guild has no starting or running session
var ErrNoActiveSession = errors.New("no active session for this guild")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveSession persists a session to Redis and keeps the guild's
// active-session pointer in sync with the session status
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	sessionKey := sessionKeyPrefix + input.Session.ID
	activeKey := activeKeyPrefix + input.Session.GuildID

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey, sessionJSON, 0)

	if input.Session.Status.Active() {
		pipe.Set(ctx, activeKey, input.Session.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	// Clear the active pointer when this session leaves the active states,
	// but only if it still points at this session
	if !input.Session.Status.Active() {
		currentID, err := r.client.Get(ctx, activeKey).Result()
		if err == nil && currentID == input.Session.ID {
			if err := r.client.Del(ctx, activeKey).Err(); err != nil {
				return fmt.Errorf("failed to clear active session index: %w", err)
			}
		}
	}

	return nil
}

// GetSession retrieves a session by ID from Redis
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetActiveSessionByGuild retrieves the starting or running session for a guild
func (r *redisRepository) GetActiveSessionByGuild(ctx context.Context, input *GetActiveSessionByGuildInput) (*models.Session, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	activeKey := activeKeyPrefix + input.GuildID
	sessionID, err := r.client.Get(ctx, activeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNoActiveSession
		}
		return nil, fmt.Errorf("failed to get active session ID: %w", err)
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			// Stale pointer, clear it
			r.client.Del(ctx, activeKey)
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	// The pointer can lag a status change; treat non-active sessions as absent
	if !session.Status.Active() {
		r.client.Del(ctx, activeKey)
		return nil, ErrNoActiveSession
	}

	return session, nil
}
