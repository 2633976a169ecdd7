package answer

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
	answerKeyPrefix = "answer:"  // one value per (session, question, user)
	indexKeyPrefix  = "answers:" // list of answer keys per session, insertion order
)

// ErrAnswerExists is returned when a user already has a record for a question
var ErrAnswerExists = errors.New("answer already recorded for this question")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed answer repository
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

func answerKey(sessionID, questionID, userID string) string {
	return answerKeyPrefix + sessionID + ":" + questionID + ":" + userID
}

// SaveAnswer stores an answer record. SETNX is the uniqueness safety net;
// the collection window already deduplicates per user.
func (r *redisRepository) SaveAnswer(ctx context.Context, input *SaveAnswerInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	rec := input.Record
	if rec.SessionID == "" || rec.QuestionID == "" || rec.UserID == "" {
		return errors.New("record session ID, question ID and user ID cannot be empty")
	}

	recordJSON, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal answer record: %w", err)
	}

	key := answerKey(rec.SessionID, rec.QuestionID, rec.UserID)
	set, err := r.client.SetNX(ctx, key, recordJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save answer record: %w", err)
	}
	if !set {
		return ErrAnswerExists
	}

	if err := r.client.RPush(ctx, indexKeyPrefix+rec.SessionID, key).Err(); err != nil {
		return fmt.Errorf("failed to index answer record: %w", err)
	}

	return nil
}

// ListSessionAnswers retrieves all answer records of a session in the
// order they were written
func (r *redisRepository) ListSessionAnswers(ctx context.Context, input *ListSessionAnswersInput) ([]*models.AnswerRecord, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	keys, err := r.client.LRange(ctx, indexKeyPrefix+input.SessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list answer keys: %w", err)
	}

	if len(keys) == 0 {
		return []*models.AnswerRecord{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch answer records: %w", err)
	}

	records := make([]*models.AnswerRecord, 0, len(keys))
	for i, cmd := range cmds {
		recordJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to fetch answer record %s: %w", keys[i], err)
		}

		var record models.AnswerRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answer record %s: %w", keys[i], err)
		}

		records = append(records, &record)
	}

	return records, nil
}
