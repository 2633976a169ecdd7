package participant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

const (
	// Key prefixes for Redis
	participantKeyPrefix = "participant:"  // hash per (session, user)
	membersKeyPrefix     = "participants:" // set of user IDs per session

	fieldUsername = "username"
	fieldScore    = "total_score"
	fieldCorrect  = "correct_answers"
	fieldJoinedAt = "joined_at"
)

// ErrParticipantNotFound is returned when a participant is not found
var ErrParticipantNotFound = errors.New("participant not found")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed participant repository
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

func participantKey(sessionID, userID string) string {
	return participantKeyPrefix + sessionID + ":" + userID
}

// EnsureParticipant enrolls a user into a session with zero scores.
// Membership in the session set decides whether the row already exists,
// so a second call never resets an accumulated score.
func (r *redisRepository) EnsureParticipant(ctx context.Context, input *EnsureParticipantInput) (*EnsureParticipantOutput, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	added, err := r.client.SAdd(ctx, membersKeyPrefix+input.SessionID, input.UserID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to add participant to session: %w", err)
	}

	if added == 0 {
		return &EnsureParticipantOutput{Created: false}, nil
	}

	err = r.client.HSet(ctx, participantKey(input.SessionID, input.UserID),
		fieldUsername, input.Username,
		fieldScore, 0,
		fieldCorrect, 0,
		fieldJoinedAt, input.JoinedAt.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return &EnsureParticipantOutput{Created: true}, nil
}

// IncrementScore adds points and correct count with HINCRBY so concurrent
// updates are never lost
func (r *redisRepository) IncrementScore(ctx context.Context, input *IncrementScoreInput) error {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return errors.New("input, session ID and user ID cannot be empty")
	}

	key := participantKey(input.SessionID, input.UserID)

	exists, err := r.client.SIsMember(ctx, membersKeyPrefix+input.SessionID, input.UserID).Result()
	if err != nil {
		return fmt.Errorf("failed to check participant membership: %w", err)
	}
	if !exists {
		return ErrParticipantNotFound
	}

	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, key, fieldScore, int64(input.Points))
	pipe.HIncrBy(ctx, key, fieldCorrect, int64(input.CorrectDelta))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment participant score: %w", err)
	}

	return nil
}

// GetParticipant retrieves one participant of a session
func (r *redisRepository) GetParticipant(ctx context.Context, input *GetParticipantInput) (*models.Participant, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, participantKey(input.SessionID, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrParticipantNotFound
	}

	return parseParticipant(input.SessionID, input.UserID, fields)
}

// ListParticipants retrieves all participants of a session
func (r *redisRepository) ListParticipants(ctx context.Context, input *ListParticipantsInput) ([]*models.Participant, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	userIDs, err := r.client.SMembers(ctx, membersKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list session participants: %w", err)
	}

	if len(userIDs) == 0 {
		return []*models.Participant{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.MapStringStringCmd, len(userIDs))
	for _, userID := range userIDs {
		cmds[userID] = pipe.HGetAll(ctx, participantKey(input.SessionID, userID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch participants: %w", err)
	}

	participants := make([]*models.Participant, 0, len(userIDs))
	for _, userID := range userIDs {
		fields, err := cmds[userID].Result()
		if err != nil || len(fields) == 0 {
			// Row was removed between the set read and the fetch
			continue
		}

		p, err := parseParticipant(input.SessionID, userID, fields)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	return participants, nil
}

func parseParticipant(sessionID, userID string, fields map[string]string) (*models.Participant, error) {
	score, err := strconv.Atoi(fields[fieldScore])
	if err != nil {
		return nil, fmt.Errorf("failed to parse total score for %s: %w", userID, err)
	}

	correct, err := strconv.Atoi(fields[fieldCorrect])
	if err != nil {
		return nil, fmt.Errorf("failed to parse correct answers for %s: %w", userID, err)
	}

	joinedAt, err := time.Parse(time.RFC3339Nano, fields[fieldJoinedAt])
	if err != nil {
		return nil, fmt.Errorf("failed to parse joined time for %s: %w", userID, err)
	}

	return &models.Participant{
		SessionID:      sessionID,
		UserID:         userID,
		Username:       fields[fieldUsername],
		TotalScore:     score,
		CorrectAnswers: correct,
		JoinedAt:       joinedAt,
	}, nil
}
