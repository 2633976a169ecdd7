package question

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"quizbot/internal/models"
)

const (
	// Key prefixes for Redis
	questionKeyPrefix = "question:"
	categoryKeyPrefix = "questions:"      // set of question IDs per category
	textsKeyPrefix    = "question_texts:" // set of question texts per category, for dedupe
	usedKeyPrefix     = "used_questions:" // set of used question IDs per session
)

// ErrQuestionNotFound is returned when a question is not found
var ErrQuestionNotFound = errors.New("question not found")

// ErrNoQuestionsAvailable is returned when a category has no unused questions left
var ErrNoQuestionsAvailable = errors.New("no questions available in this category")

// ErrDuplicateQuestion is returned when a question with the same category and text exists
var ErrDuplicateQuestion = errors.New("question already exists in this category")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	random *rand.Rand
}

// NewRedis creates a new Redis-backed question repository
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

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		random: rand.New(rand.NewSource(seed)),
	}, nil
}

// SaveQuestion stores a question with a generated UUID
func (r *redisRepository) SaveQuestion(ctx context.Context, input *SaveQuestionInput) (*SaveQuestionOutput, error) {
	if input == nil || input.Question == nil {
		return nil, errors.New("input and question cannot be nil")
	}

	q := input.Question
	if q.Category == "" || q.Text == "" {
		return nil, errors.New("question category and text cannot be empty")
	}

	if !q.CorrectAnswer.Valid() {
		return nil, fmt.Errorf("invalid correct answer letter: %q", q.CorrectAnswer)
	}

	// Category + text must be unique across the bank
	added, err := r.client.SAdd(ctx, textsKeyPrefix+q.Category, q.Text).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate question: %w", err)
	}
	if added == 0 {
		return nil, ErrDuplicateQuestion
	}

	stored := *q
	stored.ID = uuid.New().String()

	questionJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal question: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, questionKeyPrefix+stored.ID, questionJSON, 0)
	pipe.SAdd(ctx, categoryKeyPrefix+stored.Category, stored.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save question: %w", err)
	}

	return &SaveQuestionOutput{QuestionID: stored.ID}, nil
}

// GetQuestion retrieves a question by ID from Redis
func (r *redisRepository) GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error) {
	if input == nil || input.QuestionID == "" {
		return nil, errors.New("input and question ID cannot be empty")
	}

	questionJSON, err := r.client.Get(ctx, questionKeyPrefix+input.QuestionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	var question models.Question
	if err := json.Unmarshal([]byte(questionJSON), &question); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question: %w", err)
	}

	return &question, nil
}

// GetRandomQuestion picks a random unused question from a category
func (r *redisRepository) GetRandomQuestion(ctx context.Context, input *GetRandomQuestionInput) (*models.Question, error) {
	if input == nil || input.Category == "" {
		return nil, errors.New("input and category cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, categoryKeyPrefix+input.Category).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for category: %w", err)
	}

	excluded := make(map[string]struct{}, len(input.ExcludeIDs))
	for _, id := range input.ExcludeIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := excluded[id]; !ok {
			candidates = append(candidates, id)
		}
	}

	if len(candidates) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	return r.GetQuestion(ctx, &GetQuestionInput{
		QuestionID: candidates[r.random.Intn(len(candidates))],
	})
}

// CountQuestions returns the number of questions in a category
func (r *redisRepository) CountQuestions(ctx context.Context, input *CountQuestionsInput) (int, error) {
	if input == nil || input.Category == "" {
		return 0, errors.New("input and category cannot be empty")
	}

	count, err := r.client.SCard(ctx, categoryKeyPrefix+input.Category).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}

	return int(count), nil
}

// MarkQuestionUsed records a (session, question) pair. Marking the same
// pair twice is a no-op.
func (r *redisRepository) MarkQuestionUsed(ctx context.Context, input *MarkQuestionUsedInput) error {
	if input == nil || input.SessionID == "" || input.QuestionID == "" {
		return errors.New("input, session ID and question ID cannot be empty")
	}

	if err := r.client.SAdd(ctx, usedKeyPrefix+input.SessionID, input.QuestionID).Err(); err != nil {
		return fmt.Errorf("failed to mark question used: %w", err)
	}

	return nil
}

// GetUsedQuestionIDs lists the question IDs already used by a session
func (r *redisRepository) GetUsedQuestionIDs(ctx context.Context, input *GetUsedQuestionIDsInput) ([]string, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, usedKeyPrefix+input.SessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get used question IDs: %w", err)
	}

	return ids, nil
}
