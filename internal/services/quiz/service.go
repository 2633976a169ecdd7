package quiz

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"quizbot/internal/common/clock"
	"quizbot/internal/common/uuid"
	"quizbot/internal/models"
	answerRepo "quizbot/internal/repositories/answer"
	participantRepo "quizbot/internal/repositories/participant"
	questionRepo "quizbot/internal/repositories/question"
	sessionRepo "quizbot/internal/repositories/session"
	"quizbot/internal/scoring"
	"quizbot/internal/services/telemetry"
)

// service implements the Service interface
type service struct {
	cfg             *Config
	sessionRepo     sessionRepo.Repository
	questionRepo    questionRepo.Repository
	participantRepo participantRepo.Repository
	answerRepo      answerRepo.Repository
	channel         Channel
	rewarder        Rewarder
	recorder        telemetry.Recorder
	calculator      *scoring.Calculator
	clock           clock.Clock
	uuidGen         uuid.UUID

	// mu guards cancels; one entry per session with a live round loop
	mu      sync.Mutex
	cancels map[string]context.CancelFunc
	wg      sync.WaitGroup
}

// NewService creates a new quiz service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.QuestionRepo == nil {
		return nil, ErrNilQuestionRepo
	}
	if cfg.ParticipantRepo == nil {
		return nil, ErrNilParticipantRepo
	}
	if cfg.AnswerRepo == nil {
		return nil, ErrNilAnswerRepo
	}
	if cfg.Channel == nil {
		return nil, ErrNilChannel
	}
	if cfg.Rewarder == nil {
		return nil, ErrNilRewarder
	}
	if cfg.Recorder == nil {
		return nil, ErrNilRecorder
	}
	if len(cfg.Categories) == 0 {
		return nil, ErrNoCategories
	}

	// Fill in defaults for anything the caller left zero
	if cfg.MinQuestions == 0 {
		cfg.MinQuestions = 5
	}
	if cfg.MaxQuestions == 0 {
		cfg.MaxQuestions = 50
	}
	if cfg.DefaultQuestions == 0 {
		cfg.DefaultQuestions = 10
	}
	if cfg.MinTime == 0 {
		cfg.MinTime = 10
	}
	if cfg.MaxTime == 0 {
		cfg.MaxTime = 60
	}
	if cfg.DefaultTime == 0 {
		cfg.DefaultTime = 20
	}
	if cfg.CountdownTicks == 0 {
		cfg.CountdownTicks = 10
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.GoPause == 0 {
		cfg.GoPause = 2 * time.Second
	}
	if cfg.ResultsPause == 0 {
		cfg.ResultsPause = 5 * time.Second
	}
	if len(cfg.RewardCoins) == 0 {
		cfg.RewardCoins = []int{1000, 500, 250}
	}

	calculator := cfg.Calculator
	if calculator == nil {
		calculator = scoring.New(nil)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	return &service{
		cfg:             cfg,
		sessionRepo:     cfg.SessionRepo,
		questionRepo:    cfg.QuestionRepo,
		participantRepo: cfg.ParticipantRepo,
		answerRepo:      cfg.AnswerRepo,
		channel:         cfg.Channel,
		rewarder:        cfg.Rewarder,
		recorder:        cfg.Recorder,
		calculator:      calculator,
		clock:           clk,
		uuidGen:         uuidGen,
		cancels:         make(map[string]context.CancelFunc),
	}, nil
}

// CreateSession validates the request and stores a new session
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if !s.validCategory(input.Category) {
		return nil, ErrUnknownCategory
	}

	questionCount := input.QuestionCount
	if questionCount == 0 {
		questionCount = s.cfg.DefaultQuestions
	}
	if questionCount < s.cfg.MinQuestions || questionCount > s.cfg.MaxQuestions {
		return nil, ErrQuestionCountOutOfRange
	}

	timePerQuestion := input.TimePerQuestion
	if timePerQuestion == 0 {
		timePerQuestion = s.cfg.DefaultTime
	}
	if timePerQuestion < s.cfg.MinTime || timePerQuestion > s.cfg.MaxTime {
		return nil, ErrTimeLimitOutOfRange
	}

	// One active session per guild
	_, err := s.sessionRepo.GetActiveSessionByGuild(ctx, &sessionRepo.GetActiveSessionByGuildInput{
		GuildID: input.GuildID,
	})
	if err == nil {
		return nil, ErrActiveSessionExists
	}
	if !errors.Is(err, sessionRepo.ErrNoActiveSession) {
		return nil, err
	}

	// A short bank is not a create failure; the round loop ends the
	// session gracefully if the category runs out of questions
	available, err := s.questionRepo.CountQuestions(ctx, &questionRepo.CountQuestionsInput{
		Category: input.Category,
	})
	if err != nil {
		log.Printf("quiz create: failed to count %s questions: %v", input.Category, err)
	} else if available < questionCount {
		log.Printf("quiz create: category %s has %d questions for a %d-question session, it may end early", input.Category, available, questionCount)
	}

	now := s.clock.Now()
	sess := &models.Session{
		ID:              s.newSessionID(now),
		GuildID:         input.GuildID,
		CreatorID:       input.CreatorID,
		CreatorName:     input.CreatorName,
		Category:        input.Category,
		QuestionCount:   questionCount,
		TimePerQuestion: timePerQuestion,
		ChannelID:       input.ChannelID,
		Status:          models.SessionStatusCreated,
		CreatedAt:       now,
	}

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	s.recorder.SessionCreated(&telemetry.SessionCreatedEvent{
		SessionID:       sess.ID,
		GuildID:         sess.GuildID,
		CreatorID:       sess.CreatorID,
		CreatorName:     sess.CreatorName,
		Category:        sess.Category,
		QuestionCount:   sess.QuestionCount,
		TimePerQuestion: sess.TimePerQuestion,
		ChannelID:       sess.ChannelID,
	})

	return &CreateSessionOutput{Session: sess}, nil
}

// StartSession moves a created session into its countdown and launches the round loop
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if sess.Status != models.SessionStatusCreated {
		return nil, ErrInvalidSessionState
	}
	if input.UserID != sess.CreatorID && !input.IsModerator {
		return nil, ErrNotCreator
	}

	// Re-check the conflict: another session may have started since this
	// one was created
	active, err := s.sessionRepo.GetActiveSessionByGuild(ctx, &sessionRepo.GetActiveSessionByGuildInput{
		GuildID: sess.GuildID,
	})
	if err == nil && active.ID != sess.ID {
		return nil, ErrActiveSessionExists
	}
	if err != nil && !errors.Is(err, sessionRepo.ErrNoActiveSession) {
		return nil, err
	}

	now := s.clock.Now()
	sess.Status = models.SessionStatusStarting
	sess.StartedAt = &now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	s.mu.Lock()
	s.cancels[sess.ID] = cancel
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			s.mu.Lock()
			delete(s.cancels, sess.ID)
			s.mu.Unlock()
			cancel()
		}()
		s.run(runCtx, sess)
	}()

	return &StartSessionOutput{Session: sess}, nil
}

// StopSession stops the guild's active session
func (s *service) StopSession(ctx context.Context, input *StopSessionInput) (*StopSessionOutput, error) {
	sess, err := s.sessionRepo.GetActiveSessionByGuild(ctx, &sessionRepo.GetActiveSessionByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	if input.UserID != sess.CreatorID && !input.IsModerator {
		return nil, ErrNotCreator
	}

	now := s.clock.Now()
	sess.Status = models.SessionStatusStopped
	sess.FinishedAt = &now

	// Persist the stop before cancelling so the round loop can never
	// overwrite it with a later state
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	cancel, ok := s.cancels[sess.ID]
	s.mu.Unlock()
	if ok {
		cancel()
	}

	return &StopSessionOutput{Session: sess}, nil
}

// JoinSession enrolls a user in the guild's active session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	sess, err := s.sessionRepo.GetActiveSessionByGuild(ctx, &sessionRepo.GetActiveSessionByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	// Enrollment opens once the rounds do; during the countdown players
	// are picked up by auto-enrollment on their first answer anyway
	if sess.Status != models.SessionStatusRunning {
		return nil, ErrNotJoinable
	}

	out, err := s.participantRepo.EnsureParticipant(ctx, &participantRepo.EnsureParticipantInput{
		SessionID: sess.ID,
		UserID:    input.UserID,
		Username:  input.Username,
		JoinedAt:  s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &JoinSessionOutput{
		Session:       sess,
		AlreadyJoined: !out.Created,
	}, nil
}

// GetActiveSession retrieves the guild's counting-down or running session
func (s *service) GetActiveSession(ctx context.Context, input *GetActiveSessionInput) (*GetActiveSessionOutput, error) {
	sess, err := s.sessionRepo.GetActiveSessionByGuild(ctx, &sessionRepo.GetActiveSessionByGuildInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrNoActiveSession) {
			return nil, ErrNoActiveSession
		}
		return nil, err
	}

	return &GetActiveSessionOutput{Session: sess}, nil
}

// GetLeaderboard computes the current standings of a session
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	view, err := s.buildLeaderboard(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{Leaderboard: view}, nil
}

// Close cancels every live round loop and waits for them to drain
func (s *service) Close() {
	s.mu.Lock()
	for _, cancel := range s.cancels {
		cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *service) validCategory(category string) bool {
	for _, c := range s.cfg.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// newSessionID builds IDs like QZ_1757843200123_a1b2c3d4
func (s *service) newSessionID(now time.Time) string {
	suffix := strings.SplitN(s.uuidGen.NewUUID(), "-", 2)[0]
	return fmt.Sprintf("QZ_%d_%s", now.UnixMilli(), suffix)
}
