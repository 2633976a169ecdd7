package quiz_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "quizbot/internal/common/clock/mocks"
	uuidMocks "quizbot/internal/common/uuid/mocks"
	"quizbot/internal/models"
	answerRepo "quizbot/internal/repositories/answer"
	answerMocks "quizbot/internal/repositories/answer/mocks"
	participantRepo "quizbot/internal/repositories/participant"
	participantMocks "quizbot/internal/repositories/participant/mocks"
	questionRepo "quizbot/internal/repositories/question"
	questionMocks "quizbot/internal/repositories/question/mocks"
	sessionRepo "quizbot/internal/repositories/session"
	sessionMocks "quizbot/internal/repositories/session/mocks"
	"quizbot/internal/services/quiz"
	quizMocks "quizbot/internal/services/quiz/mocks"
	"quizbot/internal/services/telemetry"
)

type QuizServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockSessionRepo     *sessionMocks.MockRepository
	mockQuestionRepo    *questionMocks.MockRepository
	mockParticipantRepo *participantMocks.MockRepository
	mockAnswerRepo      *answerMocks.MockRepository
	mockChannel         *quizMocks.MockChannel
	mockRewarder        *quizMocks.MockRewarder
	mockClock           *clockMocks.MockClock
	mockUUID            *uuidMocks.MockUUID
	svc                 interface {
		quiz.Service
		Close()
	}
	ctx context.Context

	// Test data
	testTime      time.Time
	testGuildID   string
	testChannelID string
	testCreatorID string
	testSessionID string

	// Reusable test fixtures
	createdSession *models.Session
	runningSession *models.Session

	createInput *quiz.CreateSessionInput
}

func (s *QuizServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockQuestionRepo = questionMocks.NewMockRepository(s.mockCtrl)
	s.mockParticipantRepo = participantMocks.NewMockRepository(s.mockCtrl)
	s.mockAnswerRepo = answerMocks.NewMockRepository(s.mockCtrl)
	s.mockChannel = quizMocks.NewMockChannel(s.mockCtrl)
	s.mockRewarder = quizMocks.NewMockRewarder(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testCreatorID = "test-creator-id"
	s.testSessionID = fmt.Sprintf("QZ_%d_a1b2c3d4", s.testTime.UnixMilli())

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("a1b2c3d4-0000-0000-0000-000000000000").AnyTimes()

	started := s.testTime
	s.createdSession = &models.Session{
		ID:              s.testSessionID,
		GuildID:         s.testGuildID,
		CreatorID:       s.testCreatorID,
		CreatorName:     "Test Creator",
		Category:        "vehicles",
		QuestionCount:   10,
		TimePerQuestion: 20,
		ChannelID:       s.testChannelID,
		Status:          models.SessionStatusCreated,
		CreatedAt:       s.testTime,
	}
	s.runningSession = &models.Session{
		ID:              s.testSessionID,
		GuildID:         s.testGuildID,
		CreatorID:       s.testCreatorID,
		CreatorName:     "Test Creator",
		Category:        "vehicles",
		QuestionCount:   10,
		TimePerQuestion: 20,
		ChannelID:       s.testChannelID,
		Status:          models.SessionStatusRunning,
		CreatedAt:       s.testTime,
		StartedAt:       &started,
	}

	s.createInput = &quiz.CreateSessionInput{
		GuildID:         s.testGuildID,
		ChannelID:       s.testChannelID,
		CreatorID:       s.testCreatorID,
		CreatorName:     "Test Creator",
		Category:        "vehicles",
		QuestionCount:   10,
		TimePerQuestion: 20,
	}

	svc, err := quiz.NewService(&quiz.Config{
		Categories:      []string{"vehicles", "maps", "gameplay", "items", "history"},
		CountdownTicks:  3,
		TickInterval:    100 * time.Millisecond,
		GoPause:         10 * time.Millisecond,
		ResultsPause:    10 * time.Millisecond,
		SessionRepo:     s.mockSessionRepo,
		QuestionRepo:    s.mockQuestionRepo,
		ParticipantRepo: s.mockParticipantRepo,
		AnswerRepo:      s.mockAnswerRepo,
		Channel:         s.mockChannel,
		Rewarder:        s.mockRewarder,
		Recorder:        telemetry.NewLogRecorder(),
		Clock:           s.mockClock,
		UUIDGenerator:   s.mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *QuizServiceTestSuite) TearDownTest() {
	s.svc.Close()
	s.mockCtrl.Finish()
}

func TestQuizServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuizServiceTestSuite))
}

func (s *QuizServiceTestSuite) expectNoActiveSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), &sessionRepo.GetActiveSessionByGuildInput{
			GuildID: s.testGuildID,
		}).
		Return(nil, sessionRepo.ErrNoActiveSession)
}

func (s *QuizServiceTestSuite) TestNewServiceValidatesConfig() {
	_, err := quiz.NewService(nil)
	s.ErrorIs(err, quiz.ErrNilConfig)

	_, err = quiz.NewService(&quiz.Config{})
	s.ErrorIs(err, quiz.ErrNilSessionRepo)
}

func (s *QuizServiceTestSuite) TestCreateSession() {
	s.expectNoActiveSession()
	s.mockQuestionRepo.EXPECT().
		CountQuestions(gomock.Any(), &questionRepo.CountQuestionsInput{Category: "vehicles"}).
		Return(25, nil)

	var saved *models.Session
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			saved = input.Session
			return nil
		})

	out, err := s.svc.CreateSession(s.ctx, s.createInput)
	s.Require().NoError(err)
	s.Require().NotNil(out.Session)

	s.Equal(s.testSessionID, out.Session.ID)
	s.Equal(models.SessionStatusCreated, out.Session.Status)
	s.Equal("vehicles", out.Session.Category)
	s.Equal(10, out.Session.QuestionCount)
	s.Equal(20, out.Session.TimePerQuestion)
	s.Equal(s.testTime, out.Session.CreatedAt)
	s.Nil(out.Session.StartedAt)
	s.Equal(saved, out.Session)
}

func (s *QuizServiceTestSuite) TestCreateSessionAppliesDefaults() {
	s.expectNoActiveSession()
	s.mockQuestionRepo.EXPECT().
		CountQuestions(gomock.Any(), gomock.Any()).
		Return(25, nil)
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(nil)

	input := *s.createInput
	input.QuestionCount = 0
	input.TimePerQuestion = 0

	out, err := s.svc.CreateSession(s.ctx, &input)
	s.Require().NoError(err)
	s.Equal(10, out.Session.QuestionCount)
	s.Equal(20, out.Session.TimePerQuestion)
}

func (s *QuizServiceTestSuite) TestCreateSessionUnknownCategory() {
	input := *s.createInput
	input.Category = "geography"

	_, err := s.svc.CreateSession(s.ctx, &input)
	s.ErrorIs(err, quiz.ErrUnknownCategory)
}

func (s *QuizServiceTestSuite) TestCreateSessionQuestionCountOutOfRange() {
	input := *s.createInput
	input.QuestionCount = 3

	_, err := s.svc.CreateSession(s.ctx, &input)
	s.ErrorIs(err, quiz.ErrQuestionCountOutOfRange)

	input.QuestionCount = 51
	_, err = s.svc.CreateSession(s.ctx, &input)
	s.ErrorIs(err, quiz.ErrQuestionCountOutOfRange)
}

func (s *QuizServiceTestSuite) TestCreateSessionTimeLimitOutOfRange() {
	input := *s.createInput
	input.TimePerQuestion = 5

	_, err := s.svc.CreateSession(s.ctx, &input)
	s.ErrorIs(err, quiz.ErrTimeLimitOutOfRange)

	input.TimePerQuestion = 90
	_, err = s.svc.CreateSession(s.ctx, &input)
	s.ErrorIs(err, quiz.ErrTimeLimitOutOfRange)
}

func (s *QuizServiceTestSuite) TestCreateSessionGuildAlreadyActive() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)

	_, err := s.svc.CreateSession(s.ctx, s.createInput)
	s.ErrorIs(err, quiz.ErrActiveSessionExists)
}

func (s *QuizServiceTestSuite) TestCreateSessionAllowsBankSmallerThanRequested() {
	// A thin bank only shortens the session later; create still succeeds
	s.expectNoActiveSession()
	s.mockQuestionRepo.EXPECT().
		CountQuestions(gomock.Any(), gomock.Any()).
		Return(1, nil)
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(nil)

	out, err := s.svc.CreateSession(s.ctx, s.createInput)
	s.Require().NoError(err)
	s.Equal(10, out.Session.QuestionCount)
	s.Equal(models.SessionStatusCreated, out.Session.Status)
}

func (s *QuizServiceTestSuite) TestCreateSessionSurvivesCountFailure() {
	s.expectNoActiveSession()
	s.mockQuestionRepo.EXPECT().
		CountQuestions(gomock.Any(), gomock.Any()).
		Return(0, questionRepo.ErrNoQuestionsAvailable)
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		Return(nil)

	_, err := s.svc.CreateSession(s.ctx, s.createInput)
	s.Require().NoError(err)
}

func (s *QuizServiceTestSuite) TestStartSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{SessionID: "QZ_missing"}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: "QZ_missing",
		UserID:    s.testCreatorID,
	})
	s.ErrorIs(err, quiz.ErrSessionNotFound)
}

func (s *QuizServiceTestSuite) TestStartSessionWrongState() {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)

	_, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testCreatorID,
	})
	s.ErrorIs(err, quiz.ErrInvalidSessionState)
}

func (s *QuizServiceTestSuite) TestStartSessionNotCreator() {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(s.createdSession, nil)

	_, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    "someone-else",
	})
	s.ErrorIs(err, quiz.ErrNotCreator)
}

func (s *QuizServiceTestSuite) TestStopSessionNoActive() {
	s.expectNoActiveSession()

	_, err := s.svc.StopSession(s.ctx, &quiz.StopSessionInput{
		GuildID: s.testGuildID,
		UserID:  s.testCreatorID,
	})
	s.ErrorIs(err, quiz.ErrNoActiveSession)
}

func (s *QuizServiceTestSuite) TestStopSessionNotCreator() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)

	_, err := s.svc.StopSession(s.ctx, &quiz.StopSessionInput{
		GuildID: s.testGuildID,
		UserID:  "someone-else",
	})
	s.ErrorIs(err, quiz.ErrNotCreator)
}

func (s *QuizServiceTestSuite) TestStopSessionByModerator() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)

	var saved *models.Session
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			saved = input.Session
			return nil
		})

	out, err := s.svc.StopSession(s.ctx, &quiz.StopSessionInput{
		GuildID:     s.testGuildID,
		UserID:      "a-moderator",
		IsModerator: true,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusStopped, out.Session.Status)
	s.Require().NotNil(saved.FinishedAt)
	s.Equal(s.testTime, *saved.FinishedAt)
}

func (s *QuizServiceTestSuite) TestJoinSession() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)
	s.mockParticipantRepo.EXPECT().
		EnsureParticipant(gomock.Any(), &participantRepo.EnsureParticipantInput{
			SessionID: s.testSessionID,
			UserID:    "user-1",
			Username:  "Alice",
			JoinedAt:  s.testTime,
		}).
		Return(&participantRepo.EnsureParticipantOutput{Created: true}, nil)

	out, err := s.svc.JoinSession(s.ctx, &quiz.JoinSessionInput{
		GuildID:  s.testGuildID,
		UserID:   "user-1",
		Username: "Alice",
	})
	s.Require().NoError(err)
	s.False(out.AlreadyJoined)
}

func (s *QuizServiceTestSuite) TestJoinSessionAlreadyJoined() {
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(s.runningSession, nil)
	s.mockParticipantRepo.EXPECT().
		EnsureParticipant(gomock.Any(), gomock.Any()).
		Return(&participantRepo.EnsureParticipantOutput{Created: false}, nil)

	out, err := s.svc.JoinSession(s.ctx, &quiz.JoinSessionInput{
		GuildID:  s.testGuildID,
		UserID:   "user-1",
		Username: "Alice",
	})
	s.Require().NoError(err)
	s.True(out.AlreadyJoined)
}

func (s *QuizServiceTestSuite) TestJoinSessionNotJoinable() {
	finished := *s.runningSession
	finished.Status = models.SessionStatusFinished
	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(&finished, nil)

	_, err := s.svc.JoinSession(s.ctx, &quiz.JoinSessionInput{
		GuildID: s.testGuildID,
		UserID:  "user-1",
	})
	s.ErrorIs(err, quiz.ErrNotJoinable)
}

func (s *QuizServiceTestSuite) TestGetLeaderboard() {
	sess := *s.runningSession
	sess.QuestionCount = 2
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)

	t0 := s.testTime
	s.mockParticipantRepo.EXPECT().
		ListParticipants(gomock.Any(), &participantRepo.ListParticipantsInput{
			SessionID: s.testSessionID,
		}).
		Return([]*models.Participant{
			{SessionID: s.testSessionID, UserID: "bob", Username: "Bob", TotalScore: 150, CorrectAnswers: 1, JoinedAt: t0},
			{SessionID: s.testSessionID, UserID: "dave", Username: "Dave", TotalScore: 150, CorrectAnswers: 2, JoinedAt: t0.Add(2 * time.Second)},
			{SessionID: s.testSessionID, UserID: "carol", Username: "Carol", TotalScore: 200, CorrectAnswers: 2, JoinedAt: t0},
			{SessionID: s.testSessionID, UserID: "alice", Username: "Alice", TotalScore: 150, CorrectAnswers: 2, JoinedAt: t0},
		}, nil)
	s.mockAnswerRepo.EXPECT().
		ListSessionAnswers(gomock.Any(), &answerRepo.ListSessionAnswersInput{
			SessionID: s.testSessionID,
		}).
		Return([]*models.AnswerRecord{
			{QuestionNumber: 1, TimeTaken: 4},
			{QuestionNumber: 1, TimeTaken: 6},
			{QuestionNumber: 2, TimeTaken: 2},
			{QuestionNumber: 2, TimeTaken: 8},
		}, nil)

	out, err := s.svc.GetLeaderboard(s.ctx, &quiz.GetLeaderboardInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	lb := out.Leaderboard
	s.Require().Len(lb.Entries, 4)

	// Score first, then correct answers, then who joined first
	s.Equal("carol", lb.Entries[0].UserID)
	s.Equal("alice", lb.Entries[1].UserID)
	s.Equal("dave", lb.Entries[2].UserID)
	s.Equal("bob", lb.Entries[3].UserID)
	s.Equal(1, lb.Entries[0].Rank)
	s.Equal(4, lb.Entries[3].Rank)

	s.Equal(4, lb.TotalParticipants)
	s.Equal(2, lb.QuestionsAsked)
	s.InDelta(5.0, lb.AvgTimeTaken, 0.001)
	// 7 correct answers out of a possible 4 participants x 2 questions
	s.InDelta(87.5, lb.AvgCorrectRate, 0.001)
}

func (s *QuizServiceTestSuite) TestGetLeaderboardRateUsesConfiguredCount() {
	// Only 1 of 3 questions was ever asked; the rate still divides by 3
	sess := *s.runningSession
	sess.QuestionCount = 3
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(gomock.Any(), gomock.Any()).
		Return([]*models.Participant{
			{SessionID: s.testSessionID, UserID: "alice", Username: "Alice", TotalScore: 87, CorrectAnswers: 1, JoinedAt: s.testTime},
			{SessionID: s.testSessionID, UserID: "bob", Username: "Bob", TotalScore: 0, CorrectAnswers: 0, JoinedAt: s.testTime},
		}, nil)
	s.mockAnswerRepo.EXPECT().
		ListSessionAnswers(gomock.Any(), gomock.Any()).
		Return([]*models.AnswerRecord{
			{QuestionNumber: 1, TimeTaken: 5, Correct: true},
			{QuestionNumber: 1, TimeTaken: 15},
		}, nil)

	out, err := s.svc.GetLeaderboard(s.ctx, &quiz.GetLeaderboardInput{SessionID: s.testSessionID})
	s.Require().NoError(err)

	// 1 correct out of 2 participants x 3 configured questions
	s.InDelta(16.7, out.Leaderboard.AvgCorrectRate, 0.001)
	s.Equal(1, out.Leaderboard.QuestionsAsked)
	s.InDelta(10.0, out.Leaderboard.AvgTimeTaken, 0.001)
}

func (s *QuizServiceTestSuite) TestStartSessionRunsFullSession() {
	sess := *s.createdSession
	sess.QuestionCount = 1

	question := &models.Question{
		ID:            "q-1",
		Category:      "vehicles",
		Text:          "Which of these is amphibious?",
		OptionA:       "Hatchback",
		OptionB:       "Hovercraft",
		OptionC:       "Unicycle",
		OptionD:       "Monorail",
		CorrectAnswer: models.LetterB,
	}

	stream := make(chan *quiz.Submission, 2)
	stream <- &quiz.Submission{
		UserID:   "alice",
		Username: "Alice",
		Answer:   models.LetterB,
		At:       s.testTime.Add(4 * time.Second),
	}
	stream <- &quiz.Submission{
		UserID:   "bob",
		Username: "Bob",
		Answer:   models.LetterC,
		At:       s.testTime.Add(12 * time.Second),
	}
	close(stream)

	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)
	s.expectNoActiveSession()

	var mu sync.Mutex
	var savedStatuses []models.SessionStatus
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			mu.Lock()
			savedStatuses = append(savedStatuses, input.Session.Status)
			mu.Unlock()
			return nil
		}).
		AnyTimes()

	s.mockChannel.EXPECT().
		PublishCountdown(gomock.Any(), gomock.Any()).
		Return("countdown-msg", nil)
	s.mockChannel.EXPECT().
		UpdateCountdown(gomock.Any(), "countdown-msg", gomock.Any()).
		Return(nil).
		AnyTimes()

	s.mockQuestionRepo.EXPECT().
		GetUsedQuestionIDs(gomock.Any(), &questionRepo.GetUsedQuestionIDsInput{
			SessionID: s.testSessionID,
		}).
		Return(nil, nil)
	s.mockQuestionRepo.EXPECT().
		GetRandomQuestion(gomock.Any(), &questionRepo.GetRandomQuestionInput{
			Category: "vehicles",
		}).
		Return(question, nil)
	s.mockQuestionRepo.EXPECT().
		MarkQuestionUsed(gomock.Any(), &questionRepo.MarkQuestionUsedInput{
			SessionID:  s.testSessionID,
			QuestionID: "q-1",
		}).
		Return(nil)

	s.mockChannel.EXPECT().
		PublishQuestion(gomock.Any(), gomock.Any()).
		Return("question-msg", nil)
	s.mockChannel.EXPECT().
		UpdateTimer(gomock.Any(), "question-msg", gomock.Any()).
		Return(nil).
		AnyTimes()
	s.mockChannel.EXPECT().
		StreamSubmissions(gomock.Any(), s.testChannelID, "question-msg").
		Return((<-chan *quiz.Submission)(stream), func() {}, nil)

	s.mockParticipantRepo.EXPECT().
		EnsureParticipant(gomock.Any(), gomock.Any()).
		Return(&participantRepo.EnsureParticipantOutput{Created: true}, nil).
		Times(2)

	var savedRecords []*models.AnswerRecord
	s.mockAnswerRepo.EXPECT().
		SaveAnswer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *answerRepo.SaveAnswerInput) error {
			mu.Lock()
			savedRecords = append(savedRecords, input.Record)
			mu.Unlock()
			return nil
		}).
		Times(2)

	// Alice answered B in 4s of 20s: floor(100 * (0.5 + 0.5*16/20)) = 90
	s.mockParticipantRepo.EXPECT().
		IncrementScore(gomock.Any(), &participantRepo.IncrementScoreInput{
			SessionID:    s.testSessionID,
			UserID:       "alice",
			Points:       90,
			CorrectDelta: 1,
		}).
		Return(nil)
	s.mockParticipantRepo.EXPECT().
		IncrementScore(gomock.Any(), &participantRepo.IncrementScoreInput{
			SessionID:    s.testSessionID,
			UserID:       "bob",
			Points:       0,
			CorrectDelta: 0,
		}).
		Return(nil)

	var results *quiz.ResultsView
	s.mockChannel.EXPECT().
		PublishResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *quiz.ResultsView) error {
			mu.Lock()
			results = view
			mu.Unlock()
			return nil
		})

	s.mockParticipantRepo.EXPECT().
		ListParticipants(gomock.Any(), gomock.Any()).
		Return([]*models.Participant{
			{SessionID: s.testSessionID, UserID: "alice", Username: "Alice", TotalScore: 90, CorrectAnswers: 1, JoinedAt: s.testTime},
			{SessionID: s.testSessionID, UserID: "bob", Username: "Bob", TotalScore: 0, CorrectAnswers: 0, JoinedAt: s.testTime},
		}, nil)
	s.mockAnswerRepo.EXPECT().
		ListSessionAnswers(gomock.Any(), gomock.Any()).
		Return([]*models.AnswerRecord{
			{QuestionNumber: 1, TimeTaken: 4, Correct: true},
			{QuestionNumber: 1, TimeTaken: 12},
		}, nil)

	done := make(chan struct{})
	var leaderboard *quiz.LeaderboardView
	s.mockChannel.EXPECT().
		PublishLeaderboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *quiz.LeaderboardView) error {
			mu.Lock()
			leaderboard = view
			mu.Unlock()
			close(done)
			return nil
		})

	s.mockRewarder.EXPECT().
		GrantChampionRole(gomock.Any(), s.testGuildID, "alice").
		Return(nil)
	s.mockRewarder.EXPECT().
		AwardCoins(gomock.Any(), s.testGuildID, "alice", 1000).
		Return(nil)
	s.mockRewarder.EXPECT().
		AwardCoins(gomock.Any(), s.testGuildID, "bob", 500).
		Return(nil)

	out, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testCreatorID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Session.StartedAt)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("session did not finish in time")
	}
	s.svc.Close()

	mu.Lock()
	defer mu.Unlock()

	s.Contains(savedStatuses, models.SessionStatusStarting)
	s.Contains(savedStatuses, models.SessionStatusRunning)
	s.Contains(savedStatuses, models.SessionStatusFinished)

	s.Require().Len(savedRecords, 2)
	s.Equal("alice", savedRecords[0].UserID)
	s.True(savedRecords[0].Correct)
	s.Equal(90, savedRecords[0].PointsEarned)
	s.InDelta(4.0, savedRecords[0].TimeTaken, 0.001)
	s.Equal("bob", savedRecords[1].UserID)
	s.False(savedRecords[1].Correct)
	s.Equal(0, savedRecords[1].PointsEarned)

	s.Require().NotNil(results)
	s.Equal(2, results.TotalAnswers)
	s.Equal(models.LetterB, results.CorrectAnswer)
	s.Equal("Hovercraft", results.CorrectText)
	s.True(results.Final)
	s.Require().Len(results.TopCorrect, 1)
	s.Equal("alice", results.TopCorrect[0].UserID)
	s.Require().Len(results.Options, 4)
	s.Equal(1, results.Options[1].Count)
	s.InDelta(50.0, results.Options[1].Percent, 0.001)

	s.Require().NotNil(leaderboard)
	s.Equal(1, leaderboard.QuestionsAsked)
	s.Equal("alice", leaderboard.Entries[0].UserID)
	s.InDelta(50.0, leaderboard.AvgCorrectRate, 0.001)
}

func (s *QuizServiceTestSuite) TestQuestionExhaustionFinishesSessionEarly() {
	// Three questions configured, only one in the bank. Round one plays
	// out, round two finds nothing and the session wraps up gracefully.
	sess := *s.createdSession
	sess.QuestionCount = 3

	question := &models.Question{
		ID:            "q-1",
		Category:      "vehicles",
		Text:          "Which of these is amphibious?",
		OptionA:       "Hatchback",
		OptionB:       "Hovercraft",
		OptionC:       "Unicycle",
		OptionD:       "Monorail",
		CorrectAnswer: models.LetterB,
	}

	stream := make(chan *quiz.Submission, 2)
	stream <- &quiz.Submission{
		UserID:   "alice",
		Username: "Alice",
		Answer:   models.LetterB,
		At:       s.testTime.Add(5 * time.Second),
	}
	stream <- &quiz.Submission{
		UserID:   "bob",
		Username: "Bob",
		Answer:   models.LetterC,
		At:       s.testTime.Add(15 * time.Second),
	}
	close(stream)

	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)
	s.expectNoActiveSession()

	var mu sync.Mutex
	var savedStatuses []models.SessionStatus
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			mu.Lock()
			savedStatuses = append(savedStatuses, input.Session.Status)
			mu.Unlock()
			return nil
		}).
		AnyTimes()

	s.mockChannel.EXPECT().
		PublishCountdown(gomock.Any(), gomock.Any()).
		Return("countdown-msg", nil)
	s.mockChannel.EXPECT().
		UpdateCountdown(gomock.Any(), "countdown-msg", gomock.Any()).
		Return(nil).
		AnyTimes()

	s.mockQuestionRepo.EXPECT().
		GetUsedQuestionIDs(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	s.mockQuestionRepo.EXPECT().
		GetRandomQuestion(gomock.Any(), &questionRepo.GetRandomQuestionInput{
			Category: "vehicles",
		}).
		Return(question, nil)
	s.mockQuestionRepo.EXPECT().
		MarkQuestionUsed(gomock.Any(), gomock.Any()).
		Return(nil)

	s.mockChannel.EXPECT().
		PublishQuestion(gomock.Any(), gomock.Any()).
		Return("question-msg", nil)
	s.mockChannel.EXPECT().
		UpdateTimer(gomock.Any(), "question-msg", gomock.Any()).
		Return(nil).
		AnyTimes()
	s.mockChannel.EXPECT().
		StreamSubmissions(gomock.Any(), s.testChannelID, "question-msg").
		Return((<-chan *quiz.Submission)(stream), func() {}, nil)

	s.mockParticipantRepo.EXPECT().
		EnsureParticipant(gomock.Any(), gomock.Any()).
		Return(&participantRepo.EnsureParticipantOutput{Created: true}, nil).
		Times(2)
	s.mockAnswerRepo.EXPECT().
		SaveAnswer(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	// Alice answered B in 5s of 20s: floor(100 * (0.5 + 0.5*15/20)) = 87
	s.mockParticipantRepo.EXPECT().
		IncrementScore(gomock.Any(), &participantRepo.IncrementScoreInput{
			SessionID:    s.testSessionID,
			UserID:       "alice",
			Points:       87,
			CorrectDelta: 1,
		}).
		Return(nil)
	s.mockParticipantRepo.EXPECT().
		IncrementScore(gomock.Any(), &participantRepo.IncrementScoreInput{
			SessionID:    s.testSessionID,
			UserID:       "bob",
			Points:       0,
			CorrectDelta: 0,
		}).
		Return(nil)

	var results *quiz.ResultsView
	s.mockChannel.EXPECT().
		PublishResults(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *quiz.ResultsView) error {
			mu.Lock()
			results = view
			mu.Unlock()
			return nil
		})

	// Round two: the only question is used up
	s.mockQuestionRepo.EXPECT().
		GetUsedQuestionIDs(gomock.Any(), gomock.Any()).
		Return([]string{"q-1"}, nil)
	s.mockQuestionRepo.EXPECT().
		GetRandomQuestion(gomock.Any(), &questionRepo.GetRandomQuestionInput{
			Category:   "vehicles",
			ExcludeIDs: []string{"q-1"},
		}).
		Return(nil, questionRepo.ErrNoQuestionsAvailable)
	s.mockChannel.EXPECT().
		PublishNotice(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil)

	s.mockParticipantRepo.EXPECT().
		ListParticipants(gomock.Any(), gomock.Any()).
		Return([]*models.Participant{
			{SessionID: s.testSessionID, UserID: "alice", Username: "Alice", TotalScore: 87, CorrectAnswers: 1, JoinedAt: s.testTime},
			{SessionID: s.testSessionID, UserID: "bob", Username: "Bob", TotalScore: 0, CorrectAnswers: 0, JoinedAt: s.testTime},
		}, nil)
	s.mockAnswerRepo.EXPECT().
		ListSessionAnswers(gomock.Any(), gomock.Any()).
		Return([]*models.AnswerRecord{
			{QuestionNumber: 1, TimeTaken: 5, Correct: true},
			{QuestionNumber: 1, TimeTaken: 15},
		}, nil)

	done := make(chan struct{})
	var leaderboard *quiz.LeaderboardView
	s.mockChannel.EXPECT().
		PublishLeaderboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, view *quiz.LeaderboardView) error {
			mu.Lock()
			leaderboard = view
			mu.Unlock()
			close(done)
			return nil
		})

	s.mockRewarder.EXPECT().
		GrantChampionRole(gomock.Any(), s.testGuildID, "alice").
		Return(nil)
	s.mockRewarder.EXPECT().
		AwardCoins(gomock.Any(), s.testGuildID, "alice", 1000).
		Return(nil)
	s.mockRewarder.EXPECT().
		AwardCoins(gomock.Any(), s.testGuildID, "bob", 500).
		Return(nil)

	_, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testCreatorID,
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("session did not finish in time")
	}
	s.svc.Close()

	mu.Lock()
	defer mu.Unlock()

	s.Contains(savedStatuses, models.SessionStatusFinished)
	s.NotContains(savedStatuses, models.SessionStatusStopped)

	s.Require().NotNil(results)
	// Round one was not known to be the last when its results went out
	s.False(results.Final)

	s.Require().NotNil(leaderboard)
	s.Equal(1, leaderboard.QuestionsAsked)
	s.Require().Len(leaderboard.Entries, 2)
	s.Equal("alice", leaderboard.Entries[0].UserID)
	s.Equal(87, leaderboard.Entries[0].Score)
	s.Equal("bob", leaderboard.Entries[1].UserID)
	// 1 correct out of 2 participants x 3 configured questions
	s.InDelta(16.7, leaderboard.AvgCorrectRate, 0.001)
}

func (s *QuizServiceTestSuite) TestRunningPersistFailureAbortsSession() {
	// If the session cannot be marked running, no round may start and
	// the players get told instead of staring at a dead countdown
	sess := *s.createdSession

	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)
	s.expectNoActiveSession()

	s.mockChannel.EXPECT().
		PublishCountdown(gomock.Any(), gomock.Any()).
		Return("countdown-msg", nil)
	s.mockChannel.EXPECT().
		UpdateCountdown(gomock.Any(), "countdown-msg", gomock.Any()).
		Return(nil).
		AnyTimes()

	s.mockChannel.EXPECT().
		PublishNotice(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil)

	done := make(chan struct{})
	var mu sync.Mutex
	var savedStatuses []models.SessionStatus
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			mu.Lock()
			savedStatuses = append(savedStatuses, input.Session.Status)
			mu.Unlock()
			switch input.Session.Status {
			case models.SessionStatusRunning:
				return fmt.Errorf("connection refused")
			case models.SessionStatusStopped:
				close(done)
			}
			return nil
		}).
		AnyTimes()

	_, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testCreatorID,
	})
	s.Require().NoError(err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		s.FailNow("session was never aborted")
	}
	s.svc.Close()

	mu.Lock()
	defer mu.Unlock()
	s.Equal(models.SessionStatusStopped, savedStatuses[len(savedStatuses)-1])
	s.Require().NotNil(sess.FinishedAt)
}

func (s *QuizServiceTestSuite) TestStopSessionCancelsRunningSession() {
	sess := *s.createdSession

	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&sess, nil)
	s.expectNoActiveSession()

	countdownShown := make(chan struct{})
	s.mockChannel.EXPECT().
		PublishCountdown(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *quiz.CountdownView) (string, error) {
			close(countdownShown)
			return "countdown-msg", nil
		})
	s.mockChannel.EXPECT().
		UpdateCountdown(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	var mu sync.Mutex
	var savedStatuses []models.SessionStatus
	s.mockSessionRepo.EXPECT().
		SaveSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveSessionInput) error {
			mu.Lock()
			savedStatuses = append(savedStatuses, input.Session.Status)
			mu.Unlock()
			return nil
		}).
		AnyTimes()

	out, err := s.svc.StartSession(s.ctx, &quiz.StartSessionInput{
		SessionID: s.testSessionID,
		UserID:    s.testCreatorID,
	})
	s.Require().NoError(err)

	select {
	case <-countdownShown:
	case <-time.After(5 * time.Second):
		s.FailNow("countdown never started")
	}

	s.mockSessionRepo.EXPECT().
		GetActiveSessionByGuild(gomock.Any(), gomock.Any()).
		Return(out.Session, nil)

	stopOut, err := s.svc.StopSession(s.ctx, &quiz.StopSessionInput{
		GuildID: s.testGuildID,
		UserID:  s.testCreatorID,
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusStopped, stopOut.Session.Status)

	// Close waits for the round loop to drain. No question was ever
	// published and no leaderboard is posted for stopped sessions.
	s.svc.Close()

	mu.Lock()
	defer mu.Unlock()
	s.Contains(savedStatuses, models.SessionStatusStopped)
	s.NotContains(savedStatuses, models.SessionStatusRunning)
}
