package answer

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"quizbot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRecord(questionID, userID string, points int) *models.AnswerRecord {
	return &models.AnswerRecord{
		SessionID:      "QZ_1_abc",
		QuestionID:     questionID,
		QuestionNumber: 1,
		UserID:         userID,
		Answer:         models.LetterC,
		Correct:        points > 0,
		TimeTaken:      5.2,
		PointsEarned:   points,
		AnsweredAt:     s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndListAnswers() {
	records := []*models.AnswerRecord{
		s.newRecord("q-1", "user-1", 87),
		s.newRecord("q-1", "user-2", 0),
		s.newRecord("q-2", "user-1", 100),
	}
	for _, rec := range records {
		err := s.repo.SaveAnswer(context.Background(), &SaveAnswerInput{Record: rec})
		s.Require().NoError(err)
	}

	listed, err := s.repo.ListSessionAnswers(context.Background(), &ListSessionAnswersInput{
		SessionID: "QZ_1_abc",
	})
	s.Require().NoError(err)
	s.Require().Len(listed, 3)

	// Insertion order is preserved
	s.Equal("user-1", listed[0].UserID)
	s.Equal("q-1", listed[0].QuestionID)
	s.Equal(87, listed[0].PointsEarned)
	s.Equal("user-2", listed[1].UserID)
	s.Equal("q-2", listed[2].QuestionID)
}

func (s *RedisRepositoryTestSuite) TestSaveAnswerOncePerQuestion() {
	rec := s.newRecord("q-1", "user-1", 87)
	err := s.repo.SaveAnswer(context.Background(), &SaveAnswerInput{Record: rec})
	s.Require().NoError(err)

	dup := s.newRecord("q-1", "user-1", 100)
	err = s.repo.SaveAnswer(context.Background(), &SaveAnswerInput{Record: dup})
	s.Require().ErrorIs(err, ErrAnswerExists)

	listed, err := s.repo.ListSessionAnswers(context.Background(), &ListSessionAnswersInput{
		SessionID: "QZ_1_abc",
	})
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal(87, listed[0].PointsEarned)
}

func (s *RedisRepositoryTestSuite) TestSameUserDifferentQuestions() {
	s.Require().NoError(s.repo.SaveAnswer(context.Background(), &SaveAnswerInput{
		Record: s.newRecord("q-1", "user-1", 87),
	}))
	s.Require().NoError(s.repo.SaveAnswer(context.Background(), &SaveAnswerInput{
		Record: s.newRecord("q-2", "user-1", 50),
	}))

	listed, err := s.repo.ListSessionAnswers(context.Background(), &ListSessionAnswersInput{
		SessionID: "QZ_1_abc",
	})
	s.Require().NoError(err)
	s.Len(listed, 2)
}

func (s *RedisRepositoryTestSuite) TestListAnswersEmptySession() {
	listed, err := s.repo.ListSessionAnswers(context.Background(), &ListSessionAnswersInput{
		SessionID: "QZ_nothing",
	})
	s.Require().NoError(err)
	s.Empty(listed)
}
