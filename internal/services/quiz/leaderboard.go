package quiz

import (
	"context"
	"log"
	"math"
	"sort"

	"quizbot/internal/models"
	answerRepo "quizbot/internal/repositories/answer"
	participantRepo "quizbot/internal/repositories/participant"
)

// buildLeaderboard computes the standings and aggregate stats of a session
func (s *service) buildLeaderboard(ctx context.Context, sess *models.Session) (*LeaderboardView, error) {
	parts, err := s.participantRepo.ListParticipants(ctx, &participantRepo.ListParticipantsInput{
		SessionID: sess.ID,
	})
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.ListSessionAnswers(ctx, &answerRepo.ListSessionAnswersInput{
		SessionID: sess.ID,
	})
	if err != nil {
		return nil, err
	}

	// Ties break on correct answers, then on who joined first
	sort.SliceStable(parts, func(i, j int) bool {
		if parts[i].TotalScore != parts[j].TotalScore {
			return parts[i].TotalScore > parts[j].TotalScore
		}
		if parts[i].CorrectAnswers != parts[j].CorrectAnswers {
			return parts[i].CorrectAnswers > parts[j].CorrectAnswers
		}
		return parts[i].JoinedAt.Before(parts[j].JoinedAt)
	})

	view := &LeaderboardView{
		Session:           sess,
		TotalParticipants: len(parts),
	}

	for i, p := range parts {
		view.Entries = append(view.Entries, LeaderboardEntry{
			Rank:           i + 1,
			UserID:         p.UserID,
			Username:       p.Username,
			Score:          p.TotalScore,
			CorrectAnswers: p.CorrectAnswers,
		})
	}

	questionsAsked := 0
	totalTime := 0.0
	for _, a := range answers {
		if a.QuestionNumber > questionsAsked {
			questionsAsked = a.QuestionNumber
		}
		totalTime += a.TimeTaken
	}
	view.QuestionsAsked = questionsAsked

	if len(answers) > 0 {
		view.AvgTimeTaken = math.Round(totalTime/float64(len(answers))*100) / 100
	}

	// The rate is over the configured question count, so sessions cut
	// short by exhaustion or a stop read as partially answered
	if len(parts) > 0 && sess.QuestionCount > 0 {
		totalCorrect := 0
		for _, p := range parts {
			totalCorrect += p.CorrectAnswers
		}
		rate := float64(totalCorrect) / float64(len(parts)*sess.QuestionCount) * 100
		view.AvgCorrectRate = math.Round(rate*10) / 10
	}

	return view, nil
}

// awardRewards grants the champion role and coin prizes to the top three.
// Reward failures never fail the session.
func (s *service) awardRewards(ctx context.Context, sess *models.Session, view *LeaderboardView) {
	for i, entry := range view.Entries {
		if i >= len(s.cfg.RewardCoins) {
			break
		}

		if i == 0 {
			if err := s.rewarder.GrantChampionRole(ctx, sess.GuildID, entry.UserID); err != nil {
				log.Printf("quiz %s: failed to grant champion role to %s: %v", sess.ID, entry.UserID, err)
			}
		}

		if err := s.rewarder.AwardCoins(ctx, sess.GuildID, entry.UserID, s.cfg.RewardCoins[i]); err != nil {
			log.Printf("quiz %s: failed to award coins to %s: %v", sess.ID, entry.UserID, err)
		}
	}
}
