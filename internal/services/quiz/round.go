package quiz

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"quizbot/internal/models"
	answerRepo "quizbot/internal/repositories/answer"
	participantRepo "quizbot/internal/repositories/participant"
	questionRepo "quizbot/internal/repositories/question"
	sessionRepo "quizbot/internal/repositories/session"
	"quizbot/internal/services/telemetry"
)

// run drives one session from countdown to a terminal state. It is the
// only goroutine that advances the session once started; StopSession
// persists the stopped state itself and then cancels ctx.
func (s *service) run(ctx context.Context, sess *models.Session) {
	if !s.runCountdown(ctx, sess) {
		s.finishStopped(sess)
		return
	}

	if ctx.Err() != nil {
		s.finishStopped(sess)
		return
	}

	sess.Status = models.SessionStatusRunning
	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		log.Printf("quiz %s: failed to mark session running: %v", sess.ID, err)
		s.abortSession(ctx, sess)
		return
	}

	s.recorder.SessionStarted(&telemetry.SessionStartedEvent{
		SessionID: sess.ID,
		StartedAt: *sess.StartedAt,
	})

	asked := 0
	for number := 1; number <= sess.QuestionCount; number++ {
		ok, err := s.runRound(ctx, sess, number)
		if err != nil {
			if errors.Is(err, questionRepo.ErrNoQuestionsAvailable) {
				// Bank exhausted, end the session early with what we have
				if nerr := s.channel.PublishNotice(ctx, sess.ChannelID, "No more questions available in this category, wrapping up early."); nerr != nil {
					log.Printf("quiz %s: failed to publish exhaustion notice: %v", sess.ID, nerr)
				}
				break
			}
			log.Printf("quiz %s: round %d failed: %v", sess.ID, number, err)
			break
		}
		asked++
		if !ok {
			s.finishStopped(sess)
			return
		}

		if number < sess.QuestionCount {
			if !s.pause(ctx, s.cfg.ResultsPause) {
				s.finishStopped(sess)
				return
			}
		}
	}

	s.finishCompleted(ctx, sess, asked)
}

// runCountdown plays the pre-start countdown. It returns false when the
// session was stopped mid-countdown.
func (s *service) runCountdown(ctx context.Context, sess *models.Session) bool {
	remaining := s.cfg.CountdownTicks

	msgID, err := s.channel.PublishCountdown(ctx, &CountdownView{
		Session:   sess,
		Remaining: remaining,
	})
	if err != nil {
		log.Printf("quiz %s: failed to publish countdown: %v", sess.ID, err)
		msgID = ""
	}

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for remaining > 0 {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
			remaining--
			if msgID == "" {
				continue
			}
			err := s.channel.UpdateCountdown(ctx, msgID, &CountdownView{
				Session:   sess,
				Remaining: remaining,
			})
			if err != nil {
				log.Printf("quiz %s: failed to update countdown: %v", sess.ID, err)
			}
		}
	}

	// Hold on the GO frame so people see it before question one lands
	return s.pause(ctx, s.cfg.GoPause)
}

// runRound plays one question. It returns false when the session was
// stopped during the round; collected answers are scored either way.
func (s *service) runRound(ctx context.Context, sess *models.Session, number int) (bool, error) {
	used, err := s.questionRepo.GetUsedQuestionIDs(ctx, &questionRepo.GetUsedQuestionIDsInput{
		SessionID: sess.ID,
	})
	if err != nil {
		return false, err
	}

	q, err := s.questionRepo.GetRandomQuestion(ctx, &questionRepo.GetRandomQuestionInput{
		Category:   sess.Category,
		ExcludeIDs: used,
	})
	if err != nil {
		return false, err
	}

	err = s.questionRepo.MarkQuestionUsed(ctx, &questionRepo.MarkQuestionUsedInput{
		SessionID:  sess.ID,
		QuestionID: q.ID,
	})
	if err != nil {
		return false, err
	}

	view := &QuestionView{
		Session:   sess,
		Question:  q,
		Number:    number,
		Remaining: sess.TimePerQuestion,
	}

	msgID, err := s.channel.PublishQuestion(ctx, view)
	if err != nil {
		return false, err
	}

	stream, stop, err := s.channel.StreamSubmissions(ctx, sess.ChannelID, msgID)
	if err != nil {
		return false, err
	}
	defer stop()

	windowStart := s.clock.Now()
	limit := float64(sess.TimePerQuestion)
	collector := newAnswerCollector(windowStart, limit)

	window := time.NewTimer(time.Duration(sess.TimePerQuestion) * time.Second)
	defer window.Stop()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	stopped := false

collect:
	for {
		select {
		case <-ctx.Done():
			stopped = true
			break collect
		case <-window.C:
			break collect
		case <-ticker.C:
			view.Remaining--
			if view.Remaining < 0 {
				view.Remaining = 0
			}
			if err := s.channel.UpdateTimer(ctx, msgID, view); err != nil {
				log.Printf("quiz %s: failed to update timer: %v", sess.ID, err)
			}
		case sub, ok := <-stream:
			if !ok {
				// Stream closed, nothing more can arrive
				break collect
			}
			if collector.Submit(sub) {
				s.recorder.AnswerSubmitted(&telemetry.AnswerSubmittedEvent{
					SessionID:      sess.ID,
					QuestionNumber: number,
					UserID:         sub.UserID,
					Answer:         sub.Answer,
					TimeTaken:      sub.At.Sub(windowStart).Seconds(),
				})
			}
		}
	}

	stop()
	batch := collector.Close()

	// Answers collected before a stop are still scored, so persistence
	// must survive the cancelled run context
	persistCtx := context.WithoutCancel(ctx)
	s.scoreBatch(persistCtx, sess, q, number, batch)

	results := s.buildResults(sess, q, number, batch)
	results.Final = stopped || number == sess.QuestionCount
	if err := s.channel.PublishResults(persistCtx, results); err != nil {
		log.Printf("quiz %s: failed to publish results: %v", sess.ID, err)
	}

	return !stopped, nil
}

// scoreBatch persists and scores every collected answer of one round.
// Failures are isolated per submission so one bad write cannot swallow
// the rest of the batch.
func (s *service) scoreBatch(ctx context.Context, sess *models.Session, q *models.Question, number int, batch []*collectedAnswer) {
	limit := float64(sess.TimePerQuestion)

	for _, ca := range batch {
		sub := ca.Submission
		correct := sub.Answer == q.CorrectAnswer
		points := s.calculator.Score(correct, ca.TimeTaken, limit)
		ca.Correct = correct
		ca.Points = points

		_, err := s.participantRepo.EnsureParticipant(ctx, &participantRepo.EnsureParticipantInput{
			SessionID: sess.ID,
			UserID:    sub.UserID,
			Username:  sub.Username,
			JoinedAt:  s.clock.Now(),
		})
		if err != nil {
			log.Printf("quiz %s: failed to enroll %s: %v", sess.ID, sub.UserID, err)
			continue
		}

		err = s.answerRepo.SaveAnswer(ctx, &answerRepo.SaveAnswerInput{
			Record: &models.AnswerRecord{
				SessionID:      sess.ID,
				QuestionID:     q.ID,
				QuestionNumber: number,
				UserID:         sub.UserID,
				Answer:         sub.Answer,
				Correct:        correct,
				TimeTaken:      ca.TimeTaken,
				PointsEarned:   points,
				AnsweredAt:     sub.At,
			},
		})
		if err != nil {
			if errors.Is(err, answerRepo.ErrAnswerExists) {
				// Already scored, never double-count
				continue
			}
			log.Printf("quiz %s: failed to save answer for %s: %v", sess.ID, sub.UserID, err)
			continue
		}

		correctDelta := 0
		if correct {
			correctDelta = 1
		}
		err = s.participantRepo.IncrementScore(ctx, &participantRepo.IncrementScoreInput{
			SessionID:    sess.ID,
			UserID:       sub.UserID,
			Points:       points,
			CorrectDelta: correctDelta,
		})
		if err != nil {
			log.Printf("quiz %s: failed to add score for %s: %v", sess.ID, sub.UserID, err)
			continue
		}

		s.recorder.ScoreAwarded(&telemetry.ScoreAwardedEvent{
			SessionID:      sess.ID,
			QuestionNumber: number,
			UserID:         sub.UserID,
			Points:         points,
			Correct:        correct,
		})
	}
}

// buildResults computes the answer distribution and the fastest correct
// answers for one round
func (s *service) buildResults(sess *models.Session, q *models.Question, number int, batch []*collectedAnswer) *ResultsView {
	counts := make(map[models.Letter]int, len(models.Letters))
	for _, ca := range batch {
		counts[ca.Submission.Answer]++
	}

	total := len(batch)
	options := make([]OptionStat, 0, len(models.Letters))
	for _, l := range models.Letters {
		percent := 0.0
		if total > 0 {
			percent = math.Round(float64(counts[l])/float64(total)*1000) / 10
		}
		options = append(options, OptionStat{
			Letter:  l,
			Text:    q.OptionText(l),
			Count:   counts[l],
			Percent: percent,
		})
	}

	// Fastest correct answers, up to three. The batch is already in
	// submission order so a stable selection keeps ties fair.
	var top []RoundTopEntry
	for _, ca := range batch {
		if !ca.Correct {
			continue
		}
		entry := RoundTopEntry{
			UserID:    ca.Submission.UserID,
			Username:  ca.Submission.Username,
			TimeTaken: ca.TimeTaken,
			Points:    ca.Points,
		}
		pos := len(top)
		for pos > 0 && top[pos-1].TimeTaken > entry.TimeTaken {
			pos--
		}
		top = append(top, RoundTopEntry{})
		copy(top[pos+1:], top[pos:])
		top[pos] = entry
		if len(top) > 3 {
			top = top[:3]
		}
	}

	return &ResultsView{
		Session:       sess,
		Question:      q,
		Number:        number,
		CorrectAnswer: q.CorrectAnswer,
		CorrectText:   q.OptionText(q.CorrectAnswer),
		Options:       options,
		TotalAnswers:  total,
		TopCorrect:    top,
	}
}

// pause sleeps for d unless the session is stopped first
func (s *service) pause(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// abortSession tears a session down after a setup failure: the players
// get a notice and the session lands in a terminal state so the guild's
// active slot is released
func (s *service) abortSession(ctx context.Context, sess *models.Session) {
	persistCtx := context.WithoutCancel(ctx)

	if err := s.channel.PublishNotice(persistCtx, sess.ChannelID, "Something went wrong starting the quiz, the session has been cancelled."); err != nil {
		log.Printf("quiz %s: failed to publish abort notice: %v", sess.ID, err)
	}

	now := s.clock.Now()
	sess.Status = models.SessionStatusStopped
	sess.FinishedAt = &now
	if err := s.sessionRepo.SaveSession(persistCtx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		log.Printf("quiz %s: failed to mark aborted session stopped: %v", sess.ID, err)
	}

	s.recorder.SessionCompleted(&telemetry.SessionCompletedEvent{
		SessionID:   sess.ID,
		Status:      models.SessionStatusStopped,
		CompletedAt: now,
	})
}

// finishStopped emits the completion event for a stopped session. The
// stopped state itself was already persisted by StopSession.
func (s *service) finishStopped(sess *models.Session) {
	s.recorder.SessionCompleted(&telemetry.SessionCompletedEvent{
		SessionID:   sess.ID,
		Status:      models.SessionStatusStopped,
		CompletedAt: s.clock.Now(),
	})
}

// finishCompleted marks a session finished, posts the leaderboard, and
// hands out the rewards
func (s *service) finishCompleted(ctx context.Context, sess *models.Session, asked int) {
	now := s.clock.Now()
	sess.Status = models.SessionStatusFinished
	sess.FinishedAt = &now

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		log.Printf("quiz %s: failed to mark session finished: %v", sess.ID, err)
	}

	view, err := s.buildLeaderboard(ctx, sess)
	if err != nil {
		log.Printf("quiz %s: failed to build leaderboard: %v", sess.ID, err)
		s.recorder.SessionCompleted(&telemetry.SessionCompletedEvent{
			SessionID:   sess.ID,
			Status:      models.SessionStatusFinished,
			CompletedAt: now,
		})
		return
	}
	if asked > 0 {
		view.QuestionsAsked = asked
	}

	if err := s.channel.PublishLeaderboard(ctx, view); err != nil {
		log.Printf("quiz %s: failed to publish leaderboard: %v", sess.ID, err)
	}

	s.awardRewards(ctx, sess, view)

	event := &telemetry.SessionCompletedEvent{
		SessionID:         sess.ID,
		Status:            models.SessionStatusFinished,
		CompletedAt:       now,
		TotalParticipants: view.TotalParticipants,
		AvgCorrectRate:    view.AvgCorrectRate,
		AvgTimeTaken:      view.AvgTimeTaken,
	}
	for i, entry := range view.Entries {
		if i == 3 {
			break
		}
		event.TopThree = append(event.TopThree, telemetry.RewardedParticipant{
			UserID:   entry.UserID,
			Username: entry.Username,
			Score:    entry.Score,
		})
	}
	s.recorder.SessionCompleted(event)
}
