package telemetry

import (
	"log"
)

// logRecorder implements Recorder by writing events to the process log
type logRecorder struct{}

// NewLogRecorder creates a Recorder that logs every event
func NewLogRecorder() *logRecorder {
	return &logRecorder{}
}

func (r *logRecorder) SessionCreated(event *SessionCreatedEvent) {
	if event == nil {
		return
	}
	log.Printf("[telemetry] session created: id=%s guild=%s creator=%s category=%s questions=%d time=%ds channel=%s",
		event.SessionID, event.GuildID, event.CreatorID, event.Category,
		event.QuestionCount, event.TimePerQuestion, event.ChannelID)
}

func (r *logRecorder) SessionStarted(event *SessionStartedEvent) {
	if event == nil {
		return
	}
	log.Printf("[telemetry] session started: id=%s at=%s",
		event.SessionID, event.StartedAt.Format("2006-01-02T15:04:05Z07:00"))
}

func (r *logRecorder) AnswerSubmitted(event *AnswerSubmittedEvent) {
	if event == nil {
		return
	}
	log.Printf("[telemetry] answer: session=%s question=%d user=%s answer=%s time=%.1fs",
		event.SessionID, event.QuestionNumber, event.UserID, event.Answer, event.TimeTaken)
}

func (r *logRecorder) ScoreAwarded(event *ScoreAwardedEvent) {
	if event == nil {
		return
	}
	log.Printf("[telemetry] score: session=%s question=%d user=%s points=%d correct=%t",
		event.SessionID, event.QuestionNumber, event.UserID, event.Points, event.Correct)
}

func (r *logRecorder) SessionCompleted(event *SessionCompletedEvent) {
	if event == nil {
		return
	}
	log.Printf("[telemetry] session completed: id=%s status=%s participants=%d avg_correct=%.1f%% avg_time=%.2fs",
		event.SessionID, event.Status, event.TotalParticipants, event.AvgCorrectRate, event.AvgTimeTaken)
	for i, top := range event.TopThree {
		log.Printf("[telemetry] session %s top%d: user=%s name=%s score=%d",
			event.SessionID, i+1, top.UserID, top.Username, top.Score)
	}
}
