package telemetry

//go:generate mockgen -package=mocks -destination=mocks/mock_recorder.go quizbot/internal/services/telemetry Recorder

// Recorder emits quiz lifecycle events. Every method is fire-and-forget:
// implementations must never fail the caller, so none of them returns an
// error.
type Recorder interface {
	// SessionCreated is emitted when a session is created
	SessionCreated(event *SessionCreatedEvent)

	// SessionStarted is emitted when the countdown reaches zero
	SessionStarted(event *SessionStartedEvent)

	// AnswerSubmitted is emitted for every accepted submission
	AnswerSubmitted(event *AnswerSubmittedEvent)

	// ScoreAwarded is emitted after a submission has been scored
	ScoreAwarded(event *ScoreAwardedEvent)

	// SessionCompleted is emitted when a session reaches a terminal state
	SessionCompleted(event *SessionCompletedEvent)
}
