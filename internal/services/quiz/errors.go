package quiz

// Error is a custom error type for quiz-related errors
type Error string

// Error implements the error interface
func (e Error) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound         Error = "session not found"
	ErrNoActiveSession         Error = "no active quiz session in this server"
	ErrActiveSessionExists     Error = "an active quiz session already exists in this server"
	ErrUnknownCategory         Error = "unknown question category"
	ErrQuestionCountOutOfRange Error = "question count is out of range"
	ErrTimeLimitOutOfRange     Error = "time per question is out of range"
	ErrInvalidSessionState     Error = "session is not in a valid state for this action"
	ErrNotCreator              Error = "only the session creator can do that"
	ErrNotJoinable             Error = "session is not accepting participants"
	ErrNilConfig               Error = "config cannot be nil"
	ErrNilSessionRepo          Error = "session repository cannot be nil"
	ErrNilQuestionRepo         Error = "question repository cannot be nil"
	ErrNilParticipantRepo      Error = "participant repository cannot be nil"
	ErrNilAnswerRepo           Error = "answer repository cannot be nil"
	ErrNilChannel              Error = "channel cannot be nil"
	ErrNilRewarder             Error = "rewarder cannot be nil"
	ErrNilRecorder             Error = "telemetry recorder cannot be nil"
	ErrNoCategories            Error = "at least one category is required"
)
