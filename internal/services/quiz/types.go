package quiz

import (
	"context"
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

//go:generate mockgen -package=mocks -destination=mocks/mock_channel.go quizbot/internal/services/quiz Channel
//go:generate mockgen -package=mocks -destination=mocks/mock_rewarder.go quizbot/internal/services/quiz Rewarder

// Submission is one user's answer attempt during a question window.
// At is when the platform saw the attempt, not when the service read it.
type Submission struct {
	UserID   string
	Username string
	Answer   models.Letter
	At       time.Time
}

// Channel is the surface the quiz plays out on. The Discord handler
// implements it; the service never talks to Discord directly.
type Channel interface {
	// PublishCountdown posts the pre-start countdown message and returns
	// its message ID so later ticks can update it in place
	PublishCountdown(ctx context.Context, view *CountdownView) (string, error)

	// UpdateCountdown rewrites an existing countdown message
	UpdateCountdown(ctx context.Context, messageID string, view *CountdownView) error

	// PublishQuestion posts a question message and returns its message ID
	PublishQuestion(ctx context.Context, view *QuestionView) (string, error)

	// UpdateTimer rewrites a question message with the remaining time
	UpdateTimer(ctx context.Context, messageID string, view *QuestionView) error

	// PublishResults posts the results of one question round
	PublishResults(ctx context.Context, view *ResultsView) error

	// PublishLeaderboard posts the final leaderboard
	PublishLeaderboard(ctx context.Context, view *LeaderboardView) error

	// PublishNotice posts a plain informational message
	PublishNotice(ctx context.Context, channelID, text string) error

	// StreamSubmissions opens answer collection on a question message. The
	// returned channel carries raw submissions until the stop function is
	// called or the implementation closes the channel, whichever comes
	// first. A closed channel means no further submissions can arrive.
	StreamSubmissions(ctx context.Context, channelID, messageID string) (<-chan *Submission, func(), error)
}

// Rewarder hands out the end-of-session prizes for the top finishers
type Rewarder interface {
	// GrantChampionRole gives the first-place finisher the champion role
	GrantChampionRole(ctx context.Context, guildID, userID string) error

	// AwardCoins credits a finisher's coin balance
	AwardCoins(ctx context.Context, guildID, userID string, amount int) error
}

// Config holds configuration for the quiz service
type Config struct {
	// Categories are the question categories sessions may draw from
	Categories []string

	// Question count bounds; zero in a create request means DefaultQuestions
	MinQuestions     int
	MaxQuestions     int
	DefaultQuestions int

	// Per-question answer window bounds in seconds; zero means DefaultTime
	MinTime     int
	MaxTime     int
	DefaultTime int

	// CountdownTicks is how many one-interval ticks the pre-start countdown runs
	CountdownTicks int

	// TickInterval is the delay between countdown and timer updates
	TickInterval time.Duration

	// GoPause is the hold after the countdown hits zero, before round one
	GoPause time.Duration

	// ResultsPause is the hold between rounds after results are posted
	ResultsPause time.Duration

	// RewardCoins are the coin amounts for the top finishers, best first
	RewardCoins []int

	// Repository dependencies
	SessionRepo     sessionRepo.Repository
	QuestionRepo    questionRepo.Repository
	ParticipantRepo participantRepo.Repository
	AnswerRepo      answerRepo.Repository

	// Service dependencies
	Channel       Channel
	Rewarder      Rewarder
	Recorder      telemetry.Recorder
	Calculator    *scoring.Calculator
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSessionInput contains parameters for creating a new session
type CreateSessionInput struct {
	// GuildID is the Discord server the session belongs to
	GuildID string

	// ChannelID is the Discord channel the session plays out in
	ChannelID string

	// CreatorID is the Discord user ID of the session creator
	CreatorID string

	// CreatorName is the display name of the creator
	CreatorName string

	// Category is the question category to draw from
	Category string

	// QuestionCount is the requested number of questions, 0 for the default
	QuestionCount int

	// TimePerQuestion is the requested answer window in seconds, 0 for the default
	TimePerQuestion int
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	Session *models.Session
}

// StartSessionInput contains parameters for starting a created session
type StartSessionInput struct {
	// SessionID is the session to start
	SessionID string

	// UserID is the user requesting the start
	UserID string

	// IsModerator indicates the user holds manage-server permission and
	// may start sessions they did not create
	IsModerator bool
}

// StartSessionOutput contains the result of starting a session
type StartSessionOutput struct {
	Session *models.Session
}

// StopSessionInput contains parameters for stopping a guild's active session
type StopSessionInput struct {
	// GuildID is the guild whose active session should stop
	GuildID string

	// UserID is the user requesting the stop
	UserID string

	// IsModerator indicates the user holds manage-server permission and
	// may stop sessions they did not create
	IsModerator bool
}

// StopSessionOutput contains the result of stopping a session
type StopSessionOutput struct {
	Session *models.Session
}

// JoinSessionInput contains parameters for explicitly joining a session
type JoinSessionInput struct {
	// GuildID is the guild whose active session the user joins
	GuildID string

	// UserID is the joining user
	UserID string

	// Username is the joining user's display name
	Username string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	Session *models.Session

	// AlreadyJoined indicates the user was enrolled before this call
	AlreadyJoined bool
}

// GetActiveSessionInput contains parameters for the active-session lookup
type GetActiveSessionInput struct {
	GuildID string
}

// GetActiveSessionOutput contains the guild's active session
type GetActiveSessionOutput struct {
	Session *models.Session
}

// GetLeaderboardInput contains parameters for retrieving session standings
type GetLeaderboardInput struct {
	SessionID string
}

// GetLeaderboardOutput contains the session standings
type GetLeaderboardOutput struct {
	Leaderboard *LeaderboardView
}

// CountdownView is what the channel shows while a session counts down
type CountdownView struct {
	Session *models.Session

	// Remaining is the ticks left; 0 means the quiz is starting now
	Remaining int
}

// QuestionView is what the channel shows for one question round
type QuestionView struct {
	Session  *models.Session
	Question *models.Question

	// Number is the 1-based round number
	Number int

	// Remaining is the seconds left in the answer window
	Remaining int
}

// OptionStat is the per-option tally shown with round results
type OptionStat struct {
	Letter models.Letter
	Text   string
	Count  int

	// Percent of all answers this round, 0 when nobody answered
	Percent float64
}

// RoundTopEntry is one of the fastest correct answers of a round
type RoundTopEntry struct {
	UserID    string
	Username  string
	TimeTaken float64
	Points    int
}

// ResultsView is what the channel shows after a question window closes
type ResultsView struct {
	Session  *models.Session
	Question *models.Question

	// Number is the 1-based round number
	Number int

	CorrectAnswer models.Letter
	CorrectText   string

	// Options holds the answer distribution in display order
	Options []OptionStat

	// TotalAnswers is how many submissions were accepted this round
	TotalAnswers int

	// TopCorrect lists up to three fastest correct answers, fastest first
	TopCorrect []RoundTopEntry

	// Final indicates the session ended with this round
	Final bool
}

// LeaderboardEntry is one row of the final standings
type LeaderboardEntry struct {
	Rank           int
	UserID         string
	Username       string
	Score          int
	CorrectAnswers int
}

// LeaderboardView is the final standings of a session
type LeaderboardView struct {
	Session *models.Session

	// Entries are the standings, best first
	Entries []LeaderboardEntry

	TotalParticipants int

	// QuestionsAsked is how many rounds actually ran
	QuestionsAsked int

	// AvgCorrectRate is the mean percentage of questions answered
	// correctly across participants, rounded to one decimal
	AvgCorrectRate float64

	// AvgTimeTaken is the mean answer time in seconds across all answers
	AvgTimeTaken float64
}
