package models

import (
	"time"
)

// SessionStatus represents the current state of a quiz session
type SessionStatus string

const (
	// SessionStatusCreated indicates a session has been created but not started
	SessionStatusCreated SessionStatus = "created"

	// SessionStatusStarting indicates a session is in its pre-start countdown
	SessionStatusStarting SessionStatus = "starting"

	// SessionStatusRunning indicates a session is running question rounds
	SessionStatusRunning SessionStatus = "running"

	// SessionStatusFinished indicates a session completed all its rounds
	SessionStatusFinished SessionStatus = "finished"

	// SessionStatusStopped indicates a session was stopped before completion
	SessionStatusStopped SessionStatus = "stopped"
)

// Active reports whether the status counts against the one-active-session-per-guild rule
func (s SessionStatus) Active() bool {
	return s == SessionStatusStarting || s == SessionStatusRunning
}

// Terminal reports whether the session can no longer change state
func (s SessionStatus) Terminal() bool {
	return s == SessionStatusFinished || s == SessionStatusStopped
}

// Session represents one quiz run from creation to finished/stopped
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// GuildID is the Discord server/guild this session runs in
	GuildID string

	// CreatorID is the user ID who created the session
	CreatorID string

	// CreatorName is the display name of the creator at creation time
	CreatorName string

	// Category is the question category the session draws from
	Category string

	// QuestionCount is the configured number of questions
	QuestionCount int

	// TimePerQuestion is the answer window per question, in seconds
	TimePerQuestion int

	// ChannelID is the Discord channel the session plays out in
	ChannelID string

	// Status is the current lifecycle state
	Status SessionStatus

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// StartedAt is when the countdown began, nil until started
	StartedAt *time.Time

	// FinishedAt is when the session reached a terminal state, nil until then
	FinishedAt *time.Time
}
