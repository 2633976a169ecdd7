package discord

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"quizbot/internal/models"
	"quizbot/internal/services/quiz"
)

// submissionStreamBuffer bounds how many unread reactions a round can hold
// before new ones are dropped
const submissionStreamBuffer = 256

// submissionStream is one live answer-collection window keyed by message ID
type submissionStream struct {
	ch chan *quiz.Submission
}

// ChannelAdapter implements quiz.Channel on top of a Discord channel.
// Questions are posted as embeds seeded with letter reactions, and answer
// submissions are read back from reaction-add events.
type ChannelAdapter struct {
	session *discordgo.Session

	mu      sync.Mutex
	streams map[string]*submissionStream
}

// NewChannelAdapter creates a channel adapter on an existing Discord session
func NewChannelAdapter(session *discordgo.Session) (*ChannelAdapter, error) {
	if session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &ChannelAdapter{
		session: session,
		streams: make(map[string]*submissionStream),
	}, nil
}

// PublishCountdown posts the countdown embed and returns its message ID
func (a *ChannelAdapter) PublishCountdown(ctx context.Context, view *quiz.CountdownView) (string, error) {
	msg, err := a.session.ChannelMessageSendEmbed(view.Session.ChannelID, renderCountdown(view))
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// UpdateCountdown rewrites an existing countdown message
func (a *ChannelAdapter) UpdateCountdown(ctx context.Context, messageID string, view *quiz.CountdownView) error {
	_, err := a.session.ChannelMessageEditEmbed(view.Session.ChannelID, messageID, renderCountdown(view))
	return err
}

// PublishQuestion posts a question embed, seeds the answer reactions, and
// returns the message ID
func (a *ChannelAdapter) PublishQuestion(ctx context.Context, view *quiz.QuestionView) (string, error) {
	msg, err := a.session.ChannelMessageSendEmbed(view.Session.ChannelID, renderQuestion(view))
	if err != nil {
		return "", err
	}

	for _, emoji := range answerEmojis() {
		if err := a.session.MessageReactionAdd(view.Session.ChannelID, msg.ID, emoji); err != nil {
			log.Printf("failed to seed reaction %s on %s: %v", emoji, msg.ID, err)
		}
	}

	return msg.ID, nil
}

// UpdateTimer rewrites a question message with the remaining time
func (a *ChannelAdapter) UpdateTimer(ctx context.Context, messageID string, view *quiz.QuestionView) error {
	_, err := a.session.ChannelMessageEditEmbed(view.Session.ChannelID, messageID, renderQuestion(view))
	return err
}

// PublishResults posts the results of one question round
func (a *ChannelAdapter) PublishResults(ctx context.Context, view *quiz.ResultsView) error {
	_, err := a.session.ChannelMessageSendEmbed(view.Session.ChannelID, renderResults(view))
	return err
}

// PublishLeaderboard posts the final leaderboard
func (a *ChannelAdapter) PublishLeaderboard(ctx context.Context, view *quiz.LeaderboardView) error {
	_, err := a.session.ChannelMessageSendEmbed(view.Session.ChannelID, renderLeaderboard(view))
	return err
}

// PublishNotice posts a plain informational message
func (a *ChannelAdapter) PublishNotice(ctx context.Context, channelID, text string) error {
	_, err := a.session.ChannelMessageSend(channelID, text)
	return err
}

// StreamSubmissions opens answer collection on a question message. Reaction
// events on that message flow out the returned channel until the stop
// function is called.
func (a *ChannelAdapter) StreamSubmissions(ctx context.Context, channelID, messageID string) (<-chan *quiz.Submission, func(), error) {
	stream := &submissionStream{
		ch: make(chan *quiz.Submission, submissionStreamBuffer),
	}

	a.mu.Lock()
	a.streams[messageID] = stream
	a.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.streams, messageID)
			close(stream.ch)
			a.mu.Unlock()
		})
	}

	return stream.ch, stop, nil
}

// HandleReactionAdd routes a reaction event to the collection window of the
// message it landed on, if one is open
func (a *ChannelAdapter) HandleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if s.State != nil && s.State.User != nil && r.UserID == s.State.User.ID {
		return
	}
	if r.Member != nil && r.Member.User != nil && r.Member.User.Bot {
		return
	}

	letter, ok := emojiLetters[r.Emoji.Name]
	if !ok {
		return
	}

	username := r.UserID
	if r.Member != nil && r.Member.User != nil {
		username = r.Member.User.Username
		if r.Member.Nick != "" {
			username = r.Member.Nick
		}
	}

	sub := &quiz.Submission{
		UserID:   r.UserID,
		Username: username,
		Answer:   letter,
		At:       time.Now(),
	}

	// Sending under the lock keeps the send ordered against close in stop
	a.mu.Lock()
	stream, open := a.streams[r.MessageID]
	if open {
		select {
		case stream.ch <- sub:
		default:
			log.Printf("submission buffer full on %s, dropping answer from %s", r.MessageID, r.UserID)
		}
	}
	a.mu.Unlock()

	if !open {
		return
	}

	// Clear the reaction so answers stay hidden from other players
	if err := s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji.Name, r.UserID); err != nil {
		log.Printf("failed to remove reaction on %s: %v", r.MessageID, err)
	}
}

// answerEmojis returns the reaction set in display order
func answerEmojis() []string {
	emojis := make([]string, 0, len(letterEmojis))
	for _, l := range models.Letters {
		emojis = append(emojis, letterEmojis[l])
	}
	return emojis
}
