package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"quizbot/internal/services/quiz"
)

// QuizCommand handles the /quiz command
type QuizCommand struct {
	BaseCommand
	quizService quiz.Service
}

// NewQuizCommand creates a new quiz command handler. The category choices
// come from the service configuration so the two never drift apart.
func NewQuizCommand(quizService quiz.Service, categories []string) *QuizCommand {
	categoryChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(categories))
	for _, c := range categories {
		categoryChoices = append(categoryChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  c,
			Value: c,
		})
	}

	minQuestions := float64(5)
	minTime := float64(10)

	return &QuizCommand{
		BaseCommand: BaseCommand{
			Name:        "quiz",
			Description: "Timed trivia session commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a new quiz session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "category",
							Description: "Question category",
							Required:    true,
							Choices:     categoryChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "questions",
							Description: "Number of questions (5-50, default 10)",
							MinValue:    &minQuestions,
							MaxValue:    50,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "time",
							Description: "Seconds per question (10-60, default 20)",
							MinValue:    &minTime,
							MaxValue:    60,
						},
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "Channel to run the quiz in (default: this channel)",
							ChannelTypes: []discordgo.ChannelType{
								discordgo.ChannelTypeGuildText,
							},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a created quiz session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "session_id",
							Description: "ID of the session to start",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Stop the running quiz session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the running quiz session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the standings of the running session",
				},
			},
		},
		quizService: quizService,
	}
}

// Handle processes a Discord interaction for the quiz command
func (c *QuizCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	switch data.Options[0].Name {
	case "create":
		return c.handleCreate(s, i, userID, username, data.Options[0].Options)
	case "start":
		return c.handleStart(s, i, userID, data.Options[0].Options)
	case "stop":
		return c.handleStop(s, i, userID)
	case "join":
		return c.handleJoin(s, i, userID, username)
	case "leaderboard":
		return c.handleLeaderboard(s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleCreate handles the create subcommand
func (c *QuizCommand) handleCreate(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	input := &quiz.CreateSessionInput{
		GuildID:     i.GuildID,
		ChannelID:   i.ChannelID,
		CreatorID:   userID,
		CreatorName: username,
	}
	for _, opt := range options {
		switch opt.Name {
		case "category":
			input.Category = opt.StringValue()
		case "questions":
			input.QuestionCount = int(opt.IntValue())
		case "time":
			input.TimePerQuestion = int(opt.IntValue())
		case "channel":
			if ch := opt.ChannelValue(nil); ch != nil {
				input.ChannelID = ch.ID
			}
		}
	}

	out, err := c.quizService.CreateSession(ctx, input)
	if err != nil {
		log.Printf("failed to create session: %v", err)
		return RespondWithError(s, i, friendlyError(err))
	}

	startButton := discordgo.Button{
		Label:    "Start Quiz",
		Style:    discordgo.PrimaryButton,
		CustomID: fmt.Sprintf("%s:%s", ButtonStartQuiz, out.Session.ID),
		Emoji: &discordgo.ComponentEmoji{
			Name: "🚀",
		},
	}
	joinButton := discordgo.Button{
		Label:    "Join",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonJoinQuiz,
		Emoji: &discordgo.ComponentEmoji{
			Name: "🙋",
		},
	}

	return RespondWithEmbedAndButtons(s, i, renderSessionCreated(out.Session), []discordgo.MessageComponent{startButton, joinButton})
}

// handleStart handles the start subcommand, the slash-command twin of the
// Start Quiz button
func (c *QuizCommand) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	sessionID := ""
	for _, opt := range options {
		if opt.Name == "session_id" {
			sessionID = opt.StringValue()
		}
	}

	_, err := c.quizService.StartSession(ctx, &quiz.StartSessionInput{
		SessionID:   sessionID,
		UserID:      userID,
		IsModerator: isModerator(i),
	})
	if err != nil {
		log.Printf("failed to start session %s: %v", sessionID, err)
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEphemeralMessage(s, i, "Quiz starting, watch the countdown!")
}

// handleStop handles the stop subcommand
func (c *QuizCommand) handleStop(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	out, err := c.quizService.StopSession(ctx, &quiz.StopSessionInput{
		GuildID:     i.GuildID,
		UserID:      userID,
		IsModerator: isModerator(i),
	})
	if err != nil {
		log.Printf("failed to stop session: %v", err)
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🛑 Quiz stopped by <@%s>. Session `%s` is over.", userID, out.Session.ID))
}

// handleJoin handles the join subcommand
func (c *QuizCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	out, err := c.quizService.JoinSession(ctx, &quiz.JoinSessionInput{
		GuildID:  i.GuildID,
		UserID:   userID,
		Username: username,
	})
	if err != nil {
		log.Printf("failed to join session: %v", err)
		return RespondWithError(s, i, friendlyError(err))
	}

	if out.AlreadyJoined {
		return RespondWithEphemeralMessage(s, i, "You're already in this quiz.")
	}
	return RespondWithEphemeralMessage(s, i, "You're in! Answer questions with the letter reactions.")
}

// handleLeaderboard handles the leaderboard subcommand
func (c *QuizCommand) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	active, err := c.quizService.GetActiveSession(ctx, &quiz.GetActiveSessionInput{
		GuildID: i.GuildID,
	})
	if err != nil {
		log.Printf("failed to find active session: %v", err)
		return RespondWithError(s, i, friendlyError(err))
	}

	out, err := c.quizService.GetLeaderboard(ctx, &quiz.GetLeaderboardInput{
		SessionID: active.Session.ID,
	})
	if err != nil {
		log.Printf("failed to get leaderboard: %v", err)
		return RespondWithError(s, i, friendlyError(err))
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{renderLeaderboard(out.Leaderboard)},
		},
	})
}

// isModerator reports whether the interacting member can manage the server
func isModerator(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionManageServer != 0
}

// friendlyError maps service errors to player-facing messages
func friendlyError(err error) string {
	var quizErr quiz.Error
	if errors.As(err, &quizErr) {
		return quizErr.Error()
	}
	return "Something went wrong, try again in a moment."
}
