package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"quizbot/internal/services/quiz"
)

// Button IDs. Start buttons carry the session ID after a colon so a pending
// session can be started without being in the guild's active index yet.
const (
	ButtonStartQuiz = "quiz_start"
	ButtonJoinQuiz  = "quiz_join"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	adapter     *ChannelAdapter
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	quizService quiz.Service
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord session, already authenticated but not yet opened
	Session *discordgo.Session

	// Channel adapter handling quiz playback on this session
	Adapter *ChannelAdapter

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Quiz service
	QuizService quiz.Service

	// Categories offered in the create command
	Categories []string
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.Adapter == nil {
		return nil, errors.New("channel adapter cannot be nil")
	}
	if cfg.QuizService == nil {
		return nil, errors.New("quiz service cannot be nil")
	}

	bot := &Bot{
		session:     cfg.Session,
		adapter:     cfg.Adapter,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		quizService: cfg.QuizService,
		config:      cfg,
	}

	// Reactions are the answer input, so the bot needs the reaction intent
	cfg.Session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions

	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handleReactionAdd)
	cfg.Session.AddHandler(bot.handleReady)

	return bot, nil
}

// Start opens the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	quizCmd := NewQuizCommand(b.quizService, b.config.Categories)
	if err := b.RegisterCommand(quizCmd); err != nil {
		return fmt.Errorf("failed to register quiz command: %w", err)
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register the command for that specific
	// guild. Otherwise register it globally.
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// handleReady sets the bot's presence once the gateway reports ready
func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %s#%s", r.User.Username, r.User.Discriminator)
	if err := s.UpdateGameStatus(0, "/quiz create"); err != nil {
		log.Printf("Failed to set presence: %v", err)
	}
}

// handleReactionAdd forwards reaction events to the channel adapter, which
// routes them into any open answer-collection window
func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	b.adapter.HandleReactionAdd(s, r)
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	action, arg, _ := strings.Cut(customID, ":")
	switch action {
	case ButtonStartQuiz:
		return b.handleStartButton(s, i, arg, userID)
	case ButtonJoinQuiz:
		return b.handleJoinButton(s, i, userID, username)
	}

	return nil
}

// handleStartButton starts the session referenced by the button
func (b *Bot) handleStartButton(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID, userID string) error {
	ctx := context.Background()

	_, err := b.quizService.StartSession(ctx, &quiz.StartSessionInput{
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

// handleJoinButton enrolls the clicking user in the active session
func (b *Bot) handleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, userID, username string) error {
	ctx := context.Background()

	out, err := b.quizService.JoinSession(ctx, &quiz.JoinSessionInput{
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
