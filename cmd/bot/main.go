package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"quizbot/internal/config"
	"quizbot/internal/handlers/discord"
	"quizbot/internal/handlers/health"
	answerRepo "quizbot/internal/repositories/answer"
	participantRepo "quizbot/internal/repositories/participant"
	questionRepo "quizbot/internal/repositories/question"
	sessionRepo "quizbot/internal/repositories/session"
	"quizbot/internal/services/quiz"
	"quizbot/internal/services/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	questions, err := questionRepo.NewRedis(&questionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create question repository: %v", err)
	}

	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	answers, err := answerRepo.NewRedis(&answerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create answer repository: %v", err)
	}

	// Initialize the Discord session before the quiz service so the
	// channel adapter and rewarder can be wired into it
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	adapter, err := discord.NewChannelAdapter(dg)
	if err != nil {
		log.Fatalf("Failed to create channel adapter: %v", err)
	}

	rewarder, err := discord.NewRewarder(&discord.RewarderConfig{
		Session:        dg,
		ChampionRoleID: cfg.ChampionRoleID,
	})
	if err != nil {
		log.Fatalf("Failed to create rewarder: %v", err)
	}

	// Initialize the quiz service
	quizSvc, err := quiz.NewService(&quiz.Config{
		Categories:       config.Categories(),
		MinQuestions:     cfg.MinQuestions,
		MaxQuestions:     cfg.MaxQuestions,
		DefaultQuestions: cfg.DefaultQuestions,
		MinTime:          cfg.MinTime,
		MaxTime:          cfg.MaxTime,
		DefaultTime:      cfg.DefaultTime,
		CountdownTicks:   cfg.CountdownTicks,
		ResultsPause:     cfg.ResultsPause,
		RewardCoins:      cfg.RewardCoins,
		SessionRepo:      sessions,
		QuestionRepo:     questions,
		ParticipantRepo:  participants,
		AnswerRepo:       answers,
		Channel:          adapter,
		Rewarder:         rewarder,
		Recorder:         telemetry.NewLogRecorder(),
	})
	if err != nil {
		log.Fatalf("Failed to create quiz service: %v", err)
	}

	// Initialize the bot
	bot, err := discord.New(&discord.Config{
		Session:       dg,
		Adapter:       adapter,
		ApplicationID: cfg.ApplicationID,
		GuildID:       cfg.GuildID,
		QuizService:   quizSvc,
		Categories:    config.Categories(),
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	// Health endpoints keep the hosting platform from idling the bot
	healthSrv, err := health.New(&health.Config{
		Port:    cfg.HealthPort,
		BotName: "quizbot",
		ReadyCheck: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})
	if err != nil {
		log.Fatalf("Failed to create health server: %v", err)
	}

	go func() {
		if err := healthSrv.Start(); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()

	// Wait for a termination signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shut down health server: %v", err)
	}

	// Stop live sessions before closing the Discord connection so their
	// round loops do not publish into a closed session
	quizSvc.Close()

	if err := bot.Stop(); err != nil {
		log.Printf("Failed to stop bot: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Failed to close Redis client: %v", err)
	}
}
