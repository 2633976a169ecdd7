package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the full bot configuration, populated from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Health server
	HealthPort int `env:"HEALTH_PORT" envDefault:"10000"`

	// Quiz bounds and pacing
	MinQuestions     int           `env:"QUIZ_MIN_QUESTIONS" envDefault:"5"`
	MaxQuestions     int           `env:"QUIZ_MAX_QUESTIONS" envDefault:"50"`
	DefaultQuestions int           `env:"QUIZ_DEFAULT_QUESTIONS" envDefault:"10"`
	MinTime          int           `env:"QUIZ_MIN_TIME" envDefault:"10"`
	MaxTime          int           `env:"QUIZ_MAX_TIME" envDefault:"60"`
	DefaultTime      int           `env:"QUIZ_DEFAULT_TIME" envDefault:"20"`
	CountdownTicks   int           `env:"QUIZ_COUNTDOWN_TICKS" envDefault:"10"`
	ResultsPause     time.Duration `env:"QUIZ_RESULTS_PAUSE" envDefault:"5s"`

	// Rewards
	ChampionRoleID string `env:"QUIZ_CHAMPION_ROLE_ID"`
	RewardCoins    []int  `env:"QUIZ_REWARD_COINS" envDefault:"1000,500,250"`
}

// Categories returns the question categories the bot offers
func Categories() []string {
	return []string{"vehicles", "maps", "gameplay", "items", "history"}
}

// Load reads configuration from .env (when present) and the environment
func Load() (*Config, error) {
	// A missing .env is fine, real deployments set the environment directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the invariants the env tags cannot express
func (c *Config) Validate() error {
	if c.DiscordToken == "" {
		return errors.New("DISCORD_TOKEN is required")
	}
	if c.MinQuestions <= 0 || c.MaxQuestions < c.MinQuestions {
		return fmt.Errorf("invalid question bounds: min=%d max=%d", c.MinQuestions, c.MaxQuestions)
	}
	if c.DefaultQuestions < c.MinQuestions || c.DefaultQuestions > c.MaxQuestions {
		return fmt.Errorf("default question count %d outside bounds %d..%d", c.DefaultQuestions, c.MinQuestions, c.MaxQuestions)
	}
	if c.MinTime <= 0 || c.MaxTime < c.MinTime {
		return fmt.Errorf("invalid time bounds: min=%d max=%d", c.MinTime, c.MaxTime)
	}
	if c.DefaultTime < c.MinTime || c.DefaultTime > c.MaxTime {
		return fmt.Errorf("default time %d outside bounds %d..%d", c.DefaultTime, c.MinTime, c.MaxTime)
	}
	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		return fmt.Errorf("invalid health port %d", c.HealthPort)
	}

	return nil
}
