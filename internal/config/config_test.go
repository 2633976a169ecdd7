package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 10000, cfg.HealthPort)
	assert.Equal(t, 5, cfg.MinQuestions)
	assert.Equal(t, 50, cfg.MaxQuestions)
	assert.Equal(t, 10, cfg.DefaultQuestions)
	assert.Equal(t, 10, cfg.MinTime)
	assert.Equal(t, 60, cfg.MaxTime)
	assert.Equal(t, 20, cfg.DefaultTime)
	assert.Equal(t, 10, cfg.CountdownTicks)
	assert.Equal(t, []int{1000, 500, 250}, cfg.RewardCoins)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
}

func TestValidateBounds(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("QUIZ_DEFAULT_QUESTIONS", "100")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outside bounds")
}

func TestCategories(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 5)
	assert.Contains(t, cats, "vehicles")
	assert.Contains(t, cats, "history")
}
