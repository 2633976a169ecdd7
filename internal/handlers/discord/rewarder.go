package discord

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Rewarder implements quiz.Rewarder with Discord roles and logged coin
// credits
type Rewarder struct {
	session        *discordgo.Session
	championRoleID string
}

// RewarderConfig holds configuration for the Discord rewarder
type RewarderConfig struct {
	// Discord session
	Session *discordgo.Session

	// ChampionRoleID is the role granted to the winner; empty disables
	// role rewards
	ChampionRoleID string
}

// NewRewarder creates a Discord-backed rewarder
func NewRewarder(cfg *RewarderConfig) (*Rewarder, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	return &Rewarder{
		session:        cfg.Session,
		championRoleID: cfg.ChampionRoleID,
	}, nil
}

// GrantChampionRole gives the winner the configured champion role
func (r *Rewarder) GrantChampionRole(ctx context.Context, guildID, userID string) error {
	if r.championRoleID == "" {
		log.Printf("no champion role configured, skipping role grant for %s", userID)
		return nil
	}

	return r.session.GuildMemberRoleAdd(guildID, userID, r.championRoleID)
}

// AwardCoins records a coin credit for a finisher. There is no coin ledger
// backend yet, so awards are written to the log for manual reconciliation.
func (r *Rewarder) AwardCoins(ctx context.Context, guildID, userID string, amount int) error {
	log.Printf("coin award: guild=%s user=%s amount=%d", guildID, userID, amount)
	return nil
}
