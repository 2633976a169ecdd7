package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"quizbot/internal/models"
	"quizbot/internal/services/quiz"
)

// letterEmojis maps answer letters to the reactions shown under questions
var letterEmojis = map[models.Letter]string{
	models.LetterA: "🇦",
	models.LetterB: "🇧",
	models.LetterC: "🇨",
	models.LetterD: "🇩",
}

// emojiLetters is the reverse mapping used when reading reactions
var emojiLetters = map[string]models.Letter{
	"🇦": models.LetterA,
	"🇧": models.LetterB,
	"🇨": models.LetterC,
	"🇩": models.LetterD,
}

var rankMedals = []string{"🥇", "🥈", "🥉"}

// renderSessionCreated renders the embed posted when a session is created
func renderSessionCreated(sess *models.Session) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎯 Quiz Session Created",
		Description: "Press **Start Quiz** when everyone is ready. Answer each question by clicking the letter reactions.",
		Color:       0x00ff00, // Green color
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Category",
				Value:  sess.Category,
				Inline: true,
			},
			{
				Name:   "Questions",
				Value:  fmt.Sprintf("%d", sess.QuestionCount),
				Inline: true,
			},
			{
				Name:   "Time per Question",
				Value:  fmt.Sprintf("%ds", sess.TimePerQuestion),
				Inline: true,
			},
			{
				Name:   "Host",
				Value:  sess.CreatorName,
				Inline: true,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Session %s", sess.ID),
		},
	}
}

// renderCountdown renders the pre-start countdown embed
func renderCountdown(view *quiz.CountdownView) *discordgo.MessageEmbed {
	if view.Remaining <= 0 {
		return &discordgo.MessageEmbed{
			Title:       "🚀 GO!",
			Description: "The quiz is starting now. Good luck!",
			Color:       0x00ff00, // Green color
		}
	}

	return &discordgo.MessageEmbed{
		Title:       "⏳ Quiz Starting Soon",
		Description: fmt.Sprintf("**%s** quiz starts in **%d**...", view.Session.Category, view.Remaining),
		Color:       0xffa500, // Orange color
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d questions • %ds each", view.Session.QuestionCount, view.Session.TimePerQuestion),
		},
	}
}

// renderQuestion renders one question round embed
func renderQuestion(view *quiz.QuestionView) *discordgo.MessageEmbed {
	q := view.Question

	var sb strings.Builder
	sb.WriteString(q.Text)
	sb.WriteString("\n")
	for _, l := range models.Letters {
		sb.WriteString(fmt.Sprintf("\n%s  %s", letterEmojis[l], q.OptionText(l)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Question %d of %d", view.Number, view.Session.QuestionCount),
		Description: sb.String(),
		Color:       0x3498db, // Blue color
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("⏱️ %d seconds remaining", view.Remaining),
		},
	}

	if q.ImageURL != "" {
		embed.Image = &discordgo.MessageEmbedImage{
			URL: q.ImageURL,
		}
	}

	return embed
}

// renderResults renders the results embed posted after a question window closes
func renderResults(view *quiz.ResultsView) *discordgo.MessageEmbed {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("The correct answer was %s **%s**",
		letterEmojis[view.CorrectAnswer], view.CorrectText))
	if view.Question.Explanation != "" {
		sb.WriteString("\n\n")
		sb.WriteString(view.Question.Explanation)
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(view.Options)+1)
	for _, opt := range view.Options {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s %s", letterEmojis[opt.Letter], opt.Text),
			Value:  fmt.Sprintf("%d (%.1f%%)", opt.Count, opt.Percent),
			Inline: true,
		})
	}

	if len(view.TopCorrect) > 0 {
		var top strings.Builder
		for i, entry := range view.TopCorrect {
			if i > 0 {
				top.WriteString("\n")
			}
			top.WriteString(fmt.Sprintf("%s **%s** — %.1fs (+%d)",
				rankMedals[i], entry.Username, entry.TimeTaken, entry.Points))
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Fastest Correct",
			Value: top.String(),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 Results — Question %d", view.Number),
		Description: sb.String(),
		Color:       0x9b59b6, // Purple color
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d answers", view.TotalAnswers),
		},
	}
}

// renderLeaderboard renders the final standings embed
func renderLeaderboard(view *quiz.LeaderboardView) *discordgo.MessageEmbed {
	var sb strings.Builder
	if len(view.Entries) == 0 {
		sb.WriteString("Nobody answered a single question. Tough crowd.")
	}
	for i, entry := range view.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}
		marker := fmt.Sprintf("`#%d`", entry.Rank)
		if entry.Rank <= len(rankMedals) {
			marker = rankMedals[entry.Rank-1]
		}
		sb.WriteString(fmt.Sprintf("%s **%s** — %d pts (%d correct)",
			marker, entry.Username, entry.Score, entry.CorrectAnswers))
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Final Leaderboard",
		Description: sb.String(),
		Color:       0xffd700, // Gold color
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Participants",
				Value:  fmt.Sprintf("%d", view.TotalParticipants),
				Inline: true,
			},
			{
				Name:   "Questions",
				Value:  fmt.Sprintf("%d", view.QuestionsAsked),
				Inline: true,
			},
			{
				Name:   "Avg Correct",
				Value:  fmt.Sprintf("%.1f%%", view.AvgCorrectRate),
				Inline: true,
			},
			{
				Name:   "Avg Answer Time",
				Value:  fmt.Sprintf("%.2fs", view.AvgTimeTaken),
				Inline: true,
			},
		},
	}
}
