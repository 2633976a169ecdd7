package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"quizbot/internal/config"
	"quizbot/internal/models"
	questionRepo "quizbot/internal/repositories/question"
)

// questionFile is the JSON import format, one entry per question
type questionFile []struct {
	Category      string `json:"category"`
	QuestionText  string `json:"question_text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	ImageURL      string `json:"image_url"`
}

func main() {
	file := flag.String("file", "questions.json", "path to the question JSON file")
	redisAddr := flag.String("redis-addr", getEnv("REDIS_ADDR", "localhost:6379"), "redis address")
	redisPassword := flag.String("redis-password", os.Getenv("REDIS_PASSWORD"), "redis password")
	flag.Parse()

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}

	var entries questionFile
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     *redisAddr,
		Password: *redisPassword,
	})

	repo, err := questionRepo.NewRedis(&questionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create question repository: %v", err)
	}

	valid := make(map[string]bool)
	for _, c := range config.Categories() {
		valid[c] = true
	}

	ctx := context.Background()
	loaded, skipped, failed := 0, 0, 0

	for i, entry := range entries {
		if !valid[entry.Category] {
			log.Printf("entry %d: unknown category %q, skipping", i, entry.Category)
			failed++
			continue
		}

		_, err := repo.SaveQuestion(ctx, &questionRepo.SaveQuestionInput{
			Question: &models.Question{
				Category:      entry.Category,
				Text:          entry.QuestionText,
				OptionA:       entry.OptionA,
				OptionB:       entry.OptionB,
				OptionC:       entry.OptionC,
				OptionD:       entry.OptionD,
				CorrectAnswer: models.Letter(entry.CorrectAnswer),
				Explanation:   entry.Explanation,
				ImageURL:      entry.ImageURL,
			},
		})
		if err != nil {
			if errors.Is(err, questionRepo.ErrDuplicateQuestion) {
				skipped++
				continue
			}
			log.Printf("entry %d: %v", i, err)
			failed++
			continue
		}
		loaded++
	}

	fmt.Printf("Loaded %d questions (%d duplicates skipped, %d failed)\n", loaded, skipped, failed)

	for _, category := range config.Categories() {
		count, err := repo.CountQuestions(ctx, &questionRepo.CountQuestionsInput{Category: category})
		if err != nil {
			log.Printf("Failed to count %s: %v", category, err)
			continue
		}
		fmt.Printf("  %-10s %d\n", category, count)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
