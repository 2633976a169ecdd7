package quiz

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quizbot/internal/models"
)

func TestCollectorAcceptsFirstAnswerPerUser(t *testing.T) {
	start := time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)
	c := newAnswerCollector(start, 20)

	accepted := c.Submit(&Submission{
		UserID:   "user-1",
		Username: "Alice",
		Answer:   models.LetterB,
		At:       start.Add(4 * time.Second),
	})
	assert.True(t, accepted)

	// Second attempt from the same user is ignored
	accepted = c.Submit(&Submission{
		UserID: "user-1",
		Answer: models.LetterC,
		At:     start.Add(6 * time.Second),
	})
	assert.False(t, accepted)

	batch := c.Close()
	assert.Len(t, batch, 1)
	assert.Equal(t, models.LetterB, batch[0].Submission.Answer)
	assert.InDelta(t, 4.0, batch[0].TimeTaken, 0.001)
}

func TestCollectorRejectsInvalidLetter(t *testing.T) {
	start := time.Now()
	c := newAnswerCollector(start, 20)

	assert.False(t, c.Submit(&Submission{UserID: "user-1", Answer: "E", At: start}))
	assert.False(t, c.Submit(nil))
	assert.Empty(t, c.Close())
}

func TestCollectorClampsTimeTaken(t *testing.T) {
	start := time.Date(2025, 9, 14, 10, 0, 0, 0, time.UTC)
	c := newAnswerCollector(start, 20)

	// Arrived before the window officially opened
	c.Submit(&Submission{
		UserID: "early",
		Answer: models.LetterA,
		At:     start.Add(-time.Second),
	})

	// Arrived after the window expired but before the stream drained
	c.Submit(&Submission{
		UserID: "late",
		Answer: models.LetterA,
		At:     start.Add(25 * time.Second),
	})

	batch := c.Close()
	assert.Len(t, batch, 2)
	assert.Equal(t, 0.0, batch[0].TimeTaken)
	assert.Equal(t, 20.0, batch[1].TimeTaken)
}

func TestCollectorCloseIsIdempotent(t *testing.T) {
	start := time.Now()
	c := newAnswerCollector(start, 20)

	c.Submit(&Submission{UserID: "user-1", Answer: models.LetterA, At: start})

	first := c.Close()
	assert.Len(t, first, 1)

	// Only the first close returns the batch
	assert.Nil(t, c.Close())

	// Submissions after close are rejected
	assert.False(t, c.Submit(&Submission{UserID: "user-2", Answer: models.LetterA, At: start}))
}

func TestCollectorConcurrentSubmissions(t *testing.T) {
	start := time.Now()
	c := newAnswerCollector(start, 20)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			// Two goroutines per user, only one submission each may land
			user := "user-" + string(rune('a'+n%25))
			c.Submit(&Submission{UserID: user, Answer: models.LetterA, At: start})
		}(i)
	}
	wg.Wait()

	batch := c.Close()
	assert.Len(t, batch, 25)
}
