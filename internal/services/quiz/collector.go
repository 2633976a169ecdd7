package quiz

import (
	"sync"
	"time"
)

// collectedAnswer pairs an accepted submission with its elapsed time
type collectedAnswer struct {
	Submission *Submission

	// TimeTaken is seconds from window open to submission, clamped to the window
	TimeTaken float64

	// Correct and Points are filled in when the batch is scored
	Correct bool
	Points  int
}

// answerCollector gathers at most one submission per user for a single
// question window. It is safe for concurrent use.
type answerCollector struct {
	start time.Time
	limit float64

	mu     sync.Mutex
	closed bool
	seen   map[string]bool
	batch  []*collectedAnswer
}

// newAnswerCollector opens a collection window that started at start and
// runs for limitSeconds
func newAnswerCollector(start time.Time, limitSeconds float64) *answerCollector {
	return &answerCollector{
		start: start,
		limit: limitSeconds,
		seen:  make(map[string]bool),
	}
}

// Submit records a submission and reports whether it was accepted. A
// submission is rejected when the window is closed, the answer letter is
// invalid, or the user already answered this question.
func (c *answerCollector) Submit(sub *Submission) bool {
	if sub == nil || !sub.Answer.Valid() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.seen[sub.UserID] {
		return false
	}

	taken := sub.At.Sub(c.start).Seconds()
	if taken < 0 {
		taken = 0
	}
	if taken > c.limit {
		taken = c.limit
	}

	c.seen[sub.UserID] = true
	c.batch = append(c.batch, &collectedAnswer{
		Submission: sub,
		TimeTaken:  taken,
	})

	return true
}

// Close ends the window and returns the accepted batch in submission order.
// Only the first call returns the batch; later calls return nil.
func (c *answerCollector) Close() []*collectedAnswer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	return c.batch
}
