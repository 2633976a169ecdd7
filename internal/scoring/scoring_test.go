package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_CorrectAnswers(t *testing.T) {
	calc := New(nil)

	tests := []struct {
		name      string
		timeTaken float64
		timeLimit float64
		want      int
	}{
		{name: "instant answer", timeTaken: 0, timeLimit: 20, want: 100},
		{name: "at the limit", timeTaken: 20, timeLimit: 20, want: 50},
		{name: "half the window", timeTaken: 10, timeLimit: 20, want: 75},
		{name: "three quarters left", timeTaken: 5, timeLimit: 20, want: 87},
		{name: "different limit", timeTaken: 15, timeLimit: 60, want: 87},
		{name: "clamped beyond limit", timeTaken: 25, timeLimit: 20, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calc.Score(true, tt.timeTaken, tt.timeLimit))
		})
	}
}

func TestScore_IncorrectAnswerIsZero(t *testing.T) {
	calc := New(nil)

	assert.Equal(t, 0, calc.Score(false, 0, 20))
	assert.Equal(t, 0, calc.Score(false, 20, 20))
}

func TestScore_Bounds(t *testing.T) {
	calc := New(nil)

	// A correct answer never scores below 50 or above 100
	for taken := 0.0; taken <= 40; taken += 0.5 {
		points := calc.Score(true, taken, 20)
		assert.GreaterOrEqual(t, points, 50)
		assert.LessOrEqual(t, points, 100)
	}
}

func TestScore_Multiplier(t *testing.T) {
	calc := New(&Config{Multiplier: 2.0})

	assert.Equal(t, 200, calc.Score(true, 0, 20))
	assert.Equal(t, 100, calc.Score(true, 20, 20))
	assert.Equal(t, 0, calc.Score(false, 0, 20))
}
