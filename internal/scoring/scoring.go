package scoring

import (
	"math"
)

// BasePoints is the maximum score for a correct answer before the multiplier
const BasePoints = 100

// Calculator computes points for answered questions
type Calculator struct {
	multiplier float64
}

// Config for the score calculator
type Config struct {
	// Optional multiplier applied to every score, defaults to 1.0.
	// Kept as an extension point for event weeks with boosted scoring.
	Multiplier float64
}

// New creates a new score calculator
func New(cfg *Config) *Calculator {
	multiplier := 1.0
	if cfg != nil && cfg.Multiplier > 0 {
		multiplier = cfg.Multiplier
	}

	return &Calculator{
		multiplier: multiplier,
	}
}

// Score returns the points for an answer. Incorrect answers score 0. A
// correct answer scores between 50 (at the time limit) and 100 (instant),
// scaled linearly by how much of the window was left.
func (c *Calculator) Score(correct bool, timeTaken, timeLimit float64) int {
	if !correct {
		return 0
	}

	if timeLimit <= 0 {
		return int(math.Floor(BasePoints * c.multiplier))
	}

	timeBonus := math.Max(0, (timeLimit-timeTaken)/timeLimit)
	return int(math.Floor(BasePoints * (0.5 + 0.5*timeBonus) * c.multiplier))
}
