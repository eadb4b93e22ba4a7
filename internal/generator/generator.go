// Package generator builds the per-category question pools. Every
// generator is a pure function over fixed reference data: calling it
// again in the same process yields the same pool, except for the random
// half of the captcha pool, which is intentionally unpredictable.
package generator

import (
	"fmt"

	"quizprize-game/internal/models"
)

// poolTarget is the approximate size each category pool is built to.
const poolTarget = 500

// PoolFunc builds the complete pool for one category.
type PoolFunc func() []models.Question

// ForCategory dispatches to the generator for a category. The switch is
// exhaustive over models.Categories; a new category fails loudly here
// until its generator is registered.
func ForCategory(c models.Category) PoolFunc {
	switch c {
	case models.Math:
		return MathPool
	case models.Quiz:
		return QuizPool
	case models.Puzzle:
		return PuzzlePool
	case models.Typing:
		return TypingPool
	case models.Captcha:
		return CaptchaPool
	}
	panic(fmt.Sprintf("generator: unknown category %q", c))
}

func questionID(c models.Category, n int) string {
	return fmt.Sprintf("%s-%04d", c, n)
}
