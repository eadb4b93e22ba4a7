package generator

import (
	"fmt"

	"quizprize-game/internal/models"
)

// MathPool enumerates arithmetic facts with nested bounded loops until
// the pool target is reached. Each fact gets four distinct options via
// numericOptions, seeded from the operands so the pool is stable.
func MathPool() []models.Question {
	pool := make([]models.Question, 0, poolTarget)

	add := func(text string, answer int, seed int64) {
		if len(pool) >= poolTarget {
			return
		}
		q := models.Question{
			ID:            questionID(models.Math, len(pool)+1),
			Category:      models.Math,
			Text:          text,
			CorrectAnswer: fmt.Sprintf("%d", answer),
			Options:       numericOptions(answer, seed),
		}
		pool = append(pool, q)
	}

	// Addition and subtraction over two-digit operands.
	for a := 12; a <= 29 && len(pool) < poolTarget; a += 3 {
		for b := 7; b <= 58 && len(pool) < poolTarget; b += 4 {
			add(fmt.Sprintf("What is %d + %d?", a, b), a+b, int64(a*100+b))
			add(fmt.Sprintf("What is %d - %d?", a+b, a), b, int64(a*37+b))
		}
	}

	// Multiplication tables, skipping the trivial rows. The bounds stay
	// tight so the later families still fit under the pool cap.
	for a := 3; a <= 14 && len(pool) < poolTarget; a++ {
		for b := 3; b <= 13 && len(pool) < poolTarget; b++ {
			add(fmt.Sprintf("What is %d × %d?", a, b), a*b, int64(a*53+b))
		}
	}

	// Division built from exact products so answers stay whole.
	for a := 3; a <= 12 && len(pool) < poolTarget; a++ {
		for b := 4; b <= 16 && len(pool) < poolTarget; b += 2 {
			add(fmt.Sprintf("What is %d ÷ %d?", a*b, a), b, int64(a*71+b))
		}
	}

	// Percentages of multiples of 20 so every answer is an integer.
	for p := 5; p <= 45 && len(pool) < poolTarget; p += 5 {
		for n := 20; n <= 300 && len(pool) < poolTarget; n += 40 {
			add(fmt.Sprintf("What is %d%% of %d?", p, n), p*n/100, int64(p*n))
		}
	}

	// Averages of three consecutive even-spaced numbers.
	for n := 4; n <= 60 && len(pool) < poolTarget; n += 2 {
		add(fmt.Sprintf("What is the average of %d, %d and %d?", n, n+2, n+4),
			n+2, int64(n*19+7))
	}

	// Speed problems with exact distances.
	for speed := 20; speed <= 90 && len(pool) < poolTarget; speed += 10 {
		for hours := 2; hours <= 7 && len(pool) < poolTarget; hours++ {
			add(fmt.Sprintf("A train covers %d km in %d hours. What is its speed in km/h?",
				speed*hours, hours), speed, int64(speed*hours+hours))
		}
	}

	return pool
}
