package game

import (
	"strings"

	"quizprize-game/internal/models"
)

// Evaluate applies the category's correctness rule to a submitted answer.
// TYPING demands exact equality; CAPTCHA trims but stays case-sensitive
// (the input layer upcases before submitting); everything else compares
// trimmed and lowercased on both sides.
func Evaluate(c models.Category, submitted, correct string) bool {
	switch c {
	case models.Typing:
		return submitted == correct
	case models.Captcha:
		return strings.TrimSpace(submitted) == correct
	default:
		return strings.ToLower(strings.TrimSpace(submitted)) ==
			strings.ToLower(strings.TrimSpace(correct))
	}
}
