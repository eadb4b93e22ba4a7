package models

import "strings"

type Category string

const (
	Math    Category = "MATH"
	Quiz    Category = "QUIZ"
	Puzzle  Category = "PUZZLE"
	Typing  Category = "TYPING"
	Captcha Category = "CAPTCHA"
)

// Categories returns every playable category. Adding a category means
// extending this list and the generator registry together.
func Categories() []Category {
	return []Category{Math, Quiz, Puzzle, Typing, Captcha}
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(name string) (Category, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case string(Math):
		return Math, true
	case string(Quiz):
		return Quiz, true
	case string(Puzzle):
		return Puzzle, true
	case string(Typing):
		return Typing, true
	case string(Captcha):
		return Captcha, true
	}
	return "", false
}

// DefaultTimerSeconds is the per-question countdown when the settings
// source does not override it.
func (c Category) DefaultTimerSeconds() int {
	switch c {
	case Quiz:
		return 30
	case Typing:
		return 40
	default:
		return 15
	}
}

type Question struct {
	ID            string   `json:"id"`
	Category      Category `json:"category"`
	Text          string   `json:"text"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options,omitempty"`
	Style         string   `json:"style,omitempty"`
}

// Valid reports whether a fetched question is playable. Invalid items are
// dropped from a batch before they reach the buffer.
func (q Question) Valid() bool {
	if strings.TrimSpace(q.Text) == "" || q.CorrectAnswer == "" {
		return false
	}
	if q.Category == Quiz && len(q.Options) < 2 {
		return false
	}
	return true
}
