package generator

import (
	"quizprize-game/internal/models"
	"quizprize-game/internal/random"
)

// codeAlphabet excludes visually ambiguous characters (0/O, 1/I).
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// CaptchaPool is half themed word tokens with rotating render styles and
// half randomly generated codes. The word half is deterministic; the code
// half deliberately differs across calls and process restarts so codes
// are never predictable.
func CaptchaPool() []models.Question {
	pool := make([]models.Question, 0, poolTarget)

	// Word tokens: each block of len(captchaWords) shifts the style
	// assignment, so (word, style) pairs stay distinct across the half.
	wordHalf := poolTarget / 2
	for i := 0; i < wordHalf; i++ {
		word := captchaWords[i%len(captchaWords)]
		block := i / len(captchaWords)
		style := captchaStyles[(i+block)%len(captchaStyles)]
		pool = append(pool, models.Question{
			ID:            questionID(models.Captcha, i+1),
			Category:      models.Captcha,
			Text:          word,
			CorrectAnswer: word,
			Style:         style,
		})
	}

	for i := wordHalf; i < poolTarget; i++ {
		code := randomCode()
		pool = append(pool, models.Question{
			ID:            questionID(models.Captcha, i+1),
			Category:      models.Captcha,
			Text:          code,
			CorrectAnswer: code,
			Style:         captchaStyles[i%len(captchaStyles)],
		})
	}

	return pool
}

// randomCode produces a 5-7 character token from the safe alphabet.
func randomCode() string {
	length := 5 + random.Intn(3)
	b := make([]byte, length)
	for i := range b {
		b[i] = codeAlphabet[random.Intn(len(codeAlphabet))]
	}
	return string(b)
}
