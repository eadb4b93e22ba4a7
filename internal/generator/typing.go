package generator

import (
	"fmt"

	"quizprize-game/internal/models"
)

// TypingPool assembles 500 sentences positionally from the rotating word
// lists. The list lengths are pairwise coprime, so the index tuple never
// repeats inside the pool and no dedup bookkeeping is needed.
func TypingPool() []models.Question {
	pool := make([]models.Question, 0, poolTarget)

	for i := 0; i < poolTarget; i++ {
		sentence := fmt.Sprintf("People of %s %s during %s %s in their %s land.",
			typingStates[i%len(typingStates)],
			typingVerbs[i%len(typingVerbs)],
			typingFestivals[i%len(typingFestivals)],
			typingTails[i%len(typingTails)],
			typingAdjectives[i%len(typingAdjectives)],
		)
		pool = append(pool, models.Question{
			ID:            questionID(models.Typing, i+1),
			Category:      models.Typing,
			Text:          sentence,
			CorrectAnswer: sentence,
		})
	}

	return pool
}
