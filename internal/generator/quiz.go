package generator

import (
	"fmt"

	"quizprize-game/internal/models"
)

// QuizPool derives fact questions from the reference datasets. Builders
// rotate across datasets; each entry yields a forward and a reverse
// question, so the pool size is the sum of dataset sizes times two.
// Distractors come from sibling entries of the same field.
func QuizPool() []models.Question {
	var pool []models.Question

	for dsIdx, ds := range quizDatasets {
		keys := make([]string, len(ds.Entries))
		values := make([]string, len(ds.Entries))
		for i, e := range ds.Entries {
			keys[i] = e.Key
			values[i] = e.Value
		}

		for i, entry := range ds.Entries {
			seed := int64(dsIdx*311 + i*17)

			forward := models.Question{
				ID:            questionID(models.Quiz, len(pool)+1),
				Category:      models.Quiz,
				Text:          fmt.Sprintf(ds.Forward, entry.Key),
				CorrectAnswer: entry.Value,
				Options:       siblingOptions(entry.Value, values, i, seed),
			}
			pool = append(pool, forward)

			reverse := models.Question{
				ID:            questionID(models.Quiz, len(pool)+1),
				Category:      models.Quiz,
				Text:          fmt.Sprintf(ds.Reverse, entry.Value),
				CorrectAnswer: entry.Key,
				Options:       siblingOptions(entry.Key, keys, i, seed+1),
			}
			pool = append(pool, reverse)
		}
	}

	return pool
}
