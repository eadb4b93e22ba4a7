// Package bank holds the process-wide question pools and the batch
// sampling service that draws from them.
package bank

import (
	"log"

	"quizprize-game/internal/generator"
	"quizprize-game/internal/models"
	"quizprize-game/internal/random"
)

// Bank is the read-only aggregate of all category pools. It is built
// once at startup and injected wherever batches are needed; pools are
// never mutated after construction.
type Bank struct {
	pools map[models.Category][]models.Question
}

// New runs every generator and assembles the bank.
func New() *Bank {
	pools := make(map[models.Category][]models.Question, len(models.Categories()))
	for _, c := range models.Categories() {
		pool := generator.ForCategory(c)()
		pools[c] = pool
		log.Printf("Question bank: built %d %s items", len(pool), c)
	}
	return &Bank{pools: pools}
}

// PoolSize returns the number of items generated for a category.
func (b *Bank) PoolSize(c models.Category) int {
	return len(b.pools[c])
}

// GetBatch draws up to count unique questions from one category's pool.
// The category match is case-insensitive; an unknown category or empty
// pool yields an empty batch, never an error. Draws are independent per
// call: the shared pool is untouched, so repeats across batches are
// expected, while items inside one batch are unique.
func (b *Bank) GetBatch(category string, count int) []models.Question {
	c, ok := models.ParseCategory(category)
	if !ok {
		return nil
	}
	pool := b.pools[c]
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	return random.Sample(pool, count)
}
