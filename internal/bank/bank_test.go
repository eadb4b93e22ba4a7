package bank

import (
	"testing"

	"quizprize-game/internal/models"
)

func TestGetBatchSize(t *testing.T) {
	b := New()

	batch := b.GetBatch("MATH", 5)
	if len(batch) != 5 {
		t.Fatalf("Expected 5 items, got %d", len(batch))
	}

	seen := map[string]bool{}
	for _, q := range batch {
		if seen[q.ID] {
			t.Fatalf("Duplicate id %s within one batch", q.ID)
		}
		seen[q.ID] = true
		if q.Category != models.Math {
			t.Fatalf("Expected MATH question, got %s", q.Category)
		}
		if len(q.Options) != 4 {
			t.Fatalf("Math question %s: expected 4 options, got %d", q.ID, len(q.Options))
		}
	}
}

func TestGetBatchCaseInsensitive(t *testing.T) {
	b := New()

	for _, name := range []string{"quiz", "Quiz", "QUIZ", " quiz "} {
		batch := b.GetBatch(name, 3)
		if len(batch) != 3 {
			t.Fatalf("Category %q: expected 3 items, got %d", name, len(batch))
		}
	}
}

func TestGetBatchUnknownCategory(t *testing.T) {
	b := New()

	if batch := b.GetBatch("HISTORY", 5); len(batch) != 0 {
		t.Fatalf("Expected empty batch for unknown category, got %d items", len(batch))
	}
	if batch := b.GetBatch("", 5); len(batch) != 0 {
		t.Fatalf("Expected empty batch for blank category, got %d items", len(batch))
	}
}

func TestGetBatchShort(t *testing.T) {
	b := New()

	size := b.PoolSize(models.Typing)
	batch := b.GetBatch("TYPING", size+100)
	if len(batch) != size {
		t.Fatalf("Expected short batch of %d (pool size), got %d", size, len(batch))
	}
}

func TestGetBatchDoesNotDrainPool(t *testing.T) {
	b := New()

	before := b.PoolSize(models.Puzzle)
	for i := 0; i < 10; i++ {
		b.GetBatch("PUZZLE", 50)
	}
	if after := b.PoolSize(models.Puzzle); after != before {
		t.Fatalf("Pool size changed from %d to %d after sampling", before, after)
	}
}

func TestAllPoolsPopulated(t *testing.T) {
	b := New()
	for _, c := range models.Categories() {
		if b.PoolSize(c) < 300 {
			t.Fatalf("Pool %s unexpectedly small: %d items", c, b.PoolSize(c))
		}
	}
}
