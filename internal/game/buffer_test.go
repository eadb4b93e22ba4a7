package game

import (
	"errors"
	"testing"

	"quizprize-game/internal/models"
)

func mathQuestion(id string) models.Question {
	return models.Question{
		ID:            id,
		Category:      models.Math,
		Text:          "What is 2 + 2?",
		CorrectAnswer: "4",
		Options:       []string{"3", "4", "5", "6"},
	}
}

func fillBuffer(b *Buffer, n int) {
	items := make([]models.Question, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, mathQuestion(string(rune('a'+i))))
	}
	b.Append(items)
}

func TestEnsureBufferedSingleFlight(t *testing.T) {
	b := NewBuffer()
	fillBuffer(b, 2)

	calls := 0
	start := func(count int) { calls++ }

	if !b.EnsureBuffered(start) {
		t.Fatal("First call below threshold should start a fetch")
	}
	if b.EnsureBuffered(start) {
		t.Fatal("Second call must not start a fetch while one is in flight")
	}
	if calls != 1 {
		t.Fatalf("Expected exactly 1 network call, got %d", calls)
	}
}

func TestEnsureBufferedThreshold(t *testing.T) {
	b := NewBuffer()
	fillBuffer(b, 4)

	calls := 0
	start := func(count int) {
		calls++
		if count != RefillSize {
			t.Fatalf("Expected refill request of %d, got %d", RefillSize, count)
		}
	}

	// 4 remaining is above the threshold of 3: no fetch.
	if b.EnsureBuffered(start) {
		t.Fatal("Fetch started above threshold")
	}

	// Advancing to 3 remaining triggers exactly one refill.
	b.Advance()
	if !b.EnsureBuffered(start) {
		t.Fatal("Fetch not started at threshold")
	}
	if calls != 1 {
		t.Fatalf("Expected exactly 1 refill call, got %d", calls)
	}
}

func TestEnsureBufferedResumesAfterCompletion(t *testing.T) {
	b := NewBuffer()
	fillBuffer(b, 1)

	calls := 0
	b.EnsureBuffered(func(int) { calls++ })
	b.CompleteFetch([]models.Question{mathQuestion("x")}, nil)
	b.EnsureBuffered(func(int) { calls++ })

	if calls != 2 {
		t.Fatalf("Expected a second fetch after completion cleared the guard, got %d", calls)
	}
}

func TestCompleteFetchFiltersInvalid(t *testing.T) {
	b := NewBuffer()
	b.fetchInFlight = true

	items := []models.Question{
		mathQuestion("ok"),
		{ID: "no-text", Category: models.Math, CorrectAnswer: "1"},
		{ID: "no-answer", Category: models.Math, Text: "What is 1 + 0?"},
		{ID: "bad-quiz", Category: models.Quiz, Text: "Capital?", CorrectAnswer: "Mumbai", Options: []string{"Mumbai"}},
	}

	if fatal := b.CompleteFetch(items, nil); fatal {
		t.Fatal("Valid batch with some bad items must not be fatal")
	}
	if b.Remaining() != 1 {
		t.Fatalf("Expected 1 surviving item, got %d", b.Remaining())
	}
	if b.FetchInFlight() {
		t.Fatal("Guard not cleared after completion")
	}
}

func TestCompleteFetchFailureWithEmptyBuffer(t *testing.T) {
	b := NewBuffer()
	b.fetchInFlight = true

	if fatal := b.CompleteFetch(nil, errors.New("dial tcp: connection refused")); !fatal {
		t.Fatal("Fetch failure with an empty buffer must be fatal")
	}
	if b.FetchInFlight() {
		t.Fatal("Guard must clear even on failure")
	}
}

func TestCompleteFetchFailureWithBufferedItems(t *testing.T) {
	b := NewBuffer()
	fillBuffer(b, 2)
	b.fetchInFlight = true

	if fatal := b.CompleteFetch(nil, errors.New("502 bad gateway")); fatal {
		t.Fatal("Fetch failure with buffered items must be silent")
	}
	if b.Remaining() != 2 {
		t.Fatalf("Buffered items lost on failed refill: %d remaining", b.Remaining())
	}
}

func TestBufferFIFOOrder(t *testing.T) {
	b := NewBuffer()
	fillBuffer(b, 3)

	want := []string{"a", "b", "c"}
	for _, id := range want {
		q, ok := b.Current()
		if !ok {
			t.Fatalf("Expected question %s, buffer exhausted", id)
		}
		if q.ID != id {
			t.Fatalf("Expected question %s next, got %s", id, q.ID)
		}
		b.Advance()
	}
	if _, ok := b.Current(); ok {
		t.Fatal("Expected exhausted buffer after consuming all items")
	}
}
