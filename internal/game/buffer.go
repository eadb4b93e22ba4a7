package game

import (
	"log"

	"quizprize-game/internal/models"
)

const (
	// RefillThreshold triggers a background refill when the unconsumed
	// buffer length drops to or below it.
	RefillThreshold = 3
	// RefillSize is the count requested by a background refill.
	RefillSize = 5
	// InitialSize is the small synchronous batch at session start that
	// minimizes time-to-first-question.
	InitialSize = 3
)

// Buffer is the per-session FIFO of fetched-but-not-yet-shown questions
// plus a read cursor. It is owned by exactly one session and is only
// touched from that session's event loop, so it carries no lock. The
// fetchInFlight flag is the single-flight guard: it is set before a
// fetch is issued and cleared in the completion handler, success or not.
type Buffer struct {
	queue         []models.Question
	cursor        int
	fetchInFlight bool
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

// Remaining is the number of buffered questions at or past the cursor.
func (b *Buffer) Remaining() int {
	return len(b.queue) - b.cursor
}

// Current returns the question under the cursor, if any.
func (b *Buffer) Current() (models.Question, bool) {
	if b.cursor >= len(b.queue) {
		return models.Question{}, false
	}
	return b.queue[b.cursor], true
}

// Advance moves the cursor one question forward.
func (b *Buffer) Advance() {
	b.cursor++
}

// FetchInFlight reports whether a refill is outstanding.
func (b *Buffer) FetchInFlight() bool {
	return b.fetchInFlight
}

// EnsureBuffered issues one background refill through start if the
// remaining length is at or below the threshold and no fetch is already
// in flight. It reports whether a fetch was started.
func (b *Buffer) EnsureBuffered(start func(count int)) bool {
	if b.fetchInFlight {
		return false
	}
	if b.Remaining() > RefillThreshold {
		return false
	}
	b.fetchInFlight = true
	start(RefillSize)
	return true
}

// StartFetch marks a fetch as in flight without a threshold check, used
// for the unconditional background batch fired right after session
// start. It is a no-op when a fetch is already outstanding.
func (b *Buffer) StartFetch(start func(count int), count int) bool {
	if b.fetchInFlight {
		return false
	}
	b.fetchInFlight = true
	start(count)
	return true
}

// Append filters a batch for validity and appends the survivors.
// Invalid items are dropped silently apart from a log line; a partly
// bad batch never fails as a whole.
func (b *Buffer) Append(items []models.Question) int {
	kept := 0
	for _, q := range items {
		if !q.Valid() {
			log.Printf("Buffer: dropping invalid question %q", q.ID)
			continue
		}
		b.queue = append(b.queue, q)
		kept++
	}
	return kept
}

// CompleteFetch resolves an outstanding fetch. The guard is cleared
// unconditionally. A failed fetch is fatal only when the buffer had
// nothing left to play; otherwise it is logged and gameplay continues
// on the buffered items.
func (b *Buffer) CompleteFetch(items []models.Question, err error) (fatal bool) {
	b.fetchInFlight = false
	if err != nil {
		if b.Remaining() == 0 {
			return true
		}
		log.Printf("Buffer: refill failed, continuing on %d buffered items: %v", b.Remaining(), err)
		return false
	}
	b.Append(items)
	return false
}
