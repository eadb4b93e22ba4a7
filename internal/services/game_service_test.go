package services

import (
	"sync"
	"testing"
	"time"

	"quizprize-game/internal/bank"
	"quizprize-game/internal/config"
	"quizprize-game/internal/hub"
	"quizprize-game/internal/models"
	"quizprize-game/internal/repository"
)

func newTestService() (*GameService, *repository.InMemoryRepository) {
	repo := repository.NewInMemoryRepository()
	return NewGameService(hub.NewHub(), repo, bank.New(), config.DefaultSettings()), repo
}

// drainingSource serves one small batch and then runs dry, which drives
// a session into the fatal cannot-load-content state.
type drainingSource struct {
	mu      sync.Mutex
	batches [][]models.Question
}

func (s *drainingSource) GetBatch(category string, count int) []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.batches) == 0 {
		return nil
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch
}

func TestStartSessionUnknownCategory(t *testing.T) {
	gs, _ := newTestService()

	if _, err := gs.StartSession("HISTORY", "p1", "tester"); err != ErrUnknownCategory {
		t.Fatalf("Expected ErrUnknownCategory, got %v", err)
	}
}

func TestStartSessionCaseInsensitive(t *testing.T) {
	gs, _ := newTestService()

	snap, err := gs.StartSession("math", "p1", "tester")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	defer gs.EndSession(snap.ID)

	if snap.Category != models.Math {
		t.Errorf("Expected MATH session, got %s", snap.Category)
	}
	if snap.State != models.Active {
		t.Errorf("Expected an active session, got %s", snap.State)
	}
}

func TestSessionNotFoundEverywhere(t *testing.T) {
	gs, _ := newTestService()

	if _, err := gs.Snapshot("missing"); err != ErrSessionNotFound {
		t.Errorf("Snapshot: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := gs.SubmitAnswer("missing", "42"); err != ErrSessionNotFound {
		t.Errorf("SubmitAnswer: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := gs.SkipPause("missing"); err != ErrSessionNotFound {
		t.Errorf("SkipPause: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := gs.EndSession("missing"); err != ErrSessionNotFound {
		t.Errorf("EndSession: expected ErrSessionNotFound, got %v", err)
	}
}

func TestEndSessionRemovesIt(t *testing.T) {
	gs, _ := newTestService()

	snap, err := gs.StartSession("QUIZ", "p1", "tester")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	ended, err := gs.EndSession(snap.ID)
	if err != nil {
		t.Fatalf("EndSession failed: %v", err)
	}
	if ended.State != models.Exited {
		t.Errorf("Expected an exited snapshot, got %s", ended.State)
	}
	if _, err := gs.Snapshot(snap.ID); err != ErrSessionNotFound {
		t.Errorf("Ended session still resolvable: %v", err)
	}
}

func TestInputAfterSessionFailedReportsSessionOver(t *testing.T) {
	source := &drainingSource{batches: [][]models.Question{{{
		ID:            "MATH-0001",
		Category:      models.Math,
		Text:          "What is 3 + 4?",
		CorrectAnswer: "7",
		Options:       []string{"6", "7", "8", "9"},
	}}}}
	gs := NewGameService(hub.NewHub(), repository.NewInMemoryRepository(), source, config.DefaultSettings())

	snap, err := gs.StartSession("MATH", "p1", "tester")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}

	// Consuming the only question strands the session past the buffered
	// end; the dry source then turns the wait fatal.
	if _, err := gs.SubmitAnswer(snap.ID, "7"); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		current, err := gs.Snapshot(snap.ID)
		if err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}
		if current.State == models.Failed {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("Session never failed, stuck in %s", current.State)
		case <-time.After(10 * time.Millisecond):
		}
	}

	if _, err := gs.SubmitAnswer(snap.ID, "7"); err != ErrSessionOver {
		t.Errorf("SubmitAnswer on a failed session: expected ErrSessionOver, got %v", err)
	}
	if _, err := gs.SkipPause(snap.ID); err != ErrSessionOver {
		t.Errorf("SkipPause on a failed session: expected ErrSessionOver, got %v", err)
	}
}

func TestWrongAnswerPausesWithoutPoints(t *testing.T) {
	gs, repo := newTestService()

	snap, err := gs.StartSession("MATH", "p1", "tester")
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	defer gs.EndSession(snap.ID)

	// MATH answers are numeric, so a word is always wrong.
	after, err := gs.SubmitAnswer(snap.ID, "elephant")
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if after.State != models.Paused || after.LastOutcome != models.OutcomeWrong {
		t.Fatalf("Expected a paused wrong outcome, got %s/%s", after.State, after.LastOutcome)
	}

	time.Sleep(50 * time.Millisecond) // let any stray award goroutine land
	total, err := repo.TotalPoints("p1")
	if err != nil {
		t.Fatalf("TotalPoints failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Wrong answer put %d points in the ledger", total)
	}
}
