package repository

import (
	"sync"
	"testing"
	"time"

	"quizprize-game/internal/models"
)

func sampleAward(playerID string, points int) models.PointsAward {
	return models.PointsAward{
		PlayerID:   playerID,
		Username:   "tester",
		SessionID:  "session-1",
		Category:   models.Math,
		QuestionID: "MATH-0001",
		Points:     points,
		AwardedAt:  time.Now(),
	}
}

func TestInMemoryTotals(t *testing.T) {
	repo := NewInMemoryRepository()

	if err := repo.SavePointsAward(sampleAward("p1", 10)); err != nil {
		t.Fatalf("SavePointsAward failed: %v", err)
	}
	if err := repo.SavePointsAward(sampleAward("p1", 10)); err != nil {
		t.Fatalf("SavePointsAward failed: %v", err)
	}
	if err := repo.SavePointsAward(sampleAward("p2", 25)); err != nil {
		t.Fatalf("SavePointsAward failed: %v", err)
	}

	total, err := repo.TotalPoints("p1")
	if err != nil {
		t.Fatalf("TotalPoints failed: %v", err)
	}
	if total != 20 {
		t.Errorf("Expected 20 points for p1, got %d", total)
	}

	total, err = repo.TotalPoints("p2")
	if err != nil {
		t.Fatalf("TotalPoints failed: %v", err)
	}
	if total != 25 {
		t.Errorf("Expected 25 points for p2, got %d", total)
	}
}

func TestInMemoryUnknownPlayer(t *testing.T) {
	repo := NewInMemoryRepository()

	total, err := repo.TotalPoints("nobody")
	if err != nil {
		t.Fatalf("TotalPoints failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected 0 points for an unknown player, got %d", total)
	}
}

func TestInMemoryConcurrentWrites(t *testing.T) {
	repo := NewInMemoryRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			repo.SavePointsAward(sampleAward("p1", 10))
		}()
	}
	wg.Wait()

	total, err := repo.TotalPoints("p1")
	if err != nil {
		t.Fatalf("TotalPoints failed: %v", err)
	}
	if total != 500 {
		t.Errorf("Expected 500 points after 50 concurrent awards, got %d", total)
	}
}
