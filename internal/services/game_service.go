package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"quizprize-game/internal/config"
	"quizprize-game/internal/game"
	"quizprize-game/internal/hub"
	"quizprize-game/internal/models"
	"quizprize-game/internal/repository"
)

// QuestionSource supplies question batches for sessions and the batch
// endpoint. The in-process bank is the production implementation.
type QuestionSource interface {
	GetBatch(category string, count int) []models.Question
}

// GameService orchestrates game sessions: it wires each session's
// prefetch buffer to the question source, streams session events
// through the hub and pushes points awards to the repository.
type GameService struct {
	hub      *hub.Hub
	repo     repository.Repository
	source   QuestionSource
	settings config.Settings

	mu       sync.RWMutex
	sessions map[string]*game.Runner
}

func NewGameService(gameHub *hub.Hub, repo repository.Repository, source QuestionSource, settings config.Settings) *GameService {
	return &GameService{
		hub:      gameHub,
		repo:     repo,
		source:   source,
		settings: settings,
		sessions: make(map[string]*game.Runner),
	}
}

func (gs *GameService) Source() QuestionSource {
	return gs.source
}

func (gs *GameService) Repository() repository.Repository {
	return gs.repo
}

// StartSession creates a session for one player in one category. The
// initial batch is awaited so the caller gets a playable first question;
// a Failed snapshot (with ErrContentUnavailable) means the source had
// nothing to serve; the caller may retry.
func (gs *GameService) StartSession(category, playerID, username string) (models.SessionSnapshot, error) {
	c, ok := models.ParseCategory(category)
	if !ok {
		return models.SessionSnapshot{}, ErrUnknownCategory
	}

	sessionID := uuid.New().String()
	cfg := game.MachineConfig{
		TimerSeconds:      gs.settings.TimerFor(c),
		PointsPerQuestion: gs.settings.PointsPerQuestion,
		PauseSeconds:      gs.settings.PauseSeconds,
	}

	source := func(cat models.Category, count int) ([]models.Question, error) {
		return gs.source.GetBatch(string(cat), count), nil
	}
	award := func(q models.Question, points int) {
		gs.awardPoints(sessionID, playerID, username, q, points)
	}

	runner := game.NewRunner(sessionID, playerID, username, c, cfg, source, award)
	snap := runner.Start()
	if snap.State == models.Failed {
		log.Printf("Session %s failed to start: no %s content available", sessionID, c)
		return snap, ErrContentUnavailable
	}

	gs.mu.Lock()
	gs.sessions[sessionID] = runner
	gs.mu.Unlock()

	gs.hub.CreateSessionHub(sessionID)
	gs.broadcast(sessionID, "session_started", snap)
	log.Printf("Session %s started: player=%s category=%s timer=%ds", sessionID, username, c, cfg.TimerSeconds)

	return snap, nil
}

func (gs *GameService) getRunner(sessionID string) (*game.Runner, error) {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	runner, ok := gs.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return runner, nil
}

func (gs *GameService) Snapshot(sessionID string) (models.SessionSnapshot, error) {
	runner, err := gs.getRunner(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	return runner.Snapshot(), nil
}

// SubmitAnswer evaluates an answer and returns the resulting snapshot.
// Submissions against a session that already failed or exited report
// ErrSessionOver instead of being silently swallowed.
func (gs *GameService) SubmitAnswer(sessionID, answer string) (models.SessionSnapshot, error) {
	runner, err := gs.getRunner(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	if snap := runner.Snapshot(); sessionOver(snap.State) {
		return snap, ErrSessionOver
	}
	snap := runner.Answer(answer)
	gs.broadcast(sessionID, "answer_result", snap)
	if snap.State == models.Failed {
		return snap, ErrContentUnavailable
	}
	return snap, nil
}

// SkipPause leaves the result interstitial (or forfeits a live
// question) and moves to the next buffered question.
func (gs *GameService) SkipPause(sessionID string) (models.SessionSnapshot, error) {
	runner, err := gs.getRunner(sessionID)
	if err != nil {
		return models.SessionSnapshot{}, err
	}
	if snap := runner.Snapshot(); sessionOver(snap.State) {
		return snap, ErrSessionOver
	}
	snap := runner.Skip()
	gs.broadcast(sessionID, "question_advanced", snap)
	return snap, nil
}

// EndSession tears the session down. Timers stop, the hub closes and
// any in-flight refill result is discarded.
func (gs *GameService) EndSession(sessionID string) (models.SessionSnapshot, error) {
	gs.mu.Lock()
	runner, ok := gs.sessions[sessionID]
	delete(gs.sessions, sessionID)
	gs.mu.Unlock()
	if !ok {
		return models.SessionSnapshot{}, ErrSessionNotFound
	}

	snap := runner.Exit()
	gs.broadcast(sessionID, "session_ended", snap)
	gs.hub.RemoveSessionHub(sessionID)
	log.Printf("Session %s ended: score=%d questions=%d", sessionID, snap.Score, snap.QuestionNo)
	return snap, nil
}

// awardPoints persists one correct-answer award without blocking
// gameplay; a sink failure only produces a log entry because the
// session's score is already updated optimistically.
func (gs *GameService) awardPoints(sessionID, playerID, username string, q models.Question, points int) {
	award := models.PointsAward{
		PlayerID:   playerID,
		Username:   username,
		SessionID:  sessionID,
		Category:   q.Category,
		QuestionID: q.ID,
		Points:     points,
		AwardedAt:  time.Now(),
	}
	go func() {
		if err := gs.repo.SavePointsAward(award); err != nil {
			log.Printf("Failed to sync points award for player %s: %v", playerID, err)
		}
	}()
}

// sessionOver reports whether a session can no longer accept gameplay
// input.
func sessionOver(state models.SessionState) bool {
	return state == models.Failed || state == models.Exited
}

func (gs *GameService) broadcast(sessionID, eventType string, data interface{}) {
	sessionHub := gs.hub.GetSessionHub(sessionID)
	if sessionHub == nil {
		return
	}
	event := hub.Event{
		Type:      eventType,
		SessionID: sessionID,
		Data:      data,
		Timestamp: time.Now(),
	}
	jsonData, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}
	sessionHub.Broadcast(jsonData)
}
