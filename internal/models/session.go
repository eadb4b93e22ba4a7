package models

import "time"

type SessionState string

const (
	Loading SessionState = "loading"
	Active  SessionState = "active"
	Paused  SessionState = "paused"
	Waiting SessionState = "waiting"
	Failed  SessionState = "failed"
	Exited  SessionState = "exited"
)

type Outcome string

const (
	OutcomeCorrect Outcome = "correct"
	OutcomeWrong   Outcome = "wrong"
	OutcomeSkip    Outcome = "skip"
)

// SessionSnapshot is the externally visible view of a running game
// session, returned by the API and broadcast over the hub.
type SessionSnapshot struct {
	ID           string       `json:"id"`
	PlayerID     string       `json:"player_id"`
	Username     string       `json:"username"`
	Category     Category     `json:"category"`
	State        SessionState `json:"state"`
	Question     *Question    `json:"question,omitempty"`
	QuestionNo   int          `json:"question_no"`
	TimeLeft     int          `json:"time_left"`
	Score        int          `json:"score"`
	LastOutcome  Outcome      `json:"last_outcome,omitempty"`
	LastAwarded  int          `json:"last_awarded"`
	StartedAt    time.Time    `json:"started_at"`
}

type GameEvent struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// PointsAward records points granted for one correct answer. Persisting it
// is fire-and-forget; gameplay never waits on the ledger.
type PointsAward struct {
	PlayerID   string    `json:"player_id"`
	Username   string    `json:"username"`
	SessionID  string    `json:"session_id"`
	Category   Category  `json:"category"`
	QuestionID string    `json:"question_id"`
	Points     int       `json:"points"`
	AwardedAt  time.Time `json:"awarded_at"`
}
