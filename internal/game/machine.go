package game

import (
	"time"

	"quizprize-game/internal/models"
)

// DefaultPauseSeconds is how long the interstitial result screen stays
// up before the session auto-advances.
const DefaultPauseSeconds = 3

// MachineConfig carries the per-session tunables resolved from the
// settings source.
type MachineConfig struct {
	TimerSeconds      int
	PointsPerQuestion int
	PauseSeconds      int
}

// Machine is the round-timer session state machine. Its transition
// methods are invoked by the Runner's event loop (ticks, submissions,
// fetch completions) and directly by tests; it holds no timers and no
// goroutines of its own, so every transition is synchronous and
// deterministic given (state, event).
type Machine struct {
	id       string
	playerID string
	username string
	category models.Category

	cfg MachineConfig
	buf *Buffer

	state       models.SessionState
	timeLeft    int
	pauseLeft   int
	score       int
	questionNo  int
	lastOutcome models.Outcome
	lastAwarded int
	startedAt   time.Time

	// fetch issues an asynchronous batch request; its result must come
	// back through HandleFetchResult on the owning loop.
	fetch func(count int)
	// award is the fire-and-forget points sink.
	award func(q models.Question, points int)
}

func NewMachine(id, playerID, username string, category models.Category, cfg MachineConfig,
	fetch func(count int), award func(q models.Question, points int)) *Machine {
	if cfg.PauseSeconds <= 0 {
		cfg.PauseSeconds = DefaultPauseSeconds
	}
	if cfg.TimerSeconds <= 0 {
		cfg.TimerSeconds = category.DefaultTimerSeconds()
	}
	return &Machine{
		id:        id,
		playerID:  playerID,
		username:  username,
		category:  category,
		cfg:       cfg,
		buf:       NewBuffer(),
		state:     models.Loading,
		startedAt: time.Now(),
		fetch:     fetch,
		award:     award,
	}
}

// Start seeds the machine with the synchronously awaited initial batch.
// An empty batch with (or without) an error means there is no content to
// play at all, which is fatal for the session. On success the first
// question goes live and the larger background batch is fired without
// awaiting.
func (m *Machine) Start(initial []models.Question, err error) {
	if m.buf.Append(initial) == 0 || err != nil && m.buf.Remaining() == 0 {
		m.state = models.Failed
		return
	}
	m.questionNo = 1
	m.enterActive()
	m.buf.StartFetch(m.fetch, RefillSize)
}

// HandleTick advances the countdowns by one second.
func (m *Machine) HandleTick() {
	switch m.state {
	case models.Active:
		m.timeLeft--
		if m.timeLeft <= 0 {
			m.timeLeft = 0
			m.enterPaused(models.OutcomeSkip, 0)
		}
	case models.Paused:
		m.pauseLeft--
		if m.pauseLeft <= 0 {
			m.advance()
		}
	}
	// Loading, Waiting, Failed and Exited ignore ticks; a frozen
	// timeLeft during a pause is part of the contract.
}

// HandleAnswer evaluates a submission against the current question. A
// correct answer advances straight to the next question with points
// awarded; a wrong one shows the result interstitial with none.
func (m *Machine) HandleAnswer(answer string) {
	if m.state != models.Active {
		return
	}
	q, ok := m.buf.Current()
	if !ok {
		return
	}
	if Evaluate(m.category, answer, q.CorrectAnswer) {
		m.score += m.cfg.PointsPerQuestion
		m.lastOutcome = models.OutcomeCorrect
		m.lastAwarded = m.cfg.PointsPerQuestion
		if m.award != nil {
			m.award(q, m.cfg.PointsPerQuestion)
		}
		m.advance()
		return
	}
	m.enterPaused(models.OutcomeWrong, 0)
}

// HandleSkip leaves the Paused interstitial early. While Active it
// forfeits the current question as a skip.
func (m *Machine) HandleSkip() {
	switch m.state {
	case models.Paused:
		m.advance()
	case models.Active:
		m.enterPaused(models.OutcomeSkip, 0)
	}
}

// HandleFetchResult resolves an in-flight refill. A failure with an
// empty buffer surfaces the fatal cannot-load-content state; otherwise
// a Waiting session resumes as soon as new items land. A refill that
// comes back empty (or all-invalid) while the session is Waiting is
// just as fatal as a failed one: nothing is buffered, nothing is in
// flight and nothing would ever retry.
func (m *Machine) HandleFetchResult(items []models.Question, err error) {
	if m.state == models.Exited {
		// Session torn down while the fetch was in flight; discard.
		return
	}
	if m.buf.CompleteFetch(items, err) {
		m.state = models.Failed
		return
	}
	if m.state == models.Waiting {
		if _, ok := m.buf.Current(); ok {
			m.questionNo++
			m.enterActive()
			return
		}
		m.state = models.Failed
	}
}

// Exit terminates the session. In-flight fetches resolve into a no-op.
func (m *Machine) Exit() {
	m.state = models.Exited
}

func (m *Machine) enterActive() {
	m.state = models.Active
	m.timeLeft = m.cfg.TimerSeconds
	m.buf.EnsureBuffered(m.fetch)
}

func (m *Machine) enterPaused(outcome models.Outcome, awarded int) {
	m.state = models.Paused
	m.pauseLeft = m.cfg.PauseSeconds
	m.lastOutcome = outcome
	m.lastAwarded = awarded
	m.buf.EnsureBuffered(m.fetch)
}

// advance moves the cursor to the next buffered question. When the
// cursor runs past the buffered end the machine holds in Waiting until
// the outstanding fetch resolves.
func (m *Machine) advance() {
	m.buf.Advance()
	if _, ok := m.buf.Current(); ok {
		m.questionNo++
		m.enterActive()
		return
	}
	m.state = models.Waiting
	m.buf.EnsureBuffered(m.fetch)
}

// Snapshot renders the externally visible session view.
func (m *Machine) Snapshot() models.SessionSnapshot {
	snap := models.SessionSnapshot{
		ID:          m.id,
		PlayerID:    m.playerID,
		Username:    m.username,
		Category:    m.category,
		State:       m.state,
		QuestionNo:  m.questionNo,
		TimeLeft:    m.timeLeft,
		Score:       m.score,
		LastOutcome: m.lastOutcome,
		LastAwarded: m.lastAwarded,
		StartedAt:   m.startedAt,
	}
	if q, ok := m.buf.Current(); ok && m.state != models.Failed {
		// The correct answer never leaves the server.
		public := q
		public.CorrectAnswer = ""
		snap.Question = &public
	}
	return snap
}

// State exposes the current state for the service layer.
func (m *Machine) State() models.SessionState {
	return m.state
}
