package game

import (
	"time"

	"quizprize-game/internal/models"
)

// BatchSource supplies question batches, normally backed by the bank
// (or an HTTP client in a split deployment). An empty batch is a valid
// response; transport failures surface as errors.
type BatchSource func(category models.Category, count int) ([]models.Question, error)

type eventKind int

const (
	evTick eventKind = iota
	evAnswer
	evSkip
	evFetchDone
	evSnapshot
	evExit
)

type event struct {
	kind   eventKind
	answer string
	items  []models.Question
	err    error
	reply  chan models.SessionSnapshot
}

// Runner hosts one Machine on a single goroutine, the Go rendering of a
// cooperative event loop: timer ticks, submissions and fetch completions
// are serialized onto one channel, so the machine needs no locking and
// ticks never interleave with fetch handlers.
type Runner struct {
	machine *Machine
	source  BatchSource
	events  chan event
	done    chan struct{}
}

// NewRunner builds the runner and its machine. Fetches issued by the
// machine run on short-lived goroutines and post their results back to
// the loop.
func NewRunner(id, playerID, username string, category models.Category, cfg MachineConfig,
	source BatchSource, award func(q models.Question, points int)) *Runner {
	r := &Runner{
		source: source,
		events: make(chan event, 16),
		done:   make(chan struct{}),
	}
	r.machine = NewMachine(id, playerID, username, category, cfg,
		r.startFetch(category), award)
	return r
}

// Start awaits the small initial batch, seeds the machine and launches
// the event loop. It returns the first snapshot; a Failed state in it
// means no content could be loaded.
func (r *Runner) Start() models.SessionSnapshot {
	initial, err := r.source(r.machine.category, InitialSize)
	r.machine.Start(initial, err)
	if r.machine.State() == models.Failed {
		close(r.done)
		return r.machine.Snapshot()
	}
	// Snapshot while the machine is still quiescent: once the loop is
	// live the background refill may land at any moment, and the machine
	// must only ever be touched from the loop goroutine.
	snap := r.machine.Snapshot()
	go r.run()
	return snap
}

func (r *Runner) startFetch(category models.Category) func(count int) {
	return func(count int) {
		go func() {
			items, err := r.source(category, count)
			select {
			case r.events <- event{kind: evFetchDone, items: items, err: err}:
			case <-r.done:
				// Session gone; the result is discarded.
			}
		}()
	}
}

func (r *Runner) run() {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.machine.HandleTick()
		case ev := <-r.events:
			switch ev.kind {
			case evTick:
				r.machine.HandleTick()
			case evAnswer:
				r.machine.HandleAnswer(ev.answer)
			case evSkip:
				r.machine.HandleSkip()
			case evFetchDone:
				r.machine.HandleFetchResult(ev.items, ev.err)
			case evSnapshot:
			case evExit:
				r.machine.Exit()
				close(r.done)
				if ev.reply != nil {
					ev.reply <- r.machine.Snapshot()
				}
				return
			}
			if ev.reply != nil && ev.kind != evExit {
				ev.reply <- r.machine.Snapshot()
			}
		}
	}
}

// dispatch posts an event and waits for the post-transition snapshot.
// A closed done channel means the loop is gone; the last snapshot is
// returned as-is.
func (r *Runner) dispatch(ev event) models.SessionSnapshot {
	ev.reply = make(chan models.SessionSnapshot, 1)
	select {
	case r.events <- ev:
		select {
		case snap := <-ev.reply:
			return snap
		case <-r.done:
			return r.machine.Snapshot()
		}
	case <-r.done:
		return r.machine.Snapshot()
	}
}

// Answer submits an answer for the current question.
func (r *Runner) Answer(text string) models.SessionSnapshot {
	return r.dispatch(event{kind: evAnswer, answer: text})
}

// Skip leaves the pause interstitial (or forfeits the live question).
func (r *Runner) Skip() models.SessionSnapshot {
	return r.dispatch(event{kind: evSkip})
}

// Snapshot returns a consistent view of the session.
func (r *Runner) Snapshot() models.SessionSnapshot {
	return r.dispatch(event{kind: evSnapshot})
}

// Exit tears the session down: the loop stops, the ticker is released
// and any in-flight fetch result is discarded.
func (r *Runner) Exit() models.SessionSnapshot {
	return r.dispatch(event{kind: evExit})
}
