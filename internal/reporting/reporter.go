// Package reporting carries the outcome of the featured-snaps screen back
// to the command that started it.
package reporting

import (
	"sync"

	"snaplist/internal/snaps"
	"snaplist/pkg/logging"
)

// Outcome is how the screen ended.
type Outcome int

const (
	// OutcomePending means neither Done nor Cancel was reported yet.
	OutcomePending Outcome = iota
	OutcomeDone
	OutcomeCancelled
)

// String makes Outcome satisfy the fmt.Stringer interface.
func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "Done"
	case OutcomeCancelled:
		return "Cancelled"
	default:
		return "Pending"
	}
}

// Recorder is the screen's reporter. It remembers the first outcome
// reported; later reports are logged and ignored.
type Recorder struct {
	mu         sync.Mutex
	outcome    Outcome
	selections map[string]snaps.Selection
	log        logging.Logger
}

// NewRecorder creates a Recorder with nothing reported.
func NewRecorder(log logging.Logger) *Recorder {
	if log == nil {
		log = logging.Discard()
	}
	return &Recorder{log: log}
}

// Done records the final selections.
func (r *Recorder) Done(selections map[string]snaps.Selection) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcome != OutcomePending {
		r.log.Warn("ignoring Done after %s", r.outcome)
		return
	}
	r.outcome = OutcomeDone
	r.selections = make(map[string]snaps.Selection, len(selections))
	for name, sel := range selections {
		r.selections[name] = sel
	}
	r.log.Info("screen done, %d snaps selected", len(selections))
}

// Cancel records that the user backed out.
func (r *Recorder) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.outcome != OutcomePending {
		r.log.Warn("ignoring Cancel after %s", r.outcome)
		return
	}
	r.outcome = OutcomeCancelled
	r.log.Info("screen cancelled")
}

// Outcome returns what was reported.
func (r *Recorder) Outcome() Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.outcome
}

// Selections returns the selections reported with Done, nil otherwise.
func (r *Recorder) Selections() map[string]snaps.Selection {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selections
}
