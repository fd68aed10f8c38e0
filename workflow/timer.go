package workflow

import (
	"context"
	"time"

	"github.com/nj-eka/WordsStatGo/logging"
)

type PhaseTiming struct {
	Phase    string
	Duration time.Duration
}

// PhaseTimer measures time spent between consecutive Log calls
type PhaseTimer struct {
	prev   time.Time
	phases []PhaseTiming
}

func NewPhaseTimer() *PhaseTimer {
	return &PhaseTimer{prev: time.Now()}
}

// Log logs time spent since previous call (or timer creation) for phase
func (t *PhaseTimer) Log(ctx context.Context, phase string) time.Duration {
	now := time.Now()
	spent := now.Sub(t.prev)
	t.prev = now
	t.phases = append(t.phases, PhaseTiming{Phase: phase, Duration: spent})
	ms := spent.Milliseconds()
	logging.Msg(ctx).WithField("phase", phase).Infof("time spent for %s: %ds %dms", phase, ms/1000, ms%1000)
	return spent
}

func (t *PhaseTimer) Phases() []PhaseTiming {
	return t.phases
}
