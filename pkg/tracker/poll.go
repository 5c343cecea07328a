package tracker

import (
	"context"
	"time"
)

// await re-checks cond up to the configured attempt count, yielding between
// attempts until either a mutation notification or the poll interval
// elapses. It returns cond's final verdict, so a condition that settles on
// the last attempt still succeeds. The attempt bound guarantees
// termination; there is no unbounded wait anywhere in the tracker.
func (t *Tracker) await(ctx context.Context, cond func() bool) bool {
	for i := 0; i < t.cfg.PollAttempts; i++ {
		if cond() {
			return true
		}
		timer := time.NewTimer(t.cfg.PollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-t.page.Mutations():
			timer.Stop()
		case <-timer.C:
		}
	}
	return cond()
}
