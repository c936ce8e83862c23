package service

import (
	"sync"
	"time"
)

// Escalation timing defaults: the level rises every 10s of ringing,
// recomputed on a 1s internal tick. Level 4 and above is the aggressive tier.
const (
	DefaultEscalationTick = 1 * time.Second
	DefaultEscalationStep = 10 * time.Second
	AggressiveLevel       = 4
)

// EscalationTimer raises an integer level while the alarm rings:
// level = floor(elapsed/step) + 1. The onLevelChange callback runs only when
// the recomputed level differs from the stored one, and always under the
// timer's lock, so once Stop returns no callback can fire. Callbacks must not
// call back into Start or Stop.
type EscalationTimer struct {
	tick time.Duration
	step time.Duration

	mu     sync.Mutex
	cancel chan struct{} // cancellation token; non-nil while running
	level  int
}

// NewEscalationTimer builds a timer with the given tick and level step.
// Non-positive durations fall back to the defaults.
func NewEscalationTimer(tick, step time.Duration) *EscalationTimer {
	if tick <= 0 {
		tick = DefaultEscalationTick
	}
	if step <= 0 {
		step = DefaultEscalationStep
	}
	return &EscalationTimer{tick: tick, step: step}
}

// Start begins ticking from level 1. A running timer is restarted, so a
// re-trigger always resets the level.
func (t *EscalationTimer) Start(onLevelChange func(level int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	t.level = 1

	cancel := make(chan struct{})
	t.cancel = cancel

	go t.run(time.Now(), cancel, onLevelChange)
}

// Stop cancels the timer. Idempotent: safe to call repeatedly or when the
// timer was never started. After Stop returns, no further callback fires.
func (t *EscalationTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

// Level returns the current escalation level, or 0 when stopped.
func (t *EscalationTimer) Level() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.level
}

func (t *EscalationTimer) stopLocked() {
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
		t.level = 0
	}
}

func (t *EscalationTimer) run(started time.Time, cancel chan struct{}, onLevelChange func(level int)) {
	ticker := time.NewTicker(t.tick)
	defer ticker.Stop()

	for {
		select {
		case <-cancel:
			return
		case now := <-ticker.C:
			t.mu.Lock()
			// Re-check under the lock: Stop may have won the race.
			select {
			case <-cancel:
				t.mu.Unlock()
				return
			default:
			}

			next := int(now.Sub(started)/t.step) + 1
			if next != t.level {
				t.level = next
				if onLevelChange != nil {
					onLevelChange(next)
				}
			}
			t.mu.Unlock()
		}
	}
}
