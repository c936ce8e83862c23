package service

import (
	"context"
	"time"
)

// DefaultPollInterval samples well below one second so the second==0 firing
// window is never missed.
const DefaultPollInterval = 500 * time.Millisecond

// Pollable is the clock surface the scheduler drives.
type Pollable interface {
	Poll(ctx context.Context, now time.Time)
}

// SchedulerService repeatedly samples the wall clock and hands the current
// time to the alarm controller.
type SchedulerService struct {
	clock Pollable
}

// NewSchedulerService returns a scheduler bound to the given controller.
func NewSchedulerService(clock Pollable) *SchedulerService {
	return &SchedulerService{clock: clock}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SchedulerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultPollInterval
	}

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			s.clock.Poll(ctx, now)
		}
	}
}
