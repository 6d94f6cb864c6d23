package crawl

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/fwojciec/bbsdoc"
)

var _ bbsdoc.Throttler = (*Jitter)(nil)

// Jitter pauses for a uniformly random duration in [min, max] so requests
// do not arrive at a fixed cadence.
type Jitter struct {
	min time.Duration
	max time.Duration
}

// NewJitter creates a Jitter. A max below min is raised to min.
func NewJitter(min, max time.Duration) *Jitter {
	if max < min {
		max = min
	}
	return &Jitter{min: min, max: max}
}

// Delay returns the next pause duration.
func (j *Jitter) Delay() time.Duration {
	if j.max == j.min {
		return j.min
	}
	return j.min + rand.N(j.max-j.min+1)
}

// Wait sleeps for Delay, returning early with the context's error if it is
// canceled first.
func (j *Jitter) Wait(ctx context.Context) error {
	d := j.Delay()
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
