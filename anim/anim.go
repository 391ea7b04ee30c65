// Package anim drives the progress of chart animations.
//
// An Animator owns the timing of an animation and nothing else: it turns the
// time elapsed since Start into a progress fraction in [0, 1] that a chart
// receives when it is drawn.
package anim

import (
	"context"
	"time"
)

const DefaultDuration = time.Second

type Animator struct {
	Duration time.Duration

	start   time.Time
	started bool
}

func New(d time.Duration) *Animator {
	if d < 0 {
		d = 0
	}
	return &Animator{
		Duration: d,
	}
}

func (a *Animator) Start(now time.Time) {
	a.start = now
	a.started = true
}

func (a *Animator) Started() bool {
	return a.started
}

// Progress is linear over Duration. It is 0 before Start and stays at 1 once
// the animation is over.
func (a *Animator) Progress(now time.Time) float64 {
	if !a.started {
		return 0
	}
	if a.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(a.start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= a.Duration:
		return 1
	default:
		return float64(elapsed) / float64(a.Duration)
	}
}

func (a *Animator) Done(now time.Time) bool {
	return a.Progress(now) >= 1
}

// Run starts the animation and calls fn with the current progress on every
// tick of interval, the last call being made with a progress of 1. It stops
// early when ctx is cancelled or fn fails.
func (a *Animator) Run(ctx context.Context, interval time.Duration, fn func(float64) error) error {
	if interval <= 0 {
		interval = a.Duration / 10
	}
	a.Start(time.Now())
	if err := fn(0); err != nil {
		return err
	}
	if a.Duration <= 0 || interval <= 0 {
		return fn(1)
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-tick.C:
			p := a.Progress(now)
			if err := fn(p); err != nil {
				return err
			}
			if p >= 1 {
				return nil
			}
		}
	}
}
