// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"context"
	"log/slog"
	"time"
)

// Loop runs frames at a fixed interval on one goroutine, which is
// also where all queued functions run. All scene state must only
// be changed on the loop goroutine.
type Loop struct {

	// Interval is the time between frames.
	Interval time.Duration

	// MaxFrames is the number of frames to run before stopping,
	// or 0 to run until the context is done.
	MaxFrames int

	// Frames is the number of frames that have run.
	Frames int

	queue chan func()
	done  chan struct{}
}

// NewLoop returns a new [Loop] with the given frame interval.
func NewLoop(interval time.Duration) *Loop {
	return &Loop{Interval: interval, queue: make(chan func(), 64), done: make(chan struct{})}
}

// Do queues the given function to run on the loop goroutine
// before the next frame. It returns false without queuing
// if the loop has stopped.
func (lp *Loop) Do(fun func()) bool {
	select {
	case <-lp.done:
		return false
	default:
	}
	select {
	case lp.queue <- fun:
		return true
	case <-lp.done:
		return false
	}
}

// Run calls frame once per interval until the context is done,
// the frame function returns an error, or MaxFrames frames have run.
// It must only be called once.
func (lp *Loop) Run(ctx context.Context, frame func() error) error {
	defer close(lp.done)
	tick := time.NewTicker(lp.Interval)
	defer tick.Stop()
	slog.Debug("loop started", "interval", lp.Interval)
	for {
		select {
		case <-ctx.Done():
			slog.Debug("loop stopped", "frames", lp.Frames)
			return nil
		case fun := <-lp.queue:
			fun()
		case <-tick.C:
			if err := frame(); err != nil {
				return err
			}
			lp.Frames++
			if lp.MaxFrames > 0 && lp.Frames >= lp.MaxFrames {
				return nil
			}
		}
	}
}
