// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides cooperative per-frame scheduling: a [Scheduler]
// interface modeled on request/cancel animation frame, and a [Queue]
// implementation that a host pumps once per display refresh.
package frame

import (
	"time"
)

// Handle identifies a scheduled callback so that it can be cancelled.
// The zero Handle is never issued.
type Handle uint64

// Callback is a frame callback. It receives the host time of the frame,
// measured from an arbitrary host-defined origin.
type Callback func(now time.Duration)

// Scheduler schedules callbacks to run on the next display frame.
type Scheduler interface {

	// ScheduleNext schedules cb to run once on the next frame.
	ScheduleNext(cb Callback) Handle

	// Cancel removes a scheduled callback. Cancelling a handle that
	// already ran or was already cancelled is a no-op.
	Cancel(h Handle)
}

type entry struct {
	handle Handle
	cb     Callback
}

// Queue is a [Scheduler] whose frames are driven by the host calling
// [Queue.Tick]. It is not safe for concurrent use: scheduling, cancelling
// and ticking all happen on the host loop.
type Queue struct {
	last    Handle
	pending []entry
}

// NewQueue returns a new empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) ScheduleNext(cb Callback) Handle {
	q.last++
	q.pending = append(q.pending, entry{handle: q.last, cb: cb})
	return q.last
}

func (q *Queue) Cancel(h Handle) {
	for i, e := range q.pending {
		if e.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Tick runs one frame: every callback scheduled before the call runs once,
// in scheduling order. Callbacks scheduled during the tick wait for the next
// one, and a callback cancelled by an earlier callback in the same tick does
// not run. It returns the number of callbacks run.
func (q *Queue) Tick(now time.Duration) int {
	if len(q.pending) == 0 {
		return 0
	}
	boundary := q.last
	n := 0
	for {
		i := q.firstBefore(boundary)
		if i < 0 {
			break
		}
		e := q.pending[i]
		q.pending = append(q.pending[:i], q.pending[i+1:]...)
		e.cb(now)
		n++
	}
	return n
}

// firstBefore returns the index of the first pending entry with a handle
// no later than boundary, or -1.
func (q *Queue) firstBefore(boundary Handle) int {
	for i, e := range q.pending {
		if e.handle <= boundary {
			return i
		}
	}
	return -1
}

// Run ticks the queue n times, advancing host time by step each tick
// starting at start. It is a convenience for headless hosts and tests.
func (q *Queue) Run(n int, start, step time.Duration) time.Duration {
	now := start
	for i := 0; i < n; i++ {
		q.Tick(now)
		now += step
	}
	return now
}
