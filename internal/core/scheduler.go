package core

import "time"

// FrameFunc is a callback run once on the next rendered frame.
type FrameFunc func(now time.Time)

// FrameHandle identifies a pending frame request. The zero handle is never
// issued and cancelling it is a no-op.
type FrameHandle uint64

type frameRequest struct {
	h  FrameHandle
	fn FrameFunc
}

// Scheduler queues one-shot callbacks for the next frame. Front-ends pump
// it once per rendered frame with RunFrame. Callbacks requested while a
// frame is running are deferred to the following frame, so a callback that
// re-requests itself runs exactly once per frame.
type Scheduler struct {
	next  FrameHandle
	queue []frameRequest
	live  map[FrameHandle]struct{}
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{live: make(map[FrameHandle]struct{})}
}

// Request schedules fn for the next frame and returns its cancel handle.
func (s *Scheduler) Request(fn FrameFunc) FrameHandle {
	if fn == nil {
		return 0
	}
	s.next++
	h := s.next
	s.queue = append(s.queue, frameRequest{h: h, fn: fn})
	s.live[h] = struct{}{}
	return h
}

// Cancel drops a pending request. It reports whether the request was still
// pending.
func (s *Scheduler) Cancel(h FrameHandle) bool {
	if h == 0 {
		return false
	}
	if _, ok := s.live[h]; !ok {
		return false
	}
	delete(s.live, h)
	return true
}

// Pending returns the number of requests waiting for a frame.
func (s *Scheduler) Pending() int { return len(s.live) }

// RunFrame runs every request made before this call that has not been
// cancelled, and returns how many callbacks ran.
func (s *Scheduler) RunFrame(now time.Time) int {
	batch := s.queue
	s.queue = nil
	ran := 0
	for _, req := range batch {
		if _, ok := s.live[req.h]; !ok {
			continue
		}
		delete(s.live, req.h)
		req.fn(now)
		ran++
	}
	return ran
}
