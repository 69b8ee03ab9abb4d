package engine

import (
	"sort"

	"github.com/lumenfall/stardrift/event"
)

// scheduledEvent pairs an event with the simulated time it becomes due
type scheduledEvent struct {
	due float64
	ev  event.GameEvent
	seq uint64
}

// Scheduler is the explicit delayed-event queue: one-shot deferred work
// (death-sequence completion, respawn) is keyed by due simulation time
// and released into the event queue at tick boundaries. This replaces
// ambient timers so replays with identical dt sequences are identical
type Scheduler struct {
	pending []scheduledEvent
	nextSeq uint64
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule queues ev for delivery once elapsed simulation time reaches due
func (s *Scheduler) Schedule(due float64, ev event.GameEvent) {
	s.pending = append(s.pending, scheduledEvent{due: due, ev: ev, seq: s.nextSeq})
	s.nextSeq++
	// Keep ordered by due time, then insertion order for determinism
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due != s.pending[j].due {
			return s.pending[i].due < s.pending[j].due
		}
		return s.pending[i].seq < s.pending[j].seq
	})
}

// Release pushes every due event into the queue, stamped with frame
func (s *Scheduler) Release(elapsed float64, q *event.EventQueue, frame int64) {
	n := 0
	for ; n < len(s.pending); n++ {
		if s.pending[n].due > elapsed {
			break
		}
		ev := s.pending[n].ev
		ev.Frame = frame
		q.Push(ev)
	}
	if n > 0 {
		s.pending = append(s.pending[:0], s.pending[n:]...)
	}
}

// Pending returns the number of undelivered scheduled events
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
