// Implements the EventQueue, a priority queue of scheduled process
// resumptions ordered by (time, sequence).

package sim

import "container/heap"

// VirtualTime is the simulation's internal clock value. It advances only
// when the event loop pops an event; it has no relation to wall-clock time.
type VirtualTime = float64

// Event is a scheduled future resumption of a process. The queue owns the
// event until it is popped; ownership then passes to the simulator for the
// duration of the resume call.
type Event struct {
	Time    VirtualTime
	Seq     uint64 // schedule-order tie-breaker for events at equal time
	Process Process
}

// EventQueue orders events by timestamp, breaking ties by the sequence
// number assigned at schedule time. The secondary key makes same-time
// ordering FIFO in schedule order, so a fixed seed reproduces an
// identical trace.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue struct {
	events  []*Event
	nextSeq uint64
}

// NewEventQueue creates an empty event queue.
func NewEventQueue() *EventQueue {
	q := &EventQueue{events: make([]*Event, 0)}
	heap.Init(q)
	return q
}

func (q *EventQueue) Len() int { return len(q.events) }

func (q *EventQueue) Less(i, j int) bool {
	ei, ej := q.events[i], q.events[j]
	if ei.Time != ej.Time {
		return ei.Time < ej.Time
	}
	return ei.Seq < ej.Seq
}

func (q *EventQueue) Swap(i, j int) {
	q.events[i], q.events[j] = q.events[j], q.events[i]
}

func (q *EventQueue) Push(x any) {
	q.events = append(q.events, x.(*Event))
}

func (q *EventQueue) Pop() any {
	old := q.events
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.events = old[0 : n-1]
	return item
}

// Schedule enqueues a resumption of p at time t and returns the event's
// sequence number. Sequence numbers increase monotonically with schedule
// order across the whole run.
func (q *EventQueue) Schedule(t VirtualTime, p Process) uint64 {
	q.nextSeq++
	heap.Push(q, &Event{Time: t, Seq: q.nextSeq, Process: p})
	return q.nextSeq
}

// PopEarliest removes and returns the earliest event, or nil when the
// queue is empty. An empty queue is the event loop's idle signal, not an
// error.
func (q *EventQueue) PopEarliest() *Event {
	if q.Len() == 0 {
		return nil
	}
	return heap.Pop(q).(*Event)
}

// Peek returns the earliest event without removing it, or nil when empty.
func (q *EventQueue) Peek() *Event {
	if q.Len() == 0 {
		return nil
	}
	return q.events[0]
}
