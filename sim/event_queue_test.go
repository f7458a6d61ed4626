package sim

import "testing"

func TestEventQueue_OrdersByTime(t *testing.T) {
	q := NewEventQueue()
	a := &scriptedProcess{name: "a"}
	b := &scriptedProcess{name: "b"}
	c := &scriptedProcess{name: "c"}

	q.Schedule(5, a)
	q.Schedule(1, b)
	q.Schedule(3, c)

	want := []string{"b", "c", "a"}
	for i, name := range want {
		ev := q.PopEarliest()
		if ev == nil {
			t.Fatalf("pop %d: queue empty, want %s", i, name)
		}
		if ev.Process.Name() != name {
			t.Errorf("pop %d: got %s, want %s", i, ev.Process.Name(), name)
		}
	}
}

func TestEventQueue_EqualTimesResolveInScheduleOrder(t *testing.T) {
	// GIVEN four events at the same timestamp
	q := NewEventQueue()
	names := []string{"first", "second", "third", "fourth"}
	for _, n := range names {
		q.Schedule(7, &scriptedProcess{name: n})
	}

	// THEN they pop in schedule order, not heap-internal order
	for i, want := range names {
		ev := q.PopEarliest()
		if ev.Process.Name() != want {
			t.Errorf("pop %d: got %s, want %s", i, ev.Process.Name(), want)
		}
	}
}

func TestEventQueue_SequenceNumbersAreMonotonic(t *testing.T) {
	q := NewEventQueue()
	s1 := q.Schedule(9, &scriptedProcess{name: "x"})
	s2 := q.Schedule(2, &scriptedProcess{name: "y"})
	s3 := q.Schedule(4, &scriptedProcess{name: "z"})
	if !(s1 < s2 && s2 < s3) {
		t.Errorf("sequence numbers not monotonic: %d, %d, %d", s1, s2, s3)
	}
}

func TestEventQueue_EmptyQueueSignalsIdle(t *testing.T) {
	q := NewEventQueue()
	if ev := q.PopEarliest(); ev != nil {
		t.Errorf("PopEarliest on empty queue: got %v, want nil", ev)
	}
	if ev := q.Peek(); ev != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", ev)
	}
}

func TestEventQueue_PeekDoesNotRemove(t *testing.T) {
	q := NewEventQueue()
	q.Schedule(1, &scriptedProcess{name: "only"})

	if q.Peek() == nil || q.Len() != 1 {
		t.Fatal("Peek removed the event")
	}
	if q.PopEarliest() == nil || q.Len() != 0 {
		t.Fatal("PopEarliest did not remove the event")
	}
}
