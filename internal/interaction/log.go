package interaction

import "time"

const (
	// MaxEvents is the log length that triggers truncation.
	MaxEvents = 1000

	// RetainedEvents is how many of the most recent events survive truncation.
	RetainedEvents = 500
)

// Log is a bounded, time-ordered rolling record of one learner's events.
// A Log belongs to exactly one session and has a single writer, so it
// carries no lock.
type Log struct {
	events []Event
	now    func() time.Time
}

// NewLog creates an empty log using the wall clock for unset timestamps.
func NewLog() *Log {
	return &Log{now: time.Now}
}

// newLogWithClock creates a log with an injected clock (tests, replay).
func newLogWithClock(now func() time.Time) *Log {
	return &Log{now: now}
}

// Record appends an event. A zero timestamp is stamped with the current
// time; a timestamp earlier than the last entry is clamped forward so the
// log stays monotonically ordered.
func (l *Log) Record(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = l.now()
	}
	if n := len(l.events); n > 0 && e.Timestamp.Before(l.events[n-1].Timestamp) {
		e.Timestamp = l.events[n-1].Timestamp
	}

	l.events = append(l.events, e)

	if len(l.events) > MaxEvents {
		kept := make([]Event, RetainedEvents)
		copy(kept, l.events[len(l.events)-RetainedEvents:])
		l.events = kept
	}
}

// Len returns the number of events currently held.
func (l *Log) Len() int {
	return len(l.events)
}

// Events returns a copy of every event in order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Since returns the events at or after t.
func (l *Log) Since(t time.Time) []Event {
	// Events are ordered, so scan back from the end.
	i := len(l.events)
	for i > 0 && !l.events[i-1].Timestamp.Before(t) {
		i--
	}
	out := make([]Event, len(l.events)-i)
	copy(out, l.events[i:])
	return out
}

// Last returns up to n of the most recent events.
func (l *Log) Last(n int) []Event {
	if n <= 0 {
		return nil
	}
	if n > len(l.events) {
		n = len(l.events)
	}
	out := make([]Event, n)
	copy(out, l.events[len(l.events)-n:])
	return out
}

// First returns the oldest event still held.
func (l *Log) First() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[0], true
}
