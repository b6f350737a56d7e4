package interaction

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestLog_RecordStampsZeroTimestamp(t *testing.T) {
	l := newLogWithClock(func() time.Time { return base })
	l.Record(Event{Type: EventQuestion})

	got := l.Events()
	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if !got[0].Timestamp.Equal(base) {
		t.Errorf("timestamp = %v, want %v", got[0].Timestamp, base)
	}
}

func TestLog_RecordClampsOutOfOrder(t *testing.T) {
	l := NewLog()
	l.Record(Event{Type: EventQuestion, Timestamp: base.Add(time.Minute)})
	l.Record(Event{Type: EventHelpRequest, Timestamp: base})

	got := l.Events()
	if !got[1].Timestamp.Equal(got[0].Timestamp) {
		t.Errorf("second timestamp = %v, want clamped to %v", got[1].Timestamp, got[0].Timestamp)
	}
}

func TestLog_Truncation(t *testing.T) {
	l := NewLog()
	for i := 0; i < MaxEvents; i++ {
		l.Record(Event{Type: EventQuickResponse, Timestamp: base.Add(time.Duration(i) * time.Second)})
	}
	if l.Len() != MaxEvents {
		t.Fatalf("len = %d at capacity, want %d", l.Len(), MaxEvents)
	}

	// One more tips it over the limit.
	last := base.Add(time.Duration(MaxEvents) * time.Second)
	l.Record(Event{Type: EventQuestion, Timestamp: last})

	if l.Len() != RetainedEvents {
		t.Fatalf("len = %d after truncation, want %d", l.Len(), RetainedEvents)
	}
	events := l.Events()
	if events[len(events)-1].Type != EventQuestion {
		t.Errorf("newest event type = %q, want question", events[len(events)-1].Type)
	}
	first, _ := l.First()
	wantFirst := base.Add(time.Duration(MaxEvents+1-RetainedEvents) * time.Second)
	if !first.Timestamp.Equal(wantFirst) {
		t.Errorf("oldest retained = %v, want %v", first.Timestamp, wantFirst)
	}
}

func TestLog_SinceAndLast(t *testing.T) {
	l := NewLog()
	for i := 0; i < 10; i++ {
		l.Record(Event{Type: EventQuestion, Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}

	tests := []struct {
		name  string
		since time.Time
		want  int
	}{
		{"before all", base.Add(-time.Hour), 10},
		{"inclusive boundary", base.Add(5 * time.Minute), 5},
		{"after all", base.Add(time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(l.Since(tt.since)); got != tt.want {
				t.Errorf("Since() returned %d events, want %d", got, tt.want)
			}
		})
	}

	if got := len(l.Last(3)); got != 3 {
		t.Errorf("Last(3) returned %d, want 3", got)
	}
	if got := len(l.Last(50)); got != 10 {
		t.Errorf("Last(50) returned %d, want 10", got)
	}
	if got := l.Last(0); got != nil {
		t.Errorf("Last(0) = %v, want nil", got)
	}
}

func TestLog_EventsIsCopy(t *testing.T) {
	l := NewLog()
	l.Record(Event{Type: EventQuestion, Timestamp: base})

	events := l.Events()
	events[0].Type = EventTaskSwitch

	if l.Events()[0].Type != EventQuestion {
		t.Error("mutating Events() result changed the log")
	}
}

func TestEventType_Valid(t *testing.T) {
	for _, et := range AllEventTypes() {
		if !et.Valid() {
			t.Errorf("%q should be valid", et)
		}
	}
	if EventType("nap").Valid() {
		t.Error("unknown type reported valid")
	}
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r := NewRegistry()
	a := r.Open("a")
	b := r.Open("b")

	a.Record(Event{Type: EventQuestion, Timestamp: base})

	if a.Log.Len() != 1 {
		t.Errorf("session a len = %d, want 1", a.Log.Len())
	}
	if b.Log.Len() != 0 {
		t.Errorf("session b len = %d, want 0", b.Log.Len())
	}
	if r.Open("a") != a {
		t.Error("Open should return the existing session")
	}
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry()
	r.Open("x")
	r.Close("x")
	r.Close("missing")

	if _, ok := r.Get("x"); ok {
		t.Error("session still present after Close")
	}
	if r.Len() != 0 {
		t.Errorf("len = %d, want 0", r.Len())
	}
}

func TestRegistry_ConcurrentLearners(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			s := r.Open(id)
			for j := 0; j < 50; j++ {
				s.Record(Event{Type: EventQuickResponse, Timestamp: base.Add(time.Duration(j) * time.Second)})
			}
		}(fmt.Sprintf("learner-%d", i))
	}
	wg.Wait()

	if r.Len() != 16 {
		t.Fatalf("len = %d, want 16", r.Len())
	}
	for _, id := range r.IDs() {
		s, _ := r.Get(id)
		if s.Log.Len() != 50 {
			t.Errorf("%s has %d events, want 50", id, s.Log.Len())
		}
	}
}

func TestRegistryWithClock(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r := NewRegistryWithClock(func() time.Time { return t0 })

	s := r.Open("learner")
	if !s.StartedAt.Equal(t0) {
		t.Errorf("StartedAt = %v, want %v", s.StartedAt, t0)
	}
	s.Record(Event{Type: EventQuestion})
	if first, _ := s.Log.First(); !first.Timestamp.Equal(t0) {
		t.Errorf("event stamped %v, want %v", first.Timestamp, t0)
	}
}
