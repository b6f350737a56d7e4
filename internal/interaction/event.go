package interaction

import "time"

// EventType classifies a single learner action.
type EventType string

const (
	EventQuestion         EventType = "question"
	EventDetailedResponse EventType = "detailed_response"
	EventQuickResponse    EventType = "quick_response"
	EventHelpRequest      EventType = "help_request"
	EventTaskSwitch       EventType = "task_switch"
	EventErrorCorrection  EventType = "error_correction"
)

// AllEventTypes returns every recognized event type in declaration order.
func AllEventTypes() []EventType {
	return []EventType{
		EventQuestion,
		EventDetailedResponse,
		EventQuickResponse,
		EventHelpRequest,
		EventTaskSwitch,
		EventErrorCorrection,
	}
}

// Valid reports whether t is one of the recognized event types.
func (t EventType) Valid() bool {
	for _, known := range AllEventTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Event is a single timestamped learner action used as a behavioural signal.
type Event struct {
	Type      EventType         `json:"type" yaml:"type"`
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Duration  time.Duration     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}
