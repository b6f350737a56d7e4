package engine

import (
	"strings"
	"time"

	"github.com/abhisek/adaptutor/internal/cognitive"
	"github.com/abhisek/adaptutor/internal/indicator"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/learnstyle"
	"github.com/abhisek/adaptutor/internal/transcript"
)

// DetailedLength is the message length, in characters, above which a
// reply counts as a detailed response.
const DetailedLength = 120

// switchPhrases mark a learner moving to a different task.
var switchPhrases = indicator.Keywords{
	"different topic", "something else", "switch to", "change topic",
	"let's move on", "lets move on", "new question", "another topic",
}

// Classifier infers the interaction type of a learner message.
type Classifier struct {
	help  indicator.Scorer
	err   indicator.Scorer
	shift indicator.Scorer
}

// NewClassifier builds a classifier on the cognitive analyzer's indicators
// so recorded events and analysis agree on what counts as help or error.
func NewClassifier(ind cognitive.Indicators) *Classifier {
	return &Classifier{help: ind.Help, err: ind.Error, shift: switchPhrases}
}

// Classify maps a learner message to an event type. Checks run in order:
// help, error correction, task switch, question, detailed, quick.
func (c *Classifier) Classify(text string) interaction.EventType {
	trimmed := strings.TrimSpace(text)
	switch {
	case indicator.Matches(c.help, trimmed):
		return interaction.EventHelpRequest
	case indicator.Matches(c.err, trimmed):
		return interaction.EventErrorCorrection
	case indicator.Matches(c.shift, trimmed):
		return interaction.EventTaskSwitch
	case strings.Contains(trimmed, "?"):
		return interaction.EventQuestion
	case len(trimmed) > DetailedLength:
		return interaction.EventDetailedResponse
	default:
		return interaction.EventQuickResponse
	}
}

// eventFor builds the event recorded for a learner message. Duration is the
// time since the previous tutor message when there was one.
func (c *Classifier) eventFor(msg transcript.Message, lastAssistant time.Time) interaction.Event {
	ev := interaction.Event{
		Type:      c.Classify(msg.Content),
		Timestamp: msg.Timestamp,
		Metadata:  map[string]string{"source": "message"},
	}
	if !lastAssistant.IsZero() && msg.Timestamp.After(lastAssistant) {
		ev.Duration = msg.Timestamp.Sub(lastAssistant)
	}
	return ev
}

// DeriveBehavior fills the interaction patterns of b that are unset from
// the transcript. Explicit values always win.
func DeriveBehavior(b learnstyle.BehaviorData, msgs []transcript.Message) learnstyle.BehaviorData {
	msgs = transcript.Clean(msgs)
	user := transcript.UserMessages(msgs)
	if len(user) == 0 {
		return b
	}
	p := &b.InteractionPatterns

	if p.QuestionAskingFrequency == 0 {
		q := 0
		for _, m := range user {
			if strings.Contains(m.Content, "?") {
				q++
			}
		}
		p.QuestionAskingFrequency = float64(q) / float64(len(user))
	}

	if p.MessageLengthPreference == "" {
		total := 0
		for _, m := range user {
			total += len(strings.TrimSpace(m.Content))
		}
		switch avg := total / len(user); {
		case avg > DetailedLength:
			p.MessageLengthPreference = "long"
		case avg > 40:
			p.MessageLengthPreference = "medium"
		default:
			p.MessageLengthPreference = "short"
		}
	}

	return b
}
