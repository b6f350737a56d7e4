// Code generated by ent, DO NOT EDIT.

package analysisevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the analysisevent type in the database.
	Label = "analysis_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLoadLevel holds the string denoting the load_level field in the database.
	FieldLoadLevel = "load_level"
	// FieldLearningState holds the string denoting the learning_state field in the database.
	FieldLearningState = "learning_state"
	// FieldLoadScore holds the string denoting the load_score field in the database.
	FieldLoadScore = "load_score"
	// FieldLoadConfidence holds the string denoting the load_confidence field in the database.
	FieldLoadConfidence = "load_confidence"
	// FieldDetectedStyle holds the string denoting the detected_style field in the database.
	FieldDetectedStyle = "detected_style"
	// FieldStyleConfidence holds the string denoting the style_confidence field in the database.
	FieldStyleConfidence = "style_confidence"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldPrompt holds the string denoting the prompt field in the database.
	FieldPrompt = "prompt"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// Table holds the table name of the analysisevent in the database.
	Table = "analysis_events"
)

// Columns holds all SQL columns for analysisevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldLoadLevel,
	FieldLearningState,
	FieldLoadScore,
	FieldLoadConfidence,
	FieldDetectedStyle,
	FieldStyleConfidence,
	FieldMode,
	FieldSubject,
	FieldPrompt,
	FieldPayload,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultPrompt holds the default value on creation for the "prompt" field.
	DefaultPrompt string
	// DefaultPayload holds the default value on creation for the "payload" field.
	DefaultPayload string
)

// OrderOption defines the ordering options for the AnalysisEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLoadLevel orders the results by the load_level field.
func ByLoadLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadLevel, opts...).ToFunc()
}

// ByLearningState orders the results by the learning_state field.
func ByLearningState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningState, opts...).ToFunc()
}

// ByLoadScore orders the results by the load_score field.
func ByLoadScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadScore, opts...).ToFunc()
}

// ByLoadConfidence orders the results by the load_confidence field.
func ByLoadConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoadConfidence, opts...).ToFunc()
}

// ByDetectedStyle orders the results by the detected_style field.
func ByDetectedStyle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedStyle, opts...).ToFunc()
}

// ByStyleConfidence orders the results by the style_confidence field.
func ByStyleConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStyleConfidence, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByPrompt orders the results by the prompt field.
func ByPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrompt, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}
