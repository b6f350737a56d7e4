package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
// Results are returned newest first.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To

	SessionID string
	Purpose   string // LLM events only
}

// AnalysisEventData is the persisted summary of one engine turn.
type AnalysisEventData struct {
	SessionID       string
	LoadLevel       string
	LearningState   string
	LoadScore       int
	LoadConfidence  int
	DetectedStyle   string
	StyleConfidence float64
	Mode            string
	Subject         string
	Prompt          string

	// Payload is the full analysis as JSON.
	Payload string
}

// AnalysisRecord is a stored analysis event.
type AnalysisRecord struct {
	AnalysisEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	SessionID    string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMPurposeUsage aggregates token usage per purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// AnalysisWriter records engine analyses.
type AnalysisWriter interface {
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error
}

// LLMEventWriter records LLM API calls.
type LLMEventWriter interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}

// EventRepo provides append and query access to stored events.
type EventRepo interface {
	AnalysisWriter
	LLMEventWriter

	// QueryAnalyses returns analyses newest first.
	QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRecord, error)

	// QueryLLMEvents returns LLM events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
