// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/adaptutor/ent/analysisevent"
	"github.com/abhisek/adaptutor/ent/llmrequestevent"
	"github.com/abhisek/adaptutor/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescSessionID is the schema descriptor for session_id field.
	analysiseventDescSessionID := analysiseventFields[0].Descriptor()
	// analysisevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	analysisevent.SessionIDValidator = analysiseventDescSessionID.Validators[0].(func(string) error)
	// analysiseventDescMode is the schema descriptor for mode field.
	analysiseventDescMode := analysiseventFields[7].Descriptor()
	// analysisevent.DefaultMode holds the default value on creation for the mode field.
	analysisevent.DefaultMode = analysiseventDescMode.Default.(string)
	// analysiseventDescSubject is the schema descriptor for subject field.
	analysiseventDescSubject := analysiseventFields[8].Descriptor()
	// analysisevent.DefaultSubject holds the default value on creation for the subject field.
	analysisevent.DefaultSubject = analysiseventDescSubject.Default.(string)
	// analysiseventDescPrompt is the schema descriptor for prompt field.
	analysiseventDescPrompt := analysiseventFields[9].Descriptor()
	// analysisevent.DefaultPrompt holds the default value on creation for the prompt field.
	analysisevent.DefaultPrompt = analysiseventDescPrompt.Default.(string)
	// analysiseventDescPayload is the schema descriptor for payload field.
	analysiseventDescPayload := analysiseventFields[10].Descriptor()
	// analysisevent.DefaultPayload holds the default value on creation for the payload field.
	analysisevent.DefaultPayload = analysiseventDescPayload.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescSessionID is the schema descriptor for session_id field.
	llmrequesteventDescSessionID := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultSessionID holds the default value on creation for the session_id field.
	llmrequestevent.DefaultSessionID = llmrequesteventDescSessionID.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
