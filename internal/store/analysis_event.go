package store

import (
	"context"
	"fmt"

	"github.com/abhisek/adaptutor/ent"
	"github.com/abhisek/adaptutor/ent/analysisevent"
	"github.com/abhisek/adaptutor/ent/predicate"
)

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetLoadLevel(data.LoadLevel).
		SetLearningState(data.LearningState).
		SetLoadScore(data.LoadScore).
		SetLoadConfidence(data.LoadConfidence).
		SetDetectedStyle(data.DetectedStyle).
		SetStyleConfidence(data.StyleConfidence).
		SetMode(data.Mode).
		SetSubject(data.Subject).
		SetPrompt(data.Prompt).
		SetPayload(data.Payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisRecord, error) {
	var where []predicate.AnalysisEvent
	if opts.After > 0 {
		where = append(where, analysisevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		where = append(where, analysisevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		where = append(where, analysisevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		where = append(where, analysisevent.TimestampLTE(opts.To))
	}
	if opts.SessionID != "" {
		where = append(where, analysisevent.SessionID(opts.SessionID))
	}

	q := r.client.AnalysisEvent.Query().
		Where(where...).
		Order(ent.Desc(analysisevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}

	records := make([]AnalysisRecord, 0, len(events))
	for _, e := range events {
		records = append(records, AnalysisRecord{
			AnalysisEventData: AnalysisEventData{
				SessionID:       e.SessionID,
				LoadLevel:       e.LoadLevel,
				LearningState:   e.LearningState,
				LoadScore:       e.LoadScore,
				LoadConfidence:  e.LoadConfidence,
				DetectedStyle:   e.DetectedStyle,
				StyleConfidence: e.StyleConfidence,
				Mode:            e.Mode,
				Subject:         e.Subject,
				Prompt:          e.Prompt,
				Payload:         e.Payload,
			},
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		})
	}
	return records, nil
}
