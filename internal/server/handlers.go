package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/adaptutor/internal/engine"
	"github.com/abhisek/adaptutor/internal/interaction"
	"github.com/abhisek/adaptutor/internal/store"
	"github.com/abhisek/adaptutor/internal/transcript"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type templateSummary struct {
	ID          string   `json:"id"`
	Mode        string   `json:"mode"`
	Subject     string   `json:"subject"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

func (s *Server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	var out []templateSummary
	for _, t := range s.engine.Composer().Store().Templates() {
		out = append(out, templateSummary{
			ID:          t.ID,
			Mode:        t.Mode,
			Subject:     t.Subject,
			Description: t.Metadata.Description,
			Tags:        t.Metadata.Tags,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"sessions": s.engine.Sessions()})
}

type openSessionRequest struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req openSessionRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := s.engine.Open(req.SessionID)
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Close(chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordEvent(w http.ResponseWriter, r *http.Request) {
	var ev interaction.Event
	if err := decode(r, &ev); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if !ev.Type.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown event type %q", ev.Type))
		return
	}
	if err := s.engine.Record(chi.URLParam(r, "id"), ev); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRecordMessage(w http.ResponseWriter, r *http.Request) {
	var msg transcript.Message
	if err := decode(r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	id := chi.URLParam(r, "id")
	if !s.engine.Has(id) {
		writeError(w, http.StatusNotFound, engine.ErrUnknownSession)
		return
	}
	ev, err := s.engine.RecordMessage(id, msg)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if msg.Role == transcript.RoleAssistant {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"event": ev})
}

// processTurn decodes an optional turn body and runs it against the
// session named in the path.
func (s *Server) processTurn(w http.ResponseWriter, r *http.Request) (*engine.Result, bool) {
	var turn engine.Turn
	if err := decodeOptional(r, &turn); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	turn.SessionID = chi.URLParam(r, "id")
	if !s.engine.Has(turn.SessionID) {
		writeError(w, http.StatusNotFound, engine.ErrUnknownSession)
		return nil, false
	}
	res, err := s.engine.Process(r.Context(), turn)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}
	return res, true
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if res, ok := s.processTurn(w, r); ok {
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handlePrompt(w http.ResponseWriter, r *http.Request) {
	res, ok := s.processTurn(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"session_id":  res.SessionID,
		"template_id": res.TemplateID,
		"prompt":      res.Prompt,
	})
}

type tutorRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleTutor(w http.ResponseWriter, r *http.Request) {
	if !s.engine.HasProvider() {
		writeError(w, http.StatusServiceUnavailable, engine.ErrNoProvider)
		return
	}
	var req tutorRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, errors.New("message is required"))
		return
	}
	id := chi.URLParam(r, "id")
	if !s.engine.Has(id) {
		writeError(w, http.StatusNotFound, engine.ErrUnknownSession)
		return
	}
	reply, err := s.engine.Tutor(r.Context(), id, req.Message)
	if err != nil {
		s.logger.Warn("tutor reply failed", zap.String("session_id", id), zap.Error(err))
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New("history is not available without a database"))
		return
	}
	opts := store.QueryOpts{SessionID: chi.URLParam(r, "id"), Limit: 50}
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", v))
			return
		}
		opts.Limit = n
	}
	if v := q.Get("since"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid since %q: %w", v, err))
			return
		}
		opts.From = t
	}

	records, err := s.history.QueryAnalyses(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if records == nil {
		records = []store.AnalysisRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

// fail maps engine errors to status codes and logs internal failures.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, engine.ErrUnknownSession) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	s.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeError(w, http.StatusInternalServerError, err)
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// decodeOptional is decode that accepts an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := decode(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
