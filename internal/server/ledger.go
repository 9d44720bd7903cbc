package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
)

type registerCompanyRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleRegisterCompany(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		writeError(w, common.NewAppError("LEDGER_DISABLED", "ledger backend not configured", common.ErrConfigMissing))
		return
	}

	var req registerCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", common.ErrInvalidInput))
		return
	}
	if err := common.NewValidator().Field("name", req.Name, common.NotBlank, common.MaxLen(200)).Error(); err != nil {
		writeError(w, err)
		return
	}

	created, err := s.ledger.Register(r.Context(), req.Name)
	if err != nil {
		s.logger.Warn("register company failed", zap.String("company", req.Name), zap.Error(err))
		writeError(w, common.NewAppError("LEDGER_ERROR", "registering company", common.ErrLedger))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]any{"name": req.Name, "created": created})
}

func (s *Server) handleCompanyStatus(w http.ResponseWriter, r *http.Request) {
	if s.ledger == nil {
		writeError(w, common.NewAppError("LEDGER_DISABLED", "ledger backend not configured", common.ErrConfigMissing))
		return
	}

	name := chi.URLParam(r, "name")
	registered, err := s.ledger.IsRegistered(r.Context(), name)
	if err != nil {
		writeError(w, common.NewAppError("LEDGER_ERROR", "checking registration", common.ErrLedger))
		return
	}

	var total int64
	if registered {
		if total, err = s.ledger.Total(r.Context(), name); err != nil {
			writeError(w, common.NewAppError("LEDGER_ERROR", "reading total", common.ErrLedger))
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":           name,
		"registered":     registered,
		"totalDeposited": total,
	})
}

type depositRequest struct {
	Company      string `json:"company"`
	SubmissionID string `json:"submissionId"`
}

// handleDeposits floors the stored per-document footprints of one
// submission and appends them for the company. The submission is
// marked RECORDED only after the ledger confirms.
func (s *Server) handleDeposits(w http.ResponseWriter, r *http.Request) {
	if s.recorder == nil {
		writeError(w, common.NewAppError("LEDGER_DISABLED", "ledger backend not configured", common.ErrConfigMissing))
		return
	}
	if s.submissions == nil {
		writeError(w, common.NewAppError("CONFIG_ERROR", "datastore not configured", common.ErrConfigMissing))
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", common.ErrInvalidInput))
		return
	}
	if err := common.NewValidator().
		Field("company", req.Company, common.NotBlank).
		Field("submissionId", req.SubmissionID, common.NotBlank).
		Error(); err != nil {
		writeError(w, err)
		return
	}
	subID, err := uuid.Parse(req.SubmissionID)
	if err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid submission id", common.ErrInvalidInput))
		return
	}

	ctx := common.WithCompany(r.Context(), req.Company)
	docs, err := s.submissions.ListDocuments(ctx, subID)
	if err != nil {
		writeError(w, common.NewAppError("NOT_FOUND", "submission not found", common.ErrNotFound))
		return
	}

	footprints := make([]float64, len(docs))
	for i, d := range docs {
		footprints[i] = d.Footprint
	}

	txID, err := s.recorder.Record(ctx, req.Company, footprints)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.submissions.MarkRecorded(ctx, subID); err != nil {
		s.logger.Warn("marking submission recorded failed",
			zap.String("submission_id", subID.String()),
			zap.Error(err),
		)
	}

	writeJSON(w, http.StatusOK, map[string]any{"transactionId": txID})
}
