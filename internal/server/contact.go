package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.contacts == nil {
		writeError(w, common.NewAppError("CONFIG_ERROR", "datastore not configured", common.ErrConfigMissing))
		return
	}

	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", common.ErrInvalidInput))
		return
	}

	if err := common.NewValidator().
		Field("name", req.Name, common.NotBlank, common.MaxLen(200)).
		Field("email", req.Email, common.NotBlank, common.LooksLikeEmail).
		Field("message", req.Message, common.NotBlank, common.MaxLen(5000)).
		Error(); err != nil {
		writeError(w, err)
		return
	}

	msg, err := s.contacts.Create(r.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		s.logger.Warn("storing contact message failed", zap.Error(err))
		writeError(w, common.WrapError(err, "storing message"))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"id": msg.ID.String()})
}
