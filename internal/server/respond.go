package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Qyuzet/onecarbon/internal/common"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the failure taxonomy to a status and a client-facing
// message. The AppError message is safe to expose; the cause is not.
func writeError(w http.ResponseWriter, err error) {
	status := common.HTTPStatus(err)
	resp := errorResponse{Error: http.StatusText(status)}
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		resp.Error = appErr.Message
	}
	writeJSON(w, status, resp)
}
