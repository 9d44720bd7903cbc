package server

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
)

// handleExport streams an XLSX report of analyzed documents. Optional
// from/to query params are dates (2006-01-02); to is inclusive.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		writeError(w, common.NewAppError("CONFIG_ERROR", "datastore not configured", common.ErrConfigMissing))
		return
	}

	parseDate := func(key string) (*time.Time, error) {
		v := r.URL.Query().Get(key)
		if v == "" {
			return nil, nil
		}
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, common.NewAppError("INVALID_INPUT", fmt.Sprintf("invalid %s date %q", key, v), common.ErrInvalidInput)
		}
		return &t, nil
	}

	from, err := parseDate("from")
	if err != nil {
		writeError(w, err)
		return
	}
	to, err := parseDate("to")
	if err != nil {
		writeError(w, err)
		return
	}

	data, err := s.exporter.ExportDocumentsXLSX(r.Context(), from, to)
	if err != nil {
		s.logger.Warn("export failed", zap.Error(err))
		writeError(w, common.WrapError(err, "building export"))
		return
	}

	filename := fmt.Sprintf("carbon-documents-%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
