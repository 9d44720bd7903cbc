package server

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
)

type uploadResponse struct {
	Message        string                    `json:"message"`
	TotalFootprint float64                   `json:"totalCarbonFootprint"`
	DocumentCount  int                       `json:"analyzedFiles"`
	Documents      []pipeline.DocumentResult `json:"processedFiles"`
	SubmissionID   string                    `json:"submissionId,omitempty"`
}

// handleUpload accepts one multipart zip under the "file" field,
// analyzes it and returns the aggregate. The estimator credential is
// checked before any bytes are read so a misconfigured deployment
// fails fast and identically for every request.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Estimator.APIKey == "" {
		writeError(w, common.NewAppError("CONFIG_ERROR", "OpenAI API key not configured", common.ErrConfigMissing))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "Please upload a ZIP file", common.ErrUnsupportedFileType))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "reading upload", common.ErrInvalidInput))
		return
	}

	agg, err := s.analyzer.Analyze(r.Context(), header.Filename, data)
	if err != nil {
		s.logger.Warn("analysis failed",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		writeError(w, err)
		return
	}

	resp := uploadResponse{
		Message:        "Upload successful",
		TotalFootprint: agg.TotalFootprint,
		DocumentCount:  agg.DocumentCount,
		Documents:      agg.Documents,
	}

	if s.submissions != nil {
		sub, err := s.submissions.CreateWithDocuments(r.Context(), header.Filename, len(data), agg)
		if err != nil {
			// Persistence is bookkeeping; the aggregate stands.
			s.logger.Warn("persisting submission failed",
				zap.String("filename", header.Filename),
				zap.Error(err),
			)
		} else {
			resp.SubmissionID = sub.ID.String()
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
