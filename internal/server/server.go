// Package server exposes the analysis pipeline, ledger and export
// features over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/ledger"
)

type Server struct {
	cfg      *common.Config
	logger   *zap.Logger
	analyzer Analyzer

	// Optional collaborators. Nil disables the corresponding routes'
	// persistence side, never the analysis path itself.
	submissions SubmissionStore
	contacts    ContactStore
	exporter    Exporter
	ledger      ledger.Ledger
	recorder    *ledger.Recorder
}

func NewServer(cfg *common.Config, analyzer Analyzer, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{cfg: cfg, analyzer: analyzer, logger: logger}
}

func (s *Server) WithSubmissions(store SubmissionStore) *Server {
	s.submissions = store
	return s
}

func (s *Server) WithContacts(store ContactStore) *Server {
	s.contacts = store
	return s
}

func (s *Server) WithExporter(e Exporter) *Server {
	s.exporter = e
	return s
}

func (s *Server) WithLedger(l ledger.Ledger) *Server {
	s.ledger = l
	s.recorder = ledger.NewRecorder(l, nil)
	return s
}

// Routes builds the router. Upload size is capped before multipart
// parsing; everything under /api answers JSON.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/upload", s.handleUpload)
		r.Post("/contact", s.handleContact)
		r.Get("/export", s.handleExport)
		r.Route("/ledger", func(r chi.Router) {
			r.Post("/companies", s.handleRegisterCompany)
			r.Get("/companies/{name}", s.handleCompanyStatus)
			r.Post("/deposits", s.handleDeposits)
		})
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
