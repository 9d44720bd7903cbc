package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/export"
	"github.com/Qyuzet/onecarbon/internal/extract"
	"github.com/Qyuzet/onecarbon/internal/ledger"
	"github.com/Qyuzet/onecarbon/internal/llm"
	"github.com/Qyuzet/onecarbon/internal/llm/gemini"
	"github.com/Qyuzet/onecarbon/internal/llm/openai"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
	"github.com/Qyuzet/onecarbon/internal/repository"
	"github.com/Qyuzet/onecarbon/internal/server"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	// Env
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slogger := slog.Default()

	// Pipeline
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		Timeout:   cfg.Extract.Timeout,
	}, slogger)
	estimator, err := buildEstimator(cfg, slogger)
	if err != nil {
		log.Fatalf("building estimator: %v", err)
	}
	analyzer := pipeline.NewAnalyzer(extractor, estimator, slogger)

	srv := server.NewServer(cfg, analyzer, logger)

	// Datastore (optional)
	if cfg.Database.DSN != "" {
		entc, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, slogger)
		if err != nil {
			log.Fatalf("opening datastore: %v", err)
		}
		defer repository.Close(entc, pool, slogger)

		if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout); err != nil {
			log.Fatalf("datastore health failed: %v", err)
		}
		log.Infow("datastore health OK")

		subs := repository.NewSubmissionRepository(entc, slogger)
		srv.WithSubmissions(subs).
			WithContacts(repository.NewContactRepository(entc, slogger)).
			WithExporter(export.NewService(subs, slogger))

		if cfg.Ledger.Backend == "db" {
			srv.WithLedger(ledger.NewEntLedger(entc, slogger))
		}
	}

	switch cfg.Ledger.Backend {
	case "", "db":
	case "chain":
		// The chain ledger needs an injected wallet; none ships with
		// this binary yet.
		log.Fatalf("ledger backend %q is not available in this build", cfg.Ledger.Backend)
	default:
		log.Fatalf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
	if cfg.Ledger.Backend == "db" && cfg.Database.DSN == "" {
		log.Fatal("LEDGER_BACKEND=db requires DB_URL")
	}

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Routes(),
	}

	go func() {
		log.Infof("HTTP serving on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	log.Info("stopped.")
}

func buildEstimator(cfg *common.Config, logger *slog.Logger) (llm.Estimator, error) {
	switch cfg.Estimator.Provider {
	case "openai", "":
		return openai.NewClient(openai.Config{
			APIKey:       cfg.Estimator.APIKey,
			BaseURL:      cfg.Estimator.BaseURL,
			Model:        cfg.Estimator.Model,
			Temperature:  cfg.Estimator.Temperature,
			Timeout:      cfg.Estimator.Timeout,
			MaxTextChars: cfg.Estimator.MaxTextChars,
		}, logger), nil
	case "gemini":
		return gemini.NewClient(gemini.Config{
			APIKey:       cfg.Estimator.APIKey,
			Model:        cfg.Estimator.Model,
			Temperature:  cfg.Estimator.Temperature,
			Timeout:      cfg.Estimator.Timeout,
			MaxTextChars: cfg.Estimator.MaxTextChars,
		}, logger), nil
	default:
		return nil, common.NewAppError("CONFIG_ERROR", "unknown estimator provider "+cfg.Estimator.Provider, common.ErrConfigMissing)
	}
}
