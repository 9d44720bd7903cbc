// carbon-batch analyzes zip archives from disk and prints aggregate
// results as JSON. It runs on a single file, or watches a drop
// directory and processes archives as they arrive.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Qyuzet/onecarbon/internal/common"
	"github.com/Qyuzet/onecarbon/internal/extract"
	"github.com/Qyuzet/onecarbon/internal/llm"
	"github.com/Qyuzet/onecarbon/internal/llm/gemini"
	"github.com/Qyuzet/onecarbon/internal/llm/openai"
	"github.com/Qyuzet/onecarbon/internal/pipeline"
	"github.com/Qyuzet/onecarbon/internal/watch"
)

func main() {
	file := flag.String("file", "", "path to the zip archive to analyze")
	watchDir := flag.String("watch", "", "drop directory to watch for zip archives")
	provider := flag.String("provider", "", "estimator provider override (openai|gemini)")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	if *file == "" && *watchDir == "" {
		log.Fatal("one of -file or -watch is required")
	}

	_ = godotenv.Load()
	cfg, err := common.LoadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *provider != "" && *provider != cfg.Estimator.Provider {
		cfg.Estimator.Provider = *provider
		if *provider == "gemini" {
			cfg.Estimator.APIKey = os.Getenv("GEMINI_API_KEY")
			cfg.Estimator.Model = os.Getenv("GEMINI_MODEL")
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	slogger := slog.Default()
	extractor := extract.NewExtractor(extract.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		Timeout:   cfg.Extract.Timeout,
	}, slogger)
	estimator, err := buildEstimator(cfg, slogger)
	if err != nil {
		log.Fatalf("building estimator: %v", err)
	}
	analyzer := pipeline.NewAnalyzer(extractor, estimator, slogger)

	if *watchDir != "" {
		watchLoop(log, slogger, analyzer, *watchDir)
		return
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("reading %s: %v", *file, err)
	}
	agg, err := analyzer.Analyze(context.Background(), filepath.Base(*file), data)
	if err != nil {
		log.Fatalf("analyzing %s: %v", *file, err)
	}
	printResult(log, agg)
}

func watchLoop(log *zap.SugaredLogger, slogger *slog.Logger, analyzer *pipeline.Analyzer, dir string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	paths, errs, err := watch.Start(ctx, watch.Config{
		Roots:       []string{dir},
		InitialScan: true,
		Debounce:    2 * time.Second,
	}, slogger)
	if err != nil {
		log.Fatalf("starting watcher on %s: %v", dir, err)
	}
	go func() {
		for werr := range errs {
			log.Warnf("watcher: %v", werr)
		}
	}()

	log.Infof("watching %s for zip archives", dir)
	proc := watch.NewProcessor(analyzer, slogger)
	stats, err := proc.Run(ctx, paths, func(r watch.Result) {
		if r.Err != nil {
			log.Warnf("%s: %v", r.Path, r.Err)
			return
		}
		printResult(log, r.Aggregate)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("watch run: %v", err)
	}
	log.Infof("processed %d archives (%d ok, %d failed)", stats.Processed, stats.Succeeded, stats.Failed)
}

func printResult(log *zap.SugaredLogger, agg *pipeline.AggregateResult) {
	out, err := json.MarshalIndent(agg, "", "  ")
	if err != nil {
		log.Fatalf("encoding result: %v", err)
	}
	fmt.Println(string(out))
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
