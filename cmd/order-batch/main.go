package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/sugarloafbakes/orderpipe/constants"
	"github.com/sugarloafbakes/orderpipe/gen/ent"
	"github.com/sugarloafbakes/orderpipe/internal/common"
	"github.com/sugarloafbakes/orderpipe/internal/export"
	"github.com/sugarloafbakes/orderpipe/internal/extract"
	"github.com/sugarloafbakes/orderpipe/internal/llm/openai"
	"github.com/sugarloafbakes/orderpipe/internal/pipeline"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem     = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir       = flag.String("dir", "", "directory of webhook JSON files to ingest (optional)")
		shop      = flag.String("shop", "", "shop domain to process (required with --dir)")
		methodStr = flag.String("method", "", "extraction method: deterministic, ai or hybrid")
		limit     = flag.Int("limit", 0, "max records to process per shop (0 uses BATCH_LIMIT)")
		out       = flag.String("out", "", "output XLSX path for the production report (optional)")
		buffer    = flag.Int("buffer", 10, "safety buffer percent added to bake quantities")
	)
	flag.Parse()

	if *dir != "" && *shop == "" {
		printError("Error: --shop is required when --dir is set\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()

	ctx := context.Background()

	client, cleanup, err := openDatabase(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	webhooks := repository.NewWebhookRepository(client, logger)
	orders := repository.NewOrderRepository(client, logger)

	// Deterministic is always wired; the AI pair only when a key exists.
	validator := validate.New(validate.Config{})
	strategies := []extract.Strategy{extract.NewDeterministicStrategy(validator, logger)}
	if cfg.LLM.APIKey != "" {
		ai := extract.NewAIStrategy(openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger), cfg.LLM.Model, validator, logger)
		strategies = append(strategies, ai, extract.NewHybridStrategy(ai, validator, logger))
	}

	method := constants.ParseMethod(*methodStr, cfg.Processing.DefaultMethod)
	if cfg.LLM.APIKey == "" && method != constants.MethodDeterministic {
		logger.Warn("no LLM API key, falling back to deterministic extraction", "requested", method)
		method = constants.MethodDeterministic
	}

	processor := pipeline.NewProcessor(webhooks, orders, strategies, method, logger)

	if *dir != "" {
		n, err := ingestDir(ctx, webhooks, *shop, *dir, logger)
		if err != nil {
			logger.Error("ingest failed", "dir", *dir, "error", err)
			os.Exit(1)
		}
		logger.Info("ingested webhook files", "count", n, "shop", *shop)
	}

	batchLimit := *limit
	if batchLimit <= 0 {
		batchLimit = cfg.Processing.BatchLimit
	}
	res, err := processor.ProcessBatch(ctx, *shop, batchLimit, method)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete",
		"processed", res.Processed,
		"failed", res.Failed,
		"skipped", res.Skipped,
		"orders", len(res.Orders),
	)

	if *out != "" {
		exporter := export.NewService(orders, *buffer, logger)
		xlsx, err := exporter.ProductionReportXLSX(ctx, *shop, nil, nil)
		if err != nil {
			logger.Error("report failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
			logger.Error("write report failed", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("production report written", "path", *out)
	}
}

// openDatabase opens either an in-memory SQLite database (handy for local
// dry runs against fixture files) or the configured Postgres.
func openDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*ent.Client, func(), error) {
	if inmem {
		client, err := repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { repository.Close(client, nil, logger) }, nil
	}

	if cfg.Database.DSN == "" {
		return nil, nil, fmt.Errorf("DB_URL is required unless --inmem is set")
	}
	client, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() { repository.Close(client, pool, logger) }, nil
}

// ingestDir inserts every .json file under dir as one webhook record.
func ingestDir(ctx context.Context, webhooks repository.WebhookRepository, shop, dir string, logger *slog.Logger) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		payload, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return count, err
		}
		if _, err := webhooks.Insert(ctx, shop, payload, time.Now().UTC()); err != nil {
			logger.Error("insert failed", "file", e.Name(), "error", err)
			continue
		}
		count++
	}
	return count, nil
}
