package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ordersv1 "github.com/sugarloafbakes/orderpipe/gen/orders/v1"
	"github.com/sugarloafbakes/orderpipe/internal/common"
	"github.com/sugarloafbakes/orderpipe/internal/export"
	"github.com/sugarloafbakes/orderpipe/internal/extract"
	"github.com/sugarloafbakes/orderpipe/internal/llm"
	"github.com/sugarloafbakes/orderpipe/internal/llm/gemini"
	"github.com/sugarloafbakes/orderpipe/internal/llm/openai"
	"github.com/sugarloafbakes/orderpipe/internal/pipeline"
	"github.com/sugarloafbakes/orderpipe/internal/repository"
	"github.com/sugarloafbakes/orderpipe/internal/server"
	"github.com/sugarloafbakes/orderpipe/internal/validate"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	webhooks := repository.NewWebhookRepository(entc, logger)
	orders := repository.NewOrderRepository(entc, logger)

	strategies, err := buildStrategies(ctx, cfg, logger)
	if err != nil {
		logger.Error("strategy wiring failed", "error", err)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(webhooks, orders, strategies, cfg.Processing.DefaultMethod, logger)
	exporter := export.NewService(orders, 0, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewOrdersService(processor, webhooks, exporter, logger)
	ordersv1.RegisterOrdersServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr, "default_method", cfg.Processing.DefaultMethod)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}

// buildStrategies wires the three extraction strategies. The deterministic
// strategy is always available; ai and hybrid require an LLM API key.
func buildStrategies(ctx context.Context, cfg *common.Config, logger *slog.Logger) ([]extract.Strategy, error) {
	validator := validate.New(validate.Config{})

	strategies := []extract.Strategy{
		extract.NewDeterministicStrategy(validator, logger),
	}
	if cfg.LLM.APIKey == "" {
		logger.Warn("no LLM API key, ai and hybrid extraction disabled")
		return strategies, nil
	}

	var completer llm.Completer
	switch cfg.LLM.Provider {
	case "gemini":
		client, err := gemini.NewClient(ctx, gemini.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		completer = client
	case "openai":
		completer = openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLM.Provider)
	}

	ai := extract.NewAIStrategy(completer, cfg.LLM.Model, validator, logger)
	strategies = append(strategies, ai, extract.NewHybridStrategy(ai, validator, logger))
	return strategies, nil
}
