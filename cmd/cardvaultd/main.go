package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	contactspb "github.com/cardvault/cardvault/gen/proto/contacts/v1"
	"github.com/cardvault/cardvault/internal/async"
	"github.com/cardvault/cardvault/internal/common"
	"github.com/cardvault/cardvault/internal/contacts"
	"github.com/cardvault/cardvault/internal/dedupe"
	"github.com/cardvault/cardvault/internal/export"
	"github.com/cardvault/cardvault/internal/extract"
	"github.com/cardvault/cardvault/internal/ingest"
	scan "github.com/cardvault/cardvault/internal/pipeline/scan"
	repo "github.com/cardvault/cardvault/internal/repository"
	svc "github.com/cardvault/cardvault/internal/server"
)

func main() {
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	fatal := zlog.Sugar()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fatal.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		fatal.Fatalf("open database: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		fatal.Fatalf("database health: %v", err)
	}

	if os.Getenv("DB_MIGRATE") == "1" {
		if err := entc.Schema.Create(ctx); err != nil {
			fatal.Fatalf("schema migrate: %v", err)
		}
		logger.Info("schema migrated")
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		fatal.Fatalf("listen on %s: %v", cfg.Server.GRPCAddr, err)
	}
	grpcServer := grpc.NewServer()

	contactRepo := repo.NewContactRepository(entc, logger)
	jobsRepo := repo.NewScanJobRepository(entc, logger)

	extractor := extract.NewExtractor(extract.DefaultConfig())
	matcher := dedupe.NewMatcher(matcherConfig(cfg.Matcher))
	pipeline := scan.NewPipeline(logger, jobsRepo, contactRepo, extractor, matcher)

	importer := contacts.NewImporter(logger, contactRepo, matcher)
	exporter := export.NewService(contactRepo, logger)

	contactsService := svc.NewContactsService(
		contactRepo, jobsRepo, pipeline, extractor, matcher, importer, exporter, logger)
	contactspb.RegisterContactsServiceServer(grpcServer, contactsService)

	queue := async.NewScanQueue(pipeline, logger,
		async.WithWorkers(cfg.Ingest.Workers),
		async.WithQueueSize(cfg.Ingest.QueueSize),
		async.WithProcessTimeout(time.Minute),
	)

	if cfg.Ingest.DropDir != "" {
		ownerID, err := uuid.Parse(os.Getenv("INGEST_OWNER_ID"))
		if err != nil {
			fatal.Fatalf("INGEST_OWNER_ID must be a UUID when INGEST_DROP_DIR is set: %v", err)
		}
		ingestor := ingest.NewIngestor(queue, logger)
		go func() {
			_, stats, err := ingestor.IngestDirectory(ctx, ownerID, cfg.Ingest.DropDir, true)
			if err != nil {
				logger.Error("drop dir ingest failed", "dir", cfg.Ingest.DropDir, "error", err)
				return
			}
			logger.Info("drop dir ingest done",
				"dir", cfg.Ingest.DropDir,
				"enqueued", stats.Enqueued,
				"skipped", stats.Skipped,
				"failed", stats.Failed,
			)
		}()
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("cardvaultd listening", "addr", cfg.Server.GRPCAddr, "driver", cfg.Database.Driver)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}

// matcherConfig applies env overrides on top of the tuned defaults.
func matcherConfig(mc common.MatcherConfig) dedupe.Config {
	cfg := dedupe.DefaultConfig()
	if mc.DuplicateThreshold > 0 {
		cfg.DuplicateThreshold = mc.DuplicateThreshold
	}
	if mc.NameThreshold > 0 {
		cfg.NameThreshold = mc.NameThreshold
	}
	if mc.CompanyThreshold > 0 {
		cfg.CompanyThreshold = mc.CompanyThreshold
	}
	return cfg
}
