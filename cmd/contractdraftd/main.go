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
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	contractspb "github.com/pcaldeira/contractdraft/gen/proto/contracts/v1"
	"github.com/pcaldeira/contractdraft/internal/classify"
	"github.com/pcaldeira/contractdraft/internal/common"
	"github.com/pcaldeira/contractdraft/internal/draft"
	"github.com/pcaldeira/contractdraft/internal/export"
	"github.com/pcaldeira/contractdraft/internal/extract"
	"github.com/pcaldeira/contractdraft/internal/ingest"
	"github.com/pcaldeira/contractdraft/internal/pipeline"
	"github.com/pcaldeira/contractdraft/internal/provider"
	"github.com/pcaldeira/contractdraft/internal/provider/mistral"
	"github.com/pcaldeira/contractdraft/internal/provider/openai"
	"github.com/pcaldeira/contractdraft/internal/raster"
	repo "github.com/pcaldeira/contractdraft/internal/repository"
	svc "github.com/pcaldeira/contractdraft/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
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

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	draftsRepo := repo.NewDraftRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)

	classifier := classify.NewClassifier(classify.Config{
		Pdftotext:          cfg.Classify.Pdftotext,
		TextProbeThreshold: cfg.Classify.TextProbeThreshold,
	}, logger)
	rasterizer := raster.NewRasterizer(raster.Config{
		Pdftoppm: cfg.Raster.Pdftoppm,
		DPI:      cfg.Raster.DPI,
		MaxPages: cfg.Raster.MaxPages,
	}, logger)

	// A provider without credentials stays nil: selection treats it as a
	// hard failure instead of silently retrying.
	var textProvider, visionProvider provider.Extractor
	if cfg.Providers.TextAPIKey != "" {
		textProvider = mistral.NewClient(mistral.Config{
			APIKey:  cfg.Providers.TextAPIKey,
			BaseURL: cfg.Providers.TextBaseURL,
			Model:   cfg.Providers.TextModel,
			Timeout: cfg.Providers.Timeout,
		}, logger)
	}
	if cfg.Providers.VisionAPIKey != "" {
		visionProvider = openai.NewClient(openai.Config{
			APIKey:  cfg.Providers.VisionAPIKey,
			BaseURL: cfg.Providers.VisionBaseURL,
			Model:   cfg.Providers.VisionModel,
			Timeout: cfg.Providers.Timeout,
		}, logger)
	}

	selector := extract.NewSelector(classifier, rasterizer, textProvider, visionProvider,
		extract.Config{MinFields: cfg.Pipeline.MinFields}, logger)

	accumulator := draft.NewAccumulator(logger)
	store := svc.NewDraftStore(accumulator, draftsRepo)

	processor := pipeline.NewProcessor(logger, selector, accumulator,
		docRecorder{documentsRepo}, store)
	queue := pipeline.NewProcessorQueue(processor, logger,
		pipeline.WithWorkers(cfg.Pipeline.Concurrency),
		pipeline.WithQueueSize(cfg.Pipeline.QueueSize),
		pipeline.WithJobTimeout(cfg.Pipeline.JobTimeout),
	)

	uploader := ingest.NewFSStore(cfg.Server.UploadDir, documentsRepo, logger)

	if len(cfg.Intake.Dirs) > 0 {
		startIntake(ctx, cfg, uploader, queue, logger)
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(requestIDInterceptor))

	renderer := export.NewService(logger)
	draftsService := svc.NewDraftsService(store, draftsRepo, renderer, logger)
	contractspb.RegisterDraftsServiceServer(grpcServer, draftsService)
	ingestionService := svc.NewIngestionService(uploader, store, queue, logger)
	contractspb.RegisterIngestionServiceServer(grpcServer, ingestionService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("contractdraft listening", "addr", cfg.Server.GRPCAddr)
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

// startIntake watches the intake roots and queues dropped files whose
// path encodes a draft binding.
func startIntake(ctx context.Context, cfg *common.Config, uploader ingest.Uploader, queue pipeline.Queue, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Intake.Dirs,
		InitialScan: cfg.Intake.InitialScan,
		Debounce:    cfg.Intake.Debounce,
	}, logger)
	if err != nil {
		logger.Error("intake watcher failed to start", "error", err)
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-errs:
				if !ok {
					return
				}
				logger.Error("intake watcher error", "error", err)
			case path, ok := <-events:
				if !ok {
					return
				}
				enqueueIntakeFile(ctx, cfg.Intake.Dirs, path, uploader, queue, logger)
			}
		}
	}()
}

func enqueueIntakeFile(ctx context.Context, roots []string, path string, uploader ingest.Uploader, queue pipeline.Queue, logger *slog.Logger) {
	var binding ingest.IntakeBinding
	var err error
	for _, root := range roots {
		if binding, err = ingest.ParseIntakePath(root, path); err == nil {
			break
		}
	}
	if err != nil {
		logger.Warn("ignoring intake file", "path", path, "error", err)
		return
	}

	res, err := uploader.IngestPath(ctx, binding.DraftID, binding.Partner, binding.Role, path)
	if err != nil {
		logger.Error("intake ingest failed", "path", path, "error", err)
		return
	}
	_ = queue.Enqueue(ctx, pipeline.Job{
		Document: pipeline.Document{
			DraftID:    binding.DraftID,
			DocumentID: res.DocumentID,
			Path:       res.StoredPath,
			Role:       binding.Role,
			Partner:    binding.Partner,
		},
		SubmittedAt: time.Now().UTC(),
		RequestID:   uuid.NewString(),
	})
}

// requestIDInterceptor stamps every call with a request ID so provider
// calls and queue logs correlate back to the originating RPC.
func requestIDInterceptor(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	return handler(common.WithRequestID(ctx, uuid.NewString()), req)
}

// docRecorder adapts the document repository to the pipeline's recorder.
type docRecorder struct {
	repo repo.DocumentRepository
}

func (r docRecorder) MarkProcessed(ctx context.Context, id uuid.UUID, class, providerName string, attempts int, procErr error) error {
	return r.repo.MarkProcessed(ctx, id, repo.ExtractionOutcome{
		Class:    class,
		Provider: providerName,
		Attempts: attempts,
		Err:      procErr,
	})
}
