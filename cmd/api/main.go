package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/stefanristic40/golden-eye-api/internal/api"
	"github.com/stefanristic40/golden-eye-api/internal/api/handlers"
	"github.com/stefanristic40/golden-eye-api/internal/api/ws"
	"github.com/stefanristic40/golden-eye-api/internal/config"
	"github.com/stefanristic40/golden-eye-api/internal/observability"
	"github.com/stefanristic40/golden-eye-api/internal/queue"
	"github.com/stefanristic40/golden-eye-api/internal/search"
	"github.com/stefanristic40/golden-eye-api/internal/storage"
	"github.com/stefanristic40/golden-eye-api/internal/storage/migrations"
	"github.com/stefanristic40/golden-eye-api/internal/vision"
	"github.com/stefanristic40/golden-eye-api/pkg/dto"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting golden-eye API service", "port", cfg.Server.Port)

	// Apply schema migrations before opening the pool
	if err := migrations.Run(context.Background(), cfg.Database.DSN()); err != nil {
		slog.Error("run migrations", "error", err)
		os.Exit(1)
	}

	// Connect to Postgres
	db, err := storage.NewPostgresStore(cfg.Database)
	if err != nil {
		slog.Error("connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to MinIO
	minioStore, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		slog.Error("connect to minio", "error", err)
		os.Exit(1)
	}
	if err := minioStore.EnsureBucket(context.Background()); err != nil {
		slog.Warn("ensure minio bucket", "error", err)
	}

	// Connect to NATS
	producer, err := queue.NewProducer(cfg.NATS.URL)
	if err != nil {
		slog.Error("connect to nats", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureStream(context.Background()); err != nil {
		slog.Warn("ensure nats stream", "error", err)
	}

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	// Consume record-created events and broadcast them to WebSocket clients
	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create record consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = consumer.ConsumeRecords(ctx, "api-records", func(ctx context.Context, msg jetstream.Msg) error {
		var event dto.RecordEvent
		if err := json.Unmarshal(msg.Data(), &event); err != nil {
			return err
		}

		hub.BroadcastEvent(&dto.WSEvent{
			Type: event.Kind + "_created",
			Data: event,
		})

		return nil
	})
	if err != nil {
		slog.Warn("start record consumer", "error", err)
	}

	// Initialize ONNX Runtime for face encoding (ingestion / face search)
	var encoder handlers.Encoder
	var searchEncoder search.Encoder

	ort.SetSharedLibraryPath(getONNXLibPath())
	if err := ort.InitializeEnvironment(); err != nil {
		slog.Warn("onnx runtime init failed — face search will be unavailable", "error", err)
	} else {
		pipeline, err := vision.NewPipeline(cfg.Vision)
		if err != nil {
			slog.Warn("vision pipeline init failed — face search will be unavailable", "error", err)
		} else {
			encoder = pipeline
			searchEncoder = pipeline
			defer pipeline.Close()
			defer ort.DestroyEnvironment()
			slog.Info("vision pipeline ready", "models_dir", cfg.Vision.ModelsDir)
		}
	}

	engine := search.NewEngine(db, minioStore, searchEncoder, cfg.Search.TopK)

	// Setup router
	router := api.NewRouter(api.RouterConfig{
		JWTSecret: cfg.Server.JWTSecret,
		TokenTTL:  cfg.Server.TokenTTL,
		Users:     db,
		Entries:   db,
		Profiles:  db,
		Images:    minioStore,
		Events:    producer,
		Checks: map[string]handlers.Pinger{
			"postgres": db,
			"minio":    minioStore,
			"nats":     producer,
		},
		Engine:  engine,
		Hub:     hub,
		Encoder: encoder,
	})

	// Start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("API server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down API server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("API server stopped")
}

// getONNXLibPath returns the ONNX Runtime shared library path.
func getONNXLibPath() string {
	switch runtime.GOOS {
	case "windows":
		return "onnxruntime.dll"
	case "linux":
		return "libonnxruntime.so"
	case "darwin":
		return "libonnxruntime.dylib"
	default:
		return "onnxruntime.dll"
	}
}
