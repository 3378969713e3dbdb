package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/your-org/remember/internal/api"
	"github.com/your-org/remember/internal/api/handlers"
	"github.com/your-org/remember/internal/api/ws"
	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/observability"
	"github.com/your-org/remember/internal/queue"
	"github.com/your-org/remember/internal/sketch"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting Remember API service", "port", cfg.Server.Port, "async_sketches", cfg.NATS.Async)

	if err := storage.RunMigrations(cfg.Database.DSN()); err != nil {
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

	sketches, aiClient, err := sketch.Setup(cfg, minioStore)
	if err != nil {
		slog.Error("set up sketches", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// WebSocket hub
	hub := ws.NewHub()
	go hub.Run()

	checks := map[string]handlers.Check{
		"postgres": db.Ping,
		"minio":    minioStore.Ping,
	}

	routerCfg := api.RouterConfig{
		APIKey:           cfg.Server.APIKey,
		Store:            db,
		Objects:          minioStore,
		Sketches:         sketches,
		Hub:              hub,
		Checks:           checks,
		ReviewQueueLimit: cfg.Review.QueueLimit,
		NearDueDays:      cfg.Review.NearDueDays,
		SearchThreshold:  cfg.Review.SearchThreshold,
		MaxUploadBytes:   int64(cfg.Server.MaxUploadMB) << 20,
	}
	if aiClient != nil && cfg.OpenAI.EditDescriptions {
		routerCfg.Describer = aiClient
	}

	if cfg.NATS.Async {
		producer, consumer := connectQueue(ctx, cfg.NATS.URL, hub)
		if producer != nil {
			defer producer.Close()
			routerCfg.Queue = producer
			checks["nats"] = func(context.Context) error { return producer.Ping() }
		}
		if consumer != nil {
			defer consumer.Close()
		}
	}

	router := api.NewRouter(routerCfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.OpenAI.Timeout + 30*time.Second,
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

// connectQueue sets up sketch task publishing and relays finished sketch
// events to WebSocket clients. A nil producer means sketches render inline.
func connectQueue(ctx context.Context, natsURL string, hub *ws.Hub) (*queue.Producer, *queue.Consumer) {
	producer, err := queue.NewProducer(natsURL)
	if err != nil {
		slog.Warn("connect to nats, rendering sketches inline", "error", err)
		return nil, nil
	}
	if err := producer.EnsureStreams(ctx); err != nil {
		slog.Warn("ensure nats streams", "error", err)
	}

	consumer, err := queue.NewConsumer(natsURL)
	if err != nil {
		slog.Warn("create event consumer", "error", err)
		return producer, nil
	}

	err = consumer.ConsumeSketchEvents(ctx, "api-sketch-events", func(ctx context.Context, event models.SketchEvent) error {
		evtType := dto.WSSketchReady
		if event.Error != "" {
			evtType = dto.WSSketchFailed
		}
		hub.BroadcastEvent(&dto.WSEvent{Type: evtType, PersonID: event.PersonID, Data: event})
		return nil
	})
	if err != nil {
		slog.Warn("start event consumer", "error", err)
	}
	return producer, consumer
}
