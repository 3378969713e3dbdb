package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/observability"
	"github.com/your-org/remember/internal/queue"
	"github.com/your-org/remember/internal/sketch"
	"github.com/your-org/remember/internal/storage"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("starting Remember sketch worker",
		"workers", cfg.Worker.Count,
		"cpu_cores", runtime.NumCPU(),
	)

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

	svc, _, err := sketch.Setup(cfg, minioStore)
	if err != nil {
		slog.Error("set up sketches", "error", err)
		os.Exit(1)
	}
	runner := sketch.NewRunner(svc, db)

	// Connect to NATS
	producer, err := queue.NewProducer(cfg.NATS.URL)
	if err != nil {
		slog.Error("connect to nats producer", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	if err := producer.EnsureStreams(context.Background()); err != nil {
		slog.Warn("ensure nats streams", "error", err)
	}

	consumer, err := queue.NewConsumer(cfg.NATS.URL)
	if err != nil {
		slog.Error("create consumer", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err = consumer.ConsumeSketchTasks(ctx, "sketch-workers", func(ctx context.Context, task models.SketchTask) error {
		event, err := runner.Run(ctx, task)
		if err != nil {
			if !permanent(err) {
				return fmt.Errorf("sketch person %s: %w", task.PersonID, err)
			}
			slog.Warn("sketch task dropped", "person_id", task.PersonID, "error", err)
			failed := sketch.FailureEvent(task, err)
			event = &failed
		}

		if err := producer.PublishSketchEvent(ctx, *event); err != nil {
			slog.Error("publish sketch event", "person_id", task.PersonID, "error", err)
		}
		return nil
	}, cfg.Worker.Count)
	if err != nil {
		slog.Error("start sketch consumer", "error", err)
		os.Exit(1)
	}

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		})
		addr := fmt.Sprintf(":%d", cfg.Worker.MetricsPort)
		slog.Info("worker metrics listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("metrics server error", "error", err)
		}
	}()

	// Periodically report queue depth
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				depth, err := producer.QueueDepth(ctx)
				if err == nil {
					observability.QueueDepth.Set(float64(depth))
				}
			}
		}
	}()

	// Wait for shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down worker...")
	cancel()
	time.Sleep(2 * time.Second)
	slog.Info("worker stopped")
}

// permanent reports errors that a redelivery cannot fix.
func permanent(err error) bool {
	return errors.Is(err, sketch.ErrInvalidStyle) ||
		errors.Is(err, storage.ErrNotFound) ||
		errors.Is(err, sketch.ErrGenerationFailed)
}
