package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/your-org/remember/internal/models"
)

const (
	SketchesStreamName      = "SKETCHES"
	SketchesSubjectBase     = "sketches"
	SketchEventsStreamName  = "SKETCH_EVENTS"
	SketchEventsSubjectBase = "sketch_events"
)

func connect(natsURL string) (*nats.Conn, jetstream.JetStream, error) {
	nc, err := nats.Connect(natsURL,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to nats: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, nil, fmt.Errorf("create jetstream context: %w", err)
	}
	return nc, js, nil
}

type Producer struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewProducer(natsURL string) (*Producer, error) {
	nc, js, err := connect(natsURL)
	if err != nil {
		return nil, err
	}
	return &Producer{nc: nc, js: js}, nil
}

func streamConfigs() []jetstream.StreamConfig {
	return []jetstream.StreamConfig{
		{
			Name:        SketchesStreamName,
			Subjects:    []string{SketchesSubjectBase + ".>"},
			Retention:   jetstream.WorkQueuePolicy,
			MaxAge:      time.Hour,
			MaxMsgs:     100000,
			Storage:     jetstream.FileStorage,
			Discard:     jetstream.DiscardOld,
			Duplicates:  30 * time.Second,
			Description: "Sketch tasks for workers",
		},
		{
			Name:        SketchEventsStreamName,
			Subjects:    []string{SketchEventsSubjectBase + ".>"},
			Retention:   jetstream.InterestPolicy,
			MaxAge:      24 * time.Hour,
			MaxMsgs:     1000000,
			Storage:     jetstream.FileStorage,
			Description: "Finished sketch results",
		},
	}
}

// EnsureStreams creates JetStream streams if they don't exist.
// Retries up to 30 times (1s apart) to handle NATS startup delay.
func (p *Producer) EnsureStreams(ctx context.Context) error {
	streams := streamConfigs()

	const maxAttempts = 30
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		allOK := true
		for _, cfg := range streams {
			opCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			_, err := p.js.CreateOrUpdateStream(opCtx, cfg)
			cancel()
			if err != nil {
				allOK = false
				if attempt == maxAttempts {
					return fmt.Errorf("create stream %s: %w (after %d attempts)", cfg.Name, err, maxAttempts)
				}
				slog.Warn("ensure nats stream, retrying", "name", cfg.Name, "attempt", attempt, "error", err)
				break
			}
			slog.Info("ensured nats stream", "name", cfg.Name)
		}
		if allOK {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(1 * time.Second):
		}
	}
	return nil
}

func taskSubject(t models.SketchTask) string {
	return fmt.Sprintf("%s.%s", SketchesSubjectBase, t.PersonID)
}

func eventSubject(e models.SketchEvent) string {
	return fmt.Sprintf("%s.%s", SketchEventsSubjectBase, e.PersonID)
}

// taskMsgID dedupes repeated requests for the same person and variant
// within the stream's duplicate window.
func taskMsgID(t models.SketchTask) string {
	return fmt.Sprintf("%s-%d-%s-%s", t.PersonID, t.Variant, t.Style, t.Illustration)
}

func (p *Producer) PublishSketchTask(ctx context.Context, task models.SketchTask) error {
	if task.RequestedAt.IsZero() {
		task.RequestedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal sketch task: %w", err)
	}

	_, err = p.js.Publish(ctx, taskSubject(task), payload, jetstream.WithMsgID(taskMsgID(task)))
	if err != nil {
		return fmt.Errorf("publish sketch task: %w", err)
	}
	return nil
}

func (p *Producer) PublishSketchEvent(ctx context.Context, event models.SketchEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal sketch event: %w", err)
	}

	_, err = p.js.Publish(ctx, eventSubject(event), payload)
	if err != nil {
		return fmt.Errorf("publish sketch event: %w", err)
	}
	return nil
}

// QueueDepth returns the number of pending messages in the SKETCHES stream.
func (p *Producer) QueueDepth(ctx context.Context) (uint64, error) {
	stream, err := p.js.Stream(ctx, SketchesStreamName)
	if err != nil {
		return 0, err
	}
	info, err := stream.Info(ctx)
	if err != nil {
		return 0, err
	}
	return info.State.Msgs, nil
}

func (p *Producer) Ping() error {
	if !p.nc.IsConnected() {
		return fmt.Errorf("nats not connected")
	}
	return nil
}

func (p *Producer) Close() {
	p.nc.Close()
}
