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

type TaskHandler func(ctx context.Context, task models.SketchTask) error

type EventHandler func(ctx context.Context, event models.SketchEvent) error

type Consumer struct {
	nc *nats.Conn
	js jetstream.JetStream
}

func NewConsumer(natsURL string) (*Consumer, error) {
	nc, js, err := connect(natsURL)
	if err != nil {
		return nil, err
	}
	return &Consumer{nc: nc, js: js}, nil
}

// ConsumeSketchTasks starts consuming the SKETCHES stream.
// workerCount determines how many goroutines process tasks concurrently.
// Malformed payloads are terminated so they are not redelivered.
func (c *Consumer) ConsumeSketchTasks(ctx context.Context, consumerName string, handler TaskHandler, workerCount int) error {
	if workerCount <= 0 {
		workerCount = 1
	}

	stream, err := c.js.Stream(ctx, SketchesStreamName)
	if err != nil {
		return fmt.Errorf("get stream %s: %w", SketchesStreamName, err)
	}

	cons, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Name:          consumerName,
		Durable:       consumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       2 * time.Minute,
		MaxDeliver:    3,
		FilterSubject: SketchesSubjectBase + ".>",
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", consumerName, err)
	}

	msgCh := make(chan jetstream.Msg, workerCount*2)

	go func() {
		defer close(msgCh)
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			batch, err := cons.Fetch(workerCount, jetstream.FetchMaxWait(5*time.Second))
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("fetch sketch tasks", "error", err)
				time.Sleep(time.Second)
				continue
			}

			for msg := range batch.Messages() {
				select {
				case msgCh <- msg:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	for i := 0; i < workerCount; i++ {
		go func(workerID int) {
			for msg := range msgCh {
				var task models.SketchTask
				if err := json.Unmarshal(msg.Data(), &task); err != nil {
					slog.Error("decode sketch task", "worker", workerID, "error", err, "subject", msg.Subject())
					_ = msg.Term()
					continue
				}
				if err := handler(ctx, task); err != nil {
					slog.Error("process sketch task", "worker", workerID, "error", err, "person_id", task.PersonID)
					_ = msg.Nak()
				} else {
					_ = msg.Ack()
				}
			}
		}(i)
	}

	slog.Info("sketch task consumer started", "consumer", consumerName, "workers", workerCount)
	return nil
}

// ConsumeSketchEvents starts consuming finished sketch events, for the API
// to broadcast over WebSocket.
func (c *Consumer) ConsumeSketchEvents(ctx context.Context, consumerName string, handler EventHandler) error {
	stream, err := c.js.Stream(ctx, SketchEventsStreamName)
	if err != nil {
		return fmt.Errorf("get stream %s: %w", SketchEventsStreamName, err)
	}

	cons, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Name:          consumerName,
		Durable:       consumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       10 * time.Second,
		MaxDeliver:    3,
		FilterSubject: SketchEventsSubjectBase + ".>",
		DeliverPolicy: jetstream.DeliverNewPolicy,
	})
	if err != nil {
		return fmt.Errorf("create consumer %s: %w", consumerName, err)
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			batch, err := cons.Fetch(10, jetstream.FetchMaxWait(5*time.Second))
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				time.Sleep(time.Second)
				continue
			}

			for msg := range batch.Messages() {
				var event models.SketchEvent
				if err := json.Unmarshal(msg.Data(), &event); err != nil {
					slog.Error("decode sketch event", "error", err)
					_ = msg.Term()
					continue
				}
				if err := handler(ctx, event); err != nil {
					slog.Error("process sketch event", "error", err)
					_ = msg.Nak()
				} else {
					_ = msg.Ack()
				}
			}
		}
	}()

	slog.Info("sketch event consumer started", "consumer", consumerName)
	return nil
}

func (c *Consumer) Close() {
	c.nc.Close()
}
