package sketch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/storage"
)

type PersonStore interface {
	GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error)
	UpdateSketch(ctx context.Context, id uuid.UUID, key string, variant int, source models.SketchSource, illustration string) error
}

// Runner executes sketch tasks: it loads the person, generates the sketch
// and records where it was stored.
type Runner struct {
	svc   *Service
	store PersonStore
}

func NewRunner(svc *Service, store PersonStore) *Runner {
	return &Runner{svc: svc, store: store}
}

func (r *Runner) Run(ctx context.Context, task models.SketchTask) (*models.SketchEvent, error) {
	p, err := r.store.GetPerson(ctx, task.PersonID)
	if err != nil {
		return nil, fmt.Errorf("load person: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("load person %s: %w", task.PersonID, storage.ErrNotFound)
	}

	res, err := r.svc.Generate(ctx, Request{
		PersonID:     p.ID,
		Description:  p.Description(),
		Keywords:     p.Keywords,
		Variant:      task.Variant,
		Style:        task.Style,
		Illustration: task.Illustration,
	})
	if err != nil {
		return nil, err
	}

	if err := r.store.UpdateSketch(ctx, p.ID, res.Key, res.Variant, res.Source, string(res.Illustration)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	return &models.SketchEvent{
		PersonID:  p.ID,
		SketchKey: res.Key,
		Variant:   res.Variant,
		Source:    res.Source,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FailureEvent describes a task that could not be completed.
func FailureEvent(task models.SketchTask, err error) models.SketchEvent {
	return models.SketchEvent{
		PersonID:  task.PersonID,
		Variant:   task.Variant,
		Error:     err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
