package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/remember/internal/review"
)

// ReviewSource exposes persons to review sessions.
type ReviewSource struct {
	store *PostgresStore
}

func NewReviewSource(store *PostgresStore) *ReviewSource {
	return &ReviewSource{store: store}
}

func (r *ReviewSource) ReviewCards(ctx context.Context, until time.Time) ([]review.Card, error) {
	persons, err := r.store.ListReviewCandidates(ctx, until)
	if err != nil {
		return nil, err
	}
	cards := make([]review.Card, 0, len(persons))
	for i := range persons {
		cards = append(cards, persons[i].ReviewCard())
	}
	return cards, nil
}

func (r *ReviewSource) Card(ctx context.Context, id uuid.UUID) (*review.Card, error) {
	p, err := r.store.GetPerson(ctx, id)
	if err != nil || p == nil {
		return nil, err
	}
	c := p.ReviewCard()
	return &c, nil
}

func (r *ReviewSource) ApplyReview(ctx context.Context, id uuid.UUID, recalled bool, now time.Time) (*review.Record, error) {
	return r.store.ApplyReview(ctx, id, recalled, now)
}
