package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Card is one person shown during a review session.
type Card struct {
	ID        uuid.UUID
	Name      string
	Context   string
	Keywords  []string
	SketchKey string
	Record    Record
}

// Source loads review cards and persists outcomes.
type Source interface {
	// ReviewCards returns every card due at or before until.
	ReviewCards(ctx context.Context, until time.Time) ([]Card, error)
	// Card returns a single card or nil when the person does not exist.
	Card(ctx context.Context, id uuid.UUID) (*Card, error)
	// ApplyReview applies one outcome to the stored record and returns the
	// result, or nil when the person no longer exists. Concurrent calls for
	// the same person must not lose updates.
	ApplyReview(ctx context.Context, id uuid.UUID, recalled bool, now time.Time) (*Record, error)
}

type State int

const (
	StateNotRevealed State = iota
	StateRevealed
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateNotRevealed:
		return "not_revealed"
	case StateRevealed:
		return "revealed"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrInvalidTransition = errors.New("invalid review transition")
	ErrCardGone          = errors.New("person no longer exists")
)

// Session walks a queue of cards: reveal each one, mark it recalled or
// missed, and move on until the queue is exhausted.
type Session struct {
	src     Source
	now     func() time.Time
	limit   int
	nearDue int
	person  *uuid.UUID

	queue  []Card
	index  int
	state  State
	gotIt  int
	missed int
}

type SessionOption func(*Session)

// WithLimit caps the number of cards loaded.
func WithLimit(n int) SessionOption {
	return func(s *Session) { s.limit = n }
}

// WithNearDueDays sets how many days ahead a card still counts as due.
func WithNearDueDays(n int) SessionOption {
	return func(s *Session) { s.nearDue = n }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// ForPerson quizzes one person regardless of due status.
func ForPerson(id uuid.UUID) SessionOption {
	return func(s *Session) { s.person = &id }
}

func NewSession(src Source, opts ...SessionOption) *Session {
	s := &Session{
		src:     src,
		now:     time.Now,
		limit:   DefaultQueueLimit,
		nearDue: NearDueDays,
		state:   StateComplete,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limit <= 0 {
		s.limit = DefaultQueueLimit
	}
	if s.nearDue <= 0 {
		s.nearDue = NearDueDays
	}
	return s
}

// Load rebuilds the queue and resets progress. An empty queue leaves the
// session complete.
func (s *Session) Load(ctx context.Context) error {
	s.queue = nil
	s.index = 0
	s.gotIt = 0
	s.missed = 0
	s.state = StateComplete

	if s.person != nil {
		card, err := s.src.Card(ctx, *s.person)
		if err != nil {
			return fmt.Errorf("load quiz card: %w", err)
		}
		if card != nil {
			s.queue = []Card{*card}
		}
	} else {
		now := s.now()
		cards, err := s.src.ReviewCards(ctx, now.AddDate(0, 0, s.nearDue))
		if err != nil {
			return fmt.Errorf("load review cards: %w", err)
		}
		s.queue = orderCards(cards, now, s.limit, s.nearDue)
	}

	if len(s.queue) > 0 {
		s.state = StateNotRevealed
	}
	return nil
}

func orderCards(cards []Card, now time.Time, limit, nearDue int) []Card {
	items := make([]Item, len(cards))
	byID := make(map[uuid.UUID]Card, len(cards))
	for i, c := range cards {
		items[i] = Item{ID: c.ID, Record: c.Record}
		byID[c.ID] = c
	}

	ids := BuildReviewQueueWindow(items, now, limit, nearDue)
	out := make([]Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, byID[id])
	}
	return out
}

func (s *Session) State() State {
	return s.state
}

// Current returns the card being reviewed, or false once complete.
func (s *Session) Current() (Card, bool) {
	if s.state == StateComplete || s.index >= len(s.queue) {
		return Card{}, false
	}
	return s.queue[s.index], true
}

// Progress returns the zero-based position and the queue length.
func (s *Session) Progress() (int, int) {
	return s.index, len(s.queue)
}

// Results returns how many cards were recalled and missed so far.
func (s *Session) Results() (gotIt, missed int) {
	return s.gotIt, s.missed
}

func (s *Session) Reveal() error {
	if s.state != StateNotRevealed {
		return fmt.Errorf("%w: reveal from %s", ErrInvalidTransition, s.state)
	}
	s.state = StateRevealed
	return nil
}

func (s *Session) MarkGotIt(ctx context.Context) error {
	return s.mark(ctx, true)
}

func (s *Session) MarkMissed(ctx context.Context) error {
	return s.mark(ctx, false)
}

func (s *Session) mark(ctx context.Context, recalled bool) error {
	if s.state != StateRevealed {
		return fmt.Errorf("%w: mark from %s", ErrInvalidTransition, s.state)
	}

	card := &s.queue[s.index]
	rec, err := s.src.ApplyReview(ctx, card.ID, recalled, s.now())
	if err != nil {
		return fmt.Errorf("save review: %w", err)
	}
	if rec == nil {
		return fmt.Errorf("save review: %w", ErrCardGone)
	}
	card.Record = *rec

	if recalled {
		s.gotIt++
	} else {
		s.missed++
	}
	s.advance()
	return nil
}

func (s *Session) advance() {
	s.index++
	if s.index >= len(s.queue) {
		s.state = StateComplete
		return
	}
	s.state = StateNotRevealed
}
