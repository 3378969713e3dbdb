package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	cards   map[uuid.UUID]Card
	saved   map[uuid.UUID]Record
	until   time.Time
	saveErr error
}

func newFakeSource(cards ...Card) *fakeSource {
	src := &fakeSource{cards: map[uuid.UUID]Card{}, saved: map[uuid.UUID]Record{}}
	for _, c := range cards {
		src.cards[c.ID] = c
	}
	return src
}

func (f *fakeSource) ReviewCards(_ context.Context, until time.Time) ([]Card, error) {
	f.until = until
	var out []Card
	for _, c := range f.cards {
		if !c.Record.NextDueAt.After(until) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeSource) Card(_ context.Context, id uuid.UUID) (*Card, error) {
	c, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// ApplyReview starts from the source's copy of the record, not the session's.
// It does not write back to cards, so reloading sees the old due date.
func (f *fakeSource) ApplyReview(_ context.Context, id uuid.UUID, recalled bool, now time.Time) (*Record, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	c, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	rec := c.Record
	UpdateReviewState(&rec, recalled, now)
	f.saved[id] = rec
	return &rec, nil
}

func card(name string, offset time.Duration) Card {
	return Card{
		ID:     uuid.New(),
		Name:   name,
		Record: Record{NextDueAt: baseNow.Add(offset), EaseFactor: DefaultEase, IntervalDays: 1},
	}
}

func clock() time.Time { return baseNow }

func TestSession_EmptyQueueIsComplete(t *testing.T) {
	s := NewSession(newFakeSource(card("Far", 30*24*time.Hour)), WithClock(clock))
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, StateComplete, s.State())
	_, ok := s.Current()
	assert.False(t, ok)
	assert.ErrorIs(t, s.Reveal(), ErrInvalidTransition)
}

func TestSession_WalksQueueInOrder(t *testing.T) {
	ctx := context.Background()
	luis := card("Luis", -48*time.Hour)
	arturo := card("Arturo", -time.Hour)
	maria := card("Maria", 24*time.Hour)
	src := newFakeSource(luis, arturo, maria)

	s := NewSession(src, WithClock(clock))
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, baseNow.AddDate(0, 0, NearDueDays), src.until)

	c, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "Luis", c.Name)
	assert.Equal(t, StateNotRevealed, s.State())

	// must reveal before marking
	assert.ErrorIs(t, s.MarkGotIt(ctx), ErrInvalidTransition)

	require.NoError(t, s.Reveal())
	assert.Equal(t, StateRevealed, s.State())
	assert.ErrorIs(t, s.Reveal(), ErrInvalidTransition)
	require.NoError(t, s.MarkGotIt(ctx))

	c, _ = s.Current()
	assert.Equal(t, "Arturo", c.Name)
	assert.Equal(t, StateNotRevealed, s.State())
	require.NoError(t, s.Reveal())
	require.NoError(t, s.MarkMissed(ctx))

	c, _ = s.Current()
	assert.Equal(t, "Maria", c.Name)
	require.NoError(t, s.Reveal())
	require.NoError(t, s.MarkGotIt(ctx))

	assert.Equal(t, StateComplete, s.State())
	gotIt, missed := s.Results()
	assert.Equal(t, 2, gotIt)
	assert.Equal(t, 1, missed)

	assert.Equal(t, 3, src.saved[luis.ID].IntervalDays)
	assert.Equal(t, 1, src.saved[arturo.ID].IntervalDays)
	assert.InDelta(t, 2.3, src.saved[arturo.ID].EaseFactor, 1e-9)
}

func TestSession_LimitApplied(t *testing.T) {
	var cards []Card
	for i := 0; i < 8; i++ {
		cards = append(cards, card("p", -time.Duration(i+1)*time.Hour))
	}
	s := NewSession(newFakeSource(cards...), WithClock(clock), WithLimit(3))
	require.NoError(t, s.Load(context.Background()))

	_, total := s.Progress()
	assert.Equal(t, 3, total)
}

func TestSession_SinglePersonQuizIgnoresDueDate(t *testing.T) {
	far := card("Far", 90*24*time.Hour)
	s := NewSession(newFakeSource(far), WithClock(clock), ForPerson(far.ID))
	require.NoError(t, s.Load(context.Background()))

	c, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, far.ID, c.ID)
	_, total := s.Progress()
	assert.Equal(t, 1, total)
}

func TestSession_SinglePersonMissing(t *testing.T) {
	s := NewSession(newFakeSource(), WithClock(clock), ForPerson(uuid.New()))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateComplete, s.State())
}

func TestSession_SaveFailureKeepsCard(t *testing.T) {
	ctx := context.Background()
	c := card("Luis", -time.Hour)
	src := newFakeSource(c)
	src.saveErr = errors.New("db down")

	s := NewSession(src, WithClock(clock))
	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Reveal())

	err := s.MarkGotIt(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save review")
	assert.Equal(t, StateRevealed, s.State())

	cur, _ := s.Current()
	assert.Equal(t, 1, cur.Record.IntervalDays)
}

func TestSession_ReloadResets(t *testing.T) {
	ctx := context.Background()
	src := newFakeSource(card("Luis", -time.Hour))
	s := NewSession(src, WithClock(clock))

	require.NoError(t, s.Load(ctx))
	require.NoError(t, s.Reveal())
	require.NoError(t, s.MarkGotIt(ctx))
	assert.Equal(t, StateComplete, s.State())

	// the fake never writes cards back, so the card is due again
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, StateNotRevealed, s.State())
	gotIt, _ := s.Results()
	assert.Zero(t, gotIt)
}

func TestSession_CustomNearDueWindow(t *testing.T) {
	soon := card("Soon", 60*time.Hour)

	src := newFakeSource(soon)
	s := NewSession(src, WithClock(clock))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, StateComplete, s.State())

	s = NewSession(src, WithClock(clock), WithNearDueDays(3))
	require.NoError(t, s.Load(context.Background()))
	assert.Equal(t, baseNow.AddDate(0, 0, 3), src.until)
	c, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, soon.ID, c.ID)

	// matches the API queue for the same window
	ids := BuildReviewQueueWindow([]Item{{ID: soon.ID, Record: soon.Record}}, baseNow, DefaultQueueLimit, 3)
	assert.Equal(t, []uuid.UUID{soon.ID}, ids)
}

func TestSession_NonPositiveOptionsUseDefaults(t *testing.T) {
	src := newFakeSource(card("Soon", 36*time.Hour))
	s := NewSession(src, WithClock(clock), WithNearDueDays(0), WithLimit(-1))
	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, baseNow.AddDate(0, 0, NearDueDays), src.until)
	_, total := s.Progress()
	assert.Equal(t, 1, total)
}

func TestSession_UsesStoredRecord(t *testing.T) {
	ctx := context.Background()
	c := card("Luis", -time.Hour)
	src := newFakeSource(c)

	s := NewSession(src, WithClock(clock))
	require.NoError(t, s.Load(ctx))

	// another client reviewed Luis after the queue was loaded
	stored := src.cards[c.ID]
	UpdateReviewState(&stored.Record, true, baseNow)
	src.cards[c.ID] = stored

	require.NoError(t, s.Reveal())
	require.NoError(t, s.MarkGotIt(ctx))

	want := stored.Record
	UpdateReviewState(&want, true, baseNow)
	assert.Equal(t, want, src.saved[c.ID])
	assert.Greater(t, src.saved[c.ID].IntervalDays, 3)
}

func TestSession_CardDeletedMidSession(t *testing.T) {
	ctx := context.Background()
	c := card("Luis", -time.Hour)
	src := newFakeSource(c)

	s := NewSession(src, WithClock(clock))
	require.NoError(t, s.Load(ctx))
	delete(src.cards, c.ID)

	require.NoError(t, s.Reveal())
	assert.ErrorIs(t, s.MarkGotIt(ctx), ErrCardGone)
	assert.Equal(t, StateRevealed, s.State())
}
