package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
)

var quizNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type memSource struct {
	cards []review.Card
	saved map[uuid.UUID]review.Record
}

func (m *memSource) ReviewCards(_ context.Context, until time.Time) ([]review.Card, error) {
	var out []review.Card
	for _, c := range m.cards {
		if !c.Record.NextDueAt.After(until) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memSource) Card(_ context.Context, id uuid.UUID) (*review.Card, error) {
	for _, c := range m.cards {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (m *memSource) ApplyReview(_ context.Context, id uuid.UUID, recalled bool, now time.Time) (*review.Record, error) {
	for _, c := range m.cards {
		if c.ID == id {
			rec := c.Record
			review.UpdateReviewState(&rec, recalled, now)
			m.saved[id] = rec
			return &rec, nil
		}
	}
	return nil, nil
}

func dueCard(name string, offset time.Duration) review.Card {
	return review.Card{
		ID:       uuid.New(),
		Name:     name,
		Context:  "The Climbing Gym",
		Keywords: []string{"red hair"},
		Record:   review.Record{NextDueAt: quizNow.Add(offset), EaseFactor: review.DefaultEase, IntervalDays: 1},
	}
}

func TestQuiz_MarksAnswers(t *testing.T) {
	sarah := dueCard("Sarah", -2*time.Hour)
	luis := dueCard("Luis", -time.Hour)
	src := &memSource{cards: []review.Card{luis, sarah}, saved: map[uuid.UUID]review.Record{}}
	sess := review.NewSession(src, review.WithClock(func() time.Time { return quizNow }))

	var out bytes.Buffer
	err := quiz(context.Background(), sess, strings.NewReader("\ny\n\nno\n"), &out)
	require.NoError(t, err)

	assert.Equal(t, 3, src.saved[sarah.ID].IntervalDays)
	assert.Equal(t, 1, src.saved[luis.ID].IntervalDays)
	assert.InDelta(t, 2.3, src.saved[luis.ID].EaseFactor, 1e-9)

	text := out.String()
	assert.Contains(t, text, "[1/2] met at The Climbing Gym. Looks: red hair.")
	assert.Less(t, strings.Index(text, "It's Sarah"), strings.Index(text, "It's Luis"))
	assert.Contains(t, text, "Done: 1 got it, 1 missed.")
}

func TestQuiz_EmptyQueue(t *testing.T) {
	src := &memSource{cards: []review.Card{dueCard("Ana", 10*24*time.Hour)}, saved: map[uuid.UUID]review.Record{}}
	sess := review.NewSession(src, review.WithClock(func() time.Time { return quizNow }))

	var out bytes.Buffer
	require.NoError(t, quiz(context.Background(), sess, strings.NewReader(""), &out))
	assert.Equal(t, "Nobody to review right now.\n", out.String())
	assert.Empty(t, src.saved)
}

func TestQuiz_SinglePersonIgnoresDueDate(t *testing.T) {
	ana := dueCard("Ana", 10*24*time.Hour)
	src := &memSource{cards: []review.Card{ana}, saved: map[uuid.UUID]review.Record{}}
	sess := review.NewSession(src, review.ForPerson(ana.ID), review.WithClock(func() time.Time { return quizNow }))

	var out bytes.Buffer
	require.NoError(t, quiz(context.Background(), sess, strings.NewReader("\nyes\n"), &out))
	assert.Equal(t, 3, src.saved[ana.ID].IntervalDays)
}

func TestQuiz_StopsAtEndOfInput(t *testing.T) {
	src := &memSource{cards: []review.Card{dueCard("Ana", -time.Hour)}, saved: map[uuid.UUID]review.Record{}}
	sess := review.NewSession(src, review.WithClock(func() time.Time { return quizNow }))

	require.NoError(t, quiz(context.Background(), sess, strings.NewReader("\n"), &bytes.Buffer{}))
	assert.Empty(t, src.saved)
}

func TestQuiz_UsesConfiguredWindowAndLimit(t *testing.T) {
	cards := []review.Card{
		dueCard("Ana", -time.Hour),
		dueCard("Ben", -2*time.Hour),
		dueCard("Soon", 60*time.Hour),
	}
	src := &memSource{cards: cards, saved: map[uuid.UUID]review.Record{}}
	clock := review.WithClock(func() time.Time { return quizNow })

	opts, err := sessionOptions(config.ReviewConfig{QueueLimit: 5, NearDueDays: 3}, 0, "")
	require.NoError(t, err)
	sess := review.NewSession(src, append(opts, clock)...)
	require.NoError(t, sess.Load(context.Background()))
	_, total := sess.Progress()
	assert.Equal(t, 3, total)

	opts, err = sessionOptions(config.ReviewConfig{QueueLimit: 5, NearDueDays: 2}, 0, "")
	require.NoError(t, err)
	sess = review.NewSession(src, append(opts, clock)...)
	require.NoError(t, sess.Load(context.Background()))
	_, total = sess.Progress()
	assert.Equal(t, 2, total)

	opts, err = sessionOptions(config.ReviewConfig{QueueLimit: 1, NearDueDays: 3}, 0, "")
	require.NoError(t, err)
	sess = review.NewSession(src, append(opts, clock)...)
	require.NoError(t, sess.Load(context.Background()))
	card, _ := sess.Current()
	_, total = sess.Progress()
	assert.Equal(t, 1, total)
	assert.Equal(t, "Ben", card.Name)

	opts, err = sessionOptions(config.ReviewConfig{QueueLimit: 1, NearDueDays: 3}, 2, "")
	require.NoError(t, err)
	sess = review.NewSession(src, append(opts, clock)...)
	require.NoError(t, sess.Load(context.Background()))
	_, total = sess.Progress()
	assert.Equal(t, 2, total)

	_, err = sessionOptions(config.ReviewConfig{}, 0, "not-a-uuid")
	assert.ErrorContains(t, err, "invalid person id")
}

func TestReadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
persons:
  - name: Sarah
    category: Colleague
    transcript: red hair and round glasses, met her at the climbing gym
  - name: Tom
    context: Bakery
`), 0o644))

	seeds, err := readSeed(path)
	require.NoError(t, err)
	require.Len(t, seeds.Persons, 2)
	assert.Equal(t, "Colleague", seeds.Persons[0].Category)

	p := seedToPerson(seeds.Persons[0], nil)
	assert.Equal(t, "The Climbing Gym", p.Context)
	assert.Contains(t, p.Keywords, "red hair")
	assert.Equal(t, models.VisualSketch, p.PreferredVisual)
	assert.Equal(t, review.DefaultEase, p.Review.EaseFactor)

	tom := seedToPerson(seeds.Persons[1], nil)
	assert.Equal(t, "Bakery", tom.Context)
	assert.Empty(t, tom.Keywords)
}

func TestReadSeed_RequiresNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("persons:\n  - transcript: bald\n"), 0o644))

	_, err := readSeed(path)
	assert.ErrorContains(t, err, "name is required")
}

func TestReadSeed_ShippedFile(t *testing.T) {
	seeds, err := readSeed(filepath.Join("..", "..", "configs", "seed.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, seeds.Persons)
}
