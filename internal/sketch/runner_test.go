package sketch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/storage"
)

type fakePersons struct {
	persons   map[uuid.UUID]*models.Person
	updated   map[uuid.UUID]string
	updateErr error
}

func (f *fakePersons) GetPerson(_ context.Context, id uuid.UUID) (*models.Person, error) {
	return f.persons[id], nil
}

func (f *fakePersons) UpdateSketch(_ context.Context, id uuid.UUID, key string, _ int, _ models.SketchSource, _ string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated[id] = key
	return nil
}

func TestRunner_Run(t *testing.T) {
	p := &models.Person{ID: uuid.New(), Name: "Luis", Transcript: "blue glasses and a goatee"}
	persons := &fakePersons{persons: map[uuid.UUID]*models.Person{p.ID: p}, updated: map[uuid.UUID]string{}}
	store := &fakeStore{}

	event, err := NewRunner(newService(t, store), persons).Run(context.Background(), models.SketchTask{PersonID: p.ID, Variant: 3})
	require.NoError(t, err)

	assert.Equal(t, p.ID, event.PersonID)
	assert.Equal(t, 3, event.Variant)
	assert.Equal(t, models.SketchSourceLocal, event.Source)
	assert.Empty(t, event.Error)
	assert.Equal(t, event.SketchKey, persons.updated[p.ID])
	assert.Contains(t, store.objects, event.SketchKey)
}

func TestRunner_MissingPerson(t *testing.T) {
	persons := &fakePersons{persons: map[uuid.UUID]*models.Person{}, updated: map[uuid.UUID]string{}}

	_, err := NewRunner(newService(t, &fakeStore{}), persons).Run(context.Background(), models.SketchTask{PersonID: uuid.New()})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRunner_UpdateFailure(t *testing.T) {
	p := &models.Person{ID: uuid.New(), Transcript: "bald"}
	persons := &fakePersons{
		persons:   map[uuid.UUID]*models.Person{p.ID: p},
		updated:   map[uuid.UUID]string{},
		updateErr: errors.New("conn reset"),
	}

	_, err := NewRunner(newService(t, &fakeStore{}), persons).Run(context.Background(), models.SketchTask{PersonID: p.ID})
	assert.ErrorIs(t, err, ErrSaveFailed)
}

func TestFailureEvent(t *testing.T) {
	task := models.SketchTask{PersonID: uuid.New(), Variant: 2}
	e := FailureEvent(task, errors.New("boom"))
	assert.Equal(t, task.PersonID, e.PersonID)
	assert.Equal(t, 2, e.Variant)
	assert.Equal(t, "boom", e.Error)
	assert.False(t, e.Timestamp.IsZero())
}
