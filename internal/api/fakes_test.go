package api

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/internal/storage"
	"github.com/your-org/remember/pkg/dto"
)

// memStore is an in-memory stand-in for the postgres store.
type memStore struct {
	mu         sync.Mutex
	clock      func() time.Time
	categories []models.Category
	persons    map[uuid.UUID]*models.Person
	vectors    map[uuid.UUID][]float32
	order      []uuid.UUID
}

func newMemStore(clock func() time.Time) *memStore {
	return &memStore{
		clock:   clock,
		persons: map[uuid.UUID]*models.Person{},
		vectors: map[uuid.UUID][]float32{},
	}
}

func (s *memStore) CreateCategory(_ context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == name {
			return nil, errors.New("duplicate category")
		}
	}
	c := models.Category{ID: uuid.New(), Name: name, CreatedAt: s.clock()}
	s.categories = append(s.categories, c)
	return &c, nil
}

func (s *memStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	s.mu.Lock()
	empty := len(s.categories) == 0
	s.mu.Unlock()
	if empty {
		for _, name := range models.DefaultCategories {
			if _, err := s.CreateCategory(ctx, name); err != nil {
				return nil, err
			}
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Category(nil), s.categories...), nil
}

func (s *memStore) GetCategory(_ context.Context, id uuid.UUID) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *memStore) CreatePerson(_ context.Context, p *models.Person, f features.SketchFeatures) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = uuid.New()
	p.CreatedAt = s.clock()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	s.persons[p.ID] = &cp
	s.order = append(s.order, p.ID)
	if !f.IsZero() {
		s.vectors[p.ID] = f.Vector()
	}
	return nil
}

func (s *memStore) GetPerson(_ context.Context, id uuid.UUID) (*models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *memStore) ListPersons(_ context.Context, f storage.PersonFilter) ([]models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := strings.ToLower(strings.TrimSpace(f.Query))
	var out []models.Person
	for i := len(s.order) - 1; i >= 0; i-- {
		p, ok := s.persons[s.order[i]]
		if !ok {
			continue
		}
		if f.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *f.CategoryID) {
			continue
		}
		if q != "" {
			hay := strings.ToLower(strings.Join([]string{p.Name, p.Context, p.Transcript, p.EditedDescription, strings.Join(p.Keywords, " ")}, " "))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		out = append(out, *p)
	}
	return out, nil
}

func (s *memStore) update(id uuid.UUID, fn func(p *models.Person)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[id]
	if !ok {
		return storage.ErrNotFound
	}
	fn(p)
	p.UpdatedAt = s.clock()
	return nil
}

func (s *memStore) UpdateTranscript(_ context.Context, id uuid.UUID, transcript, edited string, keywords []string, f features.SketchFeatures) error {
	err := s.update(id, func(p *models.Person) {
		p.Transcript, p.EditedDescription, p.Keywords = transcript, edited, keywords
	})
	if err == nil {
		s.mu.Lock()
		if f.IsZero() {
			delete(s.vectors, id)
		} else {
			s.vectors[id] = f.Vector()
		}
		s.mu.Unlock()
	}
	return err
}

func (s *memStore) UpdateContext(_ context.Context, id uuid.UUID, contextText string) error {
	return s.update(id, func(p *models.Person) { p.Context = contextText })
}

func (s *memStore) UpdateSketch(_ context.Context, id uuid.UUID, key string, variant int, source models.SketchSource, illustration string) error {
	return s.update(id, func(p *models.Person) {
		p.SketchKey, p.SketchVariant, p.SketchSource, p.IllustrationStyle = key, variant, source, illustration
	})
}

func (s *memStore) UpdatePhoto(_ context.Context, id uuid.UUID, key string) error {
	return s.update(id, func(p *models.Person) { p.PhotoKey = key })
}

func (s *memStore) UpdateAudio(_ context.Context, id uuid.UUID, key string) error {
	return s.update(id, func(p *models.Person) { p.AudioKey = key })
}

func (s *memStore) UpdatePreferredVisual(_ context.Context, id uuid.UUID, v models.VisualType) error {
	return s.update(id, func(p *models.Person) { p.PreferredVisual = v })
}

// ApplyReview holds the lock across read and write like the row lock in
// postgres.
func (s *memStore) ApplyReview(_ context.Context, id uuid.UUID, recalled bool, now time.Time) (*review.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.persons[id]
	if !ok {
		return nil, nil
	}
	review.UpdateReviewState(&p.Review, recalled, now)
	p.UpdatedAt = s.clock()
	rec := p.Review
	return &rec, nil
}

func (s *memStore) DeletePerson(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.persons[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.persons, id)
	delete(s.vectors, id)
	return nil
}

func (s *memStore) RecentContexts(_ context.Context, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		p, ok := s.persons[s.order[i]]
		if !ok || p.Context == "" || seen[p.Context] {
			continue
		}
		seen[p.Context] = true
		out = append(out, p.Context)
	}
	return out, nil
}

func (s *memStore) ListReviewCandidates(_ context.Context, until time.Time) ([]models.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Person
	for _, p := range s.persons {
		if !p.Review.NextDueAt.After(until) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Review.NextDueAt.Before(out[j].Review.NextDueAt) })
	return out, nil
}

func (s *memStore) CountDue(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, p := range s.persons {
		if p.Review.IsDue(now) {
			n++
		}
	}
	return n, nil
}

func (s *memStore) SearchByFeatures(_ context.Context, f features.SketchFeatures, threshold float64, limit int) ([]storage.SearchMatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := f.Vector()
	var out []storage.SearchMatch
	for id, v := range s.vectors {
		score := cosine(q, v)
		if score >= threshold {
			out = append(out, storage.SearchMatch{PersonID: id, Name: s.persons[id].Name, Score: float32(score)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	deleted []string
}

func newMemObjects() *memObjects {
	return &memObjects{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memObjects) PutObject(_ context.Context, key string, data []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memObjects) GetObject(_ context.Context, key string) ([]byte, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[key]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return data, m.types[key], nil
}

func (m *memObjects) DeleteObjects(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		if k == "" {
			continue
		}
		delete(m.objects, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

type recordingQueue struct {
	tasks []models.SketchTask
}

func (q *recordingQueue) PublishSketchTask(_ context.Context, task models.SketchTask) error {
	q.tasks = append(q.tasks, task)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []dto.WSEvent
}

func (n *recordingNotifier) BroadcastEvent(e *dto.WSEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, *e)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

type stubDescriber struct {
	out string
	err error
}

func (d stubDescriber) EditDescription(context.Context, string, []string, string) (string, error) {
	return d.out, d.err
}
