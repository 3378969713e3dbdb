package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
)

var ErrNotFound = errors.New("not found")

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(cfg config.DatabaseConfig) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxConns)

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// --- Categories ---

func (s *PostgresStore) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	c := &models.Category{ID: uuid.New(), Name: name}
	err := s.pool.QueryRow(ctx,
		`INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING created_at`,
		c.ID, c.Name,
	).Scan(&c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

// ListCategories returns all categories, creating the defaults when the
// table is empty.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.listCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) > 0 {
		return categories, nil
	}

	batch := &pgx.Batch{}
	for _, name := range models.DefaultCategories {
		batch.Queue(`INSERT INTO categories (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`, uuid.New(), name)
	}
	if err := s.pool.SendBatch(ctx, batch).Close(); err != nil {
		return nil, fmt.Errorf("seed categories: %w", err)
	}
	return s.listCategories(ctx)
}

func (s *PostgresStore) listCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *PostgresStore) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	c := &models.Category{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// --- Persons ---

const personColumns = `id, name, context, category_id, transcript, edited_description, keywords,
	sketch_key, sketch_variant, sketch_source, illustration_style, photo_key, audio_key, preferred_visual,
	last_reviewed_at, next_due_at, ease_factor, interval_days, created_at, updated_at`

func scanPerson(row pgx.Row) (*models.Person, error) {
	p := &models.Person{}
	err := row.Scan(&p.ID, &p.Name, &p.Context, &p.CategoryID, &p.Transcript, &p.EditedDescription, &p.Keywords,
		&p.SketchKey, &p.SketchVariant, &p.SketchSource, &p.IllustrationStyle, &p.PhotoKey, &p.AudioKey, &p.PreferredVisual,
		&p.Review.LastReviewedAt, &p.Review.NextDueAt, &p.Review.EaseFactor, &p.Review.IntervalDays,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	return p, nil
}

func collectPersons(rows pgx.Rows) ([]models.Person, error) {
	defer rows.Close()

	var persons []models.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		persons = append(persons, *p)
	}
	return persons, rows.Err()
}

// featureVector returns nil for empty features so the column stays NULL and
// the person is left out of similarity search.
func featureVector(f features.SketchFeatures) *pgvector.Vector {
	if f.IsZero() {
		return nil
	}
	v := pgvector.NewVector(f.Vector())
	return &v
}

// CreatePerson inserts p, assigning its ID. A zero review record is replaced
// by one that is due now.
func (s *PostgresStore) CreatePerson(ctx context.Context, p *models.Person, f features.SketchFeatures) error {
	p.ID = uuid.New()
	if p.Keywords == nil {
		p.Keywords = []string{}
	}
	if p.PreferredVisual == "" {
		p.PreferredVisual = models.VisualSketch
	}
	if p.Review.EaseFactor == 0 {
		p.Review = review.NewRecord(time.Now())
	}

	err := s.pool.QueryRow(ctx,
		`INSERT INTO persons (id, name, context, category_id, transcript, edited_description, keywords, feature_vector,
			preferred_visual, last_reviewed_at, next_due_at, ease_factor, interval_days)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING created_at, updated_at`,
		p.ID, p.Name, p.Context, p.CategoryID, p.Transcript, p.EditedDescription, p.Keywords, featureVector(f),
		p.PreferredVisual, p.Review.LastReviewedAt, p.Review.NextDueAt, p.Review.EaseFactor, p.Review.IntervalDays,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetPerson(ctx context.Context, id uuid.UUID) (*models.Person, error) {
	p, err := scanPerson(s.pool.QueryRow(ctx,
		`SELECT `+personColumns+` FROM persons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return p, nil
}

type PersonFilter struct {
	// Query matches name, context, description or keywords, case-insensitively.
	Query      string
	CategoryID *uuid.UUID
	Limit      int
	Offset     int
}

func (s *PostgresStore) ListPersons(ctx context.Context, f PersonFilter) ([]models.Person, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 500 {
		f.Limit = 500
	}

	where := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, fmt.Sprintf(
			`(name ILIKE $%[1]d OR context ILIKE $%[1]d OR transcript ILIKE $%[1]d
			  OR edited_description ILIKE $%[1]d OR array_to_string(keywords, ' ') ILIKE $%[1]d)`, argIdx))
		args = append(args, "%"+escapeLike(q)+"%")
		argIdx++
	}
	if f.CategoryID != nil {
		where = append(where, fmt.Sprintf("category_id = $%d", argIdx))
		args = append(args, *f.CategoryID)
		argIdx++
	}

	query := fmt.Sprintf(`SELECT %s FROM persons WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		personColumns, strings.Join(where, " AND "), argIdx, argIdx+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return collectPersons(rows)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// UpdateTranscript stores a new description and the features derived from it.
func (s *PostgresStore) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript, edited string, keywords []string, f features.SketchFeatures) error {
	if keywords == nil {
		keywords = []string{}
	}
	return s.execOne(ctx, "update transcript",
		`UPDATE persons SET transcript = $1, edited_description = $2, keywords = $3, feature_vector = $4 WHERE id = $5`,
		transcript, edited, keywords, featureVector(f), id)
}

func (s *PostgresStore) UpdateContext(ctx context.Context, id uuid.UUID, contextText string) error {
	return s.execOne(ctx, "update context",
		`UPDATE persons SET context = $1 WHERE id = $2`, contextText, id)
}

func (s *PostgresStore) UpdateSketch(ctx context.Context, id uuid.UUID, key string, variant int, source models.SketchSource, illustration string) error {
	return s.execOne(ctx, "update sketch",
		`UPDATE persons SET sketch_key = $1, sketch_variant = $2, sketch_source = $3, illustration_style = $4 WHERE id = $5`,
		key, variant, source, illustration, id)
}

func (s *PostgresStore) UpdatePhoto(ctx context.Context, id uuid.UUID, key string) error {
	return s.execOne(ctx, "update photo",
		`UPDATE persons SET photo_key = $1 WHERE id = $2`, key, id)
}

func (s *PostgresStore) UpdateAudio(ctx context.Context, id uuid.UUID, key string) error {
	return s.execOne(ctx, "update audio",
		`UPDATE persons SET audio_key = $1 WHERE id = $2`, key, id)
}

func (s *PostgresStore) UpdatePreferredVisual(ctx context.Context, id uuid.UUID, v models.VisualType) error {
	return s.execOne(ctx, "update preferred visual",
		`UPDATE persons SET preferred_visual = $1 WHERE id = $2`, v, id)
}

// ApplyReview locks the person's row, applies one outcome to the stored
// record and writes it back in the same transaction. It returns nil, nil
// when the person does not exist.
func (s *PostgresStore) ApplyReview(ctx context.Context, id uuid.UUID, recalled bool, now time.Time) (*review.Record, error) {
	var (
		rec   review.Record
		found bool
	)
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT last_reviewed_at, next_due_at, ease_factor, interval_days FROM persons WHERE id = $1 FOR UPDATE`, id,
		).Scan(&rec.LastReviewedAt, &rec.NextDueAt, &rec.EaseFactor, &rec.IntervalDays)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		review.UpdateReviewState(&rec, recalled, now)
		_, err = tx.Exec(ctx,
			`UPDATE persons SET last_reviewed_at = $1, next_due_at = $2, ease_factor = $3, interval_days = $4 WHERE id = $5`,
			rec.LastReviewedAt, rec.NextDueAt, rec.EaseFactor, rec.IntervalDays, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("apply review: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &rec, nil
}

func (s *PostgresStore) DeletePerson(ctx context.Context, id uuid.UUID) error {
	return s.execOne(ctx, "delete person", `DELETE FROM persons WHERE id = $1`, id)
}

func (s *PostgresStore) execOne(ctx context.Context, op, sql string, args ...interface{}) error {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: person %w", op, ErrNotFound)
	}
	return nil
}

// --- Review ---

// ListReviewCandidates returns persons due at or before until, earliest first.
func (s *PostgresStore) ListReviewCandidates(ctx context.Context, until time.Time) ([]models.Person, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+personColumns+` FROM persons WHERE next_due_at <= $1 ORDER BY next_due_at`, until)
	if err != nil {
		return nil, fmt.Errorf("list review candidates: %w", err)
	}
	return collectPersons(rows)
}

func (s *PostgresStore) CountDue(ctx context.Context, now time.Time) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM persons WHERE next_due_at <= $1`, now,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count due: %w", err)
	}
	return count, nil
}

// RecentContexts returns distinct meeting contexts, most recently used first.
func (s *PostgresStore) RecentContexts(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.pool.Query(ctx,
		`SELECT context FROM persons WHERE context <> ''
		 GROUP BY context ORDER BY MAX(created_at) DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent contexts: %w", err)
	}
	defer rows.Close()

	var contexts []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan context: %w", err)
		}
		contexts = append(contexts, c)
	}
	return contexts, rows.Err()
}

// --- Search ---

type SearchMatch struct {
	PersonID uuid.UUID `json:"person_id"`
	Name     string    `json:"name"`
	Score    float32   `json:"score"`
}

// SearchByFeatures finds persons whose sketch features are closest to f.
func (s *PostgresStore) SearchByFeatures(ctx context.Context, f features.SketchFeatures, threshold float64, limit int) ([]SearchMatch, error) {
	if f.IsZero() {
		return nil, nil
	}
	if limit <= 0 {
		limit = 5
	}
	vec := pgvector.NewVector(f.Vector())

	rows, err := s.pool.Query(ctx, `
		SELECT id, name, 1 - (feature_vector <=> $1) AS score
		FROM persons
		WHERE feature_vector IS NOT NULL
		  AND 1 - (feature_vector <=> $1) >= $2
		ORDER BY feature_vector <=> $1
		LIMIT $3`,
		vec, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("search by features: %w", err)
	}
	defer rows.Close()

	var matches []SearchMatch
	for rows.Next() {
		var m SearchMatch
		if err := rows.Scan(&m.PersonID, &m.Name, &m.Score); err != nil {
			return nil, fmt.Errorf("scan search match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
