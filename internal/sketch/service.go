// Package sketch turns a spoken description into a stored portrait, either
// drawn locally or generated by an image model.
package sketch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/imagegen"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/observability"
	"github.com/your-org/remember/internal/render"
	"github.com/your-org/remember/internal/storage"
)

var (
	ErrGenerationFailed = errors.New("sketch generation failed")
	ErrSaveFailed       = errors.New("sketch save failed")
	ErrInvalidStyle     = errors.New("invalid sketch style")
)

type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) error
}

type ImageGenerator interface {
	GenerateImage(ctx context.Context, style imagegen.IllustrationStyle, description string, keywords []string) ([]byte, error)
}

type Request struct {
	PersonID    uuid.UUID
	Description string
	// Keywords are extracted from Description when empty.
	Keywords []string
	Variant  int
	// Style is a render style name. Empty picks one from the variant.
	Style string
	// Illustration is the AI illustration style. Empty uses the service default.
	Illustration string
}

type Result struct {
	Key          string
	Variant      int
	Source       models.SketchSource
	Illustration imagegen.IllustrationStyle
	Keywords     []string
	Features     features.SketchFeatures
	PNG          []byte
}

type Service struct {
	renderer     *render.Renderer
	store        ObjectStore
	ai           ImageGenerator
	illustration imagegen.IllustrationStyle
}

type Option func(*Service)

// WithImageGenerator enables AI portraits for variant 0.
func WithImageGenerator(g ImageGenerator) Option {
	return func(s *Service) { s.ai = g }
}

func WithDefaultIllustration(style imagegen.IllustrationStyle) Option {
	return func(s *Service) { s.illustration = style }
}

func NewService(renderer *render.Renderer, store ObjectStore, opts ...Option) *Service {
	s := &Service{
		renderer:     renderer,
		store:        store,
		illustration: imagegen.DefaultStyle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate produces the person's sketch and stores it under the sketch key.
// The image model is tried first for variant 0 when one is configured and
// the description is not empty. Any failure there falls back to the local
// renderer.
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	illustration, err := s.resolveIllustration(req.Illustration)
	if err != nil {
		return nil, err
	}

	keywords := req.Keywords
	if len(keywords) == 0 {
		keywords = features.Extract(req.Description)
	}

	res := &Result{
		Key:          storage.SketchKey(req.PersonID),
		Variant:      req.Variant,
		Illustration: illustration,
		Keywords:     keywords,
		Features:     features.Parse(keywords),
	}

	start := time.Now()
	if s.ai != nil && req.Variant == 0 && strings.TrimSpace(req.Description) != "" {
		data, err := s.ai.GenerateImage(ctx, illustration, req.Description, keywords)
		if err == nil {
			res.PNG = data
			res.Source = models.SketchSourceOpenAI
		} else {
			observability.SketchFailures.WithLabelValues("ai").Inc()
			slog.Warn("ai sketch failed, rendering locally", "person_id", req.PersonID, "error", err)
		}
	}

	if res.PNG == nil {
		data, err := s.renderLocal(res.Features, req.Variant, req.Style)
		if err != nil {
			observability.SketchFailures.WithLabelValues("render").Inc()
			return nil, err
		}
		res.PNG = data
		res.Source = models.SketchSourceLocal
	}

	if err := s.store.PutObject(ctx, res.Key, res.PNG, "image/png"); err != nil {
		observability.SketchFailures.WithLabelValues("save").Inc()
		return nil, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	observability.SketchesRendered.WithLabelValues(string(res.Source)).Inc()
	observability.SketchDuration.WithLabelValues(string(res.Source)).Observe(time.Since(start).Seconds())
	return res, nil
}

// Preview renders a description locally without storing anything.
func (s *Service) Preview(description string, variant int, style string) ([]byte, features.SketchFeatures, error) {
	f := features.FromDescription(description)
	data, err := s.renderLocal(f, variant, style)
	if err != nil {
		return nil, f, err
	}
	return data, f, nil
}

func (s *Service) renderLocal(f features.SketchFeatures, variant int, style string) ([]byte, error) {
	st := render.StyleForVariant(variant)
	if style != "" {
		var err error
		if st, err = render.StyleByName(style); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStyle, err)
		}
	}

	data, err := s.renderer.EncodePNGWithStyle(f, variant, st)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return data, nil
}

func (s *Service) resolveIllustration(name string) (imagegen.IllustrationStyle, error) {
	if name == "" {
		return s.illustration, nil
	}
	style, err := imagegen.ParseStyle(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidStyle, err)
	}
	return style, nil
}
