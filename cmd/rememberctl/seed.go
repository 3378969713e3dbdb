package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/your-org/remember/internal/features"
	"github.com/your-org/remember/internal/intent"
	"github.com/your-org/remember/internal/models"
	"github.com/your-org/remember/internal/review"
	"github.com/your-org/remember/internal/sketch"
	"github.com/your-org/remember/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create people from a YAML seed file",
	Long:  "Create people from a YAML seed file. Keywords are extracted from each transcript and a sketch is drawn and stored.",
	RunE:  runSeed,
}

var (
	seedFile string
	seedAI   bool
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "seed file")
	seedCmd.Flags().BoolVar(&seedAI, "ai", false, "use the image model for sketches when configured")

	rootCmd.AddCommand(seedCmd)
}

type seedList struct {
	Persons []seedPerson `yaml:"persons"`
}

type seedPerson struct {
	Name       string `yaml:"name"`
	Category   string `yaml:"category"`
	Context    string `yaml:"context"`
	Transcript string `yaml:"transcript"`
}

func readSeed(path string) (*seedList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seeds seedList
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, p := range seeds.Persons {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("seed person %d: name is required", i+1)
		}
	}
	return &seeds, nil
}

func runSeed(cmd *cobra.Command, _ []string) error {
	seeds, err := readSeed(seedFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !seedAI {
		cfg.OpenAI.Enabled = false
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	objects, err := storage.NewMinIOStore(cfg.MinIO)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if err := objects.EnsureBucket(ctx); err != nil {
		return err
	}

	svc, _, err := sketch.Setup(cfg, objects)
	if err != nil {
		return err
	}
	runner := sketch.NewRunner(svc, db)

	categories, err := categoryIndex(ctx, db)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, sp := range seeds.Persons {
		categoryID, err := ensureCategory(ctx, db, categories, sp.Category)
		if err != nil {
			return err
		}

		person := seedToPerson(sp, categoryID)
		if err := db.CreatePerson(ctx, person, features.Parse(person.Keywords)); err != nil {
			return fmt.Errorf("create %s: %w", person.Name, err)
		}

		if person.Transcript != "" {
			if _, err := runner.Run(ctx, models.SketchTask{PersonID: person.ID}); err != nil {
				fmt.Fprintf(out, "%s: sketch failed: %v\n", person.Name, err)
			}
		}
		fmt.Fprintf(out, "created %s (%s)\n", person.Name, person.ID)
	}
	return nil
}

func seedToPerson(sp seedPerson, categoryID *uuid.UUID) *models.Person {
	transcript := strings.TrimSpace(sp.Transcript)
	contextText := strings.TrimSpace(sp.Context)
	if contextText == "" {
		contextText = intent.ExtractContext(transcript)
	}
	return &models.Person{
		Name:            strings.TrimSpace(sp.Name),
		Context:         contextText,
		CategoryID:      categoryID,
		Transcript:      transcript,
		Keywords:        features.Extract(transcript),
		PreferredVisual: models.VisualSketch,
		Review:          review.NewRecord(time.Now()),
	}
}

func categoryIndex(ctx context.Context, db *storage.PostgresStore) (map[string]uuid.UUID, error) {
	cats, err := db.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	index := make(map[string]uuid.UUID, len(cats))
	for _, c := range cats {
		index[strings.ToLower(c.Name)] = c.ID
	}
	return index, nil
}

// ensureCategory returns nil for an empty name and creates unknown ones.
func ensureCategory(ctx context.Context, db *storage.PostgresStore, index map[string]uuid.UUID, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if id, ok := index[strings.ToLower(name)]; ok {
		return &id, nil
	}
	cat, err := db.CreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create category %s: %w", name, err)
	}
	index[strings.ToLower(name)] = cat.ID
	return &cat.ID, nil
}
