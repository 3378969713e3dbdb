// Command rememberctl renders sketches offline, seeds people and runs review
// quizzes from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/observability"
	"github.com/your-org/remember/internal/storage"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rememberctl",
	Short: "Remember command line tools",
	Long:  "rememberctl draws face sketches from descriptions, seeds people into the database and runs spaced-repetition quizzes.",
	// usage is noise on runtime errors
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs/config.yaml", "path to config file")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	observability.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// openStore migrates the database and connects to it.
func openStore(cfg *config.Config) (*storage.PostgresStore, error) {
	if err := storage.RunMigrations(cfg.Database.DSN()); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return storage.NewPostgresStore(cfg.Database)
}
