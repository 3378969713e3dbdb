package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	NATS     NATSConfig     `yaml:"nats"`
	MinIO    MinIOConfig    `yaml:"minio"`
	Sketch   SketchConfig   `yaml:"sketch"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Review   ReviewConfig   `yaml:"review"`
	Worker   WorkerConfig   `yaml:"worker"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
	// MaxUploadMB caps photo and audio uploads.
	MaxUploadMB int `yaml:"max_upload_mb"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	MaxConns int    `yaml:"max_conns"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name)
}

type NATSConfig struct {
	URL string `yaml:"url"`
	// Async sends sketch work to the worker instead of rendering inline.
	Async bool `yaml:"async"`
}

type MinIOConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type SketchConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	// Illustration is the default AI illustration style.
	Illustration string `yaml:"illustration"`
}

type OpenAIConfig struct {
	Enabled    bool          `yaml:"enabled"`
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url"`
	ImageModel string        `yaml:"image_model"`
	ChatModel  string        `yaml:"chat_model"`
	Timeout    time.Duration `yaml:"timeout"`
	// EditDescriptions rewrites transcripts into a short description.
	EditDescriptions bool `yaml:"edit_descriptions"`
}

type ReviewConfig struct {
	QueueLimit  int `yaml:"queue_limit"`
	NearDueDays int `yaml:"near_due_days"`
	// SearchThreshold is the minimum cosine similarity for feature search.
	SearchThreshold float64 `yaml:"search_threshold"`
}

type WorkerConfig struct {
	Count       int `yaml:"count"`
	MetricsPort int `yaml:"metrics_port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads config from YAML file and applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 10
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 20
	}
	if cfg.MinIO.Bucket == "" {
		cfg.MinIO.Bucket = "remember"
	}
	if cfg.Sketch.Width == 0 {
		cfg.Sketch.Width = 200
	}
	if cfg.Sketch.Height == 0 {
		cfg.Sketch.Height = 200
	}
	if cfg.Sketch.Scale == 0 {
		cfg.Sketch.Scale = 3
	}
	if cfg.Sketch.Illustration == "" {
		cfg.Sketch.Illustration = "polaroid"
	}
	if cfg.OpenAI.Timeout == 0 {
		cfg.OpenAI.Timeout = 60 * time.Second
	}
	if cfg.Review.QueueLimit == 0 {
		cfg.Review.QueueLimit = 5
	}
	if cfg.Review.NearDueDays == 0 {
		cfg.Review.NearDueDays = 2
	}
	if cfg.Review.SearchThreshold == 0 {
		cfg.Review.SearchThreshold = 0.5
	}
	if cfg.Worker.Count == 0 {
		cfg.Worker.Count = 4
	}
	if cfg.Worker.MetricsPort == 0 {
		cfg.Worker.MetricsPort = 8082
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func applyEnvOverrides(cfg *Config) {
	envInt("REMEMBER_SERVER_PORT", &cfg.Server.Port)
	envString("REMEMBER_API_KEY", &cfg.Server.APIKey)
	envString("REMEMBER_DB_HOST", &cfg.Database.Host)
	envInt("REMEMBER_DB_PORT", &cfg.Database.Port)
	envString("REMEMBER_DB_NAME", &cfg.Database.Name)
	envString("REMEMBER_DB_USER", &cfg.Database.User)
	envString("REMEMBER_DB_PASSWORD", &cfg.Database.Password)
	envString("REMEMBER_NATS_URL", &cfg.NATS.URL)
	envBool("REMEMBER_NATS_ASYNC", &cfg.NATS.Async)
	envString("REMEMBER_MINIO_ENDPOINT", &cfg.MinIO.Endpoint)
	envString("REMEMBER_MINIO_ACCESS_KEY", &cfg.MinIO.AccessKey)
	envString("REMEMBER_MINIO_SECRET_KEY", &cfg.MinIO.SecretKey)
	envString("REMEMBER_MINIO_BUCKET", &cfg.MinIO.Bucket)
	envString("REMEMBER_SKETCH_ILLUSTRATION", &cfg.Sketch.Illustration)
	envString("REMEMBER_OPENAI_API_KEY", &cfg.OpenAI.APIKey)
	envString("REMEMBER_OPENAI_BASE_URL", &cfg.OpenAI.BaseURL)
	envBool("REMEMBER_OPENAI_ENABLED", &cfg.OpenAI.Enabled)
	envInt("REMEMBER_WORKER_COUNT", &cfg.Worker.Count)
	envString("REMEMBER_LOG_LEVEL", &cfg.Logging.Level)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
