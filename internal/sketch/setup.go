package sketch

import (
	"fmt"
	"log/slog"

	"github.com/your-org/remember/internal/config"
	"github.com/your-org/remember/internal/imagegen"
	"github.com/your-org/remember/internal/render"
)

// Setup builds the sketch service from config. The returned client is nil
// when OpenAI is disabled or could not be configured.
func Setup(cfg *config.Config, store ObjectStore) (*Service, *imagegen.Client, error) {
	renderer, err := render.New(render.Config{
		Width:  cfg.Sketch.Width,
		Height: cfg.Sketch.Height,
		Scale:  cfg.Sketch.Scale,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create renderer: %w", err)
	}

	illustration, err := imagegen.ParseStyle(cfg.Sketch.Illustration)
	if err != nil {
		return nil, nil, fmt.Errorf("sketch illustration: %w", err)
	}
	opts := []Option{WithDefaultIllustration(illustration)}

	var client *imagegen.Client
	if cfg.OpenAI.Enabled {
		client, err = imagegen.NewClient(imagegen.Config{
			APIKey:     cfg.OpenAI.APIKey,
			BaseURL:    cfg.OpenAI.BaseURL,
			ImageModel: cfg.OpenAI.ImageModel,
			ChatModel:  cfg.OpenAI.ChatModel,
			Timeout:    cfg.OpenAI.Timeout,
		})
		if err != nil {
			slog.Warn("openai disabled, sketches render locally", "error", err)
			client = nil
		} else {
			opts = append(opts, WithImageGenerator(client))
		}
	}

	return NewService(renderer, store, opts...), client, nil
}
