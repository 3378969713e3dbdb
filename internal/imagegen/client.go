// Package imagegen talks to the OpenAI API to generate illustrated
// portraits and tidy up spoken descriptions.
package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

var (
	ErrNoAPIKey      = errors.New("openai api key not configured")
	ErrEmptyResponse = errors.New("openai returned no result")
)

type Config struct {
	APIKey     string
	BaseURL    string
	ImageModel string
	ChatModel  string
	Timeout    time.Duration
}

type Client struct {
	client     *openai.Client
	imageModel string
	chatModel  string
	timeout    time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	c := &Client{
		client:     openai.NewClientWithConfig(config),
		imageModel: cfg.ImageModel,
		chatModel:  cfg.ChatModel,
		timeout:    cfg.Timeout,
	}
	if c.imageModel == "" {
		c.imageModel = openai.CreateImageModelDallE3
	}
	if c.chatModel == "" {
		c.chatModel = openai.GPT4oMini
	}
	if c.timeout == 0 {
		c.timeout = 60 * time.Second
	}
	return c, nil
}

// GenerateImage returns PNG bytes for a portrait of the described person.
func (c *Client) GenerateImage(ctx context.Context, style IllustrationStyle, description string, keywords []string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         BuildPrompt(style, description, keywords),
		Model:          c.imageModel,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, ErrEmptyResponse
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return data, nil
}

const editPrompt = `You are helping someone remember a person they met. They recorded a voice memo describing this person, but it's informal and may be rambling. Turn it into a clean, concise 1-2 sentence description.

Person's name: %s
Keywords to preserve: %s
Raw voice memo transcript: "%s"

Rules:
1. Write in third person.
2. Keep it to 1-2 sentences.
3. Include the key details naturally (age, profession, location, distinguishing features).
4. Do NOT add any information not in the transcript.
5. Plain text only, no markdown.

Respond with ONLY the edited description.`

// EditDescription rewrites a raw transcript into a short third-person
// description.
func (c *Client) EditDescription(ctx context.Context, transcript string, keywords []string, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(editPrompt, name, strings.Join(keywords, ", "), transcript)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxCompletionTokens: 150,
		Temperature:         0.3,
	})
	if err != nil {
		return "", fmt.Errorf("edit description: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
