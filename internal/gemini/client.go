// Package gemini adapts the Google GenAI SDK to the three calls the proxy
// procedures need: single-shot generation, chat with replayed history and
// image+text analysis.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"

	"shuvoedward/Bible_reader/internal/data"
)

const (
	DefaultModel       = "gemini-1.5-pro"
	DefaultVisionModel = "gemini-1.5-pro-vision"
)

var ErrMissingAPIKey = errors.New("gemini: api key is required")

type Config struct {
	APIKey       string
	DefaultModel string
	VisionModel  string
	// BaseURL overrides the provider endpoint, used by tests.
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	genai        *genai.Client
	defaultModel string
	visionModel  string
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = DefaultModel
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = DefaultVisionModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		genai:        gc,
		defaultModel: cfg.DefaultModel,
		visionModel:  cfg.VisionModel,
	}, nil
}

func (c *Client) model(name string) string {
	if name == "" {
		return c.defaultModel
	}
	return name
}

// Generate runs a single-shot text generation.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	start := time.Now()
	resp, err := c.genai.Models.GenerateContent(ctx, c.model(model),
		genai.Text(prompt), nil)
	observe("generate", start, err)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Chat replays history as prior turns and sends message as the next user turn.
func (c *Client) Chat(ctx context.Context, model string, history []data.ChatMessage, message string) (string, error) {
	start := time.Now()

	chat, err := c.genai.Chats.Create(ctx, c.model(model), nil, toContents(history))
	if err != nil {
		observe("chat", start, err)
		return "", err
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: message})
	observe("chat", start, err)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// GenerateWithImage submits the prompt followed by the inline image bytes.
// The SDK base64-encodes the bytes on the wire.
func (c *Client) GenerateWithImage(ctx context.Context, model, prompt, mimeType string, image []byte) (string, error) {
	if model == "" {
		model = c.visionModel
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	start := time.Now()
	resp, err := c.genai.Models.GenerateContent(ctx, model, contents, nil)
	observe("image", start, err)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func toContents(messages []data.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		parts := make([]*genai.Part, 0, len(m.Parts))
		for _, p := range m.Parts {
			parts = append(parts, genai.NewPartFromText(p.Text))
		}

		role := genai.Role(genai.RoleUser)
		if m.Role == data.RoleModel {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromParts(parts, role))
	}
	return contents
}
