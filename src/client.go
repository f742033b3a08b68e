// client.go
package adbot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

// Engine selects one of the two supported text-generation backends. The set
// is closed: adding a backend means adding a branch, not a registry.
type Engine string

const (
	EngineGemini Engine = "gemini"
	EngineOpenAI Engine = "openai"
)

const (
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultOpenAIModel = "gpt-4o"
)

// OpenAIModels are the suggested chat models for the OpenAI engine.
var OpenAIModels = []string{"gpt-4o", "gpt-4-turbo", "gpt-3.5-turbo"}

// Generator is the one logical operation both engines provide: text in,
// text out, with an optional image folded into the user turn.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string, img image.Image) (string, error)
}

// EngineConfig carries everything needed to talk to one backend. The key is
// held in memory only; it must never be logged or written to disk.
type EngineConfig struct {
	Engine Engine
	APIKey string
	Model  string

	// BaseURL and HTTPClient override the engine's defaults, mainly so
	// tests can point both branches at a stub server.
	BaseURL    string
	HTTPClient *http.Client
}

// Client normalizes the two backends behind Generator. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	engine     Engine
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient validates the engine config and returns a ready client. An empty
// model falls back to the engine default.
func NewClient(cfg EngineConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("api key is required")
	}

	model := cfg.Model
	switch cfg.Engine {
	case EngineGemini:
		if model == "" {
			model = DefaultGeminiModel
		}
	case EngineOpenAI:
		if model == "" {
			model = DefaultOpenAIModel
		}
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		engine:     cfg.Engine,
		apiKey:     cfg.APIKey,
		model:      model,
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

// Engine returns which backend this client talks to.
func (c *Client) Engine() Engine { return c.engine }

// Model returns the resolved model identifier.
func (c *Client) Model() string { return c.model }

// Generate issues one blocking completion call against the configured
// backend. Both branches receive the system prompt and the user prompt; img,
// when present, is re-encoded to JPEG and attached the way the backend wants
// it. Backend failures come back wrapped with the engine name and are
// terminal for this call, there is no retry.
func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, img image.Image) (string, error) {
	log.Debug().Str("engine", string(c.engine)).Str("model", c.model).
		Bool("has_image", img != nil).Msg("generation call")

	var (
		text string
		err  error
	)
	switch c.engine {
	case EngineGemini:
		text, err = c.generateGemini(ctx, systemPrompt, userPrompt, img)
	case EngineOpenAI:
		text, err = c.generateOpenAI(ctx, systemPrompt, userPrompt, img)
	default:
		return "", fmt.Errorf("unknown engine %q", c.engine)
	}
	if err != nil {
		return "", fmt.Errorf("%s api error: %w", c.engine, err)
	}
	return text, nil
}

// TestConnection runs a one-line round trip so the user can verify the key
// and model before committing to a real call.
func (c *Client) TestConnection(ctx context.Context) (string, error) {
	return c.Generate(ctx, "System", "Hello, say hi!", nil)
}
