// Package anyllm implements the scenario provider on top of
// github.com/mozilla-ai/any-llm-go, a unified multi-provider LLM interface
// (OpenAI, Anthropic, Gemini, Ollama, DeepSeek, Mistral, Groq, and more).
//
// Usage:
//
//	c, err := anyllm.New("gemini", "gemini-2.0-flash")
//	c, err := anyllm.New("openai", "gpt-4o-mini", anyllmlib.WithAPIKey("sk-..."))
package anyllm

import (
	"context"
	"fmt"
	"strings"

	anyllmlib "github.com/mozilla-ai/any-llm-go"
	"github.com/mozilla-ai/any-llm-go/providers/anthropic"
	"github.com/mozilla-ai/any-llm-go/providers/deepseek"
	"github.com/mozilla-ai/any-llm-go/providers/gemini"
	"github.com/mozilla-ai/any-llm-go/providers/groq"
	"github.com/mozilla-ai/any-llm-go/providers/mistral"
	"github.com/mozilla-ai/any-llm-go/providers/ollama"
	anyllmoai "github.com/mozilla-ai/any-llm-go/providers/openai"

	"github.com/ksenzov/perspective-painters/internal/game"
)

// scenarioTemperature keeps generated scenarios varied; hints stay cooler so
// the coaching voice is consistent.
const (
	scenarioTemperature = 0.9
	hintTemperature     = 0.6
	maxReplyTokens      = 1024
)

// Client implements game.Provider by wrapping an any-llm-go backend.
type Client struct {
	backend anyllmlib.Provider
	model   string
}

// New creates a Client for the named backend.
//
// providerName is one of: "openai", "anthropic", "gemini", "ollama",
// "deepseek", "mistral", "groq". model is the model identifier (e.g.
// "gemini-2.0-flash", "gpt-4o-mini").
//
// opts are any-llm-go options such as anyllmlib.WithAPIKey or
// anyllmlib.WithBaseURL. Without an API key option the backend falls back to
// its usual environment variable (GEMINI_API_KEY, OPENAI_API_KEY, ...).
func New(providerName, model string, opts ...anyllmlib.Option) (*Client, error) {
	if providerName == "" {
		return nil, fmt.Errorf("anyllm: providerName must not be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("anyllm: model must not be empty")
	}

	backend, err := createBackend(providerName, opts...)
	if err != nil {
		return nil, fmt.Errorf("anyllm: create %q backend: %w", providerName, err)
	}

	return &Client{backend: backend, model: model}, nil
}

// createBackend creates the underlying any-llm-go provider.
func createBackend(providerName string, opts ...anyllmlib.Option) (anyllmlib.Provider, error) {
	switch strings.ToLower(providerName) {
	case "openai":
		return anyllmoai.New(opts...)
	case "anthropic":
		return anthropic.New(opts...)
	case "gemini":
		return gemini.New(opts...)
	case "ollama":
		return ollama.New(opts...)
	case "deepseek":
		return deepseek.New(opts...)
	case "mistral":
		return mistral.New(opts...)
	case "groq":
		return groq.New(opts...)
	default:
		return nil, fmt.Errorf("unsupported provider %q; supported: openai, anthropic, gemini, ollama, deepseek, mistral, groq", providerName)
	}
}

// GenerateScenario implements game.Provider. The reply is parsed as JSON
// with character key order preserved; structural validation is left to the
// session.
func (c *Client) GenerateScenario(ctx context.Context) (*game.Scenario, error) {
	reply, err := c.complete(ctx, scenarioPrompt, scenarioTemperature)
	if err != nil {
		return nil, err
	}
	return DecodeScenario(reply)
}

// GenerateHint implements game.Provider.
func (c *Client) GenerateHint(ctx context.Context, req game.HintRequest) (string, error) {
	reply, err := c.complete(ctx, hintPrompt(req.Goal, req.CharacterName, req.CharacterThought), hintTemperature)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// complete sends a single system+user exchange and returns the first
// candidate's text. Request failures map to game.ErrTransport, an answer
// without usable text to game.ErrMalformed.
func (c *Client) complete(ctx context.Context, userPrompt string, temperature float64) (string, error) {
	t := temperature
	mt := maxReplyTokens
	params := anyllmlib.CompletionParams{
		Model: c.model,
		Messages: []anyllmlib.Message{
			{Role: anyllmlib.RoleSystem, Content: systemPrompt},
			{Role: anyllmlib.RoleUser, Content: userPrompt},
		},
		Temperature: &t,
		MaxTokens:   &mt,
	}

	resp, err := c.backend.Completion(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", game.ErrTransport, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no candidates in reply", game.ErrMalformed)
	}

	content := resp.Choices[0].Message.ContentString()
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty candidate text", game.ErrMalformed)
	}
	return content, nil
}
