package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"horror-oracle/internal/domain"
	"horror-oracle/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// Backend wraps a langchaingo model behind the domain.GenerationBackend
// contract. Every call is bounded by the configured timeout; transport
// failures come back as BACKEND_UNAVAILABLE so the caller can fall through
// to the next tier.
type Backend struct {
	name    string
	model   llms.Model
	timeout time.Duration
}

// NewOllamaBackend creates the primary generation tier against an
// Ollama-compatible server.
func NewOllamaBackend(serverURL, modelName string, timeout time.Duration) (*Backend, error) {
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}

	model, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(modelName),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, err
	}

	return &Backend{name: "ollama", model: model, timeout: timeout}, nil
}

// NewOpenAIBackend creates the secondary generation tier against the
// OpenAI API.
func NewOpenAIBackend(apiKey, modelName string, timeout time.Duration) (*Backend, error) {
	model, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(modelName),
	)
	if err != nil {
		return nil, err
	}

	return &Backend{name: "openai", model: model, timeout: timeout}, nil
}

// Name implements domain.GenerationBackend.
func (b *Backend) Name() string {
	return b.name
}

// Complete implements domain.GenerationBackend.
func (b *Backend) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	l := logger.Get()

	callCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, userPrompt),
	}

	resp, err := b.model.GenerateContent(callCtx, messages, llms.WithTemperature(0.6))
	if err != nil {
		l.Warn("Generation backend call failed",
			zap.String("backend", b.name),
			zap.Error(err))
		return "", domain.NewBackendUnavailableError(err)
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewSchemaViolationError("backend returned no choices", nil)
	}

	return CleanResponse(resp.Choices[0].Content), nil
}

// CleanResponse strips reasoning tags and markdown code fences that chat
// models wrap around JSON payloads.
func CleanResponse(response string) string {
	s := strings.TrimSpace(response)
	if thinkStart := strings.Index(s, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(s, "</think>"); thinkEnd != -1 {
			s = s[thinkEnd+len("</think>"):]
		}
	}
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
