package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/Nazarious-ucu/weatherbot-agent/internal/models"
)

const systemPrompt = "Extract only the city name from this query. Respond with only the city name, no explanation."

var errNoChoices = errors.New("no completion choices")

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type outcomeRecorder interface {
	ObserveExtraction(kind string)
}

type CityExtractor struct {
	api      chatCompleter
	model    string
	logger   *zap.Logger
	recorder outcomeRecorder
}

func New(api chatCompleter, model string, logger *zap.Logger, recorder outcomeRecorder) *CityExtractor {
	return &CityExtractor{api: api, model: model, logger: logger, recorder: recorder}
}

// NewOpenAIClient builds the go-openai client. An empty baseURL keeps the
// public endpoint.
func NewOpenAIClient(apiKey, baseURL string, httpClient *http.Client) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if base := strings.TrimSpace(baseURL); base != "" {
		cfg.BaseURL = base
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(cfg)
}

// Extract asks the model for the city named in query. It never fails: any
// error or empty answer yields a Fallback carrying the trimmed query.
func (e *CityExtractor) Extract(ctx context.Context, query string) models.Extraction {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return e.done(models.NewFallback(trimmed, nil))
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
	}

	resp, err := e.api.CreateChatCompletion(ctx, req)
	if err != nil {
		e.logger.Warn("city extraction failed, using raw query",
			zap.String("query", trimmed), zap.Error(err))
		return e.done(models.NewFallback(trimmed, fmt.Errorf("openai completion: %w", err)))
	}
	if len(resp.Choices) == 0 {
		e.logger.Warn("city extraction returned no choices, using raw query", zap.String("query", trimmed))
		return e.done(models.NewFallback(trimmed, errNoChoices))
	}

	city := strings.TrimSpace(resp.Choices[0].Message.Content)
	if city == "" {
		e.logger.Info("city extraction returned empty content, using raw query", zap.String("query", trimmed))
		return e.done(models.NewFallback(trimmed, nil))
	}

	e.logger.Debug("city extracted", zap.String("query", trimmed), zap.String("city", city))
	return e.done(models.NewExtracted(city))
}

// City is Extract without the outcome tag.
func (e *CityExtractor) City(ctx context.Context, query string) string {
	return e.Extract(ctx, query).City
}

func (e *CityExtractor) done(ex models.Extraction) models.Extraction {
	if e.recorder != nil {
		e.recorder.ObserveExtraction(ex.Kind.String())
	}
	return ex
}
