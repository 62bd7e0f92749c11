// Package openai provides an analyzer backed by the OpenAI API using the official SDK.
// It implements the domain.Analyzer interface and handles conversion between
// domain types and SDK types.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/davidbz/tenancheck/internal/domain"
	"github.com/davidbz/tenancheck/internal/observability"
)

// Provider implements the domain.Analyzer interface for OpenAI.
type Provider struct {
	client          openai.Client
	name            string
	supportedModels map[string]struct{}
	maxTokens       int
}

// NewProvider creates a new OpenAI analyzer.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client:          openai.NewClient(opts...),
		name:            "openai",
		supportedModels: buildModelSet(SupportedModels()),
		maxTokens:       config.MaxTokens,
	}, nil
}

// Analyze sends the document for review and parses the structured verdict.
func (p *Provider) Analyze(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if req == nil {
		return nil, errors.New("request cannot be nil")
	}

	if _, ok := p.supportedModels[req.Model]; !ok {
		return nil, fmt.Errorf("model %s is not supported by openai analyzer", req.Model)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API")

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(req))
	if err != nil {
		logger.Error("OpenAI API call failed", observability.Error(err))
		return nil, fmt.Errorf("OpenAI API call failed: %w", err)
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return p.toDomainResult(req, resp)
}

// Name returns the analyzer identifier.
func (p *Provider) Name() string {
	return p.name
}

// IsModelSupported checks if the analyzer supports the given model.
func (p *Provider) IsModelSupported(_ context.Context, model string) bool {
	_, ok := p.supportedModels[model]
	return ok
}

// SupportedModels returns the models this analyzer serves.
func (p *Provider) SupportedModels(_ context.Context) []string {
	return SupportedModels()
}

// toSDKParams converts a domain request to SDK ChatCompletionNewParams.
func (p *Provider) toSDKParams(req *domain.AnalysisRequest) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt(req)),
		},
		Temperature: openai.Float(0),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	}

	if p.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.maxTokens))
	}

	return params
}

// toDomainResult converts an SDK response to a domain result. The requested
// model is kept so pricing matches even when the API reports a dated snapshot.
func (p *Provider) toDomainResult(
	req *domain.AnalysisRequest,
	resp *openai.ChatCompletion,
) (*domain.AnalysisResult, error) {
	if len(resp.Choices) == 0 {
		return nil, errors.New("OpenAI returned no choices")
	}

	verdict, err := parseVerdict(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	return &domain.AnalysisResult{
		ID:              resp.ID,
		Model:           req.Model,
		Provider:        p.name,
		Summary:         verdict.Summary,
		ComplianceScore: verdict.ComplianceScore,
		Issues:          verdict.Issues,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		CompletedAt: time.Now(),
	}, nil
}
