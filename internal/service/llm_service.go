package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voyagr/internal/analytics"
	"voyagr/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// LLMService wraps the GigaChat client behind the two narrative calls the
// insight flow needs. It owns prompt construction and response parsing;
// the numeric payloads come from the analytics package untouched.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a travel budget analyst. You receive compact JSON summaries of a traveler's spending and respond with short, concrete, friendly observations.

Rules:
- Base every statement strictly on the numbers provided. Never invent expenses, totals or dates.
- Amounts are already normalized into the trip's main currency; quote them with that currency code.
- Keep each insight to one or two sentences.
- Respond with valid JSON only, no markdown fences, no text before or after the JSON.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *LLMService) Close() {
	s.client.Close()
}

// GenerateInsights asks for narrative observations over a spending
// summary.
func (s *LLMService) GenerateInsights(ctx context.Context, summary analytics.SpendingSummary) ([]string, error) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`Analyze this travel spending summary and point out notable patterns (dominant categories, spending pace, anything unusual):

%s

Respond with JSON of the form {"insights": ["...", "..."]} containing 2 to 4 insights.`, payload)

	var parsed struct {
		Insights []string `json:"insights"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Insights) == 0 {
		return nil, fmt.Errorf("no insights in LLM response")
	}
	return parsed.Insights, nil
}

// GenerateForecast asks for a budget outlook over a forecast payload.
func (s *LLMService) GenerateForecast(ctx context.Context, input analytics.ForecastInput) (string, []string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", nil, err
	}

	prompt := fmt.Sprintf(`Given this trip budget status, forecast whether the traveler will stay within budget at the current daily pace, and flag any unusual recent expenses:

%s

Respond with JSON of the form {"forecast_text": "...", "anomalies": ["..."]}. The anomalies list may be empty.`, payload)

	var parsed struct {
		ForecastText string   `json:"forecast_text"`
		Anomalies    []string `json:"anomalies"`
	}
	if err := s.generateJSON(ctx, prompt, &parsed); err != nil {
		return "", nil, err
	}
	if parsed.ForecastText == "" {
		return "", nil, fmt.Errorf("no forecast text in LLM response")
	}
	return parsed.ForecastText, parsed.Anomalies, nil
}

// generateJSON runs one generation round and decodes the JSON object from
// the response, tolerating stray text around it.
func (s *LLMService) generateJSON(ctx context.Context, prompt string, out any) error {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no response from LLM")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		s.logger.Warn("LLM response contained no JSON object", zap.String("content", content))
		return fmt.Errorf("malformed LLM response")
	}

	if err := json.Unmarshal([]byte(content[start:end+1]), out); err != nil {
		return fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return nil
}
