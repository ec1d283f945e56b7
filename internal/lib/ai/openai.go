package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/corecord/corecord-backend/internal/config"
	"github.com/corecord/corecord-backend/internal/model"
)

type openAIResponse struct {
	Content   string            `json:"content"`
	Comment   string            `json:"comment"`
	Abilities map[string]string `json:"abilities"`
}

type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIAnalyzer asks a chat model for a JSON analysis and falls back to
// a KeywordMatcher when the call or the decoding fails.
type OpenAIAnalyzer struct {
	client      chatCompleter
	model       string
	maxTokens   int
	temperature float64
	fallback    Analyzer
	logger      *zerolog.Logger
}

const maxKeywords = 3

// NewAnalyzer returns an OpenAIAnalyzer when an API key is configured and
// a KeywordMatcher otherwise.
func NewAnalyzer(cfg *config.IntegrationConfig, logger *zerolog.Logger) Analyzer {
	matcher := NewKeywordMatcher(maxKeywords)
	if cfg.OpenAIAPIKey == "" {
		logger.Info().Msg("OpenAI API key not provided, using keyword matcher for analysis")
		return matcher
	}

	return &OpenAIAnalyzer{
		client:      openai.NewClient(cfg.OpenAIAPIKey),
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.OpenAIMaxTokens,
		temperature: cfg.OpenAITemperature,
		fallback:    matcher,
		logger:      logger,
	}
}

func labels() string {
	keywords := model.Keywords()
	out := make([]string, len(keywords))
	for i, k := range keywords {
		out[i] = k.Label()
	}
	return strings.Join(out, ", ")
}

func buildPrompt(content string) string {
	return fmt.Sprintf(`다음 경험 기록을 분석해 주세요.
- content: 경험을 200자 이내로 요약
- comment: 경험에 대한 짧은 피드백
- abilities: 드러난 역량 최대 %d개. 키는 반드시 [%s] 중 하나이고, 값은 그 근거가 되는 한두 문장

아래 구조의 JSON 객체만 반환하세요:
{
    "content": "요약",
    "comment": "피드백",
    "abilities": {"역량 키워드": "근거"}
}

경험 기록: %s`, maxKeywords, labels(), content)
}

func (a *OpenAIAnalyzer) Analyze(ctx context.Context, content string) (*Result, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(content),
			},
		},
		MaxTokens:      a.maxTokens,
		Temperature:    float32(a.temperature),
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to get OpenAI analysis, falling back to keyword matcher")
		return a.fallback.Analyze(ctx, content)
	}
	if len(resp.Choices) == 0 {
		a.logger.Error().Msg("OpenAI returned no choices, falling back to keyword matcher")
		return a.fallback.Analyze(ctx, content)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	var parsed openAIResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil || len(parsed.Abilities) == 0 {
		a.logger.Error().Err(err).Str("response", raw).Msg("failed to parse OpenAI analysis, falling back to keyword matcher")
		return a.fallback.Analyze(ctx, content)
	}

	return &Result{
		Content:  parsed.Content,
		Comment:  parsed.Comment,
		Keywords: parsed.Abilities,
	}, nil
}
