package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/corecord/corecord-backend/internal/config"
)

// MaxTranscriptRunes bounds a chat summary so it fits a record.
const MaxTranscriptRunes = 500

// Message is one turn of a chat, oldest first.
type Message struct {
	FromUser bool
	Content  string
}

type Chatter interface {
	// Reply answers the last user message of history.
	Reply(ctx context.Context, history []Message) (string, error)
	// Summarize condenses what the user said into record content of at
	// most MaxTranscriptRunes runes.
	Summarize(ctx context.Context, history []Message) (string, error)
}

// Greeting opens every chat room.
func Greeting(nickName string) string {
	return fmt.Sprintf("안녕하세요 %s님! 오늘은 어떤 경험을 기록하고 싶으신가요? 편하게 이야기해 주세요.", nickName)
}

// NewChatter returns an OpenAIChatter when an API key is configured and a
// GuideChatter otherwise.
func NewChatter(cfg *config.IntegrationConfig, logger *zerolog.Logger) Chatter {
	guide := NewGuideChatter()
	if cfg.OpenAIAPIKey == "" {
		logger.Info().Msg("OpenAI API key not provided, using guide questions for chat")
		return guide
	}

	return &OpenAIChatter{
		client:      openai.NewClient(cfg.OpenAIAPIKey),
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.OpenAIMaxTokens,
		temperature: cfg.OpenAITemperature,
		fallback:    guide,
		logger:      logger,
	}
}

const (
	chatSystemPrompt = `당신은 사용자가 자신의 경험을 구체적으로 떠올리도록 돕는 인터뷰어입니다.
상황, 맡은 역할, 행동, 결과, 배운 점이 드러나도록 한 번에 하나씩 짧게 질문하세요.
답변은 세 문장을 넘기지 마세요.`

	summarySystemPrompt = `다음 대화에서 사용자가 말한 경험을 1인칭 경험 기록으로 정리하세요.
%d자 이내의 평문으로만 답하고, 대화에 없는 내용은 지어내지 마세요.`
)

// OpenAIChatter drives the chat with a chat-completion model and falls
// back to a GuideChatter when a call fails.
type OpenAIChatter struct {
	client      chatCompleter
	model       string
	maxTokens   int
	temperature float64
	fallback    Chatter
	logger      *zerolog.Logger
}

func toOpenAIMessages(history []Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		role := openai.ChatMessageRoleAssistant
		if m.FromUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}
	return messages
}

func (c *OpenAIChatter) complete(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: float32(c.temperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return content, nil
}

func (c *OpenAIChatter) Reply(ctx context.Context, history []Message) (string, error) {
	messages := append([]openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: chatSystemPrompt},
	}, toOpenAIMessages(history)...)

	reply, err := c.complete(ctx, messages)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to get OpenAI chat reply, falling back to guide questions")
		return c.fallback.Reply(ctx, history)
	}
	return reply, nil
}

func (c *OpenAIChatter) Summarize(ctx context.Context, history []Message) (string, error) {
	messages := append([]openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: fmt.Sprintf(summarySystemPrompt, MaxTranscriptRunes)},
	}, toOpenAIMessages(history)...)

	summary, err := c.complete(ctx, messages)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to get OpenAI chat summary, falling back to transcript")
		return c.fallback.Summarize(ctx, history)
	}
	return truncateRunes(summary, MaxTranscriptRunes), nil
}

var guideQuestions = []string{
	"그 경험은 어떤 상황에서 시작되었나요?",
	"그때 맡았던 역할은 무엇이었나요?",
	"문제를 해결하기 위해 구체적으로 어떤 행동을 하셨나요?",
	"그 결과는 어땠나요? 수치나 변화가 있었다면 알려주세요.",
	"이 경험을 통해 무엇을 배우셨나요?",
}

// GuideChatter walks the user through a fixed list of interview questions
// and summarizes by joining the user's own messages. It never fails.
type GuideChatter struct{}

func NewGuideChatter() *GuideChatter {
	return &GuideChatter{}
}

func userMessages(history []Message) []string {
	var out []string
	for _, m := range history {
		if m.FromUser {
			if content := strings.TrimSpace(m.Content); content != "" {
				out = append(out, content)
			}
		}
	}
	return out
}

// Reply asks the next guide question for every user answer so far, then
// suggests saving the chat.
func (g *GuideChatter) Reply(_ context.Context, history []Message) (string, error) {
	answered := len(userMessages(history))
	if answered == 0 {
		return guideQuestions[0], nil
	}
	if answered > len(guideQuestions) {
		return "좋아요! 이제 대화를 경험 기록으로 저장해 보세요.", nil
	}
	return guideQuestions[answered-1], nil
}

func (g *GuideChatter) Summarize(_ context.Context, history []Message) (string, error) {
	return truncateRunes(strings.Join(userMessages(history), " "), MaxTranscriptRunes), nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
