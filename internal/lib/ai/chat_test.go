package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/config"
)

func newTestChatter(client chatCompleter) *OpenAIChatter {
	logger := zerolog.Nop()
	return &OpenAIChatter{
		client:   client,
		model:    "gpt-4o-mini",
		fallback: NewGuideChatter(),
		logger:   &logger,
	}
}

var sampleHistory = []Message{
	{FromUser: false, Content: Greeting("kim")},
	{FromUser: true, Content: "동아리에서 축제 부스를 운영했어요."},
}

func TestOpenAIChatter_ReplySendsHistory(t *testing.T) {
	client := new(mockCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
		return len(req.Messages) == 3 &&
			req.Messages[0].Role == openai.ChatMessageRoleSystem &&
			req.Messages[1].Role == openai.ChatMessageRoleAssistant &&
			req.Messages[2].Role == openai.ChatMessageRoleUser &&
			req.Messages[2].Content == sampleHistory[1].Content
	})).Return(completion("  어떤 역할을 맡으셨나요?  "), nil)

	reply, err := newTestChatter(client).Reply(context.Background(), sampleHistory)

	require.NoError(t, err)
	assert.Equal(t, "어떤 역할을 맡으셨나요?", reply)
	client.AssertExpectations(t)
}

func TestOpenAIChatter_ReplyFallsBackOnError(t *testing.T) {
	client := new(mockCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(openai.ChatCompletionResponse{}, errors.New("timeout"))

	reply, err := newTestChatter(client).Reply(context.Background(), sampleHistory)

	require.NoError(t, err)
	assert.Equal(t, guideQuestions[0], reply)
}

func TestOpenAIChatter_SummarizeTruncates(t *testing.T) {
	client := new(mockCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).
		Return(completion(strings.Repeat("가", MaxTranscriptRunes+20)), nil)

	summary, err := newTestChatter(client).Summarize(context.Background(), sampleHistory)

	require.NoError(t, err)
	assert.Equal(t, MaxTranscriptRunes, utf8.RuneCountInString(summary))
}

func TestOpenAIChatter_SummarizeFallsBackOnEmptyCompletion(t *testing.T) {
	client := new(mockCompleter)
	client.On("CreateChatCompletion", mock.Anything, mock.Anything).Return(completion(""), nil)

	summary, err := newTestChatter(client).Summarize(context.Background(), sampleHistory)

	require.NoError(t, err)
	assert.Equal(t, sampleHistory[1].Content, summary)
}

func TestGuideChatter_ReplyWalksQuestions(t *testing.T) {
	g := NewGuideChatter()
	history := []Message{{Content: Greeting("kim")}}

	for i := range guideQuestions {
		history = append(history, Message{FromUser: true, Content: "answer"})
		reply, err := g.Reply(context.Background(), history)
		require.NoError(t, err)
		assert.Equal(t, guideQuestions[i], reply)
		history = append(history, Message{Content: reply})
	}

	history = append(history, Message{FromUser: true, Content: "answer"})
	reply, err := g.Reply(context.Background(), history)
	require.NoError(t, err)
	assert.Contains(t, reply, "저장")
}

func TestGuideChatter_SummarizeKeepsUserMessagesOnly(t *testing.T) {
	summary, err := NewGuideChatter().Summarize(context.Background(), []Message{
		{Content: "질문"},
		{FromUser: true, Content: " 첫 번째 답 "},
		{Content: "다음 질문"},
		{FromUser: true, Content: "두 번째 답"},
		{FromUser: true, Content: "   "},
	})

	require.NoError(t, err)
	assert.Equal(t, "첫 번째 답 두 번째 답", summary)
}

func TestNewChatter_WithoutKeyUsesGuide(t *testing.T) {
	logger := zerolog.Nop()

	assert.IsType(t, &GuideChatter{}, NewChatter(&config.IntegrationConfig{}, &logger))
}
