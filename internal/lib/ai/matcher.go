package ai

import (
	"context"
	"strings"

	"github.com/corecord/corecord-backend/internal/model"
)

// hints are lower-case fragments that suggest a keyword.
var hints = map[model.Keyword][]string{
	model.KeywordCommunication:      {"소통", "발표", "설득", "대화", "communicat", "present"},
	model.KeywordLeadership:         {"리더", "주도", "이끌", "팀장", "lead"},
	model.KeywordCollaboration:      {"협업", "협력", "함께", "팀워크", "collaborat", "teamwork"},
	model.KeywordProblemSolving:     {"해결", "문제", "개선", "디버깅", "solve", "fix"},
	model.KeywordCreativity:         {"아이디어", "창의", "새로운", "idea", "creative"},
	model.KeywordAdaptability:       {"적응", "변화", "전환", "adapt"},
	model.KeywordAnalyticalThinking: {"분석", "데이터", "지표", "analy", "data"},
	model.KeywordResponsibility:     {"책임", "마감", "끝까지", "responsib", "deadline"},
	model.KeywordPlanning:           {"기획", "계획", "일정", "plan"},
	model.KeywordExecution:          {"실행", "구현", "완성", "출시", "implement", "ship"},
}

// KeywordMatcher is a deterministic Analyzer that looks for hint words.
// It never calls out to a model and never fails.
type KeywordMatcher struct {
	maxKeywords int
}

func NewKeywordMatcher(maxKeywords int) *KeywordMatcher {
	return &KeywordMatcher{maxKeywords: maxKeywords}
}

func (m *KeywordMatcher) Analyze(_ context.Context, content string) (*Result, error) {
	lower := strings.ToLower(content)
	sentences := splitSentences(content)

	result := &Result{
		Content:  summarize(content),
		Keywords: make(map[string]string),
	}

	for _, k := range model.Keywords() {
		if m.maxKeywords > 0 && len(result.Keywords) >= m.maxKeywords {
			break
		}
		for _, hint := range hints[k] {
			if strings.Contains(lower, hint) {
				result.Keywords[k.Label()] = evidence(sentences, hint)
				break
			}
		}
	}

	// Every analysis carries at least one ability.
	if len(result.Keywords) == 0 {
		result.Keywords[model.KeywordExecution.Label()] = result.Content
	}

	result.Comment = "기록에서 드러난 역량을 정리했어요. 구체적인 수치나 결과를 더하면 더 설득력 있는 경험이 됩니다."
	return result, nil
}

func splitSentences(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '.' || r == '!' || r == '?' || r == '\n'
	})
}

// evidence returns the first sentence mentioning hint.
func evidence(sentences []string, hint string) string {
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), hint) {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

const summaryRunes = 100

func summarize(content string) string {
	trimmed := strings.TrimSpace(content)
	runes := []rune(trimmed)
	if len(runes) <= summaryRunes {
		return trimmed
	}
	return string(runes[:summaryRunes]) + "..."
}
