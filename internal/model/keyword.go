package model

type Keyword string

const (
	KeywordCommunication      Keyword = "COMMUNICATION"
	KeywordLeadership         Keyword = "LEADERSHIP"
	KeywordCollaboration      Keyword = "COLLABORATION"
	KeywordProblemSolving     Keyword = "PROBLEM_SOLVING"
	KeywordCreativity         Keyword = "CREATIVITY"
	KeywordAdaptability       Keyword = "ADAPTABILITY"
	KeywordAnalyticalThinking Keyword = "ANALYTICAL_THINKING"
	KeywordResponsibility     Keyword = "RESPONSIBILITY"
	KeywordPlanning           Keyword = "PLANNING"
	KeywordExecution          Keyword = "EXECUTION"
)

// keywords is the registration order used whenever abilities are sorted.
var keywords = []Keyword{
	KeywordCommunication,
	KeywordLeadership,
	KeywordCollaboration,
	KeywordProblemSolving,
	KeywordCreativity,
	KeywordAdaptability,
	KeywordAnalyticalThinking,
	KeywordResponsibility,
	KeywordPlanning,
	KeywordExecution,
}

var keywordLabels = map[Keyword]string{
	KeywordCommunication:      "커뮤니케이션",
	KeywordLeadership:         "리더십",
	KeywordCollaboration:      "협업",
	KeywordProblemSolving:     "문제해결",
	KeywordCreativity:         "창의성",
	KeywordAdaptability:       "적응력",
	KeywordAnalyticalThinking: "분석력",
	KeywordResponsibility:     "책임감",
	KeywordPlanning:           "기획력",
	KeywordExecution:          "실행력",
}

var (
	keywordsByLabel = make(map[string]Keyword, len(keywords))
	keywordOrder    = make(map[Keyword]int, len(keywords))
)

func init() {
	for i, k := range keywords {
		keywordsByLabel[keywordLabels[k]] = k
		keywordOrder[k] = i
	}
}

// Keywords returns every Keyword in registration order.
func Keywords() []Keyword {
	return append([]Keyword(nil), keywords...)
}

// Label is the display text of the keyword.
func (k Keyword) Label() string {
	return keywordLabels[k]
}

// Order is the registration index, or len(Keywords()) for unknown values.
func (k Keyword) Order() int {
	if i, ok := keywordOrder[k]; ok {
		return i
	}
	return len(keywords)
}

func (k Keyword) Valid() bool {
	_, ok := keywordOrder[k]
	return ok
}

// KeywordFromLabel resolves a display label. Matching is exact.
func KeywordFromLabel(label string) (Keyword, bool) {
	k, ok := keywordsByLabel[label]
	return k, ok
}
