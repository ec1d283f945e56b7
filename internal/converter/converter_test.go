package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/model"
)

func TestToAbility(t *testing.T) {
	analysis := &model.Analysis{ID: 11}
	user := &model.User{ID: 7}

	ability := ToAbility(model.KeywordLeadership, "led a team of four", analysis, user)

	assert.Equal(t, model.KeywordLeadership, ability.Keyword)
	assert.Equal(t, int64(11), ability.AnalysisID)
	assert.Equal(t, int64(7), ability.UserID)
	assert.Empty(t, analysis.Abilities, "building an ability does not attach it")
}

func TestToAnalysisDto(t *testing.T) {
	record := &model.Record{ID: 5, Title: "Hackathon", Content: "We shipped a prototype"}
	analysis := &model.Analysis{
		ID:        9,
		RecordID:  5,
		Comment:   "Strong collaboration",
		CreatedAt: time.Date(2024, 11, 3, 15, 4, 0, 0, time.UTC),
		Abilities: []model.Ability{
			{Keyword: model.KeywordCommunication, Content: "explained the design"},
			{Keyword: model.KeywordExecution, Content: "delivered on time"},
		},
	}

	got := ToAnalysisDto(analysis, record)

	assert.Equal(t, int64(9), got.AnalysisID)
	assert.Equal(t, int64(5), got.RecordID)
	assert.Equal(t, "Hackathon", got.RecordTitle)
	assert.Equal(t, "We shipped a prototype", got.RecordContent)
	assert.Equal(t, "2024.11.03", got.CreatedAt)
	require.Len(t, got.AbilityDtoList, 2)
	assert.Equal(t, "커뮤니케이션", got.AbilityDtoList[0].Keyword)
	assert.Equal(t, "실행력", got.AbilityDtoList[1].Keyword)
}

func TestToAnalysisDto_NoAbilitiesEncodesEmptyList(t *testing.T) {
	got := ToAnalysisDto(&model.Analysis{}, &model.Record{})

	assert.NotNil(t, got.AbilityDtoList)
	assert.Empty(t, got.AbilityDtoList)
}

func TestToKeywordGraphDto(t *testing.T) {
	got := ToKeywordGraphDto([]model.KeywordCount{
		{Keyword: model.KeywordPlanning, Count: 2},
		{Keyword: model.KeywordCreativity, Count: 1},
	})

	require.Len(t, got.KeywordGraphDtoList, 2)
	assert.Equal(t, "기획력", got.KeywordGraphDtoList[0].Keyword)
	assert.InDelta(t, 66.7, got.KeywordGraphDtoList[0].Percent, 0.001)
	assert.InDelta(t, 33.3, got.KeywordGraphDtoList[1].Percent, 0.001)
}

func TestToUserInfoDto(t *testing.T) {
	got := ToUserInfoDto(&model.User{NickName: "코어", Status: model.StatusWorker}, 4)

	assert.Equal(t, "코어", got.NickName)
	assert.Equal(t, "직장인", got.Status)
	assert.Equal(t, 4, got.RecordCount)
}

func TestToRecordListDto(t *testing.T) {
	folderID := int64(2)
	got := ToRecordListDto([]model.Record{{ID: 1, Type: model.RecordTypeMemo, FolderID: &folderID}})

	require.Len(t, got.RecordDtoList, 1)
	assert.Equal(t, "MEMO", got.RecordDtoList[0].RecordType)
	assert.Equal(t, &folderID, got.RecordDtoList[0].FolderID)
}

func TestToChatListDtoAndMessages(t *testing.T) {
	created := time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC)
	chats := []model.Chat{
		{ID: 1, ChatRoomID: 4, Author: model.ChatAuthorAI, Content: "hello", CreatedAt: created},
		{ID: 2, ChatRoomID: 4, Author: model.ChatAuthorUser, Content: "I ran a booth", CreatedAt: created},
	}

	list := ToChatListDto(chats)
	require.Len(t, list.ChatDtoList, 2)
	assert.Equal(t, "AI", list.ChatDtoList[0].Author)
	assert.Equal(t, "2024.11.03", list.ChatDtoList[1].CreatedAt)

	messages := ToMessages(chats)
	require.Len(t, messages, 2)
	assert.False(t, messages[0].FromUser)
	assert.True(t, messages[1].FromUser)
	assert.Equal(t, "I ran a booth", messages[1].Content)
}
