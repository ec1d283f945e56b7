package converter

import (
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/model"
)

// ToAnalysis builds an analysis of record with no abilities yet.
func ToAnalysis(content, comment string, record *model.Record) model.Analysis {
	return model.Analysis{
		RecordID:  record.ID,
		Content:   content,
		Comment:   comment,
		Abilities: []model.Ability{},
	}
}

// ToAbility attaches keyword and content to analysis and user by id.
func ToAbility(keyword model.Keyword, content string, analysis *model.Analysis, user *model.User) model.Ability {
	return model.Ability{
		Keyword:    keyword,
		Content:    content,
		AnalysisID: analysis.ID,
		UserID:     user.ID,
	}
}

func ToAbilityDto(ability *model.Ability) dto.AbilityResponse {
	return dto.AbilityResponse{
		Keyword: ability.Keyword.Label(),
		Content: ability.Content,
	}
}

func ToAnalysisDto(analysis *model.Analysis, record *model.Record) dto.AnalysisResponse {
	abilities := make([]dto.AbilityResponse, 0, len(analysis.Abilities))
	for i := range analysis.Abilities {
		abilities = append(abilities, ToAbilityDto(&analysis.Abilities[i]))
	}

	return dto.AnalysisResponse{
		AnalysisID:     analysis.ID,
		RecordID:       record.ID,
		RecordTitle:    record.Title,
		RecordContent:  record.Content,
		AbilityDtoList: abilities,
		Comment:        analysis.Comment,
		CreatedAt:      formatDate(analysis.CreatedAt),
	}
}

func ToKeywordListDto(keywords []model.Keyword) dto.KeywordListResponse {
	labels := make([]string, 0, len(keywords))
	for _, k := range keywords {
		labels = append(labels, k.Label())
	}
	return dto.KeywordListResponse{KeywordList: labels}
}

// ToKeywordGraphDto computes each keyword's share of total, rounded to
// one decimal place. counts must already be in display order.
func ToKeywordGraphDto(counts []model.KeywordCount) dto.KeywordGraphResponse {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	items := make([]dto.KeywordGraphItem, 0, len(counts))
	for _, c := range counts {
		percent := 0.0
		if total > 0 {
			percent = float64(int(float64(c.Count)*1000/float64(total)+0.5)) / 10
		}
		items = append(items, dto.KeywordGraphItem{
			Keyword: c.Keyword.Label(),
			Count:   c.Count,
			Percent: percent,
		})
	}
	return dto.KeywordGraphResponse{KeywordGraphDtoList: items}
}
