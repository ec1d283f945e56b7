package dto

type AnalysisIDRequest struct {
	AnalysisID int64 `param:"analysisId" validate:"required,gt=0"`
}

func (r *AnalysisIDRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAnalysisRequest replaces the comment and/or the whole ability list.
// AbilityMap maps keyword labels to their content.
type UpdateAnalysisRequest struct {
	AnalysisID int64             `param:"analysisId" validate:"required,gt=0"`
	Comment    *string           `json:"comment"`
	AbilityMap map[string]string `json:"abilityMap" validate:"omitempty,dive,required"`
}

func (r *UpdateAnalysisRequest) Validate() error {
	return validate.Struct(r)
}

type AbilityResponse struct {
	Keyword string `json:"keyword"`
	Content string `json:"content"`
}

type AnalysisResponse struct {
	AnalysisID     int64             `json:"analysisId"`
	RecordID       int64             `json:"recordId"`
	RecordTitle    string            `json:"recordTitle"`
	RecordContent  string            `json:"recordContent"`
	AbilityDtoList []AbilityResponse `json:"abilityDtoList"`
	Comment        string            `json:"comment"`
	CreatedAt      string            `json:"createdAt"`
}

type KeywordListResponse struct {
	KeywordList []string `json:"keywordList"`
}

type KeywordGraphResponse struct {
	KeywordGraphDtoList []KeywordGraphItem `json:"keywordGraphDtoList"`
}

type KeywordGraphItem struct {
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}
