package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type AnalysisHandler struct {
	Handler
	analysisService *service.AnalysisService
	abilityService  *service.AbilityService
}

func NewAnalysisHandler(s *server.Server, analysisService *service.AnalysisService, abilityService *service.AbilityService) *AnalysisHandler {
	return &AnalysisHandler{
		Handler:         NewHandler(s),
		analysisService: analysisService,
		abilityService:  abilityService,
	}
}

// AnalyzeRecord runs the analysis synchronously. Records created through
// the API are also analyzed by a background job.
func (h *AnalysisHandler) AnalyzeRecord(c echo.Context, req *dto.RecordIDRequest) (*dto.AnalysisResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.analysisService.AnalyzeRecord(c.Request().Context(), userID, req.RecordID)
}

func (h *AnalysisHandler) GetAnalysis(c echo.Context, req *dto.AnalysisIDRequest) (*dto.AnalysisResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.analysisService.GetAnalysis(c.Request().Context(), userID, req.AnalysisID)
}

func (h *AnalysisHandler) UpdateAnalysis(c echo.Context, req *dto.UpdateAnalysisRequest) (*dto.AnalysisResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.analysisService.UpdateAnalysis(c.Request().Context(), userID, req)
}

func (h *AnalysisHandler) DeleteAnalysis(c echo.Context, req *dto.AnalysisIDRequest) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	return h.analysisService.DeleteAnalysis(c.Request().Context(), userID, req.AnalysisID)
}

func (h *AnalysisHandler) GetKeywordList(c echo.Context, _ *dto.EmptyRequest) (*dto.KeywordListResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.abilityService.GetKeywordList(c.Request().Context(), userID)
}

func (h *AnalysisHandler) GetKeywordGraph(c echo.Context, _ *dto.EmptyRequest) (*dto.KeywordGraphResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.abilityService.GetKeywordGraph(c.Request().Context(), userID)
}
