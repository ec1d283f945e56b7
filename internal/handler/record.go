package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type RecordHandler struct {
	Handler
	recordService *service.RecordService
}

func NewRecordHandler(s *server.Server, recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		Handler:       NewHandler(s),
		recordService: recordService,
	}
}

func (h *RecordHandler) CreateRecord(c echo.Context, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.CreateRecord(c.Request().Context(), userID, req)
}

func (h *RecordHandler) GetRecord(c echo.Context, req *dto.RecordIDRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.GetRecord(c.Request().Context(), userID, req.RecordID)
}

// ListRecords lists the records of ?folderId, or every record without it.
func (h *RecordHandler) ListRecords(c echo.Context, req *dto.ListRecordsRequest) (*dto.RecordListResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.ListRecords(c.Request().Context(), userID, req.FolderID)
}

func (h *RecordHandler) MoveRecord(c echo.Context, req *dto.MoveRecordRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.MoveRecord(c.Request().Context(), userID, req)
}

func (h *RecordHandler) SaveTmpRecord(c echo.Context, req *dto.SaveTmpRecordRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.SaveTmpRecord(c.Request().Context(), userID, req)
}

func (h *RecordHandler) PopTmpRecord(c echo.Context, req *dto.TmpRecordRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.recordService.PopTmpRecord(c.Request().Context(), userID, req.RecordType)
}
