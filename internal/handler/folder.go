package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type FolderHandler struct {
	Handler
	folderService *service.FolderService
}

func NewFolderHandler(s *server.Server, folderService *service.FolderService) *FolderHandler {
	return &FolderHandler{
		Handler:       NewHandler(s),
		folderService: folderService,
	}
}

func (h *FolderHandler) CreateFolder(c echo.Context, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.folderService.CreateFolder(c.Request().Context(), userID, req)
}

func (h *FolderHandler) ListFolders(c echo.Context, _ *dto.EmptyRequest) (*dto.FolderListResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.folderService.ListFolders(c.Request().Context(), userID)
}

func (h *FolderHandler) UpdateFolder(c echo.Context, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.folderService.UpdateFolder(c.Request().Context(), userID, req)
}

func (h *FolderHandler) DeleteFolder(c echo.Context, req *dto.FolderIDRequest) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	return h.folderService.DeleteFolder(c.Request().Context(), userID, req.FolderID)
}
