package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type ChatHandler struct {
	Handler
	chatService *service.ChatService
}

func NewChatHandler(s *server.Server, chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		Handler:     NewHandler(s),
		chatService: chatService,
	}
}

func (h *ChatHandler) CreateChatRoom(c echo.Context, _ *dto.EmptyRequest) (*dto.ChatRoomResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.chatService.CreateChatRoom(c.Request().Context(), userID)
}

func (h *ChatHandler) CreateChat(c echo.Context, req *dto.CreateChatRequest) (*dto.ChatListResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.chatService.CreateChat(c.Request().Context(), userID, req)
}

func (h *ChatHandler) GetChatList(c echo.Context, req *dto.ChatRoomIDRequest) (*dto.ChatListResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.chatService.GetChatList(c.Request().Context(), userID, req.ChatRoomID)
}

func (h *ChatHandler) DeleteChatRoom(c echo.Context, req *dto.ChatRoomIDRequest) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	return h.chatService.DeleteChatRoom(c.Request().Context(), userID, req.ChatRoomID)
}

func (h *ChatHandler) SaveChatRecord(c echo.Context, req *dto.SaveChatRecordRequest) (*dto.RecordResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.chatService.SaveChatRecord(c.Request().Context(), userID, req)
}
