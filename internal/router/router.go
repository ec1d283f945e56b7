// Package router builds the echo instance: global middleware, the system
// routes and the /api routes.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/handler"
	"github.com/corecord/corecord-backend/internal/middleware"
)

func NewRouter(h *handler.Handlers, m *middleware.Middlewares) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = m.Global.GlobalErrorHandler

	router.Use(
		m.RateLimit.Limit(),
		m.Global.CORS(),
		m.Global.Secure(),
		middleware.RequestID(),
		m.Tracing.NewRelicMiddleware(),
		m.Tracing.EnhanceTracing(),
		m.ContextEnhancer.EnhanceContext(),
		m.Global.RequestLogger(),
		m.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	// EnhanceContext runs again after RequireAuth so the request logger
	// carries the user id.
	protected := []echo.MiddlewareFunc{m.Auth.RequireAuth, m.ContextEnhancer.EnhanceContext()}

	api := router.Group("/api")
	registerUserRoutes(api, h.User, protected)
	registerFolderRoutes(api.Group("/folders", protected...), h.Folder)
	registerRecordRoutes(api.Group("/records", protected...), h.Record)
	registerAnalysisRoutes(api.Group("/analysis", protected...), h.Analysis)
	registerAbilityRoutes(api.Group("/abilities", protected...), h.Analysis)
	registerChatRoutes(api.Group("/chat", protected...), h.Chat)

	return router
}

func registerUserRoutes(api *echo.Group, h *handler.UserHandler, protected []echo.MiddlewareFunc) {
	api.POST("/token", handler.HandleNoContent(h.Handler, h.ReissueAccessToken, http.StatusNoContent, &dto.EmptyRequest{}))

	users := api.Group("/users")
	users.POST("/register", handler.Handle(h.Handler, h.RegisterUser, http.StatusCreated, &dto.RegisterUserRequest{}))
	users.POST("/login", handler.HandleNoContent(h.Handler, h.LoginUser, http.StatusNoContent, &dto.EmptyRequest{}))
	users.POST("/logout", handler.HandleNoContent(h.Handler, h.LogoutUser, http.StatusNoContent, &dto.EmptyRequest{}))
	users.DELETE("", handler.HandleNoContent(h.Handler, h.DeleteUser, http.StatusNoContent, &dto.EmptyRequest{}), protected...)
	users.PATCH("", handler.Handle(h.Handler, h.UpdateUser, http.StatusOK, &dto.UpdateUserRequest{}), protected...)
	users.GET("/info", handler.Handle(h.Handler, h.GetUserInfo, http.StatusOK, &dto.EmptyRequest{}), protected...)
}

func registerFolderRoutes(folders *echo.Group, h *handler.FolderHandler) {
	folders.POST("", handler.Handle(h.Handler, h.CreateFolder, http.StatusCreated, &dto.CreateFolderRequest{}))
	folders.GET("", handler.Handle(h.Handler, h.ListFolders, http.StatusOK, &dto.EmptyRequest{}))
	folders.PATCH("/:folderId", handler.Handle(h.Handler, h.UpdateFolder, http.StatusOK, &dto.UpdateFolderRequest{}))
	folders.DELETE("/:folderId", handler.HandleNoContent(h.Handler, h.DeleteFolder, http.StatusNoContent, &dto.FolderIDRequest{}))
}

func registerRecordRoutes(records *echo.Group, h *handler.RecordHandler) {
	records.POST("", handler.Handle(h.Handler, h.CreateRecord, http.StatusCreated, &dto.CreateRecordRequest{}))
	records.GET("", handler.Handle(h.Handler, h.ListRecords, http.StatusOK, &dto.ListRecordsRequest{}))

	records.POST("/tmp", handler.Handle(h.Handler, h.SaveTmpRecord, http.StatusCreated, &dto.SaveTmpRecordRequest{}))
	records.GET("/tmp", handler.Handle(h.Handler, h.PopTmpRecord, http.StatusOK, &dto.TmpRecordRequest{}))

	records.GET("/:recordId", handler.Handle(h.Handler, h.GetRecord, http.StatusOK, &dto.RecordIDRequest{}))
	records.PATCH("/:recordId/folder", handler.Handle(h.Handler, h.MoveRecord, http.StatusOK, &dto.MoveRecordRequest{}))
}

func registerAnalysisRoutes(analysis *echo.Group, h *handler.AnalysisHandler) {
	analysis.POST("/:recordId", handler.Handle(h.Handler, h.AnalyzeRecord, http.StatusOK, &dto.RecordIDRequest{}))
	analysis.GET("/:analysisId", handler.Handle(h.Handler, h.GetAnalysis, http.StatusOK, &dto.AnalysisIDRequest{}))
	analysis.PATCH("/:analysisId", handler.Handle(h.Handler, h.UpdateAnalysis, http.StatusOK, &dto.UpdateAnalysisRequest{}))
	analysis.DELETE("/:analysisId", handler.HandleNoContent(h.Handler, h.DeleteAnalysis, http.StatusNoContent, &dto.AnalysisIDRequest{}))
}

func registerAbilityRoutes(abilities *echo.Group, h *handler.AnalysisHandler) {
	abilities.GET("/keywords", handler.Handle(h.Handler, h.GetKeywordList, http.StatusOK, &dto.EmptyRequest{}))
	abilities.GET("/graph", handler.Handle(h.Handler, h.GetKeywordGraph, http.StatusOK, &dto.EmptyRequest{}))
}

func registerChatRoutes(chat *echo.Group, h *handler.ChatHandler) {
	chat.POST("", handler.Handle(h.Handler, h.CreateChatRoom, http.StatusCreated, &dto.EmptyRequest{}))
	chat.POST("/:chatRoomId", handler.Handle(h.Handler, h.CreateChat, http.StatusCreated, &dto.CreateChatRequest{}))
	chat.GET("/:chatRoomId", handler.Handle(h.Handler, h.GetChatList, http.StatusOK, &dto.ChatRoomIDRequest{}))
	chat.DELETE("/:chatRoomId", handler.HandleNoContent(h.Handler, h.DeleteChatRoom, http.StatusNoContent, &dto.ChatRoomIDRequest{}))
	chat.POST("/:chatRoomId/record", handler.Handle(h.Handler, h.SaveChatRecord, http.StatusCreated, &dto.SaveChatRecordRequest{}))
}
