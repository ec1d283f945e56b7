package handler

import (
	"github.com/corecord/corecord-backend/internal/lib/cookie"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	User     *UserHandler
	Folder   *FolderHandler
	Record   *RecordHandler
	Analysis *AnalysisHandler
	Chat     *ChatHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	cookies := newSession(
		cookie.NewFactory(s.Config.Auth.CookieDomain, s.Config.Auth.CookieInsecure),
		services.Issuer.AccessExpiration(),
		services.Issuer.RefreshExpiration(),
	)

	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		User:     NewUserHandler(s, services.User, services.Token, cookies),
		Folder:   NewFolderHandler(s, services.Folder),
		Record:   NewRecordHandler(s, services.Record),
		Analysis: NewAnalysisHandler(s, services.Analysis, services.Ability),
		Chat:     NewChatHandler(s, services.Chat),
	}
}
