package service

import (
	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/lib/ai"
	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/repository"
	"github.com/corecord/corecord-backend/internal/server"
)

type Services struct {
	Auth     *AuthService
	Token    *TokenService
	User     *UserService
	Folder   *FolderService
	Record   *RecordService
	Analysis *AnalysisService
	Ability  *AbilityService
	Chat     *ChatService
	Issuer   *token.Issuer
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	tx := database.NewTransactor(s.DB.Pool)
	issuer := token.NewIssuer(
		s.Config.Auth.JWTSecret,
		s.Config.Auth.AccessTokenExpiration,
		s.Config.Auth.RefreshTokenExpiration,
	)
	analyzer := ai.NewAnalyzer(&s.Config.Integration, s.Logger)

	authService := NewAuthService(s)
	tokenService := NewTokenService(issuer, repos.RefreshToken)
	abilityService := NewAbilityService(repos.Ability, repos.User)
	recordService := NewRecordService(
		tx, repos.User, repos.Folder, repos.Record, s.Job.Client, s.Logger,
	)

	return &Services{
		Auth:  authService,
		Token: tokenService,
		User: NewUserService(
			tx, repos.User, repos.Record, tokenService, authService, s.Job.Client, s.Logger,
		),
		Folder: NewFolderService(tx, repos.User, repos.Folder),
		Record: recordService,
		Analysis: NewAnalysisService(
			tx, repos.User, repos.Record, repos.Analysis, abilityService, analyzer, s.Logger,
		),
		Ability: abilityService,
		Chat: NewChatService(
			tx, repos.User, repos.ChatRoom, repos.Chat,
			ai.NewChatter(&s.Config.Integration, s.Logger), recordService, s.Logger,
		),
		Issuer: issuer,
	}
}
