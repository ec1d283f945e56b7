package repository

import (
	"github.com/corecord/corecord-backend/internal/server"
)

type Repositories struct {
	User         *UserRepository
	Folder       *FolderRepository
	Record       *RecordRepository
	Analysis     *AnalysisRepository
	Ability      *AbilityRepository
	ChatRoom     *ChatRoomRepository
	Chat         *ChatRepository
	RefreshToken *RefreshTokenRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		User:         NewUserRepository(s.DB.Pool),
		Folder:       NewFolderRepository(s.DB.Pool),
		Record:       NewRecordRepository(s.DB.Pool),
		Analysis:     NewAnalysisRepository(s.DB.Pool),
		Ability:      NewAbilityRepository(s.DB.Pool),
		ChatRoom:     NewChatRoomRepository(s.DB.Pool),
		Chat:         NewChatRepository(s.DB.Pool),
		RefreshToken: NewRefreshTokenRepository(s.Redis),
	}
}
