package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/ai"
	"github.com/corecord/corecord-backend/internal/lib/utils"
	"github.com/corecord/corecord-backend/internal/model"
)

const maxChatContentLength = 500

// RecordCreator files records; *RecordService satisfies it.
type RecordCreator interface {
	CreateRecord(ctx context.Context, userID int64, req *dto.CreateRecordRequest) (*dto.RecordResponse, error)
}

// ChatService runs the interview chat that helps users write CHAT records.
type ChatService struct {
	tx      Transactor
	users   UserRepository
	rooms   ChatRoomRepository
	chats   ChatRepository
	chatter ai.Chatter
	records RecordCreator
	logger  *zerolog.Logger
}

func NewChatService(
	tx Transactor,
	users UserRepository,
	rooms ChatRoomRepository,
	chats ChatRepository,
	chatter ai.Chatter,
	records RecordCreator,
	logger *zerolog.Logger,
) *ChatService {
	return &ChatService{
		tx:      tx,
		users:   users,
		rooms:   rooms,
		chats:   chats,
		chatter: chatter,
		records: records,
		logger:  logger,
	}
}

// findOwnedChatRoom loads a chat room and checks that userID owns it.
func findOwnedChatRoom(ctx context.Context, rooms ChatRoomRepository, userID, chatRoomID int64) (*model.ChatRoom, error) {
	room, err := rooms.FindByID(ctx, chatRoomID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.New(errs.ChatRoomNotFound)
		}
		return nil, err
	}
	if room.UserID != userID {
		return nil, errs.New(errs.ChatRoomUnauthorized)
	}
	return room, nil
}

// CreateChatRoom opens a room with a greeting from the assistant.
func (s *ChatService) CreateChatRoom(ctx context.Context, userID int64) (*dto.ChatRoomResponse, error) {
	var (
		room     model.ChatRoom
		greeting model.Chat
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}

		room = model.ChatRoom{UserID: user.ID}
		if err := s.rooms.Create(ctx, &room); err != nil {
			return err
		}

		greeting = converter.ToChat(&room, model.ChatAuthorAI, ai.Greeting(user.NickName))
		return s.chats.Create(ctx, &greeting)
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToChatRoomDto(&room, &greeting)
	return &resp, nil
}

// CreateChat posts a user message and the assistant's reply. The model is
// asked outside the transaction; both messages are stored together.
func (s *ChatService) CreateChat(ctx context.Context, userID int64, req *dto.CreateChatRequest) (*dto.ChatListResponse, error) {
	if !utils.RuneLenBetween(req.Content, 1, maxChatContentLength) {
		return nil, errs.New(errs.ChatInvalidContent)
	}

	room, err := findOwnedChatRoom(ctx, s.rooms, userID, req.ChatRoomID)
	if err != nil {
		return nil, err
	}
	history, err := s.chats.ListByChatRoomID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	messages := append(converter.ToMessages(history), ai.Message{FromUser: true, Content: req.Content})
	reply, err := s.chatter.Reply(ctx, messages)
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_room_id", room.ID).Msg("failed to generate chat reply")
		return nil, errs.New(errs.ChatReplyFailed)
	}

	created := []model.Chat{
		converter.ToChat(room, model.ChatAuthorUser, req.Content),
		converter.ToChat(room, model.ChatAuthorAI, reply),
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for i := range created {
			if err := s.chats.Create(ctx, &created[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToChatListDto(created)
	return &resp, nil
}

func (s *ChatService) GetChatList(ctx context.Context, userID, chatRoomID int64) (*dto.ChatListResponse, error) {
	room, err := findOwnedChatRoom(ctx, s.rooms, userID, chatRoomID)
	if err != nil {
		return nil, err
	}

	chats, err := s.chats.ListByChatRoomID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToChatListDto(chats)
	return &resp, nil
}

func (s *ChatService) DeleteChatRoom(ctx context.Context, userID, chatRoomID int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		room, err := findOwnedChatRoom(ctx, s.rooms, userID, chatRoomID)
		if err != nil {
			return err
		}
		return s.rooms.Delete(ctx, room.ID)
	})
}

// SaveChatRecord condenses the conversation into a CHAT record filed in
// the requested folder. The record goes through the usual record rules and
// is analyzed like any other record.
func (s *ChatService) SaveChatRecord(ctx context.Context, userID int64, req *dto.SaveChatRecordRequest) (*dto.RecordResponse, error) {
	room, err := findOwnedChatRoom(ctx, s.rooms, userID, req.ChatRoomID)
	if err != nil {
		return nil, err
	}
	chats, err := s.chats.ListByChatRoomID(ctx, room.ID)
	if err != nil {
		return nil, err
	}

	messages := converter.ToMessages(chats)
	if !hasUserMessage(messages) {
		return nil, errs.New(errs.ChatEmptyTranscript)
	}

	content, err := s.chatter.Summarize(ctx, messages)
	if err != nil {
		s.logger.Error().Err(err).Int64("chat_room_id", room.ID).Msg("failed to summarize chat")
		return nil, errs.New(errs.ChatReplyFailed)
	}

	return s.records.CreateRecord(ctx, userID, &dto.CreateRecordRequest{
		Title:      req.Title,
		Content:    content,
		RecordType: string(model.RecordTypeChat),
		FolderID:   req.FolderID,
	})
}

func hasUserMessage(messages []ai.Message) bool {
	for _, m := range messages {
		if m.FromUser {
			return true
		}
	}
	return false
}
