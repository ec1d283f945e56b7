package converter

import (
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/lib/ai"
	"github.com/corecord/corecord-backend/internal/model"
)

func ToChat(room *model.ChatRoom, author model.ChatAuthor, content string) model.Chat {
	return model.Chat{
		ChatRoomID: room.ID,
		Author:     author,
		Content:    content,
	}
}

func ToChatDto(chat *model.Chat) dto.ChatResponse {
	return dto.ChatResponse{
		ChatID:    chat.ID,
		Author:    string(chat.Author),
		Content:   chat.Content,
		CreatedAt: formatDate(chat.CreatedAt),
	}
}

func ToChatRoomDto(room *model.ChatRoom, firstChat *model.Chat) dto.ChatRoomResponse {
	return dto.ChatRoomResponse{
		ChatRoomID: room.ID,
		FirstChat:  ToChatDto(firstChat),
	}
}

func ToChatListDto(chats []model.Chat) dto.ChatListResponse {
	list := make([]dto.ChatResponse, 0, len(chats))
	for i := range chats {
		list = append(list, ToChatDto(&chats[i]))
	}
	return dto.ChatListResponse{ChatDtoList: list}
}

// ToMessages turns stored chats into the history handed to a chat model.
func ToMessages(chats []model.Chat) []ai.Message {
	messages := make([]ai.Message, 0, len(chats))
	for _, c := range chats {
		messages = append(messages, ai.Message{
			FromUser: c.Author == model.ChatAuthorUser,
			Content:  c.Content,
		})
	}
	return messages
}
