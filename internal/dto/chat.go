package dto

type ChatRoomIDRequest struct {
	ChatRoomID int64 `param:"chatRoomId" validate:"required,gt=0"`
}

func (r *ChatRoomIDRequest) Validate() error {
	return validate.Struct(r)
}

type CreateChatRequest struct {
	ChatRoomID int64  `param:"chatRoomId" validate:"required,gt=0"`
	Content    string `json:"content"`
}

func (r *CreateChatRequest) Validate() error {
	return validate.Struct(r)
}

// SaveChatRecordRequest files the room's conversation as a CHAT record.
type SaveChatRecordRequest struct {
	ChatRoomID int64  `param:"chatRoomId" validate:"required,gt=0"`
	Title      string `json:"title"`
	FolderID   int64  `json:"folderId" validate:"required,gt=0"`
}

func (r *SaveChatRecordRequest) Validate() error {
	return validate.Struct(r)
}

type ChatResponse struct {
	ChatID    int64  `json:"chatId"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

type ChatRoomResponse struct {
	ChatRoomID int64        `json:"chatRoomId"`
	FirstChat  ChatResponse `json:"firstChat"`
}

type ChatListResponse struct {
	ChatDtoList []ChatResponse `json:"chatDtoList"`
}
