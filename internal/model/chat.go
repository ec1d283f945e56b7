package model

import "time"

// ChatAuthor tells who wrote a chat message.
type ChatAuthor string

const (
	ChatAuthorUser ChatAuthor = "USER"
	ChatAuthorAI   ChatAuthor = "AI"
)

// ChatRoom is a conversation in which the assistant helps the user recall
// an experience before it is saved as a CHAT record.
type ChatRoom struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Chat struct {
	ID         int64      `json:"id" db:"id"`
	ChatRoomID int64      `json:"chatRoomId" db:"chat_room_id"`
	Author     ChatAuthor `json:"author" db:"author"`
	Content    string     `json:"content" db:"content"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
}
