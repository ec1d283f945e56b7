package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corecord/corecord-backend/internal/database"
	"github.com/corecord/corecord-backend/internal/model"
)

type ChatRoomRepository struct {
	pool *pgxpool.Pool
}

func NewChatRoomRepository(pool *pgxpool.Pool) *ChatRoomRepository {
	return &ChatRoomRepository{pool: pool}
}

func (r *ChatRoomRepository) Create(ctx context.Context, room *model.ChatRoom) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chat_rooms (user_id)
		VALUES ($1)
		RETURNING id, created_at`,
		room.UserID,
	).Scan(&room.ID, &room.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chat room: %w", err)
	}
	return nil
}

func (r *ChatRoomRepository) FindByID(ctx context.Context, id int64) (*model.ChatRoom, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, created_at FROM chat_rooms WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat room: %w", err)
	}
	room, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.ChatRoom])
	if err != nil {
		return nil, wrapRow("chat_rooms", err)
	}
	return room, nil
}

// Delete removes the room together with its chats.
func (r *ChatRoomRepository) Delete(ctx context.Context, id int64) error {
	if _, err := database.Conn(ctx, r.pool).Exec(ctx, `DELETE FROM chat_rooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete chat room: %w", err)
	}
	return nil
}

type ChatRepository struct {
	pool *pgxpool.Pool
}

func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

func (r *ChatRepository) Create(ctx context.Context, chat *model.Chat) error {
	err := database.Conn(ctx, r.pool).QueryRow(ctx, `
		INSERT INTO chats (chat_room_id, author, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		chat.ChatRoomID, chat.Author, chat.Content,
	).Scan(&chat.ID, &chat.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// ListByChatRoomID returns the room's chats oldest first.
func (r *ChatRepository) ListByChatRoomID(ctx context.Context, chatRoomID int64) ([]model.Chat, error) {
	rows, err := database.Conn(ctx, r.pool).Query(ctx, `
		SELECT id, chat_room_id, author, content, created_at
		FROM chats
		WHERE chat_room_id = $1
		ORDER BY created_at, id`, chatRoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Chat])
}
