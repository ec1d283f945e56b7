// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data. Mutating operations run inside one database
// transaction; domain failures are returned as errs.HTTPError values
// built from the errs catalogs.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"

	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/model"
)

type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByProviderID(ctx context.Context, providerID string) (*model.User, error)
	ExistsByProviderID(ctx context.Context, providerID string) (bool, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
}

type FolderRepository interface {
	Create(ctx context.Context, folder *model.Folder) error
	FindByID(ctx context.Context, id int64) (*model.Folder, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Folder, error)
	ExistsByUserIDAndTitle(ctx context.Context, userID int64, title string) (bool, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	Delete(ctx context.Context, id int64) error
}

type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	FindByID(ctx context.Context, id int64) (*model.Record, error)
	ListByUserID(ctx context.Context, userID int64, folderID *int64) ([]model.Record, error)
	CountByUserID(ctx context.Context, userID int64) (int, error)
	UpdateFolder(ctx context.Context, id, folderID int64) error
	Delete(ctx context.Context, id int64) error
}

type AnalysisRepository interface {
	Create(ctx context.Context, analysis *model.Analysis) error
	FindByID(ctx context.Context, id int64) (*model.Analysis, error)
	FindByRecordID(ctx context.Context, recordID int64) (*model.Analysis, error)
	Update(ctx context.Context, analysis *model.Analysis) error
	Delete(ctx context.Context, id int64) error
}

type AbilityRepository interface {
	Save(ctx context.Context, ability *model.Ability) error
	Delete(ctx context.Context, id int64) error
	CountByUserID(ctx context.Context, userID int64) ([]model.KeywordCount, error)
	FindKeywordsByUserID(ctx context.Context, userID int64) ([]model.Keyword, error)
}

type ChatRoomRepository interface {
	Create(ctx context.Context, room *model.ChatRoom) error
	FindByID(ctx context.Context, id int64) (*model.ChatRoom, error)
	Delete(ctx context.Context, id int64) error
}

type ChatRepository interface {
	Create(ctx context.Context, chat *model.Chat) error
	ListByChatRoomID(ctx context.Context, chatRoomID int64) ([]model.Chat, error)
}

type RefreshTokenRepository interface {
	Save(ctx context.Context, token model.RefreshToken, ttl time.Duration) error
	Find(ctx context.Context, token string) (*model.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// IdentityProvider verifies provider-issued session tokens.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (string, error)
	PrimaryEmail(ctx context.Context, providerID string) (string, error)
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// findUser resolves the authenticated user. A token that outlived its user
// is treated as unauthenticated.
func findUser(ctx context.Context, users UserRepository, id int64) (*model.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.New(errs.GeneralUnauthorized)
		}
		return nil, err
	}
	return user, nil
}
