package service

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/lib/ai"
	"github.com/corecord/corecord-backend/internal/model"
)

// passthroughTx runs fn on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// recordingTx runs fn on the caller's context and counts how each
// transaction ended.
type recordingTx struct {
	commits   int
	rollbacks int
}

func (t *recordingTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		t.rollbacks++
		return err
	}
	t.commits++
	return nil
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) FindByProviderID(ctx context.Context, providerID string) (*model.User, error) {
	args := m.Called(ctx, providerID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) ExistsByProviderID(ctx context.Context, providerID string) (bool, error) {
	args := m.Called(ctx, providerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFolderRepo struct{ mock.Mock }

func (m *mockFolderRepo) Create(ctx context.Context, folder *model.Folder) error {
	return m.Called(ctx, folder).Error(0)
}

func (m *mockFolderRepo) FindByID(ctx context.Context, id int64) (*model.Folder, error) {
	args := m.Called(ctx, id)
	folder, _ := args.Get(0).(*model.Folder)
	return folder, args.Error(1)
}

func (m *mockFolderRepo) ListByUserID(ctx context.Context, userID int64) ([]model.Folder, error) {
	args := m.Called(ctx, userID)
	folders, _ := args.Get(0).([]model.Folder)
	return folders, args.Error(1)
}

func (m *mockFolderRepo) ExistsByUserIDAndTitle(ctx context.Context, userID int64, title string) (bool, error) {
	args := m.Called(ctx, userID, title)
	return args.Bool(0), args.Error(1)
}

func (m *mockFolderRepo) UpdateTitle(ctx context.Context, id int64, title string) error {
	return m.Called(ctx, id, title).Error(0)
}

func (m *mockFolderRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRecordRepo struct{ mock.Mock }

func (m *mockRecordRepo) Create(ctx context.Context, record *model.Record) error {
	return m.Called(ctx, record).Error(0)
}

func (m *mockRecordRepo) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*model.Record)
	return record, args.Error(1)
}

func (m *mockRecordRepo) ListByUserID(ctx context.Context, userID int64, folderID *int64) ([]model.Record, error) {
	args := m.Called(ctx, userID, folderID)
	records, _ := args.Get(0).([]model.Record)
	return records, args.Error(1)
}

func (m *mockRecordRepo) CountByUserID(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockRecordRepo) UpdateFolder(ctx context.Context, id, folderID int64) error {
	return m.Called(ctx, id, folderID).Error(0)
}

func (m *mockRecordRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAnalysisRepo struct{ mock.Mock }

func (m *mockAnalysisRepo) Create(ctx context.Context, analysis *model.Analysis) error {
	return m.Called(ctx, analysis).Error(0)
}

func (m *mockAnalysisRepo) FindByID(ctx context.Context, id int64) (*model.Analysis, error) {
	args := m.Called(ctx, id)
	analysis, _ := args.Get(0).(*model.Analysis)
	return analysis, args.Error(1)
}

func (m *mockAnalysisRepo) FindByRecordID(ctx context.Context, recordID int64) (*model.Analysis, error) {
	args := m.Called(ctx, recordID)
	analysis, _ := args.Get(0).(*model.Analysis)
	return analysis, args.Error(1)
}

func (m *mockAnalysisRepo) Update(ctx context.Context, analysis *model.Analysis) error {
	return m.Called(ctx, analysis).Error(0)
}

func (m *mockAnalysisRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAbilityRepo struct{ mock.Mock }

func (m *mockAbilityRepo) Save(ctx context.Context, ability *model.Ability) error {
	return m.Called(ctx, ability).Error(0)
}

func (m *mockAbilityRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAbilityRepo) CountByUserID(ctx context.Context, userID int64) ([]model.KeywordCount, error) {
	args := m.Called(ctx, userID)
	counts, _ := args.Get(0).([]model.KeywordCount)
	return counts, args.Error(1)
}

func (m *mockAbilityRepo) FindKeywordsByUserID(ctx context.Context, userID int64) ([]model.Keyword, error) {
	args := m.Called(ctx, userID)
	keywords, _ := args.Get(0).([]model.Keyword)
	return keywords, args.Error(1)
}

type mockRefreshTokenRepo struct{ mock.Mock }

func (m *mockRefreshTokenRepo) Save(ctx context.Context, token model.RefreshToken, ttl time.Duration) error {
	return m.Called(ctx, token, ttl).Error(0)
}

func (m *mockRefreshTokenRepo) Find(ctx context.Context, token string) (*model.RefreshToken, error) {
	args := m.Called(ctx, token)
	stored, _ := args.Get(0).(*model.RefreshToken)
	return stored, args.Error(1)
}

func (m *mockRefreshTokenRepo) Delete(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

type mockEnqueuer struct{ mock.Mock }

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

type mockIdentity struct{ mock.Mock }

func (m *mockIdentity) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *mockIdentity) PrimaryEmail(ctx context.Context, providerID string) (string, error) {
	args := m.Called(ctx, providerID)
	return args.String(0), args.Error(1)
}

type mockAnalyzer struct{ mock.Mock }

func (m *mockAnalyzer) Analyze(ctx context.Context, content string) (*ai.Result, error) {
	args := m.Called(ctx, content)
	result, _ := args.Get(0).(*ai.Result)
	return result, args.Error(1)
}

type mockChatRoomRepo struct{ mock.Mock }

func (m *mockChatRoomRepo) Create(ctx context.Context, room *model.ChatRoom) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockChatRoomRepo) FindByID(ctx context.Context, id int64) (*model.ChatRoom, error) {
	args := m.Called(ctx, id)
	room, _ := args.Get(0).(*model.ChatRoom)
	return room, args.Error(1)
}

func (m *mockChatRoomRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockChatRepo struct{ mock.Mock }

func (m *mockChatRepo) Create(ctx context.Context, chat *model.Chat) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *mockChatRepo) ListByChatRoomID(ctx context.Context, chatRoomID int64) ([]model.Chat, error) {
	args := m.Called(ctx, chatRoomID)
	chats, _ := args.Get(0).([]model.Chat)
	return chats, args.Error(1)
}

type mockChatter struct{ mock.Mock }

func (m *mockChatter) Reply(ctx context.Context, history []ai.Message) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

func (m *mockChatter) Summarize(ctx context.Context, history []ai.Message) (string, error) {
	args := m.Called(ctx, history)
	return args.String(0), args.Error(1)
}

type mockRecordCreator struct{ mock.Mock }

func (m *mockRecordCreator) CreateRecord(ctx context.Context, userID int64, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	args := m.Called(ctx, userID, req)
	resp, _ := args.Get(0).(*dto.RecordResponse)
	return resp, args.Error(1)
}
