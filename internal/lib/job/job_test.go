package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendWelcomeEmail(to, nickName string) error {
	return m.Called(to, nickName).Error(0)
}

type mockAnalyzer struct {
	mock.Mock
}

func (m *mockAnalyzer) AnalyzeRecordInBackground(ctx context.Context, userID, recordID int64) error {
	return m.Called(ctx, userID, recordID).Error(0)
}

func newTestJobService(mailer WelcomeMailer, analyzer RecordAnalyzer) *JobService {
	logger := zerolog.Nop()
	j := &JobService{logger: &logger}
	j.InitHandlers(mailer, analyzer)
	return j
}

func TestNewAnalyzeRecordTask(t *testing.T) {
	task, err := NewAnalyzeRecordTask(3, 9)
	require.NoError(t, err)

	assert.Equal(t, TaskAnalyzeRecord, task.Type())
	var p AnalyzeRecordPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, AnalyzeRecordPayload{UserID: 3, RecordID: 9}, p)
}

func TestMux_RoutesAnalyzeRecord(t *testing.T) {
	analyzer := new(mockAnalyzer)
	analyzer.On("AnalyzeRecordInBackground", mock.Anything, int64(3), int64(9)).Return(nil)
	j := newTestJobService(new(mockMailer), analyzer)

	task, err := NewAnalyzeRecordTask(3, 9)
	require.NoError(t, err)

	require.NoError(t, j.Mux().ProcessTask(context.Background(), task))
	analyzer.AssertExpectations(t)
}

func TestHandleWelcomeEmailTask(t *testing.T) {
	mailer := new(mockMailer)
	mailer.On("SendWelcomeEmail", "a@b.c", "코어").Return(errors.New("resend down"))
	j := newTestJobService(mailer, new(mockAnalyzer))

	task, err := NewWelcomeEmailTask("a@b.c", "코어")
	require.NoError(t, err)

	assert.EqualError(t, j.Mux().ProcessTask(context.Background(), task), "resend down")
	mailer.AssertExpectations(t)
}

func TestHandlers_MalformedPayloadSkipsRetry(t *testing.T) {
	j := newTestJobService(new(mockMailer), new(mockAnalyzer))

	err := j.Mux().ProcessTask(context.Background(), asynq.NewTask(TaskAnalyzeRecord, []byte("{")))

	assert.ErrorIs(t, err, asynq.SkipRetry)
}
