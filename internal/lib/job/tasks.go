package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome       = "email:welcome"
	TaskAnalyzeRecord = "analysis:record"
)

type WelcomeEmailPayload struct {
	To       string `json:"to"`
	NickName string `json:"nick_name"`
}

func NewWelcomeEmailTask(to, nickName string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{To: to, NickName: nickName})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

type AnalyzeRecordPayload struct {
	UserID   int64 `json:"user_id"`
	RecordID int64 `json:"record_id"`
}

func NewAnalyzeRecordTask(userID, recordID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(AnalyzeRecordPayload{UserID: userID, RecordID: recordID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskAnalyzeRecord,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(60*time.Second),
	), nil
}
