package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

type WelcomeMailer interface {
	SendWelcomeEmail(to, nickName string) error
}

// RecordAnalyzer is implemented by the analysis service.
type RecordAnalyzer interface {
	AnalyzeRecordInBackground(ctx context.Context, userID, recordID int64) error
}

// InitHandlers injects the task handler dependencies.
func (j *JobService) InitHandlers(mailer WelcomeMailer, analyzer RecordAnalyzer) {
	j.mailer = mailer
	j.analyzer = analyzer
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.mailer.SendWelcomeEmail(p.To, p.NickName); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")
	return nil
}

func (j *JobService) handleAnalyzeRecordTask(ctx context.Context, t *asynq.Task) error {
	var p AnalyzeRecordPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal analyze record payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", "analysis").
		Int64("user_id", p.UserID).
		Int64("record_id", p.RecordID).
		Logger()

	logger.Info().Msg("Processing record analysis task")

	if err := j.analyzer.AnalyzeRecordInBackground(ctx, p.UserID, p.RecordID); err != nil {
		logger.Error().Err(err).Msg("Failed to analyze record")
		return err
	}

	logger.Info().Msg("Successfully analyzed record")
	return nil
}
