package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/ai"
	"github.com/corecord/corecord-backend/internal/lib/utils"
	"github.com/corecord/corecord-backend/internal/model"
)

const maxAnalysisCommentLength = 200

type AnalysisService struct {
	tx        Transactor
	users     UserRepository
	records   RecordRepository
	analyses  AnalysisRepository
	abilities *AbilityService
	analyzer  ai.Analyzer
	logger    *zerolog.Logger
}

func NewAnalysisService(
	tx Transactor,
	users UserRepository,
	records RecordRepository,
	analyses AnalysisRepository,
	abilities *AbilityService,
	analyzer ai.Analyzer,
	logger *zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		tx:        tx,
		users:     users,
		records:   records,
		analyses:  analyses,
		abilities: abilities,
		analyzer:  analyzer,
		logger:    logger,
	}
}

// findOwnedAnalysis loads an analysis with its record and checks that
// userID owns the record.
func (s *AnalysisService) findOwnedAnalysis(ctx context.Context, userID, analysisID int64) (*model.Analysis, *model.Record, error) {
	analysis, err := s.analyses.FindByID(ctx, analysisID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, errs.New(errs.AnalysisNotFound)
		}
		return nil, nil, err
	}

	record, err := s.records.FindByID(ctx, analysis.RecordID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, errs.New(errs.AnalysisNotFound)
		}
		return nil, nil, err
	}
	if record.UserID != userID {
		return nil, nil, errs.New(errs.AnalysisUnauthorized)
	}
	return analysis, record, nil
}

// AnalyzeRecord runs the analyzer on the record and stores the result.
// An existing analysis of the record is overwritten, abilities included.
func (s *AnalysisService) AnalyzeRecord(ctx context.Context, userID, recordID int64) (*dto.AnalysisResponse, error) {
	record, err := findOwnedRecord(ctx, s.records, userID, recordID)
	if err != nil {
		return nil, err
	}

	result, err := s.analyzer.Analyze(ctx, record.Content)
	if err != nil {
		s.logger.Error().Err(err).Int64("record_id", record.ID).Msg("record analysis failed")
		return nil, errs.New(errs.AnalysisFailed)
	}

	var analysis *model.Analysis
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}

		analysis, err = s.analyses.FindByRecordID(ctx, record.ID)
		switch {
		case isNotFound(err):
			created := converter.ToAnalysis(result.Content, result.Comment, record)
			analysis = &created
			if err := s.analyses.Create(ctx, analysis); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			analysis.Content = result.Content
			analysis.Comment = result.Comment
			if err := s.analyses.Update(ctx, analysis); err != nil {
				return err
			}
			if err := s.abilities.DeleteOriginAbilityList(ctx, analysis); err != nil {
				return err
			}
		}

		return s.abilities.ParseAndSaveAbilities(ctx, result.Keywords, analysis, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int64("record_id", record.ID).
		Int64("analysis_id", analysis.ID).
		Int("abilities", len(analysis.Abilities)).
		Msg("record analyzed")

	resp := converter.ToAnalysisDto(analysis, record)
	return &resp, nil
}

// AnalyzeRecordInBackground is the job entry point. Client errors cannot
// succeed on retry and are marked to skip retries.
func (s *AnalysisService) AnalyzeRecordInBackground(ctx context.Context, userID, recordID int64) error {
	_, err := s.AnalyzeRecord(ctx, userID, recordID)
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	return err
}

func (s *AnalysisService) GetAnalysis(ctx context.Context, userID, analysisID int64) (*dto.AnalysisResponse, error) {
	analysis, record, err := s.findOwnedAnalysis(ctx, userID, analysisID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToAnalysisDto(analysis, record)
	return &resp, nil
}

// UpdateAnalysis changes the comment and, when AbilityMap is present,
// replaces every ability of the analysis.
func (s *AnalysisService) UpdateAnalysis(ctx context.Context, userID int64, req *dto.UpdateAnalysisRequest) (*dto.AnalysisResponse, error) {
	if req.Comment != nil && !utils.RuneLenBetween(*req.Comment, 1, maxAnalysisCommentLength) {
		return nil, errs.New(errs.AnalysisInvalidComment)
	}

	var (
		analysis *model.Analysis
		record   *model.Record
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		analysis, record, err = s.findOwnedAnalysis(ctx, userID, req.AnalysisID)
		if err != nil {
			return err
		}

		if req.Comment != nil {
			analysis.Comment = *req.Comment
			if err := s.analyses.Update(ctx, analysis); err != nil {
				return err
			}
		}

		if req.AbilityMap == nil {
			return nil
		}

		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}
		if err := s.abilities.DeleteOriginAbilityList(ctx, analysis); err != nil {
			return err
		}
		return s.abilities.ParseAndSaveAbilities(ctx, req.AbilityMap, analysis, user)
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToAnalysisDto(analysis, record)
	return &resp, nil
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, userID, analysisID int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		analysis, _, err := s.findOwnedAnalysis(ctx, userID, analysisID)
		if err != nil {
			return err
		}
		return s.analyses.Delete(ctx, analysis.ID)
	})
}
