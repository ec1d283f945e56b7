package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/job"
	"github.com/corecord/corecord-backend/internal/lib/utils"
	"github.com/corecord/corecord-backend/internal/model"
)

const (
	maxRecordTitleLength   = 50
	minRecordContentLength = 30
	maxRecordContentLength = 500
)

type RecordService struct {
	tx      Transactor
	users   UserRepository
	folders FolderRepository
	records RecordRepository
	jobs    TaskEnqueuer
	logger  *zerolog.Logger
}

func NewRecordService(
	tx Transactor,
	users UserRepository,
	folders FolderRepository,
	records RecordRepository,
	jobs TaskEnqueuer,
	logger *zerolog.Logger,
) *RecordService {
	return &RecordService{
		tx:      tx,
		users:   users,
		folders: folders,
		records: records,
		jobs:    jobs,
		logger:  logger,
	}
}

func parseRecordType(s string) (model.RecordType, error) {
	recordType, ok := model.ParseRecordType(s)
	if !ok {
		return "", errs.New(errs.RecordInvalidType)
	}
	return recordType, nil
}

// findOwnedRecord loads a record and checks that userID owns it.
func findOwnedRecord(ctx context.Context, records RecordRepository, userID, recordID int64) (*model.Record, error) {
	record, err := records.FindByID(ctx, recordID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.New(errs.RecordNotFound)
		}
		return nil, err
	}
	if record.UserID != userID {
		return nil, errs.New(errs.RecordUnauthorized)
	}
	return record, nil
}

// CreateRecord files a new record and schedules its analysis once the
// record is committed.
func (s *RecordService) CreateRecord(ctx context.Context, userID int64, req *dto.CreateRecordRequest) (*dto.RecordResponse, error) {
	if !utils.RuneLenBetween(req.Title, 1, maxRecordTitleLength) {
		return nil, errs.New(errs.RecordInvalidTitle)
	}
	if !utils.RuneLenBetween(req.Content, minRecordContentLength, maxRecordContentLength) {
		return nil, errs.New(errs.RecordInvalidContent)
	}
	recordType, err := parseRecordType(req.RecordType)
	if err != nil {
		return nil, err
	}

	var record model.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}
		folder, err := findOwnedFolder(ctx, s.folders, user.ID, req.FolderID)
		if err != nil {
			return err
		}

		record = converter.ToRecord(req.Title, req.Content, recordType, user, &folder.ID)
		return s.records.Create(ctx, &record)
	})
	if err != nil {
		return nil, err
	}

	s.enqueueAnalysis(ctx, userID, record.ID)

	resp := converter.ToRecordDto(&record)
	return &resp, nil
}

// enqueueAnalysis is best effort; the analysis can be requested again
// through the analysis endpoint.
func (s *RecordService) enqueueAnalysis(ctx context.Context, userID, recordID int64) {
	logger := s.logger.With().Int64("user_id", userID).Int64("record_id", recordID).Logger()

	task, err := job.NewAnalyzeRecordTask(userID, recordID)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create analysis task")
		return
	}
	if _, err := s.jobs.EnqueueContext(ctx, task); err != nil {
		logger.Error().Err(err).Msg("failed to enqueue analysis task")
	}
}

func (s *RecordService) GetRecord(ctx context.Context, userID, recordID int64) (*dto.RecordResponse, error) {
	record, err := findOwnedRecord(ctx, s.records, userID, recordID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToRecordDto(record)
	return &resp, nil
}

// ListRecords lists filed records, restricted to one folder when folderID
// is non-zero.
func (s *RecordService) ListRecords(ctx context.Context, userID, folderID int64) (*dto.RecordListResponse, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	var filter *int64
	if folderID != 0 {
		folder, err := findOwnedFolder(ctx, s.folders, user.ID, folderID)
		if err != nil {
			return nil, err
		}
		filter = &folder.ID
	}

	records, err := s.records.ListByUserID(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}

	resp := converter.ToRecordListDto(records)
	return &resp, nil
}

// MoveRecord files the record under another folder of the same user.
// Temporary records cannot be moved.
func (s *RecordService) MoveRecord(ctx context.Context, userID int64, req *dto.MoveRecordRequest) (*dto.RecordResponse, error) {
	var record *model.Record
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		record, err = findOwnedRecord(ctx, s.records, userID, req.RecordID)
		if err != nil {
			return err
		}
		if record.FolderID == nil {
			return errs.New(errs.RecordNotFound)
		}

		folder, err := findOwnedFolder(ctx, s.folders, userID, req.FolderID)
		if err != nil {
			return err
		}
		if err := s.records.UpdateFolder(ctx, record.ID, folder.ID); err != nil {
			return err
		}
		record.FolderID = &folder.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToRecordDto(record)
	return &resp, nil
}

// SaveTmpRecord stores a folder-less draft in the user's slot for its type.
// A previous draft of the same type is replaced.
func (s *RecordService) SaveTmpRecord(ctx context.Context, userID int64, req *dto.SaveTmpRecordRequest) (*dto.RecordResponse, error) {
	recordType, err := parseRecordType(req.RecordType)
	if err != nil {
		return nil, err
	}

	var record model.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}
		previous := user.TmpRecordID(recordType)

		record = converter.ToRecord(req.Title, req.Content, recordType, user, nil)
		if err := s.records.Create(ctx, &record); err != nil {
			return err
		}

		user.SetTmpRecordID(recordType, &record.ID)
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}

		if previous != nil {
			return s.records.Delete(ctx, *previous)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToRecordDto(&record)
	return &resp, nil
}

// PopTmpRecord returns the draft of the given type and deletes it.
func (s *RecordService) PopTmpRecord(ctx context.Context, userID int64, rawType string) (*dto.RecordResponse, error) {
	recordType, err := parseRecordType(rawType)
	if err != nil {
		return nil, err
	}

	var record *model.Record
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}

		tmpID := user.TmpRecordID(recordType)
		if tmpID == nil {
			return errs.New(errs.RecordNoTmp)
		}
		record, err = s.records.FindByID(ctx, *tmpID)
		if err != nil {
			if isNotFound(err) {
				return errs.New(errs.RecordNoTmp)
			}
			return err
		}

		user.SetTmpRecordID(recordType, nil)
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		return s.records.Delete(ctx, record.ID)
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToRecordDto(record)
	return &resp, nil
}
