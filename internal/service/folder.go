package service

import (
	"context"

	"github.com/corecord/corecord-backend/internal/converter"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/utils"
	"github.com/corecord/corecord-backend/internal/model"
)

const maxFolderTitleLength = 15

type FolderService struct {
	tx      Transactor
	users   UserRepository
	folders FolderRepository
}

func NewFolderService(tx Transactor, users UserRepository, folders FolderRepository) *FolderService {
	return &FolderService{
		tx:      tx,
		users:   users,
		folders: folders,
	}
}

func validateFolderTitle(title string) error {
	if !utils.RuneLenBetween(title, 1, maxFolderTitleLength) {
		return errs.New(errs.FolderInvalidTitle)
	}
	return nil
}

// findOwnedFolder loads a folder and checks that userID owns it.
func findOwnedFolder(ctx context.Context, folders FolderRepository, userID, folderID int64) (*model.Folder, error) {
	folder, err := folders.FindByID(ctx, folderID)
	if err != nil {
		if isNotFound(err) {
			return nil, errs.New(errs.FolderNotFound)
		}
		return nil, err
	}
	if folder.UserID != userID {
		return nil, errs.New(errs.FolderUnauthorized)
	}
	return folder, nil
}

func (s *FolderService) checkDuplicateTitle(ctx context.Context, userID int64, title string) error {
	exists, err := s.folders.ExistsByUserIDAndTitle(ctx, userID, title)
	if err != nil {
		return err
	}
	if exists {
		return errs.New(errs.FolderDuplicatedTitle)
	}
	return nil
}

func (s *FolderService) CreateFolder(ctx context.Context, userID int64, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	if err := validateFolderTitle(req.Title); err != nil {
		return nil, err
	}

	var folder model.Folder
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := findUser(ctx, s.users, userID)
		if err != nil {
			return err
		}
		if err := s.checkDuplicateTitle(ctx, user.ID, req.Title); err != nil {
			return err
		}

		folder = converter.ToFolder(req.Title, user)
		return s.folders.Create(ctx, &folder)
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToFolderDto(&folder)
	return &resp, nil
}

func (s *FolderService) ListFolders(ctx context.Context, userID int64) (*dto.FolderListResponse, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	folders, err := s.folders.ListByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	resp := converter.ToFolderListDto(folders)
	return &resp, nil
}

// UpdateFolder renames a folder. Keeping the current title is not a
// duplicate.
func (s *FolderService) UpdateFolder(ctx context.Context, userID int64, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
	if err := validateFolderTitle(req.Title); err != nil {
		return nil, err
	}

	var folder *model.Folder
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		folder, err = findOwnedFolder(ctx, s.folders, userID, req.FolderID)
		if err != nil {
			return err
		}
		if folder.Title == req.Title {
			return nil
		}
		if err := s.checkDuplicateTitle(ctx, userID, req.Title); err != nil {
			return err
		}
		if err := s.folders.UpdateTitle(ctx, folder.ID, req.Title); err != nil {
			return err
		}
		folder.Title = req.Title
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := converter.ToFolderDto(folder)
	return &resp, nil
}

// DeleteFolder removes the folder and every record filed in it.
func (s *FolderService) DeleteFolder(ctx context.Context, userID, folderID int64) error {
	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		folder, err := findOwnedFolder(ctx, s.folders, userID, folderID)
		if err != nil {
			return err
		}
		return s.folders.Delete(ctx, folder.ID)
	})
}
