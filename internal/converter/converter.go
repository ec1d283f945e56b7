// Package converter maps entities onto new entities and response DTOs.
// Every function is pure: no I/O and no mutation of its arguments.
package converter

import (
	"time"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/model"
)

// DateLayout is the createdAt format returned to clients.
const DateLayout = "2006.01.02"

func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ToUser(providerID, nickName string, status model.Status) model.User {
	return model.User{
		ProviderID: providerID,
		NickName:   nickName,
		Status:     status,
	}
}

func ToUserDto(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		UserID:   user.ID,
		NickName: user.NickName,
		Status:   user.Status.Label(),
	}
}

func ToUserInfoDto(user *model.User, recordCount int) dto.UserInfoResponse {
	return dto.UserInfoResponse{
		NickName:    user.NickName,
		Status:      user.Status.Label(),
		RecordCount: recordCount,
	}
}

func ToFolder(title string, user *model.User) model.Folder {
	return model.Folder{Title: title, UserID: user.ID}
}

func ToFolderDto(folder *model.Folder) dto.FolderResponse {
	return dto.FolderResponse{FolderID: folder.ID, Title: folder.Title}
}

func ToFolderListDto(folders []model.Folder) dto.FolderListResponse {
	list := make([]dto.FolderResponse, 0, len(folders))
	for i := range folders {
		list = append(list, ToFolderDto(&folders[i]))
	}
	return dto.FolderListResponse{FolderDtoList: list}
}

// ToRecord builds a record; a nil folderID makes a temporary record.
func ToRecord(title, content string, recordType model.RecordType, user *model.User, folderID *int64) model.Record {
	return model.Record{
		Title:    title,
		Content:  content,
		Type:     recordType,
		UserID:   user.ID,
		FolderID: folderID,
	}
}

func ToRecordDto(record *model.Record) dto.RecordResponse {
	return dto.RecordResponse{
		RecordID:   record.ID,
		Title:      record.Title,
		Content:    record.Content,
		RecordType: string(record.Type),
		FolderID:   record.FolderID,
		CreatedAt:  formatDate(record.CreatedAt),
	}
}

func ToRecordListDto(records []model.Record) dto.RecordListResponse {
	list := make([]dto.RecordResponse, 0, len(records))
	for i := range records {
		list = append(list, ToRecordDto(&records[i]))
	}
	return dto.RecordListResponse{RecordDtoList: list}
}
