package dto

type CreateRecordRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	RecordType string `json:"recordType" validate:"required"`
	FolderID   int64  `json:"folderId" validate:"required,gt=0"`
}

func (r *CreateRecordRequest) Validate() error {
	return validate.Struct(r)
}

type RecordIDRequest struct {
	RecordID int64 `param:"recordId" validate:"required,gt=0"`
}

func (r *RecordIDRequest) Validate() error {
	return validate.Struct(r)
}

// ListRecordsRequest lists every record when FolderID is zero.
type ListRecordsRequest struct {
	FolderID int64 `query:"folderId" validate:"gte=0"`
}

func (r *ListRecordsRequest) Validate() error {
	return validate.Struct(r)
}

type MoveRecordRequest struct {
	RecordID int64 `param:"recordId" validate:"required,gt=0"`
	FolderID int64 `json:"folderId" validate:"required,gt=0"`
}

func (r *MoveRecordRequest) Validate() error {
	return validate.Struct(r)
}

type SaveTmpRecordRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	RecordType string `json:"recordType" validate:"required"`
}

func (r *SaveTmpRecordRequest) Validate() error {
	return validate.Struct(r)
}

type TmpRecordRequest struct {
	RecordType string `query:"recordType" validate:"required"`
}

func (r *TmpRecordRequest) Validate() error {
	return validate.Struct(r)
}

type RecordResponse struct {
	RecordID   int64  `json:"recordId"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	RecordType string `json:"recordType"`
	FolderID   *int64 `json:"folderId"`
	CreatedAt  string `json:"createdAt"`
}

type RecordListResponse struct {
	RecordDtoList []RecordResponse `json:"recordDtoList"`
}
