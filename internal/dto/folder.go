package dto

type CreateFolderRequest struct {
	Title string `json:"title"`
}

func (r *CreateFolderRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateFolderRequest struct {
	FolderID int64  `param:"folderId" validate:"required,gt=0"`
	Title    string `json:"title"`
}

func (r *UpdateFolderRequest) Validate() error {
	return validate.Struct(r)
}

type FolderIDRequest struct {
	FolderID int64 `param:"folderId" validate:"required,gt=0"`
}

func (r *FolderIDRequest) Validate() error {
	return validate.Struct(r)
}

type FolderResponse struct {
	FolderID int64  `json:"folderId"`
	Title    string `json:"title"`
}

type FolderListResponse struct {
	FolderDtoList []FolderResponse `json:"folderDtoList"`
}
