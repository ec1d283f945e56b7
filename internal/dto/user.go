package dto

type RegisterUserRequest struct {
	NickName string `json:"nickName"`
	Status   string `json:"status"`
}

func (r *RegisterUserRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateUserRequest is a partial update; nil fields are left unchanged.
type UpdateUserRequest struct {
	NickName *string `json:"nickName"`
	Status   *string `json:"status"`
}

func (r *UpdateUserRequest) Validate() error {
	return validate.Struct(r)
}

type UserResponse struct {
	UserID   int64  `json:"userId"`
	NickName string `json:"nickName"`
	Status   string `json:"status"`
}

type UserInfoResponse struct {
	NickName    string `json:"nickName"`
	Status      string `json:"status"`
	RecordCount int    `json:"recordCount"`
}

// TokenPair is issued on registration and login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
