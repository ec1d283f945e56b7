package errs

import "net/http"

type entry struct {
	status  int
	message string
}

// GeneralErrorStatus covers failures outside any single domain.
type GeneralErrorStatus string

const (
	GeneralUnauthorized GeneralErrorStatus = "UNAUTHORIZED"
	GeneralForbidden    GeneralErrorStatus = "FORBIDDEN"
)

var generalEntries = map[GeneralErrorStatus]entry{
	GeneralUnauthorized: {http.StatusUnauthorized, "인증이 필요합니다."},
	GeneralForbidden:    {http.StatusForbidden, "요청에 대한 권한이 없습니다."},
}

func (s GeneralErrorStatus) HTTPStatus() int { return generalEntries[s].status }
func (s GeneralErrorStatus) Code() string { return string(s) }
func (s GeneralErrorStatus) Message() string { return generalEntries[s].message }

type AbilityErrorStatus string

const (
	AbilityInvalidKeyword AbilityErrorStatus = "INVALID_ABILITY_KEYWORD"
)

var abilityEntries = map[AbilityErrorStatus]entry{
	AbilityInvalidKeyword: {http.StatusBadRequest, "역량 키워드가 올바르지 않습니다."},
}

func (s AbilityErrorStatus) HTTPStatus() int { return abilityEntries[s].status }
func (s AbilityErrorStatus) Code() string { return string(s) }
func (s AbilityErrorStatus) Message() string { return abilityEntries[s].message }

type UserErrorStatus string

const (
	UserAlreadyExist    UserErrorStatus = "ALREADY_EXIST_USER"
	UserInvalidNickname UserErrorStatus = "INVALID_USER_NICKNAME"
	UserInvalidStatus   UserErrorStatus = "INVALID_USER_STATUS"
	UserUnregistered    UserErrorStatus = "UNREGISTERED_USER"
)

var userEntries = map[UserErrorStatus]entry{
	UserAlreadyExist:    {http.StatusConflict, "이미 존재하는 유저입니다."},
	UserInvalidNickname: {http.StatusBadRequest, "닉네임은 한글, 영어, 숫자, 공백만 포함한 10자 이내여야 합니다."},
	UserInvalidStatus:   {http.StatusBadRequest, "유저 상태가 올바르지 않습니다."},
	UserUnregistered:    {http.StatusNotFound, "가입되지 않은 유저입니다."},
}

func (s UserErrorStatus) HTTPStatus() int { return userEntries[s].status }
func (s UserErrorStatus) Code() string { return string(s) }
func (s UserErrorStatus) Message() string { return userEntries[s].message }

type TokenErrorStatus string

const (
	TokenInvalidRegister TokenErrorStatus = "INVALID_REGISTER_TOKEN"
	TokenInvalidAccess   TokenErrorStatus = "INVALID_ACCESS_TOKEN"
	TokenInvalidRefresh  TokenErrorStatus = "INVALID_REFRESH_TOKEN"
	TokenRefreshNotFound TokenErrorStatus = "NOT_FOUND_REFRESH_TOKEN"
)

var tokenEntries = map[TokenErrorStatus]entry{
	TokenInvalidRegister: {http.StatusUnauthorized, "유효하지 않은 회원가입 토큰입니다."},
	TokenInvalidAccess:   {http.StatusUnauthorized, "유효하지 않은 액세스 토큰입니다."},
	TokenInvalidRefresh:  {http.StatusUnauthorized, "유효하지 않은 리프레시 토큰입니다."},
	TokenRefreshNotFound: {http.StatusUnauthorized, "리프레시 토큰을 찾을 수 없습니다."},
}

func (s TokenErrorStatus) HTTPStatus() int { return tokenEntries[s].status }
func (s TokenErrorStatus) Code() string { return string(s) }
func (s TokenErrorStatus) Message() string { return tokenEntries[s].message }

type FolderErrorStatus string

const (
	FolderDuplicatedTitle FolderErrorStatus = "DUPLICATED_FOLDER_TITLE"
	FolderInvalidTitle    FolderErrorStatus = "INVALID_FOLDER_TITLE"
	FolderNotFound        FolderErrorStatus = "FOLDER_NOT_FOUND"
	FolderUnauthorized    FolderErrorStatus = "USER_FOLDER_UNAUTHORIZED"
)

var folderEntries = map[FolderErrorStatus]entry{
	FolderDuplicatedTitle: {http.StatusBadRequest, "이미 존재하는 폴더 이름입니다."},
	FolderInvalidTitle:    {http.StatusBadRequest, "폴더 이름은 1자 이상 15자 이내여야 합니다."},
	FolderNotFound:        {http.StatusNotFound, "폴더를 찾을 수 없습니다."},
	FolderUnauthorized:    {http.StatusForbidden, "유저가 폴더에 접근할 권한이 없습니다."},
}

func (s FolderErrorStatus) HTTPStatus() int { return folderEntries[s].status }
func (s FolderErrorStatus) Code() string { return string(s) }
func (s FolderErrorStatus) Message() string { return folderEntries[s].message }

type RecordErrorStatus string

const (
	RecordInvalidTitle   RecordErrorStatus = "INVALID_RECORD_TITLE"
	RecordInvalidContent RecordErrorStatus = "INVALID_RECORD_CONTENT"
	RecordInvalidType    RecordErrorStatus = "INVALID_RECORD_TYPE"
	RecordNotFound       RecordErrorStatus = "RECORD_NOT_FOUND"
	RecordUnauthorized   RecordErrorStatus = "USER_RECORD_UNAUTHORIZED"
	RecordNoTmp          RecordErrorStatus = "NO_TMP_RECORD"
)

var recordEntries = map[RecordErrorStatus]entry{
	RecordInvalidTitle:   {http.StatusBadRequest, "경험 기록 제목은 1자 이상 50자 이내여야 합니다."},
	RecordInvalidContent: {http.StatusBadRequest, "경험 기록 내용은 30자 이상 500자 이내여야 합니다."},
	RecordInvalidType:    {http.StatusBadRequest, "경험 기록 종류가 올바르지 않습니다."},
	RecordNotFound:       {http.StatusNotFound, "경험 기록을 찾을 수 없습니다."},
	RecordUnauthorized:   {http.StatusForbidden, "유저가 경험 기록에 접근할 권한이 없습니다."},
	RecordNoTmp:          {http.StatusNotFound, "임시 저장된 기록이 없습니다."},
}

func (s RecordErrorStatus) HTTPStatus() int { return recordEntries[s].status }
func (s RecordErrorStatus) Code() string { return string(s) }
func (s RecordErrorStatus) Message() string { return recordEntries[s].message }

type AnalysisErrorStatus string

const (
	AnalysisNotFound       AnalysisErrorStatus = "ANALYSIS_NOT_FOUND"
	AnalysisUnauthorized   AnalysisErrorStatus = "USER_ANALYSIS_UNAUTHORIZED"
	AnalysisInvalidComment AnalysisErrorStatus = "INVALID_ANALYSIS_COMMENT"
	AnalysisFailed         AnalysisErrorStatus = "ANALYSIS_FAILED"
)

var analysisEntries = map[AnalysisErrorStatus]entry{
	AnalysisNotFound:       {http.StatusNotFound, "역량 분석을 찾을 수 없습니다."},
	AnalysisUnauthorized:   {http.StatusForbidden, "유저가 역량 분석에 접근할 권한이 없습니다."},
	AnalysisInvalidComment: {http.StatusBadRequest, "코멘트는 1자 이상 200자 이내여야 합니다."},
	AnalysisFailed:         {http.StatusBadGateway, "경험 기록을 분석하지 못했습니다."},
}

func (s AnalysisErrorStatus) HTTPStatus() int { return analysisEntries[s].status }
func (s AnalysisErrorStatus) Code() string { return string(s) }
func (s AnalysisErrorStatus) Message() string { return analysisEntries[s].message }

type ChatErrorStatus string

const (
	ChatRoomNotFound     ChatErrorStatus = "CHAT_ROOM_NOT_FOUND"
	ChatRoomUnauthorized ChatErrorStatus = "USER_CHAT_ROOM_UNAUTHORIZED"
	ChatInvalidContent   ChatErrorStatus = "INVALID_CHAT_CONTENT"
	ChatEmptyTranscript  ChatErrorStatus = "EMPTY_CHAT_TRANSCRIPT"
	ChatReplyFailed      ChatErrorStatus = "CHAT_REPLY_FAILED"
)

var chatEntries = map[ChatErrorStatus]entry{
	ChatRoomNotFound:     {http.StatusNotFound, "채팅방을 찾을 수 없습니다."},
	ChatRoomUnauthorized: {http.StatusForbidden, "유저가 채팅방에 접근할 권한이 없습니다."},
	ChatInvalidContent:   {http.StatusBadRequest, "채팅 내용은 1자 이상 500자 이내여야 합니다."},
	ChatEmptyTranscript:  {http.StatusBadRequest, "경험 기록으로 저장할 채팅이 없습니다."},
	ChatReplyFailed:      {http.StatusBadGateway, "AI 응답을 생성하지 못했습니다."},
}

func (s ChatErrorStatus) HTTPStatus() int { return chatEntries[s].status }
func (s ChatErrorStatus) Code() string { return string(s) }
func (s ChatErrorStatus) Message() string { return chatEntries[s].message }
