// Package model holds the persisted entities and their closed enumerations.
//
// Ownership is stored by id: children carry the id of their parent and
// Analysis keeps its Abilities as an ordered slice of values.
package model

import "time"

type User struct {
	ID         int64     `json:"id" db:"id"`
	ProviderID string    `json:"providerId" db:"provider_id"`
	NickName   string    `json:"nickName" db:"nick_name"`
	Status     Status    `json:"status" db:"status"`
	TmpMemo    *int64    `json:"tmpMemo" db:"tmp_memo"`
	TmpChat    *int64    `json:"tmpChat" db:"tmp_chat"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// TmpRecordID returns the placeholder record id kept for the given type.
func (u *User) TmpRecordID(t RecordType) *int64 {
	if t == RecordTypeChat {
		return u.TmpChat
	}
	return u.TmpMemo
}

// SetTmpRecordID points the placeholder slot of the given type at id.
// A nil id clears the slot.
func (u *User) SetTmpRecordID(t RecordType, id *int64) {
	if t == RecordTypeChat {
		u.TmpChat = id
		return
	}
	u.TmpMemo = id
}

type Folder struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	UserID    int64     `json:"userId" db:"user_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Record struct {
	ID        int64      `json:"id" db:"id"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	Type      RecordType `json:"type" db:"type"`
	UserID    int64      `json:"userId" db:"user_id"`
	FolderID  *int64     `json:"folderId" db:"folder_id"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// Analysis is derived from exactly one Record.
type Analysis struct {
	ID        int64     `json:"id" db:"id"`
	RecordID  int64     `json:"recordId" db:"record_id"`
	Content   string    `json:"content" db:"content"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Abilities []Ability `json:"abilities" db:"-"`
}

// Ability pairs a Keyword with the text that justified it.
type Ability struct {
	ID         int64     `json:"id" db:"id"`
	Keyword    Keyword   `json:"keyword" db:"keyword"`
	Content    string    `json:"content" db:"content"`
	AnalysisID int64     `json:"analysisId" db:"analysis_id"`
	UserID     int64     `json:"userId" db:"user_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// KeywordCount is the number of abilities a user holds for one Keyword.
type KeywordCount struct {
	Keyword Keyword `db:"keyword"`
	Count   int     `db:"count"`
}

// RefreshToken lives in Redis and expires with the refresh cookie.
type RefreshToken struct {
	Token  string
	UserID int64
}
