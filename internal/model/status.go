package model

// Status is the user's current occupation.
type Status string

const (
	StatusUniversityStudent Status = "UNIVERSITY_STUDENT"
	StatusGraduateStudent   Status = "GRADUATE_STUDENT"
	StatusJobSeeker         Status = "JOB_SEEKER"
	StatusWorker            Status = "WORKER"
	StatusEtc               Status = "ETC"
)

var statusLabels = map[Status]string{
	StatusUniversityStudent: "대학생",
	StatusGraduateStudent:   "대학원생",
	StatusJobSeeker:         "취업준비생",
	StatusWorker:            "직장인",
	StatusEtc:               "기타",
}

func (s Status) Label() string {
	return statusLabels[s]
}

// StatusFromLabel resolves a display label such as "대학생".
func StatusFromLabel(label string) (Status, bool) {
	for s, l := range statusLabels {
		if l == label {
			return s, true
		}
	}
	return "", false
}

type RecordType string

const (
	RecordTypeMemo RecordType = "MEMO"
	RecordTypeChat RecordType = "CHAT"
)

func ParseRecordType(s string) (RecordType, bool) {
	switch RecordType(s) {
	case RecordTypeMemo, RecordTypeChat:
		return RecordType(s), true
	default:
		return "", false
	}
}
