package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRecordRequest_Validate(t *testing.T) {
	assert.NoError(t, (&MoveRecordRequest{RecordID: 1, FolderID: 2}).Validate())

	err := (&MoveRecordRequest{RecordID: 1}).Validate()
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	assert.Equal(t, "FolderID", validationErrors[0].Field())
}

func TestUpdateAnalysisRequest_Validate(t *testing.T) {
	comment := "good"
	assert.NoError(t, (&UpdateAnalysisRequest{AnalysisID: 3, Comment: &comment}).Validate())
	assert.NoError(t, (&UpdateAnalysisRequest{
		AnalysisID: 3,
		AbilityMap: map[string]string{"리더십": "led the team"},
	}).Validate())

	assert.Error(t, (&UpdateAnalysisRequest{
		AnalysisID: 3,
		AbilityMap: map[string]string{"리더십": ""},
	}).Validate())
	assert.Error(t, (&UpdateAnalysisRequest{}).Validate())
}

func TestListRecordsRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ListRecordsRequest{}).Validate())
	assert.Error(t, (&ListRecordsRequest{FolderID: -1}).Validate())
}

func TestEmptyRequest_Validate(t *testing.T) {
	assert.NoError(t, (&EmptyRequest{}).Validate())
}
