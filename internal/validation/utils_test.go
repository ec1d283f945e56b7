package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/errs"
)

var testValidate = validator.New()

type moveRequest struct {
	RecordID int64 `param:"recordId" validate:"required,gt=0"`
	FolderID int64 `json:"folderId" validate:"required,gt=0"`
}

func (r *moveRequest) Validate() error {
	return testValidate.Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "title", Message: "already taken"}}
}

func newContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/records/7/folder", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("recordId")
	c.SetParamValues("7")
	return c
}

func TestBindAndValidate(t *testing.T) {
	payload := &moveRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"folderId": 3}`), payload))
	assert.Equal(t, int64(7), payload.RecordID)
	assert.Equal(t, int64(3), payload.FolderID)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &moveRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "folderID", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(`{"folderId": "three"`), &moveRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	err := BindAndValidate(newContext(`{}`), &customRequest{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, []errs.FieldError{{Field: "title", Error: "already taken"}}, httpErr.Errors)
}
