package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/config"
	"github.com/corecord/corecord-backend/internal/errs"
	"github.com/corecord/corecord-backend/internal/lib/cookie"
	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/server"
)

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		},
		Logger: &logger,
	}
}

func newTestIssuer() *token.Issuer {
	return token.NewIssuer("0123456789abcdef0123456789abcdef", time.Minute, time.Hour)
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newAuthEcho(issuer *token.Issuer) *echo.Echo {
	s := testServer()
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(s).GlobalErrorHandler
	auth := NewAuthMiddleware(s, issuer)
	e.GET("/me", func(c echo.Context) error {
		userID, _ := GetUserID(c)
		return c.String(http.StatusOK, fmt.Sprint(userID))
	}, auth.RequireAuth)
	return e
}

func TestRequireAuth_Cookie(t *testing.T) {
	issuer := newTestIssuer()
	access, err := issuer.GenerateAccessToken(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessTokenName, Value: access})
	rec := serve(newAuthEcho(issuer), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())
}

func TestRequireAuth_BearerHeader(t *testing.T) {
	issuer := newTestIssuer()
	access, err := issuer.GenerateAccessToken(7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+access)
	rec := serve(newAuthEcho(issuer), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "7", rec.Body.String())
}

func TestRequireAuth_Rejects(t *testing.T) {
	issuer := newTestIssuer()
	refresh, err := issuer.GenerateRefreshToken(7)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		status errs.Status
	}{
		{"missing", "", errs.GeneralUnauthorized},
		{"garbage", "not-a-jwt", errs.TokenInvalidAccess},
		{"refresh token", refresh, errs.TokenInvalidAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: cookie.AccessTokenName, Value: tt.token})
			}
			rec := serve(newAuthEcho(issuer), req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.status.Code())
		})
	}
}

func newErrorEcho(err error) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewGlobalMiddlewares(testServer()).GlobalErrorHandler
	e.GET("/fail", func(c echo.Context) error { return err })
	return e
}

func TestGlobalErrorHandler_AccessDenied(t *testing.T) {
	rec := serve(newErrorEcho(errs.New(errs.FolderUnauthorized)), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, MIMEApplicationJSONCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t,
		`{"status":403,"code":"USER_FOLDER_UNAUTHORIZED","message":"`+errs.FolderUnauthorized.Message()+`"}`,
		rec.Body.String())
}

func TestGlobalErrorHandler_DomainError(t *testing.T) {
	rec := serve(newErrorEcho(errs.New(errs.AbilityInvalidKeyword)), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"code": "INVALID_ABILITY_KEYWORD",
		"message": "`+errs.AbilityInvalidKeyword.Message()+`",
		"status": 400,
		"override": true,
		"errors": null,
		"action": null
	}`, rec.Body.String())
}

func TestGlobalErrorHandler_NoRowsBecomesNotFound(t *testing.T) {
	err := fmt.Errorf("table:folders: %w", pgx.ErrNoRows)
	rec := serve(newErrorEcho(err), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGlobalErrorHandler_UnknownErrorHidesDetails(t *testing.T) {
	rec := serve(newErrorEcho(errors.New("dial tcp: secret host")), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret host")
}

func TestGlobalErrorHandler_UnknownRoute(t *testing.T) {
	rec := serve(newErrorEcho(nil), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, GetRequestID(c)) })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, rec.Header().Get(RequestIDHeader), rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = serve(e, req)
	assert.Equal(t, "abc", rec.Body.String())
}
