package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corecord/corecord-backend/internal/config"
	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/lib/cookie"
	"github.com/corecord/corecord-backend/internal/lib/token"
	"github.com/corecord/corecord-backend/internal/middleware"
	"github.com/corecord/corecord-backend/internal/model"
	"github.com/corecord/corecord-backend/internal/repository"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

func testServer(redisClient *redis.Client) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &logger,
		Redis:  redisClient,
	}
}

func newEcho(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler
	return e
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type echoRequest struct {
	Name string `json:"name"`
}

func (r *echoRequest) Validate() error {
	return nil
}

func TestHandle_FreshRequestPerCall(t *testing.T) {
	s := testServer(nil)
	e := newEcho(s)
	h := NewHandler(s)

	template := &echoRequest{}
	e.POST("/echo", Handle(h, func(c echo.Context, req *echoRequest) (*echoRequest, error) {
		return req, nil
	}, http.StatusCreated, template))

	var wg sync.WaitGroup
	for _, name := range []string{"a", "b", "c", "d"} {
		name := name
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"`+name+`"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.JSONEq(t, `{"name":"`+name+`"}`, rec.Body.String())
		}()
	}
	wg.Wait()

	assert.Empty(t, template.Name)
}

func TestHandleNoContent(t *testing.T) {
	s := testServer(nil)
	e := newEcho(s)

	called := false
	e.DELETE("/things/:folderId", HandleNoContent(NewHandler(s), func(c echo.Context, req *dto.FolderIDRequest) error {
		called = true
		assert.Equal(t, int64(9), req.FolderID)
		return nil
	}, http.StatusNoContent, &dto.FolderIDRequest{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things/9", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandle_ValidationFailureSkipsHandler(t *testing.T) {
	s := testServer(nil)
	e := newEcho(s)

	e.DELETE("/things/:folderId", HandleNoContent(NewHandler(s), func(c echo.Context, req *dto.FolderIDRequest) error {
		t.Fatal("handler must not run")
		return nil
	}, http.StatusNoContent, &dto.FolderIDRequest{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/things/0", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCurrentUserID_RequiresAuth(t *testing.T) {
	s := testServer(nil)
	e := newEcho(s)
	e.GET("/folders", Handle(NewHandler(s), func(c echo.Context, _ *dto.EmptyRequest) (int64, error) {
		return currentUserID(c)
	}, http.StatusOK, &dto.EmptyRequest{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/folders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestProviderToken(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer sess_123")
	assert.Equal(t, "sess_123", providerToken(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic abc")
	assert.Empty(t, providerToken(e.NewContext(req, httptest.NewRecorder())))
}

type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memoryUsers is an in-memory service.UserRepository.
type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*model.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byID: make(map[int64]*model.User)}
}

func (m *memoryUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	user.ID = m.nextID
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *memoryUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.byID[id]
	if !ok {
		return nil, fmt.Errorf("table:users: %w", pgx.ErrNoRows)
	}
	found := *user
	return &found, nil
}

func (m *memoryUsers) FindByProviderID(_ context.Context, providerID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.byID {
		if user.ProviderID == providerID {
			found := *user
			return &found, nil
		}
	}
	return nil, fmt.Errorf("table:users: %w", pgx.ErrNoRows)
}

func (m *memoryUsers) ExistsByProviderID(ctx context.Context, providerID string) (bool, error) {
	_, err := m.FindByProviderID(ctx, providerID)
	return err == nil, nil
}

func (m *memoryUsers) Update(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *user
	m.byID[user.ID] = &stored
	return nil
}

func (m *memoryUsers) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

// staticIdentity accepts the single token "sess_valid" for provider user
// "user_abc" and knows no e-mail addresses.
type staticIdentity struct{}

func (staticIdentity) VerifyToken(_ context.Context, token string) (string, error) {
	if token != "sess_valid" {
		return "", errors.New("invalid session token")
	}
	return "user_abc", nil
}

func (staticIdentity) PrimaryEmail(context.Context, string) (string, error) {
	return "", nil
}

type sessionFixture struct {
	echo   *echo.Echo
	tokens *service.TokenService
	issuer *token.Issuer
	redis  *miniredis.Miniredis
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := testServer(client)
	issuer := token.NewIssuer("0123456789abcdef0123456789abcdef", time.Minute, time.Hour)
	tokens := service.NewTokenService(issuer, repository.NewRefreshTokenRepository(client))
	users := service.NewUserService(passthroughTx{}, newMemoryUsers(), nil, tokens, staticIdentity{}, nil, s.Logger)
	cookies := newSession(cookie.NewFactory("", false), issuer.AccessExpiration(), issuer.RefreshExpiration())
	h := NewUserHandler(s, users, tokens, cookies)

	e := newEcho(s)
	e.POST("/api/token", HandleNoContent(h.Handler, h.ReissueAccessToken, http.StatusNoContent, &dto.EmptyRequest{}))
	e.POST("/api/users/register", Handle(h.Handler, h.RegisterUser, http.StatusCreated, &dto.RegisterUserRequest{}))
	e.POST("/api/users/login", HandleNoContent(h.Handler, h.LoginUser, http.StatusNoContent, &dto.EmptyRequest{}))
	e.POST("/api/users/logout", HandleNoContent(h.Handler, h.LogoutUser, http.StatusNoContent, &dto.EmptyRequest{}))

	return &sessionFixture{echo: e, tokens: tokens, issuer: issuer, redis: mr}
}

// assertSessionCookies checks both token cookies and returns the user id
// they were issued for.
func (f *sessionFixture) assertSessionCookies(t *testing.T, rec *httptest.ResponseRecorder) int64 {
	t.Helper()

	access := cookieByName(rec, cookie.AccessTokenName)
	require.NotNil(t, access)
	refresh := cookieByName(rec, cookie.RefreshTokenName)
	require.NotNil(t, refresh)

	for _, c := range []*http.Cookie{access, refresh} {
		assert.True(t, c.HttpOnly, c.Name)
		assert.True(t, c.Secure, c.Name)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite, c.Name)
		assert.Equal(t, "/", c.Path, c.Name)
	}
	assert.Equal(t, 60, access.MaxAge)
	assert.Equal(t, 3600, refresh.MaxAge)
	assert.True(t, f.redis.Exists("refresh_token:"+refresh.Value))

	accessUserID, err := f.issuer.Parse(access.Value, token.KindAccess)
	require.NoError(t, err)
	refreshUserID, err := f.issuer.Parse(refresh.Value, token.KindRefresh)
	require.NoError(t, err)
	assert.Equal(t, accessUserID, refreshUserID)
	return accessUserID
}

func TestRegisterAndLogin_SetSessionCookies(t *testing.T) {
	f := newSessionFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"nickName":"kim","status":"대학생"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer sess_valid")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"userId":1,"nickName":"kim","status":"대학생"}`, rec.Body.String())
	assert.Equal(t, int64(1), f.assertSessionCookies(t, rec))

	req = httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer sess_valid")
	rec = httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	assert.Equal(t, int64(1), f.assertSessionCookies(t, rec))
}

func TestRegisterUser_InvalidProviderTokenSetsNoCookies(t *testing.T) {
	f := newSessionFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader(`{"nickName":"kim","status":"대학생"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REGISTER_TOKEN")
	assert.Empty(t, rec.Result().Cookies())
}

func TestReissueAccessToken(t *testing.T) {
	f := newSessionFixture(t)
	pair, err := f.tokens.IssueTokens(context.Background(), 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/token", nil)
	req.AddCookie(&http.Cookie{Name: cookie.RefreshTokenName, Value: pair.RefreshToken})
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	access := cookieByName(rec, cookie.AccessTokenName)
	require.NotNil(t, access)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)
	assert.Equal(t, 60, access.MaxAge)

	userID, err := f.issuer.Parse(access.Value, token.KindAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(5), userID)
}

func TestReissueAccessToken_WithoutCookie(t *testing.T) {
	f := newSessionFixture(t)

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/token", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_REFRESH_TOKEN")
}

func TestLogoutUser_ClearsSession(t *testing.T) {
	f := newSessionFixture(t)
	pair, err := f.tokens.IssueTokens(context.Background(), 5)
	require.NoError(t, err)
	require.True(t, f.redis.Exists("refresh_token:"+pair.RefreshToken))

	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	req.AddCookie(&http.Cookie{Name: cookie.RefreshTokenName, Value: pair.RefreshToken})
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, f.redis.Exists("refresh_token:"+pair.RefreshToken))
	for _, name := range []string{cookie.AccessTokenName, cookie.RefreshTokenName} {
		c := cookieByName(rec, name)
		require.NotNil(t, c, name)
		assert.Empty(t, c.Value)
		assert.Equal(t, -1, c.MaxAge)
	}
}

func TestCheckHealth(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := testServer(client)
	e := newEcho(s)
	e.GET("/status", NewHealthHandler(s).CheckHealth)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])

	mr.Close()

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "unhealthy", body["checks"].(map[string]any)["redis"].(map[string]any)["status"])
}
