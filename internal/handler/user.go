package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/dto"
	"github.com/corecord/corecord-backend/internal/lib/cookie"
	"github.com/corecord/corecord-backend/internal/server"
	"github.com/corecord/corecord-backend/internal/service"
)

type UserHandler struct {
	Handler
	userService  *service.UserService
	tokenService *service.TokenService
	cookies      *session
}

func NewUserHandler(s *server.Server, userService *service.UserService, tokenService *service.TokenService, cookies *session) *UserHandler {
	return &UserHandler{
		Handler:      NewHandler(s),
		userService:  userService,
		tokenService: tokenService,
		cookies:      cookies,
	}
}

// providerToken reads the identity provider session token sent as
// "Authorization: Bearer <token>" on register and login.
func providerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *UserHandler) RegisterUser(c echo.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	user, pair, err := h.userService.RegisterUser(c.Request().Context(), providerToken(c), req)
	if err != nil {
		return nil, err
	}
	h.cookies.set(c, pair)
	return user, nil
}

func (h *UserHandler) LoginUser(c echo.Context, _ *dto.EmptyRequest) error {
	pair, err := h.userService.LoginUser(c.Request().Context(), providerToken(c))
	if err != nil {
		return err
	}
	h.cookies.set(c, pair)
	return nil
}

// LogoutUser only needs the refresh token cookie, so clients whose access
// token already expired can still end their session.
func (h *UserHandler) LogoutUser(c echo.Context, _ *dto.EmptyRequest) error {
	refreshToken := cookie.Value(c.Request(), cookie.RefreshTokenName)
	if err := h.userService.LogoutUser(c.Request().Context(), refreshToken); err != nil {
		return err
	}
	h.cookies.clear(c)
	return nil
}

func (h *UserHandler) DeleteUser(c echo.Context, _ *dto.EmptyRequest) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	refreshToken := cookie.Value(c.Request(), cookie.RefreshTokenName)
	if err := h.userService.DeleteUser(c.Request().Context(), userID, refreshToken); err != nil {
		return err
	}
	h.cookies.clear(c)
	return nil
}

func (h *UserHandler) UpdateUser(c echo.Context, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.userService.UpdateUser(c.Request().Context(), userID, req)
}

func (h *UserHandler) GetUserInfo(c echo.Context, _ *dto.EmptyRequest) (*dto.UserInfoResponse, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.userService.GetUserInfo(c.Request().Context(), userID)
}

// ReissueAccessToken swaps the refresh token cookie for a new access token
// cookie.
func (h *UserHandler) ReissueAccessToken(c echo.Context, _ *dto.EmptyRequest) error {
	refreshToken := cookie.Value(c.Request(), cookie.RefreshTokenName)
	accessToken, err := h.tokenService.ReissueAccessToken(c.Request().Context(), refreshToken)
	if err != nil {
		return err
	}
	h.cookies.setAccess(c, accessToken)
	return nil
}
