// Package httphandler contains the HTTP transport adapters for the use cases.
package httphandler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stkrizh/conduit/internal/application/appcore"
	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
	"github.com/stkrizh/conduit/internal/middleware"
)

// SignInRequest is the payload for POST /api/users/login.
type SignInRequest struct {
	User struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// RegisterRequest is the payload for POST /api/users.
type RegisterRequest struct {
	User struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	} `json:"user"`
}

// UserResponse represents a user in API responses. The token is present only
// on responses to operations that establish identity.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
	Token    string `json:"token,omitempty"`
}

// ToUserResponse converts a user entity (and optional token) to its API shape.
func ToUserResponse(u *user.User, token user.AuthToken) UserResponse {
	return UserResponse{
		ID:       u.ID().String(),
		Username: u.Username(),
		Email:    u.Email(),
		Bio:      u.Bio(),
		Image:    u.Image(),
		Token:    token.String(),
	}
}

// TokenRevoker invalidates a bearer token on sign-out.
// Declared on the consumer side; implemented by auth.RevocationChecker.
type TokenRevoker interface {
	RevokeToken(ctx context.Context, token string) error
}

// UserHandler handles account-related HTTP requests.
type UserHandler struct {
	signIn         appcore.UseCase[userapp.SignInCommand, userapp.AuthResult]
	register       appcore.UseCase[userapp.RegisterCommand, userapp.AuthResult]
	getCurrentUser appcore.UseCase[userapp.GetCurrentUserQuery, userapp.Result]
	tokenRevoker   TokenRevoker
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	signIn appcore.UseCase[userapp.SignInCommand, userapp.AuthResult],
	register appcore.UseCase[userapp.RegisterCommand, userapp.AuthResult],
	getCurrentUser appcore.UseCase[userapp.GetCurrentUserQuery, userapp.Result],
	tokenRevoker TokenRevoker,
) *UserHandler {
	return &UserHandler{
		signIn:         signIn,
		register:       register,
		getCurrentUser: getCurrentUser,
		tokenRevoker:   tokenRevoker,
	}
}

// RegisterRoutes registers user routes. The auth middleware is applied only
// to the routes that require a signed-in actor.
func (h *UserHandler) RegisterRoutes(g *echo.Group, authRequired echo.MiddlewareFunc) {
	g.POST("/users", h.Register)
	g.POST("/users/login", h.SignIn)
	g.GET("/user", h.GetCurrentUser, authRequired)
	g.POST("/user/logout", h.Logout, authRequired)
}

// SignIn handles POST /api/users/login.
func (h *UserHandler) SignIn(c echo.Context) error {
	var req SignInRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	cmd := userapp.SignInCommand{
		Email:    req.User.Email,
		Password: req.User.Password,
	}

	result, err := h.signIn.Execute(c.Request().Context(), cmd)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToUserResponse(result.User, result.Token))
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	cmd := userapp.RegisterCommand{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
	}

	result, err := h.register.Execute(c.Request().Context(), cmd)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondCreated(c, ToUserResponse(result.User, result.Token))
}

// GetCurrentUser handles GET /api/user.
// The middleware resolved the actor; the handler binds it onto the query
// before execution, never the use case itself.
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	query := userapp.GetCurrentUserQuery{}.WithUserID(middleware.GetUserID(c))

	result, err := h.getCurrentUser.Execute(c.Request().Context(), query)
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondOK(c, ToUserResponse(result.User, ""))
}

// Logout handles POST /api/user/logout by revoking the presented token.
func (h *UserHandler) Logout(c echo.Context) error {
	token := middleware.GetToken(c)
	if token == "" {
		return httpserver.RespondErrorWithCode(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	}

	if err := h.tokenRevoker.RevokeToken(c.Request().Context(), token); err != nil {
		return httpserver.RespondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
