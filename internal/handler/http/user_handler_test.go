package httphandler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
	httphandler "github.com/stkrizh/conduit/internal/handler/http"
	"github.com/stkrizh/conduit/internal/middleware"
)

// stubUseCase records the command it received and replies with a canned
// result, so handler tests cover only transport concerns.
type stubUseCase[TCommand any, TResult any] struct {
	result TResult
	err    error
	gotCmd TCommand
	calls  int
}

func (s *stubUseCase[TCommand, TResult]) Execute(_ context.Context, cmd TCommand) (TResult, error) {
	s.calls++
	s.gotCmd = cmd
	return s.result, s.err
}

type stubRevoker struct {
	err      error
	gotToken string
}

func (s *stubRevoker) RevokeToken(_ context.Context, token string) error {
	s.gotToken = token
	return s.err
}

func newTestUser(t *testing.T) *user.User {
	t.Helper()
	return user.Reconstruct(
		uuid.NewUUID(),
		"alice",
		"alice@example.com",
		"likes cats",
		"https://example.com/alice.png",
		"$2a$10$hash",
		time.Now(),
		time.Now(),
	)
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUserHandler_SignIn_Success(t *testing.T) {
	usr := newTestUser(t)
	signIn := &stubUseCase[userapp.SignInCommand, userapp.AuthResult]{
		result: userapp.AuthResult{User: usr, Token: "signed.jwt"},
	}
	handler := httphandler.NewUserHandler(signIn, nil, nil, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), passthroughMiddleware())

	rec := do(e, http.MethodPost, "/api/users/login",
		`{"user":{"email":"alice@example.com","password":"secret"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, signIn.calls)
	assert.Equal(t, "alice@example.com", signIn.gotCmd.Email)
	assert.Equal(t, "secret", signIn.gotCmd.Password)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt"`)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}

func TestUserHandler_SignIn_InvalidCredentials(t *testing.T) {
	signIn := &stubUseCase[userapp.SignInCommand, userapp.AuthResult]{
		err: userapp.ErrInvalidCredentials,
	}
	handler := httphandler.NewUserHandler(signIn, nil, nil, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), passthroughMiddleware())

	rec := do(e, http.MethodPost, "/api/users/login",
		`{"user":{"email":"alice@example.com","password":"wrong"}}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
	// The response body must not reveal whether the account exists.
	assert.NotContains(t, rec.Body.String(), "email")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestUserHandler_SignIn_MalformedBody(t *testing.T) {
	signIn := &stubUseCase[userapp.SignInCommand, userapp.AuthResult]{}
	handler := httphandler.NewUserHandler(signIn, nil, nil, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), passthroughMiddleware())

	rec := do(e, http.MethodPost, "/api/users/login", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, signIn.calls)
}

func TestUserHandler_Register_Success(t *testing.T) {
	usr := newTestUser(t)
	register := &stubUseCase[userapp.RegisterCommand, userapp.AuthResult]{
		result: userapp.AuthResult{User: usr, Token: "signed.jwt"},
	}
	handler := httphandler.NewUserHandler(nil, register, nil, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), passthroughMiddleware())

	rec := do(e, http.MethodPost, "/api/users",
		`{"user":{"username":"alice","email":"alice@example.com","password":"secret"}}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "alice", register.gotCmd.Username)
	assert.Contains(t, rec.Body.String(), `"token":"signed.jwt"`)
}

func TestUserHandler_Register_UsernameTaken(t *testing.T) {
	register := &stubUseCase[userapp.RegisterCommand, userapp.AuthResult]{
		err: userapp.ErrUsernameAlreadyTaken,
	}
	handler := httphandler.NewUserHandler(nil, register, nil, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), passthroughMiddleware())

	rec := do(e, http.MethodPost, "/api/users",
		`{"user":{"username":"alice","email":"alice@example.com","password":"secret"}}`)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestUserHandler_GetCurrentUser_BindsActorFromContext(t *testing.T) {
	usr := newTestUser(t)
	getCurrent := &stubUseCase[userapp.GetCurrentUserQuery, userapp.Result]{
		result: userapp.Result{User: usr},
	}
	handler := httphandler.NewUserHandler(nil, nil, getCurrent, nil)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), actorMiddleware(usr.ID(), "raw.jwt"))

	rec := do(e, http.MethodGet, "/api/user", "")

	require.Equal(t, http.StatusOK, rec.Code)
	gotActor, err := getCurrent.gotCmd.EnsureAuthenticated()
	require.NoError(t, err)
	assert.Equal(t, usr.ID(), gotActor)
	// Fetching the current user does not mint a new token.
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestUserHandler_Logout_RevokesPresentedToken(t *testing.T) {
	revoker := &stubRevoker{}
	handler := httphandler.NewUserHandler(nil, nil, nil, revoker)

	e := echo.New()
	handler.RegisterRoutes(e.Group("/api"), actorMiddleware(uuid.NewUUID(), "raw.jwt"))

	rec := do(e, http.MethodPost, "/api/user/logout", "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "raw.jwt", revoker.gotToken)
}

// passthroughMiddleware stands in for the auth middleware on routes where the
// test drives identity some other way or not at all.
func passthroughMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return next
	}
}

// actorMiddleware injects an authenticated actor the way the auth middleware
// would after validating a token.
func actorMiddleware(userID uuid.UUID, token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUserID, userID)
			c.Set(middleware.ContextKeyToken, token)
			return next(c)
		}
	}
}
