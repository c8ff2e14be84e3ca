package httpserver_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stkrizh/conduit/internal/application/appcore"
	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/domain/errs"
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRespondOK(t *testing.T) {
	c, rec := newTestContext()

	err := httpserver.RespondOK(c, map[string]string{"key": "value"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"key":"value"}}`, rec.Body.String())
}

func TestRespondCreated(t *testing.T) {
	c, rec := newTestContext()

	err := httpserver.RespondCreated(c, map[string]string{"id": "123"})

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRespondNotFound(t *testing.T) {
	c, rec := newTestContext()

	err := httpserver.RespondNotFound(c, "profile not found")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestRespondError_Mapping(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "not authenticated",
			err:            appcore.ErrUserNotAuthenticated,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "UNAUTHORIZED",
		},
		{
			name:           "invalid credentials",
			err:            userapp.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "wrapped invalid credentials",
			err:            fmt.Errorf("sign in: %w", userapp.ErrInvalidCredentials),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "INVALID_CREDENTIALS",
		},
		{
			name:           "validation error",
			err:            appcore.NewValidationError("email", "must be a valid email address"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "username taken",
			err:            userapp.ErrUsernameAlreadyTaken,
			expectedStatus: http.StatusConflict,
			expectedCode:   "ALREADY_EXISTS",
		},
		{
			name:           "user not found",
			err:            userapp.ErrUserNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "domain not found",
			err:            errs.ErrNotFound,
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "invalid input",
			err:            errs.ErrInvalidInput,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_INPUT",
		},
		{
			name:           "opaque infrastructure failure",
			err:            errors.New("mongo: connection reset"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := httpserver.RespondError(c, tt.err)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedCode)
		})
	}
}

func TestRespondError_InternalErrorHidesDetails(t *testing.T) {
	c, rec := newTestContext()

	err := httpserver.RespondError(c, errors.New("dial tcp 10.0.0.5:27017: i/o timeout"))

	require.NoError(t, err)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}
