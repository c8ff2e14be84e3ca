package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stkrizh/conduit/internal/application/appcore"
	userapp "github.com/stkrizh/conduit/internal/application/user"
	"github.com/stkrizh/conduit/internal/domain/errs"
)

// Response represents a standard API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   *Error `json:"error,omitempty"`
}

// Error represents an error in the API response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON sends a successful JSON response.
func RespondJSON(c echo.Context, code int, data any) error {
	return c.JSON(code, Response{
		Success: true,
		Data:    data,
	})
}

// RespondOK sends a 200 OK response with data.
func RespondOK(c echo.Context, data any) error {
	return RespondJSON(c, http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with data.
func RespondCreated(c echo.Context, data any) error {
	return RespondJSON(c, http.StatusCreated, data)
}

// RespondError sends an error JSON response based on the error type.
func RespondError(c echo.Context, err error) error {
	statusCode, apiError := mapError(err)
	return c.JSON(statusCode, Response{
		Success: false,
		Error:   apiError,
	})
}

// RespondErrorWithCode sends an error JSON response with a specific HTTP status code.
func RespondErrorWithCode(c echo.Context, code int, errorCode, message string) error {
	return c.JSON(code, Response{
		Success: false,
		Error: &Error{
			Code:    errorCode,
			Message: message,
		},
	})
}

// RespondNotFound sends a 404 response. Used by handlers when a use case
// reports the target as a nil profile - absence is data at the core, and this
// boundary chooses to render it as not-found.
func RespondNotFound(c echo.Context, message string) error {
	return RespondErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", message)
}

// mapError maps application and domain errors to HTTP status codes.
// Authentication and credential errors both render as 401; the credential
// message stays generic so the response shape never hints at which field
// was wrong.
func mapError(err error) (int, *Error) {
	var validationErr *appcore.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, &Error{
			Code:    "VALIDATION_ERROR",
			Message: validationErr.Error(),
		}
	}

	switch {
	case errors.Is(err, appcore.ErrUserNotAuthenticated):
		return http.StatusUnauthorized, &Error{
			Code:    "UNAUTHORIZED",
			Message: "Authentication required",
		}

	case errors.Is(err, userapp.ErrInvalidCredentials):
		return http.StatusUnauthorized, &Error{
			Code:    "INVALID_CREDENTIALS",
			Message: "Invalid email or password",
		}

	case errors.Is(err, userapp.ErrUsernameAlreadyTaken),
		errors.Is(err, userapp.ErrEmailAlreadyTaken),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict, &Error{
			Code:    "ALREADY_EXISTS",
			Message: "The resource already exists",
		}

	case errors.Is(err, userapp.ErrUserNotFound),
		errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, &Error{
			Code:    "NOT_FOUND",
			Message: "The requested resource was not found",
		}

	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, &Error{
			Code:    "INVALID_INPUT",
			Message: "Invalid input data",
		}

	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, &Error{
			Code:    "UNAUTHORIZED",
			Message: "Authentication required",
		}

	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, &Error{
			Code:    "FORBIDDEN",
			Message: "Access denied",
		}

	default:
		return http.StatusInternalServerError, &Error{
			Code:    "INTERNAL_ERROR",
			Message: "An internal error occurred",
		}
	}
}
