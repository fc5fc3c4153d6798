package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppError carries an HTTP status code alongside the message so handlers
// can return service errors directly.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NotFound marks a missing player, session or score. Callers should not retry.
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, nil)
}

// Invalid marks malformed or out-of-state input. Callers should not retry.
func Invalid(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, nil)
}

// Unavailable marks a transient store failure. Callers may retry the whole
// operation; nothing retries mid-pipeline.
func Unavailable(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

// HTTPErrorHandler maps AppErrors onto their status code and hands anything
// else to echo's default handler.
func HTTPErrorHandler(err error, c echo.Context) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if !c.Response().Committed {
			if jsonErr := c.JSON(appErr.Code, echo.Map{"error": appErr.Message}); jsonErr != nil {
				c.Logger().Error(jsonErr)
			}
		}
		return
	}
	c.Echo().DefaultHTTPErrorHandler(err, c)
}
