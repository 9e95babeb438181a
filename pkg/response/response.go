package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "realestate/pkg/errors"
	"realestate/pkg/logger"
)

type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorInfo  `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{
		Success:   true,
		Data:      data,
		Timestamp: now(),
	})
}

// Message answers 200 with a {"message": ...} payload.
func Message(c echo.Context, message string) error {
	return Success(c, map[string]string{"message": message})
}

func Error(c echo.Context, err error) error {
	status, info := describe(err)
	if status >= http.StatusInternalServerError {
		logger.Error("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	return c.JSON(status, Response{
		Success:   false,
		Error:     info,
		Timestamp: now(),
	})
}

// HTTPErrorHandler renders errors that escape handlers (router 404/405,
// middleware rejections) in the same envelope as handler errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if rerr := Error(c, err); rerr != nil {
		logger.Error("failed to write error response: %v", rerr)
	}
}

func describe(err error) (int, *ErrorInfo) {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &ErrorInfo{
			Code:    "VALIDATION_ERROR",
			Message: validationMessage(validationErr),
		}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Status, &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorInfo{
			Code:    codeForStatus(httpErr.Code),
			Message: fmt.Sprint(httpErr.Message),
		}
	}

	return http.StatusInternalServerError, &ErrorInfo{
		Code:    "INTERNAL_ERROR",
		Message: "An unexpected error occurred",
	}
}

func validationMessage(validationErr validator.ValidationErrors) string {
	if len(validationErr) == 0 {
		return "Invalid input data"
	}

	err := validationErr[0]
	field := lowerFirst(err.Field())
	param := err.Param()

	switch err.Tag() {
	case "required":
		return field + " is required"
	case "min", "gte":
		return field + " must be at least " + param
	case "max", "lte":
		return field + " must be at most " + param
	case "gt":
		return field + " must be greater than " + param
	case "oneof":
		return field + " must be one of: " + param
	case "email":
		return field + " must be a valid email address"
	case "url":
		return field + " must be a valid URL"
	default:
		return field + " is invalid"
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	default:
		if status >= http.StatusInternalServerError {
			return "INTERNAL_ERROR"
		}
		return strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
