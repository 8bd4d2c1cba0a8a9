package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a 200 response with the payload as-is.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// CreatedResponse writes a 201 response.
func CreatedResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

// NoContentResponse writes a 204 response.
func NoContentResponse(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// ErrorBodyResponse writes an error body with an explicit status.
func ErrorBodyResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, ErrorResponse{Error: message})
}

// BadRequestResponse writes a 400 error from validation failures.
func BadRequestResponse(c echo.Context, verr interface{}) error {
	if errs, ok := verr.([]ValidationError); ok && len(errs) > 0 {
		return ErrorBodyResponse(c, http.StatusBadRequest, errs[0].Message)
	}
	return ErrorBodyResponse(c, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
}

// AppErrorResponse converts an error into the wire error payload. AppErrors
// carry their own status; anything else is a 500.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorBodyResponse(c, appErr.Status, appErr.Message)
	}
	return ErrorBodyResponse(c, http.StatusInternalServerError, "internal server error")
}
