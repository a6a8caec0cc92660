package errors

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/pkg/models"
)

// Verbose controls whether responses carry internal error detail. It is set
// once at startup from configuration and must stay false in production.
var Verbose bool

func response(code, message string, err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		Error:   code,
		Message: message,
	}
	if Verbose && err != nil {
		resp.Detail = err.Error()
	}
	return resp
}

// BadRequest returns a 400 with the given message
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response("bad_request", message, nil))
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[VALIDATION ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadRequest, response("validation_error", "Invalid request data. Please check your input and try again.", err))
}

// NotFound returns a 404 with the given message. Empty result sets use this
// too: the API contract reports "no data" as an explicit status, not an
// empty array.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, response("not_found", message, nil))
}

// NoData returns a 404 for queries that resolved but produced an unusable
// result set (for example zero valid prices).
func NoData(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, response("no_data", message, nil))
}

// UpstreamFailure returns a 502 for external service failures
func UpstreamFailure(c echo.Context, err error) error {
	log.Printf("[UPSTREAM ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusBadGateway, response("upstream_failure", "An external service failed to respond. Please try again later.", err))
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[DATABASE ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, response("database_error", "A database error occurred. Please try again later.", err))
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	// Log the actual error for debugging
	log.Printf("[INTERNAL ERROR] Path: %s, Error: %v", c.Request().URL.Path, err)

	return c.JSON(http.StatusInternalServerError, response("internal_error", "An internal error occurred. Please try again later.", err))
}

// UnauthorizedError returns a generic unauthorized error
func UnauthorizedError(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: "You are not authorized to access this resource.",
	})
}

// ForbiddenError returns a generic forbidden error
func ForbiddenError(c echo.Context) error {
	return c.JSON(http.StatusForbidden, models.ErrorResponse{
		Error:   "forbidden",
		Message: "You do not have permission to access this resource.",
	})
}

// ConflictError returns a generic conflict error
func ConflictError(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, models.ErrorResponse{
		Error:   "conflict",
		Message: message, // Message is safe to expose (e.g., "User already exists")
	})
}
