package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/go-kanban/internal/services"
)

var errInvalidRequestBody = errors.New("invalid request body")

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

// newServiceError maps a services error onto the response it deserves.
func newServiceError(err error) apiError {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		return newNotFoundError(err.Error())
	case errors.Is(err, services.ErrTaskFieldTooLong),
		errors.Is(err, services.ErrTaskFieldRequired):
		return newBadRequestError(err.Error())
	default:
		return newStatusTextError(http.StatusInternalServerError)
	}
}
