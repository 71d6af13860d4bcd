package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rshade/canteenco2/internal/factors"
	"github.com/rshade/canteenco2/internal/impact"
	"github.com/rshade/canteenco2/internal/sourcing"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, impact.ErrValidation),
		errors.Is(err, sourcing.ErrInvalidMonth),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, factors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, factors.ErrDataLoad), errors.Is(err, sourcing.ErrDataLoad):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error) ErrorResponse {
	body := ErrorResponse{Error: err.Error()}
	var verr *impact.ValidationError
	if errors.As(err, &verr) {
		body.Field = verr.Field
	}
	return body
}

func writeError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), errorBody(err))
}

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// errBadRequest marks malformed request bodies and query values.
const errBadRequest = constError("bad request")
