package model

import (
	"errors"
	"net/http"
)

var (
	ErrFetch            = errors.New("FETCH_ERROR")
	ErrRateLimitReached = errors.New("RATE_LIMIT_REACHED")
	ErrInvalidData      = errors.New("INVALID_DATA_FOUND")
	ErrInvalidQuery     = errors.New("INVALID_QUERY")
)

// UpstreamQueryError is returned when the graphql response carries an errors array.
// Only the first entry is kept.
type UpstreamQueryError struct {
	Type    string
	Message string
}

func (e *UpstreamQueryError) Error() string {
	return e.Message
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	var upstreamErr *UpstreamQueryError
	if errors.As(errReason, &upstreamErr) {
		return APIError{
			Code:    "UPSTREAM_QUERY_ERROR",
			Message: upstreamErr.Message,
		}
	}

	switch {
	case errors.Is(errReason, ErrRateLimitReached):
		return APIError{
			Code:    ErrRateLimitReached.Error(),
			Message: "rate limit reached. wait few minutes and try again",
		}

	case errors.Is(errReason, ErrInvalidQuery):
		return APIError{
			Code:    ErrInvalidQuery.Error(),
			Message: "missing or invalid query parameters. username is required",
		}

	case errors.Is(errReason, ErrFetch):
		return newInternalAPIError(ErrFetch)

	case errors.Is(errReason, ErrInvalidData):
		return newInternalAPIError(ErrInvalidData)
	}

	return APIError{
		Code:    "GENERIC_ERROR",
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}

func newInternalAPIError(code error) APIError {
	return APIError{
		Code:    code.Error(),
		Message: "internal server error. contact our support with the reason code for assistance",
	}
}

// HTTPStatus returns the status code the controller should answer with for this error
func HTTPStatus(err error) int {
	var upstreamErr *UpstreamQueryError
	if errors.As(err, &upstreamErr) {
		if upstreamErr.Type == "NOT_FOUND" {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	}

	switch {
	case errors.Is(err, ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, ErrRateLimitReached):
		return http.StatusTooManyRequests
	}

	return http.StatusInternalServerError
}
