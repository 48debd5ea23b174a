package shared

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Kind string

const (
	KindAuth       Kind = "auth"
	KindValidation Kind = "validation"
	KindUpstream   Kind = "upstream"
	KindData       Kind = "data"
	KindRateLimit  Kind = "rate_limit"
	KindInternal   Kind = "internal"
)

const unexpectedMessage = "Unexpected error occurred"

// Error is a request failure that already knows the status it maps to and
// the message shown to the caller.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func NewError(kind Kind, status int, message string) *Error {
	return &Error{
		Kind:    kind,
		Status:  status,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

func Unauthorized(message string) *Error {
	return NewError(KindAuth, http.StatusUnauthorized, message)
}

func BadRequest(message string) *Error {
	return NewError(KindValidation, http.StatusBadRequest, message)
}

func Upstream(status int, message string) *Error {
	return NewError(KindUpstream, status, message)
}

func NoData(message string) *Error {
	return NewError(KindData, http.StatusBadGateway, message)
}

func TooManyRequests(message string) *Error {
	return NewError(KindRateLimit, http.StatusTooManyRequests, message)
}

func InternalError(err error) *Error {
	message := unexpectedMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return NewError(KindInternal, http.StatusInternalServerError, message).Wrap(err)
}

// Classify converts any error returned by a handler into an *Error.
func Classify(err error) *Error {
	var reqErr *Error
	if errors.As(err, &reqErr) {
		return reqErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return fromHTTPError(httpErr)
	}

	return InternalError(err)
}

func fromHTTPError(he *echo.HTTPError) *Error {
	message := http.StatusText(he.Code)
	switch m := he.Message.(type) {
	case string:
		message = m
	case error:
		message = m.Error()
	case nil:
	default:
		message = fmt.Sprint(m)
	}
	if message == "" {
		message = unexpectedMessage
	}

	kind := KindInternal
	switch {
	case he.Code == http.StatusUnauthorized:
		kind = KindAuth
	case he.Code == http.StatusTooManyRequests:
		kind = KindRateLimit
	case he.Code >= 400 && he.Code < 500:
		kind = KindValidation
	}

	return NewError(kind, he.Code, message).Wrap(he.Internal)
}
