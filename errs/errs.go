package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel values for the failure taxonomy of the content pipeline:
// configuration absence, transport failure, content absence. None of them is
// fatal to a build; every call site degrades to an empty or not-found result.
var (
	ErrNotFound       = errors.New("not found")
	ErrCMSUnavailable = errors.New("content source not configured")
	ErrCMSQuery       = errors.New("content query failed")
	ErrBadRequest     = errors.New("malformed request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternal       = errors.New("internal server error")
)

type SiteErr struct {
	StatusCode int
	err        error
	Details    string // Additional details about the error
	Cause      error  // The underlying cause of the error
}

// implements error interface. this allows us to pass an instance of SiteErr as an argument of type `error`
func (e *SiteErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// GetFullError returns a recursive error message including all causes
func (e *SiteErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		if siteErr, ok := e.Cause.(*SiteErr); ok {
			msg = fmt.Sprintf("%s -> %s", msg, siteErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// this function allows us to do the following:
// err := &SiteErr{StatusCode: ..., err: someSentinelError}
// errors.Is(err, someSentinelError) ==> evaluates to true
func (e *SiteErr) Unwrap() error {
	return e.err
}

func NewNotFound(entity string) *SiteErr {
	return &SiteErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// NewCMSError wraps a transport or query failure against the content source.
// Callers convert these to empty results; the status code only matters when
// one leaks all the way to a response.
func NewCMSError(operation, entity string, cause error) *SiteErr {
	return &SiteErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrCMSQuery,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}

func NewCMSUnavailable() *SiteErr {
	return &SiteErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrCMSUnavailable,
	}
}

func NewBadRequestError(message string) *SiteErr {
	return &SiteErr{StatusCode: http.StatusBadRequest, err: errors.New(message)}
}

func NewUnauthorizedError(message string) *SiteErr {
	return &SiteErr{StatusCode: http.StatusUnauthorized, err: errors.New(message)}
}

func NewInternalErrorWithCause(message string, cause error) *SiteErr {
	return &SiteErr{
		StatusCode: http.StatusInternalServerError,
		err:        errors.New(message),
		Cause:      cause,
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsCMSUnavailable(err error) bool {
	return errors.Is(err, ErrCMSUnavailable)
}

func IsCMSQuery(err error) bool {
	return errors.Is(err, ErrCMSQuery)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
