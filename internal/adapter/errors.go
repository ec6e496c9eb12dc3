package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrLockConflict        = errors.New("answer pool already locked")
	ErrInternalServerError = errors.New("internal server error")
)

// RemoteError carries the status and body of a failed vault API response so
// callers can inspect what the server actually said. It is always wrapped
// together with one of the sentinel errors above when a matching status
// exists, so both errors.Is and errors.As work on the returned error.
type RemoteError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Body is the trimmed response body, possibly empty.
	Body string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("vault api: http %d", e.StatusCode)
	}
	return fmt.Sprintf("vault api: http %d: %s", e.StatusCode, e.Body)
}
