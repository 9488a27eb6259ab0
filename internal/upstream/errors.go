package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	ErrCodeNetworkFailure ErrorCode = "NETWORK_FAILURE"
	ErrCodeHTTPStatus     ErrorCode = "HTTP_STATUS"
	ErrCodeReadFailure    ErrorCode = "READ_FAILURE"
	ErrCodeEncodeFailure  ErrorCode = "ENCODE_FAILURE"
)

// Error is a transport-level failure talking to an upstream service.
type Error struct {
	Code    ErrorCode
	Client  string
	Op      string // "GET /books"
	Status  int    // 0 unless Code is ErrCodeHTTPStatus
	Message string // upstream body excerpt, for logs only
	Err     error
}

func (e *Error) Error() string {
	if e.Code == ErrCodeHTTPStatus {
		return fmt.Sprintf("[%s] %s %s: upstream returned status %d", e.Code, e.Client, e.Op, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s %s: %v", e.Code, e.Client, e.Op, e.Err)
	}
	return fmt.Sprintf("[%s] %s %s", e.Code, e.Client, e.Op)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the upstream answered 404.
func (e *Error) NotFound() bool {
	return e.Code == ErrCodeHTTPStatus && e.Status == http.StatusNotFound
}

// IsNotFound reports whether err carries an upstream 404.
func IsNotFound(err error) bool {
	var upErr *Error
	return errors.As(err, &upErr) && upErr.NotFound()
}

func newNetworkError(client, op string, err error) *Error {
	return &Error{Code: ErrCodeNetworkFailure, Client: client, Op: op, Err: err}
}

func newStatusError(client, op string, status int, body string) *Error {
	return &Error{Code: ErrCodeHTTPStatus, Client: client, Op: op, Status: status, Message: body}
}
