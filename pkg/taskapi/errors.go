package taskapi

import "errors"

// ErrorKind identifies which operation failed.
type ErrorKind string

const (
	KindFetch  ErrorKind = "FetchError"
	KindCreate ErrorKind = "CreateError"
	KindDelete ErrorKind = "DeleteError"
	KindUpdate ErrorKind = "UpdateError"
)

// Fixed messages reported by each error kind.
const (
	MsgFetch  = "Failed to fetch tasks"
	MsgCreate = "Failed to create task"
	MsgDelete = "Failed to delete task"
	MsgUpdate = "Failed to update task"
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrFetch  = errors.New(MsgFetch)
	ErrCreate = errors.New(MsgCreate)
	ErrDelete = errors.New(MsgDelete)
	ErrUpdate = errors.New(MsgUpdate)
)

var sentinels = map[ErrorKind]error{
	KindFetch:  ErrFetch,
	KindCreate: ErrCreate,
	KindDelete: ErrDelete,
	KindUpdate: ErrUpdate,
}

// Error is returned when an operation fails, either because the request
// could not be sent or because the server did not answer with a 2xx status.
// The message is fixed per kind and never includes the status or cause.
type Error struct {
	Kind ErrorKind
	// StatusCode is the response status, or 0 if no response was received.
	StatusCode int
	// Err is the transport error, if any.
	Err error
}

func (e *Error) Error() string {
	if s, ok := sentinels[e.Kind]; ok {
		return s.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

func newError(kind ErrorKind, statusCode int, err error) *Error {
	return &Error{Kind: kind, StatusCode: statusCode, Err: err}
}

// IsFetchError returns true if the error is a failed FetchTasks call.
func IsFetchError(err error) bool {
	return errors.Is(err, ErrFetch)
}

// IsCreateError returns true if the error is a failed CreateTask call.
func IsCreateError(err error) bool {
	return errors.Is(err, ErrCreate)
}

// IsDeleteError returns true if the error is a failed DeleteTask call.
func IsDeleteError(err error) bool {
	return errors.Is(err, ErrDelete)
}

// IsUpdateError returns true if the error is a failed ToggleTask call.
func IsUpdateError(err error) bool {
	return errors.Is(err, ErrUpdate)
}

// StatusCode returns the HTTP status carried by a task API error, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
