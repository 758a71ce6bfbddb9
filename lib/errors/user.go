package errors

import "fmt"

// UserError is the error interface used to report errors to users of the
// API. User errors carry an HTTP status, a machine readable code and a human
// readable message on top of an optional cause.
type UserError interface {
	error
	Status() int
	Code() string
	Message() string
	Cause() error
}

type userError struct {
	cause   error
	status  int
	code    string
	message string
}

// Error implements the error interface.
func (e *userError) Error() string {
	return fmt.Sprintf("[%d %s] %s", e.status, e.code, e.message)
}

// Status returns the HTTP status associated with this user error.
func (e *userError) Status() int {
	return e.status
}

// Code returns the machine readable code for this user error.
func (e *userError) Code() string {
	return e.code
}

// Message returns the human readable message for this user error.
func (e *userError) Message() string {
	return e.message
}

// Cause returns the underlying error that triggered this user error, if any.
func (e *userError) Cause() error {
	return e.cause
}

// NewUserError creates a new UserError with the specified status, code and
// message, marking err as its cause (err can be nil).
func NewUserError(
	err error,
	status int,
	code string,
	message string,
) UserError {
	return &userError{
		cause:   err,
		status:  status,
		code:    code,
		message: message,
	}
}

// NewUserErrorf creates a new UserError, formatting its message.
func NewUserErrorf(
	err error,
	status int,
	code string,
	format string,
	args ...interface{},
) UserError {
	return NewUserError(err, status, code, fmt.Sprintf(format, args...))
}

// ExtractUserError walks a trace chain and returns the first UserError found
// or nil if the chain does not contain one.
func ExtractUserError(
	err error,
) UserError {
	for err != nil {
		if e, ok := err.(UserError); ok {
			return e
		}
		if t, ok := err.(*traced); ok {
			err = t.err
		} else {
			return nil
		}
	}
	return nil
}

// ConcreteUserError is the serializable representation of a UserError, used
// to generate API error responses.
type ConcreteUserError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Build generates a ConcreteUserError from a UserError.
func Build(
	e UserError,
) *ConcreteUserError {
	return &ConcreteUserError{
		Status:  e.Status(),
		Code:    e.Code(),
		Message: e.Message(),
	}
}
