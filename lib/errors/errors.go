package errors

import (
	"fmt"
	"runtime"
)

// traced annotates an underlying error with the location at which it was
// traced, preserving the full chain down to the original cause.
type traced struct {
	err  error
	file string
	line int
}

// Error implements the error interface.
func (t *traced) Error() string {
	return t.err.Error()
}

// Trace annotates an error with the file and line of the caller. Tracing a
// nil error returns nil so that `return errors.Trace(err)` is always safe.
func Trace(
	err error,
) error {
	if err == nil {
		return nil
	}
	_, file, line, _ := runtime.Caller(1)
	return &traced{
		err:  err,
		file: file,
		line: line,
	}
}

// Newf creates a new error from a format string and arguments.
func Newf(
	format string,
	args ...interface{},
) error {
	return fmt.Errorf(format, args...)
}

// Cause returns the innermost error of a trace chain, which is the error
// originally traced. Used to triage typed errors:
// ```
//	switch err := errors.Cause(err).(type) {
//	case model.ErrUniqueConstraintViolation:
//	...
// ```
func Cause(
	err error,
) error {
	for {
		if t, ok := err.(*traced); ok {
			err = t.err
		} else {
			return err
		}
	}
}

// ErrorStack returns the list of locations at which the error was traced,
// outermost first, ending with the cause error message.
func ErrorStack(
	err error,
) []string {
	stack := []string{}
	for err != nil {
		if t, ok := err.(*traced); ok {
			stack = append(stack,
				fmt.Sprintf("%s:%d", t.file, t.line))
			err = t.err
		} else {
			stack = append(stack, err.Error())
			break
		}
	}
	return stack
}

// Details returns a human readable dump of the error along with its trace
// stack, generally used when logging fatal errors:
// ```
//	log.Fatal(errors.Details(err))
// ```
func Details(
	err error,
) string {
	details := fmt.Sprintf("%s", err.Error())
	for _, line := range ErrorStack(err) {
		details += fmt.Sprintf("\n  %s", line)
	}
	return details
}
