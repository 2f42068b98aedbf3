package commands

import "errors"

type ErrorKind string

const (
	KindEmptyCommand     ErrorKind = "empty_command"
	KindProgramNotFound  ErrorKind = "program_not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
	KindRejected         ErrorKind = "rejected"
	KindOther            ErrorKind = "other"
)

var (
	ErrEmptyCommand     = errors.New("empty command")
	ErrProgramNotFound  = errors.New("program not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrRejected         = errors.New("command rejected by policy")
)

// ExecError is returned for every failed Execute call. Message is the text
// shown to the user; Err is the underlying cause when there is one.
type ExecError struct {
	Kind    ErrorKind
	Program string
	Message string
	Err     error
}

func (e *ExecError) Error() string { return e.Message }

func (e *ExecError) Unwrap() error { return e.Err }

func (e *ExecError) Is(target error) bool {
	switch target {
	case ErrEmptyCommand:
		return e.Kind == KindEmptyCommand
	case ErrProgramNotFound:
		return e.Kind == KindProgramNotFound
	case ErrPermissionDenied:
		return e.Kind == KindPermissionDenied
	case ErrRejected:
		return e.Kind == KindRejected
	}
	return false
}

// KindOf reports the ExecError kind of err, or "" for other errors.
func KindOf(err error) ErrorKind {
	var execErr *ExecError
	if errors.As(err, &execErr) {
		return execErr.Kind
	}
	return ""
}
