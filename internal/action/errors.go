package action

import (
	"errors"
	"fmt"
)

// Sentinel codes carried by SchemaError. Use errors.Is to classify.
var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrMissingArgument = errors.New("missing argument")
	ErrWrongType       = errors.New("wrong argument type")
	ErrOutOfRange      = errors.New("argument out of range")
)

// SchemaError reports why an action request failed validation.
type SchemaError struct {
	Kind     string
	Argument string
	Code     error
	Detail   string
}

func (e *SchemaError) Error() string {
	switch {
	case e.Argument == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Code)
	case e.Detail == "":
		return fmt.Sprintf("%s: %v %q", e.Kind, e.Code, e.Argument)
	default:
		return fmt.Sprintf("%s: %v %q: %s", e.Kind, e.Code, e.Argument, e.Detail)
	}
}

// Unwrap exposes the sentinel code.
func (e *SchemaError) Unwrap() error { return e.Code }
