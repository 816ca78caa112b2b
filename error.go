package funcz

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Contract violations. Every structural check in funcz reports one of these
// sentinels wrapped in a *ContractError, so callers can match with errors.Is.
var (
	ErrNoSignature      = errors.New("no discoverable signature")
	ErrArity            = errors.New("wrong arity")
	ErrTypeMismatch     = errors.New("parameter types do not match")
	ErrVoidResult       = errors.New("function must return a value")
	ErrNoTypes          = errors.New("at least one type required")
	ErrNilType          = errors.New("nil type")
	ErrInterfaceType    = errors.New("alternative must be a concrete type")
	ErrDuplicateType    = errors.New("types must be unique")
	ErrForeignType      = errors.New("type is not an alternative")
	ErrDuplicateHandler = errors.New("only one handler per alternative allowed")
	ErrMissingHandler   = errors.New("handlers do not cover all alternatives")
	ErrResultMismatch   = errors.New("all handlers must return the same type")
	ErrNotClosed        = errors.New("handler must return an alternative type")
	ErrEmptyVariant     = errors.New("variant holds no value")
	ErrForeignUnion     = errors.New("variant belongs to a different union")
)

// ContractError describes a violated structural contract: which operation
// rejected its input, at which position (argument, step or handler index),
// and which type was at fault. Position is -1 when no position applies.
type ContractError struct {
	Type     reflect.Type
	Err      error
	Op       string
	Detail   string
	Position int
}

func (e *ContractError) Error() string {
	var b strings.Builder
	b.WriteString("funcz: ")
	b.WriteString(e.Op)
	if e.Position >= 0 {
		fmt.Fprintf(&b, ": position %d", e.Position)
	}
	if e.Type != nil {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the violated sentinel.
func (e *ContractError) Unwrap() error {
	return e.Err
}

func contractErr(op string, pos int, t reflect.Type, err error, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Position: pos, Type: t, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// PipelineError provides rich context about a Pipeline failure.
// It wraps the underlying error with the path of pipeline and stage
// names, the input that was being processed and timing information.
type PipelineError[T any] struct {
	Timestamp time.Time
	InputData T
	Err       error
	Path      []Name
	Duration  time.Duration
	Stage     int
	Timeout   bool
	Canceled  bool
}

// Error implements the error interface, providing a detailed error message.
func (e *PipelineError[T]) Error() string {
	location := strings.Join(e.Path, " -> ")
	if e.Timeout {
		return fmt.Sprintf("%s timed out after %v: %v", location, e.Duration, e.Err)
	}
	if e.Canceled {
		return fmt.Sprintf("%s canceled after %v: %v", location, e.Duration, e.Err)
	}
	return fmt.Sprintf("%s failed after %v: %v", location, e.Duration, e.Err)
}

// Unwrap returns the underlying error, supporting error wrapping patterns.
func (e *PipelineError[T]) Unwrap() error {
	return e.Err
}

// IsTimeout returns true if the error was caused by a timeout.
func (e *PipelineError[T]) IsTimeout() bool {
	return e.Timeout || errors.Is(e.Err, context.DeadlineExceeded)
}

// IsCanceled returns true if the error was caused by cancellation.
func (e *PipelineError[T]) IsCanceled() bool {
	return e.Canceled || errors.Is(e.Err, context.Canceled)
}
