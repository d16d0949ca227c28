package sparsecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrorCode enumerates the serialization/prefab failure categories from
// spec.md §7.
type ErrorCode int

const (
	ErrNone ErrorCode = iota
	ErrInvalidPayload
	ErrMissingField
	ErrTypeMismatch
	ErrComponentNotRegistered
	ErrUnknownPrefab
	ErrInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrNone:
		return "None"
	case ErrInvalidPayload:
		return "InvalidPayload"
	case ErrMissingField:
		return "MissingField"
	case ErrTypeMismatch:
		return "TypeMismatch"
	case ErrComponentNotRegistered:
		return "ComponentNotRegistered"
	case ErrUnknownPrefab:
		return "UnknownPrefab"
	case ErrInternal:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// Result is the {code, message} result value spec.md §7 asks serialization
// and prefab operations to return, rather than a bare error — Code stays
// inspectable even once Err carries wrapped context.
type Result struct {
	Code ErrorCode
	Err  error
}

// Ok is the zero-value success Result.
func Ok() Result { return Result{Code: ErrNone} }

// Failf builds a failing Result with a formatted message.
func Failf(code ErrorCode, format string, args ...any) Result {
	return Result{Code: code, Err: fmt.Errorf(format, args...)}
}

// Success reports whether the Result represents no error.
func (r Result) Success() bool {
	return r.Code == ErrNone
}

// Unwrap lets a Result compose with errors.Is/errors.As and standard error
// handling.
func (r Result) Unwrap() error {
	return r.Err
}

func (r Result) Error() string {
	if r.Err == nil {
		return r.Code.String()
	}
	return fmt.Sprintf("%s: %s", r.Code, r.Err)
}

// ErrorReporter receives failing Results for out-of-band reporting (logs,
// telemetry) without forcing every caller to check every Result.
type ErrorReporter interface {
	Report(Result)
}

// NopReporter discards every Result. The default when none is configured.
type NopReporter struct{}

func (NopReporter) Report(Result) {}

// ErrCycleOrMissingDependency is returned by RunGraph/RebuildGraph when the
// named system DAG contains a cycle or references an unregistered
// dependency, per spec.md §7's distinguished scheduler-topology error.
var ErrCycleOrMissingDependency = eris.New("sparsecs: system graph has a cycle or missing dependency")

// ErrPoolStopped is returned by ThreadPool.Submit after Shutdown has been
// called, per spec.md §7's pool-shutdown-race category.
var ErrPoolStopped = eris.New("sparsecs: submit on stopped thread pool")
