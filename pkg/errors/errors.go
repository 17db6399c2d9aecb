// Package errors provides structured error handling for the weft core.
//
// The reconciliation core has no user-facing error surface: failures either
// self-heal (stale event routing) or terminate the process with a diagnostic
// (contract violations). This package carries the diagnostic half: a
// structured error with an operation name and a kind, reported through a
// process-wide handler before the caller decides whether to panic.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindContract indicates a violated framework contract, such as an
	// unbalanced build context. Contract errors are fatal.
	KindContract
	// KindPipeline indicates the render pipeline failed to reach a fixed
	// point within its restart bound. Fatal.
	KindPipeline
	// KindComm indicates a request/response channel failure on the
	// task-isolated driver. Recovered by dropping the in-flight response.
	KindComm
	// KindConfig indicates an invalid configuration value.
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindContract:
		return "contract"
	case KindPipeline:
		return "pipeline"
	case KindComm:
		return "comm"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// WeftError represents a structured error in the weft core.
type WeftError struct {
	// Op is the operation that failed (e.g., "app.RunAppLogic").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// Contract creates a fatal contract-violation error.
func Contract(op string, format string, args ...any) *WeftError {
	return &WeftError{Op: op, Kind: KindContract, Err: fmt.Errorf(format, args...)}
}

// Pipeline creates a pipeline-divergence error.
func Pipeline(op string, format string, args ...any) *WeftError {
	return &WeftError{Op: op, Kind: KindPipeline, Err: fmt.Errorf(format, args...)}
}

// Comm creates a communication error.
func Comm(op string, format string, args ...any) *WeftError {
	return &WeftError{Op: op, Kind: KindComm, Err: fmt.Errorf(format, args...)}
}
