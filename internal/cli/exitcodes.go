package cli

import (
	"errors"

	"github.com/yaklabco/gomdparse/pkg/schedule"
)

// Exit codes for gomdparse.
const (
	// ExitSuccess indicates successful execution with status ok.
	ExitSuccess = 0

	// ExitParseIssues indicates the parse completed with status error.
	ExitParseIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates a terminal parse fault (timeout or
	// unit failure) or another internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ErrParseIssuesFound signals that parsing finished with status error.
// It maps to ExitParseIssues without any additional logging.
var ErrParseIssuesFound = errors.New("parse issues found")

// ioError wraps file read/write failures so they map to ExitIOError.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }
func (e *ioError) Unwrap() error { return e.err }

// configError wraps configuration loading failures so they map to
// ExitConfigError.
type configError struct {
	err error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrParseIssuesFound) {
		return ExitParseIssues
	}

	var ioErr *ioError
	if errors.As(err, &ioErr) {
		return ExitIOError
	}

	var cfgErr *configError
	if errors.As(err, &cfgErr) {
		return ExitConfigError
	}

	var timeoutErr *schedule.TimeoutError
	var unitErr *schedule.UnitError
	if errors.As(err, &timeoutErr) || errors.As(err, &unitErr) {
		return ExitInternalError
	}

	return ExitInternalError
}
