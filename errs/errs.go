// Package errs defines the error taxonomy shared by every command:
// user-side failures (usage, validation, resolution) exit 1, service-side
// failures (network, upstream) exit 2. The exit code is derived in one
// place from the error kind, never hard-coded at call sites.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	// KindUsage marks bad or conflicting flags and unknown subcommands.
	KindUsage Kind = iota
	// KindValidation marks out-of-range or unknown parameter values.
	KindValidation
	// KindResolution marks a city query with no geocoding result.
	KindResolution
	// KindNetwork marks connection and timeout failures.
	KindNetwork
	// KindUpstream marks non-2xx responses from the API.
	KindUpstream
)

const (
	// ExitOK is returned on success.
	ExitOK = 0
	// ExitUser is returned for usage, validation and resolution errors.
	ExitUser = 1
	// ExitService is returned for network and upstream errors.
	ExitService = 2
)

// Error carries a kind alongside the message so the top-level exit point
// can map it to an exit code.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return e.Msg + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Usagef builds a usage error.
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Msg: fmt.Sprintf(format, args...)}
}

// Validationf builds a single validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// Validation joins a batch of validation messages into one error, one
// message per line, so a multi-variable list reports every offender at
// once instead of stopping at the first.
func Validation(msgs []string) *Error {
	return &Error{Kind: KindValidation, Msg: strings.Join(msgs, "\n")}
}

// Resolutionf builds a location-not-found error.
func Resolutionf(format string, args ...any) *Error {
	return &Error{Kind: KindResolution, Msg: fmt.Sprintf(format, args...)}
}

// Networkf wraps a transport failure.
func Networkf(err error, format string, args ...any) *Error {
	return &Error{Kind: KindNetwork, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Upstreamf builds an error carrying the service's own message.
func Upstreamf(format string, args ...any) *Error {
	return &Error{Kind: KindUpstream, Msg: fmt.Sprintf(format, args...)}
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) {
		switch e.Kind {
		case KindNetwork, KindUpstream:
			return ExitService
		case KindUsage, KindValidation, KindResolution:
			return ExitUser
		}
	}
	return ExitUser
}

// IsKind reports whether err is an Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
