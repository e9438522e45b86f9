package session

import (
	"fmt"

	"github.com/go-errors/errors"
	"golang.org/x/xerrors"
)

const (
	// NotAttached tells us the front-end invoked an operation that needs an
	// attached process
	NotAttached = iota

	// NoScanData tells us the operation needs snapshots that have not been
	// captured yet
	NoScanData
)

// WrapError wraps an error for the sake of showing a stack trace at the top level
// the go-errors package, for some reason, does not return nil when you try to wrap
// a non-error, so we're just doing it here
func WrapError(err error) error {
	if err == nil {
		return err
	}

	return errors.Wrap(err, 0)
}

// ComplexError an error which carries a code so that calling code has an easier job to do
type ComplexError struct {
	Message string
	Code    int
	frame   xerrors.Frame
}

// NewComplexError creates a ComplexError capturing the caller's frame
func NewComplexError(message string, code int) ComplexError {
	return ComplexError{
		Message: message,
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// FormatError is a function
func (ce ComplexError) FormatError(p xerrors.Printer) error {
	p.Printf("%d %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format is a function
func (ce ComplexError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce ComplexError) Error() string {
	return ce.Message
}

// HasErrorCode is a function
func HasErrorCode(err error, code int) bool {
	var originalErr ComplexError
	if xerrors.As(err, &originalErr) {
		return originalErr.Code == code
	}
	return false
}

// NewNotAttachedError is returned when a command requires an attached process
func NewNotAttachedError() error {
	return NewComplexError("not attached to a process", NotAttached)
}

// NewNoScanDataError is returned when a command requires snapshots that have
// not been captured yet
func NewNoScanDataError() error {
	return NewComplexError("no scan data available", NoScanData)
}
