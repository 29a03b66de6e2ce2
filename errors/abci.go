package errors

import (
	"fmt"
	"reflect"
)

const (
	// SuccessABCICode declares an ABCI response use 0 to signal that the
	// processing was successful and no error is returned.
	SuccessABCICode = 0

	// All unclassified errors that do not provide an ABCI code are clubbed
	// under an internal error code and a generic message instead of
	// detailed error string.
	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the ABCI error information as consumed by the tendermint
// client. Returned code and log message should be used as an ABCI response.
// Any error that does not provide ABCICode information is categorized as error
// with code 1.
// When not running in a debug mode all messages of errors that do not provide
// ABCICode information are replaced with generic "internal error". Errors
// without an ABCICode information are considered internal.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}

	// Only non-internal errors should expose the original message to
	// avoid leaking implementation details over the ABCI interface.
	code := abciCode(err)
	if code == internalABCICode && !debug {
		return internalABCICode, internalABCILog
	}
	return code, err.Error()
}

// abciCode tests if given error contains an ABCI code and returns the value of
// it if available. This function is testing for the causer interface as well
// and unwraps the error.
func abciCode(err error) uint32 {
	for {
		if c, ok := err.(coder); ok {
			return c.ABCICode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalABCICode
		}
	}
}

// HasErrorCode checks if this error would return the named error code
func HasErrorCode(err error, code uint32) bool {
	return abciCode(err) == code
}

func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}

// NormalizePanic converts a panic into a ErrPanic instance so that we know to
// redact potentially sensitive system info before passing it to a client.
func NormalizePanic(p interface{}) error {
	if err, ok := p.(error); ok {
		return Wrap(ErrPanic, err.Error())
	}
	return ErrPanic.Newf("%v", p)
}

// Redact replaces all panic errors with a generic message. Use before
// returning an error over the ABCI interface outside of debug mode.
func Redact(err error) error {
	if ErrPanic.Is(err) {
		return fmt.Errorf(internalABCILog)
	}
	return err
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = NormalizePanic(r)
	}
}

// coder is an interface implemented by errors that carry an ABCI response
// code.
type coder interface {
	ABCICode() uint32
}
