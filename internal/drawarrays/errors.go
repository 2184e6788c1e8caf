package drawarrays

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Contract sentinels. Every precondition violation panics with a
// *ContractError wrapping exactly one of these.
var (
	ErrSessionOpen    = errors.New("construction session already open")
	ErrNoSession      = errors.New("no construction session open")
	ErrUnknownHandle  = errors.New("unknown draw array handle")
	ErrNotFinished    = errors.New("draw array not finished")
	ErrAttributeCount = errors.New("attribute count does not match vertex count")
	ErrTopology       = errors.New("vertex count incompatible with topology")
	ErrTempSession    = errors.New("session is temporary")
	ErrNamedSession   = errors.New("session is not temporary")
	ErrStaleRef       = errors.New("stale draw array reference")
)

// ContractError is the panic value raised when a caller breaks the
// registry or builder contract. It is a programming error, not a
// condition to handle; Recover exists for tests and tooling.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return "drawarrays: " + e.Op + ": " + e.Err.Error()
}

func (e *ContractError) Unwrap() error { return e.Err }

// Format prints the stack of the offending call with %+v.
func (e *ContractError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "drawarrays: %s: %+v", e.Op, e.Err)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}

func violate(op string, sentinel error, format string, args ...any) {
	panic(&ContractError{Op: op, Err: errors.Wrapf(sentinel, format, args...)})
}

// Recover runs fn and converts a contract panic into an error.
// Any other panic is re-raised.
func Recover(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			ce, ok := v.(*ContractError)
			if !ok {
				panic(v)
			}
			err = ce
		}
	}()
	fn()
	return nil
}
