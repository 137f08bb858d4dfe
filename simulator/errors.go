package simulator

import "errors"

var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrInvalidAmount     = errors.New("amount must be greater than 0")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrUnknownMode       = errors.New("unknown mode")
	ErrUnknownOrigin     = errors.New("unknown origin")
)

// PreconditionError reports a caller contract violation. The simulation
// state is left untouched when one is returned.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func precondition(op string, err error) error {
	return &PreconditionError{Op: op, Err: err}
}
