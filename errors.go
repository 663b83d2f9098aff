package clf

import (
	"fmt"
)

// ErrorKind classifies the errors returned by the ledger.
type ErrorKind string

const (
	// Storage is a store that cannot be opened, read or written.
	Storage ErrorKind = "storage"
	// MalformedRecord is a line that does not have the shape its store expects.
	MalformedRecord ErrorKind = "malformed record"
	// UnknownAccount is an account id absent from the directory.
	UnknownAccount ErrorKind = "unknown account"
	// InvalidQuery is a query filter of an unrecognized kind.
	InvalidQuery ErrorKind = "invalid query"
	// InvalidInput is a value supplied by the user that cannot be used (non numeric amount, tab in a description...).
	InvalidInput ErrorKind = "invalid input"
)

// Error is the error type returned by the ledger.
//
// Use errors.Is with the Err* sentinels to test the kind:
//
//	if errors.Is(err, clf.ErrUnknownAccount) { ... }
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return string(e.Kind)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind when target is one of the sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Msg == "" && t.Err == nil {
		return e.Kind == t.Kind
	}
	return e == t
}

// Sentinels, one per kind.
var (
	ErrStorage         = &Error{Kind: Storage}
	ErrMalformedRecord = &Error{Kind: MalformedRecord}
	ErrUnknownAccount  = &Error{Kind: UnknownAccount}
	ErrInvalidQuery    = &Error{Kind: InvalidQuery}
	ErrInvalidInput    = &Error{Kind: InvalidInput}
)

func newError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
