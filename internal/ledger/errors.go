package ledger

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a ledger failure.
type Kind string

const (
	// KindTransport covers connectivity failures and unexpected remote statuses.
	KindTransport Kind = "transport"
	// KindProtocol means the response could not be decoded into the expected shape.
	KindProtocol Kind = "protocol"
	// KindValidation means the remote rejected the request body.
	KindValidation Kind = "validation"
	// KindNotFound means the remote reported no such account.
	KindNotFound Kind = "not_found"
)

var (
	ErrTransport  = errors.New("ledger transport error")
	ErrProtocol   = errors.New("ledger protocol error")
	ErrValidation = errors.New("ledger validation error")
	ErrNotFound   = errors.New("ledger account not found")
)

// Error is returned by every Client operation.
type Error struct {
	Kind Kind
	// Op is the client operation that failed, e.g. "fetch_balance".
	Op string
	// Status is the HTTP status code when the remote answered, zero otherwise.
	Status int
	// Message is the human-readable reason reported by the remote, if any.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s: %s (%d): %s", e.Op, e.Kind, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("%s: %s (%d %s)", e.Op, e.Kind, e.Status, http.StatusText(e.Status))
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the kind sentinels, so errors.Is(err, ErrNotFound) works on wrapped errors.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// UserMessage returns the text shown to a user for this failure.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

func (k Kind) sentinel() error {
	switch k {
	case KindTransport:
		return ErrTransport
	case KindProtocol:
		return ErrProtocol
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// KindOf reports the Kind of a ledger error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind, true
	}
	return "", false
}

func statusKind(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusNotFound:
		return KindNotFound
	default:
		return KindTransport
	}
}
