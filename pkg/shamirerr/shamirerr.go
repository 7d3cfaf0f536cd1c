// Package shamirerr defines the categorical error kinds the shamirvault
// core reports to its hosts. No error carries secret material: every
// payload is a small, named-field diagnostic (which parameter, which share
// index) sufficient to act on without leaking the secret or share bytes
// involved.
package shamirerr

import (
	"errors"
	"fmt"
	"sort"
)

// Kind is a machine-readable error category. Hosts should switch on Kind,
// not on error message text.
type Kind string

// Error kinds, one per spec.md §7.
const (
	KindInvalidParameters        Kind = "INVALID_PARAMETERS"
	KindInvalidSecret            Kind = "INVALID_SECRET"
	KindRandomnessUnavailable    Kind = "RANDOMNESS_UNAVAILABLE"
	KindMalformedShare           Kind = "MALFORMED_SHARE"
	KindInconsistentShares       Kind = "INCONSISTENT_SHARES"
	KindInconsistentShareLengths Kind = "INCONSISTENT_SHARE_LENGTHS"
	KindInsufficientShares       Kind = "INSUFFICIENT_SHARES"
	KindInternal                 Kind = "INTERNAL"
)

// Error is the structured error type returned by every shamirvault
// operation.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string
	Cause   error
}

// New builds an Error of the given kind with an optional set of detail
// key/value pairs, provided as alternating key, value strings.
func New(kind Kind, message string, kv ...string) *Error {
	e := &Error{Kind: kind, Message: message}
	for i := 0; i+1 < len(kv); i += 2 {
		if e.Details == nil {
			e.Details = make(map[string]string, len(kv)/2)
		}
		e.Details[kv[i]] = kv[i+1]
	}
	return e
}

// Wrap builds an Error of the given kind around an underlying cause.
func Wrap(kind Kind, message string, cause error, kv ...string) *Error {
	e := New(kind, message, kv...)
	e.Cause = cause
	return e
}

func (e *Error) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports equality by Kind, so errors.Is(err, shamirerr.ErrMalformedShare)
// matches any Error of the same kind regardless of message or details.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinel errors, one per Kind, usable with errors.Is.
var (
	ErrInvalidParameters        = &Error{Kind: KindInvalidParameters, Message: "invalid parameters"}
	ErrInvalidSecret            = &Error{Kind: KindInvalidSecret, Message: "invalid secret"}
	ErrRandomnessUnavailable    = &Error{Kind: KindRandomnessUnavailable, Message: "secure randomness unavailable"}
	ErrMalformedShare           = &Error{Kind: KindMalformedShare, Message: "malformed share"}
	ErrInconsistentShares       = &Error{Kind: KindInconsistentShares, Message: "inconsistent shares"}
	ErrInconsistentShareLengths = &Error{Kind: KindInconsistentShareLengths, Message: "inconsistent share lengths"}
	ErrInsufficientShares       = &Error{Kind: KindInsufficientShares, Message: "insufficient shares"}
	ErrInternal                 = &Error{Kind: KindInternal, Message: "internal invariant violation"}
)
