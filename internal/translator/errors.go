package translator

import (
	"errors"
	"fmt"
)

// Kind classifies a provider failure so the HTTP layer can distinguish
// transient failures from permanent ones.
type Kind int

const (
	// KindUnavailable covers network errors, timeouts and provider 5xx
	// responses. The caller may retry.
	KindUnavailable Kind = iota
	// KindRejected covers provider-reported errors such as an unsupported
	// language pair or malformed content. Retrying will not help.
	KindRejected
)

// Error is a classified provider failure.
type Error struct {
	Kind     Kind
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as a transient provider failure.
func Unavailable(provider string, err error) *Error {
	return &Error{Kind: KindUnavailable, Provider: provider, Err: err}
}

// Rejected wraps err as a permanent provider failure.
func Rejected(provider string, err error) *Error {
	return &Error{Kind: KindRejected, Provider: provider, Err: err}
}

// KindOf extracts the failure kind from err. Unclassified errors, including
// context expiry the provider client did not wrap, count as unavailable.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnavailable
}
