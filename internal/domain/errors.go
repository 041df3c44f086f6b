package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trade and stock-info flows.
// Handlers match these with errors.Is and translate them to HTTP statuses.
var (
	// ErrUnknownSymbol - ticker is not in the symbol universe and has no
	// acceptable fuzzy match
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrInsufficientShares - sell exceeds the held quantity (or nothing is held)
	ErrInsufficientShares = errors.New("insufficient shares to sell")

	// ErrDataUnavailable - market data fetch exhausted retries or returned no
	// usable data
	ErrDataUnavailable = errors.New("market data unavailable")
)

// UnknownSymbolError carries the offending input alongside ErrUnknownSymbol
// so handlers can report the symbol the client actually sent.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol: %s", e.Symbol)
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// InvalidRequestError describes a malformed or missing request input.
// It is detected and reported before any store mutation is attempted.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return e.Reason
}

// NewInvalidRequest creates an InvalidRequestError with a formatted reason
func NewInvalidRequest(format string, args ...interface{}) *InvalidRequestError {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}

// IsInvalidRequest reports whether err is (or wraps) an InvalidRequestError
func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}
