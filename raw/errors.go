package raw

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by Parse. Wrap with fmt.Errorf("...: %w", err)
// at every call site so callers can errors.Is/As through the chain.
var (
	ErrMalformedHeader = errors.New("evtc: malformed header")
	ErrUnknownRevision = errors.New("evtc: unknown revision")
)

// UnknownRevisionError carries the offending revision byte. Wraps
// ErrUnknownRevision so errors.Is(err, ErrUnknownRevision) still matches.
type UnknownRevisionError struct {
	Revision byte
}

func (e *UnknownRevisionError) Error() string {
	return fmt.Sprintf("evtc: unknown revision %d", e.Revision)
}

func (e *UnknownRevisionError) Unwrap() error {
	return ErrUnknownRevision
}
