package evtc

import (
	"errors"
	"fmt"
)

// ErrInvalidAgentTable is returned when an agent record can't be
// classified into Player/Character/Gadget at all (spec §7).
var ErrInvalidAgentTable = errors.New("evtc: agent classification impossible")

// InvalidProfessionError reports a player agent whose profession field
// doesn't match any known core profession.
type InvalidProfessionError struct {
	Profession uint32
}

func (e *InvalidProfessionError) Error() string {
	return fmt.Sprintf("evtc: invalid profession %d", e.Profession)
}

// InvalidEliteSpecError reports a player agent whose elite specialization
// field doesn't match any known elite spec (or the "none" zero value).
type InvalidEliteSpecError struct {
	EliteSpec uint32
}

func (e *InvalidEliteSpecError) Error() string {
	return fmt.Sprintf("evtc: invalid elite specialization %d", e.EliteSpec)
}
