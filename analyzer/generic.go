package analyzer

import "github.com/gw2evtc/evtclib/evtc"

// CMPredicate reports whether a Log represents the challenge-mote
// variant of its encounter.
type CMPredicate func(*evtc.Log) bool

// SuccessPredicate reports whether a Log's encounter-specific success
// signal fired (e.g. boss dead, players exited after boss despawned).
// It is evaluated in addition to the generic Reward-seen override (spec
// §4.5's state machine diagram).
type SuccessPredicate func(*evtc.Log) bool

// Generic composes a CMPredicate and a SuccessPredicate into the generic
// raid/strike/fractal outcome state machine from spec §4.5:
//
//	scanning events -> Reward seen -> Success
//	                -> success predicate fires -> Success
//	                -> end of stream, neither fired -> Failure
//
// Every concrete raid/strike/fractal analyzer is built from Generic with
// encounter-specific constants baked into its predicates.
type Generic struct {
	log     *evtc.Log
	cm      CMPredicate
	success SuccessPredicate
}

// NewGeneric builds a Generic analyzer. A nil cm is treated as "never
// CM" (encounters with no challenge mote of their own).
func NewGeneric(log *evtc.Log, cm CMPredicate, success SuccessPredicate) *Generic {
	return &Generic{log: log, cm: cm, success: success}
}

func (g *Generic) IsCM() bool {
	if g.cm == nil {
		return false
	}
	return g.cm(g.log)
}

func (g *Generic) Outcome() (evtc.Outcome, bool) {
	if RewardSeen(g.log) || g.success(g.log) {
		return evtc.Success, true
	}
	return evtc.Failure, true
}

// NoOutcome is the analyzer for encounters with no meaningful success
// notion — a training dummy or an open-world/WvW generic log (spec
// §4.5 "outcome() -> None means the encounter has no meaningful success
// notion").
type NoOutcome struct{}

func (NoOutcome) IsCM() bool                      { return false }
func (NoOutcome) Outcome() (evtc.Outcome, bool)    { return 0, false }
