// Package golems registers the golem-training-target analyzer into the
// evtc package's analyzer registry (spec §4.6 L6) from init(). Training
// golems are encounters with no meaningful success notion (spec §4.5).
package golems

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.StandardKittyGolem, newNoOutcomeAnalyzer)
	evtc.RegisterAnalyzer(gamedata.MediumKittyGolem, newNoOutcomeAnalyzer)
	evtc.RegisterAnalyzer(gamedata.LargeKittyGolem, newNoOutcomeAnalyzer)
	evtc.RegisterAnalyzer(gamedata.MassiveKittyGolem, newNoOutcomeAnalyzer)
}

func newNoOutcomeAnalyzer(*evtc.Log) evtc.Analyzer {
	return analyzer.NoOutcome{}
}
