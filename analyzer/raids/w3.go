// Package raids holds the Wing 1–3 through Wing 7 raid analyzer
// constructors (spec §4.5, one file per wing mirroring the source's own
// src/analyzers/raids/w{3..7}.rs split) and registers them into the
// evtc package's analyzer registry (spec §4.6 L6) from init().
package raids

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.ValeGuardian, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Gorseval, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Sabetha, newBossDeadAnalyzer)
}

// newBossDeadAnalyzer builds the simplest possible analyzer: no
// challenge mote, success iff the boss died (or a reward was seen).
// Wing 1's three bosses (Vale Guardian, Gorseval, Sabetha) have no CM
// variant and no despawn-instead-of-death quirks, so this is their whole
// analyzer (spec §8.2 scenario 1).
func newBossDeadAnalyzer(log *evtc.Log) evtc.Analyzer {
	return analyzer.NewGeneric(log, nil, func(l *evtc.Log) bool {
		return analyzer.BossDead(l, l.BossAddresses())
	})
}
