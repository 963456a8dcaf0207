// Package strikes holds the strike-mission analyzer constructors (spec
// §4.5) and registers them into the evtc package's analyzer registry
// (spec §4.6 L6) from init().
package strikes

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.VoiceAndClawOfTheFallen, newVoiceAndClawAnalyzer)
	evtc.RegisterAnalyzer(gamedata.FraenirOfJormag, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Boneskinner, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.WhisperOfJormag, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.AetherbladeHideout, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.XunlaiJadeJunkyard, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.KainengOverlook, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.HarvestTemple, newBossDeadAnalyzer)
}

// newBossDeadAnalyzer covers every strike mission with a single boss and
// no challenge mote: success iff the boss died (or a reward was seen).
func newBossDeadAnalyzer(log *evtc.Log) evtc.Analyzer {
	return analyzer.NewGeneric(log, nil, func(l *evtc.Log) bool {
		return analyzer.BossDead(l, l.BossAddresses())
	})
}

// newVoiceAndClawAnalyzer requires both the Voice of the Fallen and the
// Claw of the Fallen to die individually, the same two-simultaneous-boss
// shape as Twin Largos in Wing 6.
func newVoiceAndClawAnalyzer(log *evtc.Log) evtc.Analyzer {
	ids := gamedata.BossIDs(gamedata.VoiceAndClawOfTheFallen)
	return analyzer.NewGeneric(log, nil, func(l *evtc.Log) bool {
		if len(ids) != 2 {
			return analyzer.BossDead(l, l.BossAddresses())
		}
		voice := addressesForSpecies(l, ids[0])
		claw := addressesForSpecies(l, ids[1])
		return analyzer.BossDead(l, voice) && analyzer.BossDead(l, claw)
	})
}

func addressesForSpecies(log *evtc.Log, speciesID uint16) map[uint64]bool {
	out := map[uint64]bool{}
	for _, a := range log.Agents() {
		if id, isNPC := a.ID(); isNPC && id == speciesID {
			out[a.Addr] = true
		}
	}
	return out
}
