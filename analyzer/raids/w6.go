package raids

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.ConjuredAmalgamate, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.TwinLargos, newTwinLargosAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Qadim, newBossDeadAnalyzer)
}

// newTwinLargosAnalyzer requires Nikare and Kenut to die individually:
// unlike every other multi-id boss entry, Twin Largos' two species ids
// name two distinct, simultaneously-alive bosses rather than successive
// phases of one boss, so a death of either alone is not a kill.
func newTwinLargosAnalyzer(log *evtc.Log) evtc.Analyzer {
	ids := gamedata.BossIDs(gamedata.TwinLargos)
	return analyzer.NewGeneric(log, nil, func(l *evtc.Log) bool {
		if len(ids) != 2 {
			return analyzer.BossDead(l, l.BossAddresses())
		}
		nikare := addressesForSpecies(l, ids[0])
		kenut := addressesForSpecies(l, ids[1])
		return analyzer.BossDead(l, nikare) && analyzer.BossDead(l, kenut)
	})
}

// addressesForSpecies returns the addresses of NPC agents whose species
// id matches speciesID.
func addressesForSpecies(log *evtc.Log, speciesID uint16) map[uint64]bool {
	out := map[uint64]bool{}
	for _, a := range log.Agents() {
		if id, isNPC := a.ID(); isNPC && id == speciesID {
			out[a.Addr] = true
		}
	}
	return out
}
