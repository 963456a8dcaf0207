package raids

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.Slothasor, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Matthias, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.KeepConstruct, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.Xera, newXeraAnalyzer)
}

// newXeraAnalyzer implements spec §8.2 scenario 5: Xera's instance script
// despawns rather than cleanly flags the boss dead, so success requires
// both a ChangeDead for either boss id (normally the phase-2 add, species
// 0x3F9E) AND every player's final ExitCombat landing after that death.
func newXeraAnalyzer(log *evtc.Log) evtc.Analyzer {
	return analyzer.NewGeneric(log, nil, func(l *evtc.Log) bool {
		deathTime, ok := analyzer.FirstBossDeath(l, l.BossAddresses())
		if !ok {
			return false
		}
		return analyzer.PlayersExitAfter(l, deathTime)
	})
}
