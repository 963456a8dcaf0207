package raids

import (
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

func init() {
	evtc.RegisterAnalyzer(gamedata.CardinalAdina, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.CardinalSabir, newBossDeadAnalyzer)
	evtc.RegisterAnalyzer(gamedata.QadimThePeerless, newMaxHealthCMAnalyzer(qadimThePeerlessCMHealth))
}

// qadimThePeerlessCMHealth is the challenge-mote max-health threshold
// mentioned alongside the other Wing 4/7 HP-gated motes.
const qadimThePeerlessCMHealth = 21_100_000
