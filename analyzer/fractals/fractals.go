// Package fractals holds the CM-capable fractal boss analyzer
// constructors (spec §4.5) and registers them into the evtc package's
// analyzer registry (spec §4.6 L6) from init().
package fractals

import (
	"github.com/gw2evtc/evtclib/analyzer"
	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
)

// Challenge-mote max-health thresholds, one per boss: fractal CM scales
// spawn each boss with a fixed, higher max health than any non-CM
// instance of the same fractal reaches, mirroring the raid wing 4/7
// pattern (analyzer/raids).
const (
	mamaCMHealth      = 2_500_000
	siaxCMHealth      = 3_000_000
	ensolyssCMHealth  = 3_200_000
	skorvaldCMHealth  = 4_000_000
	artsariivCMHealth = 4_500_000
	arkkCMHealth      = 5_000_000
)

func init() {
	evtc.RegisterAnalyzer(gamedata.MAMA, newMaxHealthCMAnalyzer(mamaCMHealth))
	evtc.RegisterAnalyzer(gamedata.Siax, newMaxHealthCMAnalyzer(siaxCMHealth))
	evtc.RegisterAnalyzer(gamedata.Ensolyss, newMaxHealthCMAnalyzer(ensolyssCMHealth))
	evtc.RegisterAnalyzer(gamedata.Skorvald, newMaxHealthCMAnalyzer(skorvaldCMHealth))
	evtc.RegisterAnalyzer(gamedata.Artsariiv, newMaxHealthCMAnalyzer(artsariivCMHealth))
	evtc.RegisterAnalyzer(gamedata.Arkk, newMaxHealthCMAnalyzer(arkkCMHealth))
}

func newMaxHealthCMAnalyzer(threshold uint64) evtc.AnalyzerFactory {
	return func(log *evtc.Log) evtc.Analyzer {
		return analyzer.NewGeneric(log,
			func(l *evtc.Log) bool {
				max, ok := analyzer.MaxHealth(l, l.BossAddresses())
				return ok && max >= threshold
			},
			func(l *evtc.Log) bool { return analyzer.BossDead(l, l.BossAddresses()) },
		)
	}
}
