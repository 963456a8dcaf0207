package evtc

import "github.com/gw2evtc/evtclib/gamedata"

// Outcome is the verdict an Analyzer reaches once an encounter has
// concluded (spec §4.5).
type Outcome int

const (
	Success Outcome = iota
	Failure
)

func (o Outcome) String() string {
	if o == Success {
		return "Success"
	}
	return "Failure"
}

// Analyzer answers the two per-encounter verdict queries (spec §4.5).
// Analyzers never fail: missing data yields the conservative defaults
// documented on each method.
type Analyzer interface {
	// IsCM reports whether the fight was the harder "challenge mote"
	// variant. Defaults to false when the underlying signal is absent.
	IsCM() bool
	// Outcome reports Success or Failure, or ok=false when the
	// encounter has no meaningful success notion (a training dummy, a
	// generic/WvW log).
	Outcome() (Outcome, bool)
}

// AnalyzerFactory constructs an Analyzer bound to a materialized Log.
type AnalyzerFactory func(*Log) Analyzer

// analyzerRegistry is the L6 "Encounter -> analyzer factory" half of the
// encounter registry (spec §4.6). It is intentionally NOT part of the
// gamedata package: gamedata is a pure data table with no knowledge of
// analyzers, and analyzer implementations need the concrete Agent/Event
// types defined here in evtc — housing the factory map in gamedata would
// create an import cycle (gamedata -> evtc -> gamedata). Analyzer-
// providing packages (analyzer/raids, analyzer/strikes,
// analyzer/fractals, analyzer/golems) populate this map from their
// init() functions, the same side-effecting-registration idiom
// image.RegisterFormat and database/sql.Register use for the same
// "plugin provides an implementation the core doesn't know about at
// compile time" shape.
var analyzerRegistry = map[gamedata.Encounter]AnalyzerFactory{}

// RegisterAnalyzer binds factory to e. Called from analyzer-providing
// packages' init() functions; callers that want the stock registry
// populated should blank-import analyzer/all (or the specific
// analyzer/raids, analyzer/strikes, analyzer/fractals, analyzer/golems
// packages they need).
func RegisterAnalyzer(e gamedata.Encounter, factory AnalyzerFactory) {
	analyzerRegistry[e] = factory
}

// Analyzer returns the Analyzer bound to this Log's encounter, or
// ok=false when the log is generic (no registered encounter) or no
// analyzer package registered a factory for it (spec §6.2).
func (l *Log) Analyzer() (Analyzer, bool) {
	enc, ok := l.Encounter()
	if !ok {
		return nil, false
	}
	factory, ok := analyzerRegistry[enc]
	if !ok {
		return nil, false
	}
	return factory(l), true
}

// IsCM delegates to the bound Analyzer, defaulting to false when the log
// has none (spec §7 "Analyzers never raise; missing data yields
// conservative defaults").
func (l *Log) IsCM() bool {
	a, ok := l.Analyzer()
	if !ok {
		return false
	}
	return a.IsCM()
}
