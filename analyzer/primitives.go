// Package analyzer provides the reusable primitive predicates (spec
// §4.5) that per-encounter analyzers in analyzer/raids, analyzer/strikes,
// and analyzer/fractals compose with baked-in numeric constants.
package analyzer

import "github.com/gw2evtc/evtclib/evtc"

// MaxHealth scans MaxHealthUpdate events for every address in bosses and
// returns the maximum observed value, or ok=false if none was ever
// observed. Used for encounters whose challenge mote is marked by
// increased boss HP (spec §4.5).
func MaxHealth(log *evtc.Log, bosses map[uint64]bool) (max uint64, ok bool) {
	for _, e := range log.Events() {
		mhu, isMHU := e.Kind.(evtc.MaxHealthUpdate)
		if !isMHU || !bosses[mhu.AgentAddr] {
			continue
		}
		if !ok || mhu.MaxHealth > max {
			max = mhu.MaxHealth
			ok = true
		}
	}
	return max, ok
}

// BuffPresent reports whether any BuffApplication event in the log
// matches buffID. Used for challenge motes signalled by a marker buff.
func BuffPresent(log *evtc.Log, buffID uint32) bool {
	for _, e := range log.Events() {
		if ba, ok := e.Kind.(evtc.BuffApplication); ok && ba.SkillID == buffID {
			return true
		}
	}
	return false
}

// MinInterApplicationDelay finds, among destination agents that received
// buffID, the one with the most applications; returns the minimum
// consecutive-timestamp delta among that agent's applications after
// filtering out deltas <= denoiseMs (duplicate-event noise), or 0 if no
// such delta exists (spec §4.5 "inter-application delay").
func MinInterApplicationDelay(log *evtc.Log, buffID uint32, denoiseMs uint64) uint64 {
	byDest := map[uint64][]uint64{}
	for _, e := range log.Events() {
		ba, ok := e.Kind.(evtc.BuffApplication)
		if !ok || ba.SkillID != buffID {
			continue
		}
		byDest[ba.DestAgentAddr] = append(byDest[ba.DestAgentAddr], e.Time)
	}

	var longest []uint64
	for _, times := range byDest {
		if len(times) > len(longest) {
			longest = times
		}
	}
	if len(longest) < 2 {
		return 0
	}

	var min uint64
	found := false
	for i := 1; i < len(longest); i++ {
		delta := longest[i] - longest[i-1]
		if delta <= denoiseMs {
			continue
		}
		if !found || delta < min {
			min = delta
			found = true
		}
	}
	if !found {
		return 0
	}
	return min
}

// BossDead reports whether any ChangeDead event's agent is in bosses.
func BossDead(log *evtc.Log, bosses map[uint64]bool) bool {
	for _, e := range log.Events() {
		if cd, ok := e.Kind.(evtc.ChangeDead); ok && bosses[cd.AgentAddr] {
			return true
		}
	}
	return false
}

// FirstBossDeath returns the timestamp of the first ChangeDead event for
// any address in bosses, or ok=false if the boss never died.
func FirstBossDeath(log *evtc.Log, bosses map[uint64]bool) (t uint64, ok bool) {
	for _, e := range log.Events() {
		if cd, isDead := e.Kind.(evtc.ChangeDead); isDead && bosses[cd.AgentAddr] {
			return e.Time, true
		}
	}
	return 0, false
}

// PlayersExitAfter reports whether every player agent's final ExitCombat
// event occurs strictly after deadline. Used for encounters whose boss
// despawns rather than dies (spec §4.5).
func PlayersExitAfter(log *evtc.Log, deadline uint64) bool {
	players := log.Players()
	if len(players) == 0 {
		return false
	}

	lastExit := map[uint64]uint64{}
	for _, e := range log.Events() {
		ec, ok := e.Kind.(evtc.ExitCombat)
		if !ok {
			continue
		}
		if e.Time > lastExit[ec.AgentAddr] {
			lastExit[ec.AgentAddr] = e.Time
		}
	}

	for _, p := range players {
		t, seen := lastExit[p.Addr]
		if !seen || t <= deadline {
			return false
		}
	}
	return true
}

// RewardSeen reports whether any Reward event is present — a heuristic
// for "instance completed" that overrides failure verdicts to Success
// when present (spec §4.5).
func RewardSeen(log *evtc.Log) bool {
	for _, e := range log.Events() {
		if _, ok := e.Kind.(evtc.Reward); ok {
			return true
		}
	}
	return false
}

// FirstBuffApplicationOnAfter returns the timestamp of the first
// BuffApplication of buffID on dest occurring at or after notBefore, or
// ok=false if none exists. Used by the Scarlet-echo-style
// "winning buff applied to the boss after a secondary NPC appears"
// precondition (spec §4.5).
func FirstBuffApplicationOnAfter(log *evtc.Log, buffID uint32, dest uint64, notBefore uint64) (t uint64, ok bool) {
	for _, e := range log.Events() {
		ba, isBA := e.Kind.(evtc.BuffApplication)
		if !isBA || ba.SkillID != buffID || ba.DestAgentAddr != dest {
			continue
		}
		if e.Time < notBefore {
			continue
		}
		return e.Time, true
	}
	return 0, false
}

// FirstSpawnOf returns the timestamp of the first Spawn event for an NPC
// agent whose species id is speciesID, or ok=false if it never spawned.
func FirstSpawnOf(log *evtc.Log, speciesID uint16) (t uint64, ok bool) {
	addrsOfSpecies := map[uint64]bool{}
	for _, a := range log.Agents() {
		if id, isNPC := a.ID(); isNPC && id == speciesID {
			addrsOfSpecies[a.Addr] = true
		}
	}
	for _, e := range log.Events() {
		sp, isSpawn := e.Kind.(evtc.Spawn)
		if !isSpawn || !addrsOfSpecies[sp.AgentAddr] {
			continue
		}
		return e.Time, true
	}
	return 0, false
}
