package evtc

import (
	"sort"
	"strings"

	"github.com/gw2evtc/evtclib/gamedata"
)

// Log owns the fully materialized agent and event vectors for one
// recording (spec §3.2 Log, §3.4 Lifecycle). Once returned from Process/
// ProcessStream/ProcessFile it is immutable; every query method is a
// read-only scan or lookup.
type Log struct {
	agents  []Agent // sorted by Addr
	events  []Event // source order, monotonic non-decreasing Time
	species uint16
}

func newLog(agents []Agent, events []Event, species uint16) *Log {
	return &Log{agents: agents, events: events, species: species}
}

// Agents returns every tracked agent, sorted by address.
func (l *Log) Agents() []Agent {
	out := make([]Agent, len(l.agents))
	copy(out, l.agents)
	return out
}

// Events returns the full materialized event stream, in source order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// Players returns every player-kinded agent.
func (l *Log) Players() []Player {
	var out []Player
	for _, a := range l.agents {
		if p, ok := newPlayer(a); ok {
			out = append(out, p)
		}
	}
	return out
}

// NPCs returns every non-player agent (characters and gadgets alike).
func (l *Log) NPCs() []NPC {
	var out []NPC
	for _, a := range l.agents {
		if n, ok := newNPC(a); ok {
			out = append(out, n)
		}
	}
	return out
}

// AgentByAddr looks up an agent by its unique address in O(log n) over
// the address-sorted agent vector (spec §4.4, §8.1).
func (l *Log) AgentByAddr(addr uint64) (Agent, bool) {
	idx, ok := findByAddr(l.agents, addr)
	if !ok {
		return Agent{}, false
	}
	return l.agents[idx], true
}

// AgentByInstanceID does a linear scan for an agent currently holding
// instance id id. Instance ids are not unique across a recording's
// lifetime (they're recycled by the game server), so this returns the
// first match in address-sorted order.
func (l *Log) AgentByInstanceID(id uint16) (Agent, bool) {
	for _, a := range l.agents {
		if a.InstanceID == id {
			return a, true
		}
	}
	return Agent{}, false
}

// AgentByName does a linear, case-insensitive scan for the first agent
// whose display name matches name.
func (l *Log) AgentByName(name string) (Agent, bool) {
	for _, a := range l.agents {
		if strings.EqualFold(a.Name(), name) {
			return a, true
		}
	}
	return Agent{}, false
}

// MasterAgentOf returns the master agent of the agent at addr, if any
// link was observed (spec §4.3 Pass B).
func (l *Log) MasterAgentOf(addr uint64) (Agent, bool) {
	a, ok := l.AgentByAddr(addr)
	if !ok || a.Master == nil {
		return Agent{}, false
	}
	return l.AgentByAddr(*a.Master)
}

// BossID returns the header's encounter species id (spec §4.4).
func (l *Log) BossID() uint16 {
	return l.species
}

// Encounter returns the Encounter registered for this log's species id,
// or ok=false for an unregistered ("generic") recording.
func (l *Log) Encounter() (gamedata.Encounter, bool) {
	return gamedata.ByID(l.species)
}

// GameMode returns the game mode of this log's encounter, or ok=false
// for a generic recording.
func (l *Log) GameMode() (gamedata.GameMode, bool) {
	enc, ok := l.Encounter()
	if !ok {
		return 0, false
	}
	return gamedata.GameMode(enc), true
}

// BossAddresses returns the set of Character (non-gadget NPC) addresses
// whose species id matches one of the current encounter's boss ids (spec
// §4.4, §8.3). Normally singleton; encounters with two boss ids (Xera's
// phase-2 form, Twin Largos, Voice and Claw of the Fallen) can contribute
// more.
func (l *Log) BossAddresses() map[uint64]bool {
	out := map[uint64]bool{}
	enc, ok := l.Encounter()
	if !ok {
		return out
	}
	bossIDs := gamedata.BossIDs(enc)
	for _, a := range l.agents {
		ck, isChar := a.Kind.(CharacterKind)
		if !isChar {
			continue
		}
		for _, id := range bossIDs {
			if ck.ID == id {
				out[a.Addr] = true
				break
			}
		}
	}
	return out
}

// IsBoss reports whether addr is one of BossAddresses().
func (l *Log) IsBoss(addr uint64) bool {
	return l.BossAddresses()[addr]
}

// sortedBossAddresses is a deterministic-order convenience for tests and
// analyzers that want to range over boss addresses without depending on
// Go's randomized map iteration.
func (l *Log) sortedBossAddresses() []uint64 {
	set := l.BossAddresses()
	out := make([]uint64, 0, len(set))
	for addr := range set {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
