package evtc

import "github.com/gw2evtc/evtclib/gamedata"

// Kind discriminates an Agent's entity type. It is a closed sum type:
// the only implementations are PlayerKind, CharacterKind, and GadgetKind
// (spec §3.1's exclusive entity classification). The unexported method
// seals the set.
type Kind interface {
	isKind()
}

// PlayerKind is the Kind of a real player's character.
type PlayerKind struct {
	Profession    gamedata.Profession
	EliteSpec     gamedata.EliteSpec // EliteSpecNone if no elite spec active
	CharacterName string
	AccountName   string // includes the leading ':' and trailing ####
	Subgroup      uint8
}

func (PlayerKind) isKind() {}

// CharacterKind is the Kind of an NPC (non-gadget non-player entity).
type CharacterKind struct {
	ID   uint16
	Name string
}

func (CharacterKind) isKind() {}

// GadgetKind is the Kind of a transient gadget (siege, ley-line anomaly,
// certain mechanics hit-boxes, etc).
type GadgetKind struct {
	ID   uint16
	Name string
}

func (GadgetKind) isKind() {}

// Agent is one tracked entity in a recording: a player, an NPC, or a
// gadget. Agents are immutable once a Log has been materialized.
type Agent struct {
	Addr uint64
	Kind Kind

	Toughness     int16
	Concentration int16
	Healing       int16
	Condition     int16

	InstanceID uint16
	FirstAware uint64
	LastAware  uint64

	// Master is the address of this agent's master (e.g. a ranger pet's
	// ranger), or nil if none was observed (spec §4.3 Pass B).
	Master *uint64
}

// IsPlayer, IsCharacter, and IsGadget are convenience type assertions for
// call sites that already hold a generic Agent but want the local
// dynamic check described in spec §9's "phantom-typed agent handles"
// design note, rather than using the dedicated Player/NPC iterators.
func (a Agent) IsPlayer() bool {
	_, ok := a.Kind.(PlayerKind)
	return ok
}

func (a Agent) IsCharacter() bool {
	_, ok := a.Kind.(CharacterKind)
	return ok
}

func (a Agent) IsGadget() bool {
	_, ok := a.Kind.(GadgetKind)
	return ok
}

// ID returns the species/gadget id for a Character or Gadget agent, and
// ok=false for a Player (players have no species id).
func (a Agent) ID() (id uint16, ok bool) {
	switch k := a.Kind.(type) {
	case CharacterKind:
		return k.ID, true
	case GadgetKind:
		return k.ID, true
	default:
		return 0, false
	}
}

// Name returns the agent's display name regardless of kind.
func (a Agent) Name() string {
	switch k := a.Kind.(type) {
	case PlayerKind:
		return k.CharacterName
	case CharacterKind:
		return k.Name
	case GadgetKind:
		return k.Name
	default:
		return ""
	}
}

// Player is a projected, player-only view of an Agent — the non-phantom-
// typed alternative described in spec §9's design notes: a dedicated
// struct holding only the data a caller that already knows it has a
// player ever needs, rather than a generic Agent plus a type assertion.
type Player struct {
	Addr          uint64
	Profession    gamedata.Profession
	EliteSpec     gamedata.EliteSpec
	CharacterName string
	AccountName   string
	Subgroup      uint8
	Toughness     int16
	Concentration int16
	Healing       int16
	Condition     int16
	InstanceID    uint16
	FirstAware    uint64
	LastAware     uint64
}

func newPlayer(a Agent) (Player, bool) {
	k, ok := a.Kind.(PlayerKind)
	if !ok {
		return Player{}, false
	}
	return Player{
		Addr:          a.Addr,
		Profession:    k.Profession,
		EliteSpec:     k.EliteSpec,
		CharacterName: k.CharacterName,
		AccountName:   k.AccountName,
		Subgroup:      k.Subgroup,
		Toughness:     a.Toughness,
		Concentration: a.Concentration,
		Healing:       a.Healing,
		Condition:     a.Condition,
		InstanceID:    a.InstanceID,
		FirstAware:    a.FirstAware,
		LastAware:     a.LastAware,
	}, true
}

// NPC is a projected, non-player view of an Agent: either a Character or
// a Gadget. IsGadget distinguishes the two without requiring callers to
// hold a Kind value.
type NPC struct {
	Addr       uint64
	ID         uint16
	Name       string
	IsGadget   bool
	InstanceID uint16
	FirstAware uint64
	LastAware  uint64
	Master     *uint64
}

func newNPC(a Agent) (NPC, bool) {
	switch k := a.Kind.(type) {
	case CharacterKind:
		return NPC{Addr: a.Addr, ID: k.ID, Name: k.Name, InstanceID: a.InstanceID,
			FirstAware: a.FirstAware, LastAware: a.LastAware, Master: a.Master}, true
	case GadgetKind:
		return NPC{Addr: a.Addr, ID: k.ID, Name: k.Name, IsGadget: true, InstanceID: a.InstanceID,
			FirstAware: a.FirstAware, LastAware: a.LastAware, Master: a.Master}, true
	default:
		return NPC{}, false
	}
}
