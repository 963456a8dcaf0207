// Package evtcjson flattens an *evtc.Log into an exported Snapshot and
// serializes it to JSON or YAML (spec §6.5's out-of-core serialization
// collaborator). No serialization concern lives on the core types
// themselves; everything here is a one-way projection.
package evtcjson

import "github.com/gw2evtc/evtclib/evtc"

// Snapshot is a flattened, exported view of a *evtc.Log suitable for
// encoding/json and gopkg.in/yaml.v3.
type Snapshot struct {
	Encounter string `json:"encounter" yaml:"encounter"`
	GameMode  string `json:"gameMode" yaml:"gameMode"`
	BossID    uint16 `json:"bossId" yaml:"bossId"`
	IsCM      bool   `json:"isCm" yaml:"isCm"`
	Outcome   string `json:"outcome,omitempty" yaml:"outcome,omitempty"`

	Agents []AgentSnapshot `json:"agents" yaml:"agents"`
	Events []EventSnapshot `json:"events" yaml:"events"`
}

// AgentSnapshot flattens evtc.Agent, discriminating on Kind by name
// instead of Go's sealed interface.
type AgentSnapshot struct {
	Addr          uint64  `json:"addr" yaml:"addr"`
	Kind          string  `json:"kind" yaml:"kind"` // "player", "character", or "gadget"
	Name          string  `json:"name" yaml:"name"`
	Profession    string  `json:"profession,omitempty" yaml:"profession,omitempty"`
	EliteSpec     string  `json:"eliteSpec,omitempty" yaml:"eliteSpec,omitempty"`
	AccountName   string  `json:"accountName,omitempty" yaml:"accountName,omitempty"`
	Subgroup      uint8   `json:"subgroup,omitempty" yaml:"subgroup,omitempty"`
	SpeciesID     uint16  `json:"speciesId,omitempty" yaml:"speciesId,omitempty"`
	Toughness     int16   `json:"toughness" yaml:"toughness"`
	Concentration int16   `json:"concentration" yaml:"concentration"`
	Healing       int16   `json:"healing" yaml:"healing"`
	Condition     int16   `json:"condition" yaml:"condition"`
	InstanceID    uint16  `json:"instanceId" yaml:"instanceId"`
	FirstAware    uint64  `json:"firstAware" yaml:"firstAware"`
	LastAware     uint64  `json:"lastAware" yaml:"lastAware"`
	Master        *uint64 `json:"master,omitempty" yaml:"master,omitempty"`
}

// EventSnapshot flattens evtc.Event, discriminating on Kind by name and
// carrying its variant-specific fields as a generic map so that adding an
// EventKind variant never requires a matching Snapshot field.
type EventSnapshot struct {
	Time       uint64                 `json:"time" yaml:"time"`
	Kind       string                 `json:"kind" yaml:"kind"`
	Data       map[string]interface{} `json:"data" yaml:"data"`
	IsNinety   bool                   `json:"isNinety,omitempty" yaml:"isNinety,omitempty"`
	IsFifty    bool                   `json:"isFifty,omitempty" yaml:"isFifty,omitempty"`
	IsMoving   bool                   `json:"isMoving,omitempty" yaml:"isMoving,omitempty"`
	IsFlanking bool                   `json:"isFlanking,omitempty" yaml:"isFlanking,omitempty"`
	IsShields  bool                   `json:"isShields,omitempty" yaml:"isShields,omitempty"`
}

// NewSnapshot builds a Snapshot from a materialized Log.
func NewSnapshot(log *evtc.Log) Snapshot {
	s := Snapshot{BossID: log.BossID()}

	if enc, ok := log.Encounter(); ok {
		s.Encounter = enc.String()
	}
	if mode, ok := log.GameMode(); ok {
		s.GameMode = mode.String()
	}
	if an, ok := log.Analyzer(); ok {
		s.IsCM = an.IsCM()
		if outcome, ok := an.Outcome(); ok {
			s.Outcome = outcome.String()
		}
	}

	for _, a := range log.Agents() {
		s.Agents = append(s.Agents, newAgentSnapshot(a))
	}
	for _, e := range log.Events() {
		s.Events = append(s.Events, newEventSnapshot(e))
	}
	return s
}

func newAgentSnapshot(a evtc.Agent) AgentSnapshot {
	out := AgentSnapshot{
		Addr:          a.Addr,
		Name:          a.Name(),
		Toughness:     a.Toughness,
		Concentration: a.Concentration,
		Healing:       a.Healing,
		Condition:     a.Condition,
		InstanceID:    a.InstanceID,
		FirstAware:    a.FirstAware,
		LastAware:     a.LastAware,
		Master:        a.Master,
	}

	switch k := a.Kind.(type) {
	case evtc.PlayerKind:
		out.Kind = "player"
		out.Profession = k.Profession.String()
		out.EliteSpec = k.EliteSpec.String()
		out.AccountName = k.AccountName
		out.Subgroup = k.Subgroup
	case evtc.CharacterKind:
		out.Kind = "character"
		out.SpeciesID = k.ID
	case evtc.GadgetKind:
		out.Kind = "gadget"
		out.SpeciesID = k.ID
	}
	return out
}
