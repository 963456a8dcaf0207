package evtc

import "github.com/gw2evtc/evtclib/raw"

// EventKind is a closed discriminated union (spec §3.2). Each variant is
// its own struct carrying exactly the field projection documented in
// spec §4.3; the unexported method seals the set.
type EventKind interface {
	isEventKind()
}

type EnterCombat struct {
	AgentAddr uint64
	Subgroup  uint64
}

type ExitCombat struct{ AgentAddr uint64 }
type ChangeUp struct{ AgentAddr uint64 }
type ChangeDown struct{ AgentAddr uint64 }
type ChangeDead struct{ AgentAddr uint64 }
type Spawn struct{ AgentAddr uint64 }
type Despawn struct{ AgentAddr uint64 }

type HealthUpdate struct {
	AgentAddr uint64
	Health    uint16 // percent * 100, per arcdps convention
}

type LogStart struct {
	ServerTimestamp uint32
	LocalTimestamp  uint32
}

type LogEnd struct {
	ServerTimestamp uint32
	LocalTimestamp  uint32
}

type WeaponSwap struct {
	AgentAddr   uint64
	Set         raw.WeaponSet
	UnknownByte byte // meaningful only when Set == raw.WeaponSetUnknown
}

type MaxHealthUpdate struct {
	AgentAddr uint64
	MaxHealth uint64
}

type PointOfView struct{ AgentAddr uint64 }

type Language struct {
	AgentAddr uint64
	Language  uint32
}

type Build struct{ BuildID uint64 }
type ShardID struct{ ShardID uint64 }

type Reward struct {
	RewardID   uint64
	RewardType uint32
}

type SkillUse struct {
	SourceAgentAddr uint64
	SkillID         uint32
	Activation      raw.Activation
	// AnimationTime carries the event's value field, except for
	// raw.ActivationReset which is a tag only and leaves this zero.
	AnimationTime uint32
}

type Physical struct {
	SourceAgentAddr uint64
	DestAgentAddr   uint64
	SkillID         uint32
	Damage          int32
	Result          raw.Result
}

type ConditionTick struct {
	SourceAgentAddr uint64
	DestAgentAddr   uint64
	SkillID         uint32
	Damage          int32
}

type InvulnTick struct {
	SourceAgentAddr uint64
	DestAgentAddr   uint64
	SkillID         uint32
}

type BuffApplication struct {
	SourceAgentAddr uint64
	DestAgentAddr   uint64
	SkillID         uint32
	Duration        int32
	Overstack       uint32
}

type BuffRemove struct {
	SourceAgentAddr uint64
	DestAgentAddr   uint64
	SkillID         uint32
	TotalDuration   int32
	LongestStack    int32
	Removal         raw.BuffRemove
}

func (EnterCombat) isEventKind()     {}
func (ExitCombat) isEventKind()      {}
func (ChangeUp) isEventKind()        {}
func (ChangeDown) isEventKind()      {}
func (ChangeDead) isEventKind()      {}
func (Spawn) isEventKind()           {}
func (Despawn) isEventKind()         {}
func (HealthUpdate) isEventKind()    {}
func (LogStart) isEventKind()        {}
func (LogEnd) isEventKind()          {}
func (WeaponSwap) isEventKind()      {}
func (MaxHealthUpdate) isEventKind() {}
func (PointOfView) isEventKind()     {}
func (Language) isEventKind()        {}
func (Build) isEventKind()           {}
func (ShardID) isEventKind()         {}
func (Reward) isEventKind()          {}
func (SkillUse) isEventKind()        {}
func (Physical) isEventKind()        {}
func (ConditionTick) isEventKind()   {}
func (InvulnTick) isEventKind()      {}
func (BuffApplication) isEventKind() {}
func (BuffRemove) isEventKind()      {}

// Event is one materialized combat record: a timestamp, a semantic kind,
// and the five boolean annotations every record carries regardless of
// kind (spec §3.2).
type Event struct {
	Time uint64
	Kind EventKind

	IsNinety   bool
	IsFifty    bool
	IsMoving   bool
	IsFlanking bool
	IsShields  bool
}

// AgentAddr returns the source-agent address projected by this event's
// kind, when the kind has one. ok=false for kinds with no natural single
// agent projection (e.g. LogStart, Reward, Build).
func (e Event) AgentAddr() (addr uint64, ok bool) {
	switch k := e.Kind.(type) {
	case EnterCombat:
		return k.AgentAddr, true
	case ExitCombat:
		return k.AgentAddr, true
	case ChangeUp:
		return k.AgentAddr, true
	case ChangeDown:
		return k.AgentAddr, true
	case ChangeDead:
		return k.AgentAddr, true
	case Spawn:
		return k.AgentAddr, true
	case Despawn:
		return k.AgentAddr, true
	case HealthUpdate:
		return k.AgentAddr, true
	case WeaponSwap:
		return k.AgentAddr, true
	case MaxHealthUpdate:
		return k.AgentAddr, true
	case PointOfView:
		return k.AgentAddr, true
	case Language:
		return k.AgentAddr, true
	case SkillUse:
		return k.SourceAgentAddr, true
	case Physical:
		return k.SourceAgentAddr, true
	case ConditionTick:
		return k.SourceAgentAddr, true
	case InvulnTick:
		return k.SourceAgentAddr, true
	case BuffApplication:
		return k.SourceAgentAddr, true
	case BuffRemove:
		return k.SourceAgentAddr, true
	default:
		return 0, false
	}
}

// convertEvent implements the disjoint cascade of spec §4.3: the first
// matching rule wins. ok=false means the record is recognized-but-inert
// (a state change with no semantic Event) or matches none of the
// damage/buff cascade's terminal arms, and must be dropped without error.
func convertEvent(item raw.CombatItem) (kind EventKind, ok bool) {
	if item.IsStateChange != raw.StateChangeNone {
		return convertStateChange(item)
	}

	if item.IsActivation != raw.ActivationNone {
		animTime := uint32(item.Value)
		if item.IsActivation == raw.ActivationReset {
			animTime = 0
		}
		return SkillUse{
			SourceAgentAddr: item.SrcAgent,
			SkillID:         item.SkillID,
			Activation:      item.IsActivation,
			AnimationTime:   animTime,
		}, true
	}

	if item.IsBuffRemove != raw.BuffRemoveNone {
		return BuffRemove{
			SourceAgentAddr: item.SrcAgent,
			DestAgentAddr:   item.DstAgent,
			SkillID:         item.SkillID,
			TotalDuration:   item.Value,
			LongestStack:    item.BuffDmg,
			Removal:         item.IsBuffRemove,
		}, true
	}

	return convertDamageOrBuff(item)
}

func convertStateChange(item raw.CombatItem) (EventKind, bool) {
	switch item.IsStateChange {
	case raw.StateChangeEnterCombat:
		return EnterCombat{AgentAddr: item.SrcAgent, Subgroup: item.DstAgent}, true
	case raw.StateChangeExitCombat:
		return ExitCombat{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeChangeUp:
		return ChangeUp{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeChangeDown:
		return ChangeDown{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeChangeDead:
		return ChangeDead{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeSpawn:
		return Spawn{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeDespawn:
		return Despawn{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeHealthUpdate:
		return HealthUpdate{AgentAddr: item.SrcAgent, Health: uint16(item.DstAgent)}, true
	case raw.StateChangeLogStart:
		return LogStart{ServerTimestamp: uint32(item.Value), LocalTimestamp: uint32(item.BuffDmg)}, true
	case raw.StateChangeLogEnd:
		return LogEnd{ServerTimestamp: uint32(item.Value), LocalTimestamp: uint32(item.BuffDmg)}, true
	case raw.StateChangeWeaponSwap:
		set, unk := raw.DecodeWeaponSet(uint32(item.DstAgent))
		return WeaponSwap{AgentAddr: item.SrcAgent, Set: set, UnknownByte: unk}, true
	case raw.StateChangeMaxHealthUpdate:
		return MaxHealthUpdate{AgentAddr: item.SrcAgent, MaxHealth: item.DstAgent}, true
	case raw.StateChangePointOfView:
		return PointOfView{AgentAddr: item.SrcAgent}, true
	case raw.StateChangeLanguage:
		return Language{AgentAddr: item.SrcAgent, Language: uint32(item.Value)}, true
	case raw.StateChangeBuild:
		return Build{BuildID: item.DstAgent}, true
	case raw.StateChangeShardID:
		return ShardID{ShardID: item.SrcAgent}, true
	case raw.StateChangeReward:
		return Reward{RewardID: item.DstAgent, RewardType: uint32(item.Value)}, true
	default:
		// BuffInitial, Position, Velocity, Facing, TeamChange,
		// AttackTarget, Targetable, MapID, ReplInfo, StackActive,
		// StackReset, Guild, BuffInfo, BuffFormula, SkillInfo,
		// SkillTiming: recognized but intentionally produce no Event.
		return nil, false
	}
}

func convertDamageOrBuff(item raw.CombatItem) (EventKind, bool) {
	switch {
	case !item.Buff && item.IFF == raw.IFFFoe && item.DstAgent != 0:
		return Physical{
			SourceAgentAddr: item.SrcAgent,
			DestAgentAddr:   item.DstAgent,
			SkillID:         item.SkillID,
			Damage:          item.Value,
			Result:          item.Result,
		}, true
	case item.Buff && item.BuffDmg != 0 && item.DstAgent != 0 && item.Value == 0:
		return ConditionTick{
			SourceAgentAddr: item.SrcAgent,
			DestAgentAddr:   item.DstAgent,
			SkillID:         item.SkillID,
			Damage:          item.BuffDmg,
		}, true
	case item.Buff && item.BuffDmg == 0 && item.Value != 0:
		return BuffApplication{
			SourceAgentAddr: item.SrcAgent,
			DestAgentAddr:   item.DstAgent,
			SkillID:         item.SkillID,
			Duration:        item.Value,
			Overstack:       item.OverstackValue,
		}, true
	case item.Buff && item.BuffDmg == 0 && item.Value == 0:
		return InvulnTick{
			SourceAgentAddr: item.SrcAgent,
			DestAgentAddr:   item.DstAgent,
			SkillID:         item.SkillID,
		}, true
	default:
		return nil, false
	}
}
