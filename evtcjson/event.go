package evtcjson

import "github.com/gw2evtc/evtclib/evtc"

func newEventSnapshot(e evtc.Event) EventSnapshot {
	kind, data := kindNameAndData(e.Kind)
	return EventSnapshot{
		Time:       e.Time,
		Kind:       kind,
		Data:       data,
		IsNinety:   e.IsNinety,
		IsFifty:    e.IsFifty,
		IsMoving:   e.IsMoving,
		IsFlanking: e.IsFlanking,
		IsShields:  e.IsShields,
	}
}

// kindNameAndData discriminates an evtc.EventKind by name and flattens
// its fields into a map, so EventSnapshot needs no per-variant struct
// field of its own.
func kindNameAndData(k evtc.EventKind) (string, map[string]interface{}) {
	switch v := k.(type) {
	case evtc.EnterCombat:
		return "enterCombat", map[string]interface{}{"agentAddr": v.AgentAddr, "subgroup": v.Subgroup}
	case evtc.ExitCombat:
		return "exitCombat", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.ChangeUp:
		return "changeUp", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.ChangeDown:
		return "changeDown", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.ChangeDead:
		return "changeDead", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.Spawn:
		return "spawn", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.Despawn:
		return "despawn", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.HealthUpdate:
		return "healthUpdate", map[string]interface{}{"agentAddr": v.AgentAddr, "health": v.Health}
	case evtc.LogStart:
		return "logStart", map[string]interface{}{"serverTimestamp": v.ServerTimestamp, "localTimestamp": v.LocalTimestamp}
	case evtc.LogEnd:
		return "logEnd", map[string]interface{}{"serverTimestamp": v.ServerTimestamp, "localTimestamp": v.LocalTimestamp}
	case evtc.WeaponSwap:
		return "weaponSwap", map[string]interface{}{"agentAddr": v.AgentAddr, "set": v.Set.String(), "unknownByte": v.UnknownByte}
	case evtc.MaxHealthUpdate:
		return "maxHealthUpdate", map[string]interface{}{"agentAddr": v.AgentAddr, "maxHealth": v.MaxHealth}
	case evtc.PointOfView:
		return "pointOfView", map[string]interface{}{"agentAddr": v.AgentAddr}
	case evtc.Language:
		return "language", map[string]interface{}{"agentAddr": v.AgentAddr, "language": v.Language}
	case evtc.Build:
		return "build", map[string]interface{}{"buildId": v.BuildID}
	case evtc.ShardID:
		return "shardId", map[string]interface{}{"shardId": v.ShardID}
	case evtc.Reward:
		return "reward", map[string]interface{}{"rewardId": v.RewardID, "rewardType": v.RewardType}
	case evtc.SkillUse:
		return "skillUse", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "skillId": v.SkillID,
			"activation": v.Activation.String(), "animationTime": v.AnimationTime,
		}
	case evtc.Physical:
		return "physical", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "destAgentAddr": v.DestAgentAddr,
			"skillId": v.SkillID, "damage": v.Damage, "result": v.Result.String(),
		}
	case evtc.ConditionTick:
		return "conditionTick", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "destAgentAddr": v.DestAgentAddr,
			"skillId": v.SkillID, "damage": v.Damage,
		}
	case evtc.InvulnTick:
		return "invulnTick", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "destAgentAddr": v.DestAgentAddr, "skillId": v.SkillID,
		}
	case evtc.BuffApplication:
		return "buffApplication", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "destAgentAddr": v.DestAgentAddr,
			"skillId": v.SkillID, "duration": v.Duration, "overstack": v.Overstack,
		}
	case evtc.BuffRemove:
		return "buffRemove", map[string]interface{}{
			"sourceAgentAddr": v.SourceAgentAddr, "destAgentAddr": v.DestAgentAddr, "skillId": v.SkillID,
			"totalDuration": v.TotalDuration, "longestStack": v.LongestStack, "removal": v.Removal.String(),
		}
	default:
		return "unknown", nil
	}
}
