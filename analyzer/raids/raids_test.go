package raids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw2evtc/evtclib/evtc"
	"github.com/gw2evtc/evtclib/gamedata"
	"github.com/gw2evtc/evtclib/raw"
)

func bossAgent(addr uint64, speciesID uint16, name string) raw.Agent {
	var buf [64]byte
	copy(buf[:], name)
	return raw.Agent{Addr: addr, Prof: uint32(speciesID), IsElite: raw.EliteAll1s, Name: buf}
}

func playerAgent(addr uint64, character, account string, subgroup byte) raw.Agent {
	var buf [64]byte
	i := copy(buf[:], character)
	buf[i] = 0
	i++
	i += copy(buf[i:], account)
	buf[i] = 0
	i++
	buf[i] = subgroup
	return raw.Agent{Addr: addr, Prof: uint32(gamedata.Guardian), IsElite: uint32(gamedata.EliteSpecNone), Name: buf}
}

// TestValeGuardianSuccess implements spec §8.2 scenario 1 end to end,
// including the registered analyzer.
func TestValeGuardianSuccess(t *testing.T) {
	f := &raw.File{
		Header: raw.Header{Species: 0x3C4E},
		Agents: []raw.Agent{bossAgent(100, 0x3C4E, "Vale Guardian")},
		Events: []raw.CombatItem{
			{IsStateChange: raw.StateChangeChangeDead, SrcAgent: 100, Time: 60000},
		},
	}
	log, err := evtc.Process(f)
	require.NoError(t, err)

	an, ok := log.Analyzer()
	require.True(t, ok, "expected a registered analyzer for Vale Guardian")
	assert.False(t, an.IsCM(), "Vale Guardian has no challenge mote")

	outcome, ok := an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Success, outcome)
}

func TestValeGuardianFailureWhenBossNeverDies(t *testing.T) {
	f := &raw.File{
		Header: raw.Header{Species: 0x3C4E},
		Agents: []raw.Agent{bossAgent(100, 0x3C4E, "Vale Guardian")},
	}
	log, err := evtc.Process(f)
	require.NoError(t, err)

	an, ok := log.Analyzer()
	require.True(t, ok)
	outcome, ok := an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Failure, outcome)
}

// TestMursaatOverseerCMByMaxHealthThreshold implements spec §8.2 scenario 2.
func TestMursaatOverseerCMByMaxHealthThreshold(t *testing.T) {
	newLog := func(maxHealth uint64) *evtc.Log {
		f := &raw.File{
			Header: raw.Header{Species: 0x4314},
			Agents: []raw.Agent{bossAgent(100, 0x4314, "Mursaat Overseer")},
			Events: []raw.CombatItem{
				{IsStateChange: raw.StateChangeMaxHealthUpdate, SrcAgent: 100, DstAgent: maxHealth},
			},
		}
		log, err := evtc.Process(f)
		require.NoError(t, err)
		return log
	}

	cm, _ := newLog(30_000_000).Analyzer()
	assert.True(t, cm.IsCM(), "max_health=30_000_000 should be CM")

	normal, _ := newLog(25_000_000).Analyzer()
	assert.False(t, normal.IsCM(), "max_health=25_000_000 should not be CM")
}

// TestXeraExitAfterDeath implements spec §8.2 scenario 5: no ChangeDead
// for the phase-1 species, but a ChangeDead for the phase-2 species
// 0x3F9E, with every player's final ExitCombat after that death.
func TestXeraExitAfterDeath(t *testing.T) {
	f := &raw.File{
		Header: raw.Header{Species: 0x3F76},
		Agents: []raw.Agent{
			bossAgent(100, 0x3F9E, "Xera"), // phase-2 form
			playerAgent(200, "Hero", ":hero.1234", '1'),
		},
		Events: []raw.CombatItem{
			{IsStateChange: raw.StateChangeChangeDead, SrcAgent: 100, Time: 50000},
			{IsStateChange: raw.StateChangeExitCombat, SrcAgent: 200, Time: 50100},
		},
	}
	log, err := evtc.Process(f)
	require.NoError(t, err)

	an, ok := log.Analyzer()
	require.True(t, ok, "expected a registered analyzer for Xera")
	outcome, ok := an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Success, outcome)
}

func TestXeraFailureWhenPlayersExitBeforeDeath(t *testing.T) {
	f := &raw.File{
		Header: raw.Header{Species: 0x3F76},
		Agents: []raw.Agent{
			bossAgent(100, 0x3F9E, "Xera"),
			playerAgent(200, "Hero", ":hero.1234", '1'),
		},
		Events: []raw.CombatItem{
			{IsStateChange: raw.StateChangeExitCombat, SrcAgent: 200, Time: 100},
			{IsStateChange: raw.StateChangeChangeDead, SrcAgent: 100, Time: 50000},
		},
	}
	log, err := evtc.Process(f)
	require.NoError(t, err)

	an, _ := log.Analyzer()
	outcome, ok := an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Failure, outcome)
}

// TestTwinLargosRequiresBothBossesDead covers the dual-simultaneous-boss
// analyzer: either boss alone dying is not a kill.
func TestTwinLargosRequiresBothBossesDead(t *testing.T) {
	ids := gamedata.BossIDs(gamedata.TwinLargos)
	f := &raw.File{
		Header: raw.Header{Species: ids[0]},
		Agents: []raw.Agent{
			bossAgent(100, ids[0], "Nikare"),
			bossAgent(200, ids[1], "Kenut"),
		},
		Events: []raw.CombatItem{
			{IsStateChange: raw.StateChangeChangeDead, SrcAgent: 100, Time: 1000},
		},
	}
	log, err := evtc.Process(f)
	require.NoError(t, err)

	an, ok := log.Analyzer()
	require.True(t, ok, "expected a registered analyzer for Twin Largos")
	outcome, ok := an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Failure, outcome, "only one of two bosses dead should be Failure")

	f.Events = append(f.Events, raw.CombatItem{IsStateChange: raw.StateChangeChangeDead, SrcAgent: 200, Time: 1500})
	log, err = evtc.Process(f)
	require.NoError(t, err)

	an, _ = log.Analyzer()
	outcome, ok = an.Outcome()
	require.True(t, ok)
	assert.Equal(t, evtc.Success, outcome, "both bosses dead should be Success")
}
