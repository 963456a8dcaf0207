package gamedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByIDKnownAndUnknown(t *testing.T) {
	enc, ok := ByID(0x3C4E)
	require.True(t, ok)
	assert.Equal(t, ValeGuardian, enc)

	_, ok = ByID(0xFFFF)
	assert.False(t, ok)
}

func TestByIDXeraBothPhases(t *testing.T) {
	for _, id := range []uint16{0x3F76, 0x3F9E} {
		enc, ok := ByID(id)
		assert.True(t, ok, "ByID(%#x)", id)
		assert.Equal(t, Xera, enc, "ByID(%#x)", id)
	}
}

func TestBossIDsAndGameMode(t *testing.T) {
	assert.Equal(t, []uint16{0x3C4E}, BossIDs(ValeGuardian))
	assert.Equal(t, Raid, GameMode(ValeGuardian))
	assert.Equal(t, Fractal, GameMode(MAMA))
	assert.Equal(t, Strike, GameMode(FraenirOfJormag))
}

func TestByNameCaseInsensitiveAndUnknown(t *testing.T) {
	enc, err := ByName("Vale Guardian")
	require.NoError(t, err)
	assert.Equal(t, ValeGuardian, enc)

	enc, err = ByName("VG")
	require.NoError(t, err)
	assert.Equal(t, ValeGuardian, enc)

	var unknownErr *UnknownEncounterError
	_, err = ByName("not a real boss")
	require.ErrorAs(t, err, &unknownErr)
}

func TestEveryRegistryEncounterResolvesRoundTrip(t *testing.T) {
	for enc := range registry {
		for _, id := range BossIDs(enc) {
			got, ok := ByID(id)
			assert.True(t, ok, "ByID(%#x)", id)
			assert.Equal(t, enc, got, "ByID(%#x)", id)
		}
		for _, tok := range Tokens(enc) {
			got, err := ByName(tok)
			assert.NoError(t, err, "ByName(%q)", tok)
			assert.Equal(t, enc, got, "ByName(%q)", tok)
		}
	}
}
