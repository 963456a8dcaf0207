package raw

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// header writes a minimal valid header for the given revision and species,
// with agentCount agent records (each must then be appended separately).
func header(t *testing.T, revision byte, species uint16, agentCount uint32) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString(Magic)
	buf.WriteString("20240101")
	buf.WriteByte(revision)
	binary.Write(&buf, binary.LittleEndian, species)
	buf.WriteByte(0)
	binary.Write(&buf, binary.LittleEndian, agentCount)
	return buf.Bytes()
}

func agentRecord(addr uint64, prof, isElite uint32, condition int16, name string) []byte {
	buf := make([]byte, agentRecordSize)
	binary.LittleEndian.PutUint64(buf[0:8], addr)
	binary.LittleEndian.PutUint32(buf[8:12], prof)
	binary.LittleEndian.PutUint32(buf[12:16], isElite)
	binary.LittleEndian.PutUint16(buf[24:26], uint16(condition))
	copy(buf[28:92], name)
	return buf
}

// eventRecordRev1 builds one 64-byte rev-1 event record with the given
// statechange byte and src/dst agents; all other fields zero.
func eventRecordRev1(t *testing.T, time, src, dst uint64, statechange byte) []byte {
	t.Helper()
	buf := make([]byte, eventRecordSize)
	binary.LittleEndian.PutUint64(buf[0:8], time)
	binary.LittleEndian.PutUint64(buf[8:16], src)
	binary.LittleEndian.PutUint64(buf[16:24], dst)
	buf[48+8] = statechange // off=48 for rev1
	return buf
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	bad := []byte("XXXX20240101")
	_, err := Parse(bytes.NewReader(bad))
	assert.ErrorIs(t, err, ErrMalformedHeader)
}

func TestParseNoAgentsNoSkillsNoEvents(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 1, 0x3C4E, 0))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // skill count

	f, err := Parse(&buf)
	require.NoError(t, err)
	assert.Empty(t, f.Agents)
	assert.Empty(t, f.Skills)
	assert.Empty(t, f.Events)
	assert.Equal(t, uint16(0x3C4E), f.Header.Species)
	assert.Equal(t, byte(1), f.Header.Revision)
}

func TestParseSingleAgentRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 1, 0x3C4E, 1))
	buf.Write(agentRecord(0xAAAA, 1, EliteAll1s, 1337, "Vale Guardian\x00"))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	f, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, f.Agents, 1)

	a := f.Agents[0]
	assert.Equal(t, uint64(0xAAAA), a.Addr)
	assert.Equal(t, uint32(1), a.Prof)
	assert.Equal(t, uint32(EliteAll1s), a.IsElite)
	assert.Equal(t, int16(1337), a.Condition)
	nul := bytes.IndexByte(a.Name[:], 0)
	require.GreaterOrEqual(t, nul, 0)
	assert.Equal(t, "Vale Guardian", string(a.Name[:nul]))
}

// TestParseAgentRecordLayoutAgainstHandBuiltBuffer builds its 96-byte agent
// record by hand, field by field per the on-disk layout (addr, prof,
// is_elite, toughness, concentration, healing, 2 bytes padding, condition,
// 2 bytes padding, 64-byte name, 4 bytes padding), independently of the
// agentRecord helper, so a regression in parseAgents' offsets can't be
// masked by a test fixture encoding the same mistake.
func TestParseAgentRecordLayoutAgainstHandBuiltBuffer(t *testing.T) {
	buf := make([]byte, agentRecordSize)
	binary.LittleEndian.PutUint64(buf[0:8], 0xBEEF)       // addr
	binary.LittleEndian.PutUint32(buf[8:12], 7)           // prof
	binary.LittleEndian.PutUint32(buf[12:16], 0)          // is_elite
	binary.LittleEndian.PutUint16(buf[16:18], 100)        // toughness
	binary.LittleEndian.PutUint16(buf[18:20], 200)        // concentration
	binary.LittleEndian.PutUint16(buf[20:22], 300)        // healing
	binary.LittleEndian.PutUint16(buf[22:24], 0xDEAD)     // padding, must be ignored
	binary.LittleEndian.PutUint16(buf[24:26], 400)        // condition
	binary.LittleEndian.PutUint16(buf[26:28], 0xDEAD)     // padding, must be ignored
	copy(buf[28:92], "Independent Fixture\x00")           // name
	binary.LittleEndian.PutUint32(buf[92:96], 0xDEADBEEF) // trailing padding, must be ignored

	var body bytes.Buffer
	body.Write(header(t, 1, 0x3C4E, 1))
	body.Write(buf)
	binary.Write(&body, binary.LittleEndian, uint32(0))

	f, err := Parse(&body)
	require.NoError(t, err)
	require.Len(t, f.Agents, 1)

	a := f.Agents[0]
	assert.Equal(t, uint64(0xBEEF), a.Addr)
	assert.Equal(t, int16(100), a.Toughness)
	assert.Equal(t, int16(200), a.Concentration)
	assert.Equal(t, int16(300), a.Healing)
	assert.Equal(t, int16(400), a.Condition)
	nul := bytes.IndexByte(a.Name[:], 0)
	require.GreaterOrEqual(t, nul, 0)
	assert.Equal(t, "Independent Fixture", string(a.Name[:nul]))
}

// TestTruncatedEventStreamEndsCleanly implements spec §8.2 scenario 6: a
// byte stream cut off partway into the event section parses successfully,
// with every event decoded before the cut preserved.
func TestTruncatedEventStreamEndsCleanly(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 1, 0x3C4E, 0))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // skill count

	buf.Write(eventRecordRev1(t, 1, 0xAAAA, 0, byte(StateChangeEnterCombat)))
	buf.Write(eventRecordRev1(t, 2, 0xAAAA, 0, byte(StateChangeExitCombat)))
	buf.Write(eventRecordRev1(t, 3, 0xAAAA, 0, byte(StateChangeSpawn)))

	full := buf.Bytes()
	truncated := full[:len(full)-20] // drop the last 20 bytes, leaving a partial third record

	f, err := Parse(bytes.NewReader(truncated))
	require.NoError(t, err)
	assert.Len(t, f.Events, 2)
}

// TestUnknownStateChangeByteDropsRecord implements spec §8.2 scenario 7:
// an is_statechange byte that doesn't match any known StateChange value
// causes that record to be silently dropped, with subsequent records
// parsing normally.
func TestUnknownStateChangeByteDropsRecord(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 1, 0x3C4E, 0))
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	buf.Write(eventRecordRev1(t, 1, 0xAAAA, 0, byte(StateChangeEnterCombat)))
	buf.Write(eventRecordRev1(t, 2, 0xAAAA, 0, 0xFE)) // undefined
	buf.Write(eventRecordRev1(t, 3, 0xAAAA, 0, byte(StateChangeExitCombat)))

	f, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, f.Events, 2)
	assert.Equal(t, StateChangeEnterCombat, f.Events[0].IsStateChange)
	assert.Equal(t, StateChangeExitCombat, f.Events[1].IsStateChange)
}

func TestDecodeEventRev0And1AgreeOnSharedFields(t *testing.T) {
	rev1 := eventRecordRev1(t, 100, 0x1, 0x2, byte(StateChangeSpawn))
	item, ok, err := decodeEvent(rev1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(100), item.Time)
	assert.Equal(t, uint64(0x1), item.SrcAgent)
	assert.Equal(t, uint64(0x2), item.DstAgent)
	assert.Equal(t, StateChangeSpawn, item.IsStateChange)

	rev0 := make([]byte, eventRecordSize)
	binary.LittleEndian.PutUint64(rev0[0:8], 100)
	binary.LittleEndian.PutUint64(rev0[8:16], 0x1)
	binary.LittleEndian.PutUint64(rev0[16:24], 0x2)
	rev0[42+9+8] = byte(StateChangeSpawn) // off=42+9 for rev0
	item0, ok, err := decodeEvent(rev0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, item.Time, item0.Time)
	assert.Equal(t, item.SrcAgent, item0.SrcAgent)
	assert.Equal(t, item.DstAgent, item0.DstAgent)
	assert.Equal(t, item.IsStateChange, item0.IsStateChange)
}

// TestParseRejectsUnknownRevision implements spec §6.1: a header revision
// byte outside {0, 1} is always fatal, regardless of what follows it.
func TestParseRejectsUnknownRevision(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 9, 0x3C4E, 0))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // skill count
	buf.Write(eventRecordRev1(t, 1, 0xAAAA, 0, byte(StateChangeEnterCombat)))

	_, err := Parse(&buf)
	var revErr *UnknownRevisionError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, byte(9), revErr.Revision)
}

// TestParseRejectsUnknownRevisionEvenWithNoEvents guards against the
// unknown-revision check being scoped to decodeEvent's per-record path,
// which is never reached when the event stream is empty or immediately
// truncated: an empty io.ReadFull read returns io.EOF before any record
// is decoded, so the bad revision must be caught unconditionally, before
// the event-parsing loop runs at all (spec §6.1, §8.2's UnknownRevision
// row).
func TestParseRejectsUnknownRevisionEvenWithNoEvents(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(t, 9, 0x3C4E, 0))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // skill count
	// No event records follow: the stream ends right here.

	_, err := Parse(&buf)
	var revErr *UnknownRevisionError
	require.ErrorAs(t, err, &revErr)
	assert.Equal(t, byte(9), revErr.Revision)
}

func TestParsePropagatesHeaderReadError(t *testing.T) {
	_, err := Parse(&errReader{})
	assert.Error(t, err)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, io.ErrClosedPipe }
