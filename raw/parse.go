package raw

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
)

const (
	agentRecordSize = 96
	skillRecordSize = 68
	eventRecordSize = 64
)

// Parse decodes an evtc byte stream into its flat sections. It never
// interprets the agent name field, never cross-references instance ids,
// and never drops an agent or skill record — only combat event records
// can be silently discarded, and only per the tolerance rules below.
//
// A stream that ends cleanly partway through the event section (the
// common case for a recording cut off mid-fight) is not an error: Parse
// returns every event decoded so far. Any other I/O failure propagates.
func Parse(r io.Reader, opts ...Option) (*File, error) {
	o := newOptions(opts)

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, o.bufferSize)
	}

	header, err := parseHeader(br)
	if err != nil {
		return nil, err
	}

	agents, err := parseAgents(br, header.AgentCount)
	if err != nil {
		return nil, fmt.Errorf("evtc: reading agent table: %w", err)
	}

	skills, err := parseSkills(br)
	if err != nil {
		return nil, fmt.Errorf("evtc: reading skill table: %w", err)
	}

	if header.Revision != 0 && header.Revision != 1 {
		return nil, fmt.Errorf("evtc: reading event stream: %w", &UnknownRevisionError{Revision: header.Revision})
	}

	events, err := parseEvents(br, header.Revision)
	if err != nil {
		return nil, fmt.Errorf("evtc: reading event stream: %w", err)
	}

	return &File{Header: header, Agents: agents, Skills: skills, Events: events}, nil
}

func parseHeader(r io.Reader) (Header, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading magic: %w", err)
	}
	if string(magic[:]) != Magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", ErrMalformedHeader, magic[:])
	}

	var buildDate [8]byte
	if _, err := io.ReadFull(r, buildDate[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading build date: %w", err)
	}

	var revision [1]byte
	if _, err := io.ReadFull(r, revision[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading revision: %w", err)
	}

	var species [2]byte
	if _, err := io.ReadFull(r, species[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading species id: %w", err)
	}

	var zero [1]byte
	if _, err := io.ReadFull(r, zero[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading header delimiter: %w", err)
	}
	if zero[0] != 0 {
		return Header{}, fmt.Errorf("%w: non-zero delimiter byte %d", ErrMalformedHeader, zero[0])
	}

	var agentCount [4]byte
	if _, err := io.ReadFull(r, agentCount[:]); err != nil {
		return Header{}, fmt.Errorf("evtc: reading agent count: %w", err)
	}

	return Header{
		BuildDate:  string(buildDate[:]),
		Revision:   revision[0],
		Species:    binary.LittleEndian.Uint16(species[:]),
		AgentCount: binary.LittleEndian.Uint32(agentCount[:]),
	}, nil
}

func parseAgents(r io.Reader, count uint32) ([]Agent, error) {
	agents := make([]Agent, 0, count)
	var buf [agentRecordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		var a Agent
		a.Addr = binary.LittleEndian.Uint64(buf[0:8])
		a.Prof = binary.LittleEndian.Uint32(buf[8:12])
		a.IsElite = binary.LittleEndian.Uint32(buf[12:16])
		a.Toughness = int16(binary.LittleEndian.Uint16(buf[16:18]))
		a.Concentration = int16(binary.LittleEndian.Uint16(buf[18:20]))
		a.Healing = int16(binary.LittleEndian.Uint16(buf[20:22]))
		// buf[22:24] is disk padding, intentionally unread.
		a.Condition = int16(binary.LittleEndian.Uint16(buf[24:26]))
		// buf[26:28] is disk padding, intentionally unread.
		copy(a.Name[:], buf[28:92])
		// buf[92:96] is disk padding, intentionally unread.
		agents = append(agents, a)
	}
	return agents, nil
}

func parseSkills(r io.Reader) ([]Skill, error) {
	var countBuf [4]byte
	if _, err := io.ReadFull(r, countBuf[:]); err != nil {
		return nil, err
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	skills := make([]Skill, 0, count)
	var buf [skillRecordSize]byte
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		var s Skill
		s.ID = int32(binary.LittleEndian.Uint32(buf[0:4]))
		copy(s.Name[:], buf[4:68])
		skills = append(skills, s)
	}
	return skills, nil
}

// parseEvents loops reading revision-shaped records until a clean EOF.
// io.EOF (no bytes at all read for the next record) and io.ErrUnexpectedEOF
// (a record truncated partway through) both end the loop successfully,
// per spec §4.2/§6.1 — a recording may legitimately be cut off mid-fight.
func parseEvents(r io.Reader, revision byte) ([]CombatItem, error) {
	var events []CombatItem
	var buf [eventRecordSize]byte

	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return events, nil
			}
			return events, err
		}

		item, ok, err := decodeEvent(buf[:], revision)
		if err != nil {
			return events, err
		}
		if !ok {
			slog.Debug("evtc: skipping unrecognized state-change record", "byte", buf[statechangeOffset(revision)])
			continue
		}
		events = append(events, item)
	}
}

func statechangeOffset(revision byte) int {
	if revision == 1 {
		return 56
	}
	return 59
}

// decodeEvent interprets one fixed-size record per the revision-specific
// layout documented in spec §4.2. Callers must have already rejected an
// unknown revision before reaching here (Parse does this once,
// unconditionally, after the agent and skill tables are read and before
// the event loop starts — not per-record).
// ok=false means the record's is_statechange byte was unrecognized and
// the whole record must be dropped (the sole non-saturating enum in the
// format).
func decodeEvent(buf []byte, revision byte) (CombatItem, bool, error) {
	var item CombatItem
	item.Time = binary.LittleEndian.Uint64(buf[0:8])
	item.SrcAgent = binary.LittleEndian.Uint64(buf[8:16])
	item.DstAgent = binary.LittleEndian.Uint64(buf[16:24])
	item.Value = int32(binary.LittleEndian.Uint32(buf[24:28]))
	item.BuffDmg = int32(binary.LittleEndian.Uint32(buf[28:32]))

	var off int
	if revision == 1 {
		item.OverstackValue = binary.LittleEndian.Uint32(buf[32:36])
		item.SkillID = binary.LittleEndian.Uint32(buf[36:40])
		item.SrcInstID = binary.LittleEndian.Uint16(buf[40:42])
		item.DstInstID = binary.LittleEndian.Uint16(buf[42:44])
		item.SrcMasterInstID = binary.LittleEndian.Uint16(buf[44:46])
		item.DstMasterInstID = binary.LittleEndian.Uint16(buf[46:48])
		off = 48
	} else {
		item.OverstackValue = uint32(binary.LittleEndian.Uint16(buf[32:34]))
		item.SkillID = uint32(binary.LittleEndian.Uint16(buf[34:36]))
		item.SrcInstID = binary.LittleEndian.Uint16(buf[36:38])
		item.DstInstID = binary.LittleEndian.Uint16(buf[38:40])
		item.SrcMasterInstID = binary.LittleEndian.Uint16(buf[40:42])
		item.DstMasterInstID = 0
		off = 42 + 9 // 9 tracking bytes skipped before the flag block (rev 0 only)
	}

	item.IFF = decodeIFF(buf[off])
	item.Buff = buf[off+1] != 0
	item.Result = decodeResult(buf[off+2])
	item.IsActivation = decodeActivation(buf[off+3])
	item.IsBuffRemove = decodeBuffRemove(buf[off+4])
	item.IsNinety = buf[off+5] != 0
	item.IsFifty = buf[off+6] != 0
	item.IsMoving = buf[off+7] != 0

	sc, ok := decodeStateChange(buf[off+8])
	if !ok {
		return CombatItem{}, false, nil
	}
	item.IsStateChange = sc

	item.IsFlanking = buf[off+9] != 0
	item.IsShields = buf[off+10] != 0

	if revision == 1 {
		item.IsOffcycle = buf[off+11] != 0
	}
	// Remaining tail bytes (2 for rev 0, 4 for rev 1) are disk padding,
	// intentionally unread.

	return item, true, nil
}
