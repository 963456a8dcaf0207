package evtc

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gw2evtc/evtclib/gamedata"
	"github.com/gw2evtc/evtclib/raw"
)

// buildAgent classifies one raw agent record and decodes its name field.
// No raw-field inspection is permitted to leak past this function (spec
// §9 "sentinel-based kind discrimination"): every caller downstream only
// ever sees a Kind value.
func buildAgent(ra raw.Agent) (Agent, error) {
	kind, err := classifyAndDecode(ra)
	if err != nil {
		return Agent{}, err
	}

	return Agent{
		Addr:          ra.Addr,
		Kind:          kind,
		Toughness:     ra.Toughness,
		Concentration: ra.Concentration,
		Healing:       ra.Healing,
		Condition:     ra.Condition,
		InstanceID:    0,
		FirstAware:    0,
		LastAware:     math.MaxUint64,
		Master:        nil,
	}, nil
}

func classifyAndDecode(ra raw.Agent) (Kind, error) {
	if ra.IsElite != raw.EliteAll1s {
		return decodePlayer(ra)
	}

	upper := uint16(ra.Prof >> 16)
	lower := uint16(ra.Prof & 0xFFFF)

	name, err := decodeCString(ra.Name[:])
	if err != nil {
		return nil, fmt.Errorf("decode agent name: %w", err)
	}

	if upper == 0xFFFF {
		return GadgetKind{ID: lower, Name: name}, nil
	}
	return CharacterKind{ID: lower, Name: name}, nil
}

func decodePlayer(ra raw.Agent) (Kind, error) {
	if !gamedata.ValidProfession(ra.Prof) {
		return nil, &InvalidProfessionError{Profession: ra.Prof}
	}
	if !gamedata.ValidEliteSpec(ra.IsElite) {
		return nil, &InvalidEliteSpecError{EliteSpec: ra.IsElite}
	}

	segs, err := splitPlayerName(ra.Name[:])
	if err != nil {
		return nil, fmt.Errorf("decode player name: %w", err)
	}

	var subgroup uint8
	if len(segs[2]) > 0 {
		subgroup = segs[2][0] - '0'
	}

	return PlayerKind{
		Profession:    gamedata.Profession(ra.Prof),
		EliteSpec:     gamedata.EliteSpec(ra.IsElite),
		CharacterName: segs[0],
		AccountName:   segs[1],
		Subgroup:      subgroup,
	}, nil
}

// splitPlayerName splits a 64-byte player name field into its three
// NUL-delimited segments: character name, account name (leading ':' and
// trailing four-digit discriminator preserved verbatim), and a one-digit
// ASCII subgroup number (spec §3.1).
func splitPlayerName(buf []byte) ([3]string, error) {
	var segs [3]string

	rest := buf
	for i := 0; i < 3; i++ {
		idx := bytes.IndexByte(rest, 0)
		if idx < 0 {
			return segs, fmt.Errorf("%w: missing NUL delimiter in player name field", ErrInvalidAgentTable)
		}
		seg := rest[:idx]
		if !utf8.Valid(seg) {
			return segs, fmt.Errorf("invalid utf8 in player name segment %d", i)
		}
		segs[i] = string(seg)
		rest = rest[idx+1:]
	}
	return segs, nil
}

// decodeCString reads a single NUL-terminated UTF-8 string from a
// fixed-size name buffer (spec §3.1, non-player entities).
func decodeCString(buf []byte) (string, error) {
	idx := bytes.IndexByte(buf, 0)
	if idx < 0 {
		idx = len(buf)
	}
	s := buf[:idx]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("invalid utf8 in name field")
	}
	return string(s), nil
}
