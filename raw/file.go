// Package raw decodes the arcdps .evtc binary container into flat,
// undecoded records: a header, an agent table, a skill table, and a combat
// event stream. It performs no semantic interpretation — that is the job
// of the evtc package's materializer. raw tolerates unknown event subtypes
// and a stream truncated mid-event (both forward-compatibility contracts
// of the format), and supports both on-disk revisions from the same
// entry point.
package raw

// Magic is the four-byte tag every evtc file starts with.
const Magic = "EVTC"

// Header is the fixed-layout file header.
type Header struct {
	// BuildDate is the literal 8-byte ASCII arcdps build date (YYYYMMDD),
	// stored verbatim — it is a build identifier, not a parsed time.Time.
	BuildDate string
	Revision  byte
	Species   uint16
	AgentCount uint32
}

// Agent is one raw, undecoded agent-table record (96 bytes on disk).
// Name holds the raw 64-byte name field; decoding it into character/
// account name or a plain NPC/gadget name depends on classification
// performed one layer up (see evtc's classifyAndDecode), per spec §3.1.
type Agent struct {
	Addr       uint64
	Prof       uint32
	IsElite    uint32
	Toughness  int16
	Concentration int16
	Healing    int16
	Condition  int16
	Name       [64]byte
}

// EliteAll1s is the "all-ones" sentinel marking a non-player Prof/IsElite
// pair (spec §3.1 entity classification).
const EliteAll1s = 0xFFFFFFFF

// Skill is one raw skill-table record (68 bytes on disk).
type Skill struct {
	ID   int32
	Name [64]byte
}

// CombatItem is one decoded-from-the-wire combat event record, already
// normalized across the two on-disk revisions (rev 0's narrower
// OverstackValue/SkillID and absent DstMasterInstID/IsOffcycle are
// widened/zero-filled by the per-revision reader in parse.go).
type CombatItem struct {
	Time       uint64
	SrcAgent   uint64
	DstAgent   uint64
	Value      int32
	BuffDmg    int32
	OverstackValue uint32
	SkillID    uint32
	SrcInstID  uint16
	DstInstID  uint16
	SrcMasterInstID uint16
	DstMasterInstID uint16
	IFF        IFF
	Buff       bool
	Result     Result
	IsActivation Activation
	IsBuffRemove BuffRemove
	IsNinety   bool
	IsFifty    bool
	IsMoving   bool
	IsStateChange StateChange
	IsFlanking bool
	IsShields  bool
	IsOffcycle bool
}

// File is the fully parsed, flat output of Parse: every section of the
// container, undecoded. Nothing here has been cross-referenced yet.
type File struct {
	Header Header
	Agents []Agent
	Skills []Skill
	Events []CombatItem
}
