package evtc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/gw2evtc/evtclib/container"
	"github.com/gw2evtc/evtclib/raw"
)

// Process turns an already-decoded raw.File into a materialized Log. It
// is a pure transformation: two passes over the event stream to
// materialize the agent table (spec §4.3), followed by a single
// streaming pass translating flat records into the semantic event
// algebra (spec §3.2/§4.3). Neither pass mutates raw records; both
// output vectors are immutable once Process returns.
func Process(f *raw.File) (*Log, error) {
	agents := make([]Agent, 0, len(f.Agents))
	for _, ra := range f.Agents {
		a, err := buildAgent(ra)
		if err != nil {
			return nil, fmt.Errorf("evtc: building agent table: %w", err)
		}
		agents = append(agents, a)
	}

	sort.Slice(agents, func(i, j int) bool { return agents[i].Addr < agents[j].Addr })

	materializeWindows(agents, f.Events)
	materializeMasters(agents, f.Events)

	events := make([]Event, 0, len(f.Events))
	for _, item := range f.Events {
		kind, ok := convertEvent(item)
		if !ok {
			continue
		}
		events = append(events, Event{
			Time:       item.Time,
			Kind:       kind,
			IsNinety:   item.IsNinety,
			IsFifty:    item.IsFifty,
			IsMoving:   item.IsMoving,
			IsFlanking: item.IsFlanking,
			IsShields:  item.IsShields,
		})
	}

	return newLog(agents, events, f.Header.Species), nil
}

// ProcessStream decodes a seekable byte source through the container and
// decoder layers and materializes it into a Log (spec §6.2).
func ProcessStream(r io.ReaderAt, size int64, c container.Compression) (*Log, error) {
	stream, err := container.Open(r, size, c)
	if err != nil {
		return nil, err
	}

	f, err := raw.Parse(stream)
	if err != nil {
		return nil, err
	}

	return Process(f)
}

// ProcessFile is the buffered-file-reader convenience wrapper over
// ProcessStream (spec §6.2, §5's performance contract).
func ProcessFile(path string, c container.Compression) (*Log, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evtc: opening file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("evtc: stating file: %w", err)
	}

	return ProcessStream(file, info.Size(), c)
}

// findByAddr binary-searches agents (which must be address-sorted) for
// the agent at addr.
func findByAddr(agents []Agent, addr uint64) (int, bool) {
	i := sort.Search(len(agents), func(i int) bool { return agents[i].Addr >= addr })
	if i < len(agents) && agents[i].Addr == addr {
		return i, true
	}
	return -1, false
}

// materializeWindows is Pass A (spec §4.3): for every ordinary combat
// record, resolve the source agent's instance id and widen its awareness
// window. Must run before materializeMasters, since master linkage reads
// the windows this pass produces.
func materializeWindows(agents []Agent, items []raw.CombatItem) {
	for _, item := range items {
		if item.IsStateChange != raw.StateChangeNone {
			continue
		}
		idx, ok := findByAddr(agents, item.SrcAgent)
		if !ok {
			continue
		}
		a := &agents[idx]
		a.InstanceID = item.SrcInstID
		if a.FirstAware == 0 {
			a.FirstAware = item.Time
		}
		a.LastAware = item.Time
	}
}

// materializeMasters is Pass B (spec §4.3): link minions to masters by
// matching a nonzero src_master_instid against an agent whose instance id
// and awareness window (from Pass A) both match. Ties resolve to the
// first match in agent-vector (address-sorted) order — deterministic,
// per spec §9 open question 2, though the exact rule is not mandated by
// the source format.
func materializeMasters(agents []Agent, items []raw.CombatItem) {
	for _, item := range items {
		if item.SrcMasterInstID == 0 {
			continue
		}

		matches := 0
		masterIdx := -1
		for i := range agents {
			if agents[i].InstanceID != item.SrcMasterInstID {
				continue
			}
			if agents[i].FirstAware < item.Time && item.Time < agents[i].LastAware {
				matches++
				if masterIdx == -1 {
					masterIdx = i
				}
			}
		}
		if masterIdx == -1 {
			continue
		}
		if matches > 1 {
			slog.Warn("evtc: master-linkage tie, using first match",
				"instance_id", item.SrcMasterInstID, "time", item.Time, "candidates", matches)
		}

		minionIdx, ok := findByAddr(agents, item.SrcAgent)
		if !ok {
			continue
		}
		masterAddr := agents[masterIdx].Addr
		agents[minionIdx].Master = &masterAddr
	}
}
