package evtcjson

import (
	"encoding/json"

	"github.com/gw2evtc/evtclib/evtc"
	"gopkg.in/yaml.v3"
)

// Marshal encodes a Log's Snapshot as JSON.
func Marshal(log *evtc.Log) ([]byte, error) {
	return json.Marshal(NewSnapshot(log))
}

// MarshalIndent encodes a Log's Snapshot as indented JSON, for
// cmd/evtcdump's --json output.
func MarshalIndent(log *evtc.Log) ([]byte, error) {
	return json.MarshalIndent(NewSnapshot(log), "", "  ")
}

// MarshalYAML encodes a Log's Snapshot as YAML.
func MarshalYAML(log *evtc.Log) ([]byte, error) {
	return yaml.Marshal(NewSnapshot(log))
}
