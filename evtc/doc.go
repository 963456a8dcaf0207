// Package evtc materializes decoded arcdps combat recordings (package
// raw) into the queryable Log domain model and drives the analyzer
// registry that produces per-encounter verdicts (spec §2 layers L2–L6's
// Log façade half).
package evtc
