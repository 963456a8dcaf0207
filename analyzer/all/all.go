// Package all blank-imports every concrete analyzer package so that
// importing it alone populates the complete evtc analyzer registry
// (spec §4.6 L6). Consumers that only need raids or only need fractals
// should import those packages directly instead.
package all

import (
	_ "github.com/gw2evtc/evtclib/analyzer/fractals"
	_ "github.com/gw2evtc/evtclib/analyzer/golems"
	_ "github.com/gw2evtc/evtclib/analyzer/raids"
	_ "github.com/gw2evtc/evtclib/analyzer/strikes"
)
