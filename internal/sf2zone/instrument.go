package sf2zone

// Instrument is a named collection of instrument zones, each (for non-global
// zones) carrying a link to the sample source it plays.
type Instrument struct {
	Name  string
	Zones []Zone // non-global zones only
	// Global is the instrument's single global zone, if any; it applies as
	// a default to every non-global zone (spec §3: "at most one global
	// zone per collection and, if present, it is first").
	Global *Zone
}

// NewInstrument splits a flat zone list (as read from the file) into the
// optional leading global zone and the remaining non-global zones.
func NewInstrument(name string, zones []Zone) Instrument {
	inst := Instrument{Name: name}
	for i := range zones {
		if zones[i].IsGlobal {
			z := zones[i]
			inst.Global = &z
			continue
		}
		inst.Zones = append(inst.Zones, zones[i])
	}
	return inst
}

// Matching returns the non-global instrument zones whose key/velocity
// ranges contain (key, velocity).
func (inst Instrument) Matching(key, velocity int) []Zone {
	var out []Zone
	for _, z := range inst.Zones {
		if z.Matches(key, velocity) {
			out = append(out, z)
		}
	}
	return out
}
