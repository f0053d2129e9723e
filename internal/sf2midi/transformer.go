// Package sf2midi holds the MIDI-facing pieces of the engine: the per-
// channel controller cache and NRPN decoder, the modulator source value
// transform curves, and 1-3 byte channel-message decoding.
package sf2midi

import (
	"math"

	"github.com/cbegin/sf2synth-go/internal/sf2entity"
)

// ValueTransformer converts a raw controller sample into a [0,1] (unipolar)
// or [-1,1] (bipolar) contribution, using one of 32 precomputed tables
// selected by (controller range, polarity, direction, continuity).
type ValueTransformer struct {
	table []float64
}

// All 32 tables (2 controller ranges x 2 polarities x 2 directions x 4
// continuity kinds) are built once at package init so that constructing a
// ValueTransformer during note_on (an RT-safe path per spec §5) never
// allocates: it is an array index, not a map lookup or table build.
var allTables [32][]float64

func transformKey(maxValue int, bipolar, negative bool, continuity sf2entity.SourceContinuity) int {
	key := int(continuity)
	if negative {
		key += 4
	}
	if bipolar {
		key += 8
	}
	if maxValue == 8191 {
		key += 16
	}
	return key
}

func init() {
	for _, maxValue := range []int{127, 8191} {
		for _, bipolar := range []bool{false, true} {
			for _, negative := range []bool{false, true} {
				for _, continuity := range []sf2entity.SourceContinuity{
					sf2entity.ContinuityLinear, sf2entity.ContinuityConcave,
					sf2entity.ContinuityConvex, sf2entity.ContinuitySwitched,
				} {
					key := transformKey(maxValue, bipolar, negative, continuity)
					allTables[key] = buildTable(maxValue, bipolar, negative, continuity)
				}
			}
		}
	}
}

func buildTable(maxValue int, bipolar, negative bool, continuity sf2entity.SourceContinuity) []float64 {
	m := float64(maxValue)
	table := make([]float64, maxValue+1)
	for i := 0; i <= maxValue; i++ {
		x := float64(i)
		var v float64
		switch continuity {
		case sf2entity.ContinuityLinear:
			v = x / (m + 1)
		case sf2entity.ContinuityConcave:
			if i == maxValue {
				v = 1
			} else {
				v = -40.0 / 96.0 * math.Log10((m-x)/m)
			}
		case sf2entity.ContinuityConvex:
			if i == 0 {
				v = 0
			} else {
				v = 1 + 40.0/96.0*math.Log10(x/m)
			}
		case sf2entity.ContinuitySwitched:
			if x <= m/2 {
				v = 0
			} else {
				v = 1
			}
		}
		if negative {
			v = 1 - v
		}
		if bipolar {
			v = 2*v - 1
		}
		table[i] = v
	}
	return table
}

// NewValueTransformer selects the precomputed table for the given source's
// controller range, polarity, direction, and continuity. No allocation.
func NewValueTransformer(source sf2entity.Source) ValueTransformer {
	maxValue := source.ControllerRange() - 1
	key := transformKey(maxValue, source.Bipolar(), source.Negative(), source.Continuity())
	return ValueTransformer{table: allTables[key]}
}

// Transform converts a raw controller sample into the transformer's output
// range, clamping the index to the table's bounds.
func (t ValueTransformer) Transform(value int) float64 {
	if value < 0 {
		value = 0
	}
	if value >= len(t.table) {
		value = len(t.table) - 1
	}
	return t.table[value]
}
