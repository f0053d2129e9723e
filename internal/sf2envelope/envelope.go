// Package sf2envelope implements the SF2.01 DAHDSR envelope generator used
// for both the volume and modulation envelopes of a voice.
package sf2envelope

import (
	"math"

	"github.com/cbegin/sf2synth-go/internal/sf2dsp"
)

// StageIndex enumerates the envelope's stages, in the order they are
// traversed on a full gate(true)...gate(false) cycle.
type StageIndex int

const (
	StageDelay StageIndex = iota
	StageAttack
	StageHold
	StageDecay
	StageSustain
	StageRelease
	StageIdle
)

// stage holds the precomputed sample-count duration for one stage; attack
// additionally needs a rate constant for its exponential curve.
type stage struct {
	samples int
	// attackRate is used only by the attack stage: value grows toward 1 as
	// value += attackRate*(1.0001 - value), an exponential approach.
	attackRate float64
}

func (s stage) durationInSamples() int { return s.samples }

// Generator produces one envelope value per sample tick, per spec §4.4: a
// delay/attack/hold/decay/sustain/release/idle stage machine with
// exponential attack and linear decay/release.
type Generator struct {
	stages       [6]stage
	stageIndex   StageIndex
	counter      int
	value        float64
	sustainLevel float64
	releaseStep  float64
}

// Params configures one instance of the envelope from generator values
// already resolved to time-cents (delay/attack/hold/decay/release) or
// tenths-of-a-percent (sustain), plus the key-scaling amounts and the
// sounding MIDI key.
type Params struct {
	SampleRate float64
	Key        int

	DelayTimecents   float64
	AttackTimecents  float64
	HoldTimecents    float64
	DecayTimecents   float64
	SustainTenths    float64 // 0-1000, attenuation-style (see Configure)
	ReleaseTimecents float64

	KeyToHoldCents  float64
	KeyToDecayCents float64
}

// Configure (re)initializes the stage durations from Params. Called once
// per note-on for each of a voice's two envelopes (volume and modulation),
// which share this one generic type; both callers pass their sustain
// generator value unchanged as SustainTenths, and the sustain level is
// 1 - SustainTenths/1000 clamped to [0, 1].
func (g *Generator) Configure(p Params) {
	keyScale := float64(60 - p.Key)
	hold := p.HoldTimecents + keyScale*p.KeyToHoldCents
	decay := p.DecayTimecents + keyScale*p.KeyToDecayCents

	g.stages[StageDelay] = stage{samples: samplesFor(p.SampleRate, p.DelayTimecents)}
	attackSamples := samplesFor(p.SampleRate, p.AttackTimecents)
	g.stages[StageAttack] = stage{samples: attackSamples, attackRate: attackRateFor(attackSamples)}
	g.stages[StageHold] = stage{samples: samplesFor(p.SampleRate, hold)}
	g.stages[StageDecay] = stage{samples: samplesFor(p.SampleRate, decay)}
	g.stages[StageRelease] = stage{samples: samplesFor(p.SampleRate, p.ReleaseTimecents)}
	g.sustainLevel = sf2dsp.Clamp(1.0-p.SustainTenths/1000.0, 0.0, 1.0)
}

func samplesFor(sampleRate, timecents float64) int {
	seconds := sf2dsp.CentsToSeconds(timecents)
	n := int(sampleRate * seconds)
	if n < 0 {
		n = 0
	}
	return n
}

// attackRateFor picks a per-sample growth constant so that an exponential
// approach `value += rate*(1.0001-value)` reaches ~1.0 in the given number
// of samples; 0 samples means an instantaneous attack.
func attackRateFor(samples int) float64 {
	if samples <= 0 {
		return 1.0
	}
	// Solve (1.0001-1)*(1-rate)^samples + 1 ~= 1 is awkward in closed form
	// for this recurrence; a practical choice (matching common softsynth
	// practice) is rate = 1 - exp(ln(0.0001/1.0001)/samples), which drives
	// the exponential gap to within 0.01% of 1.0 in exactly `samples` ticks.
	return 1.0 - math.Exp(math.Log(0.0001/1.0001)/float64(samples))
}

// Gate starts (true) or releases (false) the envelope. gate(true) resets
// the value to 0 and enters the delay stage. gate(false) from any
// non-idle, non-release stage jumps immediately to the release stage,
// continuing from the current value (no forced discontinuity).
func (g *Generator) Gate(noteOn bool) {
	if noteOn {
		g.value = 0
		g.enterStage(StageDelay)
		return
	}
	if g.stageIndex != StageIdle && g.stageIndex != StageRelease {
		g.enterStage(StageRelease)
	}
}

// Stop forces the generator to idle; all future values are 0.
func (g *Generator) Stop() {
	g.stageIndex = StageIdle
	g.value = 0
}

func (g *Generator) enterStage(next StageIndex) {
	if next == StageRelease {
		// Capture the slope needed to reach 0 in exactly releaseSamples
		// ticks from whatever value the envelope was at when released, so
		// the release lasts the same time regardless of which stage the
		// gate-off happened in (the slope scales with that value).
		samples := g.stages[StageRelease].samples
		if samples <= 0 {
			g.releaseStep = g.value + 1 // guarantees value goes negative next tick
		} else {
			g.releaseStep = g.value / float64(samples)
		}
	}
	g.stageIndex = next
	if next != StageIdle {
		g.counter = g.stages[next].durationInSamples()
	}
}

// IsActive reports whether the generator still has values to emit.
func (g *Generator) IsActive() bool { return g.stageIndex != StageIdle }

// IsGated reports whether the generator is active and has not yet reached
// the release stage (i.e. the note is conceptually still "held").
func (g *Generator) IsGated() bool {
	return g.IsActive() && g.stageIndex != StageRelease
}

// IsDelayed reports whether the generator is in its delay stage (used by
// the voice render cycle to suppress output during delay, per spec §4.9).
func (g *Generator) IsDelayed() bool { return g.stageIndex == StageDelay }

// Stage returns the current stage index.
func (g *Generator) Stage() StageIndex { return g.stageIndex }

// Value returns the current envelope value without advancing.
func (g *Generator) Value() float64 { return g.value }

// checkForNextStage advances through zero-length stages until the current
// stage has a nonzero counter or the generator idles out.
func (g *Generator) checkForNextStage() bool {
	for g.counter == 0 {
		switch g.stageIndex {
		case StageDelay:
			g.enterStage(StageAttack)
		case StageAttack:
			g.enterStage(StageHold)
		case StageHold:
			g.enterStage(StageDecay)
		case StageDecay:
			g.enterStage(StageSustain)
		case StageSustain:
			// Sustain has no natural end; it holds until Gate(false).
			return true
		case StageRelease:
			g.Stop()
			return false
		case StageIdle:
			return false
		}
	}
	return true
}

// GetNextValue advances the envelope by one sample and returns the new
// value. Must be called exactly once per output sample.
func (g *Generator) GetNextValue() float64 {
	if !g.checkForNextStage() {
		return 0
	}
	g.value = g.nextStageValue()
	if g.value < 0 {
		g.Stop()
		return 0
	}
	if g.value > 1 {
		g.value = 1
	}
	if g.stageIndex != StageSustain {
		g.counter--
	}
	g.checkForNextStage()
	return g.value
}

// nextStageValue computes the value for the current stage, given the
// previous value. Sustain holds; attack grows exponentially toward 1;
// decay and release fall linearly toward their targets.
func (g *Generator) nextStageValue() float64 {
	switch g.stageIndex {
	case StageDelay:
		return 0
	case StageAttack:
		rate := g.stages[StageAttack].attackRate
		return g.value + rate*(1.0001-g.value)
	case StageHold:
		return 1
	case StageDecay:
		samples := g.stages[StageDecay].samples
		if samples <= 0 {
			return g.sustainLevel
		}
		step := (1.0 - g.sustainLevel) / float64(samples)
		return g.value - step
	case StageSustain:
		return g.sustainLevel
	case StageRelease:
		samples := g.stages[StageRelease].samples
		if samples <= 0 {
			return -1 // force immediate idle
		}
		// The release ramp uses a fixed per-sample step computed from the
		// value at which release was entered, so the ramp reaches 0 after
		// releaseSamples ticks whatever the starting level; a lower
		// starting level gives a shallower slope.
		step := g.releaseStep
		return g.value - step
	}
	return 0
}
