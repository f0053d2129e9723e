package sf2midi

import "github.com/cbegin/sf2synth-go/internal/sf2entity"

// Continuous controller indices relevant to NRPN decoding and pedal state.
const (
	CCBankSelectMSB  = 0
	CCModWheel       = 1
	CCVolume         = 7
	CCPan            = 10
	CCExpression     = 11
	CCBankSelectLSB  = 32
	CCSustainPedal   = 64
	CCSostenutoPedal = 66
	CCSoftPedal      = 67
	CCReverbSend     = 91
	CCChorusSend     = 93
	CCDataEntryMSB   = 6
	CCDataEntryLSB   = 38
	CCNRPNLSB        = 98
	CCNRPNMSB        = 99
	CCRPNLSB         = 100
	CCRPNMSB         = 101
)

const pitchWheelNeutral = 8192

// ChannelState holds the live MIDI controller state for the engine's single
// channel: the 7-bit CC cache, per-key pressure, channel pressure, pitch
// wheel position and sensitivity, NRPN decode state, and pedal latches.
//
// The NRPN decoder follows original_source's channel-state variant (not the
// standalone duplicate decoder) per spec §9's open-question resolution.
type ChannelState struct {
	cc             [128]int
	keyPressure    [128]int
	channelPressure int
	pitchWheelValue int
	pitchWheelSensitivityCents int

	nrpnActive bool
	nrpnIndex  int

	nrpnValues [sf2entity.NumIndices]int

	sustain, sostenuto, soft bool
}

// NewChannelState returns a ChannelState with all controllers at their
// power-on defaults (pitch wheel centered, bend range 200 cents).
func NewChannelState() *ChannelState {
	cs := &ChannelState{
		pitchWheelValue:            pitchWheelNeutral,
		pitchWheelSensitivityCents: 200,
	}
	return cs
}

// Reset returns the channel state to its power-on defaults.
func (c *ChannelState) Reset() {
	*c = ChannelState{pitchWheelValue: pitchWheelNeutral, pitchWheelSensitivityCents: 200}
}

// ContinuousControllerValue returns the last received 7-bit value for cc.
func (c *ChannelState) ContinuousControllerValue(cc int) int {
	if cc < 0 || cc >= len(c.cc) {
		return 0
	}
	return c.cc[cc]
}

// NotePressure returns the last received polyphonic key-pressure value for
// the given MIDI key.
func (c *ChannelState) NotePressure(key int) int {
	if key < 0 || key >= len(c.keyPressure) {
		return 0
	}
	return c.keyPressure[key]
}

// ChannelPressure returns the last received channel-pressure value.
func (c *ChannelState) ChannelPressure() int { return c.channelPressure }

// PitchWheelValue returns the current 14-bit pitch wheel position
// (0-16383, neutral 8192).
func (c *ChannelState) PitchWheelValue() int { return c.pitchWheelValue }

// PitchWheelSensitivity returns the pitch bend range in cents.
func (c *ChannelState) PitchWheelSensitivity() int { return c.pitchWheelSensitivityCents }

// Bank returns the (MSB*128+LSB) bank number composed from CC 0 and CC 32.
func (c *ChannelState) Bank() int {
	return c.cc[CCBankSelectMSB]*128 + c.cc[CCBankSelectLSB]
}

// SustainDown, SostenutoDown, SoftDown report the current pedal latches.
func (c *ChannelState) SustainDown() bool   { return c.sustain }
func (c *ChannelState) SostenutoDown() bool { return c.sostenuto }
func (c *ChannelState) SoftDown() bool      { return c.soft }

// NRPNAdjustment returns the accumulated NRPN-driven adjustment for a
// generator index (0 if none has been received).
func (c *ChannelState) NRPNAdjustment(idx sf2entity.Index) int {
	if idx < 0 || idx >= sf2entity.NumIndices {
		return 0
	}
	return c.nrpnValues[idx]
}

// SetNotePressure records a polyphonic key-pressure value.
func (c *ChannelState) SetNotePressure(key, value int) {
	if key >= 0 && key < len(c.keyPressure) {
		c.keyPressure[key] = value
	}
}

// SetChannelPressure records a channel-pressure value.
func (c *ChannelState) SetChannelPressure(value int) { c.channelPressure = value }

// SetPitchWheelValue records a 14-bit pitch wheel position.
func (c *ChannelState) SetPitchWheelValue(value int) { c.pitchWheelValue = value }

// SetContinuousControllerValue records a CC value and, for the NRPN/RPN/
// data-entry controllers, advances the NRPN decode state machine.
//
// This mirrors original_source's MIDI/ChannelState.cpp setContinuousControllerValue,
// the variant the spec's open question names as authoritative (not the
// standalone MIDI/NRPN.cpp decoder).
func (c *ChannelState) SetContinuousControllerValue(cc, value int) {
	if cc < 0 || cc >= len(c.cc) {
		return
	}
	c.cc[cc] = value

	switch cc {
	case CCSustainPedal:
		c.sustain = value >= 64
	case CCSostenutoPedal:
		c.sostenuto = value >= 64
	case CCSoftPedal:
		c.soft = value >= 64

	case CCNRPNMSB:
		c.nrpnActive = value == 120
		c.nrpnIndex = 0

	case CCNRPNLSB:
		if !c.nrpnActive {
			return
		}
		switch {
		case value < 100:
			c.nrpnIndex += value
		case value == 100:
			c.nrpnIndex += 100
		case value == 101:
			c.nrpnIndex += 1000
		case value == 102:
			c.nrpnIndex += 10000
		}

	case CCDataEntryMSB:
		if !c.nrpnActive {
			return
		}
		if c.nrpnIndex < 0 || c.nrpnIndex >= int(sf2entity.NumIndices) {
			return
		}
		msb := (0x7F & value) << 7
		lsb := 0x7F & c.cc[CCDataEntryLSB]
		raw := msb | lsb
		adjusted := raw - pitchWheelNeutral
		if adjusted < -8192 {
			adjusted = -8192
		}
		if adjusted > 8192 {
			adjusted = 8192
		}
		factor := sf2entity.Def(sf2entity.Index(c.nrpnIndex)).NRPNMultiplier
		c.nrpnValues[c.nrpnIndex] = adjusted * factor

	case CCDataEntryLSB:
		// No-op: recorded in the cc array above, combined with the next
		// data-entry MSB.

	case CCRPNLSB, CCRPNMSB:
		c.nrpnActive = false
	}
}
