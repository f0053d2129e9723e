package sf2voice

// Mixer accumulates the dry stereo bus plus the chorus and reverb send
// buses across every active voice's contribution to one render block, per
// spec §4.10. The reverb/chorus slices may be nil, in which case sends are
// simply dropped (a caller not wiring effects busses doesn't pay for them).
type Mixer struct {
	DryLeft, DryRight       []float32
	ChorusLeft, ChorusRight []float32
	ReverbLeft, ReverbRight []float32
}

// Reset zeroes the first frameCount entries of every populated buffer,
// preparing the mixer for a new render block.
func (m *Mixer) Reset(frameCount int) {
	zero := func(buf []float32) {
		for i := 0; i < frameCount && i < len(buf); i++ {
			buf[i] = 0
		}
	}
	zero(m.DryLeft)
	zero(m.DryRight)
	zero(m.ChorusLeft)
	zero(m.ChorusRight)
	zero(m.ReverbLeft)
	zero(m.ReverbRight)
}

// Add accumulates one voice's rendered frame at sample index i. The send
// amounts are multiplied into the chorus/reverb buses on top of the
// already left/right-panned dry value, per spec §4.10.
func (m *Mixer) Add(i int, left, right, chorusSend, reverbSend float32) {
	if i < 0 {
		return
	}
	if i < len(m.DryLeft) {
		m.DryLeft[i] += left
	}
	if i < len(m.DryRight) {
		m.DryRight[i] += right
	}
	if m.ChorusLeft != nil && i < len(m.ChorusLeft) {
		m.ChorusLeft[i] += left * chorusSend
	}
	if m.ChorusRight != nil && i < len(m.ChorusRight) {
		m.ChorusRight[i] += right * chorusSend
	}
	if m.ReverbLeft != nil && i < len(m.ReverbLeft) {
		m.ReverbLeft[i] += left * reverbSend
	}
	if m.ReverbRight != nil && i < len(m.ReverbRight) {
		m.ReverbRight[i] += right * reverbSend
	}
}
