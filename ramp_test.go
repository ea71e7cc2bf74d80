package motimove8

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func Test_advanceRamp_upFromOff(t *testing.T) {
	c := qt.New(t)
	s := NewStore()
	s.SetStimFrequency(10)
	s.SetRampUpTime([numChannels]int{1000, 0, 0, 0, 0, 0, 0, 0}) // n = 10 pulses

	s.channels[0].active.Store(true)

	pct, fires := s.advanceRamp(0)
	c.Assert(fires, qt.Equals, true)
	c.Assert(pct, qt.Equals, float32(25)) // ramp_start_pct default

	var last float32
	for i := 0; i < 20; i++ {
		pct, fires = s.advanceRamp(0)
		c.Assert(fires, qt.Equals, true)
		c.Assert(pct >= last, qt.Equals, true, qt.Commentf("pulse %d: pct=%v last=%v", i, pct, last))
		last = pct
	}
	c.Assert(pct, qt.Equals, float32(100))
	c.Assert(RampFlag(s.channels[0].rampFlag.Load()), qt.Equals, RampNone)
}

func Test_advanceRamp_downAfterDeactivate(t *testing.T) {
	c := qt.New(t)
	s := NewStore()
	s.SetStimFrequency(10)
	s.SetRampDownTime([numChannels]int{1000, 0, 0, 0, 0, 0, 0, 0}) // n = 10 pulses

	s.channels[0].active.Store(true)
	s.channels[0].setRampPct(100)
	s.channels[0].oldState.Store(true)
	s.channels[0].rampFlag.Store(int32(RampNone))

	s.channels[0].active.Store(false)

	pct, fires := s.advanceRamp(0)
	c.Assert(fires, qt.Equals, true)
	c.Assert(pct, qt.Equals, float32(100))

	sawInactive := false
	for i := 0; i < 20; i++ {
		pct, fires = s.advanceRamp(0)
		if !fires {
			sawInactive = true
			break
		}
	}
	c.Assert(sawInactive, qt.Equals, true)
	c.Assert(pct, qt.Equals, float32(0))
	c.Assert(RampFlag(s.channels[0].rampFlag.Load()), qt.Equals, RampNone)
}

func Test_advanceRamp_noRampWhenNeverActive(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	pct, fires := s.advanceRamp(3)
	c.Assert(fires, qt.Equals, false)
	c.Assert(pct, qt.Equals, float32(0))
}
