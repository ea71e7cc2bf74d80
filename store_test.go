package motimove8

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func Test_NewStore_defaults(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	c.Assert(s.GetIntensity(), qt.Equals, 10)
	c.Assert(s.GetStimPeriodMS(), qt.Equals, 0) // freq never set
	c.Assert(s.rampStartPct.Load(), qt.Equals, uint32(defaultRampStartPct))
	c.Assert(s.rampEndPct.Load(), qt.Equals, uint32(defaultRampEndPct))
	c.Assert(s.rampGlobalEnable.Load(), qt.Equals, true)

	widths := s.GetPhaseWidths()
	for i, w := range widths {
		c.Assert(w, qt.Equals, 100, qt.Commentf("channel %d", i))
	}
	boostWidths := s.GetPhaseWidthsBoost()
	for i, w := range boostWidths {
		c.Assert(w, qt.Equals, 0, qt.Commentf("channel %d", i))
	}
}

func Test_SetMaxAmplitudes_ceiling(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	s.SetPulseDelayMode(PulseDelaySTD)
	s.SetMaxAmplitudes([numChannels]int{200, -5, 170, 0, 0, 0, 0, 0})
	got := s.GetAmplitudesMax()
	c.Assert(got[0], qt.Equals, 170)
	c.Assert(got[1], qt.Equals, 0)
	c.Assert(got[2], qt.Equals, 170)

	s.SetPulseDelayMode(PulseDelayOFF)
	s.SetMaxAmplitudes([numChannels]int{200, 0, 0, 0, 0, 0, 0, 0})
	got = s.GetAmplitudesMax()
	c.Assert(got[0], qt.Equals, 100)
}

func Test_SetMaxAmplitudes_legacyCeilingNeverFires(t *testing.T) {
	c := qt.New(t)
	s := NewStore(WithLegacyAmplitudeCeiling(true))

	s.SetPulseDelayMode(PulseDelaySTD)
	s.SetMaxAmplitudes([numChannels]int{250, -1, 0, 0, 0, 0, 0, 0})
	got := s.GetAmplitudesMax()
	c.Assert(got[0], qt.Equals, 250)
	c.Assert(got[1], qt.Equals, 0)
}

func Test_SetHighVoltage_defaultAcceptsDontChange(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	s.SetHighVoltage(HighVoltageDontChange)
	c.Assert(HighVoltage(s.highVoltage.Load()), qt.Equals, HighVoltageDontChange)
}

func Test_SetHighVoltage_legacyClampsDontChange(t *testing.T) {
	c := qt.New(t)
	s := NewStore(WithHighVoltageDontChangeClamp(true))

	s.SetHighVoltage(HighVoltageDontChange)
	c.Assert(HighVoltage(s.highVoltage.Load()), qt.Equals, HighVoltageOn)
}

func Test_SetDoublets_bitmask(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	s.SetDoublets([numChannels]bool{true, false, true, false, false, false, false, true})
	c.Assert(s.doubletFlag.Load(), qt.Equals, uint32(0b10000101))
}

func Test_SetDoublets_legacyAlwaysZero(t *testing.T) {
	c := qt.New(t)
	s := NewStore(WithLegacyDoubletMask(true))

	s.SetDoublets([numChannels]bool{true, true, true, true, true, true, true, true})
	c.Assert(s.doubletFlag.Load(), qt.Equals, uint32(0))
}

func Test_SetStimFrequency_derivesPeriod(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	s.SetStimFrequency(20)
	c.Assert(s.GetFrequency(), qt.Equals, 20)
	c.Assert(s.GetStimPeriodMS(), qt.Equals, 50)

	s.SetStimFrequency(1)
	c.Assert(s.GetStimPeriodMS(), qt.Equals, 254) // round(1000/1)=1000, clamped

	s.SetStimFrequency(0) // out of [1,100], clamps to 1
	c.Assert(s.GetFrequency(), qt.Equals, 1)
}

func Test_SetPhaseWidths_truncatesAndClamps(t *testing.T) {
	c := qt.New(t)
	s := NewStore()

	s.SetPhaseWidths([numChannels]int{1005, -5, 15, 0, 0, 0, 0, 0})
	got := s.GetPhaseWidths()
	c.Assert(got[0], qt.Equals, 1000)
	c.Assert(got[1], qt.Equals, 0)
	c.Assert(got[2], qt.Equals, 10) // 15us truncates to one 10us unit
}
