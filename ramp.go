package motimove8

// advanceRamp runs one pulse of the ramp state machine for channel ch and
// returns the ramp_pct it should use to scale that channel's amplitude
// this pulse. It is grounded on the original firmware's rampUpCH1..CH8 /
// rampDownCH1..CH5 functions, which are near-identical copies of the same
// algorithm parameterized only by which channel's fields they touch; here
// that parameter is explicit instead of duplicated eight times over.
//
// The channel's active flag is the caller's requested on/off state for
// this pulse. advanceRamp returns the ramp_pct to use and whether the
// channel should actually fire this pulse — which can be true even when
// the active flag is false, for the tail of a ramp-down.
func (s *Store) advanceRamp(ch int) (rampPct float32, fires bool) {
	c := &s.channels[ch]

	newState := false
	if active := c.active.Load(); active {
		newState = true
	}
	oldState := c.oldState.Load()
	flag := RampFlag(c.rampFlag.Load())

	if (!newState && !oldState && flag != RampDown) || (newState && oldState && flag != RampUp) || flag == RampNone {
		flag = RampNone
	}
	if (newState && !oldState) || flag == RampUp {
		flag = RampUp
	}
	if (!newState && oldState) || flag == RampDown {
		flag = RampDown
	}

	var pct float32
	fires = newState

	switch flag {
	case RampNone:
		if newState {
			pct = 100
		} else {
			pct = 0
		}
		c.rampCounter.Store(0)

	case RampUp:
		if newState && !oldState {
			c.rampCounter.Store(0)
		}
		pct, flag = s.rampUp(ch)
		fires = newState

	case RampDown:
		if !newState && oldState {
			c.rampCounter.Store(0)
		}
		pct, flag, fires = s.rampDown(ch)
	}

	c.rampFlag.Store(int32(flag))
	c.setRampPct(pct)
	c.oldState.Store(newState)

	return pct, fires
}

// rampUp implements spec.md's rampUp(ch): a linear ramp from ramp_start_pct
// (or the current ramp_pct, whichever is higher) up to 100 over n pulses,
// where n = freq_hz * rampup_time_ms / 1000.
func (s *Store) rampUp(ch int) (float32, RampFlag) {
	c := &s.channels[ch]

	n := s.rampPulseCount(c.rampUpMS.Load())
	startPct := float32(s.rampStartPct.Load())
	pct := c.rampPct()
	counter := c.rampCounter.Load()

	if n <= 0 {
		c.rampCounter.Store(0)
		return 100, RampNone
	}

	if counter == 0 {
		switch {
		case pct < startPct:
			c.setRampOffset(startPct)
			c.setRampFactor((100 - startPct) / n)
			c.rampCounter.Store(1)
			return startPct, RampUp
		case pct >= 100:
			c.rampCounter.Store(0)
			return 100, RampNone
		default:
			offset := float32(int(pct))
			c.setRampOffset(offset)
			c.setRampFactor((100 - offset) / n)
			c.rampCounter.Store(1)
			return pct, RampUp
		}
	}

	switch {
	case pct < startPct:
		c.rampCounter.Store(1)
		return startPct, RampUp
	case pct >= 100:
		c.rampCounter.Store(0)
		return 100, RampNone
	}

	next := c.rampFactor()*float32(counter) + c.rampOffset()
	c.rampCounter.Store(counter + 1)
	if next >= 100 {
		c.rampCounter.Store(0)
		return 100, RampNone
	}
	return next, RampUp
}

// rampDown implements spec.md's rampDown(ch): the symmetric ramp around
// ramp_end_pct. It also reports whether the channel must still fire this
// pulse, since the caller may have already deactivated it while the ramp
// tail is still playing out.
func (s *Store) rampDown(ch int) (pct float32, flag RampFlag, fires bool) {
	c := &s.channels[ch]

	n := s.rampPulseCount(c.rampDownMS.Load())
	endPct := float32(s.rampEndPct.Load())
	cur := c.rampPct()
	counter := c.rampCounter.Load()

	if n <= 0 {
		c.rampCounter.Store(0)
		return 0, RampNone, false
	}

	if counter == 0 {
		switch {
		case cur > 100:
			c.setRampOffset(100)
			c.setRampFactor((endPct - 100) / n)
			c.rampCounter.Store(1)
			return 100, RampDown, true
		case cur <= endPct:
			c.rampCounter.Store(0)
			return endPct, RampNone, true
		default:
			offset := float32(int(cur))
			c.setRampOffset(offset)
			c.setRampFactor((endPct - offset) / n)
			c.rampCounter.Store(1)
			return cur, RampDown, true
		}
	}

	next := c.rampFactor()*float32(counter) + c.rampOffset()
	c.rampCounter.Store(counter + 1)
	if next <= endPct {
		c.rampCounter.Store(0)
		return 0, RampNone, false
	}
	return next, RampDown, true
}

// rampPulseCount converts a ramp duration in milliseconds to the number of
// pulses it spans at the active frequency.
func (s *Store) rampPulseCount(durationMS uint32) float32 {
	freq := s.freqHz.Load()
	if s.boostMode.Load() {
		freq = s.freqBoostHz.Load()
	}
	return float32(freq) * float32(durationMS) / 1000
}
