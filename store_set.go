package motimove8

// SetActiveChannels sets the on/off state of all eight channels at once.
func (s *Store) SetActiveChannels(active [numChannels]bool) {
	for i := range s.channels {
		s.channels[i].active.Store(active[i])
	}
}

// SetPhaseWidths sets the normal-mode pulse width, in microseconds, for
// each channel. Values are clamped to [0, 1000] and stored in units of
// 10 µs, truncating (not rounding) like the original firmware's
// int(PhW/10).
func (s *Store) SetPhaseWidths(us [numChannels]int) {
	for i := range s.channels {
		v := constrain(us[i], 0, maxPhaseWidthUS)
		s.channels[i].phaseWidth10us.Store(uint32(v / 10))
	}
}

// SetPhaseWidthsBoost is SetPhaseWidths for BOOST mode.
func (s *Store) SetPhaseWidthsBoost(us [numChannels]int) {
	for i := range s.channels {
		v := constrain(us[i], 0, maxPhaseWidthUS)
		s.channels[i].phaseWidthBoost10.Store(uint32(v / 10))
	}
}

// SetMaxAmplitudes sets the per-channel amplitude ceiling in mA. Negative
// values are always zeroed. Above zero, the ceiling is enforced according
// to the current pulse-delay mode (170 mA for STD, 100 mA for OFF) unless
// the store was built with WithLegacyAmplitudeCeiling, in which case the
// ceiling check is a no-op.
func (s *Store) SetMaxAmplitudes(mA [numChannels]int) {
	delay := PulseDelayMode(s.pulseDelayMode.Load())
	for i := range s.channels {
		v := mA[i]
		if v < 0 {
			v = 0
		}
		if !s.legacyAmplitudeCeiling {
			if delay == PulseDelaySTD && v > maxAmplitudeSTD {
				v = maxAmplitudeSTD
			}
			if delay == PulseDelayOFF && v > maxAmplitudeOFF {
				v = maxAmplitudeOFF
			}
		}
		s.channels[i].maxAmpMA.Store(uint32(v))
	}
}

// SetIntensity sets the global intensity percentage, clamped to [0, 100].
func (s *Store) SetIntensity(pct int) {
	s.intensityPct.Store(uint32(constrain(pct, 0, 100)))
}

// SetHighVoltage sets the high-voltage rail instruction. With the store's
// default construction, HighVoltageDontChange is accepted and stored as-is.
// With WithHighVoltageDontChangeClamp, values above HighVoltageOn are
// clamped down to it, reproducing the original firmware's setHighVoltage.
func (s *Store) SetHighVoltage(v HighVoltage) {
	iv := int(v)
	if iv < 0 {
		iv = 0
	}
	if s.highVoltageDontChangeClamp {
		if iv > int(HighVoltageOn) {
			iv = int(HighVoltageOn)
		}
	} else if iv > int(HighVoltageDontChange) {
		iv = int(HighVoltageDontChange)
	}
	s.highVoltage.Store(uint32(iv))
}

// SetBoostMode toggles BOOST mode, which switches the frame builder to the
// BOOST frequency/period and phase-width fields.
func (s *Store) SetBoostMode(on bool) {
	s.boostMode.Store(on)
}

// SetStimFrequency sets the normal-mode stimulation frequency in Hz,
// clamped to [1, 100], and recomputes the derived period.
func (s *Store) SetStimFrequency(hz int) {
	hz = constrain(hz, minFreqHz, maxFreqHz)
	s.freqHz.Store(uint32(hz))
	s.periodMS.Store(uint32(periodFromFreq(hz)))
}

// SetStimFrequencyBoost is SetStimFrequency for BOOST mode.
func (s *Store) SetStimFrequencyBoost(hz int) {
	hz = constrain(hz, minFreqHz, maxFreqHz)
	s.freqBoostHz.Store(uint32(hz))
	s.periodBoostMS.Store(uint32(periodFromFreq(hz)))
}

// periodFromFreq mirrors the original firmware's getStimPeriode: period_ms
// = round(1000/freq), clamped to [10, 254].
func periodFromFreq(hz int) int {
	period := roundToInt(float32(1000) / float32(hz))
	return constrain(period, minPeriodMS, maxPeriodMS)
}

// SetDoublets sets the per-channel doublet-pulse flag. With the store's
// default construction this is a plain bitmask. With
// WithLegacyDoubletMask, the stored mask is always zero, reproducing the
// original firmware's setDoublets, which folds flags into the mask with a
// bitwise AND seeded from zero.
func (s *Store) SetDoublets(flags [numChannels]bool) {
	if s.legacyDoubletMask {
		s.doubletFlag.Store(0)
		return
	}
	var mask uint32
	for i, on := range flags {
		if on {
			mask |= 1 << uint(i)
		}
	}
	s.doubletFlag.Store(mask)
}

// SetDoubletISI sets the doublet inter-stimulus interval, in units of
// 100 µs. The byte is clamped to its wire domain only; the original
// firmware never validates it against the channels' period, so neither
// does this store.
func (s *Store) SetDoubletISI(v int) {
	s.doubletISI.Store(uint32(constrain(v, 0, 255)))
}

// SetRampUpTime sets, per channel, how long a ramp-up transition takes in
// milliseconds. Negative values are floored to zero; there is no upper
// bound.
func (s *Store) SetRampUpTime(ms [numChannels]int) {
	for i := range s.channels {
		v := ms[i]
		if v < 0 {
			v = 0
		}
		s.channels[i].rampUpMS.Store(uint32(v))
	}
}

// SetRampDownTime is SetRampUpTime for the ramp-down transition.
func (s *Store) SetRampDownTime(ms [numChannels]int) {
	for i := range s.channels {
		v := ms[i]
		if v < 0 {
			v = 0
		}
		s.channels[i].rampDownMS.Store(uint32(v))
	}
}

// SetRampUpStart sets the ramp_pct a channel starts from when a ramp-up
// transition begins, clamped to [0, 100].
func (s *Store) SetRampUpStart(pct int) {
	s.rampStartPct.Store(uint32(constrain(pct, 0, 100)))
}

// SetRampDownEnd sets the ramp_pct a channel settles to when a ramp-down
// transition completes, clamped to [0, 100].
func (s *Store) SetRampDownEnd(pct int) {
	s.rampEndPct.Store(uint32(constrain(pct, 0, 100)))
}

// SetRampingEnabled toggles the ramp engine globally. When disabled, the
// frame builder uses each channel's active flag directly instead of its
// ramp_pct.
func (s *Store) SetRampingEnabled(on bool) {
	s.rampGlobalEnable.Store(on)
}

// SetPulseDelayMode selects staggered (STD) or simultaneous (OFF) channel
// firing, which in turn changes the amplitude ceiling SetMaxAmplitudes
// enforces.
func (s *Store) SetPulseDelayMode(mode PulseDelayMode) {
	s.pulseDelayMode.Store(uint32(mode))
}

// SetSensor selects the analog sensor input reported in the pulse frame.
func (s *Store) SetSensor(sensor Sensor) {
	s.sensor.Store(uint32(sensor))
}

// SetRampCounterForTesting overrides a single channel's ramp pulse
// counter. The original firmware exposes an equivalent debug setter for
// channel 1 only (setRampCounter); this generalizes it to any channel so
// tests can seed a mid-ramp state without stepping GetPulseFrame from
// scratch. Not meant for production callers.
func (s *Store) SetRampCounterForTesting(ch int, counter uint32) {
	s.channels[ch].rampCounter.Store(counter)
}
