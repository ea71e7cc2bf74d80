package motimove8

// GetIntensity returns the global intensity percentage.
func (s *Store) GetIntensity() int {
	return int(s.intensityPct.Load())
}

// GetFrequency returns the normal-mode stimulation frequency in Hz.
func (s *Store) GetFrequency() int {
	return int(s.freqHz.Load())
}

// GetFrequencyBoost returns the BOOST-mode stimulation frequency in Hz.
func (s *Store) GetFrequencyBoost() int {
	return int(s.freqBoostHz.Load())
}

// GetStimPeriodMS returns the derived period, in milliseconds, for
// whichever of normal or BOOST mode is currently active. A frequency that
// has never been set (0 Hz) has no derived period; this returns 0 rather
// than dividing by zero, since GetPulseFrame must stay total.
func (s *Store) GetStimPeriodMS() int {
	if s.boostMode.Load() {
		if s.freqBoostHz.Load() == 0 {
			return 0
		}
		return int(s.periodBoostMS.Load())
	}
	if s.freqHz.Load() == 0 {
		return 0
	}
	return int(s.periodMS.Load())
}

// GetPhaseWidths returns the normal-mode pulse width, in microseconds, for
// every channel.
func (s *Store) GetPhaseWidths() [numChannels]int {
	var out [numChannels]int
	for i := range s.channels {
		out[i] = int(s.channels[i].phaseWidth10us.Load()) * 10
	}
	return out
}

// GetPhaseWidthsBoost is GetPhaseWidths for BOOST mode.
func (s *Store) GetPhaseWidthsBoost() [numChannels]int {
	var out [numChannels]int
	for i := range s.channels {
		out[i] = int(s.channels[i].phaseWidthBoost10.Load()) * 10
	}
	return out
}

// GetAmplitudesMax returns the per-channel amplitude ceiling in mA.
func (s *Store) GetAmplitudesMax() [numChannels]int {
	var out [numChannels]int
	for i := range s.channels {
		out[i] = int(s.channels[i].maxAmpMA.Load())
	}
	return out
}

// GetRampUpTime returns the per-channel ramp-up duration in milliseconds.
func (s *Store) GetRampUpTime() [numChannels]int {
	var out [numChannels]int
	for i := range s.channels {
		out[i] = int(s.channels[i].rampUpMS.Load())
	}
	return out
}

// GetRampDownTime returns the per-channel ramp-down duration in
// milliseconds.
func (s *Store) GetRampDownTime() [numChannels]int {
	var out [numChannels]int
	for i := range s.channels {
		out[i] = int(s.channels[i].rampDownMS.Load())
	}
	return out
}

// GetRampUpStart returns the ramp_pct a channel starts from on ramp-up.
func (s *Store) GetRampUpStart() int {
	return int(s.rampStartPct.Load())
}

// GetRampDownEnd returns the ramp_pct a channel settles to on ramp-down.
func (s *Store) GetRampDownEnd() int {
	return int(s.rampEndPct.Load())
}

// Snapshot returns a point-in-time, non-atomic copy of the entire store.
// It is for diagnostics and tests; GetPulseFrame does not use it, since it
// would need to take a private, consistent read across every atomic field
// the frame depends on.
func (s *Store) Snapshot() Params {
	var p Params
	for i := range s.channels {
		ch := &s.channels[i]
		p.Channels[i] = ChannelParams{
			Active:            ch.active.Load(),
			MaxAmpMA:          uint8(ch.maxAmpMA.Load()),
			PhaseWidthUS:      uint16(ch.phaseWidth10us.Load()) * 10,
			PhaseWidthBoostUS: uint16(ch.phaseWidthBoost10.Load()) * 10,
			Prescaler:         uint8(ch.prescaler.Load()),
			RampUpMS:          ch.rampUpMS.Load(),
			RampDownMS:        ch.rampDownMS.Load(),
			RampPct:           ch.rampPct(),
			RampFlag:          RampFlag(ch.rampFlag.Load()),
			RampCounter:       ch.rampCounter.Load(),
		}
	}
	p.FreqHz = uint8(s.freqHz.Load())
	p.PeriodMS = uint8(s.periodMS.Load())
	p.FreqBoostHz = uint8(s.freqBoostHz.Load())
	p.PeriodBoostMS = uint8(s.periodBoostMS.Load())
	p.IntensityPct = uint8(s.intensityPct.Load())
	p.PulseDelay = PulseDelayMode(s.pulseDelayMode.Load())
	p.BoostMode = s.boostMode.Load()
	p.HighVoltage = HighVoltage(s.highVoltage.Load())
	p.Sensor = Sensor(s.sensor.Load())
	p.DoubletFlag = uint8(s.doubletFlag.Load())
	p.DoubletISI = uint8(s.doubletISI.Load())
	p.RampEnabled = s.rampGlobalEnable.Load()
	p.RampStartPct = uint8(s.rampStartPct.Load())
	p.RampEndPct = uint8(s.rampEndPct.Load())
	return p
}
