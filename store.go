package motimove8

import "sync/atomic"

// channelAtomics holds one channel's configuration and ramp substate as
// individually-atomic scalars. No field depends on a lock: the store is
// shared between exactly one mutator (the caller setting parameters) and
// one reader/advancer (GetPulseFrame), per the concurrency model in
// spec.md §5 and grounded on the atomic-per-field style used throughout
// the pack's devicecode-go HAL workers (e.g. gpio_worker.go's atomic
// drop counters and alive flags).
type channelAtomics struct {
	active            atomic.Bool
	maxAmpMA          atomic.Uint32
	phaseWidth10us    atomic.Uint32 // units of 10 µs, 0..100
	phaseWidthBoost10 atomic.Uint32
	prescaler         atomic.Uint32
	rampUpMS          atomic.Uint32
	rampDownMS        atomic.Uint32

	rampPctBits    atomic.Uint32 // float32 bits
	rampFlag       atomic.Int32
	rampCounter    atomic.Uint32
	rampOffsetBits atomic.Uint32 // float32 bits
	rampFactorBits atomic.Uint32 // float32 bits
	oldState       atomic.Bool
}

func (c *channelAtomics) rampPct() float32      { return float32FromBits(c.rampPctBits.Load()) }
func (c *channelAtomics) setRampPct(v float32)  { c.rampPctBits.Store(float32Bits(v)) }
func (c *channelAtomics) rampOffset() float32   { return float32FromBits(c.rampOffsetBits.Load()) }
func (c *channelAtomics) setRampOffset(v float32) {
	c.rampOffsetBits.Store(float32Bits(v))
}
func (c *channelAtomics) rampFactor() float32 { return float32FromBits(c.rampFactorBits.Load()) }
func (c *channelAtomics) setRampFactor(v float32) {
	c.rampFactorBits.Store(float32Bits(v))
}

// Store is the thread-safe Parameter Store for all eight channels and the
// global stimulation knobs. Every setter clamps to its documented domain
// and never fails; see Option for the three compatibility switches that
// reproduce the original firmware's documented quirks.
type Store struct {
	channels [numChannels]channelAtomics

	freqHz        atomic.Uint32
	periodMS      atomic.Uint32
	freqBoostHz   atomic.Uint32
	periodBoostMS atomic.Uint32
	intensityPct  atomic.Uint32

	pulseDelayMode   atomic.Uint32
	boostMode        atomic.Bool
	highVoltage      atomic.Uint32
	sensor           atomic.Uint32
	doubletFlag      atomic.Uint32
	doubletISI       atomic.Uint32
	rampGlobalEnable atomic.Bool
	rampStartPct     atomic.Uint32
	rampEndPct       atomic.Uint32

	legacyAmplitudeCeiling     bool
	legacyDoubletMask          bool
	highVoltageDontChangeClamp bool
}

// NewStore builds a Parameter Store with every default from spec.md §6
// applied, following the teacher's NewDefaultStepper/NewStepper
// constructor-pair idiom (tmc5160/stepper.go): a zero-arg default plus
// Option overrides, rather than a config struct with zero-value defaults
// that would not match the device's actual power-on state.
func NewStore(opts ...Option) *Store {
	s := &Store{}

	for i := range s.channels {
		ch := &s.channels[i]
		ch.phaseWidth10us.Store(10) // 100us / 10
		ch.phaseWidthBoost10.Store(0)
		ch.maxAmpMA.Store(100)
		ch.prescaler.Store(1)
		ch.rampUpMS.Store(defaultRampUpMS[i])
		ch.rampDownMS.Store(defaultRampDownMS[i])
	}

	s.intensityPct.Store(10)
	s.periodMS.Store(10)
	s.periodBoostMS.Store(10)
	s.highVoltage.Store(uint32(HighVoltageOff))
	s.sensor.Store(uint32(SensorAI))
	s.rampGlobalEnable.Store(true)
	s.rampStartPct.Store(defaultRampStartPct)
	s.rampEndPct.Store(defaultRampEndPct)

	for _, opt := range opts {
		opt(s)
	}

	return s
}
