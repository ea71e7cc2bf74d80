package motimove8

// Option configures a Store at construction time. The zero value of Store
// is never valid; always build one through NewStore.
type Option func(*Store)

// WithLegacyAmplitudeCeiling reproduces the original firmware's
// setMaxAmplitudes ceiling check, which never actually fires: the check
// was written with a bitwise & where a logical and was meant, and Python's
// operator precedence and comparison chaining turn it into a tautology
// that is always false. With this option, per-channel amplitudes above
// the pulse-delay-mode ceiling (170 for STD, 100 for OFF) are accepted
// unclamped; only negative values are still zeroed. Off by default.
func WithLegacyAmplitudeCeiling(on bool) Option {
	return func(s *Store) { s.legacyAmplitudeCeiling = on }
}

// WithLegacyDoubletMask reproduces the original firmware's setDoublets,
// which folds the requested per-channel flags into the existing mask with
// a bitwise AND starting from zero, so the stored mask is always zero
// regardless of the requested flags. Off by default.
func WithLegacyDoubletMask(on bool) Option {
	return func(s *Store) { s.legacyDoubletMask = on }
}

// WithHighVoltageDontChangeClamp reproduces the original firmware's
// setHighVoltage, which clamps its input to {0,1} and so can never store
// HighVoltageDontChange even though the wire protocol and the rest of the
// firmware treat 2 as a legitimate "leave as-is" instruction. Off by
// default: SetHighVoltage accepts and stores HighVoltageDontChange.
func WithHighVoltageDontChangeClamp(on bool) Option {
	return func(s *Store) { s.highVoltageDontChangeClamp = on }
}
