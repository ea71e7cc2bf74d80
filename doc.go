// Package motimove8 is the control-plane library for the MOTIMOVE 8, an
// 8-channel functional electrical stimulation (FES) device.
//
// It turns a time-varying, high-level intent ("these channels are on at
// these amplitudes, with smooth on/off transitions") into the bit-exact
// control frames the stimulator expects on the wire. The package owns four
// things: a thread-safe parameter store, a per-channel ramp state machine,
// a fixed hardware-compensation table, and the frame builder that combines
// them into pulse-by-pulse and train-control frames.
//
// The transport that carries frames to the device, the GUI or scheduler
// that decides which channels should be on, and any process/thread
// integration are all external collaborators. This package never opens a
// serial port, never blocks, and never returns an error from its real-time
// path: every setter and GetPulseFrame is a total function, by design,
// because it runs inside a real-time control loop.
//
// Callers must invoke (*FrameBuilder).GetPulseFrame exactly once per
// stimulation period; the ramp engine's time base is pulse count, not wall
// clock. See the package-level Store and FrameBuilder docs for the full
// contract.
package motimove8
