// Package apu is the minimal external APU collaborator the bus talks
// to through the $2140-$2143 mailbox (spec.md sec 3.4, sec 4.3, sec
// 6.6). SPC700 synthesis, DSP channels, envelopes, and the boot-ROM
// handshake are explicitly out of scope (SPEC_FULL.md sec 4): this
// package stores what the CPU writes and serves whatever the (absent)
// audio side has placed for the CPU to read. Any handshake emulation
// belongs to a higher-level collaborator layered on top, per spec.md
// sec 9 "Mailbox shim".
package apu

// APU holds the four bidirectional mailbox bytes.
type APU struct {
	cpuToAPU [4]uint8
	apuToCPU [4]uint8
}

// New returns an APU with all mailbox bytes zeroed.
func New() *APU {
	return &APU{}
}

// WriteMailbox stores a byte the CPU sent at $2140+idx.
func (a *APU) WriteMailbox(idx int, v uint8) {
	a.cpuToAPU[idx&3] = v
}

// ReadMailbox returns the byte the APU side has made available for the
// CPU to read at $2140+idx.
func (a *APU) ReadMailbox(idx int) uint8 {
	return a.apuToCPU[idx&3]
}

// SetAPUToCPU lets a test or an external audio driver place a byte for
// the CPU to read; it is not reachable from the CPU side.
func (a *APU) SetAPUToCPU(idx int, v uint8) {
	a.apuToCPU[idx&3] = v
}

// PeekCPUToAPU lets an external audio driver inspect what the CPU most
// recently wrote; it is not reachable from the CPU side.
func (a *APU) PeekCPUToAPU(idx int) uint8 {
	return a.cpuToAPU[idx&3]
}
