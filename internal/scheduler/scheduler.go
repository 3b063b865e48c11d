// Package scheduler is the external driver spec.md sec 4.6 describes:
// "Consumer loops calling cpu.step_instruction(). At frame/scanline
// boundaries it calls bus.pulse_nmi() when the PPU enters V-blank; then
// (if the CPU NMI is enabled via $4200 bit 7) it calls cpu.nmi()." The
// CPU never polls the bus for interrupts; every interrupt is an
// explicit call from here.
package scheduler

import "gosnes/internal/cpu"

// CPU is the subset of *cpu.CPU the scheduler drives.
type CPU interface {
	Step() error
	NMI()
	IRQ()
}

// Bus is the subset of *bus.Bus the scheduler needs to pace NMI
// delivery against PPU timing.
type Bus interface {
	PulseNMI()
	NMIEnabled() bool
}

// PPU is the subset of *ppu.PPU the scheduler ticks once per CPU step
// to learn when V-blank begins.
type PPU interface {
	Tick() (enteredVBlank bool)
}

// Scheduler ties a CPU, bus, and PPU together into the single-threaded
// cooperative loop spec.md sec 5 describes: instructions execute
// sequentially, and NMI/IRQ are delivered only between instructions,
// never mid-instruction.
type Scheduler struct {
	CPU CPU
	Bus Bus
	PPU PPU

	// IRQLine lets a caller model a level-triggered IRQ source (e.g. a
	// timer); when true, IRQ is dispatched after every step the same
	// way NMI is gated by $4200 bit 7. The core's scheduler contract
	// only requires the hook exist, not any concrete IRQ source.
	IRQLine func() bool
}

// New wires a Scheduler around concrete components.
func New(c CPU, b Bus, p PPU) *Scheduler {
	return &Scheduler{CPU: c, Bus: b, PPU: p}
}

// Step runs exactly one CPU instruction, then advances the PPU by one
// dot and dispatches NMI/IRQ at the boundaries spec.md sec 4.6 and sec
// 5 define. It returns any *cpu.Fault the CPU step raised.
func (s *Scheduler) Step() error {
	if err := s.CPU.Step(); err != nil {
		return err
	}

	if s.PPU.Tick() {
		// PulseNMI sets the RDNMI latch unconditionally; only
		// actual delivery is gated on $4200 bit 7 (spec.md sec 4.6).
		s.Bus.PulseNMI()
		if s.Bus.NMIEnabled() {
			s.CPU.NMI()
		}
	}

	if s.IRQLine != nil && s.IRQLine() {
		s.CPU.IRQ()
	}

	return nil
}

// RunUntilFault steps the scheduler until the CPU reaches Stopped
// (STP) or a *cpu.Fault is raised, whichever comes first.
func (s *Scheduler) RunUntilFault(maxSteps int, state func() cpu.Runstate) error {
	for i := 0; i < maxSteps; i++ {
		if state != nil && state() == cpu.Stopped {
			return nil
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}
