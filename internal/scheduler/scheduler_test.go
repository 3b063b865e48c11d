package scheduler

import (
	"testing"

	"gosnes/internal/cpu"
)

type fakeCPU struct {
	steps   int
	nmiHits int
	irqHits int
	state   cpu.Runstate
}

func (f *fakeCPU) Step() error { f.steps++; return nil }
func (f *fakeCPU) NMI()        { f.nmiHits++ }
func (f *fakeCPU) IRQ()        { f.irqHits++ }

type fakeBus struct {
	pulsed  bool
	enabled bool
}

func (f *fakeBus) PulseNMI()        { f.pulsed = true }
func (f *fakeBus) NMIEnabled() bool { return f.enabled }

type fakePPU struct {
	vblankOnStep int
	steps        int
}

func (f *fakePPU) Tick() bool {
	f.steps++
	return f.steps == f.vblankOnStep
}

func TestStepDeliversNMIOnVBlankWhenEnabled(t *testing.T) {
	c := &fakeCPU{}
	b := &fakeBus{enabled: true}
	p := &fakePPU{vblankOnStep: 1}
	s := New(c, b, p)

	if err := s.Step(); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}
	if !b.pulsed {
		t.Fatalf("expected PulseNMI to be called")
	}
	if c.nmiHits != 1 {
		t.Fatalf("expected NMI delivered once, got %d", c.nmiHits)
	}
}

func TestStepSkipsNMIWhenDisabled(t *testing.T) {
	c := &fakeCPU{}
	b := &fakeBus{enabled: false}
	p := &fakePPU{vblankOnStep: 1}
	s := New(c, b, p)

	s.Step()
	if !b.pulsed {
		t.Fatalf("pulse_nmi should still fire regardless of the enable gate")
	}
	if c.nmiHits != 0 {
		t.Fatalf("NMI should not be delivered when disabled, got %d hits", c.nmiHits)
	}
}

func TestIRQLineDispatchesIRQ(t *testing.T) {
	c := &fakeCPU{}
	b := &fakeBus{}
	p := &fakePPU{vblankOnStep: -1}
	s := New(c, b, p)
	s.IRQLine = func() bool { return true }

	s.Step()
	if c.irqHits != 1 {
		t.Fatalf("expected IRQ dispatched once, got %d", c.irqHits)
	}
}
