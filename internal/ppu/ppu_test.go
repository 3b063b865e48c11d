package ppu

import "testing"

func TestRegisterPassthrough(t *testing.T) {
	p := New()
	p.WriteRegister(0x2105, 0x42)
	if got := p.ReadRegister(0x2105); got != 0x42 {
		t.Fatalf("register readback = %#x, want 0x42", got)
	}
}

func TestTickEntersVBlankAtScanline225(t *testing.T) {
	p := New()
	entered := false
	for i := 0; i < dotsPerScanline*vblankStartScanline; i++ {
		if p.Tick() {
			entered = true
		}
	}
	if !entered {
		t.Fatalf("expected Tick to report V-blank entry by scanline %d", vblankStartScanline)
	}
	if !p.InVBlank() {
		t.Fatalf("expected InVBlank() true at scanline %d", p.scanline)
	}
}

func TestFrameWraps(t *testing.T) {
	p := New()
	for i := 0; i < dotsPerScanline*scanlinesPerFrame; i++ {
		p.Tick()
	}
	if p.scanline != 0 {
		t.Fatalf("scanline after full frame = %d, want 0", p.scanline)
	}
}
