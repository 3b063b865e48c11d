package apu

import "testing"

func TestMailboxRoundTrip(t *testing.T) {
	a := New()
	a.WriteMailbox(0, 0xAA)
	if got := a.PeekCPUToAPU(0); got != 0xAA {
		t.Fatalf("PeekCPUToAPU(0) = %#x, want 0xAA", got)
	}

	a.SetAPUToCPU(2, 0x55)
	if got := a.ReadMailbox(2); got != 0x55 {
		t.Fatalf("ReadMailbox(2) = %#x, want 0x55", got)
	}
}

func TestMailboxIndexWraps(t *testing.T) {
	a := New()
	a.WriteMailbox(4, 0x11) // idx 4 & 3 == 0
	if got := a.PeekCPUToAPU(0); got != 0x11 {
		t.Fatalf("wrapped index write = %#x, want 0x11", got)
	}
}
