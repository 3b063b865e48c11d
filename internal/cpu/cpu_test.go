package cpu

import "testing"

// Scenario 1 (spec.md sec 8): reset with vector=$8000 and first byte
// 0xEA (NOP).
func TestResetAndNOP(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0xEA})
	c := newResetCPU(bus, 0x8000)

	if c.PC != 0x8000 || !c.E || !c.widthM() || !c.widthX() || c.PBR != 0x00 {
		t.Fatalf("reset state wrong: PC=%#x E=%v M=%v X=%v PBR=%#x", c.PC, c.E, c.widthM(), c.widthX(), c.PBR)
	}
	if c.S != 0x01FF {
		t.Fatalf("S after reset = %#x, want 0x01FF", c.S)
	}

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.PC != 0x8001 {
		t.Fatalf("PC after NOP = %#x, want 0x8001", c.PC)
	}
}

// Scenario 2: XCE, REP #$20, LDA #$1234, STA $FFFF with DBR=$40 preset;
// verifies a 16-bit absolute store at $FFFF wraps within DBR (no carry
// into the next bank).
func TestXCEWideStoreAtBankBoundary(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0xFB, 0xC2, 0x20, 0xA9, 0x34, 0x12, 0x8D, 0xFF, 0xFF})
	c := newResetCPU(bus, 0x8000)
	c.DBR = 0x40

	for i := 0; i < 4; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	if c.E {
		t.Fatalf("E should be 0 after XCE with carry clear")
	}
	if got := bus.Read8(addr24(0x40, 0xFFFF)); got != 0x34 {
		t.Fatalf("$40:FFFF = %#x, want 0x34", got)
	}
	if got := bus.Read8(addr24(0x40, 0x0000)); got != 0x12 {
		t.Fatalf("$40:0000 = %#x, want 0x12", got)
	}
	if got := bus.Read8(addr24(0x41, 0x0000)); got != 0x00 {
		t.Fatalf("$41:0000 = %#x, want untouched 0x00 (strict semantics)", got)
	}
}

// Scenario 3: JSL $12:3456; callee PHK, PLB, LDA #$99, STA $1234, RTL.
func TestJSLCalleeAndRTL(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0x22, 0x56, 0x34, 0x12})
	bus.load(0x12, 0x3456, []byte{0x4B, 0xAB, 0xA9, 0x99, 0x8D, 0x34, 0x12, 0x6B})
	c := newResetCPU(bus, 0x8000)

	if err := c.Step(); err != nil { // JSL
		t.Fatalf("JSL: %v", err)
	}
	if c.PBR != 0x12 || c.PC != 0x3456 {
		t.Fatalf("after JSL PBR:PC = %02X:%04X, want 12:3456", c.PBR, c.PC)
	}

	for i := 0; i < 4; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("callee step %d: %v", i, err)
		}
	}
	if c.DBR != 0x12 {
		t.Fatalf("DBR after PLB = %#x, want 0x12", c.DBR)
	}
	if got := bus.Read8(addr24(0x12, 0x1234)); got != 0x99 {
		t.Fatalf("$12:1234 = %#x, want 0x99", got)
	}

	if err := c.Step(); err != nil { // RTL
		t.Fatalf("RTL: %v", err)
	}
	if c.PBR != 0x00 || c.PC != 0x8004 {
		t.Fatalf("after RTL PBR:PC = %02X:%04X, want 00:8004", c.PBR, c.PC)
	}
}

// Scenario 4: E=1, Z=0 C=0, A=$80; ADC #$80 -> result 0, C=1, Z=1, V=1, N=0.
func TestADCBinaryOverflowWrap(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0x69, 0x80})
	c := newResetCPU(bus, 0x8000)
	c.A = 0x80
	c.setFlag(flagC, false)

	if err := c.Step(); err != nil {
		t.Fatalf("ADC: %v", err)
	}
	if c.A != 0 {
		t.Fatalf("A = %#x, want 0", c.A)
	}
	if !c.flag(flagC) || !c.flag(flagZ) || !c.flag(flagV) || c.flag(flagN) {
		t.Fatalf("flags C=%v Z=%v V=%v N=%v, want C=1 Z=1 V=1 N=0",
			c.flag(flagC), c.flag(flagZ), c.flag(flagV), c.flag(flagN))
	}
}

// Scenario 5: E=1, D=1, CLC, A=$99; ADC #$01 -> result 0, C=1, Z=1 (BCD wrap).
func TestADCDecimalWrap(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0x18, 0x69, 0x01})
	c := newResetCPU(bus, 0x8000)
	c.setFlag(flagD, true)
	c.A = 0x99

	for i := 0; i < 2; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if c.A != 0 {
		t.Fatalf("A = %#x, want 0", c.A)
	}
	if !c.flag(flagC) || !c.flag(flagZ) {
		t.Fatalf("C=%v Z=%v, want both true", c.flag(flagC), c.flag(flagZ))
	}
}

// Scenario 6: E=1, S=$01FF; PEA $1234 -> $00:01FF=$12, $00:01FE=$34, S=$01FD.
func TestPEA(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0xF4, 0x34, 0x12})
	c := newResetCPU(bus, 0x8000)

	if err := c.Step(); err != nil {
		t.Fatalf("PEA: %v", err)
	}
	if got := bus.Read8(addr24(0, 0x01FF)); got != 0x12 {
		t.Fatalf("$00:01FF = %#x, want 0x12", got)
	}
	if got := bus.Read8(addr24(0, 0x01FE)); got != 0x34 {
		t.Fatalf("$00:01FE = %#x, want 0x34", got)
	}
	if c.S != 0x01FD {
		t.Fatalf("S = %#x, want 0x01FD", c.S)
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	c.A = 0x42
	c.pha()
	c.A = 0
	c.pla()
	if c.A != 0x42 {
		t.Fatalf("A after PHA/PLA round trip = %#x, want 0x42", c.A)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	c.P = 0x55
	c.php()
	c.P = 0
	c.plp()
	if c.P != 0x55 {
		t.Fatalf("P after PHP/PLP round trip = %#x, want 0x55", c.P)
	}
}

func TestPHDPLDRoundTrip(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	c.D = 0x1234
	c.phd()
	c.D = 0
	c.pld()
	if c.D != 0x1234 {
		t.Fatalf("D after PHD/PLD round trip = %#x, want 0x1234", c.D)
	}
}

func TestJSRRTSReturnsToNextInstruction(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0x20, 0x00, 0x90})
	bus.load(0x00, 0x9000, []byte{0x60})
	c := newResetCPU(bus, 0x8000)

	if err := c.Step(); err != nil { // JSR
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0x9000 {
		t.Fatalf("PC after JSR = %#x, want 0x9000", c.PC)
	}
	if err := c.Step(); err != nil { // RTS
		t.Fatalf("RTS: %v", err)
	}
	if c.PC != 0x8003 {
		t.Fatalf("PC after RTS = %#x, want 0x8003 (instruction after JSR)", c.PC)
	}
}

func TestStackPageInvariantInEmulationMode(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	for i := 0; i < 4; i++ {
		c.push16(uint16(i))
	}
	if c.S&0xFF00 != 0x0100 {
		t.Fatalf("S high byte = %#x, want 0x01 after repeated pushes in E-mode", c.S>>8)
	}
}

func TestLongAddressingXIndexBankCarry(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	c.X = 0x10
	ea := c.eaLongX(0x01, 0xFFF8)
	bank, off := splitAddr(ea)
	if bank != 0x02 || off != 0x0008 {
		t.Fatalf("long,X carry = %02X:%04X, want 02:0008", bank, off)
	}
}

func TestNativeBRKPushesPBRAndRTIRestoresIt(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0xFB, 0xC2, 0x30}) // XCE, REP #$30
	bus.load(0x00, 0xABCD, []byte{0x40})             // RTI at BRK native vector target
	bus.Write8(addr24(0, vecNativeBRK), 0xCD)
	bus.Write8(addr24(0, vecNativeBRK+1), 0xAB)
	c := newResetCPU(bus, 0x8000)

	for i := 0; i < 2; i++ {
		if err := c.Step(); err != nil {
			t.Fatalf("prelude step %d: %v", i, err)
		}
	}
	c.PBR = 0x05 // a non-zero bank BRK must not disturb (spec.md sec 4.2)

	entry := opcodeTable[0x00]
	entry(c) // BRK

	if c.PBR != 0x05 {
		t.Fatalf("native BRK must not alter PBR, got %#x, want 0x05", c.PBR)
	}

	c.rti()
	if c.PBR != 0x05 {
		t.Fatalf("RTI pulled back PBR = %#x, want the 0x05 pushed at entry", c.PBR)
	}
	if c.PC != 0x8004 {
		t.Fatalf("PC after RTI = %#x, want return to instruction after BRK's signature byte", c.PC)
	}
}

func TestWAIDoesNotAdvancePCUntilInterrupt(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0xCB}) // WAI
	c := newResetCPU(bus, 0x8000)

	if err := c.Step(); err != nil {
		t.Fatalf("WAI: %v", err)
	}
	if c.state != Waiting {
		t.Fatalf("state after WAI = %v, want Waiting", c.state)
	}
	pc := c.PC
	if err := c.Step(); err != nil {
		t.Fatalf("step while waiting: %v", err)
	}
	if c.PC != pc {
		t.Fatalf("PC advanced while Waiting: %#x -> %#x", pc, c.PC)
	}

	c.NMI()
	if c.state != Running {
		t.Fatalf("NMI should cancel WAI")
	}
}

func TestSTPIgnoresNMIAndIRQ(t *testing.T) {
	bus := newFlatBus()
	c := newResetCPU(bus, 0x8000)
	c.stp()
	if c.state != Stopped {
		t.Fatalf("state after STP = %v, want Stopped", c.state)
	}
	pc := c.PC
	c.NMI()
	c.IRQ()
	if c.state != Stopped {
		t.Fatalf("STP should ignore NMI/IRQ")
	}
	if c.PC != pc {
		t.Fatalf("PC changed while Stopped")
	}
}

func TestUnknownOpcodeRaisesFault(t *testing.T) {
	bus := newFlatBus()
	bus.load(0x00, 0x8000, []byte{0x02}) // COP is implemented, and so is
	// every other byte 0x00-0xFF (WDM at $42 included), so construct the
	// fault by clearing a table entry directly for this test.
	c := newResetCPU(bus, 0x8000)

	saved := opcodeTable[0x02]
	opcodeTable[0x02] = nil
	defer func() { opcodeTable[0x02] = saved }()

	err := c.Step()
	if err == nil {
		t.Fatalf("expected a Fault for an unimplemented opcode")
	}
	fault, ok := err.(*Fault)
	if !ok {
		t.Fatalf("error type = %T, want *Fault", err)
	}
	if fault.Opcode != 0x02 || fault.PC != 0x8000 {
		t.Fatalf("fault = %+v, want Opcode=0x02 PC=0x8000", fault)
	}
}
