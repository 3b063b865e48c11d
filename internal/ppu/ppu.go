// Package ppu is the minimal external PPU collaborator the bus talks to
// (spec.md sec 4.3 "PPU $2100-$213F: delegate to PPU", SPEC_FULL.md
// sec 4). Pixel composition, tile/sprite/CGRAM decode, and the full
// rendering pipeline are out of scope; this package owns only the
// register passthrough and the scanline/dot timing the bus's V-blank
// and H-blank queries need.
package ppu

const (
	dotsPerScanline    = 341
	scanlinesPerFrame  = 262
	vblankStartScanline = 225
	width              = 256
	height             = 224
)

// PPU tracks register state and scanline/dot position. Registers are
// stored as a flat passthrough array indexed by $2100-$213F offset;
// the core imposes no interpretation on their contents.
type PPU struct {
	regs [0x40]uint8

	scanline int
	dot      int

	framebuffer [width * height]uint8
}

// New returns a PPU positioned at the start of a frame.
func New() *PPU {
	return &PPU{}
}

// ReadRegister services a $2100-$213F read.
func (p *PPU) ReadRegister(offset uint16) uint8 {
	return p.regs[offset&0x3F]
}

// WriteRegister services a $2100-$213F write.
func (p *PPU) WriteRegister(offset uint16, v uint8) {
	p.regs[offset&0x3F] = v
}

// Tick advances the PPU by one CPU-equivalent dot, wrapping scanline
// and frame counters. It returns true on the dot where V-blank begins,
// the edge the scheduler uses to fire cpu.NMI() (spec.md sec 4.6).
func (p *PPU) Tick() (enteredVBlank bool) {
	p.dot++
	if p.dot >= dotsPerScanline {
		p.dot = 0
		p.scanline++
		if p.scanline == vblankStartScanline {
			enteredVBlank = true
		}
		if p.scanline >= scanlinesPerFrame {
			p.scanline = 0
		}
	}
	return enteredVBlank
}

// InVBlank reports whether the current scanline is within V-blank, for
// the bus's $4212 HVBJOY bit 7 query (spec.md sec 6.3).
func (p *PPU) InVBlank() bool {
	return p.scanline >= vblankStartScanline
}

// InHBlank reports whether the current dot is within the horizontal
// blanking period, for $4212 bit 6. The real boundary is around dot
// 274 of 341; exact cycle accuracy is out of scope (SPEC_FULL.md sec
// 1) so a fixed threshold is used.
func (p *PPU) InHBlank() bool {
	return p.dot >= 274
}

// Framebuffer returns the placeholder output buffer cmd/gosnesgui
// blits. Its contents are not defined by this core; only its shape
// (width x height, one byte per pixel) is.
func (p *PPU) Framebuffer() []uint8 {
	return p.framebuffer[:]
}

// Width and Height report the placeholder framebuffer's dimensions.
func Width() int  { return width }
func Height() int { return height }
