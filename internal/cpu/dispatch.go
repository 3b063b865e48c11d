package cpu

// opcodeTable is the fixed dispatch table described in spec.md sec 9
// Design Notes: each slot pairs an addressing-mode descriptor with an
// operation descriptor, replacing a switch-ladder. A nil entry is an
// UnknownOpcode (spec.md sec 7). All 256 opcode bytes are defined on the
// 65C816 (the reserved WDM at $42 as a 2-byte no-op), so the table below
// is fully populated.
var opcodeTable [256]func(*CPU)

func init() {
	t := &opcodeTable

	// 0x — BRK, ORA, COP, TSB, ASL, PHP, ASL A, PHD
	t[0x00] = (*CPU).brk
	t[0x01] = func(c *CPU) { c.logic(logicORA, mDPIndirectX) }
	t[0x02] = (*CPU).cop
	t[0x03] = func(c *CPU) { c.logic(logicORA, mStackRelative) }
	t[0x04] = func(c *CPU) { c.tsb(mDP) }
	t[0x05] = func(c *CPU) { c.logic(logicORA, mDP) }
	t[0x06] = func(c *CPU) { c.asl(mDP) }
	t[0x07] = func(c *CPU) { c.logic(logicORA, mDPIndirectLong) }
	t[0x08] = (*CPU).php
	t[0x09] = func(c *CPU) { c.logicImm(logicORA) }
	t[0x0A] = (*CPU).aslA
	t[0x0B] = (*CPU).phd
	t[0x0C] = func(c *CPU) { c.tsb(mAbsolute) }
	t[0x0D] = func(c *CPU) { c.logic(logicORA, mAbsolute) }
	t[0x0E] = func(c *CPU) { c.asl(mAbsolute) }
	t[0x0F] = func(c *CPU) { c.logic(logicORA, mLong) }

	// 1x
	t[0x10] = (*CPU).bpl
	t[0x11] = func(c *CPU) { c.logic(logicORA, mDPIndirectY) }
	t[0x12] = func(c *CPU) { c.logic(logicORA, mDPIndirect) }
	t[0x13] = func(c *CPU) { c.logic(logicORA, mStackRelativeIndirectY) }
	t[0x14] = func(c *CPU) { c.trb(mDP) }
	t[0x15] = func(c *CPU) { c.logic(logicORA, mDPX) }
	t[0x16] = func(c *CPU) { c.asl(mDPX) }
	t[0x17] = func(c *CPU) { c.logic(logicORA, mDPIndirectLongY) }
	t[0x18] = (*CPU).clc
	t[0x19] = func(c *CPU) { c.logic(logicORA, mAbsoluteY) }
	t[0x1A] = (*CPU).ina
	t[0x1B] = (*CPU).tcs
	t[0x1C] = func(c *CPU) { c.trb(mAbsolute) }
	t[0x1D] = func(c *CPU) { c.logic(logicORA, mAbsoluteX) }
	t[0x1E] = func(c *CPU) { c.asl(mAbsoluteX) }
	t[0x1F] = func(c *CPU) { c.logic(logicORA, mLongX) }

	// 2x
	t[0x20] = (*CPU).jsr
	t[0x21] = func(c *CPU) { c.logic(logicAND, mDPIndirectX) }
	t[0x22] = (*CPU).jsl
	t[0x23] = func(c *CPU) { c.logic(logicAND, mStackRelative) }
	t[0x24] = func(c *CPU) { c.bit(mDP) }
	t[0x25] = func(c *CPU) { c.logic(logicAND, mDP) }
	t[0x26] = func(c *CPU) { c.rol(mDP) }
	t[0x27] = func(c *CPU) { c.logic(logicAND, mDPIndirectLong) }
	t[0x28] = (*CPU).plp
	t[0x29] = func(c *CPU) { c.logicImm(logicAND) }
	t[0x2A] = (*CPU).rolA
	t[0x2B] = (*CPU).pld
	t[0x2C] = func(c *CPU) { c.bit(mAbsolute) }
	t[0x2D] = func(c *CPU) { c.logic(logicAND, mAbsolute) }
	t[0x2E] = func(c *CPU) { c.rol(mAbsolute) }
	t[0x2F] = func(c *CPU) { c.logic(logicAND, mLong) }

	// 3x
	t[0x30] = (*CPU).bmi
	t[0x31] = func(c *CPU) { c.logic(logicAND, mDPIndirectY) }
	t[0x32] = func(c *CPU) { c.logic(logicAND, mDPIndirect) }
	t[0x33] = func(c *CPU) { c.logic(logicAND, mStackRelativeIndirectY) }
	t[0x34] = func(c *CPU) { c.bit(mDPX) }
	t[0x35] = func(c *CPU) { c.logic(logicAND, mDPX) }
	t[0x36] = func(c *CPU) { c.rol(mDPX) }
	t[0x37] = func(c *CPU) { c.logic(logicAND, mDPIndirectLongY) }
	t[0x38] = (*CPU).sec
	t[0x39] = func(c *CPU) { c.logic(logicAND, mAbsoluteY) }
	t[0x3A] = (*CPU).dea
	t[0x3B] = (*CPU).tsc
	t[0x3C] = func(c *CPU) { c.bit(mAbsoluteX) }
	t[0x3D] = func(c *CPU) { c.logic(logicAND, mAbsoluteX) }
	t[0x3E] = func(c *CPU) { c.rol(mAbsoluteX) }
	t[0x3F] = func(c *CPU) { c.logic(logicAND, mLongX) }

	// 4x
	t[0x40] = (*CPU).rti
	t[0x41] = func(c *CPU) { c.logic(logicEOR, mDPIndirectX) }
	t[0x42] = (*CPU).wdm
	t[0x43] = func(c *CPU) { c.logic(logicEOR, mStackRelative) }
	t[0x44] = (*CPU).mvp
	t[0x45] = func(c *CPU) { c.logic(logicEOR, mDP) }
	t[0x46] = func(c *CPU) { c.lsr(mDP) }
	t[0x47] = func(c *CPU) { c.logic(logicEOR, mDPIndirectLong) }
	t[0x48] = (*CPU).pha
	t[0x49] = func(c *CPU) { c.logicImm(logicEOR) }
	t[0x4A] = (*CPU).lsrA
	t[0x4B] = (*CPU).phk
	t[0x4C] = (*CPU).jmpAbs
	t[0x4D] = func(c *CPU) { c.logic(logicEOR, mAbsolute) }
	t[0x4E] = func(c *CPU) { c.lsr(mAbsolute) }
	t[0x4F] = func(c *CPU) { c.logic(logicEOR, mLong) }

	// 5x
	t[0x50] = (*CPU).bvc
	t[0x51] = func(c *CPU) { c.logic(logicEOR, mDPIndirectY) }
	t[0x52] = func(c *CPU) { c.logic(logicEOR, mDPIndirect) }
	t[0x53] = func(c *CPU) { c.logic(logicEOR, mStackRelativeIndirectY) }
	t[0x54] = (*CPU).mvn
	t[0x55] = func(c *CPU) { c.logic(logicEOR, mDPX) }
	t[0x56] = func(c *CPU) { c.lsr(mDPX) }
	t[0x57] = func(c *CPU) { c.logic(logicEOR, mDPIndirectLongY) }
	t[0x58] = (*CPU).cli
	t[0x59] = func(c *CPU) { c.logic(logicEOR, mAbsoluteY) }
	t[0x5A] = (*CPU).phy
	t[0x5B] = (*CPU).tcd
	t[0x5C] = (*CPU).jml
	t[0x5D] = func(c *CPU) { c.logic(logicEOR, mAbsoluteX) }
	t[0x5E] = func(c *CPU) { c.lsr(mAbsoluteX) }
	t[0x5F] = func(c *CPU) { c.logic(logicEOR, mLongX) }

	// 6x
	t[0x60] = (*CPU).rts
	t[0x61] = func(c *CPU) { c.adc(mDPIndirectX) }
	t[0x62] = (*CPU).per
	t[0x63] = func(c *CPU) { c.adc(mStackRelative) }
	t[0x64] = func(c *CPU) { c.stz(mDP) }
	t[0x65] = func(c *CPU) { c.adc(mDP) }
	t[0x66] = func(c *CPU) { c.ror(mDP) }
	t[0x67] = func(c *CPU) { c.adc(mDPIndirectLong) }
	t[0x68] = (*CPU).pla
	t[0x69] = (*CPU).adcImm
	t[0x6A] = (*CPU).rorA
	t[0x6B] = (*CPU).rtl
	t[0x6C] = (*CPU).jmpAbsIndirect
	t[0x6D] = func(c *CPU) { c.adc(mAbsolute) }
	t[0x6E] = func(c *CPU) { c.ror(mAbsolute) }
	t[0x6F] = func(c *CPU) { c.adc(mLong) }

	// 7x
	t[0x70] = (*CPU).bvs
	t[0x71] = func(c *CPU) { c.adc(mDPIndirectY) }
	t[0x72] = func(c *CPU) { c.adc(mDPIndirect) }
	t[0x73] = func(c *CPU) { c.adc(mStackRelativeIndirectY) }
	t[0x74] = func(c *CPU) { c.stz(mDPX) }
	t[0x75] = func(c *CPU) { c.adc(mDPX) }
	t[0x76] = func(c *CPU) { c.ror(mDPX) }
	t[0x77] = func(c *CPU) { c.adc(mDPIndirectLongY) }
	t[0x78] = (*CPU).sei
	t[0x79] = func(c *CPU) { c.adc(mAbsoluteY) }
	t[0x7A] = (*CPU).ply
	t[0x7B] = (*CPU).tdc
	t[0x7C] = (*CPU).jmpAbsIndirectX
	t[0x7D] = func(c *CPU) { c.adc(mAbsoluteX) }
	t[0x7E] = func(c *CPU) { c.ror(mAbsoluteX) }
	t[0x7F] = func(c *CPU) { c.adc(mLongX) }

	// 8x
	t[0x80] = (*CPU).bra
	t[0x81] = func(c *CPU) { c.sta(mDPIndirectX) }
	t[0x82] = (*CPU).brl
	t[0x83] = func(c *CPU) { c.sta(mStackRelative) }
	t[0x84] = func(c *CPU) { c.sty(mDP) }
	t[0x85] = func(c *CPU) { c.sta(mDP) }
	t[0x86] = func(c *CPU) { c.stx(mDP) }
	t[0x87] = func(c *CPU) { c.sta(mDPIndirectLong) }
	t[0x88] = (*CPU).dey
	t[0x89] = (*CPU).bitImm
	t[0x8A] = (*CPU).txa
	t[0x8B] = (*CPU).phb
	t[0x8C] = func(c *CPU) { c.sty(mAbsolute) }
	t[0x8D] = func(c *CPU) { c.sta(mAbsolute) }
	t[0x8E] = func(c *CPU) { c.stx(mAbsolute) }
	t[0x8F] = func(c *CPU) { c.sta(mLong) }

	// 9x
	t[0x90] = (*CPU).bcc
	t[0x91] = func(c *CPU) { c.sta(mDPIndirectY) }
	t[0x92] = func(c *CPU) { c.sta(mDPIndirect) }
	t[0x93] = func(c *CPU) { c.sta(mStackRelativeIndirectY) }
	t[0x94] = func(c *CPU) { c.sty(mDPX) }
	t[0x95] = func(c *CPU) { c.sta(mDPX) }
	t[0x96] = func(c *CPU) { c.stx(mDPY) }
	t[0x97] = func(c *CPU) { c.sta(mDPIndirectLongY) }
	t[0x98] = (*CPU).tya
	t[0x99] = func(c *CPU) { c.sta(mAbsoluteY) }
	t[0x9A] = (*CPU).txs
	t[0x9B] = (*CPU).txy
	t[0x9C] = func(c *CPU) { c.stz(mAbsolute) }
	t[0x9D] = func(c *CPU) { c.sta(mAbsoluteX) }
	t[0x9E] = func(c *CPU) { c.stz(mAbsoluteX) }
	t[0x9F] = func(c *CPU) { c.sta(mLongX) }

	// Ax
	t[0xA0] = (*CPU).ldyImm
	t[0xA1] = func(c *CPU) { c.lda(mDPIndirectX) }
	t[0xA2] = (*CPU).ldxImm
	t[0xA3] = func(c *CPU) { c.lda(mStackRelative) }
	t[0xA4] = func(c *CPU) { c.ldy(mDP) }
	t[0xA5] = func(c *CPU) { c.lda(mDP) }
	t[0xA6] = func(c *CPU) { c.ldx(mDP) }
	t[0xA7] = func(c *CPU) { c.lda(mDPIndirectLong) }
	t[0xA8] = (*CPU).tay
	t[0xA9] = (*CPU).ldaImm
	t[0xAA] = (*CPU).tax
	t[0xAB] = (*CPU).plb
	t[0xAC] = func(c *CPU) { c.ldy(mAbsolute) }
	t[0xAD] = func(c *CPU) { c.lda(mAbsolute) }
	t[0xAE] = func(c *CPU) { c.ldx(mAbsolute) }
	t[0xAF] = func(c *CPU) { c.lda(mLong) }

	// Bx
	t[0xB0] = (*CPU).bcs
	t[0xB1] = func(c *CPU) { c.lda(mDPIndirectY) }
	t[0xB2] = func(c *CPU) { c.lda(mDPIndirect) }
	t[0xB3] = func(c *CPU) { c.lda(mStackRelativeIndirectY) }
	t[0xB4] = func(c *CPU) { c.ldy(mDPX) }
	t[0xB5] = func(c *CPU) { c.lda(mDPX) }
	t[0xB6] = func(c *CPU) { c.ldx(mDPY) }
	t[0xB7] = func(c *CPU) { c.lda(mDPIndirectLongY) }
	t[0xB8] = (*CPU).clv
	t[0xB9] = func(c *CPU) { c.lda(mAbsoluteY) }
	t[0xBA] = (*CPU).tsx
	t[0xBB] = (*CPU).tyx
	t[0xBC] = func(c *CPU) { c.ldy(mAbsoluteX) }
	t[0xBD] = func(c *CPU) { c.lda(mAbsoluteX) }
	t[0xBE] = func(c *CPU) { c.ldx(mAbsoluteY) }
	t[0xBF] = func(c *CPU) { c.lda(mLongX) }

	// Cx
	t[0xC0] = (*CPU).cpyImm
	t[0xC1] = func(c *CPU) { c.cmp(mDPIndirectX) }
	t[0xC2] = (*CPU).rep
	t[0xC3] = func(c *CPU) { c.cmp(mStackRelative) }
	t[0xC4] = func(c *CPU) { c.cpy(mDP) }
	t[0xC5] = func(c *CPU) { c.cmp(mDP) }
	t[0xC6] = func(c *CPU) { c.dec(mDP) }
	t[0xC7] = func(c *CPU) { c.cmp(mDPIndirectLong) }
	t[0xC8] = (*CPU).iny
	t[0xC9] = (*CPU).cmpImm
	t[0xCA] = (*CPU).dex
	t[0xCB] = (*CPU).wai
	t[0xCC] = func(c *CPU) { c.cpy(mAbsolute) }
	t[0xCD] = func(c *CPU) { c.cmp(mAbsolute) }
	t[0xCE] = func(c *CPU) { c.dec(mAbsolute) }
	t[0xCF] = func(c *CPU) { c.cmp(mLong) }

	// Dx
	t[0xD0] = (*CPU).bne
	t[0xD1] = func(c *CPU) { c.cmp(mDPIndirectY) }
	t[0xD2] = func(c *CPU) { c.cmp(mDPIndirect) }
	t[0xD3] = func(c *CPU) { c.cmp(mStackRelativeIndirectY) }
	t[0xD4] = (*CPU).pei
	t[0xD5] = func(c *CPU) { c.cmp(mDPX) }
	t[0xD6] = func(c *CPU) { c.dec(mDPX) }
	t[0xD7] = func(c *CPU) { c.cmp(mDPIndirectLongY) }
	t[0xD8] = (*CPU).cld
	t[0xD9] = func(c *CPU) { c.cmp(mAbsoluteY) }
	t[0xDA] = (*CPU).phx
	t[0xDB] = (*CPU).stp
	t[0xDC] = (*CPU).jmlIndirect
	t[0xDD] = func(c *CPU) { c.cmp(mAbsoluteX) }
	t[0xDE] = func(c *CPU) { c.dec(mAbsoluteX) }
	t[0xDF] = func(c *CPU) { c.cmp(mLongX) }

	// Ex
	t[0xE0] = (*CPU).cpxImm
	t[0xE1] = func(c *CPU) { c.sbc(mDPIndirectX) }
	t[0xE2] = (*CPU).sep
	t[0xE3] = func(c *CPU) { c.sbc(mStackRelative) }
	t[0xE4] = func(c *CPU) { c.cpx(mDP) }
	t[0xE5] = func(c *CPU) { c.sbc(mDP) }
	t[0xE6] = func(c *CPU) { c.inc(mDP) }
	t[0xE7] = func(c *CPU) { c.sbc(mDPIndirectLong) }
	t[0xE8] = (*CPU).inx
	t[0xE9] = (*CPU).sbcImm
	t[0xEA] = (*CPU).nop
	t[0xEB] = (*CPU).xba
	t[0xEC] = func(c *CPU) { c.cpx(mAbsolute) }
	t[0xED] = func(c *CPU) { c.sbc(mAbsolute) }
	t[0xEE] = func(c *CPU) { c.inc(mAbsolute) }
	t[0xEF] = func(c *CPU) { c.sbc(mLong) }

	// Fx
	t[0xF0] = (*CPU).beq
	t[0xF1] = func(c *CPU) { c.sbc(mDPIndirectY) }
	t[0xF2] = func(c *CPU) { c.sbc(mDPIndirect) }
	t[0xF3] = func(c *CPU) { c.sbc(mStackRelativeIndirectY) }
	t[0xF4] = (*CPU).pea
	t[0xF5] = func(c *CPU) { c.sbc(mDPX) }
	t[0xF6] = func(c *CPU) { c.inc(mDPX) }
	t[0xF7] = func(c *CPU) { c.sbc(mDPIndirectLongY) }
	t[0xF8] = (*CPU).sed
	t[0xF9] = func(c *CPU) { c.sbc(mAbsoluteY) }
	t[0xFA] = (*CPU).plx
	t[0xFB] = (*CPU).xce
	t[0xFC] = (*CPU).jsrAbsIndirectX
	t[0xFD] = func(c *CPU) { c.sbc(mAbsoluteX) }
	t[0xFE] = func(c *CPU) { c.inc(mAbsoluteX) }
	t[0xFF] = func(c *CPU) { c.sbc(mLongX) }
}
