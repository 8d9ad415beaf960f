// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// Mode describes a memory addressing mode.
type Mode byte

// All addressing modes referenced by the in-scope instruction set.
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	REL             // Relative
)

// modeName mirrors the order of the Mode constants above; used by
// Mode.String for diagnostics.
var modeName = [...]string{
	IMM: "IMM", IMP: "IMP", ZPG: "ZPG", ZPX: "ZPX", ZPY: "ZPY",
	ABS: "ABS", ABX: "ABX", ABY: "ABY", IND: "IND", IDX: "IDX",
	IDY: "IDY", REL: "REL",
}

// String returns the short addressing-mode mnemonic suffix.
func (m Mode) String() string {
	if int(m) < len(modeName) {
		return modeName[m]
	}
	return "???"
}

// instfunc is the emulator implementation of one instruction, given the
// already-resolved effective address for its addressing mode.
type instfunc func(c *CPU, addr uint16)

// resolvefunc resolves the effective address for one addressing mode,
// advancing PC past any operand bytes it consumes and, for ABX/ABY/IDY,
// adding a page-cross cycle to c.Reg.Cycles if c.honorPageCross is set.
type resolvefunc func(c *CPU) uint16

// Instruction describes one (opcode, addressing mode) pair: its display
// name, resolver, semantic handler, and cycle accounting.
type Instruction struct {
	Name            string // all-caps mnemonic, e.g. "LDA"
	Mode            Mode   // addressing mode
	Opcode          byte   // opcode byte
	Length          byte   // total bytes consumed (opcode + operand)
	Cycles          byte   // base cycle cost (spec.md 4.5)
	HonorsPageCross bool   // false for indexed/indirect stores and always-7-cycle RMWs
	fn              instfunc
	resolve         resolvefunc
}

// Defined reports whether this table entry has been populated. Opcodes
// outside the in-scope set leave their entry at its zero value, which is
// not Defined; Tick treats that as an unimplemented opcode.
func (i *Instruction) Defined() bool {
	return i.fn != nil
}

// InstructionSet is the complete 256-entry opcode decode table.
type InstructionSet struct {
	instructions [256]Instruction
}

// Lookup returns the decode table entry for opcode. The returned pointer
// is always valid; callers must check Defined() before dispatching.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// entry is the literal table data for one (opcode, mode) pair, matching
// spec.md section 4.5 exactly: base cycle counts, lengths, and which
// entries honor the page-crossing penalty.
type entry struct {
	opcode          byte
	name            string
	mode            Mode
	length          byte
	cycles          byte
	honorsPageCross bool
	fn              instfunc
	resolve         resolvefunc
}

// data is the table of all 59 in-scope (opcode, mode) pairs.
var data = []entry{
	// LDA
	{0xa9, "LDA", IMM, 2, 2, true, (*CPU).lda, (*CPU).addrIMM},
	{0xa5, "LDA", ZPG, 2, 3, true, (*CPU).lda, (*CPU).addrZPG},
	{0xb5, "LDA", ZPX, 2, 4, true, (*CPU).lda, (*CPU).addrZPX},
	{0xad, "LDA", ABS, 3, 4, true, (*CPU).lda, (*CPU).addrABS},
	{0xbd, "LDA", ABX, 3, 4, true, (*CPU).lda, (*CPU).addrABX},
	{0xb9, "LDA", ABY, 3, 4, true, (*CPU).lda, (*CPU).addrABY},
	{0xa1, "LDA", IDX, 2, 6, true, (*CPU).lda, (*CPU).addrIDX},
	{0xb1, "LDA", IDY, 2, 5, true, (*CPU).lda, (*CPU).addrIDY},

	// LDX
	{0xa2, "LDX", IMM, 2, 2, true, (*CPU).ldx, (*CPU).addrIMM},
	{0xa6, "LDX", ZPG, 2, 3, true, (*CPU).ldx, (*CPU).addrZPG},
	{0xb6, "LDX", ZPY, 2, 4, true, (*CPU).ldx, (*CPU).addrZPY},
	{0xae, "LDX", ABS, 3, 4, true, (*CPU).ldx, (*CPU).addrABS},
	{0xbe, "LDX", ABY, 3, 4, true, (*CPU).ldx, (*CPU).addrABY},

	// LDY
	{0xa0, "LDY", IMM, 2, 2, true, (*CPU).ldy, (*CPU).addrIMM},
	{0xa4, "LDY", ZPG, 2, 3, true, (*CPU).ldy, (*CPU).addrZPG},
	{0xb4, "LDY", ZPX, 2, 4, true, (*CPU).ldy, (*CPU).addrZPX},
	{0xac, "LDY", ABS, 3, 4, true, (*CPU).ldy, (*CPU).addrABS},
	{0xbc, "LDY", ABX, 3, 4, true, (*CPU).ldy, (*CPU).addrABX},

	// STA — the indexed and indirect forms never honor the page-cross
	// penalty; the other forms cannot cross a page.
	{0x85, "STA", ZPG, 2, 3, true, (*CPU).sta, (*CPU).addrZPG},
	{0x95, "STA", ZPX, 2, 4, true, (*CPU).sta, (*CPU).addrZPX},
	{0x8d, "STA", ABS, 3, 4, true, (*CPU).sta, (*CPU).addrABS},
	{0x9d, "STA", ABX, 3, 5, false, (*CPU).sta, (*CPU).addrABX},
	{0x99, "STA", ABY, 3, 5, false, (*CPU).sta, (*CPU).addrABY},
	{0x81, "STA", IDX, 2, 6, false, (*CPU).sta, (*CPU).addrIDX},
	{0x91, "STA", IDY, 2, 6, false, (*CPU).sta, (*CPU).addrIDY},

	// STX
	{0x86, "STX", ZPG, 2, 3, true, (*CPU).stx, (*CPU).addrZPG},
	{0x96, "STX", ZPY, 2, 4, true, (*CPU).stx, (*CPU).addrZPY},
	{0x8e, "STX", ABS, 3, 4, true, (*CPU).stx, (*CPU).addrABS},

	// STY
	{0x84, "STY", ZPG, 2, 3, true, (*CPU).sty, (*CPU).addrZPG},
	{0x94, "STY", ZPX, 2, 4, true, (*CPU).sty, (*CPU).addrZPX},
	{0x8c, "STY", ABS, 3, 4, true, (*CPU).sty, (*CPU).addrABS},

	// ADC
	{0x69, "ADC", IMM, 2, 2, true, (*CPU).adc, (*CPU).addrIMM},
	{0x65, "ADC", ZPG, 2, 3, true, (*CPU).adc, (*CPU).addrZPG},
	{0x75, "ADC", ZPX, 2, 4, true, (*CPU).adc, (*CPU).addrZPX},
	{0x6d, "ADC", ABS, 3, 4, true, (*CPU).adc, (*CPU).addrABS},
	{0x7d, "ADC", ABX, 3, 4, true, (*CPU).adc, (*CPU).addrABX},
	{0x79, "ADC", ABY, 3, 4, true, (*CPU).adc, (*CPU).addrABY},
	{0x61, "ADC", IDX, 2, 6, true, (*CPU).adc, (*CPU).addrIDX},
	{0x71, "ADC", IDY, 2, 5, true, (*CPU).adc, (*CPU).addrIDY},

	// SBC
	{0xe9, "SBC", IMM, 2, 2, true, (*CPU).sbc, (*CPU).addrIMM},
	{0xe5, "SBC", ZPG, 2, 3, true, (*CPU).sbc, (*CPU).addrZPG},
	{0xf5, "SBC", ZPX, 2, 4, true, (*CPU).sbc, (*CPU).addrZPX},
	{0xed, "SBC", ABS, 3, 4, true, (*CPU).sbc, (*CPU).addrABS},
	{0xfd, "SBC", ABX, 3, 4, true, (*CPU).sbc, (*CPU).addrABX},
	{0xf9, "SBC", ABY, 3, 4, true, (*CPU).sbc, (*CPU).addrABY},
	{0xe1, "SBC", IDX, 2, 6, true, (*CPU).sbc, (*CPU).addrIDX},
	{0xf1, "SBC", IDY, 2, 5, true, (*CPU).sbc, (*CPU).addrIDY},

	// INC / DEC — Abs,X always pays the full 7 cycles.
	{0xe6, "INC", ZPG, 2, 5, true, (*CPU).inc, (*CPU).addrZPG},
	{0xf6, "INC", ZPX, 2, 6, true, (*CPU).inc, (*CPU).addrZPX},
	{0xee, "INC", ABS, 3, 6, true, (*CPU).inc, (*CPU).addrABS},
	{0xfe, "INC", ABX, 3, 7, false, (*CPU).inc, (*CPU).addrABX},

	{0xc6, "DEC", ZPG, 2, 5, true, (*CPU).dec, (*CPU).addrZPG},
	{0xd6, "DEC", ZPX, 2, 6, true, (*CPU).dec, (*CPU).addrZPX},
	{0xce, "DEC", ABS, 3, 6, true, (*CPU).dec, (*CPU).addrABS},
	{0xde, "DEC", ABX, 3, 7, false, (*CPU).dec, (*CPU).addrABX},

	// Register increment/decrement: implied, no page-cross behavior.
	{0xe8, "INX", IMP, 1, 2, true, (*CPU).inx, (*CPU).addrIMP},
	{0xc8, "INY", IMP, 1, 2, true, (*CPU).iny, (*CPU).addrIMP},
	{0xca, "DEX", IMP, 1, 2, true, (*CPU).dex, (*CPU).addrIMP},
	{0x88, "DEY", IMP, 1, 2, true, (*CPU).dey, (*CPU).addrIMP},
}

// GetInstructionSet builds the 256-entry decode table for the in-scope
// instruction set. Opcodes not named in data are left at their zero
// value: undefined, per spec.md section 4.5.
func GetInstructionSet() *InstructionSet {
	set := &InstructionSet{}
	for _, d := range data {
		inst := &set.instructions[d.opcode]
		inst.Name = d.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = d.length
		inst.Cycles = d.cycles
		inst.HonorsPageCross = d.honorsPageCross
		inst.fn = d.fn
		inst.resolve = d.resolve
	}
	return set
}
