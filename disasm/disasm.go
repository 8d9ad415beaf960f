// Package disasm implements a disassembler over the mos6502 decode
// table, restricted to the in-scope instruction set: opcodes outside it
// render as "???".
package disasm

import (
	"fmt"

	"github.com/cjbaird/mos6502/cpu"
)

// modeFormat gives the operand format string for each addressing mode,
// indexed by cpu.Mode.
var modeFormat = [...]string{
	cpu.IMM: "#$%s",
	cpu.IMP: "%s",
	cpu.ZPG: "$%s",
	cpu.ZPX: "$%s,X",
	cpu.ZPY: "$%s,Y",
	cpu.ABS: "$%s",
	cpu.ABX: "$%s,X",
	cpu.ABY: "$%s,Y",
	cpu.IND: "($%s)",
	cpu.IDX: "($%s,X)",
	cpu.IDY: "($%s),Y",
	cpu.REL: "$%s",
}

var hex = "0123456789ABCDEF"

// hexString renders b as a big-endian hex string, e.g. []byte{0x01,0x02}
// (a little-endian operand, low byte first) becomes "0201".
func hexString(b []byte) string {
	buf := make([]byte, len(b)*2)
	j := len(buf) - 1
	for _, n := range b {
		buf[j] = hex[n&0xf]
		buf[j-1] = hex[n>>4]
		j -= 2
	}
	return string(buf)
}

// Disassemble decodes the instruction at addr on bus and returns its
// textual form along with the address of the next instruction. Opcodes
// outside the 59 in-scope entries render as "???" and are treated as
// one byte long.
func Disassemble(bus cpu.Bus, addr uint16) (line string, next uint16) {
	set := cpu.GetInstructionSet()
	opcode := bus.Read(addr)
	inst := set.Lookup(opcode)

	if !inst.Defined() {
		return "???", addr + 1
	}

	operand := make([]byte, inst.Length-1)
	for i := range operand {
		operand[i] = bus.Read(addr + 1 + uint16(i))
	}

	if inst.Mode == cpu.REL {
		// cpu's addrREL sums the signed offset against the address of the
		// operand byte itself (addr+1), not the address past the full
		// instruction; mirror that here so a disassembled branch target
		// matches what Tick would actually compute.
		offset := int8(operand[0])
		target := uint16(int32(addr) + 1 + int32(offset))
		operand = []byte{byte(target & 0xff), byte(target >> 8)}
	}

	format := "%s " + modeFormat[inst.Mode]
	line = fmt.Sprintf(format, inst.Name, hexString(operand))
	next = addr + uint16(inst.Length)
	return line, next
}
