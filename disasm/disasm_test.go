package disasm_test

import (
	"testing"

	"github.com/cjbaird/mos6502/disasm"
	"github.com/cjbaird/mos6502/memory"
)

func TestDisassembleImmediate(t *testing.T) {
	mem := memory.NewFlat()
	mem.Write(0x8000, 0xa9) // LDA #$42
	mem.Write(0x8001, 0x42)

	line, next := disasm.Disassemble(mem, 0x8000)
	if line != "LDA #$42" {
		t.Errorf("got %q, want %q", line, "LDA #$42")
	}
	if next != 0x8002 {
		t.Errorf("got next=$%04X, want $8002", next)
	}
}

func TestDisassembleAbsoluteX(t *testing.T) {
	mem := memory.NewFlat()
	mem.Write(0x8000, 0xbd) // LDA $20F0,X
	mem.Write(0x8001, 0xf0)
	mem.Write(0x8002, 0x20)

	line, next := disasm.Disassemble(mem, 0x8000)
	if line != "LDA $20F0,X" {
		t.Errorf("got %q, want %q", line, "LDA $20F0,X")
	}
	if next != 0x8003 {
		t.Errorf("got next=$%04X, want $8003", next)
	}
}

func TestDisassembleIndexedIndirect(t *testing.T) {
	mem := memory.NewFlat()
	mem.Write(0x8000, 0xa1) // LDA ($FE,X)
	mem.Write(0x8001, 0xfe)

	line, _ := disasm.Disassemble(mem, 0x8000)
	if line != "LDA ($FE,X)" {
		t.Errorf("got %q, want %q", line, "LDA ($FE,X)")
	}
}

func TestDisassembleUnimplementedOpcode(t *testing.T) {
	mem := memory.NewFlat()
	mem.Write(0x8000, 0x00) // BRK: out of scope

	line, next := disasm.Disassemble(mem, 0x8000)
	if line != "???" {
		t.Errorf("got %q, want %q", line, "???")
	}
	if next != 0x8001 {
		t.Errorf("got next=$%04X, want $8001", next)
	}
}
