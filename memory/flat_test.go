package memory_test

import (
	"testing"

	"github.com/cjbaird/mos6502/memory"
)

func TestFlatReadWrite(t *testing.T) {
	m := memory.NewFlat()
	m.Write(0x1234, 0x42)
	if got := m.Read(0x1234); got != 0x42 {
		t.Errorf("got $%02X, want $42", got)
	}
}

func TestFlatLoad(t *testing.T) {
	m := memory.NewFlat()
	m.Load(0x10, []byte{1, 2, 3})
	if m.Read(0x10) != 1 || m.Read(0x11) != 2 || m.Read(0x12) != 3 {
		t.Fatal("Load did not place bytes at the expected addresses")
	}
}

func TestFlatReadWordPageWrap(t *testing.T) {
	m := memory.NewFlat()
	m.Write(0x12ff, 0x34)
	m.Write(0x1200, 0x12) // same page as 0x12FF, not 0x1300
	m.Write(0x1300, 0xff) // decoy

	if got := m.ReadWord(0x12ff); got != 0x1234 {
		t.Errorf("got $%04X, want $1234", got)
	}
}

func TestFlatReadWordNoWrap(t *testing.T) {
	m := memory.NewFlat()
	m.Write(0x1000, 0x34)
	m.Write(0x1001, 0x12)

	if got := m.ReadWord(0x1000); got != 0x1234 {
		t.Errorf("got $%04X, want $1234", got)
	}
}
