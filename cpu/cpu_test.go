package cpu_test

import (
	"testing"

	"github.com/cjbaird/mos6502/cpu"
	"github.com/cjbaird/mos6502/memory"
)

func newTestCPU() (*cpu.CPU, *memory.Flat) {
	mem := memory.NewFlat()
	c := cpu.New(mem)
	return c, mem
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.GetPC() != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.GetPC())
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.GetCycles() != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.GetCycles())
	}
}

func expectA(t *testing.T, c *cpu.CPU, v byte) {
	t.Helper()
	if c.GetA() != v {
		t.Errorf("A incorrect. exp: $%02X, got: $%02X", v, c.GetA())
	}
}

func expectFlag(t *testing.T, c *cpu.CPU, name string, mask cpu.Status, want bool) {
	t.Helper()
	if got := c.IsFlagSet(mask); got != want {
		t.Errorf("flag %s incorrect. exp: %v, got: %v", name, want, got)
	}
}

func expectMem(t *testing.T, mem *memory.Flat, addr uint16, v byte) {
	t.Helper()
	if got := mem.Read(addr); got != v {
		t.Errorf("memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

// TestReset verifies the defined post-reset register state.
func TestReset(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0x80)

	c.SetA(0x11)
	c.SetX(0x22)
	c.SetCycles(999)

	c.Reset()

	expectA(t, c, 0)
	if c.GetX() != 0 || c.GetY() != 0 {
		t.Error("X and Y should be zero after reset")
	}
	if c.GetSP() != 0xfd {
		t.Errorf("SP incorrect. exp: $FD, got: $%02X", c.GetSP())
	}
	expectFlag(t, c, "Unused", cpu.Unused, true)
	expectCycles(t, c, 0)
	expectPC(t, c, 0x8000)
}

// TestLDAImmediateZero covers spec.md scenario 1.
func TestLDAImmediateZero(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0xa9)
	mem.Write(0x8001, 0x00)
	c.SetPC(0x8000)

	c.Tick()

	expectA(t, c, 0)
	expectFlag(t, c, "Zero", cpu.Zero, true)
	expectFlag(t, c, "Negative", cpu.Negative, false)
	expectPC(t, c, 0x8002)
	expectCycles(t, c, 2)
}

// TestLDAImmediateNegative covers spec.md scenario 2.
func TestLDAImmediateNegative(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0xa9)
	mem.Write(0x8001, 0x80)
	c.SetPC(0x8000)

	c.Tick()

	expectA(t, c, 0x80)
	expectFlag(t, c, "Zero", cpu.Zero, false)
	expectFlag(t, c, "Negative", cpu.Negative, true)
	expectPC(t, c, 0x8002)
	expectCycles(t, c, 2)
}

// TestADCOverflow covers spec.md scenario 3: 0x7F + 0x01 overflows into
// a negative result without a carry out.
func TestADCOverflow(t *testing.T) {
	c, mem := newTestCPU()
	c.SetA(0x7f)
	c.ClearFlags(cpu.Carry)
	mem.Write(0x8000, 0x69)
	mem.Write(0x8001, 0x01)
	c.SetPC(0x8000)

	c.Tick()

	expectA(t, c, 0x80)
	expectFlag(t, c, "Carry", cpu.Carry, false)
	expectFlag(t, c, "Zero", cpu.Zero, false)
	expectFlag(t, c, "Overflow", cpu.Overflow, true)
	expectFlag(t, c, "Negative", cpu.Negative, true)
	expectCycles(t, c, 2)
}

// TestSBCBorrow covers spec.md scenario 4: 0x01 - 0x02 with no incoming
// borrow produces a borrow out and wraps to 0xFF.
func TestSBCBorrow(t *testing.T) {
	c, mem := newTestCPU()
	c.SetA(0x01)
	c.SetFlags(cpu.Carry)
	mem.Write(0x8000, 0xe9)
	mem.Write(0x8001, 0x02)
	c.SetPC(0x8000)

	c.Tick()

	expectA(t, c, 0xff)
	expectFlag(t, c, "Carry", cpu.Carry, false)
	expectFlag(t, c, "Zero", cpu.Zero, false)
	expectFlag(t, c, "Negative", cpu.Negative, true)
	expectFlag(t, c, "Overflow", cpu.Overflow, false)
	expectCycles(t, c, 2)
}

// TestLDAAbsoluteXPageCross covers spec.md scenario 5.
func TestLDAAbsoluteXPageCross(t *testing.T) {
	c, mem := newTestCPU()
	c.SetX(0x20)
	mem.Write(0x8000, 0xbd)
	mem.Write(0x8001, 0xf0)
	mem.Write(0x8002, 0x20)
	mem.Write(0x2110, 0x42)
	c.SetPC(0x8000)

	c.Tick()

	expectA(t, c, 0x42)
	expectPC(t, c, 0x8003)
	expectCycles(t, c, 5)
}

// TestSTAAbsoluteXNeverPenalizes covers spec.md scenario 6.
func TestSTAAbsoluteXNeverPenalizes(t *testing.T) {
	c, mem := newTestCPU()
	c.SetX(0x20)
	c.SetA(0x77)
	mem.Write(0x8000, 0x9d)
	mem.Write(0x8001, 0xf0)
	mem.Write(0x8002, 0x20)
	c.SetPC(0x8000)

	c.Tick()

	expectMem(t, mem, 0x2110, 0x77)
	expectCycles(t, c, 5)
}

// TestUnimplementedOpcode exercises the Logger diagnostic path: an
// opcode with no decode entry must not execute or charge cycles beyond
// the fetch, and PC must still have advanced past the opcode byte.
func TestUnimplementedOpcode(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0x02) // not in the in-scope set
	c.SetPC(0x8000)

	var got struct {
		opcode byte
		pc     uint16
		called bool
	}
	c.AttachLogger(loggerFunc(func(opcode byte, pc uint16) {
		got.opcode, got.pc, got.called = opcode, pc, true
	}))

	c.Tick()

	if !got.called {
		t.Fatal("expected UnimplementedOpcode to be called")
	}
	if got.opcode != 0x02 || got.pc != 0x8000 {
		t.Errorf("logger received opcode=$%02X pc=$%04X, want opcode=$02 pc=$8000", got.opcode, got.pc)
	}
	expectPC(t, c, 0x8001)
	expectCycles(t, c, 0)
}

type loggerFunc func(opcode byte, pc uint16)

func (f loggerFunc) UnimplementedOpcode(opcode byte, pc uint16) { f(opcode, pc) }

// TestADCSBCDualIdentity checks the law that SBC(v) with Carry=1 behaves
// like ADC(^v) with Carry=1.
func TestADCSBCDualIdentity(t *testing.T) {
	c1, mem1 := newTestCPU()
	c1.SetA(0x50)
	c1.SetFlags(cpu.Carry)
	mem1.Write(0x8000, 0xe9) // SBC #$30
	mem1.Write(0x8001, 0x30)
	c1.SetPC(0x8000)
	c1.Tick()

	c2, mem2 := newTestCPU()
	c2.SetA(0x50)
	c2.SetFlags(cpu.Carry)
	mem2.Write(0x8000, 0x69) // ADC #$CF (bitwise complement of 0x30)
	mem2.Write(0x8001, 0xcf)
	c2.SetPC(0x8000)
	c2.Tick()

	if c1.GetA() != c2.GetA() {
		t.Errorf("A diverged: SBC=$%02X ADC(complement)=$%02X", c1.GetA(), c2.GetA())
	}
	if c1.GetP() != c2.GetP() {
		t.Errorf("flags diverged: SBC=$%02X ADC(complement)=$%02X", byte(c1.GetP()), byte(c2.GetP()))
	}
}

// TestIncDecRoundTrip checks that INC then DEC at the same address
// restores the original byte, with flags reflecting that byte.
func TestIncDecRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x10, 0x7f)
	mem.Write(0x8000, 0xe6) // INC $10
	mem.Write(0x8001, 0x10)
	mem.Write(0x8002, 0xc6) // DEC $10
	mem.Write(0x8003, 0x10)
	c.SetPC(0x8000)

	c.Tick()
	c.Tick()

	expectMem(t, mem, 0x10, 0x7f)
	expectFlag(t, c, "Zero", cpu.Zero, false)
	expectFlag(t, c, "Negative", cpu.Negative, false)
}

// TestLoadStoreRoundTrip checks that STA addr; LDA addr leaves A
// unchanged.
func TestLoadStoreRoundTrip(t *testing.T) {
	c, mem := newTestCPU()
	c.SetA(0x93)
	mem.Write(0x8000, 0x85) // STA $20
	mem.Write(0x8001, 0x20)
	mem.Write(0x8002, 0xa5) // LDA $20
	mem.Write(0x8003, 0x20)
	c.SetPC(0x8000)

	c.Tick()
	c.SetA(0)
	c.Tick()

	expectA(t, c, 0x93)
	expectFlag(t, c, "Negative", cpu.Negative, true)
}

// TestDebuggerBreakpoint verifies the ambient breakpoint hook fires
// after PC reaches the target address and never earlier.
func TestDebuggerBreakpoint(t *testing.T) {
	c, mem := newTestCPU()
	mem.Write(0x8000, 0xe8) // INX
	mem.Write(0x8001, 0xe8) // INX
	c.SetPC(0x8000)

	var hits []uint16
	d := cpu.NewDebugger(breakpointHandlerFunc{
		onBreak: func(cc *cpu.CPU, b *cpu.Breakpoint) {
			hits = append(hits, b.Address)
		},
	})
	d.AddBreakpoint(0x8001)
	c.AttachDebugger(d)

	c.Tick()
	c.Tick()

	if len(hits) != 1 || hits[0] != 0x8001 {
		t.Errorf("expected exactly one hit at $8001, got %v", hits)
	}
}

type breakpointHandlerFunc struct {
	onBreak     func(*cpu.CPU, *cpu.Breakpoint)
	onDataBreak func(*cpu.CPU, *cpu.DataBreakpoint)
}

func (h breakpointHandlerFunc) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	if h.onBreak != nil {
		h.onBreak(c, b)
	}
}

func (h breakpointHandlerFunc) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	if h.onDataBreak != nil {
		h.onDataBreak(c, b)
	}
}
