// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu implements the instruction dispatch core of a MOS 6502
// (2A03 variant, decimal mode disabled) cycle-counting interpreter.
package cpu

// Reset vector address. Only the reset vector is read by this core; NMI
// and IRQ/BRK vectors belong to interrupt servicing, which is out of
// scope.
const vectorReset = 0xfffc

// Logger receives diagnostics the core has no other way to surface. A nil
// Logger is valid; diagnostics are simply dropped.
type Logger interface {
	// UnimplementedOpcode is called when Tick fetches an opcode with no
	// decode table entry. The instruction is not executed and cycles are
	// not charged beyond the fetch.
	UnimplementedOpcode(opcode byte, pc uint16)
}

// CPU represents a single 6502 CPU bound to a Bus.
type CPU struct {
	Reg     Registers // register file
	Mem     Bus       // borrowed memory bus
	InstSet *InstructionSet

	honorPageCross bool // transient per-tick, set from the decode entry

	debugger *Debugger
	logger   Logger
}

// New constructs a CPU bound to bus, using the standard 59-opcode decode
// table. The register file is set to its post-reset values with PC at 0;
// call Reset to load PC from the reset vector.
func New(bus Bus) *CPU {
	c := &CPU{
		Mem:     bus,
		InstSet: GetInstructionSet(),
	}
	c.Reg.Init()
	return c
}

// AttachDebugger attaches a debugger to the CPU. The debugger is consulted
// after Tick updates PC, and on every Write, but it never influences
// instruction execution.
func (c *CPU) AttachDebugger(d *Debugger) {
	c.debugger = d
}

// DetachDebugger detaches the currently attached debugger, if any.
func (c *CPU) DetachDebugger() {
	c.debugger = nil
}

// AttachLogger attaches a Logger that receives diagnostics.
func (c *CPU) AttachLogger(l Logger) {
	c.logger = l
}

// Read loads a single byte from the bus.
func (c *CPU) Read(addr uint16) byte {
	return c.Mem.Read(addr)
}

// Write stores a byte to the bus, notifying an attached debugger's data
// breakpoints.
func (c *CPU) Write(addr uint16, v byte) {
	c.Mem.Write(addr, v)
	if c.debugger != nil {
		c.debugger.onDataStore(c, addr, v)
	}
}

// SetFlags turns on every bit in mask.
func (c *CPU) SetFlags(mask Status) {
	c.Reg.Set(mask)
}

// ClearFlags turns off every bit in mask.
func (c *CPU) ClearFlags(mask Status) {
	c.Reg.Clear(mask)
}

// IsFlagSet reports whether every bit in mask is currently set.
func (c *CPU) IsFlagSet(mask Status) bool {
	return c.Reg.IsSet(mask)
}

// Register accessors. Setters are unchecked: 8-bit and 16-bit unsigned
// Go types make out-of-range values impossible, so there is nothing to
// validate. They exist to seed CPU state for tests and conformance runs.

func (c *CPU) GetA() byte          { return c.Reg.A }
func (c *CPU) SetA(v byte)         { c.Reg.A = v }
func (c *CPU) GetX() byte          { return c.Reg.X }
func (c *CPU) SetX(v byte)         { c.Reg.X = v }
func (c *CPU) GetY() byte          { return c.Reg.Y }
func (c *CPU) SetY(v byte)         { c.Reg.Y = v }
func (c *CPU) GetSP() byte         { return c.Reg.SP }
func (c *CPU) SetSP(v byte)        { c.Reg.SP = v }
func (c *CPU) GetP() Status        { return c.Reg.P }
func (c *CPU) SetP(v Status)       { c.Reg.P = v }
func (c *CPU) GetPC() uint16       { return c.Reg.PC }
func (c *CPU) SetPC(v uint16)      { c.Reg.PC = v }
func (c *CPU) GetCycles() uint64   { return c.Reg.Cycles }
func (c *CPU) SetCycles(v uint64)  { c.Reg.Cycles = v }

// Reset clears the register file to its defined post-reset values and
// loads PC from the reset vector at $FFFC/$FFFD, reading the high byte
// ($FFFD) first.
func (c *CPU) Reset() {
	c.Reg.Init()
	c.Reg.PC = uint16(c.Read(vectorReset+1))<<8 | uint16(c.Read(vectorReset))
}

// Tick executes exactly one instruction: fetch, decode, resolve address,
// execute, account cycles. An opcode with no decode table entry is
// reported to the attached Logger (if any) and otherwise ignored; PC has
// already advanced past the opcode byte, and no further cycles are
// charged.
func (c *CPU) Tick() {
	pc := c.Reg.PC
	opcode := c.Read(pc)
	c.Reg.PC++

	inst := c.InstSet.Lookup(opcode)
	if !inst.Defined() {
		if c.logger != nil {
			c.logger.UnimplementedOpcode(opcode, pc)
		}
		return
	}

	c.honorPageCross = inst.HonorsPageCross
	addr := inst.resolve(c)
	inst.fn(c, addr)
	c.Reg.Cycles += uint64(inst.Cycles)

	if c.debugger != nil {
		c.debugger.onUpdatePC(c, c.Reg.PC)
	}
}
