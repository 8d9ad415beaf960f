// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The eleven addressing-mode resolvers. Each reads and advances PC past
// whatever operand bytes it consumes and returns the resolved effective
// address. ABX, ABY, and IDY additionally charge a page-cross cycle when
// c.honorPageCross is set and the effective address falls in a different
// page than the unindexed base address.

// addrIMP resolves the implied addressing mode. There is no operand; the
// returned address is unused by every in-scope implied-mode instruction.
func (c *CPU) addrIMP() uint16 {
	return 0
}

// addrIMM resolves immediate addressing: the operand byte itself is the
// value, so the "address" returned is simply where that byte lives.
func (c *CPU) addrIMM() uint16 {
	addr := c.Reg.PC
	c.Reg.PC++
	return addr
}

// addrZPG resolves zero-page addressing.
func (c *CPU) addrZPG() uint16 {
	b := c.Read(c.Reg.PC)
	c.Reg.PC++
	return uint16(b)
}

// addrZPX resolves zero-page,X addressing. The addition wraps within the
// zero page.
func (c *CPU) addrZPX() uint16 {
	b := c.Read(c.Reg.PC)
	c.Reg.PC++
	return uint16(b + c.Reg.X)
}

// addrZPY resolves zero-page,Y addressing. The addition wraps within the
// zero page.
func (c *CPU) addrZPY() uint16 {
	b := c.Read(c.Reg.PC)
	c.Reg.PC++
	return uint16(b + c.Reg.Y)
}

// addrABS resolves absolute addressing: a little-endian 16-bit operand.
func (c *CPU) addrABS() uint16 {
	lo := c.Read(c.Reg.PC)
	hi := c.Read(c.Reg.PC + 1)
	c.Reg.PC += 2
	return uint16(hi)<<8 | uint16(lo)
}

// addrABX resolves absolute,X addressing, charging the page-cross penalty
// when honored.
func (c *CPU) addrABX() uint16 {
	base := c.addrABS()
	addr := base + uint16(c.Reg.X)
	if c.honorPageCross && (base&0xff00) != (addr&0xff00) {
		c.Reg.Cycles++
	}
	return addr
}

// addrABY resolves absolute,Y addressing, charging the page-cross penalty
// when honored.
func (c *CPU) addrABY() uint16 {
	base := c.addrABS()
	addr := base + uint16(c.Reg.Y)
	if c.honorPageCross && (base&0xff00) != (addr&0xff00) {
		c.Reg.Cycles++
	}
	return addr
}

// addrIND resolves indirect addressing. The bus's ReadWord reproduces the
// 6502 page-wrap bug for us: when the pointer's low byte is 0xFF, the
// high byte of the target comes from the start of the same page rather
// than the next one. No in-scope opcode uses this mode; it is
// implemented for completeness against the full addressing-mode table.
func (c *CPU) addrIND() uint16 {
	ptr := c.addrABS()
	return c.Mem.ReadWord(ptr)
}

// addrIDX resolves (indirect,X) addressing. Both bytes of the pointer are
// confined to the zero page.
func (c *CPU) addrIDX() uint16 {
	b := c.Read(c.Reg.PC)
	c.Reg.PC++
	zp := b + c.Reg.X
	lo := c.Read(uint16(zp))
	hi := c.Read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// addrIDY resolves (indirect),Y addressing, charging the page-cross
// penalty when honored. The pointer is read from the zero page,
// unindexed; only the resulting base address is offset by Y.
func (c *CPU) addrIDY() uint16 {
	b := c.Read(c.Reg.PC)
	c.Reg.PC++
	lo := c.Read(uint16(b))
	hi := c.Read(uint16(b + 1))
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Reg.Y)
	if c.honorPageCross && (base&0xff00) != (addr&0xff00) {
		c.Reg.Cycles++
	}
	return addr
}

// addrREL resolves relative addressing: the operand is a signed 8-bit
// displacement added to the address of the operand byte itself, and PC
// is then advanced past it. No in-scope opcode uses this mode; it is
// implemented for completeness against the full addressing-mode table
// and is ready for branch instructions when they arrive.
func (c *CPU) addrREL() uint16 {
	pc := c.Reg.PC
	offset := int8(c.Read(pc))
	c.Reg.PC++
	return uint16(int32(pc) + int32(offset))
}
