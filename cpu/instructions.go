// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The 14 in-scope instruction semantics, one method per mnemonic. Each
// receives the effective address already resolved by the instruction's
// addressing mode.

// lda loads the accumulator.
func (c *CPU) lda(addr uint16) {
	v := c.Read(addr)
	c.Reg.A = v
	c.Reg.SetZeroNegative(v)
}

// ldx loads the X register.
func (c *CPU) ldx(addr uint16) {
	v := c.Read(addr)
	c.Reg.X = v
	c.Reg.SetZeroNegative(v)
}

// ldy loads the Y register.
func (c *CPU) ldy(addr uint16) {
	v := c.Read(addr)
	c.Reg.Y = v
	c.Reg.SetZeroNegative(v)
}

// sta stores the accumulator. No flag effects.
func (c *CPU) sta(addr uint16) {
	c.Write(addr, c.Reg.A)
}

// stx stores the X register. No flag effects.
func (c *CPU) stx(addr uint16) {
	c.Write(addr, c.Reg.X)
}

// sty stores the Y register. No flag effects.
func (c *CPU) sty(addr uint16) {
	c.Write(addr, c.Reg.Y)
}

// adc adds memory and the carry flag to the accumulator. The Decimal
// flag is never consulted; the 2A03 ignores it in binary math.
func (c *CPU) adc(addr uint16) {
	a := c.Reg.A
	v := c.Read(addr)
	var carryIn int
	if c.Reg.IsSet(Carry) {
		carryIn = 1
	}
	sum := int(a) + int(v) + carryIn
	result := byte(sum)

	c.Reg.Clear(Carry | Zero | Overflow | Negative)
	if sum > 0xff {
		c.Reg.Set(Carry)
	}
	if result == 0 {
		c.Reg.Set(Zero)
	}
	if (a^v)&0x80 == 0 && (a^result)&0x80 != 0 {
		c.Reg.Set(Overflow)
	}
	if result&0x80 != 0 {
		c.Reg.Set(Negative)
	}
	c.Reg.A = result
}

// sbc subtracts memory and the borrow (inverted carry) from the
// accumulator. The Decimal flag is never consulted.
func (c *CPU) sbc(addr uint16) {
	a := c.Reg.A
	v := c.Read(addr)
	var borrowIn int
	if !c.Reg.IsSet(Carry) {
		borrowIn = 1
	}
	diff := int(a) - int(v) - borrowIn
	result := byte(diff)

	c.Reg.Clear(Carry | Zero | Overflow | Negative)
	if diff >= 0 {
		c.Reg.Set(Carry)
	}
	if result == 0 {
		c.Reg.Set(Zero)
	}
	if (a^v)&0x80 != 0 && (a^result)&0x80 != 0 {
		c.Reg.Set(Overflow)
	}
	if result&0x80 != 0 {
		c.Reg.Set(Negative)
	}
	c.Reg.A = result
}

// inc increments a memory location.
func (c *CPU) inc(addr uint16) {
	v := c.Read(addr) + 1
	c.Write(addr, v)
	c.Reg.SetZeroNegative(v)
}

// dec decrements a memory location.
func (c *CPU) dec(addr uint16) {
	v := c.Read(addr) - 1
	c.Write(addr, v)
	c.Reg.SetZeroNegative(v)
}

// inx increments X. addr is unused (addrIMP resolves it).
func (c *CPU) inx(addr uint16) {
	c.Reg.X++
	c.Reg.SetZeroNegative(c.Reg.X)
}

// iny increments Y. addr is unused (addrIMP resolves it).
func (c *CPU) iny(addr uint16) {
	c.Reg.Y++
	c.Reg.SetZeroNegative(c.Reg.Y)
}

// dex decrements X. addr is unused (addrIMP resolves it).
func (c *CPU) dex(addr uint16) {
	c.Reg.X--
	c.Reg.SetZeroNegative(c.Reg.X)
}

// dey decrements Y. addr is unused (addrIMP resolves it).
func (c *CPU) dey(addr uint16) {
	c.Reg.Y--
	c.Reg.SetZeroNegative(c.Reg.Y)
}
