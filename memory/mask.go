package memory

import "github.com/cjbaird/mos6502/cpu"

// Masked wraps a cpu.Bus and ANDs every address with Mask before
// forwarding, for mirrored regions (e.g. the NES's 2KiB internal RAM
// mirrored across a 8KiB window).
type Masked struct {
	Bus  cpu.Bus
	Mask uint16
}

// Read loads a byte from the underlying bus at addr&Mask.
func (m Masked) Read(addr uint16) byte {
	return m.Bus.Read(addr & m.Mask)
}

// Write stores a byte to the underlying bus at addr&Mask.
func (m Masked) Write(addr uint16, v byte) {
	m.Bus.Write(addr&m.Mask, v)
}

// ReadWord loads a little-endian 16-bit value from addr, reproducing the
// 6502 page-wrap quirk the same way Flat does, with each byte separately
// masked before the underlying read.
func (m Masked) ReadWord(addr uint16) uint16 {
	if addr&0xff == 0xff {
		return uint16(m.Read(addr)) | uint16(m.Read(addr-0xff))<<8
	}
	return uint16(m.Read(addr)) | uint16(m.Read(addr+1))<<8
}
