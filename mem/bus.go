// Package mem implements the memory-access side of the NES: a flat 64 kB
// address space with CPU-RAM mirroring, shared between the Cpu and whatever
// other components (PPU, cartridge, APU) are wired to the same Bus.
package mem

// A Bus is the central (global) object that connects multiple 'hardware'
// components together, enabling communication between them. Each Bus has an
// independent memory layout that begins at 0x0000.
//
// In the NES, there are 2 Buses. One has 64 kB, responsible for CPU, memory,
// audio and cartridge (0x0000-0xffff). The other has 8 (?) kB, responsible for
// graphics (0x2000-0x3fff?). This Bus only models the first: PPU/APU register
// ranges are out of scope (see cpu package docs), so reads/writes to
// 0x2000-0x401F simply hit the backing array like any other address.
//
// CPU     MEM     APU     CART
//
//	|       |       |       |
//	|       |0000   |4000   |4020
//	|       |07ff   |4017   |ffff
//	|------------------------------------ BUS 1
type Bus struct {
	// The NES wires only 2 kB of physical RAM (0x0000-0x07FF), mirrored 4
	// times across 0x0000-0x1FFF. Everything outside that range (PRG-ROM,
	// etc) addresses the backing array directly.
	RAM [64 * 1024]byte
}

// NewBus returns a Bus with a zeroed 64 kB address space.
func NewBus() *Bus {
	return &Bus{}
}

// mirror folds an address within the 0x0000-0x1FFF internal-RAM region down
// to its canonical 0x0000-0x07FF mirror. Addresses outside that region are
// returned unchanged.
func mirror(addr uint16) uint16 {
	if addr < 0x2000 {
		return addr & 0x07ff
	}
	return addr
}

// Read8 reads one byte at addr, honoring internal-RAM mirroring.
func (b *Bus) Read8(addr uint16) byte {
	return b.RAM[mirror(addr)]
}

// Write8 writes one byte at addr, honoring internal-RAM mirroring.
func (b *Bus) Write8(addr uint16, data byte) {
	b.RAM[mirror(addr)] = data
}

// Read16 reads a little-endian 16-bit value starting at addr: the low byte
// comes from addr, the high byte from addr+1 (address wraps modulo 0x10000).
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return hi<<8 | lo
}

// Write16 writes v as a little-endian 16-bit value starting at addr.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, byte(v&0x00ff))
	b.Write8(addr+1, byte(v>>8))
}
