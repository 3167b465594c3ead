package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/gone6502/mem"
)

// newTestCPU wires a Cpu to an unmirrored flat address space and loads
// program at TestLoadBase.
func newTestCPU(program []byte) *CPU {
	c := New(mem.NewFlat())
	c.TestLoad(program)
	c.Reset()
	return c
}

// runN steps c n times, stopping early (without error) if it halts.
func runN(t *testing.T, c *CPU, n int) {
	t.Helper()
	for range n {
		halted, err := c.Step()
		assert.NoError(t, err)
		if halted {
			return
		}
	}
}

func TestLdaTaxInxBrk(t *testing.T) {
	// LDA #$c0; TAX; INX; BRK
	c := newTestCPU([]byte{0xA9, 0xC0, 0xAA, 0xE8, 0x00})
	runN(t, c, 10)
	assert.Equal(t, byte(0xC0), c.A)
	assert.Equal(t, byte(0xC1), c.X)
	assert.Equal(t, Halted, c.State)
}

func TestAdcSignedOverflow(t *testing.T) {
	for _, tc := range []struct {
		name         string
		a, m         byte
		wantA        byte
		wantCarry    bool
		wantOverflow bool
		wantNegative bool
	}{
		// 0x50 + 0x50: positive + positive = negative result -> overflow.
		{"positive-plus-positive-overflows", 0x50, 0x50, 0xA0, false, true, true},
		// 0xD0 + 0x90: negative + negative = positive result -> overflow.
		{"negative-plus-negative-overflows", 0xD0, 0x90, 0x60, true, true, false},
		// 0x50 + 0xD0: positive + negative never overflows.
		{"mixed-sign-never-overflows", 0x50, 0xD0, 0x20, true, false, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// LDA #a; ADC #m; BRK
			c := newTestCPU([]byte{0xA9, tc.a, 0x69, tc.m, 0x00})
			runN(t, c, 10)
			assert.Equal(t, tc.wantA, c.A)
			assert.Equal(t, tc.wantCarry, c.IsStatusFlagSet(FlagCarry))
			assert.Equal(t, tc.wantOverflow, c.IsStatusFlagSet(FlagOverflow))
			assert.Equal(t, tc.wantNegative, c.IsStatusFlagSet(FlagNegative))
		})
	}
}

func TestAdcSimple(t *testing.T) {
	// LDA #$50; ADC #$10; BRK
	c := newTestCPU([]byte{0xA9, 0x50, 0x69, 0x10, 0x00})
	runN(t, c, 10)
	assert.Equal(t, byte(0x60), c.A)
	assert.False(t, c.IsStatusFlagSet(FlagCarry))
	assert.False(t, c.IsStatusFlagSet(FlagOverflow))
	assert.False(t, c.IsStatusFlagSet(FlagZero))
	assert.False(t, c.IsStatusFlagSet(FlagNegative))
}

func TestAdcWithCarryIn(t *testing.T) {
	// SEC; LDA #$50; ADC #$50; BRK -> 0x50+0x50+1 = 0xA1, signed overflow.
	c := newTestCPU([]byte{0x38, 0xA9, 0x50, 0x69, 0x50, 0x00})
	runN(t, c, 10)
	assert.Equal(t, byte(0xA1), c.A)
	assert.False(t, c.IsStatusFlagSet(FlagCarry))
	assert.True(t, c.IsStatusFlagSet(FlagOverflow))
	assert.True(t, c.IsStatusFlagSet(FlagNegative))
}

func TestSbcMatchesAdcOfComplement(t *testing.T) {
	// SBC #m must behave exactly like ADC #(m^0xFF) for every flag and for
	// A itself, across a spread of operands and carry-in states.
	for _, a := range []byte{0x00, 0x01, 0x50, 0x7F, 0x80, 0xD0, 0xFF} {
		for _, m := range []byte{0x00, 0x01, 0x10, 0x7F, 0x80, 0xFF} {
			for _, carry := range []bool{false, true} {
				pre := byte(0x18) // CLC
				if carry {
					pre = 0x38 // SEC
				}

				sbc := newTestCPU([]byte{pre, 0xA9, a, 0xE9, m, 0x00})
				runN(t, sbc, 10)

				adc := newTestCPU([]byte{pre, 0xA9, a, 0x69, m ^ 0xFF, 0x00})
				runN(t, adc, 10)

				assert.Equal(t, adc.A, sbc.A)
				assert.Equal(t, adc.P, sbc.P)
			}
		}
	}
}

func TestRtiRestoresStatusAndPC(t *testing.T) {
	// Hand-build an interrupt frame on the stack (return address pushed
	// high byte first, then the status byte on top), then RTI through it.
	// The frame's status byte has B set, as a BRK-style push would; RTI
	// must not restore it into the live P.
	c := newTestCPU([]byte{0x40}) // RTI
	c.push16(0x0605)
	c.push(0xF3)          // N V 1 B ... Z C
	c.Write(0x0605, 0x00) // BRK at the return address

	halted, err := c.Step() // RTI
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x0605), c.PC, "RTI must not add 1 to the pulled PC")
	assert.Equal(t, byte(0xE3), c.P, "RTI must pull P without restoring B")
}

func TestJsrRtsRoundTrip(t *testing.T) {
	// 0600: JSR $0606
	// 0603: BRK
	// 0604: (padding)
	// 0606: INX
	// 0607: RTS
	program := []byte{
		0x20, 0x06, 0x06, // JSR $0606
		0x00,       // BRK
		0xEA, 0xEA, // padding
		0xE8, // INX
		0x60, // RTS
	}
	c := newTestCPU(program)
	spBefore := c.SP

	halted, err := c.Step() // JSR
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x0606), c.PC)

	halted, err = c.Step() // INX
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, byte(1), c.X)

	halted, err = c.Step() // RTS
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x0603), c.PC, "RTS must return to the byte after JSR")
	assert.Equal(t, spBefore, c.SP, "RTS must restore the stack pointer JSR pushed onto")

	halted, err = c.Step() // BRK
	assert.NoError(t, err)
	assert.True(t, halted)
}

func TestBranchBackwardDisplacement(t *testing.T) {
	// LDX #3
	// loop: DEX; BNE loop
	// BRK
	program := []byte{
		0xA2, 0x03, // LDX #3
		0xCA,       // DEX
		0xD0, 0xFD, // BNE -3 (back to DEX)
		0x00, // BRK
	}
	c := newTestCPU(program)
	runN(t, c, 20)
	assert.Equal(t, byte(0), c.X)
	assert.Equal(t, Halted, c.State)
}

func TestCmpFlags(t *testing.T) {
	// LDA #$10; CMP #$10; CMP #$20; CMP #$05; BRK
	c := newTestCPU([]byte{0xA9, 0x10, 0xC9, 0x10, 0xC9, 0x20, 0xC9, 0x05, 0x00})

	runN(t, c, 1) // LDA
	assert.Equal(t, byte(0x10), c.A)

	runN(t, c, 1) // CMP #$10: equal
	assert.True(t, c.IsStatusFlagSet(FlagZero))
	assert.True(t, c.IsStatusFlagSet(FlagCarry))

	runN(t, c, 1) // CMP #$20: A < M
	assert.False(t, c.IsStatusFlagSet(FlagZero))
	assert.False(t, c.IsStatusFlagSet(FlagCarry))
	assert.True(t, c.IsStatusFlagSet(FlagNegative))

	runN(t, c, 1) // CMP #$05: A > M
	assert.False(t, c.IsStatusFlagSet(FlagZero))
	assert.True(t, c.IsStatusFlagSet(FlagCarry))
}

func TestPhaPlaRoundTrip(t *testing.T) {
	// LDA #$42; PHA; LDA #$00; PLA; BRK
	c := newTestCPU([]byte{0xA9, 0x42, 0x48, 0xA9, 0x00, 0x68, 0x00})
	spBefore := c.SP
	runN(t, c, 1) // LDA #$42
	runN(t, c, 1) // PHA
	assert.Equal(t, spBefore-1, c.SP)
	runN(t, c, 1) // LDA #$00
	assert.Equal(t, byte(0), c.A)
	runN(t, c, 1) // PLA
	assert.Equal(t, byte(0x42), c.A)
	assert.Equal(t, spBefore, c.SP)
}

func TestPhpPlpRoundTrip(t *testing.T) {
	// SEC; SED; PHP; CLC; CLD; PLP; BRK
	c := newTestCPU([]byte{0x38, 0xF8, 0x08, 0x18, 0xD8, 0x28, 0x00})
	runN(t, c, 2) // SEC; SED
	assert.True(t, c.IsStatusFlagSet(FlagCarry))
	assert.True(t, c.IsStatusFlagSet(FlagDecimal))
	pBefore := c.P

	runN(t, c, 1) // PHP
	runN(t, c, 2) // CLC; CLD
	assert.False(t, c.IsStatusFlagSet(FlagCarry))
	assert.False(t, c.IsStatusFlagSet(FlagDecimal))

	runN(t, c, 1) // PLP
	assert.Equal(t, pBefore, c.P,
		"PHP;PLP must preserve P exactly: the bits 4/5 PHP forces in the pushed copy must not leak back")
}

func TestPhpPlpDoesNotLeakBreakIntoLiveP(t *testing.T) {
	// Straight from reset, P=0x24 (B clear). PHP pushes 0x34; PLP must
	// discard the forced bits 4/5 on the way back in.
	c := newTestCPU([]byte{0x08, 0x28, 0x00}) // PHP; PLP; BRK
	assert.Equal(t, byte(0x24), c.P)
	runN(t, c, 10)
	assert.Equal(t, byte(0x24), c.P)
}

func TestAslShiftsByOne(t *testing.T) {
	// LDA #$01; ASL A; ASL A; BRK
	c := newTestCPU([]byte{0xA9, 0x01, 0x0A, 0x0A, 0x00})
	runN(t, c, 1) // LDA
	runN(t, c, 1) // ASL A
	assert.Equal(t, byte(0x02), c.A, "ASL must shift by exactly one bit")
	runN(t, c, 1) // ASL A
	assert.Equal(t, byte(0x04), c.A)
}

func TestLsrAlwaysClearsNegative(t *testing.T) {
	// LDA #$ff; LSR A; BRK
	c := newTestCPU([]byte{0xA9, 0xFF, 0x4A, 0x00})
	runN(t, c, 1) // LDA
	runN(t, c, 1) // LSR A
	assert.Equal(t, byte(0x7F), c.A)
	assert.False(t, c.IsStatusFlagSet(FlagNegative))
	assert.True(t, c.IsStatusFlagSet(FlagCarry))
}

func TestIndirectJmpDoesNotWrapPage(t *testing.T) {
	// JMP ($10FF): the pointer's high byte must come from $1100, not from
	// the classic 6502 bug's wrapped $1000 -- this core deliberately does
	// not replicate the hardware bug.
	mem8 := mem.NewFlat()
	c := New(mem8)
	program := []byte{0x6C, 0xFF, 0x10} // JMP ($10FF)
	c.TestLoad(program)
	mem8.Write8(0x10FF, 0x00)
	mem8.Write8(0x1100, 0x80) // correct high byte
	mem8.Write8(0x1000, 0xDE) // what a buggy wrapped read would use instead
	c.Reset()

	halted, err := c.Step()
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x8000), c.PC)
}

func TestIndirectXPointerWrapsInZeroPage(t *testing.T) {
	// LDX #$05; LDA ($FD,X): the pointer is ($FD+$05) mod 256 = $02, and
	// its high byte comes from $03 -- both reads stay inside page 0.
	mem8 := mem.NewFlat()
	c := New(mem8)
	c.TestLoad([]byte{0xA2, 0x05, 0xA1, 0xFD, 0x00})
	mem8.Write8(0x02, 0x34)
	mem8.Write8(0x03, 0x12)
	mem8.Write8(0x1234, 0x99)
	c.Reset()

	runN(t, c, 2) // LDX; LDA
	assert.Equal(t, byte(0x99), c.A)
}

func TestIndirectYPointerHighByteWrapsInZeroPage(t *testing.T) {
	// LDY #$01; LDA ($FF),Y: the pointer's low byte comes from $FF but its
	// high byte from $00, not $100.
	mem8 := mem.NewFlat()
	c := New(mem8)
	c.TestLoad([]byte{0xA0, 0x01, 0xB1, 0xFF, 0x00})
	mem8.Write8(0xFF, 0x00)
	mem8.Write8(0x00, 0x20)   // correct high byte, wrapped
	mem8.Write8(0x0100, 0x90) // what a plain Read16($FF) would use instead
	mem8.Write8(0x2001, 0x77) // base $2000 + Y
	c.Reset()

	runN(t, c, 2) // LDY; LDA
	assert.Equal(t, byte(0x77), c.A)
}

func TestIllegalOpcodeReturnsError(t *testing.T) {
	c := newTestCPU([]byte{0x02}) // undocumented/illegal opcode
	halted, err := c.Step()
	assert.True(t, halted)
	assert.Error(t, err)
	var illegal *IllegalOpcodeError
	assert.ErrorAs(t, err, &illegal)
}

func TestRunPanicsOnIllegalOpcode(t *testing.T) {
	c := newTestCPU([]byte{0x02})
	assert.Panics(t, func() { c.Run() })
}

func TestLoadAndRun(t *testing.T) {
	flat := mem.NewFlat()
	c := New(flat)
	c.LoadAndRun([]byte{0xA9, 0x05, 0x00}) // LDA #5; BRK
	assert.Equal(t, byte(0x05), c.A)
	assert.Equal(t, uint16(PRGBase), flat.Read16(0xFFFC), "Load must point the reset vector at the image base")
	assert.Equal(t, uint16(0x8002), c.PC, "PC must be left on the BRK byte")
}

// newPRGTestCPU loads program at the real PRGBase (0x8000), for scenarios
// that specify addresses relative to it.
func newPRGTestCPU(program []byte) (*CPU, *mem.Flat) {
	flat := mem.NewFlat()
	c := New(flat)
	c.Load(program)
	c.Reset()
	return c, flat
}

func TestAslZeroPageWritesBackToMemory(t *testing.T) {
	// mem[0x10]=0x55; ASL $10; BRK -> mem[0x10]=0xAA, N=1.
	c := newTestCPU([]byte{0x06, 0x10, 0x00})
	c.Write(0x10, 0x55)
	runN(t, c, 1) // ASL $10
	assert.Equal(t, byte(0xAA), c.Read(0x10))
	assert.True(t, c.IsStatusFlagSet(FlagNegative))
}

func TestJsrRtsToBrkScenario(t *testing.T) {
	// JSR $2021; mem[0x2021]=RTS -> final PC=0x8003, SP=0xFD.
	c, flat := newPRGTestCPU([]byte{0x20, 0x21, 0x20, 0x00})
	flat.Write8(0x2021, 0x60) // RTS
	spBefore := c.SP

	halted, err := c.Step() // JSR
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x2021), c.PC)

	halted, err = c.Step() // RTS
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x8003), c.PC)
	assert.Equal(t, spBefore, c.SP)

	halted, err = c.Step() // BRK
	assert.NoError(t, err)
	assert.True(t, halted)
	assert.Equal(t, uint16(0x8003), c.PC)
}

func TestBccTakenJumpsToOperandTarget(t *testing.T) {
	// BCC +0x50; mem[0x8052]=BRK -> final PC=0x8052. Carry is clear after
	// Reset, so the branch is taken.
	c, flat := newPRGTestCPU([]byte{0x90, 0x50})
	flat.Write8(0x8052, 0x00) // BRK
	assert.False(t, c.IsStatusFlagSet(FlagCarry))

	halted, err := c.Step() // BCC, taken
	assert.NoError(t, err)
	assert.False(t, halted)
	assert.Equal(t, uint16(0x8052), c.PC)

	halted, err = c.Step() // BRK
	assert.NoError(t, err)
	assert.True(t, halted)
	assert.Equal(t, uint16(0x8052), c.PC)
}

func TestThirtyMultiplyByRepeatedAddition(t *testing.T) {
	// Multiplies 10 by 3 via repeated addition, exercising LDX/STX/LDY/
	// LDA/CLC/ADC/DEY/BNE/STA end-to-end.
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, // LDX #10; STX $0000
		0xA2, 0x03, 0x8E, 0x01, 0x00, // LDX #3; STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #0
		0x18,             // CLC
		0x6D, 0x01, 0x00, // loop: ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE loop
		0x8D, 0x02, 0x00, // STA $0002
		0x00, // BRK
	}
	c := newTestCPU(program)
	runN(t, c, 200)
	assert.Equal(t, byte(30), c.A)
	assert.Equal(t, byte(3), c.X)
	assert.Equal(t, byte(0), c.Y)
	assert.Equal(t, byte(30), c.Read(0x0002))
	assert.Equal(t, Halted, c.State)
}
