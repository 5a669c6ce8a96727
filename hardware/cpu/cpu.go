// This file is part of Gopherodyssey.
//
// Gopherodyssey is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherodyssey is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherodyssey.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherodyssey/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherodyssey/hardware/cpu/registers"
	"github.com/jetsetilly/gopherodyssey/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherodyssey/hardware/ports"
)

// Size of internal RAM and the location of the areas within it.
const (
	RAMSize        = 64
	RegisterBank0  = 0
	StackOrigin    = 8
	RegisterBank1  = 24
	RegistersCount = 8
)

// Interrupt vectors.
const (
	ExternalVector = 0x003
	TimerVector    = 0x007
)

// the program counter is 12 bits wide
const pcMask = 0xfff

// Interrupts is the state of the two interrupt sources.
type Interrupts struct {
	ExternalEnabled bool
	ExternalPending bool
	TimerEnabled    bool
	TimerPending    bool

	// an interrupt routine is in progress. cleared by RETR
	InIRQ bool
}

func (irq Interrupts) String() string {
	return fmt.Sprintf("ext(en=%v pend=%v) tcnt(en=%v pend=%v) inIRQ=%v",
		irq.ExternalEnabled, irq.ExternalPending,
		irq.TimerEnabled, irq.TimerPending, irq.InIRQ)
}

// CPU implements the 8048 as found in the Odyssey².
type CPU struct {
	PC  uint16
	A   uint8
	PSW registers.StatusWord
	F1  bool
	RAM [RAMSize]uint8

	Timer      Timer
	Interrupts Interrupts

	// the A11 program address line. set by SEL MB1 and cleared by SEL MB0
	MemoryBank bool

	// the value last written to the data bus by OUTL BUS,A and the BUS
	// variants of ORL and ANL
	Bus uint8

	// address of the most recent instruction or of the instruction that was
	// interrupted
	LastPC uint16

	// the definition of the most recently executed instruction. nil if the
	// last step was an interrupt dispatch
	LastDefn *instructions.Definition

	// the most recent step encountered an illegal opcode
	Illegal bool

	ports       *ports.Ports
	prog        cpubus.ProgramMemory
	ext         cpubus.ExternalMemory
	input       cpubus.Input
	definitions []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(p *ports.Ports, prog cpubus.ProgramMemory, ext cpubus.ExternalMemory, input cpubus.Input) *CPU {
	mc := &CPU{
		ports:       p,
		prog:        prog,
		ext:         ext,
		input:       input,
		definitions: instructions.GetDefinitions(),
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the ports, program memory, external memory and input with the original and
// should only be used for inspection.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb new program memory into the CPU.
func (mc *CPU) Plumb(prog cpubus.ProgramMemory) {
	mc.prog = prog
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=0x%03x A=0x%02x %s=%s F1=%v MB=%d", mc.PC, mc.A,
		mc.PSW.Label(), mc.PSW, mc.F1, mc.memoryBankBit()>>11)
}

// Dump returns a multi-line description of the CPU state suitable for the
// debugging console. The P2 value includes the result of a keyboard scan.
func (mc *CPU) Dump() string {
	s := strings.Builder{}

	e := mc.Disassemble(mc.LastPC)
	s.WriteString(fmt.Sprintf("0x%04x: %s [0x%02x] (0x%02x)\n", mc.LastPC, e.Mnemonic,
		mc.prog.Read(mc.LastPC+1), mc.prog.Read(mc.LastPC)))

	s.WriteString(fmt.Sprintf("A: 0x%02x PSW: 0x%02x (CY: %d, AC: %d, F0: %d, BS: %d, SP: 0x%02x)\n",
		mc.A, mc.PSW.Value(), bit(mc.PSW.Carry), bit(mc.PSW.AuxCarry),
		bit(mc.PSW.F0), bit(mc.PSW.BankSelect), mc.PSW.SP))

	if mc.input != nil {
		mc.input.ScanKeyboard()
	}
	s.WriteString(fmt.Sprintf("P1: 0x%02x P2: 0x%02x\n", mc.ports.P1, mc.ports.P2))

	if mc.PSW.BankSelect {
		s.WriteString("RB0       RB1 (*)\n")
	} else {
		s.WriteString("RB0 (*)   RB1\n")
	}
	for i := 0; i < RegistersCount; i++ {
		s.WriteString(fmt.Sprintf("R%d: 0x%02x  R%d: 0x%02x\n",
			i, mc.RAM[RegisterBank0+i], i, mc.RAM[RegisterBank1+i]))
	}

	return s.String()
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Reset reinitialises the CPU to its power-on state. Internal RAM is not
// cleared.
func (mc *CPU) Reset() {
	mc.PC = 0
	mc.A = 0
	mc.PSW.Reset()
	mc.F1 = false
	mc.Timer.Reset()
	mc.Interrupts = Interrupts{}
	mc.MemoryBank = false
	mc.Bus = 0
	mc.LastPC = 0
	mc.LastDefn = nil
	mc.Illegal = false
}

// ExternalIRQ latches a pending external interrupt if external interrupts are
// enabled.
func (mc *CPU) ExternalIRQ() {
	if mc.Interrupts.ExternalEnabled {
		mc.Interrupts.ExternalPending = true
	}
}

// ClearExternalIRQ clears any pending external interrupt.
func (mc *CPU) ClearExternalIRQ() {
	mc.Interrupts.ExternalPending = false
}

// CounterIncrement advances the event counter. Has no effect unless the timer
// is in counter mode.
func (mc *CPU) CounterIncrement() {
	if mc.Timer.Mode != TimerCounter {
		return
	}
	if mc.Timer.increment() {
		mc.timerOverflow()
	}
}

func (mc *CPU) timerOverflow() {
	if mc.Interrupts.TimerEnabled {
		mc.Interrupts.TimerPending = true
	}
}

// register returns a pointer to the working register in the currently
// selected bank.
func (mc *CPU) register(n int) *uint8 {
	if mc.PSW.BankSelect {
		return &mc.RAM[RegisterBank1+n]
	}
	return &mc.RAM[RegisterBank0+n]
}

// indirect returns a pointer to the internal RAM location addressed by the
// working register.
func (mc *CPU) indirect(n int) *uint8 {
	return &mc.RAM[*mc.register(n)&(RAMSize-1)]
}

// push a byte onto the stack. the stack pointer wraps without error.
func (mc *CPU) push(v uint8) {
	mc.RAM[StackOrigin+int(mc.PSW.SP)] = v
	mc.PSW.SP = (mc.PSW.SP + 1) % registers.StackSize
}

// pop a byte from the stack. the stack pointer wraps without error.
func (mc *CPU) pop() uint8 {
	mc.PSW.SP = (mc.PSW.SP + registers.StackSize - 1) % registers.StackSize
	return mc.RAM[StackOrigin+int(mc.PSW.SP)]
}

// pushReturn pushes the return address packed with the top nibble of the
// status word.
func (mc *CPU) pushReturn(address uint16) {
	mc.push(uint8(address & 0xff))
	mc.push(uint8((address&0xf00)>>8) | mc.PSW.Value()&0xf0)
}

func (mc *CPU) memoryBankBit() uint16 {
	if mc.MemoryBank {
		return 0x800
	}
	return 0
}
