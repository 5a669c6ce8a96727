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
	"github.com/jetsetilly/gopherodyssey/hardware/cpu/instructions"
	"github.com/jetsetilly/gopherodyssey/logger"
)

// Step executes one instruction, or dispatches a pending interrupt, and
// returns the number of machine cycles consumed. The value is always 1 or 2.
func (mc *CPU) Step() int {
	cycles := mc.dispatch()
	if cycles == 0 {
		cycles = mc.execute()
	}

	if mc.Timer.tick(cycles) {
		mc.timerOverflow()
	}

	return cycles
}

// dispatch services a pending interrupt. returns zero if there was no
// interrupt to service. the external interrupt has priority and is not
// cleared by the dispatch. the timer interrupt is cleared
func (mc *CPU) dispatch() int {
	if mc.Interrupts.InIRQ {
		return 0
	}

	if mc.Interrupts.ExternalPending && mc.Interrupts.ExternalEnabled {
		mc.interrupt(ExternalVector)
		return 2
	}

	if mc.Interrupts.TimerPending && mc.Interrupts.TimerEnabled {
		mc.Interrupts.TimerPending = false
		mc.interrupt(TimerVector)
		return 2
	}

	return 0
}

func (mc *CPU) interrupt(vector uint16) {
	mc.Interrupts.InIRQ = true
	mc.pushReturn(mc.PC)
	mc.LastPC = mc.PC
	mc.LastDefn = nil
	mc.Illegal = false
	mc.PC = vector
}

// fetch the next byte from the instruction stream.
func (mc *CPU) fetch() uint8 {
	v := mc.prog.Read(mc.PC)
	mc.PC = (mc.PC + 1) & pcMask
	return v
}

// jumpIf implements the page relative conditional jumps. the page is the page
// of the operand byte.
func (mc *CPU) jumpIf(condition bool) {
	page := mc.PC & 0xf00
	target := mc.fetch()
	if condition {
		mc.PC = page | uint16(target)
	}
}

func (mc *CPU) jump(page int, target uint8) {
	mc.PC = uint16(target) | uint16(page)<<8
	if !mc.Interrupts.InIRQ {
		mc.PC |= mc.memoryBankBit()
	}
}

func (mc *CPU) add(v uint8, carry bool) {
	var c int
	if carry && mc.PSW.Carry {
		c = 1
	}

	mc.PSW.AuxCarry = int(mc.A&0x0f)+int(v&0x0f)+c > 0x0f

	sum := int(mc.A) + int(v) + c
	mc.PSW.Carry = sum > 0xff
	mc.A = uint8(sum & 0xff)
}

func (mc *CPU) decimalAdjust() {
	acc := int(mc.A)
	if acc&0x0f > 9 || mc.PSW.AuxCarry {
		acc += 6
		if acc > 0xff {
			acc &= 0xff
			mc.PSW.Carry = true
		}
	}

	hi := acc >> 4
	if hi > 9 || mc.PSW.Carry {
		hi += 6
		mc.PSW.Carry = true
	}

	mc.A = uint8((acc&0x0f | hi<<4) & 0xff)
}

// read the value indicated by the source operand. immediate values are taken
// from the instruction stream.
func (mc *CPU) read(defn *instructions.Definition, o instructions.Operand) uint8 {
	switch o {
	case instructions.Accumulator:
		return mc.A
	case instructions.Register:
		return *mc.register(defn.Index)
	case instructions.Indirect:
		return *mc.indirect(defn.Index)
	case instructions.Immediate:
		return mc.fetch()
	case instructions.Timer:
		return mc.Timer.Value
	case instructions.PSW:
		return mc.PSW.Value()
	case instructions.Port:
		switch defn.Index {
		case 1:
			return mc.ports.P1
		case 2:
			return mc.ports.P2
		}
	case instructions.Bus:
		return mc.Bus
	}
	return 0
}

// write the value to the destination operand.
func (mc *CPU) write(defn *instructions.Definition, o instructions.Operand, v uint8) {
	switch o {
	case instructions.Accumulator:
		mc.A = v
	case instructions.Register:
		*mc.register(defn.Index) = v
	case instructions.Indirect:
		*mc.indirect(defn.Index) = v
	case instructions.Timer:
		mc.Timer.Value = v
	case instructions.PSW:
		mc.PSW.Load(v)
	case instructions.Port:
		switch defn.Index {
		case 1:
			mc.ports.P1 = v
			mc.prog.SelectBank(v)
		case 2:
			mc.ports.P2 = v
		}
	case instructions.Bus:
		mc.Bus = v
	}
}

func (mc *CPU) execute() int {
	mc.LastPC = mc.PC
	mc.Illegal = false

	opcode := mc.fetch()
	defn := mc.definitions[opcode]
	mc.LastDefn = defn

	switch defn.Operator {
	case instructions.Nop:

	case instructions.Add:
		mc.add(mc.read(defn, defn.Src), false)
	case instructions.Addc:
		mc.add(mc.read(defn, defn.Src), true)

	case instructions.Anl:
		v := mc.read(defn, defn.Src)
		mc.write(defn, defn.Dest, mc.read(defn, defn.Dest)&v)
	case instructions.Orl:
		v := mc.read(defn, defn.Src)
		mc.write(defn, defn.Dest, mc.read(defn, defn.Dest)|v)
	case instructions.Xrl:
		v := mc.read(defn, defn.Src)
		mc.write(defn, defn.Dest, mc.read(defn, defn.Dest)^v)

	case instructions.Mov:
		mc.write(defn, defn.Dest, mc.read(defn, defn.Src))

	case instructions.Xch:
		v := mc.read(defn, defn.Src)
		mc.write(defn, defn.Src, mc.A)
		mc.A = v
	case instructions.Xchd:
		p := mc.indirect(defn.Index)
		lo := mc.A & 0x0f
		mc.A = mc.A&0xf0 | *p&0x0f
		*p = *p&0xf0 | lo

	case instructions.Inc:
		mc.write(defn, defn.Dest, mc.read(defn, defn.Dest)+1)
	case instructions.Dec:
		mc.write(defn, defn.Dest, mc.read(defn, defn.Dest)-1)

	case instructions.Clr:
		switch defn.Dest {
		case instructions.Carry:
			mc.PSW.Carry = false
		case instructions.Flag0:
			mc.PSW.F0 = false
		case instructions.Flag1:
			mc.F1 = false
		default:
			mc.A = 0
		}
	case instructions.Cpl:
		switch defn.Dest {
		case instructions.Carry:
			mc.PSW.Carry = !mc.PSW.Carry
		case instructions.Flag0:
			mc.PSW.F0 = !mc.PSW.F0
		case instructions.Flag1:
			mc.F1 = !mc.F1
		default:
			mc.A = ^mc.A
		}

	case instructions.Da:
		mc.decimalAdjust()
	case instructions.Swap:
		mc.A = mc.A<<4 | mc.A>>4
	case instructions.Rl:
		mc.A = mc.A<<1 | mc.A>>7
	case instructions.Rlc:
		c := mc.A&0x80 == 0x80
		mc.A <<= 1
		if mc.PSW.Carry {
			mc.A |= 0x01
		}
		mc.PSW.Carry = c
	case instructions.Rr:
		mc.A = mc.A>>1 | mc.A<<7
	case instructions.Rrc:
		c := mc.A&0x01 == 0x01
		mc.A >>= 1
		if mc.PSW.Carry {
			mc.A |= 0x80
		}
		mc.PSW.Carry = c

	case instructions.Jmp:
		mc.jump(defn.Index, mc.fetch())
	case instructions.Call:
		target := mc.fetch()
		mc.pushReturn(mc.PC)
		mc.jump(defn.Index, target)
	case instructions.Jmpp:
		page := mc.PC & 0xf00
		mc.PC = page | uint16(mc.prog.Read(page|uint16(mc.A)))
	case instructions.Ret:
		hi := mc.pop()
		mc.PC = uint16(hi&0x0f)<<8 | uint16(mc.pop())
	case instructions.Retr:
		hi := mc.pop()
		mc.PC = uint16(hi&0x0f)<<8 | uint16(mc.pop())
		mc.PSW.LoadNoSP(hi)
		mc.Interrupts.InIRQ = false

	case instructions.Djnz:
		r := mc.register(defn.Index)
		*r--
		mc.jumpIf(*r != 0)
	case instructions.Jb:
		mc.jumpIf(mc.A&(1<<defn.Index) != 0)
	case instructions.Jc:
		mc.jumpIf(mc.PSW.Carry)
	case instructions.Jnc:
		mc.jumpIf(!mc.PSW.Carry)
	case instructions.Jz:
		mc.jumpIf(mc.A == 0)
	case instructions.Jnz:
		mc.jumpIf(mc.A != 0)
	case instructions.Jt0:
		// T0 is tied low
		mc.jumpIf(false)
	case instructions.Jnt0:
		mc.jumpIf(true)
	case instructions.Jt1:
		mc.jumpIf(mc.ports.T1)
	case instructions.Jnt1:
		mc.jumpIf(!mc.ports.T1)
	case instructions.Jf0:
		mc.jumpIf(mc.PSW.F0)
	case instructions.Jf1:
		mc.jumpIf(mc.F1)
	case instructions.Jtf:
		overflow := mc.Timer.Overflow
		mc.Timer.Overflow = false
		mc.jumpIf(overflow)
	case instructions.Jni:
		mc.jumpIf(mc.Interrupts.ExternalPending)

	case instructions.EnI:
		mc.Interrupts.ExternalEnabled = true
	case instructions.DisI:
		mc.Interrupts.ExternalEnabled = false
	case instructions.EnTcnti:
		mc.Interrupts.TimerEnabled = true
	case instructions.DisTcnti:
		mc.Interrupts.TimerEnabled = false
		mc.Interrupts.TimerPending = false
	case instructions.StrtCnt:
		mc.Timer.Start(TimerCounter)
	case instructions.StrtT:
		mc.Timer.Start(TimerTimer)
	case instructions.StopTcnt:
		mc.Timer.Stop()

	case instructions.SelRb0:
		mc.PSW.BankSelect = false
	case instructions.SelRb1:
		mc.PSW.BankSelect = true
	case instructions.SelMb0:
		mc.MemoryBank = false
	case instructions.SelMb1:
		if !mc.Interrupts.InIRQ {
			mc.MemoryBank = true
		}

	case instructions.Movx:
		if defn.Dest == instructions.Accumulator {
			if v, ok := mc.ext.Read(*mc.register(defn.Index)); ok {
				mc.A = v
			}
		} else {
			mc.ext.Write(*mc.register(defn.Index), mc.A)
		}
	case instructions.Movp:
		mc.A = mc.prog.Read(mc.PC&0xf00 | uint16(mc.A))
	case instructions.Movp3:
		mc.A = mc.prog.Read(0x300 | uint16(mc.A))

	case instructions.In:
		if defn.Index == 2 && mc.input != nil {
			mc.input.ScanKeyboard()
		}
		mc.A = mc.read(defn, defn.Src)
	case instructions.Ins:
		if mc.input != nil {
			mc.A = mc.input.JoystickBus()
		}
	case instructions.Outl:
		mc.write(defn, defn.Dest, mc.A)

	case instructions.Movd:
		// no expander is fitted. reads return zero in the low nibble
		if defn.Dest == instructions.Accumulator {
			mc.A &= 0xf0
		}
	case instructions.Orld, instructions.Anld:
	case instructions.Ent0Clk:

	default:
		mc.Illegal = true
		logger.Logf(logger.Allow, "cpu", "illegal opcode (0x%02x) at 0x%04x", opcode, mc.LastPC)
	}

	return defn.Cycles
}
