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

package instructions

// Operator is the operation performed by an instruction.
type Operator int

// List of valid Operator values.
const (
	Illegal Operator = iota
	Nop
	Add
	Addc
	Anl
	Orl
	Xrl
	Mov
	Xch
	Xchd
	Inc
	Dec
	Clr
	Cpl
	Da
	Swap
	Rl
	Rlc
	Rr
	Rrc
	Jmp
	Jmpp
	Call
	Ret
	Retr
	Djnz
	Jb
	Jc
	Jnc
	Jz
	Jnz
	Jt0
	Jnt0
	Jt1
	Jnt1
	Jf0
	Jf1
	Jtf
	Jni
	EnI
	DisI
	EnTcnti
	DisTcnti
	StrtCnt
	StrtT
	StopTcnt
	SelRb0
	SelRb1
	SelMb0
	SelMb1
	Movx
	Movp
	Movp3
	In
	Ins
	Outl
	Movd
	Orld
	Anld
	Ent0Clk
)

var operatorNames = map[Operator]string{
	Illegal:  "???",
	Nop:      "NOP",
	Add:      "ADD",
	Addc:     "ADDC",
	Anl:      "ANL",
	Orl:      "ORL",
	Xrl:      "XRL",
	Mov:      "MOV",
	Xch:      "XCH",
	Xchd:     "XCHD",
	Inc:      "INC",
	Dec:      "DEC",
	Clr:      "CLR",
	Cpl:      "CPL",
	Da:       "DA",
	Swap:     "SWAP",
	Rl:       "RL",
	Rlc:      "RLC",
	Rr:       "RR",
	Rrc:      "RRC",
	Jmp:      "JMP",
	Jmpp:     "JMPP",
	Call:     "CALL",
	Ret:      "RET",
	Retr:     "RETR",
	Djnz:     "DJNZ",
	Jb:       "JB",
	Jc:       "JC",
	Jnc:      "JNC",
	Jz:       "JZ",
	Jnz:      "JNZ",
	Jt0:      "JT0",
	Jnt0:     "JNT0",
	Jt1:      "JT1",
	Jnt1:     "JNT1",
	Jf0:      "JF0",
	Jf1:      "JF1",
	Jtf:      "JTF",
	Jni:      "JNI",
	EnI:      "EN I",
	DisI:     "DIS I",
	EnTcnti:  "EN TCNTI",
	DisTcnti: "DIS TCNTI",
	StrtCnt:  "STRT CNT",
	StrtT:    "STRT T",
	StopTcnt: "STOP TCNT",
	SelRb0:   "SEL RB0",
	SelRb1:   "SEL RB1",
	SelMb0:   "SEL MB0",
	SelMb1:   "SEL MB1",
	Movx:     "MOVX",
	Movp:     "MOVP",
	Movp3:    "MOVP3",
	In:       "IN",
	Ins:      "INS",
	Outl:     "OUTL",
	Movd:     "MOVD",
	Orld:     "ORLD",
	Anld:     "ANLD",
	Ent0Clk:  "ENT0 CLK",
}

func (op Operator) String() string {
	if s, ok := operatorNames[op]; ok {
		return s
	}
	return "???"
}

// IsJump returns true if the operator may change the flow of the program by
// writing to the program counter.
func (op Operator) IsJump() bool {
	switch op {
	case Jmp, Jmpp, Call, Ret, Retr, Djnz, Jb, Jc, Jnc, Jz, Jnz,
		Jt0, Jnt0, Jt1, Jnt1, Jf0, Jf1, Jtf, Jni:
		return true
	}
	return false
}

// Operand selects the source or destination of an instruction.
type Operand int

// List of valid Operand values.
const (
	None Operand = iota
	Accumulator
	Register
	Indirect
	Immediate
	Address
	Timer
	PSW
	Port
	Bus
	Carry
	Flag0
	Flag1
	IndirectA
)
