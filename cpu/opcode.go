// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"fmt"
)

// Instruction is a single decoded instruction.
type Instruction interface {
	// Execute the instruction, returning the address to resume at.
	Execute(state *State) (nc int, err error)
	// Len is the encoded length in bytes.
	Len() int
	// String is the disassembly of the instruction.
	String() string
}

// opcode describes the encoding of one opcode byte.
type opcode struct {
	Mnemonic     Mnemonic
	Length       int
	Undocumented bool // Alias of a documented opcode.
}

// Register names, by 3-bit register field.
var regName = [8]string{"B", "C", "D", "E", "H", "L", "M", "A"}

// Register pair names, by 2-bit pair field.
var pairName = [4]string{"B", "D", "H", "SP"}

// opcodes is the decode table, indexed by opcode byte.
var opcodes = func() (table [256]opcode) {
	for n := range table {
		op := uint8(n)
		ddd := Mnemonic((op >> 3) & 7)
		info := &table[n]
		info.Length = 1
		switch {
		case op == 0x76:
			info.Mnemonic = OP_HLT
		case op&0xc0 == 0x40:
			info.Mnemonic = OP_MOV
		case op&0xc0 == 0x80:
			info.Mnemonic = OP_ADD + ddd
		case op&0xc7 == 0x00:
			info.Mnemonic = OP_NOP
			info.Undocumented = op != 0x00
		case op&0xcf == 0x01:
			info.Mnemonic, info.Length = OP_LXI, 3
		case op&0xcf == 0x09:
			info.Mnemonic = OP_DAD
		case op == 0x02, op == 0x12:
			info.Mnemonic = OP_STAX
		case op == 0x0a, op == 0x1a:
			info.Mnemonic = OP_LDAX
		case op == 0x22:
			info.Mnemonic, info.Length = OP_SHLD, 3
		case op == 0x2a:
			info.Mnemonic, info.Length = OP_LHLD, 3
		case op == 0x32:
			info.Mnemonic, info.Length = OP_STA, 3
		case op == 0x3a:
			info.Mnemonic, info.Length = OP_LDA, 3
		case op&0xcf == 0x03:
			info.Mnemonic = OP_INX
		case op&0xcf == 0x0b:
			info.Mnemonic = OP_DCX
		case op&0xc7 == 0x04:
			info.Mnemonic = OP_INR
		case op&0xc7 == 0x05:
			info.Mnemonic = OP_DCR
		case op&0xc7 == 0x06:
			info.Mnemonic, info.Length = OP_MVI, 2
		case op&0xc7 == 0x07:
			info.Mnemonic = OP_RLC + ddd
		case op&0xc7 == 0xc0:
			info.Mnemonic = OP_RNZ + ddd
		case op&0xc7 == 0xc2:
			info.Mnemonic, info.Length = OP_JNZ+ddd, 3
		case op&0xc7 == 0xc4:
			info.Mnemonic, info.Length = OP_CNZ+ddd, 3
		case op&0xc7 == 0xc6:
			info.Mnemonic, info.Length = OP_ADI+ddd, 2
		case op&0xc7 == 0xc7:
			info.Mnemonic = OP_RST
		case op&0xcf == 0xc1:
			info.Mnemonic = OP_POP
		case op&0xcf == 0xc5:
			info.Mnemonic = OP_PUSH
		case op&0xcf == 0xc9:
			switch op {
			case 0xc9, 0xd9:
				info.Mnemonic = OP_RET
				info.Undocumented = op != 0xc9
			case 0xe9:
				info.Mnemonic = OP_PCHL
			case 0xf9:
				info.Mnemonic = OP_SPHL
			}
		case op&0xcf == 0xcd:
			info.Mnemonic, info.Length = OP_CALL, 3
			info.Undocumented = op != 0xcd
		default:
			// op&0xc7 == 0xc3
			switch op {
			case 0xc3, 0xcb:
				info.Mnemonic, info.Length = OP_JMP, 3
				info.Undocumented = op != 0xc3
			case 0xd3:
				info.Mnemonic, info.Length = OP_OUT, 2
			case 0xdb:
				info.Mnemonic, info.Length = OP_IN, 2
			case 0xe3:
				info.Mnemonic = OP_XTHL
			case 0xeb:
				info.Mnemonic = OP_XCHG
			case 0xf3:
				info.Mnemonic = OP_DI
			case 0xfb:
				info.Mnemonic = OP_EI
			}
		}
	}
	return
}()

// Code is an instruction decoded from memory.
type Code struct {
	Addr     int      // Address the opcode was decoded from.
	Op       uint8    // Opcode byte.
	Data     [2]uint8 // Operand bytes, little-endian.
	Mnemonic Mnemonic // Decoded mnemonic.
}

var _ Instruction = Code{}

// Len returns the encoded length of the instruction.
func (code Code) Len() int {
	return opcodes[code.Op].Length
}

// imm8 is the 8-bit operand.
func (code Code) imm8() uint8 {
	return code.Data[0]
}

// imm16 is the 16-bit operand.
func (code Code) imm16() uint16 {
	return (uint16(code.Data[1]) << 8) | uint16(code.Data[0])
}

// dst is the 3-bit destination register field.
func (code Code) dst() uint8 {
	return (code.Op >> 3) & 7
}

// src is the 3-bit source register field.
func (code Code) src() uint8 {
	return code.Op & 7
}

// pair is the 2-bit register pair field.
func (code Code) pair() uint8 {
	return (code.Op >> 4) & 3
}

// String returns the disassembly of the instruction.
func (code Code) String() string {
	var args string
	switch code.Mnemonic {
	case OP_MOV:
		args = fmt.Sprintf("%s,%s", regName[code.dst()], regName[code.src()])
	case OP_MVI:
		args = fmt.Sprintf("%s,#$%02x", regName[code.dst()], code.imm8())
	case OP_INR, OP_DCR:
		args = regName[code.dst()]
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP:
		args = regName[code.src()]
	case OP_LXI:
		args = fmt.Sprintf("%s,#$%04x", pairName[code.pair()], code.imm16())
	case OP_DAD, OP_INX, OP_DCX, OP_STAX, OP_LDAX:
		args = pairName[code.pair()]
	case OP_PUSH, OP_POP:
		args = pairName[code.pair()]
		if code.pair() == 3 {
			args = "PSW"
		}
	case OP_SHLD, OP_LHLD, OP_STA, OP_LDA, OP_JMP, OP_CALL,
		OP_JNZ, OP_JZ, OP_JNC, OP_JC, OP_JPO, OP_JPE, OP_JP, OP_JM,
		OP_CNZ, OP_CZ, OP_CNC, OP_CC, OP_CPO, OP_CPE, OP_CP, OP_CM:
		args = fmt.Sprintf("$%04x", code.imm16())
	case OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_XRI, OP_ORI, OP_CPI,
		OP_OUT, OP_IN:
		args = fmt.Sprintf("#$%02x", code.imm8())
	case OP_RST:
		args = fmt.Sprintf("%d", code.dst())
	}

	if len(args) == 0 {
		return code.Mnemonic.String()
	}

	return fmt.Sprintf("%-4s %s", code.Mnemonic.String(), args)
}

// InstructionSet decodes 8080 machine code.
type InstructionSet struct {
	Undocumented bool // If set, decode the undocumented opcode aliases.
}

// Decode one instruction from memory at the offset.
func (is InstructionSet) Decode(memory []byte, offset int) (inst Instruction, err error) {
	if offset < 0 || offset >= len(memory) {
		err = errors.Join(ErrDecode, ErrAddress{Addr: offset, Pc: offset})
		return
	}

	op := memory[offset]
	info := opcodes[op]
	if info.Undocumented && !is.Undocumented {
		err = ErrOpcode{Addr: offset, Op: op}
		return
	}

	if offset+info.Length > len(memory) {
		err = ErrTruncated{Addr: offset, Op: op}
		return
	}

	code := Code{
		Addr:     offset,
		Op:       op,
		Mnemonic: info.Mnemonic,
	}
	copy(code.Data[:], memory[offset+1:offset+info.Length])

	inst = code
	return
}
