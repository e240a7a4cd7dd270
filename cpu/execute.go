// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// getReg gets a register by 3-bit field. Register 6 (M) is memory at HL.
func (state *State) getReg(reg uint8) (value uint8, err error) {
	switch reg & 7 {
	case 0:
		value = state.B
	case 1:
		value = state.C
	case 2:
		value = state.D
	case 3:
		value = state.E
	case 4:
		value = state.H
	case 5:
		value = state.L
	case 6:
		value, err = state.Read(state.HL())
	case 7:
		value = state.A
	}
	return
}

// setReg sets a register by 3-bit field. Register 6 (M) is memory at HL.
func (state *State) setReg(reg uint8, value uint8) (err error) {
	switch reg & 7 {
	case 0:
		state.B = value
	case 1:
		state.C = value
	case 2:
		state.D = value
	case 3:
		state.E = value
	case 4:
		state.H = value
	case 5:
		state.L = value
	case 6:
		err = state.Write(state.HL(), value)
	case 7:
		state.A = value
	}
	return
}

// getPair gets a register pair by 2-bit field. Pair 3 is SP.
func (state *State) getPair(pair uint8) (value uint16) {
	switch pair & 3 {
	case 0:
		value = state.BC()
	case 1:
		value = state.DE()
	case 2:
		value = state.HL()
	case 3:
		value = state.Sp
	}
	return
}

// setPair sets a register pair by 2-bit field. Pair 3 is SP.
func (state *State) setPair(pair uint8, value uint16) {
	switch pair & 3 {
	case 0:
		state.SetBC(value)
	case 1:
		state.SetDE(value)
	case 2:
		state.SetHL(value)
	case 3:
		state.Sp = value
	}
}

// Execute the instruction against the machine state.
// Returns the address execution resumes at.
func (code Code) Execute(state *State) (nc int, err error) {
	next := code.Addr + code.Len()
	nc = next

	var value uint8
	var word uint16

	switch code.Mnemonic {
	case OP_NOP:
		// pass
	case OP_HLT:
		// Resume at the HLT itself.
		nc = code.Addr
	case OP_MOV:
		value, err = state.getReg(code.src())
		if err != nil {
			return
		}
		err = state.setReg(code.dst(), value)
	case OP_MVI:
		err = state.setReg(code.dst(), code.imm8())
	case OP_LXI:
		state.setPair(code.pair(), code.imm16())
	case OP_STAX:
		err = state.Write(state.getPair(code.pair()), state.A)
	case OP_LDAX:
		state.A, err = state.Read(state.getPair(code.pair()))
	case OP_STA:
		err = state.Write(code.imm16(), state.A)
	case OP_LDA:
		state.A, err = state.Read(code.imm16())
	case OP_SHLD:
		err = state.Write16(code.imm16(), state.HL())
	case OP_LHLD:
		word, err = state.Read16(code.imm16())
		if err != nil {
			return
		}
		state.SetHL(word)
	case OP_XCHG:
		hl := state.HL()
		state.SetHL(state.DE())
		state.SetDE(hl)
	case OP_XTHL:
		word, err = state.Read16(state.Sp)
		if err != nil {
			return
		}
		err = state.Write16(state.Sp, state.HL())
		if err != nil {
			return
		}
		state.SetHL(word)
	case OP_SPHL:
		state.Sp = state.HL()
	case OP_PCHL:
		nc = int(state.HL())
	case OP_INX:
		state.setPair(code.pair(), state.getPair(code.pair())+1)
	case OP_DCX:
		state.setPair(code.pair(), state.getPair(code.pair())-1)
	case OP_DAD:
		sum := uint32(state.HL()) + uint32(state.getPair(code.pair()))
		state.Cc.CY = sum > 0xffff
		state.SetHL(uint16(sum))
	case OP_INR:
		value, err = state.getReg(code.dst())
		if err != nil {
			return
		}
		err = state.setReg(code.dst(), state.inr(value))
	case OP_DCR:
		value, err = state.getReg(code.dst())
		if err != nil {
			return
		}
		err = state.setReg(code.dst(), state.dcr(value))
	case OP_ADD, OP_ADC, OP_SUB, OP_SBB, OP_ANA, OP_XRA, OP_ORA, OP_CMP:
		value, err = state.getReg(code.src())
		if err != nil {
			return
		}
		state.alu(code.dst(), value)
	case OP_ADI, OP_ACI, OP_SUI, OP_SBI, OP_ANI, OP_XRI, OP_ORI, OP_CPI:
		state.alu(code.dst(), code.imm8())
	case OP_RLC, OP_RRC, OP_RAL, OP_RAR:
		state.rotate(code.dst())
	case OP_DAA:
		state.daa()
	case OP_CMA:
		state.A = ^state.A
	case OP_STC:
		state.Cc.CY = true
	case OP_CMC:
		state.Cc.CY = !state.Cc.CY
	case OP_JMP:
		nc = int(code.imm16())
	case OP_JNZ, OP_JZ, OP_JNC, OP_JC, OP_JPO, OP_JPE, OP_JP, OP_JM:
		if state.Cc.test(code.dst()) {
			nc = int(code.imm16())
		}
	case OP_CALL:
		err = state.Push(uint16(next))
		nc = int(code.imm16())
	case OP_CNZ, OP_CZ, OP_CNC, OP_CC, OP_CPO, OP_CPE, OP_CP, OP_CM:
		if state.Cc.test(code.dst()) {
			err = state.Push(uint16(next))
			nc = int(code.imm16())
		}
	case OP_RST:
		err = state.Push(uint16(next))
		nc = int(code.dst()) * 8
	case OP_RET:
		word, err = state.Pop()
		nc = int(word)
	case OP_RNZ, OP_RZ, OP_RNC, OP_RC, OP_RPO, OP_RPE, OP_RP, OP_RM:
		if state.Cc.test(code.dst()) {
			word, err = state.Pop()
			nc = int(word)
		}
	case OP_PUSH:
		word = state.getPair(code.pair())
		if code.pair() == 3 {
			word = (uint16(state.A) << 8) | uint16(state.Cc.Byte())
		}
		err = state.Push(word)
	case OP_POP:
		word, err = state.Pop()
		if err != nil {
			return
		}
		if code.pair() == 3 {
			state.A = uint8(word >> 8)
			state.Cc.SetByte(uint8(word))
		} else {
			state.setPair(code.pair(), word)
		}
	case OP_OUT:
		state.Enqueue(OutputEvent{Device: code.imm8(), Value: state.A})
	case OP_IN:
		state.A = state.Ports[code.imm8()]
	case OP_EI:
		state.Interrupts = true
	case OP_DI:
		state.Interrupts = false
	default:
		err = ErrOpcode{Addr: code.Addr, Op: code.Op}
	}

	return
}
