package cpu

import (
	"math/bits"
)

// parity is true for an even number of set bits.
func parity(value uint8) bool {
	return bits.OnesCount8(value)%2 == 0
}

// setZSP sets the zero, sign and parity flags from a result.
func (cc *ConditionCodes) setZSP(value uint8) {
	cc.Z = value == 0
	cc.S = (value & 0x80) != 0
	cc.P = parity(value)
}

// test evaluates a 3-bit branch condition field.
func (cc ConditionCodes) test(cond uint8) bool {
	switch cond & 7 {
	case 0:
		return !cc.Z
	case 1:
		return cc.Z
	case 2:
		return !cc.CY
	case 3:
		return cc.CY
	case 4:
		return !cc.P
	case 5:
		return cc.P
	case 6:
		return !cc.S
	default:
		return cc.S
	}
}

// addc adds with carry, returning the result and the carry-outs of bits 7 and 3.
func addc(a, b uint8, carry bool) (result uint8, cy bool, ac bool) {
	var c uint16
	if carry {
		c = 1
	}
	sum := uint16(a) + uint16(b) + c
	result = uint8(sum)
	cy = sum > 0xff
	ac = ((a&0xf)+(b&0xf)+uint8(c)) > 0xf
	return
}

// add sets A to A + value + carry.
func (state *State) add(value uint8, carry bool) {
	var cy, ac bool
	state.A, cy, ac = addc(state.A, value, carry)
	state.Cc.CY = cy
	state.Cc.AC = ac
	state.Cc.setZSP(state.A)
}

// sub computes A - value - borrow, setting all flags. The 8080 subtracts by
// adding the complement, so the carry flag is the inverted carry-out.
func (state *State) sub(value uint8, borrow bool) (result uint8) {
	var cy, ac bool
	result, cy, ac = addc(state.A, ^value, !borrow)
	state.Cc.CY = !cy
	state.Cc.AC = ac
	state.Cc.setZSP(result)
	return
}

// alu performs one of the eight accumulator operations, by 3-bit field.
func (state *State) alu(op uint8, value uint8) {
	switch op & 7 {
	case 0: // ADD
		state.add(value, false)
	case 1: // ADC
		state.add(value, state.Cc.CY)
	case 2: // SUB
		state.A = state.sub(value, false)
	case 3: // SBB
		state.A = state.sub(value, state.Cc.CY)
	case 4: // ANA
		state.Cc.AC = ((state.A | value) & 0x08) != 0
		state.A &= value
		state.Cc.CY = false
		state.Cc.setZSP(state.A)
	case 5: // XRA
		state.A ^= value
		state.Cc.CY = false
		state.Cc.AC = false
		state.Cc.setZSP(state.A)
	case 6: // ORA
		state.A |= value
		state.Cc.CY = false
		state.Cc.AC = false
		state.Cc.setZSP(state.A)
	case 7: // CMP
		state.sub(value, false)
	}
}

// inr increments a value, leaving carry unchanged.
func (state *State) inr(value uint8) (result uint8) {
	result = value + 1
	state.Cc.AC = (result & 0xf) == 0
	state.Cc.setZSP(result)
	return
}

// dcr decrements a value, leaving carry unchanged.
func (state *State) dcr(value uint8) (result uint8) {
	result = value - 1
	state.Cc.AC = (result & 0xf) != 0xf
	state.Cc.setZSP(result)
	return
}

// daa decimal adjusts the accumulator.
func (state *State) daa() {
	cy := state.Cc.CY
	var correction uint8

	lsb := state.A & 0x0f
	msb := state.A >> 4

	if state.Cc.AC || lsb > 9 {
		correction += 0x06
	}
	if state.Cc.CY || msb > 9 || (msb >= 9 && lsb > 9) {
		correction += 0x60
		cy = true
	}

	state.add(correction, false)
	state.Cc.CY = cy
}

// rotate performs one of the four accumulator rotates, by 2-bit field.
func (state *State) rotate(op uint8) {
	a := state.A
	switch op & 3 {
	case 0: // RLC
		state.Cc.CY = (a & 0x80) != 0
		state.A = bits.RotateLeft8(a, 1)
	case 1: // RRC
		state.Cc.CY = (a & 0x01) != 0
		state.A = bits.RotateLeft8(a, -1)
	case 2: // RAL
		state.A = a << 1
		if state.Cc.CY {
			state.A |= 0x01
		}
		state.Cc.CY = (a & 0x80) != 0
	case 3: // RAR
		state.A = a >> 1
		if state.Cc.CY {
			state.A |= 0x80
		}
		state.Cc.CY = (a & 0x01) != 0
	}
}
