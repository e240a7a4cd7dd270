package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 16))

	assert.Equal(0, state.Pc)
	assert.Equal(1, state.Nc)
	assert.True(state.Stopped)
	assert.Equal(ConditionCodes{Z: true, S: true, P: true, CY: true, AC: true}, state.Cc)
	assert.Len(state.Memory, 16)
	assert.Empty(state.OutputQueue)
}

func TestConditionCodes_Byte(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		cc    ConditionCodes
		value uint8
	}){
		{"none", ConditionCodes{}, 0x02},
		{"all", ConditionCodes{Z: true, S: true, P: true, CY: true, AC: true}, 0xd7},
		{"carry", ConditionCodes{CY: true}, 0x03},
		{"zero", ConditionCodes{Z: true}, 0x42},
		{"sign", ConditionCodes{S: true}, 0x82},
	}

	for _, entry := range table {
		assert.Equal(entry.value, entry.cc.Byte(), entry.name)

		var cc ConditionCodes
		cc.SetByte(entry.value)
		assert.Equal(entry.cc, cc, entry.name)
	}
}

func TestState_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 4))

	err := state.Write16(1, 0xbeef)
	assert.NoError(err)
	assert.Equal([]byte{0x00, 0xef, 0xbe, 0x00}, state.Memory)

	value, err := state.Read16(1)
	assert.NoError(err)
	assert.Equal(uint16(0xbeef), value)

	_, err = state.Read(4)
	assert.True(errors.Is(err, ErrMemory))
	assert.Equal(ErrAddress{Addr: 4, Pc: 0}, err)

	err = state.Write16(3, 0x1234)
	assert.True(errors.Is(err, ErrMemory))

	assert.Len(state.Memory, 4)
}

func TestState_Stack(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 8))
	state.Sp = 8

	assert.NoError(state.Push(0x1234))
	assert.NoError(state.Push(0x5678))
	assert.Equal(uint16(4), state.Sp)
	assert.Equal([]byte{0, 0, 0, 0, 0x78, 0x56, 0x34, 0x12}, state.Memory)

	value, err := state.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x5678), value)

	value, err = state.Pop()
	assert.NoError(err)
	assert.Equal(uint16(0x1234), value)
	assert.Equal(uint16(8), state.Sp)

	_, err = state.Pop()
	assert.Error(err)
	assert.Equal(uint16(8), state.Sp)
}

func TestState_Pairs(t *testing.T) {
	assert := assert.New(t)

	state := NewState(nil)
	state.SetBC(0x0102)
	state.SetDE(0x0304)
	state.SetHL(0x0506)

	assert.Equal(uint8(0x01), state.B)
	assert.Equal(uint8(0x02), state.C)
	assert.Equal(uint8(0x03), state.D)
	assert.Equal(uint8(0x04), state.E)
	assert.Equal(uint8(0x05), state.H)
	assert.Equal(uint8(0x06), state.L)
	assert.Equal(uint16(0x0102), state.BC())
	assert.Equal(uint16(0x0304), state.DE())
	assert.Equal(uint16(0x0506), state.HL())
}

func TestState_OutputQueue(t *testing.T) {
	assert := assert.New(t)

	state := NewState(nil)

	_, ok := state.Dequeue()
	assert.False(ok)

	state.Enqueue(OutputEvent{Device: 1, Value: 0x10})
	state.Enqueue(OutputEvent{Device: 2, Value: 0x20})

	event, ok := state.Dequeue()
	assert.True(ok)
	assert.Equal(OutputEvent{Device: 1, Value: 0x10}, event)
	assert.Len(state.OutputQueue, 1)

	event, ok = state.Dequeue()
	assert.True(ok)
	assert.Equal(OutputEvent{Device: 2, Value: 0x20}, event)
	assert.Empty(state.OutputQueue)
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	state := NewState(nil)
	state.Cc = ConditionCodes{Z: true, CY: true}
	state.A = 0x5a

	text := state.String()
	assert.Contains(text, "flags: sZapC")
	assert.Contains(text, "    a: 5A")
	assert.Contains(text, "   nc: 0001")
}
