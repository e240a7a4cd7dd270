package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// doRun executes a program from address 0 until HLT.
func doRun(state *State, t *testing.T) {
	is := InstructionSet{}
	for range 1000 {
		inst, err := is.Decode(state.Memory, state.Pc)
		if err != nil {
			t.Fatalf("0x%04x: %v", state.Pc, err)
		}
		nc, err := inst.Execute(state)
		if err != nil {
			t.Fatalf("0x%04x: %v: %v", state.Pc, inst, err)
		}
		if nc == state.Pc {
			return
		}
		state.Pc = nc
	}
	t.Fatal("program did not halt")
}

func doProgram(program []byte, size int, t *testing.T) (state *State) {
	memory := make([]byte, size)
	copy(memory, program)
	state = NewState(memory)
	state.Pc = 0
	doRun(state, t)
	return
}

func TestExecute_Arithmetic(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []byte
		a       uint8
		cc      ConditionCodes
	}){
		{"add", []byte{0x3e, 0x10, 0x06, 0x20, 0x80, 0x76}, 0x30,
			ConditionCodes{P: true}},
		{"add_carry", []byte{0x3e, 0xff, 0xc6, 0x01, 0x76}, 0x00,
			ConditionCodes{Z: true, P: true, CY: true, AC: true}},
		{"adc", []byte{0x37, 0x3e, 0x01, 0xce, 0x01, 0x76}, 0x03,
			ConditionCodes{P: true}},
		{"sub_zero", []byte{0x3e, 0x3e, 0xd6, 0x3e, 0x76}, 0x00,
			ConditionCodes{Z: true, P: true, AC: true}},
		{"sub_borrow", []byte{0x3e, 0x01, 0xd6, 0x02, 0x76}, 0xff,
			ConditionCodes{S: true, P: true, CY: true}},
		{"sbb", []byte{0x37, 0x3e, 0x05, 0xde, 0x01, 0x76}, 0x03,
			ConditionCodes{P: true, AC: true}},
		{"ana", []byte{0x3e, 0xfc, 0xe6, 0x0f, 0x76}, 0x0c,
			ConditionCodes{P: true, AC: true}},
		{"xra_self", []byte{0x3e, 0x55, 0xaf, 0x76}, 0x00,
			ConditionCodes{Z: true, P: true}},
		{"ora", []byte{0x3e, 0x80, 0xf6, 0x01, 0x76}, 0x81,
			ConditionCodes{S: true, P: true}},
		{"cmp_less", []byte{0x3e, 0x05, 0xfe, 0x07, 0x76}, 0x05,
			ConditionCodes{S: true, CY: true}},
		{"inr_wrap", []byte{0xaf, 0x3c, 0x3e, 0xff, 0x3c, 0x76}, 0x00,
			ConditionCodes{Z: true, P: true, AC: true}},
		{"dcr", []byte{0xaf, 0x3d, 0x76}, 0xff,
			ConditionCodes{S: true, P: true}},
		{"daa", []byte{0xaf, 0x3e, 0x9b, 0x27, 0x76}, 0x01,
			ConditionCodes{CY: true, AC: true}},
		{"cma", []byte{0x3e, 0x51, 0x2f, 0x76}, 0xae,
			ConditionCodes{Z: true, S: true, P: true, CY: true, AC: true}},
	}

	for _, entry := range table {
		state := doProgram(entry.program, 16, t)
		assert.Equal(entry.a, state.A, entry.name)
		assert.Equal(entry.cc, state.Cc, entry.name)
	}
}

func TestExecute_Rotate(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []byte
		a       uint8
		cy      bool
	}){
		{"rlc", []byte{0x3e, 0x81, 0x07, 0x76}, 0x03, true},
		{"rrc", []byte{0x3e, 0x81, 0x0f, 0x76}, 0xc0, true},
		{"ral", []byte{0x37, 0x3f, 0x3e, 0x81, 0x17, 0x76}, 0x02, true},
		{"rar", []byte{0x37, 0x3e, 0x02, 0x1f, 0x76}, 0x81, false},
	}

	for _, entry := range table {
		state := doProgram(entry.program, 16, t)
		assert.Equal(entry.a, state.A, entry.name)
		assert.Equal(entry.cy, state.Cc.CY, entry.name)
	}
}

func TestExecute_Memory(t *testing.T) {
	assert := assert.New(t)

	program := []byte{
		0x21, 0x20, 0x00, // LXI H,$0020
		0x36, 0x42, //       MVI M,$42
		0x7e,             // MOV A,M
		0x32, 0x21, 0x00, // STA $0021
		0x2a, 0x20, 0x00, // LHLD $0020
		0xeb,             // XCHG
		0x22, 0x22, 0x00, // SHLD $0022
		0x01, 0x24, 0x00, // LXI B,$0024
		0x02,             // STAX B
		0x0a,             // LDAX B
		0x76,             // HLT
	}

	state := doProgram(program, 0x30, t)
	assert.Equal(uint8(0x42), state.A)
	assert.Equal(uint16(0x4242), state.DE())
	assert.Equal(uint16(0x0000), state.HL())
	assert.Equal([]byte{0x42, 0x42, 0x00, 0x00, 0x42}, state.Memory[0x20:0x25])
}

func TestExecute_Stack(t *testing.T) {
	assert := assert.New(t)

	program := []byte{
		0x31, 0x40, 0x00, // 0000 LXI SP,$0040
		0x01, 0x34, 0x12, // 0003 LXI B,$1234
		0xc5,             // 0006 PUSH B
		0xcd, 0x10, 0x00, // 0007 CALL $0010
		0xd1,             // 000a POP D
		0x76,             // 000b HLT
		0x00, 0x00, 0x00, 0x00,
		0x3e, 0x99, //       0010 MVI A,$99
		0xc9, //             0012 RET
	}

	state := doProgram(program, 0x40, t)
	assert.Equal(uint8(0x99), state.A)
	assert.Equal(uint16(0x1234), state.DE())
	assert.Equal(uint16(0x0040), state.Sp)
	assert.Equal(0x000b, state.Pc)
}

func TestExecute_PushPsw(t *testing.T) {
	assert := assert.New(t)

	program := []byte{
		0x31, 0x20, 0x00, // LXI SP,$0020
		0x3e, 0x80, //       MVI A,$80
		0xb7,       //       ORA A
		0xf5,       //       PUSH PSW
		0xaf,       //       XRA A
		0xf1,       //       POP PSW
		0x76,       //       HLT
	}

	state := doProgram(program, 0x20, t)
	assert.Equal(uint8(0x80), state.A)
	assert.Equal(ConditionCodes{S: true}, state.Cc)
	assert.Equal([]byte{0x82, 0x80}, state.Memory[0x1e:0x20])
}

func TestExecute_Branch(t *testing.T) {
	assert := assert.New(t)

	// Count B down from 3, accumulating into A.
	program := []byte{
		0x06, 0x03, //       0000 MVI B,$03
		0xaf,             // 0002 XRA A
		0x80,             // 0003 ADD B
		0x05,             // 0004 DCR B
		0xc2, 0x03, 0x00, // 0005 JNZ $0003
		0x76, //             0008 HLT
	}

	state := doProgram(program, 16, t)
	assert.Equal(uint8(6), state.A)
	assert.Equal(uint8(0), state.B)
}

func TestExecute_Halt(t *testing.T) {
	assert := assert.New(t)

	state := NewState([]byte{0x00, 0x76, 0xc3, 0x02, 0x00})

	nc, err := Code{Addr: 1, Op: 0x76, Mnemonic: OP_HLT}.Execute(state)
	assert.NoError(err)
	assert.Equal(1, nc)

	inst, err := InstructionSet{}.Decode(state.Memory, 2)
	assert.NoError(err)
	nc, err = inst.Execute(state)
	assert.NoError(err)
	assert.Equal(2, nc)
}

func TestExecute_Rst(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 0x40))
	state.Sp = 0x40

	nc, err := Code{Addr: 0x20, Op: 0xd7, Mnemonic: OP_RST}.Execute(state)
	assert.NoError(err)
	assert.Equal(0x10, nc)
	assert.Equal([]byte{0x21, 0x00}, state.Memory[0x3e:0x40])
}

func TestExecute_InOut(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 8))
	state.Ports[0x01] = 0x5a

	nc, err := Code{Addr: 0, Op: 0xdb, Data: [2]uint8{0x01}, Mnemonic: OP_IN}.Execute(state)
	assert.NoError(err)
	assert.Equal(2, nc)
	assert.Equal(uint8(0x5a), state.A)

	nc, err = Code{Addr: 2, Op: 0xd3, Data: [2]uint8{0x03}, Mnemonic: OP_OUT}.Execute(state)
	assert.NoError(err)
	assert.Equal(4, nc)
	assert.Equal([]OutputEvent{{Device: 0x03, Value: 0x5a}}, state.OutputQueue)
}

func TestExecute_Interrupts(t *testing.T) {
	assert := assert.New(t)

	state := NewState(nil)

	_, err := Code{Op: 0xfb, Mnemonic: OP_EI}.Execute(state)
	assert.NoError(err)
	assert.True(state.Interrupts)

	_, err = Code{Op: 0xf3, Mnemonic: OP_DI}.Execute(state)
	assert.NoError(err)
	assert.False(state.Interrupts)
}

func TestExecute_AddressFault(t *testing.T) {
	assert := assert.New(t)

	state := NewState(make([]byte, 4))
	state.SetHL(0x1000)

	_, err := Code{Addr: 0, Op: 0x7e, Mnemonic: OP_MOV}.Execute(state)
	assert.True(errors.Is(err, ErrMemory))
	assert.False(errors.Is(err, ErrDecode))
	assert.Equal(ErrAddress{Addr: 0x1000, Pc: 0}, err)
}
