// Package cpu implements the machine state and instruction set of the 8080
// microprocessor.
//
// The State holds memory, the register file, the condition codes, and two
// address registers: Pc, the instruction being executed, and Nc, the address
// execution resumes at. Nc is only ever advanced by the value an Instruction
// returns from Execute, which lets the execution engine detect a program that
// jumps to its own address.
//
// OUT instructions do not talk to devices directly; they append an OutputEvent
// to the state's output queue for the engine to dispatch.
package cpu
