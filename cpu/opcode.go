package cpu

import (
	"fmt"
)

// Op is the one-byte opcode of an instruction kind.
type Op byte

const (
	OP_NOOP = Op(0x00) // NOOP

	// Math/Logic
	OP_ADD = Op(0x01) // ADD
	OP_SUB = Op(0x02) // SUB
	OP_MUL = Op(0x03) // MUL
	OP_DIV = Op(0x04) // DIV
	OP_INC = Op(0x05) // INC
	OP_DEC = Op(0x06) // DEC
	OP_AND = Op(0x07) // AND
	OP_OR  = Op(0x08) // OR
	OP_BSL = Op(0x09) // BSL
	OP_BSR = Op(0x10) // BSR

	// Register manipulation
	OP_LDA = Op(0x30) // LDA
	OP_LDB = Op(0x31) // LDB
	OP_MVA = Op(0x32) // MVA
	OP_MVB = Op(0x33) // MVB

	// Program movement
	OP_JMP  = Op(0x40) // JMP
	OP_JEZ  = Op(0x41) // JEZ
	OP_JNZ  = Op(0x42) // JNZ
	OP_JEQ  = Op(0x43) // JEQ
	OP_CALL = Op(0x44) // CALL
	OP_RET  = Op(0x45) // RET

	// Output/Flags
	OP_OUT  = Op(0xF0) // OUT
	OP_OUTI = Op(0xF1) // OUTI
	OP_MEM  = Op(0xF2) // MEM
	OP_REG  = Op(0xF3) // REG
)

// String returns the mnemonic of a standard opcode.
func (op Op) String() string {
	if oper, err := DefaultRegistry.LookupOpcode(byte(op)); err == nil {
		return oper.Mnemonic
	}

	return fmt.Sprintf("Op(0x%02x)", byte(op))
}

// Register is the register-indirect interpretation of an operand.
type Register int32

const (
	REG_A  = Register(0) // EAX
	REG_B  = Register(1) // EBX
	REG_PP = Register(2) // PP
)

var registerName = [...]string{
	REG_A:  "EAX",
	REG_B:  "EBX",
	REG_PP: "PP",
}

// registerMap maps upper-case register names to registers.
var registerMap = map[string]Register{
	"EAX": REG_A,
	"EBX": REG_B,
	"PP":  REG_PP,
}

// Valid returns true if the register id names a register.
func (reg Register) Valid() bool {
	return reg >= REG_A && reg <= REG_PP
}

func (reg Register) String() string {
	if !reg.Valid() {
		return fmt.Sprintf("Register(%d)", int32(reg))
	}

	return registerName[reg]
}

// LookupRegister returns the register named by word, which must be upper case.
func LookupRegister(word string) (reg Register, ok bool) {
	reg, ok = registerMap[word]
	return
}
