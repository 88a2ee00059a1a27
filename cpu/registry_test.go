package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Standard(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		mnemonic string
		opcode   byte
		arity    int
	}{
		{"NOOP", 0x00, 0},
		{"ADD", 0x01, 1},
		{"SUB", 0x02, 1},
		{"MUL", 0x03, 1},
		{"DIV", 0x04, 1},
		{"INC", 0x05, 0},
		{"DEC", 0x06, 0},
		{"AND", 0x07, 1},
		{"OR", 0x08, 1},
		{"BSL", 0x09, 1},
		{"BSR", 0x10, 1},
		{"LDA", 0x30, 1},
		{"LDB", 0x31, 1},
		{"MVA", 0x32, 1},
		{"MVB", 0x33, 1},
		{"JMP", 0x40, 1},
		{"JEZ", 0x41, 1},
		{"JNZ", 0x42, 1},
		{"JEQ", 0x43, 1},
		{"CALL", 0x44, 1},
		{"RET", 0x45, 0},
		{"OUT", 0xF0, 1},
		{"OUTI", 0xF1, 1},
		{"MEM", 0xF2, 0},
		{"REG", 0xF3, 0},
	}

	reg := DefaultRegistry
	assert.Equal(len(table), len(reg.Mnemonics()))

	for _, entry := range table {
		oper, err := reg.LookupName(entry.mnemonic)
		assert.NoError(err, entry.mnemonic)
		assert.Equal(Op(entry.opcode), oper.Opcode, entry.mnemonic)
		assert.Equal(entry.arity, oper.Arity, entry.mnemonic)

		byCode, err := reg.LookupOpcode(entry.opcode)
		assert.NoError(err, entry.mnemonic)
		assert.Equal(oper, byCode, entry.mnemonic)

		assert.Equal(entry.mnemonic, Op(entry.opcode).String())
	}
}

func TestRegistry_Operations(t *testing.T) {
	assert := assert.New(t)

	var codes []Op
	for oper := range DefaultRegistry.Operations() {
		codes = append(codes, oper.Opcode)
	}

	assert.Equal(25, len(codes))
	assert.Equal(OP_NOOP, codes[0])
	assert.Equal(OP_BSR, codes[10])
	assert.Equal(OP_REG, codes[len(codes)-1])
}

func TestRegistry_Duplicate(t *testing.T) {
	assert := assert.New(t)

	reg := NewRegistry()
	assert.NoError(reg.Register("NOOP", 0x00, 0))
	assert.ErrorIs(reg.Register("NOOP", 0x01, 0), ErrDuplicateDefinition)
	assert.ErrorIs(reg.Register("HALT", 0x00, 0), ErrDuplicateDefinition)
	assert.ErrorIs(reg.Register("WIDE", 0x02, 2), ErrInvalidArgument)

	_, err := reg.LookupName("HALT")
	assert.ErrorIs(err, ErrUnknownInstruction)
}

func TestRegistry_Unknown(t *testing.T) {
	assert := assert.New(t)

	_, err := DefaultRegistry.LookupName("FOO")
	assert.ErrorIs(err, ErrUnknownInstruction)
	assert.ErrorContains(err, "FOO")

	_, err = DefaultRegistry.LookupOpcode(0x11)
	assert.ErrorIs(err, ErrUnknownInstruction)
	assert.ErrorContains(err, "0x11")

	assert.Equal("Op(0x20)", Op(0x20).String())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("EAX", REG_A.String())
	assert.Equal("EBX", REG_B.String())
	assert.Equal("PP", REG_PP.String())
	assert.False(Register(3).Valid())
	assert.False(Register(-1).Valid())
	assert.Equal("Register(3)", Register(3).String())

	reg, ok := LookupRegister("PP")
	assert.True(ok)
	assert.Equal(REG_PP, reg)

	_, ok = LookupRegister("eax")
	assert.False(ok)
}
