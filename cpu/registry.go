package cpu

import (
	"iter"
	"slices"
)

// Operation describes an instruction kind. It carries no behaviour: the
// CPU dispatches on Opcode.
type Operation struct {
	Mnemonic string // Upper-case mnemonic.
	Opcode   Op     // Opcode byte.
	Arity    int    // Number of arguments, 0 or 1.
}

// Registry maps mnemonics and opcodes to operations.
type Registry struct {
	byName map[string]*Operation
	byCode [256]*Operation
}

// NewRegistry creates an empty registry.
func NewRegistry() (reg *Registry) {
	reg = &Registry{
		byName: make(map[string]*Operation),
	}

	return
}

// Register adds an operation. Both the mnemonic and the opcode must be unused.
func (reg *Registry) Register(mnemonic string, opcode Op, arity int) (err error) {
	if arity < 0 || arity > 1 {
		return ErrInvalidArgument
	}

	if _, ok := reg.byName[mnemonic]; ok {
		return ErrDuplicateDefinition
	}

	if reg.byCode[opcode] != nil {
		return ErrDuplicateDefinition
	}

	oper := &Operation{Mnemonic: mnemonic, Opcode: opcode, Arity: arity}
	reg.byName[mnemonic] = oper
	reg.byCode[opcode] = oper

	return
}

// LookupName returns the operation for an upper-case mnemonic.
func (reg *Registry) LookupName(mnemonic string) (oper Operation, err error) {
	found, ok := reg.byName[mnemonic]
	if !ok {
		err = ErrMnemonic(mnemonic)
		return
	}

	oper = *found
	return
}

// LookupOpcode returns the operation for an opcode byte.
func (reg *Registry) LookupOpcode(code byte) (oper Operation, err error) {
	found := reg.byCode[code]
	if found == nil {
		err = ErrOpcode(code)
		return
	}

	oper = *found
	return
}

// Operations iterates the registered operations in opcode order.
func (reg *Registry) Operations() iter.Seq[Operation] {
	return func(yield func(Operation) bool) {
		for _, oper := range reg.byCode {
			if oper == nil {
				continue
			}
			if !yield(*oper) {
				return
			}
		}
	}
}

// Mnemonics returns the sorted list of registered mnemonics.
func (reg *Registry) Mnemonics() (names []string) {
	for name := range reg.byName {
		names = append(names, name)
	}
	slices.Sort(names)

	return
}

// standardOperations is the na32 instruction set.
var standardOperations = []Operation{
	{"NOOP", OP_NOOP, 0},
	{"ADD", OP_ADD, 1},
	{"SUB", OP_SUB, 1},
	{"MUL", OP_MUL, 1},
	{"DIV", OP_DIV, 1},
	{"INC", OP_INC, 0},
	{"DEC", OP_DEC, 0},
	{"AND", OP_AND, 1},
	{"OR", OP_OR, 1},
	{"BSL", OP_BSL, 1},
	{"BSR", OP_BSR, 1},
	{"LDA", OP_LDA, 1},
	{"LDB", OP_LDB, 1},
	{"MVA", OP_MVA, 1},
	{"MVB", OP_MVB, 1},
	{"JMP", OP_JMP, 1},
	{"JEZ", OP_JEZ, 1},
	{"JNZ", OP_JNZ, 1},
	{"JEQ", OP_JEQ, 1},
	{"CALL", OP_CALL, 1},
	{"RET", OP_RET, 0},
	{"OUT", OP_OUT, 1},
	{"OUTI", OP_OUTI, 1},
	{"MEM", OP_MEM, 0},
	{"REG", OP_REG, 0},
}

// NewStandardRegistry creates a registry holding the na32 instruction set.
func NewStandardRegistry() (reg *Registry) {
	reg = NewRegistry()
	for _, oper := range standardOperations {
		err := reg.Register(oper.Mnemonic, oper.Opcode, oper.Arity)
		if err != nil {
			panic(f("registry: %v %v", oper.Mnemonic, err))
		}
	}

	return
}

// DefaultRegistry is the na32 instruction set, used when no registry is given.
var DefaultRegistry = NewStandardRegistry()

// mustLookup returns a standard operation by opcode.
func mustLookup(op Op) Operation {
	oper, err := DefaultRegistry.LookupOpcode(byte(op))
	if err != nil {
		panic(err)
	}
	return oper
}
