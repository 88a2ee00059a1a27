package cpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"iter"
	"strings"
)

// ARGUMENT_SIZE is the encoded size of an instruction argument in bytes.
const ARGUMENT_SIZE = 4

// Instruction is a single program element.
type Instruction struct {
	Operation
	Argument int32 // Meaningful only if Arity is 1.
}

// MakeInstruction creates an instruction for a standard opcode.
func MakeInstruction(op Op, arg ...int32) (ins Instruction) {
	ins.Operation = mustLookup(op)
	if ins.Arity > 0 && len(arg) > 0 {
		ins.Argument = arg[0]
	}
	return
}

// String returns the assembly text of the instruction, without any
// addressing-mode sugar.
func (ins Instruction) String() string {
	if ins.Arity == 0 {
		return ins.Mnemonic
	}

	return fmt.Sprintf("%v %d", ins.Mnemonic, ins.Argument)
}

// Program is an ordered sequence of instructions, indexed by program counter.
type Program struct {
	Instructions []Instruction
	Lines        []int // Source line per instruction, if assembled from text.
}

// Len returns the number of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// LineNo returns the source line of the instruction at pc, or 0 if unknown.
func (prog *Program) LineNo(pc int) int {
	if pc < 0 || pc >= len(prog.Lines) {
		return 0
	}

	return prog.Lines[pc]
}

// Codes iterates the instructions with their program counter.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for pc, ins := range prog.Instructions {
			if !yield(pc, ins) {
				return
			}
		}
	}
}

// Binary encodes the program. Each instruction is its opcode byte, followed
// by a little-endian int32 argument if its arity is 1.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, len(prog.Instructions)*(1+ARGUMENT_SIZE))
	for _, ins := range prog.Instructions {
		bins = append(bins, byte(ins.Opcode))
		if ins.Arity > 0 {
			bins = binary.LittleEndian.AppendUint32(bins, uint32(ins.Argument))
		}
	}

	return
}

// Decode parses an encoded program, using reg (or DefaultRegistry if nil)
// to find the arity of each opcode.
func Decode(reg *Registry, data []byte) (prog *Program, err error) {
	if reg == nil {
		reg = DefaultRegistry
	}

	var instructions []Instruction
	for offset := 0; offset < len(data); {
		var oper Operation
		oper, err = reg.LookupOpcode(data[offset])
		if err != nil {
			err = &ErrDecode{Offset: offset, Err: err}
			return
		}
		ins := Instruction{Operation: oper}
		offset++

		if oper.Arity > 0 {
			if len(data)-offset < ARGUMENT_SIZE {
				err = &ErrDecode{Offset: offset - 1, Err: ErrTruncatedStream}
				return
			}
			ins.Argument = int32(binary.LittleEndian.Uint32(data[offset:]))
			offset += ARGUMENT_SIZE
		}

		instructions = append(instructions, ins)
	}

	prog = &Program{Instructions: instructions}

	return
}

// String disassembles the program into text that assembles back to the
// identical instruction sequence, one instruction per line.
//
// A MEM, REG, or MEM REG prefix directly before an instruction with an
// argument is folded into it as '#arg', 'NAME', or '#NAME'. Any other
// MEM or REG is printed on its own line.
func (prog *Program) String() string {
	var buf bytes.Buffer

	var pending []Instruction

	flush := func() {
		for _, ins := range pending {
			buf.WriteString(ins.Mnemonic)
			buf.WriteByte('\n')
		}
		pending = pending[:0]
	}

	for _, ins := range prog.Instructions {
		switch ins.Opcode {
		case OP_MEM, OP_REG:
			pending = append(pending, ins)
			continue
		}

		if ins.Arity == 0 {
			flush()
			buf.WriteString(ins.Mnemonic)
			buf.WriteByte('\n')
			continue
		}

		argument, ok := renderArgument(pending, ins.Argument)
		if !ok {
			flush()
			argument = fmt.Sprintf("%d", ins.Argument)
		}
		pending = pending[:0]

		fmt.Fprintf(&buf, "%v %v\n", ins.Mnemonic, argument)
	}

	flush()

	return buf.String()
}

// renderArgument folds a canonical addressing prefix into the argument text.
func renderArgument(prefix []Instruction, arg int32) (text string, ok bool) {
	var mem, reg bool

	switch len(prefix) {
	case 0:
	case 1:
		mem = prefix[0].Opcode == OP_MEM
		reg = prefix[0].Opcode == OP_REG
	case 2:
		if prefix[0].Opcode != OP_MEM || prefix[1].Opcode != OP_REG {
			return
		}
		mem, reg = true, true
	default:
		return
	}

	text = fmt.Sprintf("%d", arg)
	if reg {
		if !Register(arg).Valid() {
			return
		}
		text = Register(arg).String()
	}
	if mem {
		text = "#" + text
	}

	return text, true
}

// Text returns the disassembly as lines, for display.
func (prog *Program) Text() (lines []string) {
	text := strings.TrimSuffix(prog.String(), "\n")
	if len(text) == 0 {
		return
	}

	return strings.Split(text, "\n")
}
