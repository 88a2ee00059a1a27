package cpu

import (
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/na32/io"
)

// Console is the text output of the CPU.
type Console io.Console

const (
	MEMORY_SIZE = 65535 // Default number of memory cells.
)

// Cpu is the na32 machine state.
type Cpu struct {
	Verbose bool    // Set to enable verbose logging.
	Console Console // Receives OUT and OUTI; output is discarded if nil.

	Pc        int     // Program counter, an index into the Program.
	RegisterA int32   // Register A (EAX).
	RegisterB int32   // Register B (EBX).
	Memory    []int32 // Flat memory.
	Stack     Stack   // Call stack.

	RegisterIndirect bool // Next operand names a register.
	MemoryIndirect   bool // Next operand names a memory cell.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with the given memory and stack sizes.
// Non-positive sizes select MEMORY_SIZE and STACK_LIMIT.
func NewCpu(memorySize, stackSize int) (cpu *Cpu) {
	if memorySize <= 0 {
		memorySize = MEMORY_SIZE
	}
	if stackSize <= 0 {
		stackSize = STACK_LIMIT
	}

	cpu = &Cpu{
		Memory: make([]int32, memorySize),
		Stack:  Stack{Limit: stackSize},
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "eax", "ebx", "flags", "stack"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%d", cpu.Pc)
		case "eax":
			strval = fmt.Sprintf("%08X (%d)", uint32(cpu.RegisterA), cpu.RegisterA)
		case "ebx":
			strval = fmt.Sprintf("%08X (%d)", uint32(cpu.RegisterB), cpu.RegisterB)
		case "flags":
			strval = "--"
			if cpu.MemoryIndirect {
				strval = "M" + strval[1:]
			}
			if cpu.RegisterIndirect {
				strval = strval[:1] + "R"
			}
		case "stack":
			val, ok := cpu.Stack.Peek()
			if ok {
				strval = fmt.Sprintf("%d [%d/%d]", val, cpu.Stack.Depth(), cpu.Stack.limit())
			} else {
				strval = "----"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, memory, and stack.
// - Clears both addressing flags.
// - Zeros the program counter and tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Infof("cpu: reset")
	}

	if len(cpu.Memory) == 0 {
		cpu.Memory = make([]int32, MEMORY_SIZE)
	}

	cpu.Pc = 0
	cpu.RegisterA = 0
	cpu.RegisterB = 0
	clear(cpu.Memory)
	cpu.Stack.Reset()
	cpu.RegisterIndirect = false
	cpu.MemoryIndirect = false
	cpu.Ticks = 0
}

// Register returns the current value of a register.
func (cpu *Cpu) Register(reg Register) (value int32, err error) {
	switch reg {
	case REG_A:
		value = cpu.RegisterA
	case REG_B:
		value = cpu.RegisterB
	case REG_PP:
		value = int32(cpu.Pc)
	default:
		err = ErrRegisterInvalid
	}

	return
}

// Load returns the memory cell at index.
func (cpu *Cpu) Load(index int32) (value int32, err error) {
	if index < 0 || int(index) >= len(cpu.Memory) {
		err = ErrMemoryRange
		return
	}

	value = cpu.Memory[index]
	return
}

// Store sets the memory cell at index.
func (cpu *Cpu) Store(index int32, value int32) (err error) {
	if index < 0 || int(index) >= len(cpu.Memory) {
		err = ErrMemoryRange
		return
	}

	cpu.Memory[index] = value
	return
}

// Resolve applies the pending addressing modes to a raw operand, clearing
// each flag as it is used. A register-indirect operand is replaced by the
// register's value first; a memory-indirect operand is then replaced by the
// memory cell it indexes.
func (cpu *Cpu) Resolve(raw int32) (value int32, err error) {
	value = raw

	if cpu.RegisterIndirect {
		cpu.RegisterIndirect = false
		value, err = cpu.Register(Register(value))
		if err != nil {
			return
		}
	}

	if cpu.MemoryIndirect {
		cpu.MemoryIndirect = false
		value, err = cpu.Load(value)
		if err != nil {
			return
		}
	}

	return
}

// Tick executes the instruction at the program counter. done is set once
// the program counter is past the end of the program.
func (cpu *Cpu) Tick(prog *Program) (done bool, err error) {
	if cpu.Pc >= prog.Len() {
		done = true
		return
	}

	if cpu.Pc < 0 {
		err = Fault(ErrPcInvalid)
		return
	}

	err = cpu.Execute(prog.Instructions[cpu.Pc])

	return
}

// Execute executes a single instruction. Every error returned is a
// runtime fault.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	defer func() {
		if err != nil {
			err = Fault(err)
		}
	}()

	if cpu.Verbose {
		log.Infof("%04d: %v", cpu.Pc, ins)
	}

	cpu.Ticks += 1

	next_pc := cpu.Pc + 1

	var value int32

	// Every operation with an argument reads it through Resolve, except
	// CALL which pushes before it resolves.
	if ins.Arity > 0 && ins.Opcode != OP_CALL {
		value, err = cpu.Resolve(ins.Argument)
		if err != nil {
			return
		}
	}

	switch ins.Opcode {
	case OP_NOOP:
		// pass
	case OP_ADD:
		cpu.RegisterA += value
	case OP_SUB:
		cpu.RegisterA -= value
	case OP_MUL:
		cpu.RegisterA *= value
	case OP_DIV:
		if value == 0 {
			err = ErrDivideByZero
			return
		}
		if value == -1 && cpu.RegisterA == math.MinInt32 {
			err = ErrDivideOverflow
			return
		}
		cpu.RegisterA /= value
	case OP_INC:
		cpu.RegisterA++
	case OP_DEC:
		cpu.RegisterA--
	case OP_AND:
		cpu.RegisterA &= value
	case OP_OR:
		cpu.RegisterA |= value
	case OP_BSL:
		cpu.RegisterA <<= uint32(value) & 0x1f
	case OP_BSR:
		cpu.RegisterA >>= uint32(value) & 0x1f
	case OP_LDA:
		cpu.RegisterA = value
	case OP_LDB:
		cpu.RegisterB = value
	case OP_MVA:
		err = cpu.Store(value, cpu.RegisterA)
	case OP_MVB:
		err = cpu.Store(value, cpu.RegisterB)
	case OP_JMP:
		next_pc = int(value)
	case OP_JEZ:
		if cpu.RegisterA == 0 {
			next_pc = int(value)
		}
	case OP_JNZ:
		if cpu.RegisterA != 0 {
			next_pc = int(value)
		}
	case OP_JEQ:
		if cpu.RegisterA == cpu.RegisterB {
			next_pc = int(value)
		}
	case OP_CALL:
		if !cpu.Stack.Push(int32(cpu.Pc)) {
			err = ErrStackFull
			return
		}
		value, err = cpu.Resolve(ins.Argument)
		if err != nil {
			return
		}
		next_pc = int(value)
	case OP_RET:
		ret, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackEmpty
			return
		}
		next_pc = int(ret) + 1
	case OP_OUT:
		if cpu.Console != nil {
			err = cpu.Console.PutChar(value)
		}
	case OP_OUTI:
		if cpu.Console != nil {
			err = cpu.Console.PutInt(value)
		}
	case OP_MEM:
		cpu.MemoryIndirect = true
	case OP_REG:
		cpu.RegisterIndirect = true
	default:
		err = ErrOpcode(ins.Opcode)
		return
	}

	if err != nil {
		return
	}

	cpu.Pc = next_pc

	return
}
