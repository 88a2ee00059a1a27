// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	stdio "io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/na32/cpu"
	"github.com/ezrec/na32/io"
)

const (
	RESULT_OK    = byte(0x00) // Program ran past its last instruction.
	RESULT_FAULT = byte(0xff) // Program stopped on a runtime fault.
)

// Config sizes the machine.
type Config struct {
	MemorySize int // Number of memory cells.
	StackSize  int // Maximum call depth.
	MaxSteps   int // Instructions before a run is aborted; 0 for no limit.
}

// DefaultConfig returns the standard machine configuration.
func DefaultConfig() Config {
	return Config{
		MemorySize: cpu.MEMORY_SIZE,
		StackSize:  cpu.STACK_LIMIT,
	}
}

// Emulator state. CPU + loaded program + console.
type Emulator struct {
	Verbose  bool          // If set, enables verbose logging.
	*cpu.Cpu               // Reference to the CPU simulation.
	Program  *cpu.Program  // Reference to the currently loaded program.
	Registry *cpu.Registry // Instruction set; cpu.DefaultRegistry if nil.
	Config   Config        // Machine configuration.

	Terminal io.Terminal // Console for OUT and OUTI; discards output until set.
}

// NewEmulator creates a new emulator.
func NewEmulator(config Config) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(config.MemorySize, config.StackSize),
		Program: &cpu.Program{},
		Config:  config,
	}

	emu.Terminal.Output = stdio.Discard
	emu.Cpu.Console = &emu.Terminal

	return
}

// Assembler returns an assembler for the emulator's instruction set, with
// the machine sizes predefined for $(...) expressions.
func (emu *Emulator) Assembler() (asm *cpu.Assembler) {
	asm = &cpu.Assembler{
		Verbose:  emu.Verbose,
		Registry: emu.Registry,
	}
	asm.Predefine("MEMORY_SIZE", strconv.Itoa(len(emu.Cpu.Memory)))
	asm.Predefine("STACK_SIZE", strconv.Itoa(emu.Cpu.Stack.Limit))

	return
}

// LoadText assembles source text and loads it. On failure the loaded
// program is empty.
func (emu *Emulator) LoadText(text string) (prog *cpu.Program, err error) {
	prog, err = emu.Assembler().ParseString(text)
	if err != nil {
		emu.Program = &cpu.Program{}
		return
	}

	emu.Program = prog
	return
}

// LoadBytes decodes a binary program and loads it. On failure the loaded
// program is empty.
func (emu *Emulator) LoadBytes(data []byte) (prog *cpu.Program, err error) {
	prog, err = cpu.Decode(emu.Registry, data)
	if err != nil {
		emu.Program = &cpu.Program{}
		return
	}

	emu.Program = prog
	return
}

// Bytes returns the binary encoding of the loaded program.
func (emu *Emulator) Bytes() []byte {
	return emu.Program.Binary()
}

// Text returns the disassembly of the loaded program.
func (emu *Emulator) Text() string {
	return emu.Program.String()
}

// Reset the machine state. Nothing survives from a previous run.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Terminal.Rewind()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line of the current instruction, if known.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Cpu.Pc)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Config.MaxSteps > 0 && emu.Cpu.Ticks >= emu.Config.MaxSteps &&
		emu.Cpu.Pc < emu.Program.Len() {
		err = cpu.Fault(cpu.ErrStepLimit)
		return
	}

	done, err = emu.Cpu.Tick(emu.Program)

	return
}

// Run resets the machine and runs the loaded program until it halts.
// Console output already emitted is kept when a fault stops the run.
func (emu *Emulator) Run() (result byte, err error) {
	emu.Reset()

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			log.Errorf("na32: %v", err)
			if emu.Verbose {
				log.Infof("na32: state\n%v", emu.Cpu)
			}
			result = RESULT_FAULT
			return
		}
	}

	if emu.Verbose {
		log.Infof("na32: halted after %d ticks", emu.Ticks())
	}

	result = RESULT_OK
	return
}

// Execute loads and runs prog. A nil prog runs as the empty program.
func (emu *Emulator) Execute(prog *cpu.Program) (result byte, err error) {
	if prog == nil {
		prog = &cpu.Program{}
	}
	emu.Program = prog
	return emu.Run()
}
