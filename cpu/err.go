package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ezrec/na32/translate"
)

var f = translate.From

var (
	// Registry errors
	ErrUnknownInstruction  = errors.New(f("unknown instruction"))
	ErrDuplicateDefinition = errors.New(f("duplicate definition"))

	// Assembler errors
	ErrInvalidArgument    = errors.New(f("invalid argument"))
	ErrUnresolvedLabels   = errors.New(f("unresolved labels"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))

	// Decode errors
	ErrTruncatedStream = errors.New(f("truncated stream"))

	// Runtime errors
	ErrRuntimeFault    = errors.New(f("runtime fault"))
	ErrDivideByZero    = errors.New(f("divide by zero"))
	ErrDivideOverflow  = errors.New(f("divide overflow"))
	ErrMemoryRange     = errors.New(f("memory index out of range"))
	ErrStackEmpty      = errors.New(f("stack empty"))
	ErrStackFull       = errors.New(f("stack full"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrPcInvalid       = errors.New(f("program counter invalid"))
	ErrStepLimit       = errors.New(f("step limit reached"))
)

// Fault marks err as a runtime fault.
func Fault(err error) error {
	return fmt.Errorf("%w: %w", ErrRuntimeFault, err)
}

// ErrSyntax locates an assembly error in the source text.
type ErrSyntax struct {
	LineNo int
	Token  string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrUnresolved lists the labels still referenced but never declared.
type ErrUnresolved []string

func (eu ErrUnresolved) Error() string {
	return f("unresolved labels: %v", strings.Join(eu, ", "))
}

func (eu ErrUnresolved) Is(err error) bool {
	return err == ErrUnresolvedLabels
}

// ErrOpcode reports an opcode byte that has no registered operation.
type ErrOpcode byte

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x", byte(eo))
}

func (eo ErrOpcode) Is(err error) bool {
	return err == ErrUnknownInstruction
}

// ErrMnemonic reports a mnemonic that has no registered operation.
type ErrMnemonic string

func (em ErrMnemonic) Error() string {
	return f("'%v' is not an operation", string(em))
}

func (em ErrMnemonic) Is(err error) bool {
	return err == ErrUnknownInstruction
}

// ErrParseNumber reports an argument that is neither a number, a label,
// nor a register.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number, label or register", string(err))
}

func (err ErrParseNumber) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ErrParseExpression reports a $(...) expression that did not evaluate to
// a 32-bit integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrParseExpression) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ErrDecode locates a binary decode error in the byte stream.
type ErrDecode struct {
	Offset int
	Err    error
}

func (err *ErrDecode) Error() string {
	return f("offset %d: %v", err.Offset, err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
