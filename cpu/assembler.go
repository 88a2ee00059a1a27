// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// MAX_LINE is the longest source line the assembler accepts.
const MAX_LINE = 16 << 20

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

var (
	identRe = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*$`)
	charRe  = regexp.MustCompile(`'\\?[^']'`)
	parenRe = regexp.MustCompile(`\$\(([^()]|\([^()]*\))*\)`)
)

// Assembler is a single pass assembler for the na32 instruction set.
//
// Source text is case-insensitive and whitespace-insensitive. A token
// starting with ':' declares a label at the current instruction position;
// any other token is a mnemonic, followed by its argument token if the
// operation has one. Arguments are labels, decimal or 0x-prefixed hex
// numbers, or register names (EAX, EBX, PP) for register-indirect access,
// optionally prefixed with '#' for memory-indirect access.
type Assembler struct {
	Verbose  bool      // If set, verbosely logs the assembler actions.
	Registry *Registry // Instruction set; DefaultRegistry if nil.

	Instructions []Instruction    // Generated instructions.
	Lines        []int            // Source line of each generated instruction.
	Label        map[string]int   // Map of labels to instruction positions.
	Unresolved   map[string][]int // Map of forward referenced labels to the instructions to patch.
	Equate       map[string]string

	predefine map[string]string
	awaiting  *Operation // Operation waiting for its argument token.
	lineNo    int
}

// Predefine defines a new equate for $(...) expressions, or redefines an
// existing one.
func (asm *Assembler) Predefine(equ string, value string) {
	equ = strings.ToUpper(equ)
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) registry() *Registry {
	if asm.Registry == nil {
		return DefaultRegistry
	}
	return asm.Registry
}

// reset prepares the assembler for a new source.
func (asm *Assembler) reset() {
	asm.Instructions = nil
	asm.Lines = nil
	asm.Label = make(map[string]int, 16)
	asm.Unresolved = make(map[string][]int)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}
	asm.awaiting = nil
	asm.lineNo = 0
}

// ParseString assembles source text.
func (asm *Assembler) ParseString(text string) (prog *Program, err error) {
	return asm.Parse(strings.NewReader(text))
}

// Parse assembles an input stream into a Program. On any error the
// partially generated instructions are discarded.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MAX_LINE)

	asm.reset()

	defer func() {
		if err != nil {
			asm.Instructions = nil
			asm.Lines = nil
			prog = nil
		}
	}()

	for scanner.Scan() {
		asm.lineNo += 1
		text := scanner.Text()

		var words []string
		words, err = asm.parseLine(text)
		if err != nil {
			err = &ErrSyntax{LineNo: asm.lineNo, Token: strings.TrimSpace(text), Err: err}
			return
		}

		for _, word := range words {
			if asm.Verbose {
				log.Infof("asm: %v: %v", asm.lineNo, word)
			}
			err = asm.parseWord(word)
			if err != nil {
				err = &ErrSyntax{LineNo: asm.lineNo, Token: word, Err: err}
				return
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if asm.awaiting != nil {
		err = &ErrSyntax{
			LineNo: asm.lineNo,
			Token:  asm.awaiting.Mnemonic,
			Err:    errors.Join(ErrInvalidArgument, ErrOpcodeValueMissing),
		}
		return
	}

	if len(asm.Unresolved) > 0 {
		labels := slices.Sorted(maps.Keys(asm.Unresolved))
		err = ErrUnresolved(labels)
		return
	}

	prog = &Program{
		Instructions: slices.Clone(asm.Instructions),
		Lines:        slices.Clone(asm.Lines),
	}

	return
}

// parseLine expands character literals and $(...) expressions, and
// splits a line of source into upper-case words.
func (asm *Assembler) parseLine(line string) (words []string, err error) {
	asm.Equate["LINENO"] = fmt.Sprintf("%v", asm.lineNo)

	// Do 'x' evaluations
	line = charRe.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "e":
				str = "\033"
			case "0":
				str = "\000"
			default:
				return word
			}
		}
		return fmt.Sprintf(" %d ", []rune(str)[0])
	})

	line, _, _ = strings.Cut(line, ";")
	line = strings.ToUpper(line)

	// Do $() evaluations
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf(" %d ", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int32, err error) {
	thread := starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		v64, perr := strconv.ParseInt(str, 0, 64)
		if perr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	for key, pos := range asm.Label {
		pred[key] = starlark.MakeInt(pos)
	}

	prog := "rc = " + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = errors.Join(ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 != int64(int32(st_int64)) {
		err = ErrParseExpression(expr)
		return
	}

	value = int32(st_int64)
	return
}

// currentIp gets the position of the next generated instruction.
func (asm *Assembler) currentIp() int {
	return len(asm.Instructions)
}

// emit appends an instruction.
func (asm *Assembler) emit(oper Operation, arg int32) {
	asm.Instructions = append(asm.Instructions, Instruction{Operation: oper, Argument: arg})
	asm.Lines = append(asm.Lines, asm.lineNo)
}

// parseWord consumes a single source word.
func (asm *Assembler) parseWord(word string) (err error) {
	if asm.awaiting != nil {
		oper := *asm.awaiting
		asm.awaiting = nil

		var arg int32
		arg, err = asm.argument(word)
		if err != nil {
			return
		}
		asm.emit(oper, arg)
		return
	}

	if strings.HasPrefix(word, ":") {
		return asm.declare(word[1:])
	}

	oper, err := asm.registry().LookupName(word)
	if err != nil {
		return
	}

	if oper.Arity == 0 {
		asm.emit(oper, 0)
		return
	}

	asm.awaiting = &oper

	return
}

// declare defines a label at the current position and patches any
// instructions waiting on it.
func (asm *Assembler) declare(label string) (err error) {
	if !identRe.MatchString(label) {
		err = errors.Join(ErrInvalidArgument, ErrLabelInvalid)
		return
	}

	if _, ok := asm.Label[label]; ok {
		err = ErrLabelDuplicate
		return
	}

	ip := asm.currentIp()
	asm.Label[label] = ip

	for _, index := range asm.Unresolved[label] {
		asm.Instructions[index].Argument = int32(ip)
	}
	delete(asm.Unresolved, label)

	return
}

// argument resolves an argument word, emitting any MEM and REG
// pseudo-instructions it implies.
func (asm *Assembler) argument(word string) (arg int32, err error) {
	if ip, ok := asm.Label[word]; ok {
		arg = int32(ip)
		return
	}

	if strings.HasPrefix(word, "#") {
		asm.emit(mustLookup(OP_MEM), 0)
		word = word[1:]
		if ip, ok := asm.Label[word]; ok {
			arg = int32(ip)
			return
		}
	}

	if strings.HasPrefix(word, "0X") {
		var v64 uint64
		v64, err = strconv.ParseUint(word[2:], 16, 32)
		if err != nil {
			err = ErrParseNumber(word)
			return
		}
		arg = int32(uint32(v64))
		return
	}

	if reg, ok := LookupRegister(word); ok {
		asm.emit(mustLookup(OP_REG), 0)
		arg = int32(reg)
		return
	}

	if identRe.MatchString(word) {
		ip := asm.currentIp()
		asm.Unresolved[word] = append(asm.Unresolved[word], ip)
		arg = int32(ip)
		return
	}

	v64, err := strconv.ParseInt(word, 10, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	arg = int32(v64)
	return
}
