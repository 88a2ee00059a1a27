// Package cpu implements the na32 machine, its instruction set and its assembler.
//
// The machine has two 32-bit general-purpose registers (A and B), a flat
// memory of 32-bit cells, a bounded call stack, and a program counter that
// indexes the instruction sequence directly. Operands may be made
// register-indirect or memory-indirect by the REG and MEM pseudo-instructions,
// which set one-shot flags consumed by the next operand read.
//
// The assembler translates case-insensitive mnemonic text into a Program in a
// single pass, patching forward label references as labels are declared. A
// Program encodes to a compact byte stream of one opcode byte per instruction,
// followed by a 4-byte little-endian argument for instructions of arity one.
package cpu
