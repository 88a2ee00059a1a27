// Package io provides the console side effects of the na32 machine.
//
// The CPU never writes to an operating system stream directly: OUT and OUTI
// emit through a Console, and the host decides where the text goes.
package io

// Console receives the text emissions of a running program.
type Console interface {
	// PutChar emits value as a single character.
	PutChar(value int32) error
	// PutInt emits value as a decimal integer followed by a newline.
	PutInt(value int32) error
}
