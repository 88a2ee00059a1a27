package io

import (
	"io"
	"strconv"
	"unicode/utf8"
)

// Terminal is a Console that writes UTF-8 text to an io.Writer.
type Terminal struct {
	Output io.Writer

	written int
}

var _ Console = (*Terminal)(nil)

// NewTerminal creates a terminal writing to output.
func NewTerminal(output io.Writer) *Terminal {
	return &Terminal{Output: output}
}

// Written returns the number of bytes emitted since the last Rewind.
func (tc *Terminal) Written() int {
	return tc.written
}

// Rewind resets the output counter.
func (tc *Terminal) Rewind() {
	tc.written = 0
}

// PutChar writes value as a code point. Values that are not valid code
// points are written as utf8.RuneError.
func (tc *Terminal) PutChar(value int32) (err error) {
	r := rune(value)
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}

	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)

	return tc.write(buf[:n])
}

// PutInt writes value in base 10 followed by a newline.
func (tc *Terminal) PutInt(value int32) (err error) {
	buf := strconv.AppendInt(nil, int64(value), 10)
	buf = append(buf, '\n')

	return tc.write(buf)
}

func (tc *Terminal) write(buf []byte) (err error) {
	if tc.Output == nil {
		return ErrConsoleClosed
	}

	n, err := tc.Output.Write(buf)
	tc.written += n

	return
}
