package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestTerminal_PutChar(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := NewTerminal(out)

	for _, r := range "Hi!" {
		assert.NoError(tc.PutChar(int32(r)))
	}
	assert.NoError(tc.PutChar(0x263a))

	assert.Equal("Hi!☺", out.String())
	assert.Equal(6, tc.Written())
}

func TestTerminal_PutChar_Invalid(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := NewTerminal(out)

	assert.NoError(tc.PutChar(-1))
	assert.NoError(tc.PutChar(0xd800))
	assert.Equal("��", out.String())
}

func TestTerminal_PutInt(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tc := NewTerminal(out)

	assert.NoError(tc.PutInt(5))
	assert.NoError(tc.PutInt(-2147483648))
	assert.NoError(tc.PutInt(1234567))

	assert.Equal("5\n-2147483648\n1234567\n", out.String())
}

func TestTerminal_Rewind(t *testing.T) {
	assert := assert.New(t)

	tc := NewTerminal(&bytes.Buffer{})
	assert.NoError(tc.PutInt(42))
	assert.Equal(3, tc.Written())

	tc.Rewind()
	assert.Equal(0, tc.Written())
}

func TestTerminal_Errors(t *testing.T) {
	assert := assert.New(t)

	tc := &Terminal{}
	assert.ErrorIs(tc.PutChar('a'), ErrConsoleClosed)

	tc = NewTerminal(failWriter{})
	assert.EqualError(tc.PutInt(1), "broken pipe")
}
