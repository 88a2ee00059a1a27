package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x12345678))
	assert.False(s.Empty())
	assert.Equal(1, s.Depth())
	assert.Equal(int32(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(0x12345678)
	s.Push(-7)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(int32(-7), val)
	assert.Equal(1, s.Depth())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(int32(0x12345678), val)
	assert.Equal(0, s.Depth())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(int32(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(int32(2), val)
	assert.Equal(2, s.Depth())
}

func TestStack_Full(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	for i := 0; i < STACK_LIMIT; i++ {
		assert.False(s.Full())
		assert.True(s.Push(int32(i)))
	}

	assert.True(s.Full())
	assert.False(s.Push(99))
	assert.Equal(STACK_LIMIT, s.Depth())

	val, _ := s.Peek()
	assert.Equal(int32(STACK_LIMIT-1), val)
}

func TestStack_Limit(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{Limit: 2}
	assert.True(s.Push(1))
	assert.True(s.Push(2))
	assert.False(s.Push(3))
	assert.True(s.Full())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(1)
	s.Push(2)

	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Depth())

	s.Reset()
	assert.True(s.Empty())
}
