package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x30, 0x05, 0x00, 0x00, 0x00, 0xf1, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xf2, 0xf3, 0x30, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x44, 0x03, 0x00, 0x00, 0x00, 0x45})
	f.Add([]byte{0x11})
	f.Add([]byte{0x40, 0xff})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		prog, err := Decode(nil, data)
		if err != nil {
			assert.Nil(prog)
			return
		}

		// Encoding is canonical.
		assert.Equal(data, prog.Binary())

		// Disassembly re-assembles to the same program.
		asm := &Assembler{}
		again, err := asm.ParseString(prog.String())
		if assert.NoError(err) {
			assert.Equal(prog.Instructions, again.Instructions)
		}
	})
}

func FuzzExecute(f *testing.F) {
	f.Add([]byte{0x30, 0x05, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xf2, 0xf3, 0x30, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x45})
	f.Add([]byte{0x44, 0x00, 0x00, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		prog, err := Decode(nil, data)
		if err != nil {
			return
		}

		cpu := NewCpu(64, 4)
		cpu.Reset()

		// Any error must be a runtime fault, never a panic.
		for range 256 {
			done, err := cpu.Tick(prog)
			if err != nil {
				assert.ErrorIs(t, err, ErrRuntimeFault)
				return
			}
			if done {
				return
			}
		}
	})
}
