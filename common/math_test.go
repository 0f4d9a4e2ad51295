package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
	assert.Equal(t, float32(0), Clamp(-3, 0, 1))
	assert.Equal(t, float32(1), Clamp(42, 0, 1))
	assert.Equal(t, float32(1), Clamp(1, 1, 20))
	assert.Equal(t, float32(20), Clamp(20, 1, 20))
}

func TestSliceToBytes(t *testing.T) {
	assert.Nil(t, SliceToBytes([]float32(nil)))

	data := []float32{-1, -1, 1, -1, -1, 1}
	raw := SliceToBytes(data)
	assert.Len(t, raw, len(data)*4)

	// Little-endian float32(-1) = 0x bf800000
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0xbf}, raw[:4])
}
