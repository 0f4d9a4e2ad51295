package frame

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32At(t *testing.T, buf []byte, off int) float32 {
	t.Helper()
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

func TestGPUFrameUniformSize(t *testing.T) {
	u := &GPUFrameUniform{}
	assert.Equal(t, uint64(48), u.Size())
	assert.Len(t, u.Marshal(), 48)
}

func TestGPUFrameUniformMarshalOffsets(t *testing.T) {
	u := &GPUFrameUniform{
		Resolution:     [2]float32{1024, 768},
		Time:           12.5,
		Pointer:        [2]float32{0.25, 0.75},
		CameraPosition: [3]float32{3, 2, -4},
	}
	buf := u.Marshal()
	require.Len(t, buf, 48)

	assert.Equal(t, float32(1024), f32At(t, buf, 0))
	assert.Equal(t, float32(768), f32At(t, buf, 4))
	assert.Equal(t, float32(12.5), f32At(t, buf, 8))
	assert.Equal(t, float32(0.25), f32At(t, buf, 16))
	assert.Equal(t, float32(0.75), f32At(t, buf, 20))
	assert.Equal(t, float32(3), f32At(t, buf, 32))
	assert.Equal(t, float32(2), f32At(t, buf, 36))
	assert.Equal(t, float32(-4), f32At(t, buf, 40))
}

func TestGPUFrameUniformPaddingZeroed(t *testing.T) {
	u := &GPUFrameUniform{
		Resolution:     [2]float32{800, 600},
		Time:           1,
		Pointer:        [2]float32{1, 1},
		CameraPosition: [3]float32{1, 1, 1},
	}
	buf := u.Marshal()

	for _, off := range []int{12, 24, 28, 44} {
		assert.Equal(t, float32(0), f32At(t, buf, off), "padding at offset %d", off)
	}
}

func TestBuildUniformFields(t *testing.T) {
	u := BuildUniform(5, 640, 480, 0.5, 0.5, 1, 2, 3)

	assert.Equal(t, [2]float32{640, 480}, u.Resolution)
	assert.Equal(t, float32(5), u.Time)
	assert.Equal(t, [2]float32{0.5, 0.5}, u.Pointer)
	assert.Equal(t, [3]float32{1, 2, 3}, u.CameraPosition)
	assert.Zero(t, u.Pad0)
	assert.Zero(t, u.Pad1)
	assert.Zero(t, u.Pad2)
}
