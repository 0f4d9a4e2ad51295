package frame

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUFrameUniformSource is the canonical WGSL declaration of the FrameUniform struct.
// Shaders that consume the per-frame uniform should be concatenated with this source so the
// WGSL-side layout always matches the Go-side Marshal output.
//
//go:embed assets/frame_uniform.wgsl
var GPUFrameUniformSource string

// GPUFrameUniform is the per-frame parameter block uploaded to the GPU each tick.
//
// The field order and explicit padding match WGSL std140-style alignment rules: vec2 fields
// align to 8 bytes and the vec3 camera position aligns to 16 bytes, giving a fixed 48-byte
// record. Marshal produces the exact byte layout; do not reorder fields without updating both.
type GPUFrameUniform struct {
	Resolution     [2]float32 // offset 0: surface size in pixels
	Time           float32    // offset 8: seconds since startup
	Pad0           float32    // offset 12
	Pointer        [2]float32 // offset 16: normalized pointer, origin bottom-left
	Pad1           [2]float32 // offset 24
	CameraPosition [3]float32 // offset 32: world-space camera position
	Pad2           float32    // offset 44
}

// Size returns the size of the GPUFrameUniform struct in bytes.
//
// Returns:
//   - uint64: the size of the struct in bytes
func (u *GPUFrameUniform) Size() uint64 {
	return uint64(unsafe.Sizeof(*u))
}

// Marshal converts the GPUFrameUniform struct into a little-endian byte slice suitable for
// writing directly into the GPU uniform buffer.
//
// Returns:
//   - []byte: the byte slice representation of the struct
func (u *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, u.Size())

	putF32 := func(off int, v float32) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
	}

	putF32(0, u.Resolution[0])
	putF32(4, u.Resolution[1])
	putF32(8, u.Time)
	putF32(12, u.Pad0)
	putF32(16, u.Pointer[0])
	putF32(20, u.Pointer[1])
	putF32(24, u.Pad1[0])
	putF32(28, u.Pad1[1])
	putF32(32, u.CameraPosition[0])
	putF32(36, u.CameraPosition[1])
	putF32(40, u.CameraPosition[2])
	putF32(44, u.Pad2)

	return buf
}
