package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/jeffasante/raymarch-go/common"
	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/stretchr/testify/assert"
)

func TestPointerMoveCenter(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)

	h.PointerMove(512, 384, 1024, 768)

	x, y := h.Pointer()
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(0.5), y)
	assert.Equal(t, float32(0), cam.Angle())
}

func TestPointerMoveNormalizesAndFlipsY(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)

	// Top-left corner in window coordinates is (0, 1) normalized.
	h.PointerMove(0, 0, 800, 600)
	x, y := h.Pointer()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(1), y)
	assert.InDelta(t, -math32.Pi, cam.Angle(), 1e-6)

	// Bottom-right corner is (1, 0) normalized.
	h.PointerMove(800, 600, 800, 600)
	x, y = h.Pointer()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(0), y)
	assert.InDelta(t, math32.Pi, cam.Angle(), 1e-6)
}

func TestPointerMoveClampsOutOfBounds(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)

	// GLFW reports positions outside the client area during drags.
	h.PointerMove(-50, 700, 640, 480)
	x, y := h.Pointer()
	assert.Equal(t, float32(0), x)
	assert.Equal(t, float32(0), y)

	h.PointerMove(9999, -9999, 640, 480)
	x, y = h.Pointer()
	assert.Equal(t, float32(1), x)
	assert.Equal(t, float32(1), y)
}

func TestPointerMoveZeroSizeIsNoOp(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)
	cam.SetAngle(1.25)

	h.PointerMove(10, 10, 0, 0)
	h.PointerMove(10, 10, 640, 0)
	h.PointerMove(10, 10, 0, 480)

	x, y := h.Pointer()
	assert.Equal(t, float32(0.5), x)
	assert.Equal(t, float32(0.5), y)
	assert.Equal(t, float32(1.25), cam.Angle())
}

func TestScrollZoomsCamera(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)

	h.Scroll(1)
	assert.InDelta(t, 7.5, cam.Distance(), 1e-6)
	h.Scroll(-1)
	assert.InDelta(t, 8.0, cam.Distance(), 1e-6)
}

func TestResetKey(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam)
	cam.SetAngle(2)
	cam.Zoom(5)

	// Unrelated keys are ignored.
	h.KeyDown('W')
	assert.Equal(t, float32(2), cam.Angle())

	h.KeyDown(common.KeySpace)
	assert.Equal(t, float32(0), cam.Angle())
	assert.Equal(t, float32(5.0), cam.Distance())
}

func TestCustomResetKey(t *testing.T) {
	cam := camera.NewOrbitCamera()
	h := NewHandler(cam, WithResetKey('R'))
	cam.SetAngle(2)

	h.KeyDown(common.KeySpace)
	assert.Equal(t, float32(2), cam.Angle())

	h.KeyDown('R')
	assert.Equal(t, float32(0), cam.Angle())
}
