package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/input"
)

func TestScaleCursorPosIdentityAtScaleOne(t *testing.T) {
	x, y := scaleCursorPos(512, 384, 1024, 768, 1024, 768)

	assert.Equal(t, int32(512), x)
	assert.Equal(t, int32(384), y)
}

func TestScaleCursorPosConvertsHighDPI(t *testing.T) {
	// Content scale 2: a 1024x768 content area backs a 2048x1536 framebuffer.
	// The content-area center must land at the framebuffer center.
	x, y := scaleCursorPos(512, 384, 1024, 768, 2048, 1536)

	assert.Equal(t, int32(1024), x)
	assert.Equal(t, int32(768), y)

	// Content-area far edge reaches the framebuffer far edge.
	x, y = scaleCursorPos(1024, 768, 1024, 768, 2048, 1536)
	assert.Equal(t, int32(2048), x)
	assert.Equal(t, int32(1536), y)
}

func TestScaleCursorPosZeroContentSizeUnconverted(t *testing.T) {
	x, y := scaleCursorPos(512, 384, 0, 0, 2048, 1536)

	assert.Equal(t, int32(512), x)
	assert.Equal(t, int32(384), y)
}

func TestScaledCursorNormalizesFullRange(t *testing.T) {
	cam := camera.NewOrbitCamera()
	in := input.NewHandler(cam)

	// High-DPI center: without the conversion this would normalize to
	// (0.25, 0.75) and pin the angle at -pi/2.
	x, y := scaleCursorPos(512, 384, 1024, 768, 2048, 1536)
	in.PointerMove(x, y, 2048, 1536)

	px, py := in.Pointer()
	assert.InDelta(t, 0.5, px, 1e-6)
	assert.InDelta(t, 0.5, py, 1e-6)
	assert.InDelta(t, 0, cam.Angle(), 1e-6)

	// High-DPI right edge still covers the full angle range.
	x, y = scaleCursorPos(1024, 384, 1024, 768, 2048, 1536)
	in.PointerMove(x, y, 2048, 1536)
	assert.InDelta(t, 3.14159, cam.Angle(), 1e-4)
}
