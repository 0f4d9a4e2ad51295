package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	c := NewOrbitCamera()
	assert.Equal(t, float32(0), c.Angle())
	assert.Equal(t, float32(8.0), c.Distance())
	assert.Equal(t, float32(2.0), c.Height())

	x, y, z := c.Position()
	assert.Equal(t, float32(8.0), x)
	assert.Equal(t, float32(2.0), y)
	assert.Equal(t, float32(0), z)
}

func TestZoomClampsAtBounds(t *testing.T) {
	c := NewOrbitCamera()

	// Repeated zoom-in from the default distance decreases monotonically
	// and saturates at the lower bound, never below.
	prev := c.Distance()
	for i := 0; i < 10; i++ {
		c.Zoom(10)
		d := c.Distance()
		assert.LessOrEqual(t, d, prev)
		assert.GreaterOrEqual(t, d, float32(1.0))
		prev = d
	}
	assert.Equal(t, float32(1.0), c.Distance())

	for i := 0; i < 100; i++ {
		c.Zoom(-10)
	}
	assert.Equal(t, float32(20.0), c.Distance())
}

func TestZoomScale(t *testing.T) {
	c := NewOrbitCamera()
	c.Zoom(1)
	assert.InDelta(t, 7.5, c.Distance(), 1e-6)
	c.Zoom(-2)
	assert.InDelta(t, 8.5, c.Distance(), 1e-6)
}

func TestReset(t *testing.T) {
	c := NewOrbitCamera()
	c.SetAngle(2.5)
	c.Zoom(12)
	c.Reset()
	assert.Equal(t, float32(0), c.Angle())
	assert.Equal(t, float32(5.0), c.Distance())

	// Reset always yields the same state, regardless of prior state.
	c.Advance(-7)
	c.Zoom(-50)
	c.Reset()
	assert.Equal(t, float32(0), c.Angle())
	assert.Equal(t, float32(5.0), c.Distance())
}

func TestHeightFixed(t *testing.T) {
	c := NewOrbitCamera()
	for _, angle := range []float32{0, 1, -2, math32.Pi, 7 * math32.Pi} {
		c.SetAngle(angle)
		c.Zoom(1)
		_, y, _ := c.Position()
		assert.Equal(t, float32(2.0), y)
	}
}

func TestPositionDerivation(t *testing.T) {
	c := NewOrbitCamera(WithAngle(math32.Pi/2), WithDistance(4))
	x, y, z := c.Position()
	assert.InDelta(t, 0, x, 1e-6)
	assert.Equal(t, float32(2.0), y)
	assert.InDelta(t, 4, z, 1e-6)
}

func TestAdvanceAccumulates(t *testing.T) {
	c := NewOrbitCamera()
	for i := 0; i < 100; i++ {
		c.Advance(0.01)
	}
	assert.InDelta(t, 1.0, c.Angle(), 1e-4)

	// A pointer-driven SetAngle overwrites any accumulated drift.
	c.SetAngle(0)
	assert.Equal(t, float32(0), c.Angle())
}

func TestInitialDistanceClamped(t *testing.T) {
	c := NewOrbitCamera(WithDistance(100))
	assert.Equal(t, float32(20.0), c.Distance())
}
