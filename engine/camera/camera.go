package camera

import (
	"sync"

	"github.com/chewxy/math32"
	"github.com/jeffasante/raymarch-go/common"
)

// orbitCameraImpl is the single implementation of OrbitCamera.
// The camera orbits a fixed pivot at the origin: its world position is derived
// from an unconstrained angle and a clamped distance, with the height held constant.
type orbitCameraImpl struct {
	mu *sync.Mutex

	// angle is the orbit angle in radians. Unconstrained; it wraps naturally
	// through the trig functions when deriving the position.
	angle float32

	// distance is the orbit radius. Always within [minDistance, maxDistance].
	distance float32

	// height is the fixed world-space Y of the camera.
	height float32

	// Orbit constraints
	minDistance float32
	maxDistance float32

	// zoomScale converts a scroll delta into a distance change.
	zoomScale float32

	// resetDistance is the distance restored by Reset. Intentionally distinct
	// from the startup distance.
	resetDistance float32
}

// OrbitCamera defines the interface for the orbit camera state.
// It holds the angle/distance pair driven by input events and derives the
// world-space camera position consumed by the per-frame uniform block.
type OrbitCamera interface {
	// Angle returns the current orbit angle in radians.
	//
	// Returns:
	//   - float32: the orbit angle
	Angle() float32

	// SetAngle sets the orbit angle in radians. The angle is unconstrained.
	//
	// Parameters:
	//   - angle: the new orbit angle in radians
	SetAngle(angle float32)

	// Advance adds step radians to the orbit angle. Used for the slow idle
	// rotation applied each frame while the pointer is stationary; any pointer
	// move overwrites the angle entirely via SetAngle.
	//
	// Parameters:
	//   - step: the angle increment in radians
	Advance(step float32)

	// Distance returns the current orbit distance.
	//
	// Returns:
	//   - float32: the orbit distance
	Distance() float32

	// Zoom adjusts the orbit distance from a scroll delta.
	// Positive delta (scroll up / away) zooms in. The resulting distance
	// saturates silently at the configured bounds.
	//
	// Parameters:
	//   - delta: the scroll delta
	Zoom(delta float32)

	// Reset restores the camera to angle 0 and the reset distance,
	// regardless of prior state.
	Reset()

	// Height returns the fixed world-space Y of the camera.
	//
	// Returns:
	//   - float32: the fixed camera height
	Height() float32

	// Position derives the world-space camera position from the current
	// angle and distance: (cos(angle)·distance, height, sin(angle)·distance).
	//
	// Returns:
	//   - x, y, z: the world-space camera position
	Position() (x, y, z float32)
}

var _ OrbitCamera = &orbitCameraImpl{}

// NewOrbitCamera creates a new OrbitCamera with the viewer's startup defaults:
// angle 0, distance 8, height 2, distance bounds [1, 20], zoom scale 0.5,
// and reset distance 5.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
func NewOrbitCamera(options ...OrbitCameraOption) OrbitCamera {
	c := &orbitCameraImpl{
		mu:            &sync.Mutex{},
		angle:         0,
		distance:      8.0,
		height:        2.0,
		minDistance:   1.0,
		maxDistance:   20.0,
		zoomScale:     0.5,
		resetDistance: 5.0,
	}
	for _, option := range options {
		option(c)
	}
	c.distance = common.Clamp(c.distance, c.minDistance, c.maxDistance)
	return c
}

func (c *orbitCameraImpl) Angle() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angle
}

func (c *orbitCameraImpl) SetAngle(angle float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angle = angle
}

func (c *orbitCameraImpl) Advance(step float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angle += step
}

func (c *orbitCameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *orbitCameraImpl) Zoom(delta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distance = common.Clamp(c.distance-delta*c.zoomScale, c.minDistance, c.maxDistance)
}

func (c *orbitCameraImpl) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.angle = 0
	c.distance = c.resetDistance
}

func (c *orbitCameraImpl) Height() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.height
}

func (c *orbitCameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return math32.Cos(c.angle) * c.distance, c.height, math32.Sin(c.angle) * c.distance
}
