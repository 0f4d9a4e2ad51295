package camera

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
// Use the With* functions to create options that are applied directly to the camera instance.
type OrbitCameraOption func(*orbitCameraImpl)

// WithAngle sets the initial orbit angle in radians.
//
// Parameters:
//   - angle: the initial orbit angle
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithAngle(angle float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.angle = angle
	}
}

// WithDistance sets the initial orbit distance.
// The value is clamped to the configured distance bounds after all options apply.
//
// Parameters:
//   - distance: the initial orbit distance
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithDistance(distance float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.distance = distance
	}
}

// WithHeight sets the fixed world-space camera height.
//
// Parameters:
//   - height: the fixed Y of the camera
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithHeight(height float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.height = height
	}
}

// WithDistanceRange sets the minimum and maximum orbit distance.
// Zoom saturates silently at these bounds.
//
// Parameters:
//   - min: the minimum orbit distance
//   - max: the maximum orbit distance
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithDistanceRange(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.minDistance = min
		c.maxDistance = max
	}
}

// WithZoomScale sets the factor converting a scroll delta into a distance change.
//
// Parameters:
//   - scale: the zoom scale factor
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithZoomScale(scale float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.zoomScale = scale
	}
}

// WithResetDistance sets the distance restored by Reset.
//
// Parameters:
//   - distance: the reset distance
//
// Returns:
//   - OrbitCameraOption: option function to apply
func WithResetDistance(distance float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.resetDistance = distance
	}
}
