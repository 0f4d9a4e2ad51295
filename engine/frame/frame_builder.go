package frame

import (
	"time"

	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/input"
)

// FrameControllerOption defines a function that modifies the frame controller configuration.
type FrameControllerOption func(*frameController)

// WithRenderer sets the renderer the controller submits frames to.
func WithRenderer(r Renderer) FrameControllerOption {
	return func(f *frameController) {
		f.renderer = r
	}
}

// WithCamera sets the orbit camera whose position feeds the frame uniform.
func WithCamera(cam camera.OrbitCamera) FrameControllerOption {
	return func(f *frameController) {
		f.cam = cam
	}
}

// WithInput sets the input handler whose pointer state feeds the frame uniform.
func WithInput(h input.Handler) FrameControllerOption {
	return func(f *frameController) {
		f.input = h
	}
}

// WithSurfaceSize sets the function used to read the current drawable surface size.
func WithSurfaceSize(size SizeFunc) FrameControllerOption {
	return func(f *frameController) {
		f.surfaceSize = size
	}
}

// WithClock overrides the time source used to compute elapsed time. Tests use this to
// advance time deterministically.
func WithClock(now func() time.Time) FrameControllerOption {
	return func(f *frameController) {
		f.now = now
	}
}

// WithIdleDrift sets the camera angle increment applied every update tick.
// Set to 0 to disable the idle rotation.
func WithIdleDrift(step float32) FrameControllerOption {
	return func(f *frameController) {
		f.idleDrift = step
	}
}

// WithPipelineKey sets the key of the registered render pipeline used for the quad draw.
func WithPipelineKey(key string) FrameControllerOption {
	return func(f *frameController) {
		f.pipelineKey = key
	}
}
