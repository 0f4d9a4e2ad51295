package engine

import (
	"github.com/jeffasante/raymarch-go/engine/frame"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/profiler"
	"github.com/jeffasante/raymarch-go/engine/window"
)

// ViewerBuilderOption is a functional option for configuring a Viewer.
// Use the With* functions to create options that are applied directly to the viewer instance.
type ViewerBuilderOption func(*viewer)

// WithWindow sets a pre-configured window for the viewer to drive.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *viewer) {
		v.window = w
	}
}

// WithFrameController sets the frame controller ticked once per message loop iteration.
//
// Parameters:
//   - fc: the FrameController to drive
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithFrameController(fc frame.FrameController) ViewerBuilderOption {
	return func(v *viewer) {
		v.frameController = fc
	}
}

// WithInput sets the input handler window events are routed to.
//
// Parameters:
//   - h: the input Handler
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithInput(h input.Handler) ViewerBuilderOption {
	return func(v *viewer) {
		v.input = h
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiling(enabled bool) ViewerBuilderOption {
	return func(v *viewer) {
		v.profilingEnabled = enabled
	}
}

// WithProfiler replaces the default profiler, allowing a custom report interval or
// state sample callback.
//
// Parameters:
//   - p: the Profiler to use
//
// Returns:
//   - ViewerBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) ViewerBuilderOption {
	return func(v *viewer) {
		v.profiler = p
	}
}
