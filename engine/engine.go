package engine

import (
	"sync"

	"github.com/jeffasante/raymarch-go/engine/frame"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/profiler"
	"github.com/jeffasante/raymarch-go/engine/window"
)

// viewer implements the Viewer interface.
// Wires window events to the input handler and drives the frame controller from the
// window message loop. Everything runs on the loop's thread; the event callbacks and
// the per-tick update never run concurrently.
type viewer struct {
	window          window.Window
	frameController frame.FrameController
	input           input.Handler

	profiler         *profiler.Profiler
	profilingEnabled bool

	quitOnce sync.Once
}

// Viewer is the main entry point for the visualization.
// It owns the window message loop and runs one Update/Render tick per loop iteration.
type Viewer interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run starts the main loop (blocks until the window closes).
	Run()

	// Quit closes the window, causing Run to return.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Viewer = &viewer{}

// NewViewer creates a new Viewer instance with the provided options and wires the window
// event callbacks to the input handler and frame controller.
//
// Parameters:
//   - options: functional options for viewer configuration
//
// Returns:
//   - Viewer: the newly created viewer
func NewViewer(options ...ViewerBuilderOption) Viewer {
	v := &viewer{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(v)
	}

	if v.window != nil {
		v.window.SetResizeCallback(func(width, height int) {
			if v.frameController != nil {
				v.frameController.Resize(width, height)
			}
		})
		v.window.SetMouseMoveCallback(func(x, y int32) {
			if v.input != nil {
				v.input.PointerMove(x, y, v.window.Width(), v.window.Height())
			}
		})
		v.window.SetScrollCallback(func(delta float32) {
			if v.input != nil {
				v.input.Scroll(delta)
			}
		})
		v.window.SetKeyDownCallback(func(keyCode uint32) {
			if v.input != nil {
				v.input.KeyDown(keyCode)
			}
		})
		v.window.SetUpdateCallback(v.tick)
	}

	return v
}

func (v *viewer) Window() window.Window {
	return v.window
}

// tick runs one Update/Render cycle from the window message loop.
func (v *viewer) tick() {
	if v.frameController != nil {
		v.frameController.Tick()
	}
	if v.profilingEnabled && v.profiler != nil {
		v.profiler.Tick()
	}
}

func (v *viewer) Run() {
	v.window.ProcessMessages()
}

func (v *viewer) Quit() {
	v.quitOnce.Do(func() {
		if v.window != nil {
			_ = v.window.Close()
		}
	})
}

// EnableProfiler enables performance profiling output to the log.
func (v *viewer) EnableProfiler() {
	v.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (v *viewer) DisableProfiler() {
	v.profilingEnabled = false
}
