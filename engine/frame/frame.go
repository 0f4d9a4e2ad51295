package frame

import (
	"log"
	"sync"
	"time"

	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/renderer"
	"github.com/jeffasante/raymarch-go/engine/renderer/binding"
)

// QuadVertices is the fullscreen quad used for raymarching, two triangles in clip space.
var QuadVertices = [12]float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, -1,
	1, 1,
	-1, 1,
}

// QuadVertexCount is the number of vertices in QuadVertices.
const QuadVertexCount = 6

// SizeFunc reports the current drawable surface size in pixels.
type SizeFunc func() (width, height int)

// Renderer is the subset of the renderer API the frame controller drives each tick.
type Renderer interface {
	Resize(width, height int)
	WriteBuffers(writes []binding.BufferWrite)
	BeginFrame() error
	DrawCall(pipelineKey string, provider binding.Provider, vertexCount uint32, bindGroups []binding.Provider) error
	EndFrame()
	Present()
}

var _ Renderer = (renderer.Renderer)(nil)

// frameController is the implementation of the FrameController interface.
type frameController struct {
	renderer    Renderer
	cam         camera.OrbitCamera
	input       input.Handler
	provider    binding.Provider
	pipelineKey string

	surfaceSize SizeFunc
	now         func() time.Time
	start       time.Time

	idleDrift float32

	// drawErrOnce gates the draw failure log. A bad pipeline key fails
	// identically every frame; one line is diagnostic, thousands are noise.
	drawErrOnce sync.Once
}

// FrameController owns the per-tick state advance and render submission for the viewer.
//
// Each tick runs Update then Render. Update always runs: it advances the camera drift, rebuilds
// the full uniform record from current state, and stages it for upload. Render acquires the
// surface; if the surface is not ready the frame is skipped and state simply carries forward
// to the next tick.
type FrameController interface {
	// Update advances animation state and stages the refreshed uniform record for upload.
	// Runs unconditionally every tick, including ticks whose render is skipped.
	Update()

	// Render acquires the surface and submits one frame: a single fullscreen quad draw with
	// the frame uniform bound. A surface acquisition failure skips the frame silently.
	Render()

	// Tick runs one full Update + Render cycle.
	Tick()

	// Resize reconfigures the render surface for a new drawable size.
	// Called immediately on the resize event so the very next frame renders at the new size.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Provider returns the binding Provider holding the quad vertex buffer and the uniform
	// bind group for this controller.
	//
	// Returns:
	//   - binding.Provider: the controller's Provider
	Provider() binding.Provider

	// Elapsed returns the seconds since the controller's clock start.
	//
	// Returns:
	//   - float32: elapsed time in seconds
	Elapsed() float32
}

var _ FrameController = &frameController{}

// NewFrameController creates a FrameController wired to a renderer, camera and input handler.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - FrameController: a new FrameController instance
func NewFrameController(options ...FrameControllerOption) FrameController {
	f := &frameController{
		provider:  binding.NewProvider("frame"),
		now:       time.Now,
		idleDrift: 0.01,
	}
	for _, opt := range options {
		opt(f)
	}
	f.start = f.now()
	return f
}

// BuildUniform assembles a GPUFrameUniform from the current frame state.
// Pure so the record contents are directly testable.
//
// Parameters:
//   - elapsed: seconds since startup
//   - width: surface width in pixels
//   - height: surface height in pixels
//   - pointerX: normalized pointer X in [0, 1]
//   - pointerY: normalized pointer Y in [0, 1], origin bottom-left
//   - camX: camera world-space X
//   - camY: camera world-space Y
//   - camZ: camera world-space Z
//
// Returns:
//   - GPUFrameUniform: the assembled uniform record with zeroed padding
func BuildUniform(elapsed float32, width, height int, pointerX, pointerY, camX, camY, camZ float32) GPUFrameUniform {
	return GPUFrameUniform{
		Resolution:     [2]float32{float32(width), float32(height)},
		Time:           elapsed,
		Pointer:        [2]float32{pointerX, pointerY},
		CameraPosition: [3]float32{camX, camY, camZ},
	}
}

func (f *frameController) Elapsed() float32 {
	return float32(f.now().Sub(f.start).Seconds())
}

func (f *frameController) Update() {
	f.cam.Advance(f.idleDrift)

	width, height := f.surfaceSize()
	px, py := f.input.Pointer()
	cx, cy, cz := f.cam.Position()

	uniform := BuildUniform(f.Elapsed(), width, height, px, py, cx, cy, cz)

	// Full-record overwrite at offset 0 every tick. State never persists
	// between frames through the GPU buffer, only through the Go-side state.
	f.renderer.WriteBuffers([]binding.BufferWrite{{
		Provider: f.provider,
		Binding:  0,
		Offset:   0,
		Data:     uniform.Marshal(),
	}})
}

func (f *frameController) Render() {
	if err := f.renderer.BeginFrame(); err != nil {
		// Surface not ready (resize in flight, window minimized). Skip the
		// frame; Update already ran so state continues to advance.
		return
	}

	if err := f.renderer.DrawCall(f.pipelineKey, f.provider, QuadVertexCount, []binding.Provider{f.provider}); err != nil {
		f.drawErrOnce.Do(func() {
			log.Printf("draw call failed: %v", err)
		})
	}

	f.renderer.EndFrame()
	f.renderer.Present()
}

func (f *frameController) Tick() {
	f.Update()
	f.Render()
}

func (f *frameController) Resize(width, height int) {
	f.renderer.Resize(width, height)
}

func (f *frameController) Provider() binding.Provider {
	return f.provider
}
