package input

import (
	"log"
	"sync"

	"github.com/chewxy/math32"
	"github.com/jeffasante/raymarch-go/common"
	"github.com/jeffasante/raymarch-go/engine/camera"
)

// handlerImpl is the implementation of the Handler interface.
// It owns the normalized pointer state and translates raw window events into
// orbit camera mutations. It consumes nothing else; every other input event
// is ignored at this layer.
type handlerImpl struct {
	mu *sync.Mutex

	cam camera.OrbitCamera

	// pointer is the normalized pointer position, each axis in [0, 1],
	// origin bottom-left (Y inverted relative to window coordinates).
	pointer [2]float32

	// resetKey is the virtual key code that resets the camera.
	resetKey uint32
}

// Handler defines the interface for the viewer's input state machine.
// It maps pointer moves, scroll deltas, and key presses onto the orbit camera
// and maintains the normalized pointer position fed into the per-frame uniforms.
type Handler interface {
	// PointerMove handles a pointer move at window-local pixel coordinates.
	// The position is normalized to [0,1]×[0,1] with the Y axis flipped so the
	// origin is bottom-left, clamped on both axes, and stored. The pointer's
	// horizontal position then maps linearly onto a [-π, π] orbit angle, with
	// the window center yielding angle 0 (camera directly ahead).
	// A zero-area window makes the event a no-op, guarding the division.
	//
	// Parameters:
	//   - x, y: pointer position in window-local pixels
	//   - width, height: current window size in pixels
	PointerMove(x, y int32, width, height int)

	// Scroll handles a scroll wheel delta by zooming the camera.
	// Positive delta (scroll up / away) zooms in.
	//
	// Parameters:
	//   - delta: the scroll delta
	Scroll(delta float32)

	// KeyDown handles a key press. Only the configured reset key is
	// meaningful; it hard-resets the camera. All other keys are ignored.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// Pointer returns the current normalized pointer position.
	//
	// Returns:
	//   - x, y: the normalized pointer position, each axis in [0, 1]
	Pointer() (x, y float32)
}

var _ Handler = &handlerImpl{}

// NewHandler creates a new input Handler attached to the given camera.
// The pointer starts at the window center (0.5, 0.5) and the reset key
// defaults to the spacebar.
//
// Parameters:
//   - cam: the orbit camera mutated by input events
//   - options: functional options to configure the handler
//
// Returns:
//   - Handler: the newly created handler
func NewHandler(cam camera.OrbitCamera, options ...HandlerOption) Handler {
	h := &handlerImpl{
		mu:       &sync.Mutex{},
		cam:      cam,
		pointer:  [2]float32{0.5, 0.5},
		resetKey: common.KeySpace,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *handlerImpl) PointerMove(x, y int32, width, height int) {
	if width == 0 || height == 0 {
		return
	}

	h.mu.Lock()
	h.pointer[0] = common.Clamp(float32(x)/float32(width), 0, 1)
	h.pointer[1] = common.Clamp(1.0-float32(y)/float32(height), 0, 1)
	px := h.pointer[0]
	h.mu.Unlock()

	// Pointer x spans the full horizontal range onto [-π, π]; 0.5 is straight ahead.
	h.cam.SetAngle((px*2 - 1) * math32.Pi)
}

func (h *handlerImpl) Scroll(delta float32) {
	h.cam.Zoom(delta)
}

func (h *handlerImpl) KeyDown(keyCode uint32) {
	h.mu.Lock()
	resetKey := h.resetKey
	h.mu.Unlock()

	if keyCode != resetKey {
		return
	}
	h.cam.Reset()
	log.Println("camera reset")
}

func (h *handlerImpl) Pointer() (x, y float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pointer[0], h.pointer[1]
}
