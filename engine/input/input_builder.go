package input

// HandlerOption is a functional option for configuring a Handler.
// Use the With* functions to create options that are applied directly to the handler instance.
type HandlerOption func(*handlerImpl)

// WithResetKey sets the virtual key code that hard-resets the camera.
// Defaults to the spacebar.
//
// Parameters:
//   - keyCode: the virtual key code
//
// Returns:
//   - HandlerOption: option function to apply
func WithResetKey(keyCode uint32) HandlerOption {
	return func(h *handlerImpl) {
		h.resetKey = keyCode
	}
}

// WithPointer sets the initial normalized pointer position.
// Defaults to the window center (0.5, 0.5).
//
// Parameters:
//   - x, y: the initial pointer position, each axis in [0, 1]
//
// Returns:
//   - HandlerOption: option function to apply
func WithPointer(x, y float32) HandlerOption {
	return func(h *handlerImpl) {
		h.pointer = [2]float32{x, y}
	}
}
