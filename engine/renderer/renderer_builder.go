package renderer

// RendererBuilderOption defines a function that modifies the renderer configuration before
// the backend is created.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the initial present mode for the renderer surface.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode to the renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces the backend to request a fallback (software) adapter.
// Useful for environments without a hardware GPU, such as CI machines.
//
// Returns:
//   - RendererBuilderOption: a function that enables the fallback adapter on the renderer
func WithForceSoftwareRenderer() RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = true
	}
}
