package binding

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// provider is the unexported implementation of Provider.
type provider struct {
	// label is a debug label added for convenience.
	label string

	// The following fields are GPU allocated resources and must be released when
	// no longer needed. They are populated by the Renderer during initialization,
	// not by user-creation.

	// bindGroup is the GPU bind group created for this provider, or nil if not initialized with the Renderer.
	bindGroup *wgpu.BindGroup
	// bindGroupLayout is the GPU bind group layout created for this provider, or nil if not initialized with the Renderer.
	bindGroupLayout *wgpu.BindGroupLayout
	// buffers holds the GPU uniform buffers created for this provider, keyed by binding index.
	buffers map[int]*wgpu.Buffer

	// vertexBuffer is the GPU vertex buffer created for this provider, or nil if not initialized with the Renderer.
	vertexBuffer *wgpu.Buffer
	// vertexCount is the number of vertices for draw calls issued with this provider.
	vertexCount int
}

// Provider defines the interface for components that require GPU binding resources.
// The frame controller holds a Provider describing its GPU requirements (the static
// quad vertex buffer plus the per-frame uniform buffer); the Renderer initializes the
// GPU resources and stores them back on the provider for use in draw calls.
type Provider interface {
	// Label returns the debug label for this provider.
	//
	// Returns:
	//   - string: the debug label
	Label() string

	// BindGroup returns the created bind group for shader binding.
	// Returns nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.BindGroup: the bind group or nil
	BindGroup() *wgpu.BindGroup

	// SetBindGroup stores the created bind group on this provider.
	//
	// Parameters:
	//   - bg: the bind group to store
	SetBindGroup(bg *wgpu.BindGroup)

	// BindGroupLayout returns the created bind group layout for this provider.
	// Returns nil if GPU resources have not been initialized.
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the bind group layout or nil
	BindGroupLayout() *wgpu.BindGroupLayout

	// SetBindGroupLayout stores the created bind group layout on this provider.
	//
	// Parameters:
	//   - layout: the bind group layout to store
	SetBindGroupLayout(layout *wgpu.BindGroupLayout)

	// Buffer returns the GPU buffer for a specific binding, or nil if not set.
	//
	// Parameters:
	//   - binding: the binding index
	//
	// Returns:
	//   - *wgpu.Buffer: the buffer or nil
	Buffer(binding int) *wgpu.Buffer

	// SetBuffer stores a GPU buffer on this provider at the given binding index.
	//
	// Parameters:
	//   - binding: the binding index
	//   - buf: the buffer to store
	SetBuffer(binding int, buf *wgpu.Buffer)

	// VertexBuffer returns the GPU vertex buffer, or nil if not initialized.
	//
	// Returns:
	//   - *wgpu.Buffer: the vertex buffer or nil
	VertexBuffer() *wgpu.Buffer

	// SetVertexBuffer stores the GPU vertex buffer on this provider.
	//
	// Parameters:
	//   - buf: the vertex buffer to store
	SetVertexBuffer(buf *wgpu.Buffer)

	// VertexCount returns the number of vertices for draw calls with this provider.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// SetVertexCount sets the number of vertices for draw calls with this provider.
	//
	// Parameters:
	//   - count: the vertex count
	SetVertexCount(count int)

	// Release releases any GPU resources held by this provider.
	Release()
}

var _ Provider = &provider{}

// NewProvider creates a new empty Provider with the given debug label.
// GPU resources are populated later by the Renderer's Init* methods.
//
// Parameters:
//   - label: the debug label for GPU resource names
//
// Returns:
//   - Provider: the newly created provider
func NewProvider(label string) Provider {
	return &provider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
}

func (p *provider) Label() string {
	return p.label
}

func (p *provider) BindGroup() *wgpu.BindGroup {
	return p.bindGroup
}

func (p *provider) SetBindGroup(bg *wgpu.BindGroup) {
	p.bindGroup = bg
}

func (p *provider) BindGroupLayout() *wgpu.BindGroupLayout {
	return p.bindGroupLayout
}

func (p *provider) SetBindGroupLayout(layout *wgpu.BindGroupLayout) {
	p.bindGroupLayout = layout
}

func (p *provider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *provider) SetBuffer(binding int, buf *wgpu.Buffer) {
	p.buffers[binding] = buf
}

func (p *provider) VertexBuffer() *wgpu.Buffer {
	return p.vertexBuffer
}

func (p *provider) SetVertexBuffer(buf *wgpu.Buffer) {
	p.vertexBuffer = buf
}

func (p *provider) VertexCount() int {
	return p.vertexCount
}

func (p *provider) SetVertexCount(count int) {
	p.vertexCount = count
}

func (p *provider) Release() {
	if p.bindGroup != nil {
		p.bindGroup.Release()
		p.bindGroup = nil
	}
	if p.bindGroupLayout != nil {
		p.bindGroupLayout.Release()
		p.bindGroupLayout = nil
	}
	for binding, buf := range p.buffers {
		buf.Release()
		delete(p.buffers, binding)
	}
	if p.vertexBuffer != nil {
		p.vertexBuffer.Release()
		p.vertexBuffer = nil
	}
}
