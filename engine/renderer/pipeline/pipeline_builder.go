package pipeline

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/jeffasante/raymarch-go/engine/renderer/shader"
)

// PipelineOption is a functional option applied to a pipeline during construction via NewPipeline.
type PipelineOption func(*pipeline)

// WithPipelineKey sets the unique identifier for the pipeline.
//
// Parameters:
//   - key: the pipeline's unique key
//
// Returns:
//   - PipelineOption: option function to apply
func WithPipelineKey(key string) PipelineOption {
	return func(p *pipeline) {
		p.pipelineKey = key
	}
}

// WithShader attaches a shader stage to the pipeline. The stage slot is
// selected by the shader's own Type.
//
// Parameters:
//   - s: the shader to attach
//
// Returns:
//   - PipelineOption: option function to apply
func WithShader(s shader.Shader) PipelineOption {
	return func(p *pipeline) {
		switch s.Type() {
		case shader.ShaderTypeVertex:
			p.vertexShader = s
		case shader.ShaderTypeFragment:
			p.fragmentShader = s
		}
	}
}

// WithTopology sets the primitive topology for the pipeline.
//
// Parameters:
//   - topology: the primitive topology
//
// Returns:
//   - PipelineOption: option function to apply
func WithTopology(topology wgpu.PrimitiveTopology) PipelineOption {
	return func(p *pipeline) {
		p.topology = topology
	}
}

// WithCullMode sets the cull mode for the pipeline.
//
// Parameters:
//   - mode: the cull mode
//
// Returns:
//   - PipelineOption: option function to apply
func WithCullMode(mode wgpu.CullMode) PipelineOption {
	return func(p *pipeline) {
		p.cullMode = mode
	}
}

// WithFrontFace sets the front face winding order for the pipeline.
//
// Parameters:
//   - face: the front face winding order
//
// Returns:
//   - PipelineOption: option function to apply
func WithFrontFace(face wgpu.FrontFace) PipelineOption {
	return func(p *pipeline) {
		p.frontFace = face
	}
}
