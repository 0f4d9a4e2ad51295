package shader

// ShaderOption is a functional option for configuring a shader during construction via NewShader.
type ShaderOption func(*shader)

// WithKey sets the unique identifier for the shader.
//
// Parameters:
//   - key: the shader's unique key
//
// Returns:
//   - ShaderOption: option function to apply
func WithKey(key string) ShaderOption {
	return func(s *shader) {
		s.key = key
	}
}

// WithSource sets the WGSL source code for the shader.
//
// Parameters:
//   - source: the WGSL source code
//
// Returns:
//   - ShaderOption: option function to apply
func WithSource(source string) ShaderOption {
	return func(s *shader) {
		s.source = source
	}
}

// WithEntryPoint sets the entry point name for the shader.
// Defaults to "main".
//
// Parameters:
//   - entryPoint: the entry point name
//
// Returns:
//   - ShaderOption: option function to apply
func WithEntryPoint(entryPoint string) ShaderOption {
	return func(s *shader) {
		s.entryPoint = entryPoint
	}
}

// WithType sets the pipeline stage the shader targets.
//
// Parameters:
//   - shaderType: the shader stage type
//
// Returns:
//   - ShaderOption: option function to apply
func WithType(shaderType ShaderType) ShaderOption {
	return func(s *shader) {
		s.shaderType = shaderType
	}
}
