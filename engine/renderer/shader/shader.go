package shader

// ShaderType identifies the pipeline stage a shader entry point targets.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// shader is the implementation of the Shader interface.
// It holds the persistent shader data required for pipeline creation.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
}

// Shader defines the interface for a WGSL shader stage. It exposes the shader's
// unique key, source code, entry point, and stage type needed for pipeline creation.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for module labels and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// Type returns the pipeline stage this shader targets.
	//
	// Returns:
	//   - ShaderType: the shader stage type
	Type() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a new Shader with the specified options.
// The entry point defaults to "main".
//
// Parameters:
//   - options: functional options to configure the shader
//
// Returns:
//   - Shader: the newly created shader
func NewShader(options ...ShaderOption) Shader {
	s := &shader{
		entryPoint: "main",
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}
