package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"

	"github.com/jeffasante/raymarch-go/common"
	"github.com/jeffasante/raymarch-go/engine"
	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/frame"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/profiler"
	"github.com/jeffasante/raymarch-go/engine/renderer"
	"github.com/jeffasante/raymarch-go/engine/renderer/pipeline"
	"github.com/jeffasante/raymarch-go/engine/renderer/shader"
	"github.com/jeffasante/raymarch-go/engine/window"
)

//go:embed assets/raymarch.wgsl
var raymarchShaderSource string

const raymarchPipelineKey = "raymarch"

func main() {
	var (
		width    = flag.Int("width", 1024, "initial window width in pixels")
		height   = flag.Int("height", 768, "initial window height in pixels")
		uncapped = flag.Bool("uncapped", false, "disable vsync")
		software = flag.Bool("software", false, "force the software fallback adapter")
	)
	flag.Parse()

	win := window.NewWindow(
		window.WithTitle("Ray Marcher"),
		window.WithWidth(*width),
		window.WithHeight(*height),
	)

	rendererOptions := []renderer.RendererBuilderOption{}
	if *uncapped {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	if *software {
		rendererOptions = append(rendererOptions, renderer.WithForceSoftwareRenderer())
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win, rendererOptions...)

	// The WGSL uniform declaration is prepended so the shader-side struct layout always
	// matches the Go-side Marshal output.
	source := frame.GPUFrameUniformSource + "\n" + raymarchShaderSource
	raymarchPipeline := pipeline.NewPipeline(
		pipeline.WithPipelineKey(raymarchPipelineKey),
		pipeline.WithShader(shader.NewShader(
			shader.WithKey("raymarch_vs"),
			shader.WithSource(source),
			shader.WithEntryPoint("vs_main"),
			shader.WithType(shader.ShaderTypeVertex),
		)),
		pipeline.WithShader(shader.NewShader(
			shader.WithKey("raymarch_fs"),
			shader.WithSource(source),
			shader.WithEntryPoint("fs_main"),
			shader.WithType(shader.ShaderTypeFragment),
		)),
	)
	if err := r.RegisterPipelines(raymarchPipeline); err != nil {
		log.Fatalf("failed to register render pipeline: %v", err)
	}

	cam := camera.NewOrbitCamera()
	in := input.NewHandler(cam)

	fc := frame.NewFrameController(
		frame.WithRenderer(r),
		frame.WithCamera(cam),
		frame.WithInput(in),
		frame.WithSurfaceSize(func() (int, int) { return win.Width(), win.Height() }),
		frame.WithPipelineKey(raymarchPipelineKey),
	)

	if err := r.InitQuadBuffer(fc.Provider(), common.SliceToBytes(frame.QuadVertices[:]), frame.QuadVertexCount); err != nil {
		log.Fatalf("failed to create quad vertex buffer: %v", err)
	}
	uniform := &frame.GPUFrameUniform{}
	if err := r.InitUniformBindGroup(fc.Provider(), uniform.Size()); err != nil {
		log.Fatalf("failed to create frame uniform bind group: %v", err)
	}

	viewer := engine.NewViewer(
		engine.WithWindow(win),
		engine.WithFrameController(fc),
		engine.WithInput(in),
		engine.WithProfiling(true),
		engine.WithProfiler(profiler.NewProfiler(profiler.WithSample(func() string {
			px, py := in.Pointer()
			cx, cy, cz := cam.Position()
			return fmt.Sprintf("t: %.1fs | pointer: (%.2f, %.2f) | angle: %.2f | dist: %.2f | cam: (%.2f, %.2f, %.2f)",
				fc.Elapsed(), px, py, cam.Angle(), cam.Distance(), cx, cy, cz)
		}))),
	)

	viewer.Run()
}
