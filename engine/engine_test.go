package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/frame"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/renderer/binding"
	"github.com/jeffasante/raymarch-go/engine/window"
)

type fakeWindow struct {
	width, height int
	running       bool
	closed        bool

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onKeyDown   func(keyCode uint32)
	onMouseMove func(x, y int32)
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32))     { w.onScroll = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32))   { w.onKeyDown = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y int32))     { w.onMouseMove = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return nil }
func (w *fakeWindow) IsRunning() bool                              { return w.running }
func (w *fakeWindow) Close() error                                 { w.closed = true; return nil }
func (w *fakeWindow) ProcessMessages()                             {}
func (w *fakeWindow) Width() int                                   { return w.width }
func (w *fakeWindow) Height() int                                  { return w.height }

var _ window.Window = &fakeWindow{}

type fakeFrameRenderer struct {
	resizedTo [2]int
	writes    int
	frames    int
}

func (f *fakeFrameRenderer) Resize(width, height int) { f.resizedTo = [2]int{width, height} }
func (f *fakeFrameRenderer) WriteBuffers([]binding.BufferWrite) {
	f.writes++
}
func (f *fakeFrameRenderer) BeginFrame() error { return nil }
func (f *fakeFrameRenderer) DrawCall(string, binding.Provider, uint32, []binding.Provider) error {
	f.frames++
	return nil
}
func (f *fakeFrameRenderer) EndFrame() {}
func (f *fakeFrameRenderer) Present()  {}

func newTestViewer(t *testing.T) (*fakeWindow, *fakeFrameRenderer, camera.OrbitCamera, Viewer) {
	t.Helper()

	win := &fakeWindow{width: 1024, height: 768}
	cam := camera.NewOrbitCamera()
	in := input.NewHandler(cam)
	r := &fakeFrameRenderer{}
	fc := frame.NewFrameController(
		frame.WithRenderer(r),
		frame.WithCamera(cam),
		frame.WithInput(in),
		frame.WithSurfaceSize(func() (int, int) { return win.Width(), win.Height() }),
		frame.WithPipelineKey("raymarch"),
	)

	v := NewViewer(
		WithWindow(win),
		WithFrameController(fc),
		WithInput(in),
	)
	return win, r, cam, v
}

func TestViewerWiresUpdateTick(t *testing.T) {
	win, r, _, _ := newTestViewer(t)
	require.NotNil(t, win.onUpdate)

	win.onUpdate()
	win.onUpdate()

	assert.Equal(t, 2, r.writes)
	assert.Equal(t, 2, r.frames)
}

func TestViewerRoutesResizeToFrameController(t *testing.T) {
	win, r, _, _ := newTestViewer(t)
	require.NotNil(t, win.onResize)

	win.onResize(640, 480)

	assert.Equal(t, [2]int{640, 480}, r.resizedTo)
}

func TestViewerRoutesPointerAndScroll(t *testing.T) {
	win, _, cam, _ := newTestViewer(t)
	require.NotNil(t, win.onMouseMove)
	require.NotNil(t, win.onScroll)

	// Far right edge maps to angle pi.
	win.onMouseMove(1024, 384)
	assert.InDelta(t, 3.14159, cam.Angle(), 1e-4)

	before := cam.Distance()
	win.onScroll(1)
	assert.InDelta(t, before-0.5, cam.Distance(), 1e-6)
}

func TestViewerRoutesResetKey(t *testing.T) {
	win, _, cam, _ := newTestViewer(t)
	require.NotNil(t, win.onKeyDown)

	cam.SetAngle(1.5)
	win.onKeyDown(32)

	assert.Equal(t, float32(0), cam.Angle())
	assert.Equal(t, float32(5), cam.Distance())
}

func TestViewerQuitClosesWindowOnce(t *testing.T) {
	win, _, _, v := newTestViewer(t)

	v.Quit()
	v.Quit()

	assert.True(t, win.closed)
}
