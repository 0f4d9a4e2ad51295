package frame

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffasante/raymarch-go/engine/camera"
	"github.com/jeffasante/raymarch-go/engine/input"
	"github.com/jeffasante/raymarch-go/engine/renderer/binding"
)

type fakeRenderer struct {
	writes       [][]binding.BufferWrite
	beginErrs    []error
	beginCalls   int
	drawErr      error
	drawCalls    int
	endCalls     int
	presentCalls int
	resizedTo    [2]int
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizedTo = [2]int{width, height}
}

func (f *fakeRenderer) WriteBuffers(writes []binding.BufferWrite) {
	f.writes = append(f.writes, writes)
}

func (f *fakeRenderer) BeginFrame() error {
	var err error
	if f.beginCalls < len(f.beginErrs) {
		err = f.beginErrs[f.beginCalls]
	}
	f.beginCalls++
	return err
}

func (f *fakeRenderer) DrawCall(string, binding.Provider, uint32, []binding.Provider) error {
	f.drawCalls++
	return f.drawErr
}

func (f *fakeRenderer) EndFrame() { f.endCalls++ }
func (f *fakeRenderer) Present()  { f.presentCalls++ }

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestController(r Renderer, clock *fakeClock, options ...FrameControllerOption) (FrameController, camera.OrbitCamera, input.Handler) {
	cam := camera.NewOrbitCamera()
	in := input.NewHandler(cam)
	opts := append([]FrameControllerOption{
		WithRenderer(r),
		WithCamera(cam),
		WithInput(in),
		WithSurfaceSize(func() (int, int) { return 1024, 768 }),
		WithClock(clock.now),
		WithPipelineKey("raymarch"),
	}, options...)
	return NewFrameController(opts...), cam, in
}

func TestUpdateStagesFullUniformRecord(t *testing.T) {
	r := &fakeRenderer{}
	clock := &fakeClock{t: time.Unix(100, 0)}
	fc, cam, _ := newTestController(r, clock, WithIdleDrift(0))
	cam.SetAngle(0)

	clock.advance(2 * time.Second)
	fc.Update()

	require.Len(t, r.writes, 1)
	require.Len(t, r.writes[0], 1)

	w := r.writes[0][0]
	assert.Same(t, fc.Provider(), w.Provider)
	assert.Equal(t, 0, w.Binding)
	assert.Equal(t, uint64(0), w.Offset)
	require.Len(t, w.Data, 48)

	expected := BuildUniform(2, 1024, 768, 0.5, 0.5, 8, 2, 0)
	assert.Equal(t, expected.Marshal(), w.Data)
}

func TestUpdateAppliesIdleDrift(t *testing.T) {
	r := &fakeRenderer{}
	clock := &fakeClock{t: time.Unix(0, 0)}
	fc, cam, _ := newTestController(r, clock)

	for i := 0; i < 5; i++ {
		fc.Update()
	}

	assert.InDelta(t, 0.05, cam.Angle(), 1e-6)
}

func TestRenderSkipsFrameWhenSurfaceNotReady(t *testing.T) {
	r := &fakeRenderer{beginErrs: []error{
		errors.New("surface lost"),
		errors.New("surface lost"),
		nil,
	}}
	clock := &fakeClock{t: time.Unix(0, 0)}
	fc, cam, _ := newTestController(r, clock)

	for i := 0; i < 3; i++ {
		fc.Tick()
	}

	// Updates ran every tick even though two frames were dropped.
	assert.Len(t, r.writes, 3)
	assert.InDelta(t, 0.03, cam.Angle(), 1e-6)

	assert.Equal(t, 3, r.beginCalls)
	assert.Equal(t, 1, r.drawCalls)
	assert.Equal(t, 1, r.endCalls)
	assert.Equal(t, 1, r.presentCalls)
}

func TestStateCarriesForwardAcrossSkippedFrames(t *testing.T) {
	r := &fakeRenderer{beginErrs: []error{errors.New("not ready")}}
	clock := &fakeClock{t: time.Unix(0, 0)}
	fc, _, in := newTestController(r, clock, WithIdleDrift(0))

	in.Scroll(2)
	fc.Tick()
	fc.Tick()

	// Both ticks staged the same camera distance; the skip did not reset it.
	require.Len(t, r.writes, 2)
	assert.Equal(t, r.writes[0][0].Data, r.writes[1][0].Data)
}

func TestRenderLogsDrawFailureOnce(t *testing.T) {
	r := &fakeRenderer{drawErr: errors.New("render pipeline \"typo\" not found in cache")}
	clock := &fakeClock{t: time.Unix(0, 0)}
	fc, _, _ := newTestController(r, clock)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	for i := 0; i < 3; i++ {
		fc.Tick()
	}

	assert.Equal(t, 3, r.drawCalls)
	assert.Equal(t, 1, strings.Count(buf.String(), "draw call failed"))
	assert.Contains(t, buf.String(), "not found in cache")
}

func TestResizePassesThroughImmediately(t *testing.T) {
	r := &fakeRenderer{}
	clock := &fakeClock{t: time.Unix(0, 0)}
	fc, _, _ := newTestController(r, clock)

	fc.Resize(800, 600)

	assert.Equal(t, [2]int{800, 600}, r.resizedTo)
}

func TestElapsedTracksClock(t *testing.T) {
	r := &fakeRenderer{}
	clock := &fakeClock{t: time.Unix(50, 0)}
	fc, _, _ := newTestController(r, clock)

	assert.Equal(t, float32(0), fc.Elapsed())
	clock.advance(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, fc.Elapsed(), 1e-6)
}
