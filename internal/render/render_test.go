package render

import (
	"context"
	"fmt"
	"testing"

	"glplayground/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs every command as a string
type recorder struct {
	calls []string
	draws []DrawCall
	proj  mgl32.Mat4
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) ClearColor(cr, g, b, a float32) { r.add("ClearColor %v %v %v %v", cr, g, b, a) }
func (r *recorder) Clear(mask uint32) { r.add("Clear %#x", mask) }
func (r *recorder) UseProgram(p uint32) { r.add("UseProgram %d", p) }
func (r *recorder) BindVertexArray(v uint32) { r.add("BindVertexArray %d", v) }
func (r *recorder) SwapBuffers() { r.add("SwapBuffers") }
func (r *recorder) Viewport(x, y, w, h int32) { r.add("Viewport %d %d %d %d", x, y, w, h) }
func (r *recorder) LoadProjection(m mgl32.Mat4) {
	r.proj = m
	r.add("LoadProjection")
}
func (r *recorder) LoadModelView(m mgl32.Mat4) { r.add("LoadModelView") }
func (r *recorder) Begin(mode uint32) { r.add("Begin %d", mode) }
func (r *recorder) Color3f(cr, g, b float32) { r.add("Color %v %v %v", cr, g, b) }
func (r *recorder) Vertex2f(x, y float32) { r.add("Vertex %v %v", x, y) }
func (r *recorder) End() { r.add("End") }
func (r *recorder) Flush() { r.add("Flush") }
func (r *recorder) DrawArrays(mode uint32, first, count int32) {
	r.draws = append(r.draws, DrawCall{Mode: mode, First: first, Count: count})
	r.add("DrawArrays %d %d %d", mode, first, count)
}

func indexOf(calls []string, call string) int {
	for i, c := range calls {
		if c == call {
			return i
		}
	}
	return -1
}

func TestFrameDrawsOneTriangle(t *testing.T) {
	mesh := scene.Triangle()
	ctx, err := NewContext(7, 3, int32(mesh.VertexCount()), [4]float32{0, 0, 0, 1})
	require.NoError(t, err)

	rec := &recorder{}
	ctx.Frame(rec, rec)

	require.Len(t, rec.draws, 1)
	assert.Equal(t, DrawCall{Mode: Triangles, First: 0, Count: 3}, rec.draws[0])

	use := indexOf(rec.calls, "UseProgram 7")
	draw := indexOf(rec.calls, "DrawArrays 4 0 3")
	swap := indexOf(rec.calls, "SwapBuffers")
	clear := indexOf(rec.calls, fmt.Sprintf("Clear %#x", ColorBufferBit|DepthBufferBit))
	require.NotEqual(t, -1, use)
	require.NotEqual(t, -1, draw)
	require.NotEqual(t, -1, clear)
	assert.Less(t, clear, use)
	assert.Less(t, use, draw, "program is bound before the draw")
	assert.Equal(t, len(rec.calls)-1, swap, "swap is the last call")
}

func TestFrameRepeats(t *testing.T) {
	ctx, err := NewContext(1, 1, 3, [4]float32{})
	require.NoError(t, err)

	rec := &recorder{}
	for i := 0; i < 5; i++ {
		ctx.Frame(rec, rec)
	}
	assert.Len(t, rec.draws, 5)
	for _, d := range rec.draws {
		assert.Equal(t, ctx.Draw(), d)
	}
}

func TestNewContextRequiresResources(t *testing.T) {
	_, err := NewContext(0, 1, 3, [4]float32{})
	assert.ErrorIs(t, err, ErrNoProgram)

	_, err = NewContext(1, 0, 3, [4]float32{})
	assert.ErrorIs(t, err, ErrNoBuffer)

	_, err = NewContext(1, 1, 0, [4]float32{})
	assert.ErrorIs(t, err, ErrNoBuffer)
}

func TestImmediateScene(t *testing.T) {
	s := &ImmediateScene{Vertices: scene.ScreenTriangle(), ScreenSpace: true}
	rec := &recorder{}

	s.Reshape(rec, 500, 500)
	assert.Equal(t, "Viewport 0 0 500 500", rec.calls[0])
	assert.True(t, rec.proj.ApproxEqual(scene.ScreenOrtho(500, 500)))

	rec.calls = nil
	s.Frame(rec)
	want := []string{
		"ClearColor 0 0 0 0",
		fmt.Sprintf("Clear %#x", ColorBufferBit),
		"LoadModelView",
		"Begin 4",
		"Color 0 0 1", "Vertex 110 20",
		"Color 0 1 0", "Vertex 200 200",
		"Color 1 0 0", "Vertex 20 200",
		"End",
		"Flush",
	}
	assert.Equal(t, want, rec.calls)
}

func TestImmediateSceneIdentityProjection(t *testing.T) {
	s := &ImmediateScene{Vertices: scene.SpinTriangle(), Spin: scene.NewSpin(45)}
	rec := &recorder{}
	s.Reshape(rec, 500, 500)
	assert.Equal(t, mgl32.Ident4(), rec.proj)
}

// fakeWindow closes itself after a number of polls
type fakeWindow struct {
	closeAfter int
	polls      int
	closed     bool
}

func (w *fakeWindow) ShouldClose() bool { return w.closed }
func (w *fakeWindow) SetShouldClose(v bool) { w.closed = v }
func (w *fakeWindow) PollEvents() {
	w.polls++
	if w.closeAfter > 0 && w.polls >= w.closeAfter {
		w.closed = true
	}
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	w := &fakeWindow{closeAfter: 3}
	steps := 0
	Run(context.Background(), w, func() { steps++ })
	assert.Equal(t, 3, steps)
	assert.True(t, w.ShouldClose())
}

func TestRunStopsOnCancel(t *testing.T) {
	w := &fakeWindow{}
	ctx, cancel := context.WithCancel(context.Background())
	steps := 0
	Run(ctx, w, func() {
		steps++
		if steps == 2 {
			cancel()
		}
	})
	assert.Equal(t, 2, steps)
	assert.True(t, w.ShouldClose(), "cancel raises the close flag")
}

func TestRunClosedWindow(t *testing.T) {
	w := &fakeWindow{closed: true}
	Run(context.Background(), w, func() { t.Fatal("step ran on a closed window") })
	assert.Zero(t, w.polls)
}

func TestStageName(t *testing.T) {
	cases := map[uint32]string{
		VertexShader:         "vertex",
		FragmentShader:       "fragment",
		GeometryShader:       "geometry",
		TessControlShader:    "tess control",
		TessEvaluationShader: "tess evaluation",
		ComputeShader:        "compute",
		0x1234:               "0x1234",
	}
	for in, want := range cases {
		assert.Equal(t, want, StageName(in))
	}
}
