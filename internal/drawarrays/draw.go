package drawarrays

import "mini-bz/internal/profiling"

// Backend receives the channel configuration and draw calls produced by
// the registry. It mirrors the client-array entry points of a GL
// context: channel enables, attribute pointers into one interleaved
// buffer, then a single draw.
type Backend interface {
	// SetChannel enables or disables one attribute stream.
	SetChannel(ch Channel, enabled bool)
	// SetCurrentColor sets the color used while the color channel is disabled.
	SetCurrentColor(r, g, b, a float32)
	// Pointer binds ch to data. size is the component count; stride and
	// offset are in floats.
	Pointer(ch Channel, size, stride, offset int, data []float32)
	// DrawArrays draws count vertices starting at first.
	DrawArrays(mode Mode, first, count int)
}

// Discard is a Backend that ignores every call.
var Discard Backend = discard{}

type discard struct{}

func (discard) SetChannel(Channel, bool) {}

func (discard) SetCurrentColor(float32, float32, float32, float32) {}

func (discard) Pointer(Channel, int, int, int, []float32) {}

func (discard) DrawArrays(Mode, int, int) {}

// Draw issues one draw call for the finished array h.
func (r *Registry) Draw(h Handle, mode Mode) {
	defer profiling.Track("drawarrays.Draw")()
	s := r.slotFor("Draw", h)
	if !s.rec.finished {
		violate("Draw", ErrNotFinished, "handle %d", h)
	}
	r.dispatch("Draw", &s.rec, mode)
}

// DrawRef draws the array ref points at, rejecting references whose
// handle has been deleted since the Ref was taken.
func (r *Registry) DrawRef(ref Ref, mode Mode) {
	if !r.Valid(ref) {
		violate("DrawRef", ErrStaleRef, "handle %d generation %d", ref.Handle, ref.Gen)
	}
	r.Draw(ref.Handle, mode)
}

// SetColor sets the color drawn when an array has no color channel.
func (r *Registry) SetColor(red, green, blue, alpha float32) {
	r.backend.SetCurrentColor(red, green, blue, alpha)
}

// dispatch re-specifies every channel on each call, so no assumption is
// made about what the previous draw left enabled.
func (r *Registry) dispatch(op string, rec *Record, mode Mode) {
	n := rec.VertexCount
	if n == 0 {
		return
	}
	if r.validation == Strict && !mode.Accepts(n) {
		violate(op, ErrTopology, "%d vertices as %s (min %d, multiple of %d)",
			n, mode, mode.MinVertices(), mode.Multiple())
	}

	be := r.backend
	be.SetChannel(ChannelColor, rec.UsesColor)
	be.SetChannel(ChannelTexCoord, rec.UsesTexCoord)
	be.SetChannel(ChannelNormal, rec.UsesNormal)
	be.SetChannel(ChannelVertex, true)

	for ch := Channel(0); ch < NumChannels; ch++ {
		size, offset := ch.Layout()
		be.Pointer(ch, size, Stride, offset, rec.buffer)
	}

	be.DrawArrays(mode, 0, n)
	r.stats.DrawCalls++
	r.stats.Vertices += n
}

// Rect draws the axis-aligned quad (x1,y1)-(x2,y2) at z=0 as a temporary
// triangle fan with only the vertex channel enabled.
func Rect(r *Registry, x1, y1, x2, y2 float32) {
	r.BeginTemp().
		AddVertex2(x1, y1).
		AddVertex2(x2, y1).
		AddVertex2(x2, y2).
		AddVertex2(x1, y2).
		DrawTemp(TriangleFan)
}
